package models

// Product mirrors the backend's product document. The backend assigns
// string ids, so the client never parses them.
type Product struct {
	ID               string          `json:"_id"`
	Name             string          `json:"name"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	Price            float64         `json:"price"`
	Images           []string        `json:"images"`
	Difficulty       string          `json:"difficulty"`
	Specifications   []Specification `json:"specifications"`
	Features         []string        `json:"features"`
	Reviews          []Review        `json:"reviews"`
}

// Specification is a single spec row on a product page.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Review is a customer review attached to a product.
type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FirstImage returns the primary product image, or empty when none exists.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
