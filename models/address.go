package models

// Address types accepted by the backend.
const (
	AddressTypeHome  = "home"
	AddressTypeWork  = "work"
	AddressTypeOther = "other"
)

// Address is a saved delivery address. At most one address per user carries
// IsDefault; the backend enforces that, the client only reads it.
type Address struct {
	ID           string `json:"_id,omitempty"`
	AddressType  string `json:"addressType"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"isDefault"`
}

// ShippingAddress is the flattened address snapshot sent with an order and
// echoed back on order reads. It has no id; it is frozen at submission time.
type ShippingAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
}

// Shipping flattens a saved address into the order submission shape.
func (a Address) Shipping() ShippingAddress {
	return ShippingAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		Landmark:     a.Landmark,
		City:         a.City,
		State:        a.State,
		Pincode:      a.Pincode,
		Country:      a.Country,
	}
}
