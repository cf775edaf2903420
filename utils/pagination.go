package utils

// Pagination represents pagination over an in-memory result set
type Pagination struct {
	Page     int
	Limit    int
	Total    int
	LastPage int
}

// NewPagination creates a new Pagination instance with a fixed page size
func NewPagination(limit int) *Pagination {
	if limit < 1 {
		limit = ProductsPerPage
	}
	return &Pagination{
		Page:  1,
		Limit: limit,
	}
}

// SetTotal sets the total number of items and recalculates the last page
func (p *Pagination) SetTotal(total int) {
	p.Total = total
	p.LastPage = (total + p.Limit - 1) / p.Limit
	if p.LastPage < 1 {
		p.LastPage = 1
	}
}

// SetPage moves to the requested page, clamped to the valid range
func (p *Pagination) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if p.LastPage > 0 && page > p.LastPage {
		page = p.LastPage
	}
	p.Page = page
}

// Bounds returns the half-open [start, end) slice range for the current page
func (p *Pagination) Bounds() (int, int) {
	start := (p.Page - 1) * p.Limit
	if start > p.Total {
		start = p.Total
	}
	end := start + p.Limit
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
