package store

import (
	"context"
	"sort"
	"strings"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
)

// CatalogProduct is the listing view of a product: category derived from
// difficulty and a synthetic popularity score computed at load time.
type CatalogProduct struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Image       string
	Category    string
	Popularity  int
}

// Catalog filters, sorts, and paginates an already-fetched product
// collection entirely client-side. Not safe for concurrent use.
type Catalog struct {
	products []CatalogProduct
	filtered []CatalogProduct

	searchQuery string
	category    string
	minPrice    float64
	maxPrice    float64
	sortBy      string

	paging *utils.Pagination
}

// NewCatalog creates an empty catalog with default filters
func NewCatalog() *Catalog {
	c := &Catalog{
		category: utils.CategoryAll,
		maxPrice: -1,
		sortBy:   utils.SortPopularity,
		paging:   utils.NewPagination(utils.ProductsPerPage),
	}
	return c
}

// Load fetches the product collection and derives the listing fields
func (c *Catalog) Load(ctx context.Context, api *client.Client) error {
	utils.LogInfo("Loading product catalog")
	products, err := api.GetProducts(ctx)
	if err != nil {
		utils.LogError("Failed to load products: %v", err)
		return err
	}

	c.products = make([]CatalogProduct, 0, len(products))
	for _, p := range products {
		c.products = append(c.products, CatalogProduct{
			ID:          p.ID,
			Title:       p.Name,
			Description: p.ShortDescription,
			Price:       p.Price,
			Image:       p.FirstImage(),
			Category:    CategoryForDifficulty(p.Difficulty),
			Popularity:  PopularityScore(p),
		})
	}
	utils.LogInfo("Loaded %d products", len(c.products))
	c.apply()
	return nil
}

// CategoryForDifficulty maps a product difficulty onto a listing category.
// Unknown difficulties land in iot, same as easy.
func CategoryForDifficulty(difficulty string) string {
	switch strings.ToLower(difficulty) {
	case "easy":
		return utils.CategoryIoT
	case "medium":
		return utils.CategorySmartHome
	case "hard":
		return utils.CategoryRobotics
	default:
		return utils.CategoryIoT
	}
}

// PopularityScore is a synthetic ranking: a baseline plus weighted counts of
// specs, features, and reviews. It stands in for real engagement data.
func PopularityScore(p models.Product) int {
	return utils.BasePopularity +
		utils.SpecPopularityWeight*len(p.Specifications) +
		utils.FeaturePopularityWeight*len(p.Features) +
		utils.ReviewPopularityWeight*len(p.Reviews)
}

// SetSearch filters by case-insensitive substring over title or description
func (c *Catalog) SetSearch(query string) {
	c.searchQuery = query
	c.apply()
}

// SetCategory filters by derived category; CategoryAll clears the filter
func (c *Catalog) SetCategory(category string) {
	c.category = category
	c.apply()
}

// SetPriceRange filters by inclusive [min, max]; a negative max means
// unbounded
func (c *Catalog) SetPriceRange(min, max float64) {
	c.minPrice = min
	c.maxPrice = max
	c.apply()
}

// SetSort orders results by price-low, price-high, or popularity
func (c *Catalog) SetSort(sortBy string) {
	c.sortBy = sortBy
	c.apply()
}

// apply recomputes the filtered set and resets to page 1 when the result
// set shrank below the current page's range.
func (c *Catalog) apply() {
	results := make([]CatalogProduct, 0, len(c.products))

	query := strings.ToLower(c.searchQuery)
	for _, p := range c.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if c.category != utils.CategoryAll && p.Category != c.category {
			continue
		}
		if p.Price < c.minPrice {
			continue
		}
		if c.maxPrice >= 0 && p.Price > c.maxPrice {
			continue
		}
		results = append(results, p)
	}

	switch c.sortBy {
	case utils.SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	case utils.SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Price > results[j].Price })
	case utils.SortPopularity:
		sort.SliceStable(results, func(i, j int) bool { return results[i].Popularity > results[j].Popularity })
	}

	c.filtered = results
	c.paging.SetTotal(len(results))
	if c.paging.Page > 1 && len(results) <= c.paging.Limit {
		c.paging.Page = 1
	}
}

// Filtered returns the whole filtered, sorted result set
func (c *Catalog) Filtered() []CatalogProduct {
	return c.filtered
}

// Page returns the current page of results
func (c *Catalog) Page() []CatalogProduct {
	start, end := c.paging.Bounds()
	return c.filtered[start:end]
}

// CurrentPage returns the 1-based page number
func (c *Catalog) CurrentPage() int {
	return c.paging.Page
}

// TotalPages returns the number of pages for the filtered set
func (c *Catalog) TotalPages() int {
	return c.paging.LastPage
}

// SetPage moves to the requested page, clamped to the valid range
func (c *Catalog) SetPage(page int) {
	c.paging.SetPage(page)
}
