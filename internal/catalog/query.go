package catalog

import (
	"sort"
	"strings"
)

// DefaultPageSize matches the listing page grid.
const DefaultPageSize = 8

type SortKey string

const (
	SortDefault   SortKey = ""          // keep input order
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortRating    SortKey = "rating" // rating desc, ties by name asc
	SortNewest    SortKey = "newest" // id desc
)

// ParseSortKey maps a request parameter onto a SortKey. Unknown values fall
// back to the default order.
func ParseSortKey(v string) SortKey {
	switch SortKey(v) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return SortKey(v)
	default:
		return SortDefault
	}
}

// Query describes one catalog view. The zero value selects everything in
// input order.
type Query struct {
	Search        string
	InDescription bool // also match Search against descriptions

	Category  string  // "" or "all" keeps every category
	MinPrice  float64
	MaxPrice  float64 // <= 0 means no upper bound
	MinRating float64

	Sort SortKey
}

// Apply runs the filter -> sort pipeline over a catalog snapshot. It is a
// pure function: the input slice is never mutated and the output is always
// a subsequence of it (up to ordering).
//
// Filters run strictly in order: text, category, price range (inclusive
// bounds), rating floor. Sorting is stable, so products that compare equal
// keep their relative input order.
func Apply(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if needle != "" && !matchesText(p, needle, q.InDescription) {
			continue
		}
		if q.Category != "" && q.Category != "all" && p.Category != q.Category {
			continue
		}
		if p.Price < q.MinPrice || (q.MaxPrice > 0 && p.Price > q.MaxPrice) {
			continue
		}
		if p.Rating < q.MinRating {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func matchesText(p Product, needle string, inDescription bool) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	return inDescription && strings.Contains(strings.ToLower(p.Description), needle)
}

func sortProducts(ps []Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortRating:
		// Rating descending; equal ratings fall through to name ascending.
		sort.SliceStable(ps, func(i, j int) bool {
			if ps[i].Rating != ps[j].Rating {
				return ps[i].Rating > ps[j].Rating
			}
			return ps[i].Name < ps[j].Name
		})
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].ID > ps[j].ID })
	}
}

// Paginate slices a filtered/sorted sequence into fixed-size pages. Pages
// are 1-based; a page past the end yields an empty slice, never an error.
func Paginate(products []Product, page, size int) []Product {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(products) {
		return []Product{}
	}

	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
