package catalog

import (
	"sort"
	"strings"
)

const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortRatingDesc = "rating-desc"
)

type ProductFilter struct {
	Query     string
	Category  string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	Sort      string
}

// FilterProducts narrows and orders a product list. Text matching is
// case-insensitive over name and description; an empty filter field matches
// everything. The default order is name ascending.
func FilterProducts(list []Product, f ProductFilter) []Product {
	q := strings.ToLower(f.Query)

	out := make([]Product, 0, len(list))
	for _, p := range list {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if f.Condition != "" && f.Condition != "All" && string(p.Condition) != f.Condition {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}

	return out
}

type CourseFilter struct {
	Query      string
	Difficulty string
}

func FilterCourses(list []Course, f CourseFilter) []Course {
	q := strings.ToLower(f.Query)

	out := make([]Course, 0, len(list))
	for _, c := range list {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.ShortDescription), q) {
			continue
		}
		if f.Difficulty != "" && f.Difficulty != "All" && string(c.Difficulty) != f.Difficulty {
			continue
		}
		out = append(out, c)
	}
	return out
}
