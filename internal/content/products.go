package content

import "sitecontent/internal/cms"

// ProductFacetFields are the record fields the products filter UI offers.
var ProductFacetFields = []string{"geography", "category"}

// MapProductsIntro builds the products page intro section, or nil when the
// payload carries nothing usable.
func MapProductsIntro(raw any) *ProductsIntro {
	entry, ok := cms.EntryFrom(raw)
	if !ok {
		return nil
	}

	// Newer entries nest the intro as a component; older ones keep the
	// fields at the top level.
	src := entry
	if nested, ok := entry.Entry("intro"); ok {
		src = nested
	}

	intro := ProductsIntro{
		Heading: src.String("heading"),
		Body:    src.String("body"),
	}
	if intro.Heading == "" && intro.Body == "" {
		return nil
	}
	return &intro
}

// MapProducts builds product records from an aggregated collection. A
// non-nil empty input yields a non-nil empty output, preserving the
// empty-vs-absent distinction.
func MapProducts(entries []cms.Entry) []Product {
	if entries == nil {
		return nil
	}
	out := make([]Product, 0, len(entries))
	for _, e := range entries {
		out = append(out, Product{
			ID:        e.Int("id"),
			Name:      e.String("name"),
			Geography: e.String("geography"),
			Category:  e.String("category"),
			Summary:   e.String("summary"),
			ImageURL:  mediaURL(e, "image"),
		})
	}
	return out
}
