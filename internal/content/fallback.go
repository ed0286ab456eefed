package content

// Fallback policy: per top-level section, prefer the mapped value and
// substitute the default literal only when the mapped value is nil. An
// empty non-nil collection is a legitimate mapped result ("zero items") and
// survives substitution, so "remote failed entirely" and "this one section
// was absent" look identical to the presentation layer. Applying the policy
// twice is a no-op.

func section[T any](mapped *T, fallback *T) *T {
	if mapped != nil {
		return mapped
	}
	return fallback
}

func list[T any](mapped []T, fallback []T) []T {
	if mapped != nil {
		return mapped
	}
	return fallback
}

func facetMap(mapped map[string][]Facet, fallback map[string][]Facet) map[string][]Facet {
	if mapped != nil {
		return mapped
	}
	return fallback
}

func text(mapped, fallback string) string {
	if mapped != "" {
		return mapped
	}
	return fallback
}

// FillProducts applies the fallback policy over every products page section.
func (d Defaults) FillProducts(vm ProductsPage) ProductsPage {
	vm.Intro = section(vm.Intro, d.Products.Intro)
	vm.Products = list(vm.Products, d.Products.Products)
	vm.Facets = facetMap(vm.Facets, d.Products.Facets)
	return vm
}

// FillPress applies the fallback policy over every press page section.
func (d Defaults) FillPress(vm PressPage) PressPage {
	vm.Heading = text(vm.Heading, d.Press.Heading)
	vm.Years = list(vm.Years, d.Press.Years)
	return vm
}

// FillNotices applies the fallback policy over every notices page section.
func (d Defaults) FillNotices(vm NoticesPage) NoticesPage {
	vm.Heading = text(vm.Heading, d.Notices.Heading)
	vm.Groups = list(vm.Groups, d.Notices.Groups)
	return vm
}

// FillSharePrice applies the fallback policy over every share price page
// section.
func (d Defaults) FillSharePrice(vm SharePricePage) SharePricePage {
	vm.Listing = list(vm.Listing, d.SharePrice.Listing)
	vm.Registrar = section(vm.Registrar, d.SharePrice.Registrar)
	vm.FAQs = list(vm.FAQs, d.SharePrice.FAQs)
	return vm
}
