package content

import "sitecontent/internal/cms"

// MapSharePricePage builds the share price page view-model. Every section
// is independently optional: a missing section maps to nil and is filled by
// the fallback policy, a present-but-empty collection stays empty.
func MapSharePricePage(raw any) SharePricePage {
	var vm SharePricePage

	entry, ok := cms.EntryFrom(raw)
	if !ok {
		return vm
	}

	if rows, ok := entry.Entries("listing"); ok {
		vm.Listing = make([]ListingRow, 0, len(rows))
		for _, r := range rows {
			vm.Listing = append(vm.Listing, ListingRow{
				Label: r.String("label"),
				Value: r.String("value"),
			})
		}
	}

	if reg, ok := entry.Entry("registrar"); ok {
		vm.Registrar = &Contact{
			Name:    reg.String("name"),
			Address: reg.String("address"),
			Phone:   reg.String("phone"),
			Email:   reg.String("email"),
		}
	}

	if faqs, ok := entry.Entries("faqs"); ok {
		vm.FAQs = make([]FAQ, 0, len(faqs))
		for _, f := range faqs {
			vm.FAQs = append(vm.FAQs, FAQ{
				Question: f.String("question"),
				Answer:   f.String("answer"),
			})
		}
	}

	return vm
}
