package content

// Defaults is the registry of hand-authored section literals, one complete
// view-model per page type. Each literal must structurally match its mapped
// counterpart so presentation code never branches on which source produced
// the data it received; TestDefaultsAreComplete enforces that.
type Defaults struct {
	Home       HomePage
	Products   ProductsPage
	Press      PressPage
	Notices    NoticesPage
	SharePrice SharePricePage
}

// DefaultContent returns the literals served whenever the content API is
// unavailable, partially populated, or shaped unexpectedly.
func DefaultContent() Defaults {
	return Defaults{
		Home: HomePage{
			Hero: []HeroSlide{
				{
					Title:    "Energy for growing markets",
					Subtitle: "Power generation and distribution across three continents",
					ImageURL: "/static/hero/turbines.jpg",
					LinkURL:  "/about",
				},
			},
			Highlights: []Highlight{
				{Title: "Generation", Body: "4.2 GW of installed capacity", IconURL: "/static/icons/generation.svg"},
				{Title: "Distribution", Body: "Serving 9 million customers", IconURL: "/static/icons/distribution.svg"},
				{Title: "Renewables", Body: "38% of portfolio from renewable sources", IconURL: "/static/icons/renewables.svg"},
			},
		},
		Products: ProductsPage{
			Intro: &ProductsIntro{
				Heading: "Our portfolio",
				Body:    "Generation, transmission and distribution assets across our operating geographies.",
			},
			Products: []Product{
				{ID: 1, Name: "Thermal generation", Geography: "India", Category: "Generation", Summary: "Coal and gas fired plants."},
				{ID: 2, Name: "Wind portfolio", Geography: "Brazil", Category: "Renewables", Summary: "Onshore wind farms."},
				{ID: 3, Name: "Urban distribution", Geography: "India", Category: "Distribution", Summary: "Licensed city distribution networks."},
			},
			Facets: map[string][]Facet{
				"geography": {{Value: "Brazil", Label: "Brazil"}, {Value: "India", Label: "India"}},
				"category":  {{Value: "Distribution", Label: "Distribution"}, {Value: "Generation", Label: "Generation"}, {Value: "Renewables", Label: "Renewables"}},
			},
		},
		Press: PressPage{
			Heading: "Press releases",
			Years:   []PressYear{},
		},
		Notices: NoticesPage{
			Heading: "Notices",
			Groups: []NoticeGroup{
				{
					Category: "General",
					Notices: []Notice{
						{Title: "Registered office", DocumentURL: "/static/docs/registered-office.pdf", Category: "General"},
					},
				},
			},
		},
		SharePrice: SharePricePage{
			Listing: []ListingRow{
				{Label: "Exchange", Value: "NSE / BSE"},
				{Label: "ISIN", Value: "INE000000000"},
			},
			Registrar: &Contact{
				Name:    "Share registry services",
				Address: "Registry House, Corporate Park",
				Phone:   "+91 22 0000 0000",
				Email:   "registrar@example.com",
			},
			FAQs: []FAQ{
				{Question: "Where are the shares listed?", Answer: "On the National Stock Exchange and the Bombay Stock Exchange."},
			},
		},
	}
}
