package content

// View-models consumed by the presentation layer. Each page type owns one
// fixed-shape struct; a nil section means "data was absent or mapping
// failed", an empty non-nil slice means "mapping succeeded with zero items".
// The two are treated differently by the fallback policy.

// Facet is one distinct value observed across a record collection for a
// filterable field.
type Facet struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HeroSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
}

type Highlight struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	IconURL string `json:"iconUrl"`
}

// HomePage has no fallback: an absent payload is a hard error at mapping
// time rather than a defaulted render.
type HomePage struct {
	Hero       []HeroSlide `json:"hero"`
	Highlights []Highlight `json:"highlights"`
}

type ProductsIntro struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Geography string `json:"geography"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	ImageURL  string `json:"imageUrl"`
}

type ProductsPage struct {
	Intro    *ProductsIntro     `json:"intro"`
	Products []Product          `json:"products"`
	Facets   map[string][]Facet `json:"facets"`
}

type PressItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}

// PressYear groups press items published in one calendar year. Label is the
// two-digit year used by the year filter strip.
type PressYear struct {
	Year  string      `json:"year"`
	Label string      `json:"label"`
	Items []PressItem `json:"items"`
}

type PressPage struct {
	Heading string      `json:"heading"`
	Years   []PressYear `json:"years"`
}

type Notice struct {
	Title       string `json:"title"`
	DocumentURL string `json:"documentUrl"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

type NoticeGroup struct {
	Category string   `json:"category"`
	Notices  []Notice `json:"notices"`
}

type NoticesPage struct {
	Heading string        `json:"heading"`
	Groups  []NoticeGroup `json:"groups"`
}

type ListingRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Contact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SharePricePage struct {
	Listing   []ListingRow `json:"listing"`
	Registrar *Contact     `json:"registrar"`
	FAQs      []FAQ        `json:"faqs"`
}
