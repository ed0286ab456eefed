package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill_NilSectionsGetDefaults(t *testing.T) {
	d := DefaultContent()

	vm := d.FillSharePrice(SharePricePage{})

	assert.Equal(t, d.SharePrice.Listing, vm.Listing)
	assert.Equal(t, d.SharePrice.Registrar, vm.Registrar)
	assert.Equal(t, d.SharePrice.FAQs, vm.FAQs)
}

func TestFill_MappedSectionsSurvive(t *testing.T) {
	d := DefaultContent()

	mapped := SharePricePage{
		Listing:   []ListingRow{{Label: "Exchange", Value: "LSE"}},
		Registrar: &Contact{Name: "Mapped registrar"},
		FAQs:      []FAQ{{Question: "Q", Answer: "A"}},
	}

	vm := d.FillSharePrice(mapped)
	assert.Equal(t, mapped, vm)
}

func TestFill_EmptyCollectionIsNotReplaced(t *testing.T) {
	d := DefaultContent()

	// Mapping succeeded with zero items: that is an answer, not a gap.
	vm := d.FillProducts(ProductsPage{Products: []Product{}})

	require.NotNil(t, vm.Products)
	assert.Empty(t, vm.Products)
	assert.Equal(t, d.Products.Intro, vm.Intro, "absent sections still get defaults")
}

func TestFill_Idempotent(t *testing.T) {
	d := DefaultContent()

	inputs := []ProductsPage{
		{},
		{Products: []Product{}},
		{Intro: &ProductsIntro{Heading: "Mapped"}, Products: []Product{{ID: 9, Name: "X"}}},
	}

	for _, in := range inputs {
		once := d.FillProducts(in)
		twice := d.FillProducts(once)
		assert.Equal(t, once, twice)
	}
}

// Every default literal must structurally match its mapped counterpart:
// no nil sections, so presentation code never branches on data source.
func TestDefaultsAreComplete(t *testing.T) {
	d := DefaultContent()

	assert.NotEmpty(t, d.Home.Hero)
	assert.NotNil(t, d.Home.Highlights)

	assert.NotNil(t, d.Products.Intro)
	assert.NotNil(t, d.Products.Products)
	require.NotNil(t, d.Products.Facets)
	for _, field := range ProductFacetFields {
		assert.Contains(t, d.Products.Facets, field)
	}

	assert.NotEmpty(t, d.Press.Heading)
	assert.NotNil(t, d.Press.Years)

	assert.NotEmpty(t, d.Notices.Heading)
	assert.NotNil(t, d.Notices.Groups)

	assert.NotNil(t, d.SharePrice.Listing)
	assert.NotNil(t, d.SharePrice.Registrar)
	assert.NotNil(t, d.SharePrice.FAQs)
}
