package content

import (
	"context"
	"log"

	"sitecontent/internal/cms"
)

// Content endpoints on the remote API.
const (
	pathHomePage       = "home-page"
	pathProductsPage   = "products-page"
	pathProducts       = "products"
	pathPressPage      = "press-page"
	pathPressItems     = "press-items"
	pathNoticesPage    = "notices-page"
	pathNotices        = "notices"
	pathSharePricePage = "share-price-page"
)

// Fetcher is the slice of the CMS client the page service needs.
type Fetcher interface {
	Enabled() bool
	Fetch(ctx context.Context, path string, opts cms.FetchOptions) (any, error)
	FetchAllPages(ctx context.Context, path string, pageSize int, sort string) ([]cms.Entry, error)
}

// Service is the page-render boundary: it orchestrates fetch, mapping and
// fallback per page type. Remote failures are recovered locally by serving
// defaults; only the home page propagates them. Every call builds and
// discards its own state — nothing is cached across requests.
type Service struct {
	client   Fetcher
	defaults Defaults
	pageSize int
	logger   *log.Logger
}

func NewService(client Fetcher, defaults Defaults, pageSize int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		client:   client,
		defaults: defaults,
		pageSize: pageSize,
		logger:   logger,
	}
}

// HomePage returns the home page view-model. The home page is no-fallback:
// with the remote disabled it serves the defaults, but a failing or
// hero-less remote is a hard error.
func (s *Service) HomePage(ctx context.Context) (HomePage, error) {
	if !s.client.Enabled() {
		return s.defaults.Home, nil
	}
	raw, err := s.client.Fetch(ctx, pathHomePage, cms.FetchOptions{})
	if err != nil {
		return HomePage{}, err
	}
	return MapHomePage(raw)
}

func (s *Service) ProductsPage(ctx context.Context) ProductsPage {
	var vm ProductsPage
	if !s.client.Enabled() {
		return s.defaults.FillProducts(vm)
	}

	if raw, err := s.client.Fetch(ctx, pathProductsPage, cms.FetchOptions{}); err != nil {
		s.logger.Printf("content: products intro unavailable: %v", err)
	} else {
		vm.Intro = MapProductsIntro(raw)
	}

	if entries, err := s.client.FetchAllPages(ctx, pathProducts, s.pageSize, "name:asc"); err != nil {
		s.logger.Printf("content: products collection unavailable: %v", err)
	} else {
		vm.Products = MapProducts(entries)
		vm.Facets = ExtractFacets(entries, ProductFacetFields)
	}

	return s.defaults.FillProducts(vm)
}

func (s *Service) PressPage(ctx context.Context) PressPage {
	var vm PressPage
	if !s.client.Enabled() {
		return s.defaults.FillPress(vm)
	}

	if raw, err := s.client.Fetch(ctx, pathPressPage, cms.FetchOptions{}); err != nil {
		s.logger.Printf("content: press page unavailable: %v", err)
	} else {
		vm.Heading = pageHeading(raw)
	}

	if entries, err := s.client.FetchAllPages(ctx, pathPressItems, s.pageSize, "date:desc"); err != nil {
		s.logger.Printf("content: press items unavailable: %v", err)
	} else {
		vm.Years = MapPressYears(entries)
	}

	return s.defaults.FillPress(vm)
}

func (s *Service) NoticesPage(ctx context.Context) NoticesPage {
	var vm NoticesPage
	if !s.client.Enabled() {
		return s.defaults.FillNotices(vm)
	}

	if raw, err := s.client.Fetch(ctx, pathNoticesPage, cms.FetchOptions{}); err != nil {
		s.logger.Printf("content: notices page unavailable: %v", err)
	} else {
		vm.Heading = pageHeading(raw)
	}

	if entries, err := s.client.FetchAllPages(ctx, pathNotices, s.pageSize, "date:desc"); err != nil {
		s.logger.Printf("content: notices collection unavailable: %v", err)
	} else {
		vm.Groups = MapNoticeGroups(entries)
	}

	return s.defaults.FillNotices(vm)
}

func (s *Service) SharePricePage(ctx context.Context) SharePricePage {
	var vm SharePricePage
	if !s.client.Enabled() {
		return s.defaults.FillSharePrice(vm)
	}

	if raw, err := s.client.Fetch(ctx, pathSharePricePage, cms.FetchOptions{}); err != nil {
		s.logger.Printf("content: share price page unavailable: %v", err)
	} else {
		vm = MapSharePricePage(raw)
	}

	return s.defaults.FillSharePrice(vm)
}

func pageHeading(raw any) string {
	entry, ok := cms.EntryFrom(raw)
	if !ok {
		return ""
	}
	return entry.String("heading")
}
