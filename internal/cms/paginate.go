package cms

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Pagination mirrors the meta.pagination block of a collection response.
// PageCount is the authoritative signal for how many pages exist.
type Pagination struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

// PaginationFrom reads the meta.pagination block from a decoded collection
// payload, tolerating its absence.
func PaginationFrom(raw any) Pagination {
	m, ok := raw.(map[string]any)
	if !ok {
		return Pagination{}
	}
	meta, ok := m["meta"].(map[string]any)
	if !ok {
		return Pagination{}
	}
	pg, ok := meta["pagination"].(map[string]any)
	if !ok {
		return Pagination{}
	}
	e := Entry{attrs: pg}
	return Pagination{
		Page:      int(e.Int("page")),
		PageSize:  int(e.Int("pageSize")),
		PageCount: int(e.Int("pageCount")),
		Total:     int(e.Int("total")),
	}
}

// FetchAllPages retrieves every page of a collection endpoint and returns
// the records concatenated in page-index order, regardless of which
// concurrent fetch completed first. Any single page failure fails the whole
// aggregation; callers fall back to defaults rather than render a truncated
// set silently.
func (c *Client) FetchAllPages(ctx context.Context, path string, pageSize int, sort string) ([]Entry, error) {
	first, err := c.fetchPage(ctx, path, 1, pageSize, sort)
	if err != nil {
		return nil, err
	}

	entries, _ := EntriesFrom(first)
	pg := PaginationFrom(first)
	if pg.PageCount <= 1 {
		return entries, nil
	}

	// pages is indexed by page number; each goroutine writes only its slot.
	pages := make([][]Entry, pg.PageCount+1)
	pages[1] = entries

	g, gctx := errgroup.WithContext(ctx)
	for page := 2; page <= pg.PageCount; page++ {
		page := page
		g.Go(func() error {
			raw, err := c.fetchPage(gctx, path, page, pageSize, sort)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
			pages[page], _ = EntriesFrom(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cms: aggregate %s: %w", path, err)
	}

	out := make([]Entry, 0, pg.Total)
	for i := 1; i <= pg.PageCount; i++ {
		out = append(out, pages[i]...)
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, page, pageSize int, sort string) (any, error) {
	q := url.Values{}
	q.Set("pagination[page]", strconv.Itoa(page))
	q.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	if sort != "" {
		q.Set("sort", sort)
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return c.Fetch(ctx, path+sep+q.Encode(), FetchOptions{})
}
