package server

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
)

// DefaultMaxPages caps the number of pages fetched for one listing.
const DefaultMaxPages = 100

// page is one slice of a paged listing.
type page[T any] struct {
	Values        []T  `json:"values"`
	IsLastPage    bool `json:"isLastPage"`
	NextPageStart int  `json:"nextPageStart"`
}

// UnmarshalJSON requires values and isLastPage, and nextPageStart on every
// page but the last.
func (p *page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Values        *[]T  `json:"values"`
		IsLastPage    *bool `json:"isLastPage"`
		NextPageStart *int  `json:"nextPageStart"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Values == nil:
		return missing("values")
	case raw.IsLastPage == nil:
		return missing("isLastPage")
	case !*raw.IsLastPage && raw.NextPageStart == nil:
		return missing("nextPageStart")
	}

	p.Values = *raw.Values
	p.IsLastPage = *raw.IsLastPage
	p.NextPageStart = 0
	if raw.NextPageStart != nil {
		p.NextPageStart = *raw.NextPageStart
	}
	return nil
}

// pager fetches pages of a listing.
type pager struct {
	get      func(ctx context.Context, path string) (string, error)
	maxPages int
	logger   *log.Logger
}

// walk requests pages starting at offset 0 and follows nextPageStart until
// the server reports the last page or maxPages pages have been fetched.
// Values are returned in arrival order. Hitting the cap truncates the result
// without an error.
func walk[T any](ctx context.Context, pg pager, resource string, pathAt func(start int) string) ([]T, error) {
	values := make([]T, 0)
	start := 0

	for pages := 1; ; pages++ {
		body, err := pg.get(ctx, pathAt(start))
		if err != nil {
			return nil, err
		}

		current, err := decode[page[T]](body, resource)
		if err != nil {
			return nil, err
		}
		values = append(values, current.Values...)

		if current.IsLastPage {
			return values, nil
		}
		if pages >= pg.maxPages {
			pg.logger.Warn("page limit reached, listing truncated", "resource", resource, "pages", pages, "values", len(values))
			return values, nil
		}
		start = current.NextPageStart
	}
}
