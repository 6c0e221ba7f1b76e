// Package pagination turns a page/limit request into one skip/take fetch
// and the navigation metadata around its result.
package pagination

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"
)

// Request is a 1-based page request.
type Request struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Skip is the number of items before the requested page.
func (r Request) Skip() int {
	return (r.Page - 1) * r.Limit
}

func (r Request) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("page must be >= 1: %w", apperror.ErrInvalidInput)
	}
	if r.Limit < 1 {
		return fmt.Errorf("limit must be > 0: %w", apperror.ErrInvalidInput)
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return fmt.Errorf("page %d is out of range: %w", r.Page, apperror.ErrInvalidInput)
	}
	return nil
}

// Page is one page of items plus navigation metadata.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// FetchFunc loads take items after skip and reports the total item count.
type FetchFunc[T any] func(ctx context.Context, skip, take int) ([]T, int64, error)

// Paginate calls fetch exactly once and wraps its result.
func Paginate[T any](ctx context.Context, req Request, fetch FetchFunc[T]) (*Page[T], error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items, total, err := fetch(ctx, req.Skip(), req.Limit)
	if err != nil {
		return nil, err
	}
	return NewPage(items, total, req), nil
}

// NewPage computes the metadata for items fetched for req.
func NewPage[T any](items []T, total int64, req Request) *Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	return &Page[T]{
		Items:       items,
		Total:       total,
		Page:        req.Page,
		Limit:       req.Limit,
		TotalPages:  totalPages,
		HasNext:     req.Page < totalPages,
		HasPrevious: req.Page > 1,
	}
}

// SliceFetch serves a FetchFunc from an in-memory slice.
func SliceFetch[T any](all []T) FetchFunc[T] {
	return func(_ context.Context, skip, take int) ([]T, int64, error) {
		total := int64(len(all))
		if skip < 0 || skip >= len(all) {
			return []T{}, total, nil
		}
		end := len(all)
		if take < end-skip {
			end = skip + take
		}
		return all[skip:end], total, nil
	}
}

// FromQuery parses page/limit query values. Missing or malformed values take
// the defaults; limit is clamped to maxLimit.
func FromQuery(pageStr, limitStr string, defaultLimit, maxLimit int) Request {
	req := Request{Page: 1, Limit: defaultLimit}

	if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
		req.Page = parsed
	}
	if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
		req.Limit = parsed
	}
	if maxLimit > 0 && req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	return req
}
