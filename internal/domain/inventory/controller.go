package inventory

import (
	"context"
	"sync"
)

// API is the slice of the platform client the controller needs.
type API interface {
	ListItems(ctx context.Context, f Filters) ([]Item, Pagination, error)
	CreateItem(ctx context.Context, in ItemInput) (*Item, error)
	UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// State is a consistent snapshot of the controller for rendering.
type State struct {
	Items      []Item
	Pagination Pagination
	Filters    Filters
	Loading    bool
	Err        error
}

// Controller owns the inventory list for one browsing session: filter
// state, the fetched page, and the refetch-after-mutation discipline.
//
// Fetches carry a generation number. When overlapping fetches race, only
// the response matching the newest filter state commits; a stale response
// is discarded instead of overwriting fresher data.
type Controller struct {
	api API

	mu         sync.Mutex
	filters    Filters
	items      []Item
	pagination Pagination
	loading    bool
	err        error
	gen        uint64
}

// NewController creates a Controller with the given initial filters.
func NewController(api API, initial Filters) *Controller {
	if initial.Page < 1 {
		initial.Page = 1
	}
	if initial.Limit < 1 {
		initial.Limit = DefaultFilters().Limit
	}
	return &Controller{api: api, filters: initial}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return State{
		Items:      items,
		Pagination: c.pagination,
		Filters:    c.filters,
		Loading:    c.loading,
		Err:        c.err,
	}
}

// Filters returns the current filter state.
func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Refresh fetches the list for the current filters. If the filters change
// while the fetch is in flight, the late response is discarded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	f := c.filters
	c.loading = true
	c.mu.Unlock()

	items, pagination, err := c.api.ListItems(ctx, f)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer fetch owns the state now.
		return err
	}
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.items = items
	c.pagination = pagination
	c.err = nil
	return nil
}

// UpdateFilters merges a partial filter change, resets the page to 1 and
// refetches.
func (c *Controller) UpdateFilters(ctx context.Context, u FilterUpdate) error {
	c.mu.Lock()
	c.filters = c.filters.Apply(u)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ChangePage moves to page n (clamped to 1 at the low end) and refetches.
func (c *Controller) ChangePage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}
	c.mu.Lock()
	c.filters.Page = n
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// CreateItem creates a record and refetches the list once on success. The
// error is kept in controller state and returned so the page can show a
// localized message.
func (c *Controller) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	created, err := c.api.CreateItem(ctx, in)
	if err != nil {
		c.setErr(err)
		return nil, err
	}
	if err := c.Refresh(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateItem updates a record and refetches the list once on success.
func (c *Controller) UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error) {
	updated, err := c.api.UpdateItem(ctx, id, in)
	if err != nil {
		c.setErr(err)
		return nil, err
	}
	if err := c.Refresh(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// DeleteItem deletes a record and refetches the list once on success.
func (c *Controller) DeleteItem(ctx context.Context, id string) error {
	if err := c.api.DeleteItem(ctx, id); err != nil {
		c.setErr(err)
		return err
	}
	return c.Refresh(ctx)
}

// DeleteItems deletes the selected records in order, then refetches once.
// The first failure aborts the remainder.
func (c *Controller) DeleteItems(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := c.api.DeleteItem(ctx, id); err != nil {
			c.setErr(err)
			return err
		}
	}
	return c.Refresh(ctx)
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}
