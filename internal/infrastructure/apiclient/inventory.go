package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"bytebasket/internal/domain/inventory"
)

// listEnvelope is the {data, pagination} shape of the inventory list.
type listEnvelope struct {
	Data       []inventory.Item     `json:"data"`
	Pagination inventory.Pagination `json:"pagination"`
}

// itemEnvelope wraps single-item responses.
type itemEnvelope struct {
	Data *inventory.Item `json:"data"`
}

// ListItems calls GET /inventory with the filter query.
func (c *Client) ListItems(ctx context.Context, f inventory.Filters) ([]inventory.Item, inventory.Pagination, error) {
	var env listEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/inventory?"+f.Values().Encode(), nil, &env); err != nil {
		return nil, inventory.Pagination{}, err
	}
	return env.Data, env.Pagination, nil
}

// CreateItem calls POST /inventory.
func (c *Client) CreateItem(ctx context.Context, in inventory.ItemInput) (*inventory.Item, error) {
	var env itemEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/inventory", in, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UpdateItem calls PUT /inventory/:id.
func (c *Client) UpdateItem(ctx context.Context, id string, in inventory.ItemInput) (*inventory.Item, error) {
	var env itemEnvelope
	if err := c.doJSON(ctx, http.MethodPut, "/inventory/"+url.PathEscape(id), in, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// DeleteItem calls DELETE /inventory/:id.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/inventory/"+url.PathEscape(id), nil, nil)
}

// LowStockAlerts calls GET /inventory/alerts/low-stock.
func (c *Client) LowStockAlerts(ctx context.Context) ([]inventory.Item, error) {
	var env listEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/alerts/low-stock", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// ExpiringAlerts calls GET /inventory/alerts/expiring?days=.
func (c *Client) ExpiringAlerts(ctx context.Context, days int) ([]inventory.Item, error) {
	var env listEnvelope
	path := fmt.Sprintf("/inventory/alerts/expiring?days=%d", days)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Categories calls GET /inventory/meta/categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var env struct {
		Data []string `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/meta/categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// DietaryCategories calls GET /inventory/meta/dietary-categories.
func (c *Client) DietaryCategories(ctx context.Context) ([]string, error) {
	var env struct {
		Data []string `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/meta/dietary-categories", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Stats calls GET /inventory/stats.
func (c *Client) Stats(ctx context.Context) (*inventory.Stats, error) {
	var env struct {
		Data *inventory.Stats `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/inventory/stats", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
