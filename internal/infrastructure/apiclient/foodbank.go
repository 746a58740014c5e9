package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"bytebasket/internal/domain/foodbank"
)

// Food bank and storage endpoints answer with bare JSON arrays/objects.

// ListFoodBanks calls GET /foodbanks.
func (c *Client) ListFoodBanks(ctx context.Context) ([]foodbank.FoodBank, error) {
	var banks []foodbank.FoodBank
	if err := c.doJSON(ctx, http.MethodGet, "/foodbanks", nil, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// CreateFoodBank calls POST /foodbanks.
func (c *Client) CreateFoodBank(ctx context.Context, in foodbank.FoodBankInput) (*foodbank.FoodBank, error) {
	var fb foodbank.FoodBank
	if err := c.doJSON(ctx, http.MethodPost, "/foodbanks", in, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// UpdateFoodBank calls PUT /foodbanks/:id.
func (c *Client) UpdateFoodBank(ctx context.Context, id string, in foodbank.FoodBankInput) (*foodbank.FoodBank, error) {
	var fb foodbank.FoodBank
	if err := c.doJSON(ctx, http.MethodPut, "/foodbanks/"+url.PathEscape(id), in, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// DeleteFoodBank calls DELETE /foodbanks/:id.
func (c *Client) DeleteFoodBank(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/foodbanks/"+url.PathEscape(id), nil, nil)
}

// ListStorageLocations calls GET /storage?foodBankId=.
func (c *Client) ListStorageLocations(ctx context.Context, foodBankID string) ([]foodbank.StorageLocation, error) {
	q := url.Values{"foodBankId": {foodBankID}}
	var locs []foodbank.StorageLocation
	if err := c.doJSON(ctx, http.MethodGet, "/storage?"+q.Encode(), nil, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

// CreateStorageLocation calls POST /storage.
func (c *Client) CreateStorageLocation(ctx context.Context, in foodbank.StorageInput) (*foodbank.StorageLocation, error) {
	var loc foodbank.StorageLocation
	if err := c.doJSON(ctx, http.MethodPost, "/storage", in, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpdateStorageLocation calls PUT /storage/:id.
func (c *Client) UpdateStorageLocation(ctx context.Context, id string, in foodbank.StorageInput) (*foodbank.StorageLocation, error) {
	var loc foodbank.StorageLocation
	if err := c.doJSON(ctx, http.MethodPut, "/storage/"+url.PathEscape(id), in, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// DeleteStorageLocation calls DELETE /storage/:id.
func (c *Client) DeleteStorageLocation(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/storage/"+url.PathEscape(id), nil, nil)
}
