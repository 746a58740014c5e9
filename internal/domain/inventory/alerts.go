package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AlertsAPI is the slice of the platform client the alert queries need.
type AlertsAPI interface {
	LowStockAlerts(ctx context.Context) ([]Item, error)
	ExpiringAlerts(ctx context.Context, days int) ([]Item, error)
}

// Alerts holds the two independent alert lists. They refresh on their own
// schedule and are not coupled to the list filters.
type Alerts struct {
	LowStock []Item
	Expiring []Item
}

// HasAny reports whether either list is non-empty.
func (a Alerts) HasAny() bool {
	return len(a.LowStock) > 0 || len(a.Expiring) > 0
}

// FetchAlerts fetches both alert lists concurrently. If either request
// fails the joint operation fails; there is no partial-success state.
func FetchAlerts(ctx context.Context, api AlertsAPI) (*Alerts, error) {
	var alerts Alerts
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := api.LowStockAlerts(ctx)
		if err != nil {
			return err
		}
		alerts.LowStock = items
		return nil
	})
	g.Go(func() error {
		items, err := api.ExpiringAlerts(ctx, int(ExpiringWindow.Hours()/24))
		if err != nil {
			return err
		}
		alerts.Expiring = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &alerts, nil
}

// MetadataAPI serves the server-provided enumerations.
type MetadataAPI interface {
	Categories(ctx context.Context) ([]string, error)
	DietaryCategories(ctx context.Context) ([]string, error)
}

// Metadata holds the category enumerations used by the filter panel and
// the item form.
type Metadata struct {
	Categories        []string
	DietaryCategories []string
}

// FetchMetadata fetches both enumerations concurrently.
func FetchMetadata(ctx context.Context, api MetadataAPI) (*Metadata, error) {
	var meta Metadata
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := api.Categories(ctx)
		if err != nil {
			return err
		}
		meta.Categories = cats
		return nil
	})
	g.Go(func() error {
		diets, err := api.DietaryCategories(ctx)
		if err != nil {
			return err
		}
		meta.DietaryCategories = diets
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &meta, nil
}
