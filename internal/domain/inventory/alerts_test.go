package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAlertsAPI struct {
	lowFn func(ctx context.Context) ([]Item, error)
	expFn func(ctx context.Context, days int) ([]Item, error)
}

func (m *mockAlertsAPI) LowStockAlerts(ctx context.Context) ([]Item, error) {
	return m.lowFn(ctx)
}

func (m *mockAlertsAPI) ExpiringAlerts(ctx context.Context, days int) ([]Item, error) {
	return m.expFn(ctx, days)
}

func TestFetchAlertsJoinsBothLists(t *testing.T) {
	api := &mockAlertsAPI{
		lowFn: func(context.Context) ([]Item, error) {
			return []Item{{ID: "l1", ItemName: "Rice", Quantity: 2}}, nil
		},
		expFn: func(_ context.Context, days int) ([]Item, error) {
			assert.Equal(t, 7, days)
			return []Item{{ID: "e1", ItemName: "Milk"}}, nil
		},
	}

	alerts, err := FetchAlerts(context.Background(), api)
	require.NoError(t, err)
	assert.Len(t, alerts.LowStock, 1)
	assert.Len(t, alerts.Expiring, 1)
	assert.True(t, alerts.HasAny())
}

func TestFetchAlertsFailsJointlyWhenOneLegFails(t *testing.T) {
	boom := errors.New("expiring endpoint down")
	api := &mockAlertsAPI{
		lowFn: func(context.Context) ([]Item, error) { return []Item{{ID: "l1"}}, nil },
		expFn: func(context.Context, int) ([]Item, error) { return nil, boom },
	}

	alerts, err := FetchAlerts(context.Background(), api)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, alerts, "no partial-success state")
}

type mockMetadataAPI struct{}

func (mockMetadataAPI) Categories(context.Context) ([]string, error) {
	return []string{"canned", "grains"}, nil
}

func (mockMetadataAPI) DietaryCategories(context.Context) ([]string, error) {
	return []string{"vegan", "gluten-free"}, nil
}

func TestFetchMetadata(t *testing.T) {
	meta, err := FetchMetadata(context.Background(), mockMetadataAPI{})
	require.NoError(t, err)
	assert.Equal(t, []string{"canned", "grains"}, meta.Categories)
	assert.Equal(t, []string{"vegan", "gluten-free"}, meta.DietaryCategories)
}
