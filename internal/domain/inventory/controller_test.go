package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAPI implements API with configurable function fields.
type mockAPI struct {
	mu        sync.Mutex
	listCalls []Filters
	listFn    func(ctx context.Context, f Filters) ([]Item, Pagination, error)
	createFn  func(ctx context.Context, in ItemInput) (*Item, error)
	updateFn  func(ctx context.Context, id string, in ItemInput) (*Item, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockAPI) ListItems(ctx context.Context, f Filters) ([]Item, Pagination, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, f)
	m.mu.Unlock()
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return []Item{}, Pagination{CurrentPage: f.Page}, nil
}

func (m *mockAPI) CreateItem(ctx context.Context, in ItemInput) (*Item, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return &Item{ID: "new"}, nil
}

func (m *mockAPI) UpdateItem(ctx context.Context, id string, in ItemInput) (*Item, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, in)
	}
	return &Item{ID: id}, nil
}

func (m *mockAPI) DeleteItem(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAPI) listCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listCalls)
}

func (m *mockAPI) lastListFilters() Filters {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls[len(m.listCalls)-1]
}

func TestUpdateFiltersResetsPageAndFetches(t *testing.T) {
	api := &mockAPI{}
	c := NewController(api, DefaultFilters())
	ctx := context.Background()

	require.NoError(t, c.ChangePage(ctx, 4))
	assert.Equal(t, 4, api.lastListFilters().Page)

	search := "beans"
	require.NoError(t, c.UpdateFilters(ctx, FilterUpdate{Search: &search}))

	got := api.lastListFilters()
	assert.Equal(t, "beans", got.Search)
	assert.Equal(t, 1, got.Page, "non-page filter change must fetch page 1")
}

func TestMutationsTriggerExactlyOneRefetch(t *testing.T) {
	api := &mockAPI{}
	c := NewController(api, DefaultFilters())
	ctx := context.Background()

	_, err := c.CreateItem(ctx, ItemInput{ItemName: "Rice", Category: "grains"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCount())

	_, err = c.UpdateItem(ctx, "i1", ItemInput{ItemName: "Rice", Category: "grains"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCount())

	require.NoError(t, c.DeleteItem(ctx, "i1"))
	assert.Equal(t, 3, api.listCount())
}

func TestFailedMutationSkipsRefetchAndStoresError(t *testing.T) {
	boom := errors.New("upstream says no")
	api := &mockAPI{
		createFn: func(context.Context, ItemInput) (*Item, error) { return nil, boom },
	}
	c := NewController(api, DefaultFilters())

	_, err := c.CreateItem(context.Background(), ItemInput{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, api.listCount(), "failed create must not refetch")
	assert.ErrorIs(t, c.Snapshot().Err, boom)
}

func TestErrorClearsOnSuccessfulRefetch(t *testing.T) {
	boom := errors.New("transient")
	fail := true
	api := &mockAPI{}
	api.listFn = func(ctx context.Context, f Filters) ([]Item, Pagination, error) {
		if fail {
			return nil, Pagination{}, boom
		}
		return []Item{{ID: "i1", ItemName: "Rice", Category: "grains"}}, Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 20}, nil
	}
	c := NewController(api, DefaultFilters())
	ctx := context.Background()

	require.Error(t, c.Refresh(ctx))
	assert.Error(t, c.Snapshot().Err)

	fail = false
	require.NoError(t, c.Refresh(ctx))
	st := c.Snapshot()
	assert.NoError(t, st.Err)
	assert.Len(t, st.Items, 1)
}

func TestStaleResponseDoesNotOverwriteNewerState(t *testing.T) {
	api := &mockAPI{}
	release := make(chan struct{})
	slowStarted := make(chan struct{})

	api.listFn = func(ctx context.Context, f Filters) ([]Item, Pagination, error) {
		if f.Search == "slow" {
			close(slowStarted)
			<-release
			return []Item{{ID: "stale", ItemName: "Stale", Category: "old"}}, Pagination{CurrentPage: 1}, nil
		}
		return []Item{{ID: "fresh", ItemName: "Fresh", Category: "new"}}, Pagination{CurrentPage: 1}, nil
	}

	c := NewController(api, DefaultFilters())
	ctx := context.Background()

	slow := "slow"
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.UpdateFilters(ctx, FilterUpdate{Search: &slow})
	}()

	<-slowStarted
	fresh := "fresh"
	require.NoError(t, c.UpdateFilters(ctx, FilterUpdate{Search: &fresh}))

	close(release)
	<-done

	st := c.Snapshot()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "fresh", st.Items[0].ID, "stale response must not win")
}

func TestDeleteItemsRefetchesOnceAfterAll(t *testing.T) {
	api := &mockAPI{}
	var deleted []string
	api.deleteFn = func(_ context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	c := NewController(api, DefaultFilters())

	require.NoError(t, c.DeleteItems(context.Background(), []string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, deleted)
	assert.Equal(t, 1, api.listCount())
}
