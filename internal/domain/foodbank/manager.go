package foodbank

import (
	"context"
	"sync"

	"bytebasket/internal/core/apperror"
)

// API is the slice of the platform client the manager needs.
type API interface {
	ListFoodBanks(ctx context.Context) ([]FoodBank, error)
	CreateFoodBank(ctx context.Context, in FoodBankInput) (*FoodBank, error)
	UpdateFoodBank(ctx context.Context, id string, in FoodBankInput) (*FoodBank, error)
	DeleteFoodBank(ctx context.Context, id string) error

	ListStorageLocations(ctx context.Context, foodBankID string) ([]StorageLocation, error)
	CreateStorageLocation(ctx context.Context, in StorageInput) (*StorageLocation, error)
	UpdateStorageLocation(ctx context.Context, id string, in StorageInput) (*StorageLocation, error)
	DeleteStorageLocation(ctx context.Context, id string) error
}

// StoragePanel is the open storage modal: one food bank plus its locations.
type StoragePanel struct {
	FoodBank  FoodBank
	Locations []StorageLocation
}

// Manager owns the food-bank list for one browsing session. Every mutation
// refetches the full collection; storage mutations refresh the open panel
// in place and leave it open until explicitly closed.
type Manager struct {
	api API

	mu        sync.Mutex
	foodBanks []FoodBank
	panel     *StoragePanel
}

// NewManager creates a Manager.
func NewManager(api API) *Manager {
	return &Manager{api: api}
}

// FoodBanks returns the loaded list.
func (m *Manager) FoodBanks() []FoodBank {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FoodBank, len(m.foodBanks))
	copy(out, m.foodBanks)
	return out
}

// Panel returns the open storage panel, or nil.
func (m *Manager) Panel() *StoragePanel {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.panel == nil {
		return nil
	}
	p := *m.panel
	p.Locations = append([]StorageLocation(nil), m.panel.Locations...)
	return &p
}

// Load refetches the full food-bank collection.
func (m *Manager) Load(ctx context.Context) error {
	banks, err := m.api.ListFoodBanks(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.foodBanks = banks
	m.mu.Unlock()
	return nil
}

// SaveFoodBank creates (id empty) or updates a food bank, then reloads the
// list. Validation failures block the API call.
func (m *Manager) SaveFoodBank(ctx context.Context, id string, in FoodBankInput) error {
	if errs := in.Validate(); len(errs) > 0 {
		return apperror.NewValidationFields(errs)
	}
	var err error
	if id == "" {
		_, err = m.api.CreateFoodBank(ctx, in)
	} else {
		_, err = m.api.UpdateFoodBank(ctx, id, in)
	}
	if err != nil {
		return err
	}
	return m.Load(ctx)
}

// DeleteFoodBank deletes a food bank and reloads the list. The interactive
// confirmation step happens before this is called.
func (m *Manager) DeleteFoodBank(ctx context.Context, id string) error {
	if err := m.api.DeleteFoodBank(ctx, id); err != nil {
		return err
	}
	return m.Load(ctx)
}

// FindFoodBank returns the loaded food bank with the given ID.
func (m *Manager) FindFoodBank(id string) (FoodBank, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, fb := range m.foodBanks {
		if fb.ID == id {
			return fb, true
		}
	}
	return FoodBank{}, false
}

// OpenStorage loads the storage locations for a food bank and opens the
// panel.
func (m *Manager) OpenStorage(ctx context.Context, foodBankID string) error {
	fb, ok := m.FindFoodBank(foodBankID)
	if !ok {
		return apperror.NewNotFound("food bank", foodBankID)
	}
	locations, err := m.api.ListStorageLocations(ctx, foodBankID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.panel = &StoragePanel{FoodBank: fb, Locations: locations}
	m.mu.Unlock()
	return nil
}

// CloseStorage closes the panel.
func (m *Manager) CloseStorage() {
	m.mu.Lock()
	m.panel = nil
	m.mu.Unlock()
}

// SaveStorage creates (id empty) or updates a storage location for the open
// panel's food bank, then refreshes the panel in place. The panel stays
// open.
func (m *Manager) SaveStorage(ctx context.Context, id string, in StorageInput) error {
	m.mu.Lock()
	panel := m.panel
	m.mu.Unlock()
	if panel == nil {
		return apperror.NewValidation("no storage panel open")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return apperror.NewValidationFields(errs)
	}

	var err error
	if id == "" {
		in.FoodBank = panel.FoodBank.ID
		_, err = m.api.CreateStorageLocation(ctx, in)
	} else {
		_, err = m.api.UpdateStorageLocation(ctx, id, in)
	}
	if err != nil {
		return err
	}
	return m.refreshPanel(ctx, panel.FoodBank.ID)
}

// DeleteStorage deletes a storage location and refreshes the open panel.
func (m *Manager) DeleteStorage(ctx context.Context, id string) error {
	m.mu.Lock()
	panel := m.panel
	m.mu.Unlock()
	if panel == nil {
		return apperror.NewValidation("no storage panel open")
	}
	if err := m.api.DeleteStorageLocation(ctx, id); err != nil {
		return err
	}
	return m.refreshPanel(ctx, panel.FoodBank.ID)
}

func (m *Manager) refreshPanel(ctx context.Context, foodBankID string) error {
	locations, err := m.api.ListStorageLocations(ctx, foodBankID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	if m.panel != nil && m.panel.FoodBank.ID == foodBankID {
		m.panel.Locations = locations
	}
	m.mu.Unlock()
	return nil
}
