package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/inventory"
	"bytebasket/internal/infrastructure/http/web/view"
	"bytebasket/pkg/logger"
)

// InventoryAPI is everything the inventory page needs from the platform.
type InventoryAPI interface {
	inventory.API
	inventory.AlertsAPI
	inventory.MetadataAPI
	Stats(ctx context.Context) (*inventory.Stats, error)
}

// InventoryHandler renders the inventory page and serves its actions.
// Filter and page state live in a per-session controller so overlapping
// requests from the same browsing context keep list state consistent.
type InventoryHandler struct {
	BaseHandler
	API InventoryAPI

	controllers *sessionScoped[*inventory.Controller]
}

// NewInventoryHandler creates an InventoryHandler. Controllers idle
// longer than sessionTTL are evicted along with their session.
func NewInventoryHandler(base BaseHandler, api InventoryAPI, sessionTTL time.Duration) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		API:         api,
		controllers: newSessionScoped[*inventory.Controller](sessionTTL),
	}
}

func (h *InventoryHandler) controller(c *gin.Context) *inventory.Controller {
	return h.controllers.get(h.SessionID(c), func() *inventory.Controller {
		return inventory.NewController(h.API, inventory.DefaultFilters())
	})
}

type inventoryRow struct {
	Item     inventory.Item
	Badges   []view.Badge
	LowStock bool
}

type inventoryPage struct {
	Page
	State      inventory.State
	Filters    inventory.Filters
	Rows       []inventoryRow
	Alerts     inventory.Alerts
	Stats      *inventory.Stats
	Metadata   inventory.Metadata
	PageWindow []int

	LowStockNames []string
	LowStockMore  int
	ExpiringNames []string
	ExpiringMore  int

	EditingID  string
	ItemForm   inventory.ItemForm
	FormErrors map[string]string

	PendingDelete *inventory.Item
	PendingBulk   []string
}

// PageHref builds the link for page n keeping the other filters. The
// page query key routes between console views, so the list page number
// travels as "p".
func (p inventoryPage) PageHref(n int) string {
	q := p.Filters.Values()
	q.Del("page")
	q.Set("p", strconv.Itoa(n))
	q.Set("page", "inventory")
	return "/?" + q.Encode()
}

// Page renders the inventory view for GET /?page=inventory.
func (h *InventoryHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	ctrl := h.controller(c)

	if err := h.applyQuery(ctx, c, ctrl); err != nil {
		logger.Warn(ctx, "inventory fetch failed", "error", err)
	}
	state := ctrl.Snapshot()

	data := inventoryPage{
		Page: Page{
			Title:         "Inventory",
			Authenticated: h.CurrentSession(c).Authenticated(),
			Notice:        c.Query("notice"),
		},
		State:      state,
		Filters:    state.Filters,
		PageWindow: view.PageWindow(state.Pagination.CurrentPage, state.Pagination.TotalPages),
		ItemForm:   inventory.NewItemForm(),
	}

	now := time.Now()
	for _, it := range state.Items {
		badges := inventory.ItemBadges(it, now)
		data.Rows = append(data.Rows, inventoryRow{
			Item:     it,
			Badges:   view.ItemBadges(it, now),
			LowStock: badges.LowStock,
		})
	}

	// Alerts, stats and metadata are independent of the list; their
	// failures degrade the page instead of blanking it.
	if alerts, err := inventory.FetchAlerts(ctx, h.API); err != nil {
		logger.Warn(ctx, "alerts fetch failed", "error", err)
	} else {
		data.Alerts = *alerts
		data.LowStockNames, data.LowStockMore = view.AlertPreview(alerts.LowStock)
		data.ExpiringNames, data.ExpiringMore = view.AlertPreview(alerts.Expiring)
	}
	if stats, err := h.API.Stats(ctx); err != nil {
		logger.Warn(ctx, "stats fetch failed", "error", err)
	} else {
		data.Stats = stats
	}
	if meta, err := inventory.FetchMetadata(ctx, h.API); err != nil {
		logger.Warn(ctx, "metadata fetch failed", "error", err)
	} else {
		data.Metadata = *meta
	}

	if editID := c.Query("edit"); editID != "" {
		for _, it := range state.Items {
			if it.Key() == editID {
				data.EditingID = editID
				data.ItemForm = inventory.FormFromItem(it)
				break
			}
		}
	}

	// Delete links land here first; the DELETE itself only goes out from
	// the confirmation form.
	if delID := c.Query("delete"); delID != "" {
		for _, it := range state.Items {
			if it.Key() == delID {
				item := it
				data.PendingDelete = &item
				break
			}
		}
	}

	h.Render(c, 200, "inventory.tmpl", data)
}

// applyQuery folds the request's filter params into the controller and
// refreshes. Absent params keep the session's current values.
func (h *InventoryHandler) applyQuery(ctx context.Context, c *gin.Context, ctrl *inventory.Controller) error {
	if n, err := strconv.Atoi(c.Query("p")); err == nil {
		return ctrl.ChangePage(ctx, n)
	}

	var u inventory.FilterUpdate
	changed := false
	setString := func(name string, dst **string) {
		if _, ok := c.GetQuery(name); ok {
			v := c.Query(name)
			*dst = &v
			changed = true
		}
	}
	setString("search", &u.Search)
	setString("category", &u.Category)
	setString("dietary_category", &u.DietaryCategory)
	setString("foodbank_id", &u.FoodbankID)
	setString("sort", &u.Sort)
	if _, ok := c.GetQuery("search"); ok {
		// A filter form submit carries search; low_stock is a checkbox
		// that is simply absent when unchecked.
		low := c.Query("low_stock") == "true"
		u.LowStock = &low
		changed = true
	}

	if changed {
		return ctrl.UpdateFilters(ctx, u)
	}
	return ctrl.Refresh(ctx)
}

// Create handles POST /inventory/create.
func (h *InventoryHandler) Create(c *gin.Context) {
	form := itemFormFromPost(c)
	in, err := form.Input()
	if err != nil {
		h.renderFormError(c, "", form, err)
		return
	}
	if _, err := h.controller(c).CreateItem(c.Request.Context(), in); err != nil {
		h.renderFormError(c, "", form, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=inventory", "Item added")
}

// Update handles POST /inventory/:id/update.
func (h *InventoryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form := itemFormFromPost(c)
	in, err := form.Input()
	if err != nil {
		h.renderFormError(c, id, form, err)
		return
	}
	if _, err := h.controller(c).UpdateItem(c.Request.Context(), id, in); err != nil {
		h.renderFormError(c, id, form, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=inventory", "Item updated")
}

// Delete handles POST /inventory/:id/delete. Without confirm=1 no DELETE
// is issued.
func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if c.PostForm("confirm") != "1" {
		h.Redirect(c, "/?page=inventory&delete="+id)
		return
	}
	if err := h.controller(c).DeleteItem(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=inventory", "Item deleted")
}

// BulkDelete handles POST /inventory/bulk-delete: every selected item is
// deleted, then one refetch clears the selection. The first POST carries
// no confirm=1 and only renders the confirmation form.
func (h *InventoryHandler) BulkDelete(c *gin.Context) {
	ids := c.PostFormArray("selected")
	if len(ids) == 0 {
		h.Redirect(c, "/?page=inventory")
		return
	}
	if c.PostForm("confirm") != "1" {
		h.renderBulkConfirm(c, ids)
		return
	}
	if err := h.controller(c).DeleteItems(c.Request.Context(), ids); err != nil {
		h.Error(c, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=inventory", "Selected items deleted")
}

func (h *InventoryHandler) renderBulkConfirm(c *gin.Context, ids []string) {
	state := h.controller(c).Snapshot()
	data := inventoryPage{
		Page:        Page{Title: "Inventory", Authenticated: h.CurrentSession(c).Authenticated()},
		State:       state,
		Filters:     state.Filters,
		PageWindow:  view.PageWindow(state.Pagination.CurrentPage, state.Pagination.TotalPages),
		ItemForm:    inventory.NewItemForm(),
		PendingBulk: ids,
	}
	now := time.Now()
	for _, it := range state.Items {
		badges := inventory.ItemBadges(it, now)
		data.Rows = append(data.Rows, inventoryRow{
			Item:     it,
			Badges:   view.ItemBadges(it, now),
			LowStock: badges.LowStock,
		})
	}
	h.Render(c, 200, "inventory.tmpl", data)
}

// ExportCSV handles GET /inventory/export.csv for the current page.
func (h *InventoryHandler) ExportCSV(c *gin.Context) {
	ctrl := h.controller(c)
	state := ctrl.Snapshot()
	if len(state.Items) == 0 {
		if err := ctrl.Refresh(c.Request.Context()); err != nil {
			h.Error(c, err)
			return
		}
		state = ctrl.Snapshot()
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)
	if err := view.WriteItemsCSV(c.Writer, state.Items); err != nil {
		logger.Error(c.Request.Context(), "csv export failed", "error", err)
	}
}

// ListJSON handles GET /api/inventory, the JSON fragment endpoint.
func (h *InventoryHandler) ListJSON(c *gin.Context) {
	ctrl := h.controller(c)
	if err := h.applyQuery(c.Request.Context(), c, ctrl); err != nil {
		h.Error(c, err)
		return
	}
	state := ctrl.Snapshot()
	c.JSON(200, gin.H{
		"data":       state.Items,
		"pagination": state.Pagination,
	})
}

func (h *InventoryHandler) renderFormError(c *gin.Context, editingID string, form inventory.ItemForm, err error) {
	state := h.controller(c).Snapshot()
	data := inventoryPage{
		Page:       Page{Title: "Inventory"},
		State:      state,
		Filters:    state.Filters,
		PageWindow: view.PageWindow(state.Pagination.CurrentPage, state.Pagination.TotalPages),
		EditingID:  editingID,
		ItemForm:   form,
	}
	if fields := apperror.FieldErrors(err); fields != nil {
		data.FormErrors = fields
	} else {
		data.Error = ErrorMessage(err)
	}
	now := time.Now()
	for _, it := range state.Items {
		badges := inventory.ItemBadges(it, now)
		data.Rows = append(data.Rows, inventoryRow{
			Item:     it,
			Badges:   view.ItemBadges(it, now),
			LowStock: badges.LowStock,
		})
	}
	h.Render(c, apperror.GetHTTPStatus(err), "inventory.tmpl", data)
}

func itemFormFromPost(c *gin.Context) inventory.ItemForm {
	return inventory.ItemForm{
		FoodbankID:        c.PostForm("foodbank_id"),
		ItemName:          c.PostForm("item_name"),
		Category:          c.PostForm("category"),
		Quantity:          c.PostForm("quantity"),
		ExpirationDate:    c.PostForm("expiration_date"),
		StorageLocation:   c.PostForm("storage_location"),
		DietaryCategory:   c.PostForm("dietary_category"),
		Barcode:           c.PostForm("barcode"),
		MinimumStockLevel: c.PostForm("minimum_stock_level"),
		Description:       c.PostForm("description"),
	}
}
