package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/foodbank"
	"bytebasket/pkg/logger"
)

// FoodBankHandler drives the food bank list, forms and the storage panel.
// Panel state (which food bank's storage modal is open) is per browsing
// session, so each session gets its own manager.
type FoodBankHandler struct {
	BaseHandler
	API foodbank.API

	managers *sessionScoped[*foodbank.Manager]
}

// NewFoodBankHandler creates a FoodBankHandler. Managers idle longer
// than sessionTTL are evicted along with their session.
func NewFoodBankHandler(base BaseHandler, api foodbank.API, sessionTTL time.Duration) *FoodBankHandler {
	return &FoodBankHandler{
		BaseHandler: base,
		API:         api,
		managers:    newSessionScoped[*foodbank.Manager](sessionTTL),
	}
}

func (h *FoodBankHandler) manager(c *gin.Context) *foodbank.Manager {
	return h.managers.get(h.SessionID(c), func() *foodbank.Manager {
		return foodbank.NewManager(h.API)
	})
}

type foodbankPage struct {
	Page
	FoodBanks     []foodbank.FoodBank
	EditingID     string
	Form          foodbank.FoodBankInput
	Errors        map[string]string
	PendingDelete *foodbank.FoodBank

	Panel            *foodbank.StoragePanel
	StorageEditingID string
	StorageForm      foodbank.StorageInput
	StorageErrors    map[string]string
}

// Page renders the food bank view for GET /?page=foodbank.
func (h *FoodBankHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	m := h.manager(c)
	data := foodbankPage{Page: Page{
		Title:         "Food Banks",
		Authenticated: h.CurrentSession(c).Authenticated(),
		Notice:        c.Query("notice"),
	}}

	if err := m.Load(ctx); err != nil {
		data.Error = ErrorMessage(err)
		h.Render(c, apperror.GetHTTPStatus(err), "foodbank.tmpl", data)
		return
	}
	data.FoodBanks = m.FoodBanks()

	if editID := c.Query("edit"); editID != "" {
		if fb, ok := m.FindFoodBank(editID); ok {
			data.EditingID = editID
			data.Form = foodbank.FoodBankInput{
				Name:         fb.Name,
				Address:      fb.Address,
				City:         fb.City,
				ContactEmail: fb.ContactEmail,
				ContactPhone: fb.ContactPhone,
			}
		}
	}

	// Delete links land here first; the DELETE itself only goes out from
	// the confirmation form below.
	if delID := c.Query("delete"); delID != "" {
		if fb, ok := m.FindFoodBank(delID); ok {
			data.PendingDelete = &fb
		}
	}

	if storageID := c.Query("storage"); storageID != "" {
		if err := m.OpenStorage(ctx, storageID); err != nil {
			logger.Warn(ctx, "storage panel open failed", "error", err)
		} else {
			data.Panel = m.Panel()
			if editID := c.Query("editStorage"); editID != "" && data.Panel != nil {
				for _, loc := range data.Panel.Locations {
					if loc.ID == editID {
						data.StorageEditingID = editID
						data.StorageForm = foodbank.StorageInput{Name: loc.Name}
						break
					}
				}
			}
		}
	} else {
		m.CloseStorage()
	}

	h.Render(c, 200, "foodbank.tmpl", data)
}

// Create handles POST /foodbanks/create.
func (h *FoodBankHandler) Create(c *gin.Context) {
	h.save(c, "")
}

// Update handles POST /foodbanks/:id/update.
func (h *FoodBankHandler) Update(c *gin.Context) {
	h.save(c, c.Param("id"))
}

func (h *FoodBankHandler) save(c *gin.Context, id string) {
	m := h.manager(c)
	in := foodbank.FoodBankInput{
		Name:         c.PostForm("name"),
		Address:      c.PostForm("address"),
		City:         c.PostForm("city"),
		ContactEmail: c.PostForm("contactEmail"),
		ContactPhone: c.PostForm("contactPhone"),
	}
	if err := m.SaveFoodBank(c.Request.Context(), id, in); err != nil {
		data := foodbankPage{
			Page:      Page{Title: "Food Banks"},
			FoodBanks: m.FoodBanks(),
			EditingID: id,
			Form:      in,
		}
		if fields := apperror.FieldErrors(err); fields != nil {
			data.Errors = fields
		} else {
			data.Error = ErrorMessage(err)
		}
		h.Render(c, apperror.GetHTTPStatus(err), "foodbank.tmpl", data)
		return
	}
	h.RedirectWithNotice(c, "/?page=foodbank", "Food bank saved")
}

// Delete handles POST /foodbanks/:id/delete. Without confirm=1 no DELETE
// is issued.
func (h *FoodBankHandler) Delete(c *gin.Context) {
	m := h.manager(c)
	if c.PostForm("confirm") != "1" {
		h.Redirect(c, "/?page=foodbank&delete="+c.Param("id"))
		return
	}
	if err := m.DeleteFoodBank(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=foodbank", "Food bank deleted")
}

// CreateStorage handles POST /storage/create. The new location attaches
// to the food bank whose panel is open.
func (h *FoodBankHandler) CreateStorage(c *gin.Context) {
	h.saveStorage(c, "")
}

// UpdateStorage handles POST /storage/:id/update.
func (h *FoodBankHandler) UpdateStorage(c *gin.Context) {
	h.saveStorage(c, c.Param("id"))
}

func (h *FoodBankHandler) saveStorage(c *gin.Context, id string) {
	m := h.manager(c)
	fbID := c.PostForm("foodBankId")
	in := foodbank.StorageInput{Name: c.PostForm("name")}
	if err := m.SaveStorage(c.Request.Context(), id, in); err != nil {
		h.renderStorageError(c, m, id, in, err)
		return
	}
	h.Redirect(c, "/?page=foodbank&storage="+fbID)
}

// renderStorageError re-renders the food bank page with the storage panel
// open and the failed sub-form filled in, like every other form failure.
func (h *FoodBankHandler) renderStorageError(c *gin.Context, m *foodbank.Manager, id string, in foodbank.StorageInput, err error) {
	data := foodbankPage{
		Page:             Page{Title: "Food Banks"},
		FoodBanks:        m.FoodBanks(),
		Panel:            m.Panel(),
		StorageEditingID: id,
		StorageForm:      in,
	}
	if fields := apperror.FieldErrors(err); fields != nil {
		data.StorageErrors = fields
	} else {
		data.Error = ErrorMessage(err)
	}
	h.Render(c, apperror.GetHTTPStatus(err), "foodbank.tmpl", data)
}

// DeleteStorage handles POST /storage/:id/delete. Same confirmation rule
// as food bank deletion.
func (h *FoodBankHandler) DeleteStorage(c *gin.Context) {
	m := h.manager(c)
	fbID := ""
	if panel := m.Panel(); panel != nil {
		fbID = panel.FoodBank.ID
	}
	if c.PostForm("confirm") != "1" {
		h.Redirect(c, "/?page=foodbank&storage="+fbID)
		return
	}
	if err := m.DeleteStorage(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.Redirect(c, "/?page=foodbank&storage="+fbID)
}
