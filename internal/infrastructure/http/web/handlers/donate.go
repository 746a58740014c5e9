package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/donation"
)

// maxImageBytes caps uploaded donation photos.
const maxImageBytes = 5 << 20

// DonateHandler renders and submits the public donation form.
type DonateHandler struct {
	BaseHandler
	Donations *donation.Service
}

type donatePage struct {
	Page
	Form       donation.Form
	Errors     map[string]string
	Units      []string
	Categories []string
}

// Page renders the donation form for GET /?page=donate.
func (h *DonateHandler) Page(c *gin.Context) {
	h.Render(c, 200, "donate.tmpl", donatePage{
		Page: Page{
			Title:         "Donate",
			Authenticated: h.CurrentSession(c).Authenticated(),
			Notice:        c.Query("notice"),
		},
		Units:      donation.Units,
		Categories: donation.Categories,
	})
}

// Submit handles POST /donate.
func (h *DonateHandler) Submit(c *gin.Context) {
	form := donation.Form{
		DonorName:           c.PostForm("donorName"),
		DonorEmail:          c.PostForm("donorEmail"),
		DonorPhone:          c.PostForm("donorPhone"),
		ProductName:         c.PostForm("productName"),
		Quantity:            c.PostForm("quantity"),
		Unit:                c.PostForm("unit"),
		Category:            c.PostForm("category"),
		ScheduledPickupDate: c.PostForm("scheduledPickupDate"),
		ScheduledPickupTime: c.PostForm("scheduledPickupTime"),
		Notes:               c.PostForm("notes"),
	}

	img, err := h.readImage(c)
	if err != nil {
		h.renderError(c, form, err)
		return
	}

	if err := h.Donations.Submit(c.Request.Context(), form, img); err != nil {
		h.renderError(c, form, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=donate",
		"Thank you! Your donation has been submitted and a pickup will be scheduled.")
}

func (h *DonateHandler) readImage(c *gin.Context) (*donation.Image, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil // no image attached
	}
	if file.Size > maxImageBytes {
		return nil, apperror.NewValidation("Image must be smaller than 5 MB")
	}
	f, err := file.Open()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return &donation.Image{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *DonateHandler) renderError(c *gin.Context, form donation.Form, err error) {
	data := donatePage{
		Page:       Page{Title: "Donate"},
		Form:       form,
		Units:      donation.Units,
		Categories: donation.Categories,
	}
	if fields := apperror.FieldErrors(err); fields != nil {
		data.Errors = fields
	} else {
		data.Error = ErrorMessage(err)
	}
	h.Render(c, apperror.GetHTTPStatus(err), "donate.tmpl", data)
}
