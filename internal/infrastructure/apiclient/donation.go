package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/donation"
)

// SubmitDonation calls POST /donations as a multipart form: one text part
// per donor/product field plus an optional image part.
func (c *Client) SubmitDonation(ctx context.Context, d donation.Donation, img *donation.Image) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"donorName":           d.DonorName,
		"donorEmail":          d.DonorEmail,
		"donorPhone":          d.DonorPhone,
		"productName":         d.ProductName,
		"quantity":            d.Quantity.String(),
		"unit":                d.Unit,
		"category":            d.Category,
		"scheduledPickupDate": d.ScheduledPickupDate,
		"scheduledPickupTime": d.ScheduledPickupTime,
		"notes":               d.Notes,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return apperror.NewInternal(err)
		}
	}

	if img != nil && len(img.Data) > 0 {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="image"; filename="%s"`, img.Filename))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return apperror.NewInternal(err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return apperror.NewInternal(err)
		}
	}

	if err := w.Close(); err != nil {
		return apperror.NewInternal(err)
	}
	return c.do(ctx, http.MethodPost, "/donations", w.FormDataContentType(), &buf, nil)
}
