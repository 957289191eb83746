// Package notify dispatches invoice emails through the Resend HTTP API.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"shop-backoffice-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailSender struct {
	apiKey string
	from   string
	client *http.Client
	log    *logrus.Logger
}

func NewEmailSender(log *logrus.Logger) *EmailSender {
	from := os.Getenv("INVOICE_EMAIL_FROM")
	if from == "" {
		from = "Sales <sales@example.com>"
	}
	return &EmailSender{
		apiKey: os.Getenv("RESEND_API_KEY"),
		from:   from,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendInvoice emails an invoice summary to the shop. Callers treat a
// failure here as a soft warning; the invoice itself is already committed.
func (s *EmailSender) SendInvoice(to string, invoice *models.Invoice, shop *models.Shop, items []models.InvoiceItem, totalPaid float64) error {
	if s.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	payload := resendRequest{
		From:    s.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
		HTML:    renderInvoiceHTML(invoice, shop, items, totalPaid),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, msg)
	}

	s.log.WithFields(logrus.Fields{
		"invoice_number": invoice.InvoiceNumber,
		"to":             to,
	}).Info("invoice email sent")
	return nil
}

func renderInvoiceHTML(invoice *models.Invoice, shop *models.Shop, items []models.InvoiceItem, totalPaid float64) string {
	var rows bytes.Buffer
	for _, item := range items {
		fmt.Fprintf(&rows,
			"<tr><td>%s</td><td>%d</td><td>$%.2f</td><td>$%.2f</td></tr>",
			item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal)
	}

	remaining := invoice.TotalAmount - totalPaid
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Thank you for your business. Your invoice summary is below.</p>
  <table border="0" cellpadding="6">
    <tr><th>Product</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>
    %s
  </table>
  <p>Discount: $%.2f<br>
     Total: <strong>$%.2f</strong><br>
     Paid: $%.2f<br>
     Remaining: $%.2f</p>
  <p>If you have any questions, please don't hesitate to contact us.</p>
  <p>Best regards,<br><strong>Sales Team</strong></p>
</div>`,
		invoice.InvoiceNumber, shop.Name, rows.String(),
		invoice.DiscountAmount, invoice.TotalAmount, totalPaid, remaining)
}
