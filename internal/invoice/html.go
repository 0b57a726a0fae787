package invoice

import (
	"fmt"
	"html"
	"strings"
	"time"

	"smartbiz-confirm/internal/domain"
)

func currency(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// BuildHTML renders the invoice email body. The same markup backs the
// invoice lookup endpoint.
func BuildHTML(in domain.OrderInput, confirmationID string) string {
	totals := in.ComputeTotals()
	now := time.Now()
	ms := now.UnixMilli()
	invoiceNo := fmt.Sprintf("INV-%06d", ms%1000000)

	var items strings.Builder
	for _, item := range in.Items {
		items.WriteString(fmt.Sprintf(`
        <tr>
          <td style="padding:8px;border-bottom:1px solid #eee;">%s</td>
          <td style="padding:8px;text-align:center;border-bottom:1px solid #eee;">%d</td>
          <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">%s</td>
          <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">%s</td>
        </tr>`,
			html.EscapeString(item.Name), item.Quantity, currency(item.Price), currency(float64(item.Quantity)*item.Price)))
	}

	return fmt.Sprintf(`
  <div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;color:#111;background:#f8fafc;padding:24px;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="max-width:720px;margin:0 auto;background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;overflow:hidden;">
      <tr>
        <td style="padding:24px 24px 8px 24px;background:#f1f5f9;">
          <div style="display:flex;justify-content:space-between;align-items:flex-start;">
            <div>
              <div style="font-size:18px;font-weight:700;">SmartBiz Confirm</div>
              <div style="font-size:12px;color:#6b7280;">123 Business Rd, Suite 456<br/>Businesstown, ST 12345</div>
            </div>
            <div style="text-align:right;">
              <div style="font-size:14px;font-weight:700;">INVOICE</div>
              <div style="font-size:12px;color:#6b7280;">#%s</div>
              <div style="font-size:12px;">Date: %s</div>
              <div style="font-size:12px;color:#6b7280;">Order: %s</div>
            </div>
          </div>
        </td>
      </tr>
      <tr>
        <td style="padding:24px;">
          <div style="margin-bottom:16px;">
            <div style="font-weight:600;margin-bottom:4px;">Bill To:</div>
            <div>%s</div>
            <div style="font-size:12px;color:#6b7280;">%s</div>
            <div style="font-size:12px;color:#6b7280;">%s</div>
          </div>
          <table width="100%%" cellpadding="0" cellspacing="0" style="border:1px solid #e5e7eb;border-radius:8px;overflow:hidden;">
            <thead>
              <tr style="background:#f8fafc;border-bottom:1px solid #e5e7eb;">
                <th align="left" style="padding:10px 8px;font-size:12px;color:#6b7280;width:50%%;">Item</th>
                <th align="center" style="padding:10px 8px;font-size:12px;color:#6b7280;">Quantity</th>
                <th align="right" style="padding:10px 8px;font-size:12px;color:#6b7280;">Unit Price</th>
                <th align="right" style="padding:10px 8px;font-size:12px;color:#6b7280;">Total</th>
              </tr>
            </thead>
            <tbody>%s</tbody>
          </table>
          <div style="display:flex;justify-content:flex-end;margin-top:16px;">
            <table role="presentation" cellpadding="0" cellspacing="0" style="min-width:260px;">
              <tr>
                <td style="padding:6px 8px;color:#6b7280;">Subtotal</td>
                <td style="padding:6px 8px;text-align:right;">%s</td>
              </tr>
              <tr>
                <td style="padding:6px 8px;color:#6b7280;">Tax (%g%%)</td>
                <td style="padding:6px 8px;text-align:right;">%s</td>
              </tr>
              <tr>
                <td style="padding:6px 8px;font-weight:700;border-top:1px solid #e5e7eb;">Total</td>
                <td style="padding:6px 8px;text-align:right;font-weight:700;border-top:1px solid #e5e7eb;">%s</td>
              </tr>
            </table>
          </div>
        </td>
      </tr>
      <tr>
        <td style="padding:16px 24px;background:#f8fafc;font-size:12px;color:#6b7280;text-align:center;">
          Thank you for your business!
        </td>
      </tr>
    </table>
  </div>`,
		invoiceNo,
		now.Format("1/2/2006"),
		html.EscapeString(confirmationID),
		html.EscapeString(in.CustomerName),
		html.EscapeString(in.CustomerEmail),
		html.EscapeString(in.CustomerPhone),
		items.String(),
		currency(totals.Subtotal),
		in.TaxRate,
		currency(totals.TaxAmount),
		currency(totals.Total),
	)
}

// BuildWhatsAppMessage formats the confirmation summary sent after payment,
// optionally linking the uploaded invoice PDF.
func BuildWhatsAppMessage(order *domain.Order, invoiceURL string) string {
	totals := order.Totals()

	var lines strings.Builder
	for _, item := range order.Items {
		lines.WriteString(fmt.Sprintf("• %dx %s - ₹%.2f\n", item.Quantity, item.Name, item.Price))
	}

	link := ""
	if invoiceURL != "" {
		link = fmt.Sprintf("Download invoice PDF: %s\n\n", invoiceURL)
	}

	return fmt.Sprintf(`*Order Confirmation - %s*

Hello %s! Your order has been confirmed.

*Order Details:*
%s
*Summary:*
Subtotal: %s
Tax (%g%%): %s
*Total: %s*

%sThank you for choosing Smart Biz Confirm!`,
		order.ID,
		order.CustomerName,
		strings.TrimRight(lines.String(), "\n"),
		currency(totals.Subtotal),
		order.TaxRate,
		currency(totals.TaxAmount),
		currency(totals.Total),
		link,
	)
}
