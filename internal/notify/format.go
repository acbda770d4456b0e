package notify

import (
	"fmt"
	"strings"

	"github.com/sorahlabs/order-notify/internal/domain"
	"github.com/sorahlabs/order-notify/internal/whatsapp"
)

var statusLabels = map[string]string{
	"pending":            "⏳ Pending",
	"authorized":         "✅ Authorized",
	"partially_paid":     "💰 Partially Paid",
	"paid":               "✅ Paid",
	"partially_refunded": "↩️ Partially Refunded",
	"refunded":           "↩️ Refunded",
	"voided":             "❌ Voided",
}

// FormatStatus resolves a payment status into its operator-facing label.
// Unrecognized statuses pass through verbatim; an absent status is "Unknown".
func FormatStatus(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	if status == "" {
		return "Unknown"
	}
	return status
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Format renders the operator notification. Customer-supplied strings are
// HTML-escaped; the wa.me link (or the reason it is unavailable) is included
// so the operator can follow up in one tap.
func Format(rec domain.OrderRecord, link whatsapp.LinkResult) string {
	var b strings.Builder

	b.WriteString("🛒 <b>New Order Received</b>\n\n")

	orderLabel := rec.OrderName
	if orderLabel == "" {
		orderLabel = "#" + rec.OrderID
	}
	fmt.Fprintf(&b, "<b>Order:</b> %s\n", orderLabel)
	fmt.Fprintf(&b, "<b>Customer:</b> %s\n", escapeHTML(rec.CustomerName))
	fmt.Fprintf(&b, "<b>Amount:</b> %s\n", rec.TotalDisplay)
	fmt.Fprintf(&b, "<b>Items:</b> %d\n", rec.ItemCount)
	fmt.Fprintf(&b, "<b>Payment:</b> %s\n\n", FormatStatus(rec.FinancialStatus))

	if link.Success {
		fmt.Fprintf(&b, "📱 <b>Phone:</b> %s\n\n", link.PhoneDisplay)
		b.WriteString("👉 <b>Send WhatsApp Message:</b>\n")
		fmt.Fprintf(&b, "<a href=%q>Click to open WhatsApp</a>\n", link.Link)
		if !link.IsMobile {
			b.WriteString("\n⚠️ <i>Note: Number may be a landline</i>")
		}
	} else {
		b.WriteString("\n⚠️ <b>WhatsApp not available</b>\n")
		reason := link.ErrorReason
		if reason == "" {
			reason = "Phone number missing or invalid"
		}
		fmt.Fprintf(&b, "<i>%s</i>\n", escapeHTML(reason))
		if rec.Email != "" {
			fmt.Fprintf(&b, "\n📧 <b>Email:</b> %s", escapeHTML(rec.Email))
		}
	}

	return b.String()
}
