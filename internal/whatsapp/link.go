// Package whatsapp builds wa.me deep-links that open a pre-filled chat
// with the customer.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sorahlabs/order-notify/internal/config"
	"github.com/sorahlabs/order-notify/internal/domain"
	"github.com/sorahlabs/order-notify/internal/phone"
)

// maxLinkLength guards against platform URL-length limits; past it the
// greeting falls back to the short one-liner.
const maxLinkLength = 2000

type LinkResult struct {
	Success      bool
	Link         string
	ErrorReason  string
	PhoneDisplay string
	IsMobile     bool
}

type Builder struct {
	phones *phone.Normalizer
	store  config.Store
}

func NewBuilder(phones *phone.Normalizer, store config.Store) *Builder {
	return &Builder{phones: phones, store: store}
}

func (b *Builder) greeting(rec domain.OrderRecord) string {
	return fmt.Sprintf(`Hi %s,

Your order has been successfully received at %s ✨
We're preparing it with care and will update you once it's shipped.

🌐 %s

📸 Follow us: %s

Appreciate your trust in us 🤍`,
		rec.CustomerName, b.store.Name, b.store.URL, b.store.InstagramURL)
}

func (b *Builder) shortGreeting(rec domain.OrderRecord) string {
	return fmt.Sprintf("Hi %s, thanks for your order at %s!", rec.CustomerName, b.store.Name)
}

// Build normalizes the phone and composes the deep-link with the greeting
// prefilled. Invalid phones degrade to a failed result carrying the
// normalizer's diagnostics; nothing here is fatal.
func (b *Builder) Build(rawPhone string, rec domain.OrderRecord) LinkResult {
	pr := b.phones.Normalize(rawPhone)
	if !pr.IsValid {
		return LinkResult{
			ErrorReason:  pr.ErrorReason,
			PhoneDisplay: pr.Display,
		}
	}

	link := composeLink(pr.Formatted, b.greeting(rec))
	if len(link) > maxLinkLength {
		link = composeLink(pr.Formatted, b.shortGreeting(rec))
	}

	return LinkResult{
		Success:      true,
		Link:         link,
		PhoneDisplay: pr.Display,
		IsMobile:     pr.IsMobile,
	}
}

// BuildBare composes a deep-link without a prefilled message.
func (b *Builder) BuildBare(rawPhone string) LinkResult {
	pr := b.phones.Normalize(rawPhone)
	if !pr.IsValid {
		return LinkResult{
			ErrorReason:  pr.ErrorReason,
			PhoneDisplay: pr.Display,
		}
	}
	return LinkResult{
		Success:      true,
		Link:         "https://wa.me/" + pr.Formatted,
		PhoneDisplay: pr.Display,
		IsMobile:     pr.IsMobile,
	}
}

func composeLink(digits, message string) string {
	return "https://wa.me/" + digits + "?text=" + encodeComponent(message)
}

// encodeComponent percent-encodes like encodeURIComponent: spaces become
// %20, not "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
