package shopify

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/sorahlabs/order-notify/internal/domain"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
}

// Amounts are grouped the way the store's customers read them (lakh/crore
// grouping, e.g. 1,29,999).
var amountPrinter = message.NewPrinter(language.MustParse("en-IN"))

func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code + " "
}

// Extract maps a webhook payload into an OrderRecord. It never fails:
// missing fields resolve through the fallback chains below, so a partial
// payload produces a degraded record rather than no notification at all.
func Extract(order *Order) domain.OrderRecord {
	var customer Customer
	if order.Customer != nil {
		customer = *order.Customer
	}
	var shipping, billing Address
	if order.ShippingAddress != nil {
		shipping = *order.ShippingAddress
	}
	if order.BillingAddress != nil {
		billing = *order.BillingAddress
	}

	// Order of the phone fallbacks is observable behavior on partial
	// payloads; do not reorder.
	phone := firstNonEmpty(shipping.Phone, order.Phone, customer.Phone, billing.Phone)

	firstName := firstNonEmpty(shipping.FirstName, customer.FirstName)
	lastName := firstNonEmpty(shipping.LastName, customer.LastName)
	customerName := strings.TrimSpace(firstName + " " + lastName)
	if customerName == "" {
		customerName = "Customer"
	}

	currency := firstNonEmpty(order.Currency, "INR")

	orderID := order.OrderNumber.String()
	if order.OrderNumber.IsZero() {
		orderID = order.ID.String()
	}
	orderName := order.Name
	if orderName == "" {
		orderName = "#" + order.OrderNumber.String()
	}

	return domain.OrderRecord{
		OrderID:           orderID,
		OrderName:         orderName,
		CustomerName:      customerName,
		Phone:             phone,
		Email:             firstNonEmpty(order.Email, customer.Email),
		TotalDisplay:      CurrencySymbol(currency) + formatAmount(order.TotalPrice),
		CurrencyCode:      currency,
		ItemCount:         len(order.LineItems),
		CreatedAt:         order.CreatedAt,
		FinancialStatus:   order.FinancialStatus,
		FulfillmentStatus: firstNonEmpty(order.FulfillmentStatus, "unfulfilled"),
	}
}

// IsTestOrder reports whether Shopify flagged the order as a test delivery.
// The webhook path does not gate on it; test/live handling is a product
// decision that has not been made yet.
func IsTestOrder(order *Order) bool {
	return order.Test
}

func formatAmount(total string) string {
	amount, err := strconv.ParseFloat(strings.TrimSpace(total), 64)
	if err != nil {
		amount = 0
	}
	return amountPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(3)))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
