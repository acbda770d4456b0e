package shopify

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID accepts both JSON numbers and strings. Shopify sends numeric ids,
// some storefront plugins send them as strings; both forms must collide
// in the dedup cache, so the canonical representation is a string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// Order is the subset of the Shopify order webhook payload we read.
// Everything is optional; extraction falls back field by field.
type Order struct {
	ID                ID         `json:"id"`
	OrderNumber       ID         `json:"order_number"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Currency          string     `json:"currency"`
	TotalPrice        string     `json:"total_price"`
	CreatedAt         string     `json:"created_at"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	Test              bool       `json:"test"`
	SourceName        string     `json:"source_name"`
	Customer          *Customer  `json:"customer"`
	ShippingAddress   *Address   `json:"shipping_address"`
	BillingAddress    *Address   `json:"billing_address"`
	LineItems         []LineItem `json:"line_items"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type LineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

// DedupID is the identifier used for duplicate suppression: the raw id,
// falling back to the order number.
func (o *Order) DedupID() string {
	if !o.ID.IsZero() {
		return o.ID.String()
	}
	return o.OrderNumber.String()
}
