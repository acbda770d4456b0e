package domain

// OrderRecord is the normalized view of one inbound order webhook.
// It is built once per delivery and discarded after the notification
// has been sent (or given up on).
type OrderRecord struct {
	OrderID           string `json:"order_id"`
	OrderName         string `json:"order_name"`
	CustomerName      string `json:"customer_name"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty"`
	TotalDisplay      string `json:"total"`
	CurrencyCode      string `json:"currency"`
	ItemCount         int    `json:"item_count"`
	CreatedAt         string `json:"created_at,omitempty"`
	FinancialStatus   string `json:"financial_status,omitempty"`
	FulfillmentStatus string `json:"fulfillment_status"`
}
