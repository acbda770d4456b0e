package service

import (
	"time"

	"github.com/sorahlabs/order-notify/internal/domain"
)

type Outcome string

const (
	OutcomeAccepted     Outcome = "accepted"
	OutcomeDuplicate    Outcome = "duplicate"
	OutcomeUnauthorized Outcome = "unauthorized"
	OutcomeError        Outcome = "error"
)

// AcceptResult is what the webhook handler acknowledges to the sender
// before dispatch happens.
type AcceptResult struct {
	Outcome Outcome
	OrderID string
	Record  domain.OrderRecord
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
