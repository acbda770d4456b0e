package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/sorahlabs/order-notify/internal/domain"
	"github.com/sorahlabs/order-notify/internal/observability"
	"github.com/sorahlabs/order-notify/internal/shopify"
	"github.com/sorahlabs/order-notify/internal/whatsapp"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Verifier interface {
	Verify(rawBody []byte, signature string) bool
}

type DedupStore interface {
	Has(id string) bool
	MarkSeen(id string)
}

type LinkBuilder interface {
	Build(rawPhone string, rec domain.OrderRecord) whatsapp.LinkResult
}

type Notifier interface {
	Send(ctx context.Context, rec domain.OrderRecord, link whatsapp.LinkResult) bool
	SendTest(ctx context.Context) bool
}

// Service runs the webhook pipeline: verify → dedup → extract, then link
// building and notification on the detached dispatch path.
type Service struct {
	verifier Verifier
	dedup    DedupStore
	links    LinkBuilder
	notifier Notifier
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(verifier Verifier, dedup DedupStore, links LinkBuilder, notifier Notifier, logger *zap.Logger, metrics observability.Metrics) *Service {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Service{
		verifier: verifier,
		dedup:    dedup,
		links:    links,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Accept runs the synchronous part of the pipeline on one delivery. It
// never returns an error to the HTTP layer: every failure mode maps to an
// outcome the handler acknowledges with the right status.
func (s *Service) Accept(rawBody []byte, signature string) AcceptResult {
	start := time.Now()

	if !s.verifier.Verify(rawBody, signature) {
		s.logger.Warn("invalid webhook signature received")
		s.metrics.IncSignatureReject()
		s.metrics.ObserveAccept(string(OutcomeUnauthorized), convertToMs(start))
		return AcceptResult{Outcome: OutcomeUnauthorized}
	}

	var order shopify.Order
	if err := json.Unmarshal(rawBody, &order); err != nil {
		s.logger.Error("error processing order webhook", zap.Error(err))
		s.metrics.ObserveAccept(string(OutcomeError), convertToMs(start))
		return AcceptResult{Outcome: OutcomeError}
	}

	dedupID := order.DedupID()
	s.logger.Info("received order webhook", zap.String("order_id", dedupID))

	if s.dedup.Has(dedupID) {
		s.logger.Info("duplicate webhook ignored", zap.String("order_id", dedupID))
		s.metrics.IncDuplicate()
		s.metrics.ObserveAccept(string(OutcomeDuplicate), convertToMs(start))
		return AcceptResult{Outcome: OutcomeDuplicate, OrderID: dedupID}
	}
	s.dedup.MarkSeen(dedupID)

	rec := shopify.Extract(&order)
	s.metrics.ObserveAccept(string(OutcomeAccepted), convertToMs(start))
	return AcceptResult{
		Outcome: OutcomeAccepted,
		OrderID: rec.OrderID,
		Record:  rec,
	}
}

// Dispatch builds the deep-link and delivers the operator notification.
// Runs on the fire-and-forget side of the webhook boundary.
func (s *Service) Dispatch(ctx context.Context, rec domain.OrderRecord) bool {
	start := time.Now()

	link := s.links.Build(rec.Phone, rec)
	sent := s.notifier.Send(ctx, rec, link)

	s.logger.Info("order processed",
		zap.String("order_id", rec.OrderID),
		zap.Bool("telegram_sent", sent),
		zap.Float64("dispatch_ms", convertToMs(start)),
	)
	return sent
}

// SendTest pushes a self-check message through the notifier.
func (s *Service) SendTest(ctx context.Context) bool {
	return s.notifier.SendTest(ctx)
}

// TestDispatch runs the dispatch path against the sample order and returns
// the generated link so the caller can inspect it.
func (s *Service) TestDispatch(ctx context.Context) (string, bool) {
	rec := s.SampleOrder()
	link := s.links.Build(rec.Phone, rec)
	sent := s.notifier.Send(ctx, rec, link)
	return link.Link, sent
}

// SampleOrder is the fixture behind the /test-order route.
func (s *Service) SampleOrder() domain.OrderRecord {
	return domain.OrderRecord{
		OrderID:           "12345",
		OrderName:         "#1234",
		CustomerName:      "Rahul Kumar",
		Phone:             "+919876543210",
		Email:             "rahul@example.com",
		TotalDisplay:      "₹1,299",
		CurrencyCode:      "INR",
		ItemCount:         2,
		FinancialStatus:   "paid",
		FulfillmentStatus: "unfulfilled",
	}
}
