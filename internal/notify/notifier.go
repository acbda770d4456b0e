package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sorahlabs/order-notify/internal/domain"
	"github.com/sorahlabs/order-notify/internal/observability"
	"github.com/sorahlabs/order-notify/internal/pkg/retry"
	"github.com/sorahlabs/order-notify/internal/whatsapp"
)

//go:generate mockgen -source internal/notify/notifier.go -destination=internal/notify/notifier_mock_test.go -package=notify

type Sender interface {
	Send(ctx context.Context, text string) error
}

// Notifier renders the operator summary and delivers it with bounded retry.
// A delivery that exhausts every attempt is reported, never fatal.
type Notifier struct {
	sender  Sender
	policy  retry.Policy
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(sender Sender, policy retry.Policy, logger *zap.Logger, metrics observability.Metrics) *Notifier {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Notifier{
		sender:  sender,
		policy:  policy,
		logger:  logger,
		metrics: metrics,
	}
}

// Send reports true once any attempt succeeds and false only after all
// attempts are exhausted.
func (n *Notifier) Send(ctx context.Context, rec domain.OrderRecord, link whatsapp.LinkResult) bool {
	message := Format(rec, link)

	start := time.Now()
	attempts := 0
	err := retry.Do(ctx, n.policy, func(attempt int) error {
		attempts = attempt
		if sendErr := n.sender.Send(ctx, message); sendErr != nil {
			n.logger.Warn("telegram send attempt failed",
				zap.Int("attempt", attempt),
				zap.String("order_id", rec.OrderID),
				zap.Error(sendErr),
			)
			return sendErr
		}
		return nil
	})
	durMs := float64(time.Since(start).Microseconds()) / 1000.0

	n.metrics.ObserveNotify(err == nil, attempts, durMs)
	if err != nil {
		n.logger.Error("all telegram send attempts failed",
			zap.String("order_id", rec.OrderID),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		return false
	}

	n.logger.Info("telegram notification sent",
		zap.String("order_id", rec.OrderID),
		zap.Int("attempts", attempts),
		zap.Float64("send_ms", durMs),
	)
	return true
}

// SendTest pushes a plain self-check message to the operator chat.
func (n *Notifier) SendTest(ctx context.Context) bool {
	message := "🤖 <b>Bot Test</b>\n\nYour order notifier is working correctly!\n\nTimestamp: " +
		time.Now().UTC().Format(time.RFC3339)

	err := retry.Do(ctx, n.policy, func(attempt int) error {
		return n.sender.Send(ctx, message)
	})
	if err != nil {
		n.logger.Error("test message failed", zap.Error(err))
		return false
	}
	return true
}
