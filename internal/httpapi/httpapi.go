package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sorahlabs/order-notify/internal/application/service"
	"github.com/sorahlabs/order-notify/internal/domain"
	"github.com/sorahlabs/order-notify/internal/observability"
	"github.com/sorahlabs/order-notify/internal/shopify"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

// maxBodyBytes caps webhook payload reads. Shopify order payloads are far
// smaller; this only guards against abuse.
const maxBodyBytes = 10 << 20

type Processor interface {
	Accept(rawBody []byte, signature string) service.AcceptResult
	Dispatch(ctx context.Context, rec domain.OrderRecord) bool
	SendTest(ctx context.Context) bool
	TestDispatch(ctx context.Context) (string, bool)
}

type Server struct {
	service Processor
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
	started time.Time
}

func New(svc Processor, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		service: svc,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
		started: time.Now(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
	)

	s.router.Post("/webhook/orders/create", s.orderCreate)
	s.router.Get("/webhook/verify", s.verifyEndpoint)
	s.router.Get("/health", s.health)
	s.router.Get("/test-telegram", s.testTelegram)
	s.router.Get("/test-order", s.testOrder)
}

// orderCreate acknowledges the sender right after dedup-marking; the
// notification itself runs detached so Shopify's delivery latency never
// includes Telegram retry backoff. Processing failures are acknowledged
// with 200 to avoid upstream retry storms.
func (s *Server) orderCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.logger.Error("error reading webhook body", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]string{"status": "error_logged"})
		return
	}

	res := s.service.Accept(body, r.Header.Get(shopify.SignatureHeader))
	switch res.Outcome {
	case service.OutcomeUnauthorized:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid signature"})
		return
	case service.OutcomeDuplicate:
		writeJSON(w, http.StatusOK, map[string]string{"status": "ignored", "reason": "duplicate"})
		return
	case service.OutcomeError:
		writeJSON(w, http.StatusOK, map[string]string{"status": "error_logged"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "received",
		"orderId": res.OrderID,
	})

	// Fire-and-forget: an in-flight notification may be lost if the
	// process exits. No durability is promised here.
	go s.service.Dispatch(context.Background(), res.Record)
}

func (s *Server) verifyEndpoint(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "Webhook endpoint is accessible",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"uptime_seconds": time.Since(s.started).Seconds(),
	})
}

func (s *Server) testTelegram(w http.ResponseWriter, r *http.Request) {
	if s.service.SendTest(r.Context()) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "Test message sent to Telegram",
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": "Failed to send test message",
	})
}

func (s *Server) testOrder(w http.ResponseWriter, r *http.Request) {
	link, sent := s.service.TestDispatch(r.Context())
	if sent {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":       "success",
			"message":      "Test order notification sent",
			"whatsappLink": link,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": "Failed to send notification",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
