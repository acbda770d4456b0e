package dedup

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// hardCapFactor bounds the backing cache between sweeps. The sweep trims
// down to highWater; the LRU's own capacity is only a safety net against a
// burst of unique ids arriving faster than the sweep interval.
const hardCapFactor = 4

// Store remembers recently processed order ids. Membership only, nothing
// durable: a restart forgets everything and a retried delivery right after
// a restart will notify twice. Accepted tradeoff.
type Store struct {
	highWater int
	seen      *lru.Cache[string, struct{}]
}

func New(highWater int) (*Store, error) {
	if highWater <= 0 {
		highWater = 1
	}
	seen, err := lru.New[string, struct{}](highWater * hardCapFactor)
	if err != nil {
		return nil, err
	}
	return &Store{
		highWater: highWater,
		seen:      seen,
	}, nil
}

// Has reports membership without bumping recency.
func (s *Store) Has(id string) bool {
	return s.seen.Contains(id)
}

func (s *Store) MarkSeen(id string) {
	s.seen.Add(id, struct{}{})
}

func (s *Store) Len() int {
	return s.seen.Len()
}

// Sweep bulk-evicts the oldest-inserted entries above the high-water mark
// and returns how many were removed. Keys() is ordered oldest to newest, so
// exactly the most recently inserted highWater entries survive.
func (s *Store) Sweep() int {
	excess := s.seen.Len() - s.highWater
	if excess <= 0 {
		return 0
	}
	for _, id := range s.seen.Keys()[:excess] {
		s.seen.Remove(id)
	}
	return excess
}

// Run sweeps on a fixed wall-clock interval until ctx is canceled.
func (s *Store) Run(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Info("dedup sweep evicted entries",
					zap.Int("removed", removed),
					zap.Int("retained", s.Len()),
				)
			}
		}
	}
}
