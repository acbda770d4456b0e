package observability

import "sync"

type observe struct {
	Kind     string
	Method   string
	Route    string
	Outcome  string
	Status   int
	Attempts int
	OK       bool
	Dur      float64
}

// Inmem keeps the last max observations plus running totals. Enough for the
// health/debug surface of a single-process notifier.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		duplicates, sigRejects int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveAccept(outcome string, durMs float64) {
	m.push(&observe{Kind: "accept", Outcome: outcome, Dur: durMs})
}

func (m *Inmem) ObserveNotify(ok bool, attempts int, durMs float64) {
	m.push(&observe{Kind: "notify", OK: ok, Attempts: attempts, Dur: durMs})
}

func (m *Inmem) IncDuplicate() {
	m.mu.Lock()
	m.totals.duplicates++
	m.mu.Unlock()
}

func (m *Inmem) IncSignatureReject() {
	m.mu.Lock()
	m.totals.sigRejects++
	m.mu.Unlock()
}

func (m *Inmem) Totals() (duplicates, sigRejects int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.duplicates, m.totals.sigRejects
}
