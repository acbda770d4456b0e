package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveAccept(outcome string, durMs float64)
	ObserveNotify(ok bool, attempts int, durMs float64)
	IncDuplicate()
	IncSignatureReject()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveAccept(string, float64)            {}
func (Noop) ObserveNotify(bool, int, float64)         {}
func (Noop) IncDuplicate()                            {}
func (Noop) IncSignatureReject()                      {}
