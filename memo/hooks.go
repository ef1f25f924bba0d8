package memo

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The converter calls them on hot paths.
type Hooks interface {
	// A stored entry was unreadable and has been deleted.
	// reason ∈ {"corrupt", "value_decode", "value_mismatch", "kind_mismatch", "failure_mismatch"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// A provider call failed and the converter answered without the cache.
	// op ∈ {"get", "set", "del"}
	ProviderError(op string, err error)

	// Input failed to parse. storageKey identifies the input without
	// repeating arbitrary caller text.
	ParseRejected(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)     {}
func (NopHooks) ProviderSetRejected(string)  {}
func (NopHooks) ProviderError(string, error) {}
func (NopHooks) ParseRejected(string, error) {}

// LogHooks reports every event through a Logger. Wrap it with hooks/async
// when the logger may block.
type LogHooks struct{ L Logger }

var _ Hooks = LogHooks{}

func (h LogHooks) SelfHeal(k, reason string) {
	h.L.Debug("memo.self_heal", Fields{"key": k, "reason": reason})
}

func (h LogHooks) ProviderSetRejected(k string) {
	h.L.Warn("memo.provider_set_rejected", Fields{"key": k})
}

func (h LogHooks) ProviderError(op string, err error) {
	h.L.Warn("memo.provider_error", Fields{"op": op, "err": err})
}

func (h LogHooks) ParseRejected(k string, err error) {
	h.L.Debug("memo.parse_rejected", Fields{"key": k, "err": err})
}
