package memo

import (
	"context"
	"time"

	"github.com/unkn0wn-root/roman"
	c "github.com/unkn0wn-root/roman/codec"
	pr "github.com/unkn0wn-root/roman/provider"
)

// SetCostFunc reports the cost of storing raw under key. Providers that
// account cost (Ristretto) use it; others ignore it.
type SetCostFunc func(key string, raw []byte) int64

// Converter is the memoizing counterpart of roman.Parse and
// roman.Numeral.Format. Results match the codec exactly; only the cost of
// repeated work changes.
type Converter interface {
	Enabled() bool
	Close(context.Context) error

	// Parse behaves like roman.Parse.
	Parse(ctx context.Context, text string) (roman.Numeral, error)
	// ParseMany parses every distinct text. Each input lands in exactly one
	// of the two maps.
	ParseMany(ctx context.Context, texts []string) (values map[string]roman.Numeral, errs map[string]error)
	// Format renders n in style. It fails only when n is not in 1..=roman.Max.
	Format(ctx context.Context, n roman.Numeral, style roman.Style) (string, error)

	// Invalidate drops the stored parse entry for text and, when text is a
	// valid numeral, the formatted entries of its value.
	Invalidate(ctx context.Context, text string) error
}

// Options tune the converter.
// Only Namespace and Provider are required; others have sensible defaults.
type Options struct {
	// Required
	Namespace string      // logical namespace to avoid collisions, e.g. "app:prod"
	Provider  pr.Provider // may be nil only when Disabled

	Codec          c.Codec[roman.Numeral] // nil => codec.Text{}
	Logger         Logger                 // nil => NopLogger
	Hooks          Hooks                  // nil => NopHooks
	ParseTTL       time.Duration          // 0 => 1h
	FormatTTL      time.Duration          // 0 => 1h
	FailureTTL     time.Duration          // 0 => 1m; only with CacheFailures
	CacheFailures  bool                   // also remember inputs that failed to parse
	ComputeSetCost SetCostFunc            // nil => len(raw)
	Disabled       bool                   // pass straight through to the codec
}

func New(opts Options) (Converter, error) {
	return newConverter(opts)
}
