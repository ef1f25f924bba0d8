package memo

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/unkn0wn-root/roman"
	c "github.com/unkn0wn-root/roman/codec"
	"github.com/unkn0wn-root/roman/internal/util"
	"github.com/unkn0wn-root/roman/internal/wire"
	pr "github.com/unkn0wn-root/roman/provider"
)

type converter struct {
	ns       string
	provider pr.Provider
	codec    c.Codec[roman.Numeral]
	log      Logger
	hooks    Hooks

	enabled       bool
	cacheFailures bool

	parseTTL       time.Duration
	formatTTL      time.Duration
	failureTTL     time.Duration
	computeSetCost SetCostFunc
}

func newConverter(opts Options) (*converter, error) {
	if opts.Provider == nil && !opts.Disabled {
		return nil, ErrNoProvider
	}
	if opts.Namespace == "" {
		return nil, ErrNoNamespace
	}

	m := &converter{
		ns:            opts.Namespace,
		provider:      opts.Provider,
		enabled:       !opts.Disabled,
		cacheFailures: opts.CacheFailures,
	}

	// defaults
	m.codec = coalesce[c.Codec[roman.Numeral]](opts.Codec, c.Text{})
	m.log = coalesce[Logger](opts.Logger, NopLogger{})
	m.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	m.parseTTL = coalesce(opts.ParseTTL, defaultParseTTL)
	m.formatTTL = coalesce(opts.FormatTTL, defaultFormatTTL)
	m.failureTTL = coalesce(opts.FailureTTL, defaultFailureTTL)

	if opts.ComputeSetCost != nil {
		m.computeSetCost = opts.ComputeSetCost
	} else {
		m.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return m, nil
}

func (m *converter) Enabled() bool { return m.enabled }

func (m *converter) Close(ctx context.Context) error {
	if m.provider != nil {
		return m.provider.Close(ctx)
	}
	return nil
}

func (m *converter) Parse(ctx context.Context, text string) (roman.Numeral, error) {
	// empty input has nothing worth a round trip
	if !m.enabled || text == "" {
		return roman.Parse(text)
	}
	k := m.parseKey(text)
	if n, hit, err := m.lookupParse(ctx, k, text); hit {
		return n, err
	}

	n, err := roman.Parse(text)
	if err != nil {
		m.hooks.ParseRejected(k, err)
		if m.cacheFailures {
			m.storeFailure(ctx, k, err)
		}
		return n, err
	}
	payload, encErr := m.codec.Encode(n)
	if encErr != nil {
		m.log.Warn("numeral encode failed; result not stored", Fields{"key": k, "err": encErr})
		return n, nil
	}
	m.set(ctx, k, wire.Encode(wire.KindNumeral, payload), m.parseTTL)
	return n, nil
}

func (m *converter) ParseMany(ctx context.Context, texts []string) (map[string]roman.Numeral, map[string]error) {
	values := make(map[string]roman.Numeral, len(texts))
	var errs map[string]error
	for _, t := range texts {
		if _, ok := values[t]; ok {
			continue
		}
		if _, ok := errs[t]; ok {
			continue
		}
		n, err := m.Parse(ctx, t)
		if err != nil {
			if errs == nil {
				errs = make(map[string]error)
			}
			errs[t] = err
			continue
		}
		values[t] = n
	}
	return values, errs
}

func (m *converter) Format(ctx context.Context, n roman.Numeral, style roman.Style) (string, error) {
	if !n.Valid() {
		return "", &roman.RangeError{Value: n.Value()}
	}
	if !m.enabled {
		return n.Format(style).String(), nil
	}
	k := m.formatKey(n, style)
	if s, hit := m.lookupFormat(ctx, k, n, style); hit {
		return s, nil
	}

	s := n.Format(style).String()
	m.set(ctx, k, wire.Encode(wire.KindText, []byte(s)), m.formatTTL)
	return s, nil
}

func (m *converter) Invalidate(ctx context.Context, text string) error {
	if !m.enabled {
		return nil
	}
	keys := []string{m.parseKey(text)}
	if n, err := roman.Parse(text); err == nil {
		keys = append(keys, m.formatKey(n, roman.Upper), m.formatKey(n, roman.Lower))
	}

	var ie *InvalidateError
	for _, k := range keys {
		if err := m.provider.Del(ctx, k); err != nil {
			m.hooks.ProviderError("del", err)
			if ie == nil {
				ie = &InvalidateError{Text: text}
			}
			ie.Keys = append(ie.Keys, k)
			ie.Errs = append(ie.Errs, err)
		}
	}
	if ie != nil {
		m.log.Error("invalidate failed", Fields{"text_key": keys[0], "failed": len(ie.Errs)})
		return ie
	}
	m.log.Debug("invalidated", Fields{"keys": keys})
	return nil
}

// lookupParse reports hit=true when the stored entry answers the parse, either
// with a value or with a replayed failure.
func (m *converter) lookupParse(ctx context.Context, k, text string) (roman.Numeral, bool, error) {
	kind, payload, ok := m.get(ctx, k)
	if !ok {
		return roman.Numeral{}, false, nil
	}
	switch kind {
	case wire.KindNumeral:
		n, err := m.codec.Decode(payload)
		if err != nil || !n.Valid() {
			m.selfHeal(ctx, k, "value_decode")
			return roman.Numeral{}, false, nil
		}
		return n, true, nil
	case wire.KindFailure:
		f, err := wire.DecodeFailure(payload)
		if err != nil {
			m.selfHeal(ctx, k, "corrupt")
			return roman.Numeral{}, false, nil
		}
		replay := failureError(f, text)
		if replay == nil {
			m.selfHeal(ctx, k, "failure_mismatch")
			return roman.Numeral{}, false, nil
		}
		return roman.Numeral{}, true, replay
	default:
		m.selfHeal(ctx, k, "kind_mismatch")
		return roman.Numeral{}, false, nil
	}
}

func (m *converter) lookupFormat(ctx context.Context, k string, n roman.Numeral, style roman.Style) (string, bool) {
	kind, payload, ok := m.get(ctx, k)
	if !ok {
		return "", false
	}
	if kind != wire.KindText {
		m.selfHeal(ctx, k, "kind_mismatch")
		return "", false
	}
	// only the exact canonical text in the requested style is served
	want := n.Format(style).AppendTo(make([]byte, 0, roman.MaxLen))
	if !bytes.Equal(payload, want) {
		m.selfHeal(ctx, k, "value_mismatch")
		return "", false
	}
	return string(payload), true
}

// get fetches and unframes an entry. Misses, provider errors and corrupt
// frames all report ok=false.
func (m *converter) get(ctx context.Context, k string) (wire.Kind, []byte, bool) {
	raw, ok, err := m.provider.Get(ctx, k)
	if err != nil {
		m.hooks.ProviderError("get", err)
		m.log.Warn("provider get failed", Fields{"key": k, "err": err})
		return 0, nil, false
	}
	if !ok {
		return 0, nil, false
	}
	kind, payload, err := wire.Decode(raw)
	if err != nil {
		m.selfHeal(ctx, k, "corrupt")
		return 0, nil, false
	}
	return kind, payload, true
}

func (m *converter) set(ctx context.Context, k string, raw []byte, ttl time.Duration) {
	ok, err := m.provider.Set(ctx, k, raw, m.computeSetCost(k, raw), ttl)
	if err != nil {
		m.hooks.ProviderError("set", err)
		m.log.Warn("provider set failed", Fields{"key": k, "err": err})
		return
	}
	if !ok {
		m.hooks.ProviderSetRejected(k)
		m.log.Debug("set rejected by provider (pressure)", Fields{"key": k})
	}
}

func (m *converter) selfHeal(ctx context.Context, k, reason string) {
	if err := m.provider.Del(ctx, k); err != nil {
		m.hooks.ProviderError("del", err)
	}
	m.hooks.SelfHeal(k, reason)
	m.log.Debug("dropped unreadable entry", Fields{"key": k, "reason": reason})
}

func (m *converter) storeFailure(ctx context.Context, k string, err error) {
	f, ok := failureOf(err)
	if !ok {
		return
	}
	m.set(ctx, k, wire.Encode(wire.KindFailure, wire.EncodeFailure(f)), m.failureTTL)
}

func (m *converter) parseKey(text string) string {
	return util.Key("parse:"+m.ns, util.UpperASCII(text))
}

func (m *converter) formatKey(n roman.Numeral, style roman.Style) string {
	return "format:" + m.ns + ":" + style.String() + ":" + strconv.Itoa(n.Value())
}

// failureOf maps a roman parse error onto its stored form. Empty input is
// never stored.
func failureOf(err error) (wire.Failure, bool) {
	var (
		de *roman.InvalidDigitError
		re *roman.RangeError
	)
	switch {
	case errors.As(err, &de) && !de.Empty():
		return wire.Failure{Class: wire.FailInvalidDigit, Offset: de.Offset}, true
	case errors.As(err, &re):
		return wire.Failure{Class: wire.FailOutOfRange, Value: re.Value}, true
	case errors.Is(err, roman.ErrOverflow):
		return wire.Failure{Class: wire.FailOverflow}, true
	default:
		return wire.Failure{}, false
	}
}

// failureError rebuilds the error for a stored failure, or returns nil when
// the failure cannot belong to text. The offending byte of an invalid-digit
// failure is taken from text itself, since the key folds case.
func failureError(f wire.Failure, text string) error {
	switch f.Class {
	case wire.FailInvalidDigit:
		if f.Offset < 0 || f.Offset >= len(text) {
			return nil
		}
		return &roman.InvalidDigitError{Digit: text[f.Offset], Offset: f.Offset}
	case wire.FailOutOfRange:
		return &roman.RangeError{Value: f.Value}
	case wire.FailOverflow:
		return roman.ErrOverflow
	default:
		return nil
	}
}
