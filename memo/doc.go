// Package memo implements a provider-agnostic memoizing layer over the roman
// codec. Parse results, parse failures (optional) and formatted numerals are
// kept in a byte store so repeated conversions of the same text skip the
// decoder. The codec is cheap; memo exists for callers that already run a
// shared cache (Redis, Ristretto, BigCache) and want numerals to travel through
// it in a framed, validated form.
//
// Components:
//   - Provider: byte store with TTL (Ristretto, BigCache, Redis).
//   - Codec[roman.Numeral]: payload encoding of parse results (Text by default).
//   - Logger / Hooks: structured logs and high-signal events.
//
// Keys:
//
//	parse:<ns>:v:<TEXT>             - parse result or failure; TEXT is ASCII upper-cased
//	parse:<ns>:h:<sha256 hex>       - same, for TEXT longer than 32 bytes
//	format:<ns>:<style>:<value>     - formatted numeral text
//
// Entries that fail validation on read (bad frame, undecodable payload, text
// that is not the canonical numeral in the requested style) are deleted and reported
// through Hooks.SelfHeal; the converter then answers from the codec directly.
// Provider errors never fail a conversion.
package memo
