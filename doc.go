// Package roman converts between integers and Roman numeral text.
//
// What:
//
//   - Numeral holds a value in 1..=Max (Max = 4999, MMMMCMXCIX). A live Numeral
//     built by New, NewChecked or Parse is never zero and never above Max.
//   - Format renders a Numeral by greedy subtraction over a fixed 13-rung ladder
//     (M, CM, D, CD, C, XC, L, XL, X, IX, V, IV, I) in upper or lower case.
//   - Parse reads numeral text in one left-to-right pass, case-insensitively,
//     grouping runs of equal digits into units and resolving subtractive pairs.
//
// Leniency:
//
//	Parse does not enforce canonical form. "IIII" is 4, "XXXX" is 40, and a
//	repeated run before a larger digit is subtracted as one block, so "IIIIIX" is 5.
//	Format always produces the canonical (shortest) numeral.
//
// Errors:
//
//   - ErrInvalidDigit: a byte outside M D C L X V I (either case), or empty input.
//     Returned as *InvalidDigitError carrying the byte and its offset.
//   - ErrOutOfRange: the numeral summed to 0 or above Max. Returned as *RangeError
//     carrying the computed value.
//   - ErrOverflow: the running sum left the uint16 width before the range check
//     could apply. Only reachable with very long input.
//
// Complexity:
//
//   - Format: O(len(output)), at most 15 symbols; no allocation through WriteTo/AppendTo.
//   - Parse:  O(len(text)), constant extra memory.
//
// Encodings:
//
//	Numeral implements encoding.TextMarshaler/TextUnmarshaler (JSON strings; JSON
//	numbers are accepted on decode), msgpack.CustomEncoder/CustomDecoder and
//	cbor.Marshaler/Unmarshaler. All of them carry the upper-case numeral text.
package roman
