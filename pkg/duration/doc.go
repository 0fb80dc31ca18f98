// Package duration interprets the compact duration strings entered in the
// console's unit inputs and checks them against a minimum threshold.
//
// # Duration Strings
//
// A duration string is an optional decimal magnitude immediately followed by
// a unit code, e.g. "523ms", "0.523s", "5m" or "1h". A string holding only a
// unit ("ms") is the unit input's representation of "unit chosen, no value
// entered yet".
//
// # Parsing
//
// Parse is total: it never fails. Input is split at the first ASCII letter
// into a numeric prefix and a unit suffix. A suffix that is not exactly one of
// ms, s, m or h leaves the unit unset; a prefix that is empty or not a number
// leaves the magnitude unset.
//
// # Threshold Check
//
// IsBelowMinimum converts the magnitude to milliseconds and compares it with
// the minimum. The check is advisory and fails open:
//
//   - an unset magnitude is never below the minimum
//   - an unrecognized unit yields Indeterminate, which ShouldWarn reports as
//     no warning
//
// Callers that need to reject malformed values (for example at submit time)
// must validate separately; this package only decides whether to warn.
package duration
