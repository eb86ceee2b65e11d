// Package scalar parses normalized text into numeric values.
//
// Parse is generic over every built-in integer and float kind (and any type
// defined on top of one). Failures never panic; they return an *Error that
// wraps ErrSyntax or ErrRange so callers can tell a typo from an overflow.
package scalar
