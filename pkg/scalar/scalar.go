package scalar

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Number is the set of types Parse understands.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Parser turns normalized text into a value of an ordered type.
type Parser[T cmp.Ordered] func(string) (T, error)

var (
	// ErrSyntax means the text is not a number of the requested kind.
	ErrSyntax = errors.New("invalid number syntax")
	// ErrRange means the text is a number but does not fit the requested type.
	ErrRange = errors.New("number out of range for type")
)

// Error records a failed parse.
type Error struct {
	Input string
	Type  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse %q as %s: %v", e.Input, e.Type, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse parses s as a base-10 value of type T.
func Parse[T Number](s string) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()
	typ := v.Type()

	fail := func(err error) (T, error) {
		var zero T
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			err = ErrRange
		} else {
			err = ErrSyntax
		}
		return zero, &Error{Input: s, Type: typ.String(), Err: err}
	}

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return fail(err)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// ParseUint refuses any sign; a single leading '+' is allowed.
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, typ.Bits())
		if err != nil {
			return fail(err)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if isHexFloat(s) {
			return fail(strconv.ErrSyntax)
		}
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return fail(err)
		}
		v.SetFloat(f)
	}
	return out, nil
}

// isHexFloat reports whether s uses the 0x form, which is not decimal input.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// For returns Parse[T] as a Parser.
func For[T Number]() Parser[T] {
	return Parse[T]
}
