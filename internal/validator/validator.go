package validator

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aretw0/gameinput/pkg/domain"
)

// Diagnostic formats shown to the player.
const (
	MsgExactCount  = "THERE MUST BE %d UNITS"
	MsgCountRange  = "AMOUNT OF UNITS MUST BE WITHIN %d AND %d"
	MsgNumberRange = "ENTER A NUMBER WITHIN %s, AND %s"
	MsgElemRange   = "NUMBER MUST BE WITHIN %s AND %s"
)

// CheckCount reports whether n elements satisfy c.
// On rejection it returns the one diagnostic line to show.
func CheckCount(c domain.Count, n int) (string, bool) {
	if c.Allows(n) {
		return "", true
	}
	switch c.Kind() {
	case domain.CountExact:
		return fmt.Sprintf(MsgExactCount, c.N()), false
	default:
		lo, hi := c.Bounds()
		return fmt.Sprintf(MsgCountRange, lo, hi), false
	}
}

// CheckValue reports whether v lies within r. On rejection the diagnostic is
// format applied to the low and high bounds.
func CheckValue[T cmp.Ordered](r domain.Range[T], v T, format string) (string, bool) {
	if r.Contains(v) {
		return "", true
	}
	return fmt.Sprintf(format, bound(r.Low), bound(r.High)), false
}

// bound formats a range limit. Whole floats keep one decimal ("1.0").
func bound(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && !math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'f', 1, rv.Type().Bits())
		}
		return strconv.FormatFloat(f, 'g', -1, rv.Type().Bits())
	}
	return fmt.Sprint(v)
}
