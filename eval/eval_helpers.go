/*
File    : go-pinky/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-pinky/objects"
)

// IsReturn reports whether an object is the internal return marker that
// unwinds `ret` statements through enclosing statement lists.
//
// Parameters:
//   - obj: The object to check (can be nil)
//
// Returns:
//   - bool: true if the object is a ReturnValue wrapper
func IsReturn(obj objects.PinkyObject) bool {
	if obj != nil {
		return obj.GetType() == objects.ReturnType
	}
	return false
}

// UnwrapReturnValue extracts the actual value from a ReturnValue wrapper.
//
// The function call site uses this to turn the unwinding marker back into
// an ordinary value once the body has been exited. A non-wrapper object
// is returned unchanged, which makes the function safe to call on any
// result.
//
// Example flow:
//
//	func add(a, b) ret a + b end   -- body yields ReturnValue(Number(8))
//	add(5, 3)                      -- the call site unwraps to Number(8)
func UnwrapReturnValue(obj objects.PinkyObject) objects.PinkyObject {
	if retVal, isReturn := obj.(*objects.ReturnValue); isReturn {
		return retVal.Value
	}
	return obj
}

// trueModulo computes the remainder of a divided by b with the sign of
// the divisor: ((a mod b) + b) mod b. For b > 0 the result lies in
// [0, b); for b < 0 it lies in (b, 0]. This differs from the native
// remainder, which carries the sign of the dividend.
//
// Example:
//
//	trueModulo(-7, 3)  ->  2
//	trueModulo(7, -3)  -> -2
func trueModulo(a, b float64) float64 {
	return math.Mod(math.Mod(a, b)+b, b)
}

// boolToNumber coerces a boolean to its numeric form (0 or 1) for the
// mixed bool/number operations of the coercion matrix.
func boolToNumber(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// isWholeNonNegative reports whether a number is usable as a string
// repetition count: zero or greater, with no fractional part.
func isWholeNonNegative(v float64) bool {
	return v >= 0 && v == math.Ceil(v)
}
