package names

import (
	"reflect"
	"unicode/utf8"

	internalErrors "github.com/adap-names/names/internal/errors"
)

// checkDelimiterInvariant reports a broken delimiter of an existing name.
func checkDelimiterInvariant(delimiter rune) error {
	if delimiter == EscapeCharacter || delimiter == utf8.RuneError || !utf8.ValidRune(delimiter) {
		return internalErrors.NewErrorf(internalErrors.InvalidState, "delimiter %q is not a valid delimiter", delimiter)
	}
	return nil
}

func checkIndex(i, n int) error {
	return internalErrors.Assert(i >= 0 && i < n, internalErrors.InvalidArgument, "index %d out of bounds [0, %d)", i, n)
}

func checkInsertIndex(i, n int) error {
	return internalErrors.Assert(i >= 0 && i <= n, internalErrors.InvalidArgument, "index %d out of bounds [0, %d]", i, n)
}

func checkComponent(c string, delimiter rune) error {
	return internalErrors.Assert(CheckEscaped(c, delimiter), internalErrors.InvalidArgument,
		"component %#v is not properly escaped for delimiter %q", c, delimiter)
}

// checkRestUntouched verifies the postcondition of a mutation that changed the component count by delta at index:
// every component it did not touch must be byte-for-byte what it was before.
func checkRestUntouched(before, after []string, index, delta int) error {
	if len(after) != len(before)+delta {
		return internalErrors.NewErrorf(internalErrors.MethodFailed, "unexpected number of components: want %d got %d",
			len(before)+delta, len(after))
	}
	for i := 0; i < index && i < len(before); i++ {
		if before[i] != after[i] {
			return untouchedChanged(before[i], after[i])
		}
	}
	start := index + 1
	if delta == 1 {
		start = index
	}
	for i := start; i < len(before); i++ {
		if before[i] != after[i+delta] {
			return untouchedChanged(before[i], after[i+delta])
		}
	}
	return nil
}

func untouchedChanged(before, after string) error {
	return internalErrors.NewErrorf(internalErrors.MethodFailed, "untouched component changed from %#v to %#v", before,
		after)
}

// isNilName reports whether n is nil or an interface holding a nil pointer.
func isNilName(n Name) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
