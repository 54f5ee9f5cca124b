package names

import (
	"strings"
	"unicode/utf16"

	internalErrors "github.com/adap-names/names/internal/errors"
)

// variant is the storage-specific part of a name. Everything else is derived from it by the functions in this file,
// which both StringName and StringArrayName delegate to.
type variant interface {
	Name

	// escapedComponents returns a fresh slice of the escaped components.
	escapedComponents() []string

	// rebuild returns a new value of the same variant and delimiter holding the given escaped components.
	rebuild(escaped []string) variant

	checkInvariants() error
}

var (
	_ variant = (*StringName)(nil)
	_ variant = (*StringArrayName)(nil)
)

// mustBeValid panics with an InvalidState error if v is corrupted. Used by operations that have no error result.
func mustBeValid(v variant) {
	if err := v.checkInvariants(); err != nil {
		panic(err)
	}
}

func joinUnescaped(v variant, delimiter rune) string {
	own := v.Delimiter()
	escaped := v.escapedComponents()
	unescaped := make([]string, len(escaped))
	for i, c := range escaped {
		unescaped[i] = Unescape(c, own)
	}
	return strings.Join(unescaped, string(delimiter))
}

func asString(v variant) string {
	mustBeValid(v)
	return joinUnescaped(v, v.Delimiter())
}

func asStringWith(v variant, delimiter string) (string, error) {
	if err := v.checkInvariants(); err != nil {
		return "", err
	}
	d, err := parseDelimiter(delimiter)
	if err != nil {
		return "", err
	}
	return joinUnescaped(v, d), nil
}

func asDataString(v variant) string {
	mustBeValid(v)
	own := v.Delimiter()
	escaped := v.escapedComponents()
	unescaped := make([]string, len(escaped))
	for i, c := range escaped {
		unescaped[i] = Unescape(c, own)
	}
	return Join(unescaped, DefaultDelimiter)
}

func toString(v variant) string {
	mustBeValid(v)
	return strings.Join(v.escapedComponents(), string(v.Delimiter()))
}

func isEqual(v variant, other Name) bool {
	mustBeValid(v)
	if isNilName(other) {
		return false
	}
	return v.Delimiter() == other.Delimiter() && v.AsDataString() == other.AsDataString()
}

func hashCode(v variant) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(toString(v) + string(v.Delimiter()))) {
		h = h*31 + int32(c)
	}
	return h
}

func clone(v variant) Name {
	mustBeValid(v)
	return v.rebuild(v.escapedComponents())
}

func isEmpty(v variant) bool {
	return v.NoComponents() == 0
}

func component(v variant, i int) (string, error) {
	if err := v.checkInvariants(); err != nil {
		return "", err
	}
	escaped := v.escapedComponents()
	if err := checkIndex(i, len(escaped)); err != nil {
		return "", err
	}
	return escaped[i], nil
}

// mutate runs the common protocol of every persistent mutation: invariant check, argument checks, the change itself
// on a copy of the components, and the postcondition check on the result.
func mutate(v variant, index, delta int, checkArgs func(n int) error, change func(escaped []string) []string) (Name,
	error) {
	if err := v.checkInvariants(); err != nil {
		return nil, err
	}
	before := v.escapedComponents()
	if err := checkArgs(len(before)); err != nil {
		return nil, err
	}
	after := change(v.escapedComponents())
	res := v.rebuild(after)
	if err := checkRestUntouched(before, res.escapedComponents(), index, delta); err != nil {
		return nil, err
	}
	return res, nil
}

func setComponent(v variant, i int, c string) (Name, error) {
	return mutate(v, i, 0, func(n int) error {
		if err := checkIndex(i, n); err != nil {
			return err
		}
		return checkComponent(c, v.Delimiter())
	}, func(escaped []string) []string {
		escaped[i] = c
		return escaped
	})
}

func insert(v variant, i int, c string) (Name, error) {
	return mutate(v, i, 1, func(n int) error {
		if err := checkInsertIndex(i, n); err != nil {
			return err
		}
		return checkComponent(c, v.Delimiter())
	}, func(escaped []string) []string {
		escaped = append(escaped, "")
		copy(escaped[i+1:], escaped[i:])
		escaped[i] = c
		return escaped
	})
}

func appendComponent(v variant, c string) (Name, error) {
	if err := v.checkInvariants(); err != nil {
		return nil, err
	}
	return mutate(v, v.NoComponents(), 1, func(int) error {
		return checkComponent(c, v.Delimiter())
	}, func(escaped []string) []string {
		return append(escaped, c)
	})
}

func remove(v variant, i int) (Name, error) {
	return mutate(v, i, -1, func(n int) error {
		return checkIndex(i, n)
	}, func(escaped []string) []string {
		return append(escaped[:i], escaped[i+1:]...)
	})
}

// concat never rejects a differing delimiter; the components of other are re-escaped instead.
func concat(v variant, other Name) (Name, error) {
	if err := v.checkInvariants(); err != nil {
		return nil, err
	}
	if isNilName(other) {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "other must not be nil")
	}
	before := v.escapedComponents()
	b := newBuilder(v.Delimiter(), before)
	otherDelimiter := other.Delimiter()
	for j := 0; j < other.NoComponents(); j++ {
		c, err := other.Component(j)
		if err != nil {
			return nil, err
		}
		if err := b.Append(Escape(Unescape(c, otherDelimiter), v.Delimiter())); err != nil {
			return nil, err
		}
	}
	res := v.rebuild(b.escapedComponents())
	after := res.escapedComponents()
	if err := internalErrors.Assert(len(after) == len(before)+other.NoComponents(), internalErrors.MethodFailed,
		"unexpected number of components: want %d got %d", len(before)+other.NoComponents(), len(after)); err != nil {
		return nil, err
	}
	if err := checkRestUntouched(before, after[:len(before)], len(before), 0); err != nil {
		return nil, err
	}
	return res, nil
}
