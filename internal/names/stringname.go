package names

import (
	"strings"

	internalErrors "github.com/adap-names/names/internal/errors"
)

// StringName stores its components as one escaped string joined by the delimiter, together with the number of
// components. A name without components and a name with one empty component share the empty string and are told
// apart by the count only.
type StringName struct {
	delimiter    rune
	name         string
	noComponents int
}

// NewStringName parses s, splitting it at every unescaped delimiter. The empty string yields one empty component.
func NewStringName(s string, opts ...Option) (*StringName, error) {
	delimiter, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	parts := Split(s, delimiter)
	for i, p := range parts {
		if !CheckEscaped(p, delimiter) {
			return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument,
				"component %d (%#v) of %#v is not properly escaped for delimiter %q", i, p, s, delimiter)
		}
	}
	return &StringName{
		delimiter:    delimiter,
		name:         s,
		noComponents: len(parts),
	}, nil
}

func newStringName(delimiter rune, escaped []string) *StringName {
	return &StringName{
		delimiter:    delimiter,
		name:         strings.Join(escaped, string(delimiter)),
		noComponents: len(escaped),
	}
}

func (n *StringName) escapedComponents() []string {
	if n.noComponents == 0 {
		return []string{}
	}
	return Split(n.name, n.delimiter)
}

func (n *StringName) rebuild(escaped []string) variant {
	return newStringName(n.delimiter, escaped)
}

func (n *StringName) checkInvariants() error {
	if err := checkDelimiterInvariant(n.delimiter); err != nil {
		return err
	}
	if n.noComponents == 0 {
		return internalErrors.Assert(n.name == "", internalErrors.InvalidState,
			"name %#v has no components but is not empty", n.name)
	}
	parts := Split(n.name, n.delimiter)
	if len(parts) != n.noComponents {
		return internalErrors.NewErrorf(internalErrors.InvalidState, "name %#v has %d components but %d are recorded",
			n.name, len(parts), n.noComponents)
	}
	for i, p := range parts {
		if !CheckEscaped(p, n.delimiter) {
			return internalErrors.NewErrorf(internalErrors.InvalidState, "stored component %d (%#v) is not escaped", i, p)
		}
	}
	return nil
}

func (n *StringName) String() string {
	return toString(n)
}

func (n *StringName) AsString() string {
	return asString(n)
}

func (n *StringName) AsStringWith(delimiter string) (string, error) {
	return asStringWith(n, delimiter)
}

func (n *StringName) AsDataString() string {
	return asDataString(n)
}

func (n *StringName) Delimiter() rune {
	return n.delimiter
}

func (n *StringName) IsEqual(other Name) bool {
	return isEqual(n, other)
}

func (n *StringName) HashCode() int32 {
	return hashCode(n)
}

func (n *StringName) Clone() Name {
	return clone(n)
}

func (n *StringName) IsEmpty() bool {
	return isEmpty(n)
}

func (n *StringName) NoComponents() int {
	mustBeValid(n)
	return n.noComponents
}

func (n *StringName) Component(i int) (string, error) {
	return component(n, i)
}

func (n *StringName) SetComponent(i int, c string) (Name, error) {
	return setComponent(n, i, c)
}

func (n *StringName) Insert(i int, c string) (Name, error) {
	return insert(n, i, c)
}

func (n *StringName) Append(c string) (Name, error) {
	return appendComponent(n, c)
}

func (n *StringName) Remove(i int) (Name, error) {
	return remove(n, i)
}

func (n *StringName) Concat(other Name) (Name, error) {
	return concat(n, other)
}
