package names

import (
	internalErrors "github.com/adap-names/names/internal/errors"
)

// StringArrayName stores its components unescaped and escapes them on read.
type StringArrayName struct {
	delimiter  rune
	components []string
}

// NewStringArrayName creates a name from at least one component. Every component must be properly escaped with
// respect to the delimiter (see CheckEscaped).
func NewStringArrayName(components []string, opts ...Option) (*StringArrayName, error) {
	delimiter, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "a name needs at least one component")
	}
	for i, c := range components {
		if !CheckEscaped(c, delimiter) {
			return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument,
				"component %d (%#v) is not properly escaped for delimiter %q", i, c, delimiter)
		}
	}
	return newStringArrayName(delimiter, components), nil
}

func newStringArrayName(delimiter rune, escaped []string) *StringArrayName {
	components := make([]string, len(escaped))
	for i, c := range escaped {
		components[i] = Unescape(c, delimiter)
	}
	return &StringArrayName{
		delimiter:  delimiter,
		components: components,
	}
}

func (n *StringArrayName) escapedComponents() []string {
	escaped := make([]string, len(n.components))
	for i, c := range n.components {
		escaped[i] = Escape(c, n.delimiter)
	}
	return escaped
}

func (n *StringArrayName) rebuild(escaped []string) variant {
	return newStringArrayName(n.delimiter, escaped)
}

func (n *StringArrayName) checkInvariants() error {
	if err := checkDelimiterInvariant(n.delimiter); err != nil {
		return err
	}
	for i, c := range n.components {
		if !CheckEscaped(Escape(c, n.delimiter), n.delimiter) {
			return internalErrors.NewErrorf(internalErrors.InvalidState, "stored component %d (%#v) cannot be escaped", i,
				c)
		}
	}
	return nil
}

func (n *StringArrayName) String() string {
	return toString(n)
}

func (n *StringArrayName) AsString() string {
	return asString(n)
}

func (n *StringArrayName) AsStringWith(delimiter string) (string, error) {
	return asStringWith(n, delimiter)
}

func (n *StringArrayName) AsDataString() string {
	return asDataString(n)
}

func (n *StringArrayName) Delimiter() rune {
	return n.delimiter
}

func (n *StringArrayName) IsEqual(other Name) bool {
	return isEqual(n, other)
}

func (n *StringArrayName) HashCode() int32 {
	return hashCode(n)
}

func (n *StringArrayName) Clone() Name {
	return clone(n)
}

func (n *StringArrayName) IsEmpty() bool {
	return isEmpty(n)
}

func (n *StringArrayName) NoComponents() int {
	mustBeValid(n)
	return len(n.components)
}

func (n *StringArrayName) Component(i int) (string, error) {
	return component(n, i)
}

func (n *StringArrayName) SetComponent(i int, c string) (Name, error) {
	return setComponent(n, i, c)
}

func (n *StringArrayName) Insert(i int, c string) (Name, error) {
	return insert(n, i, c)
}

func (n *StringArrayName) Append(c string) (Name, error) {
	return appendComponent(n, c)
}

func (n *StringArrayName) Remove(i int) (Name, error) {
	return remove(n, i)
}

func (n *StringArrayName) Concat(other Name) (Name, error) {
	return concat(n, other)
}
