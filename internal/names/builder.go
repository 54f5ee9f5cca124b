package names

import (
	"slices"

	internalErrors "github.com/adap-names/names/internal/errors"
)

// Builder is a mutable sequence of components. Unlike Name, its mutators change the receiver in place. A mutation
// whose postcondition fails is rolled back before the error is returned.
//
// A Builder must not be used by more than one goroutine at a time.
type Builder struct {
	delimiter  rune
	components []string
}

// NewBuilder returns an empty builder, i.e. one without any component.
func NewBuilder(opts ...Option) (*Builder, error) {
	delimiter, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Builder{
		delimiter:  delimiter,
		components: []string{},
	}, nil
}

// NewBuilderFrom returns a builder holding a copy of the components and the delimiter of n.
func NewBuilderFrom(n Name) (*Builder, error) {
	if isNilName(n) {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "name must not be nil")
	}
	escaped := make([]string, n.NoComponents())
	for i := range escaped {
		c, err := n.Component(i)
		if err != nil {
			return nil, err
		}
		escaped[i] = c
	}
	return newBuilder(n.Delimiter(), escaped), nil
}

func newBuilder(delimiter rune, escaped []string) *Builder {
	components := make([]string, len(escaped))
	for i, c := range escaped {
		components[i] = Unescape(c, delimiter)
	}
	return &Builder{
		delimiter:  delimiter,
		components: components,
	}
}

func (b *Builder) escapedComponents() []string {
	escaped := make([]string, len(b.components))
	for i, c := range b.components {
		escaped[i] = Escape(c, b.delimiter)
	}
	return escaped
}

func (b *Builder) Delimiter() rune {
	return b.delimiter
}

func (b *Builder) NoComponents() int {
	return len(b.components)
}

// Component returns the escaped component at index i.
func (b *Builder) Component(i int) (string, error) {
	if err := checkIndex(i, len(b.components)); err != nil {
		return "", err
	}
	return Escape(b.components[i], b.delimiter), nil
}

// mutate applies change to the components and checks the postcondition of a mutation of delta components at index,
// restoring the previous components if it does not hold.
func (b *Builder) mutate(index, delta int, change func()) error {
	before := b.escapedComponents()
	saved := slices.Clone(b.components)
	change()
	if err := checkRestUntouched(before, b.escapedComponents(), index, delta); err != nil {
		b.components = saved
		return err
	}
	return nil
}

// SetComponent replaces the component at index i with the escaped component c.
func (b *Builder) SetComponent(i int, c string) error {
	if err := checkIndex(i, len(b.components)); err != nil {
		return err
	}
	if err := checkComponent(c, b.delimiter); err != nil {
		return err
	}
	return b.mutate(i, 0, func() {
		b.components[i] = Unescape(c, b.delimiter)
	})
}

// Insert inserts the escaped component c before index i.
func (b *Builder) Insert(i int, c string) error {
	if err := checkInsertIndex(i, len(b.components)); err != nil {
		return err
	}
	if err := checkComponent(c, b.delimiter); err != nil {
		return err
	}
	return b.mutate(i, 1, func() {
		b.components = slices.Insert(b.components, i, Unescape(c, b.delimiter))
	})
}

// Append adds the escaped component c at the end.
func (b *Builder) Append(c string) error {
	if err := checkComponent(c, b.delimiter); err != nil {
		return err
	}
	return b.mutate(len(b.components), 1, func() {
		b.components = append(b.components, Unescape(c, b.delimiter))
	})
}

func (b *Builder) Remove(i int) error {
	if err := checkIndex(i, len(b.components)); err != nil {
		return err
	}
	return b.mutate(i, -1, func() {
		b.components = slices.Delete(b.components, i, i+1)
	})
}

// Concat appends every component of other, re-escaped from other's delimiter into the builder's.
func (b *Builder) Concat(other Name) error {
	if isNilName(other) {
		return internalErrors.NewError(internalErrors.InvalidArgument, "other must not be nil")
	}
	saved := slices.Clone(b.components)
	for j := 0; j < other.NoComponents(); j++ {
		c, err := other.Component(j)
		if err == nil {
			err = b.Append(Escape(Unescape(c, other.Delimiter()), b.delimiter))
		}
		if err != nil {
			b.components = saved
			return err
		}
	}
	return nil
}

// StringArrayName returns a persistent snapshot of the builder.
func (b *Builder) StringArrayName() *StringArrayName {
	return newStringArrayName(b.delimiter, b.escapedComponents())
}

// StringName returns a persistent snapshot of the builder.
func (b *Builder) StringName() *StringName {
	return newStringName(b.delimiter, b.escapedComponents())
}
