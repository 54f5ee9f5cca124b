// Package names implements structured hierarchical names: ordered sequences of components joined by a one-character
// delimiter, where a component may contain the delimiter if it is escaped with EscapeCharacter.
//
// Two storage variants exist. StringArrayName keeps the components unescaped and escapes them on read; StringName
// keeps one escaped, delimiter-joined string and splits it on read. Both implement Name and cannot be told apart
// through it.
//
// Name values are persistent: SetComponent, Insert, Append, Remove and Concat return a new Name and never modify the
// receiver. Builder offers the same operations in place.
//
// Component values passed to and returned from a Name are always escaped with respect to the name's delimiter.
package names

import (
	"fmt"
	"unicode/utf8"

	internalErrors "github.com/adap-names/names/internal/errors"
)

const (
	// DefaultDelimiter separates components of names created without WithDelimiter, and of every data string.
	DefaultDelimiter rune = '.'
	// EscapeCharacter marks the character following it as literal content.
	EscapeCharacter rune = '\\'
)

type Name interface {
	fmt.Stringer

	// AsString returns the unescaped components joined by the name's delimiter. The result is meant for humans and
	// cannot always be parsed back.
	AsString() string

	// AsStringWith is like AsString but joins with delimiter, which must be exactly one character.
	AsStringWith(delimiter string) (string, error)

	// AsDataString returns the components re-escaped for and joined by DefaultDelimiter. Passing the result to
	// NewStringName reproduces the components of this name.
	AsDataString() string

	Delimiter() rune

	// IsEqual reports whether other has the same data string and the same delimiter.
	IsEqual(other Name) bool

	// HashCode agrees with IsEqual.
	HashCode() int32

	// Clone returns an equal name that shares no storage with the receiver.
	Clone() Name

	IsEmpty() bool
	NoComponents() int

	// Component returns the escaped component at index i, 0 <= i < NoComponents().
	Component(i int) (string, error)

	SetComponent(i int, c string) (Name, error)

	// Insert inserts c before index i, 0 <= i <= NoComponents().
	Insert(i int, c string) (Name, error)

	Append(c string) (Name, error)
	Remove(i int) (Name, error)

	// Concat appends the components of other, re-escaped from other's delimiter into the receiver's.
	Concat(other Name) (Name, error)
}

type options struct {
	delimiter string
}

// Option configures the construction of a name.
type Option func(o *options)

// WithDelimiter sets the delimiter of a name. It must be exactly one character and must not be EscapeCharacter.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

func newOptions(opts []Option) (rune, error) {
	o := &options{
		delimiter: string(DefaultDelimiter),
	}
	for _, opt := range opts {
		opt(o)
	}
	return parseDelimiter(o.delimiter)
}

func parseDelimiter(delimiter string) (rune, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, internalErrors.NewErrorf(internalErrors.InvalidArgument, "delimiter %#v is not exactly one character",
			delimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == utf8.RuneError {
		return 0, internalErrors.NewErrorf(internalErrors.InvalidArgument, "delimiter %#v is not valid UTF-8", delimiter)
	}
	if r == EscapeCharacter {
		return 0, internalErrors.NewErrorf(internalErrors.InvalidArgument, "delimiter must not be the escape character")
	}
	return r, nil
}
