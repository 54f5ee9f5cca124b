package manifest

import (
	"fmt"
	"regexp"
	"strings"

	internalErrors "github.com/adap-names/names/internal/errors"
)

var regexpSimpleKey = regexp.MustCompile("^[a-zA-Z0-9]+$")

// errorBag collects problems found in a manifest so that all of them can be reported at once.
type errorBag struct {
	errors []string
}

func (e *errorBag) add(path, msg string) {
	if path == "" {
		path = "."
	}
	e.errors = append(e.errors, fmt.Sprintf("error at %s: %s", path, msg))
}

func (e *errorBag) count() int {
	return len(e.errors)
}

func (e *errorBag) err() error {
	if len(e.errors) == 0 {
		return nil
	}
	return internalErrors.NewErrorf(internalErrors.InvalidArgument, "got %d error(s):\n  - %s", len(e.errors),
		strings.Join(e.errors, "\n  - "))
}

// validateContext is a position in the manifest that errors are reported against.
type validateContext struct {
	bag  *errorBag
	path string
}

func (v *validateContext) AddError(msg string) {
	v.bag.add(v.path, msg)
}

func (v *validateContext) AddErrorf(format string, args ...any) {
	v.AddError(fmt.Sprintf(format, args...))
}

func (v *validateContext) Child(x any) *validateContext {
	var path string
	switch y := x.(type) {
	case int:
		path = fmt.Sprintf("%s[%d]", v.path, y)
	case string:
		if regexpSimpleKey.MatchString(y) {
			path = fmt.Sprintf("%s.%s", v.path, y)
		} else {
			path = fmt.Sprintf("%s[%#v]", v.path, y)
		}
	default:
		panic(fmt.Sprintf("x has unexpected type %T", x))
	}
	return &validateContext{
		bag:  v.bag,
		path: path,
	}
}

func (v *validateContext) ErrorCount() int {
	return v.bag.count()
}
