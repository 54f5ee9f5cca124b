// Package util holds small helpers shared by the loaders and their tests.
package util

import (
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingJSON is returned by UnmarshalJSON when the input holds more than one JSON value.
var ErrTrailingJSON = errors.New("unexpected sequence of multiple JSON values when a single JSON value is expected")

// UnmarshalJSON decodes exactly one JSON value from reader into v.
func UnmarshalJSON(reader io.Reader, v any, disallowUnknownFields bool) error {
	decoder := json.NewDecoder(reader)
	if disallowUnknownFields {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(v); err != nil {
		return err
	}
	var next json.RawMessage
	switch err := decoder.Decode(&next); err {
	case nil:
		return ErrTrailingJSON
	case io.EOF:
		return nil
	default:
		return err
	}
}
