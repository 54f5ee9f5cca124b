package util

import (
	"io"
)

// TestReader is an io.Reader for tests that serves Data and then fails with Err, or io.EOF if Err is nil.
type TestReader struct {
	Data []byte
	Err  error

	// Reads counts the calls to Read.
	Reads int
}

var _ io.Reader = (*TestReader)(nil)

func (t *TestReader) Read(p []byte) (n int, err error) {
	t.Reads++
	n = copy(p, t.Data)
	t.Data = t.Data[n:]
	if len(t.Data) == 0 {
		err = t.Err
		if err == nil {
			err = io.EOF
		}
	}
	return
}
