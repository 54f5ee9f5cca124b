package files

import (
	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/names"
)

type FileState int

const (
	FileClosed FileState = iota
	FileOpen
)

func (s FileState) String() string {
	switch s {
	case FileClosed:
		return "closed"
	case FileOpen:
		return "open"
	}
	return "unknown"
}

// File is a leaf node with an open/closed lifecycle. Contents are not modelled.
type File struct {
	node
	state FileState
}

var _ Node = (*File)(nil)

// NewFile returns a closed file named baseName inside parent.
func NewFile(baseName string, parent *Directory) (*File, error) {
	f := &File{
		state: FileClosed,
	}
	if err := initialize(f, baseName, parent); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) State() FileState {
	return f.state
}

// Open moves a closed file to FileOpen.
func (f *File) Open() error {
	if err := checkInvariants(f); err != nil {
		return err
	}
	if f.state != FileClosed {
		return internalErrors.NewErrorf(internalErrors.InvalidArgument, "file must be closed to open it but is %s",
			f.state)
	}
	f.state = FileOpen
	return nil
}

// Close moves an open file to FileClosed.
func (f *File) Close() error {
	if err := checkInvariants(f); err != nil {
		return err
	}
	if f.state != FileOpen {
		return internalErrors.NewErrorf(internalErrors.InvalidArgument, "file must be open to close it but is %s",
			f.state)
	}
	f.state = FileClosed
	return nil
}

func (f *File) BaseName() (string, error) {
	return storedBaseName(f)
}

func (f *File) Rename(baseName string) error {
	return rename(f, baseName)
}

func (f *File) FullName() (names.Name, error) {
	return fullName(f)
}

func (f *File) Move(to *Directory) error {
	return move(f, to)
}

func (f *File) FindNodes(baseName string) (NodeSet, error) {
	return findNodes(f, baseName)
}

func (f *File) findInner(baseName string, s NodeSet) error {
	return findInnerSelf(f, baseName, s)
}
