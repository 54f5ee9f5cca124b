package files

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"

	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/names"
)

// Directory owns a set of child nodes. The root of a tree is a directory too: its base name is always empty, it is its
// own parent and it cannot be moved.
type Directory struct {
	node
	root bool

	// children is keyed by node ID, so iteration order is stable and independent of base names.
	children btree.Map[string, Node]
}

var _ Node = (*Directory)(nil)

// NewRoot returns the root directory of a new, empty tree.
func NewRoot() *Directory {
	d := &Directory{
		root: true,
	}
	d.id = uuid.New()
	d.parent = d
	return d
}

func NewDirectory(baseName string, parent *Directory) (*Directory, error) {
	d := &Directory{}
	if err := initialize(d, baseName, parent); err != nil {
		return nil, err
	}
	return d, nil
}

// IsRoot reports whether d is the root of its tree.
func (d *Directory) IsRoot() bool {
	return d.root
}

// Add adds n to the children of d. It does not update the parent of n; use Move for that.
func (d *Directory) Add(n Node) error {
	if n == nil {
		return internalErrors.NewError(internalErrors.InvalidArgument, "node must not be nil")
	}
	key := n.ID().String()
	if _, ok := d.children.Get(key); ok {
		return internalErrors.NewErrorf(internalErrors.InvalidArgument, "node %s is already a child of %s", key, d.id)
	}
	d.children.Set(key, n)
	log.Debugf("added node %s to directory %s", key, d.id)
	return nil
}

// Remove removes n from the children of d.
func (d *Directory) Remove(n Node) error {
	if n == nil {
		return internalErrors.NewError(internalErrors.InvalidArgument, "node must not be nil")
	}
	key := n.ID().String()
	if _, ok := d.children.Delete(key); !ok {
		return internalErrors.NewErrorf(internalErrors.InvalidArgument, "node %s is not a child of %s", key, d.id)
	}
	log.Debugf("removed node %s from directory %s", key, d.id)
	return nil
}

func (d *Directory) Contains(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := d.children.Get(n.ID().String())
	return ok
}

// Children returns the children of d ordered by ID.
func (d *Directory) Children() []Node {
	children := make([]Node, 0, d.children.Len())
	d.children.Scan(func(_ string, n Node) bool {
		children = append(children, n)
		return true
	})
	return children
}

// Child returns the first child, in ID order, whose base name is baseName, or nil. Links without a target are
// skipped.
func (d *Directory) Child(baseName string) Node {
	var found Node
	d.children.Scan(func(_ string, n Node) bool {
		if bn, err := n.BaseName(); err == nil && bn == baseName {
			found = n
			return false
		}
		return true
	})
	return found
}

func (d *Directory) BaseName() (string, error) {
	return storedBaseName(d)
}

// Rename changes the base name of d. The root only accepts the empty base name, which leaves it unchanged.
func (d *Directory) Rename(baseName string) error {
	if d.root {
		if err := checkInvariants(d); err != nil {
			return err
		}
		return internalErrors.Assert(baseName == "", internalErrors.InvalidArgument,
			"root base name must stay empty, got %#v", baseName)
	}
	return rename(d, baseName)
}

func (d *Directory) FullName() (names.Name, error) {
	if d.root {
		if err := checkInvariants(d); err != nil {
			return nil, err
		}
		return names.NewStringName("", names.WithDelimiter(FullNameDelimiter))
	}
	return fullName(d)
}

func (d *Directory) Move(to *Directory) error {
	if d.root {
		return internalErrors.NewError(internalErrors.InvalidArgument, "root cannot be moved")
	}
	return move(d, to)
}

func (d *Directory) FindNodes(baseName string) (NodeSet, error) {
	return findNodes(d, baseName)
}

func (d *Directory) findInner(baseName string, s NodeSet) error {
	if err := findInnerSelf(d, baseName, s); err != nil {
		return err
	}
	var err error
	d.children.Scan(func(_ string, n Node) bool {
		err = n.findInner(baseName, s)
		return err == nil
	})
	return err
}
