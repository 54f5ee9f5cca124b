// Package files implements a composite hierarchy of directories, files and links. Every node knows its parent, and
// its full name is the full name of the parent with its own base name appended.
//
// A tree is owned by a single goroutine; nothing in this package is safe for concurrent use.
package files

import (
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/names"
)

// FullNameDelimiter separates the base names of a full name.
const FullNameDelimiter = "/"

// Node is implemented by *Directory, *File and *Link.
type Node interface {
	// ID identifies the node for its whole lifetime, independent of renames and moves.
	ID() uuid.UUID

	BaseName() (string, error)
	Rename(baseName string) error

	// Parent returns the directory containing the node. The root is its own parent.
	Parent() *Directory

	FullName() (names.Name, error)

	// Move removes the node from its parent and adds it to to in one step.
	Move(to *Directory) error

	// FindNodes returns every node in the subtree rooted at this node, the node included, whose base name is
	// baseName.
	FindNodes(baseName string) (NodeSet, error)

	base() *node
	findInner(baseName string, s NodeSet) error
}

type node struct {
	id       uuid.UUID
	baseName string
	parent   *Directory
}

func (n *node) ID() uuid.UUID {
	return n.id
}

func (n *node) Parent() *Directory {
	return n.parent
}

func (n *node) base() *node {
	return n
}

// initialize validates the constructor arguments shared by every non-root node and registers self with parent.
func initialize(self Node, baseName string, parent *Directory) error {
	if parent == nil {
		return internalErrors.NewError(internalErrors.InvalidArgument, "parent must not be nil")
	}
	if err := checkBaseName(baseName); err != nil {
		return err
	}
	b := self.base()
	b.id = uuid.New()
	b.baseName = baseName
	b.parent = parent
	return parent.Add(self)
}

func checkBaseName(baseName string) error {
	return internalErrors.Assert(baseName != "", internalErrors.InvalidArgument, "base name must not be empty")
}

func isRoot(n Node) bool {
	d, ok := n.(*Directory)
	return ok && d.root
}

// checkInvariants reports a node whose stored base name is not valid for its kind.
func checkInvariants(n Node) error {
	b := n.base()
	if isRoot(n) {
		return internalErrors.Assert(b.baseName == "", internalErrors.InvalidState, "root has base name %#v",
			b.baseName)
	}
	if b.parent == nil {
		return internalErrors.NewErrorf(internalErrors.InvalidState, "node %s has no parent", b.id)
	}
	return internalErrors.Assert(b.baseName != "", internalErrors.InvalidState, "node %s has an empty base name", b.id)
}

func storedBaseName(n Node) (string, error) {
	if err := checkInvariants(n); err != nil {
		return "", err
	}
	return n.base().baseName, nil
}

func rename(n Node, baseName string) error {
	if err := checkInvariants(n); err != nil {
		return err
	}
	if err := checkBaseName(baseName); err != nil {
		return err
	}
	n.base().baseName = baseName
	return nil
}

// escapeBaseName turns a base name into a component of a name with the given delimiter. Escape characters in the
// base name are escaped as well, so that every base name maps to exactly one component.
func escapeBaseName(baseName string, delimiter rune) string {
	escapeCharacter := string(names.EscapeCharacter)
	return names.Escape(strings.ReplaceAll(baseName, escapeCharacter, escapeCharacter+escapeCharacter), delimiter)
}

func unescapeBaseName(component string, delimiter rune) string {
	escapeCharacter := string(names.EscapeCharacter)
	return strings.ReplaceAll(names.Unescape(component, delimiter), escapeCharacter+escapeCharacter, escapeCharacter)
}

func fullName(n Node) (names.Name, error) {
	if err := checkInvariants(n); err != nil {
		return nil, err
	}
	parentName, err := n.Parent().FullName()
	if err != nil {
		return nil, err
	}
	baseName, err := n.BaseName()
	if err != nil {
		return nil, err
	}
	return parentName.Append(escapeBaseName(baseName, parentName.Delimiter()))
}

func move(n Node, to *Directory) error {
	if err := checkInvariants(n); err != nil {
		return err
	}
	if to == nil {
		return internalErrors.NewError(internalErrors.InvalidArgument, "target directory must not be nil")
	}
	if to.Contains(n) {
		return internalErrors.NewErrorf(internalErrors.InvalidArgument, "node %s is already a child of %s", n.ID(),
			to.ID())
	}
	for d := to; d != nil; d = d.parent {
		if d.ID() == n.ID() {
			return internalErrors.NewErrorf(internalErrors.InvalidArgument, "cannot move node %s below itself", n.ID())
		}
		if d.root {
			break
		}
	}
	from := n.Parent()
	if err := from.Remove(n); err != nil {
		return err
	}
	if err := to.Add(n); err != nil {
		if rollbackErr := from.Add(n); rollbackErr != nil {
			log.Errorf("error restoring node %s in directory %s: %v", n.ID(), from.ID(), rollbackErr)
		}
		return err
	}
	n.base().parent = to
	log.Debugf("moved node %s from directory %s to directory %s", n.ID(), from.ID(), to.ID())
	return nil
}

// findInnerSelf adds n to s if its stored base name is baseName.
func findInnerSelf(n Node, baseName string, s NodeSet) error {
	bn, err := storedBaseName(n)
	if err != nil {
		return err
	}
	if bn == baseName {
		s.add(n)
	}
	return nil
}

func findNodes(n Node, baseName string) (NodeSet, error) {
	s := NodeSet{}
	if err := n.findInner(baseName, s); err != nil {
		return nil, internalErrors.NewErrorf(internalErrors.ServiceFailure, "findNodes(%#v) failed: %w", baseName, err)
	}
	return s, nil
}
