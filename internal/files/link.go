package files

import (
	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/names"
)

// Link refers to another node. Its base name is the base name of the target, and renaming a link renames the target.
// The name a link was created with is still what FindNodes matches against.
type Link struct {
	node
	target Node
}

var _ Node = (*Link)(nil)

// NewLink returns a link named baseName inside parent. target may be nil and set later.
func NewLink(baseName string, parent *Directory, target Node) (*Link, error) {
	l := &Link{}
	if target != nil {
		if err := l.checkTarget(target); err != nil {
			return nil, err
		}
	}
	l.target = target
	if err := initialize(l, baseName, parent); err != nil {
		return nil, err
	}
	return l, nil
}

// Target returns the target of l or nil.
func (l *Link) Target() Node {
	return l.target
}

func (l *Link) SetTarget(target Node) error {
	if err := checkInvariants(l); err != nil {
		return err
	}
	if target == nil {
		return internalErrors.NewError(internalErrors.InvalidArgument, "target must not be nil")
	}
	if err := l.checkTarget(target); err != nil {
		return err
	}
	l.target = target
	return nil
}

// checkTarget rejects the root, which has no base name to delegate to, and any target whose chain of links leads
// back to l.
func (l *Link) checkTarget(target Node) error {
	if isRoot(target) {
		return internalErrors.NewError(internalErrors.InvalidArgument, "target must not be the root")
	}
	n := target
	for depth := 0; ; depth++ {
		if n == Node(l) {
			return internalErrors.NewErrorf(internalErrors.InvalidArgument, "target %s would make link %s a cycle",
				target.ID(), l.id)
		}
		next, ok := n.(*Link)
		if !ok || next.target == nil {
			return nil
		}
		if depth >= maxLinkDepth {
			return internalErrors.NewErrorf(internalErrors.InvalidArgument, "target %s is more than %d links away from a node",
				target.ID(), maxLinkDepth)
		}
		n = next.target
	}
}

func (l *Link) ensureTarget() (Node, error) {
	if err := checkInvariants(l); err != nil {
		return nil, err
	}
	if l.target == nil {
		return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "link %s has no target", l.id)
	}
	return l.target, nil
}

func (l *Link) BaseName() (string, error) {
	target, err := l.ensureTarget()
	if err != nil {
		return "", err
	}
	return target.BaseName()
}

func (l *Link) Rename(baseName string) error {
	target, err := l.ensureTarget()
	if err != nil {
		return err
	}
	return target.Rename(baseName)
}

func (l *Link) FullName() (names.Name, error) {
	return fullName(l)
}

func (l *Link) Move(to *Directory) error {
	return move(l, to)
}

func (l *Link) FindNodes(baseName string) (NodeSet, error) {
	return findNodes(l, baseName)
}

func (l *Link) findInner(baseName string, s NodeSet) error {
	return findInnerSelf(l, baseName, s)
}
