package files

import (
	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/names"
)

// Lookup resolves a full name, as returned by Node.FullName, starting at root. The first component must be empty. A
// link in the middle of the path is followed to its target, which must be a directory.
func Lookup(root *Directory, fullName names.Name) (Node, error) {
	if root == nil || !root.root {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "lookup must start at a root directory")
	}
	if fullName == nil || fullName.IsEmpty() {
		return nil, internalErrors.NewError(internalErrors.InvalidArgument, "full name must not be empty")
	}
	delimiter := fullName.Delimiter()
	first, err := fullName.Component(0)
	if err != nil {
		return nil, err
	}
	if first != "" {
		return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "full name %s is not absolute", fullName)
	}
	var current Node = root
	for i := 1; i < fullName.NoComponents(); i++ {
		c, err := fullName.Component(i)
		if err != nil {
			return nil, err
		}
		d, err := asDirectory(current)
		if err != nil {
			return nil, err
		}
		child := d.Child(unescapeBaseName(c, delimiter))
		if child == nil {
			return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "%s: no such node", fullName)
		}
		current = child
	}
	return current, nil
}

// LookupString is Lookup for a full name given as a string with FullNameDelimiter.
func LookupString(root *Directory, fullName string) (Node, error) {
	n, err := names.NewStringName(fullName, names.WithDelimiter(FullNameDelimiter))
	if err != nil {
		return nil, err
	}
	return Lookup(root, n)
}

func asDirectory(n Node) (*Directory, error) {
	for i := 0; ; i++ {
		switch v := n.(type) {
		case *Directory:
			return v, nil
		case *Link:
			if v.target == nil || i > maxLinkDepth {
				return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "link %s cannot be followed",
					v.id)
			}
			n = v.target
		default:
			return nil, internalErrors.NewErrorf(internalErrors.InvalidArgument, "node %s is not a directory", n.ID())
		}
	}
}

// maxLinkDepth bounds the number of links followed in a row.
const maxLinkDepth = 32

// Walk calls fn for n and every node below it, parents before children and children in ID order. Links are not
// followed. Walk stops at the first error returned by fn.
func Walk(n Node, fn func(Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	d, ok := n.(*Directory)
	if !ok {
		return nil
	}
	for _, child := range d.Children() {
		if err := Walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}
