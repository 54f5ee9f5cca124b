package manifest

import (
	internalErrors "github.com/adap-names/names/internal/errors"
	"github.com/adap-names/names/internal/files"
)

// Tree is the result of loading a manifest.
type Tree struct {
	Root *files.Directory
}

// FullNames returns the full name of every node in pre-order. Links whose target is missing are reported by their
// parent's full name followed by the link's ID.
func (t *Tree) FullNames() ([]string, error) {
	return fullNames(t.Root)
}

// Find returns the full names of the nodes named baseName, ordered by node ID.
func (t *Tree) Find(baseName string) ([]string, error) {
	s, err := t.Root.FindNodes(baseName)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, n := range s.Nodes() {
		fn, err := n.FullName()
		if err != nil {
			return nil, err
		}
		res = append(res, fn.String())
	}
	return res, nil
}

func fullNames(root *files.Directory) ([]string, error) {
	var res []string
	err := files.Walk(root, func(n files.Node) error {
		fn, err := n.FullName()
		if err != nil {
			if internalErrors.ErrorIsCode(err, internalErrors.InvalidArgument) {
				if l, ok := n.(*files.Link); ok && l.Target() == nil {
					parentName, err := l.Parent().FullName()
					if err != nil {
						return err
					}
					res = append(res, parentName.String()+files.FullNameDelimiter+"<"+l.ID().String()+">")
					return nil
				}
			}
			return err
		}
		res = append(res, fn.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
