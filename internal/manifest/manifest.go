// Package manifest builds a files tree from a YAML or JSON description.
//
// A manifest lists the children of the root. Every entry sets exactly one of directory, file and link to the base
// name of the node it creates:
//
//	root:
//	- directory: usr
//	  children:
//	  - directory: bin
//	    children:
//	    - file: ls
//	- link: ls
//	  target: /usr/bin/ls
//
// Link targets are full names with delimiter "/" and are resolved after every node has been created, in the order
// the links appear in the manifest.
package manifest

// Manifest is the decoded form of a manifest file.
type Manifest struct {
	Root []*Entry `json:"root" yaml:"root"`
}

// Entry describes a single node.
type Entry struct {
	Directory string `json:"directory" yaml:"directory"`
	File      string `json:"file" yaml:"file"`
	Link      string `json:"link" yaml:"link"`

	// Target is the full name of the node a link refers to. Only valid for links; empty means no target.
	Target string `json:"target" yaml:"target"`

	// Open creates a file in the open state. Only valid for files.
	Open bool `json:"open" yaml:"open"`

	// Children is only valid for directories.
	Children []*Entry `json:"children" yaml:"children"`
}

func (e *Entry) baseName() string {
	switch {
	case e.Directory != "":
		return e.Directory
	case e.File != "":
		return e.File
	}
	return e.Link
}
