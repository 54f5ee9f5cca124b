package files

import (
	"sort"

	"github.com/google/uuid"
)

// NodeSet is a set of nodes keyed by ID.
type NodeSet map[uuid.UUID]Node

func (s NodeSet) add(n Node) {
	s[n.ID()] = n
}

func (s NodeSet) Contains(n Node) bool {
	if n == nil {
		return false
	}
	_, ok := s[n.ID()]
	return ok
}

func (s NodeSet) Len() int {
	return len(s)
}

// Nodes returns the members of s ordered by ID.
func (s NodeSet) Nodes() []Node {
	nodes := make([]Node, 0, len(s))
	for _, n := range s {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID().String() < nodes[j].ID().String()
	})
	return nodes
}
