// Copyright 2024 by the Authors
// This file is part of the go-uplc library.
//
// The go-uplc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-uplc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-uplc library. If not, see <http://www.gnu.org/licenses/>.

package ir

// NodeIndex is the integer handle Phase 1 assigns to every tree node,
// standing in for the source pass's mutable closures over the tree: rather
// than mutable maps keyed by node identity, every table here is a plain
// slice or map keyed by this small integer (spec.md §9's "substitute
// explicit arena-indexed node tables with vectors keyed by integer
// node_index").
type NodeIndex int

const noParent NodeIndex = -1

// BindingId names one lazy, non-recursive let binding by where it was
// declared, preventing shadow collisions across scopes: two bindings named
// "x" declared at different nodes are distinct BindingIds even though they
// share a Name.
type BindingId struct {
	DeclNode NodeIndex
	Name     string
}

// scopeFrame is a persistent (copy-on-write) scope chain: looking a name up
// walks outward until it finds a frame with that name, without ever mutating
// a frame that an earlier sibling subtree might still be using.
type scopeFrame struct {
	name    string
	binding *BindingId // nil if Name is bound by something other than a lazy let (lambda param, case pattern, plain/recursive let)
	parent  *scopeFrame
}

func (f *scopeFrame) lookup(name string) (*BindingId, bool) {
	for s := f; s != nil; s = s.parent {
		if s.name == name {
			return s.binding, true
		}
	}
	return nil, false
}

func (f *scopeFrame) push(name string, binding *BindingId) *scopeFrame {
	return &scopeFrame{name: name, binding: binding, parent: f}
}

// IndexedTree is Phase 1's output: the tree flattened into parallel tables
// indexed by NodeIndex, plus the per-binding use sites Phase 2 needs.
type IndexedTree struct {
	Root     NodeIndex
	Nodes    []Node
	Parent   []NodeIndex
	Children [][]NodeIndex

	// LazyLets maps the node where a lazy, non-recursive Let was declared to
	// its bindings, keyed by BindingId so Phase 3 can find the original RHS
	// when reinserting.
	LazyLets map[BindingId]Node // the binding's RHS node

	// LazyLetOrder preserves each declaring node's original left-to-right
	// binding order, used only as the deterministic fallback ordering when
	// Phase 3 cannot establish a dependency order.
	LazyLetOrder map[NodeIndex][]BindingId

	// Uses records, for every BindingId, the node indices of every Var that
	// resolved to it.
	Uses map[BindingId][]NodeIndex

	// UsedBindingAt is Uses inverted: for a Var node's index, which
	// BindingId (if any) it resolved to. deps.go walks a binding's RHS
	// subtree and consults this to find the BindingIds it depends on.
	UsedBindingAt map[NodeIndex]BindingId

	// Scope records the persistent scope chain as it existed when each node
	// was first visited (i.e. the scope its own children, other than a
	// Let/Lambda/Case's own newly-bound names, are resolved in). placement.go
	// uses it to test whether a candidate insertion node still sees a given
	// BindingId under its original name.
	Scope []*scopeFrame
}

// indexer carries the mutable accumulation state while walking the tree;
// once BuildIndex returns, only the immutable IndexedTree survives.
type indexer struct {
	tree *IndexedTree
}

// BuildIndex runs Phase 1: assign every node an index, record its parent,
// children, and the lazy-let scope visible there, and collect each lazy
// binding's use sites.
func BuildIndex(root Node) *IndexedTree {
	t := &IndexedTree{
		LazyLets:      make(map[BindingId]Node),
		LazyLetOrder:  make(map[NodeIndex][]BindingId),
		Uses:          make(map[BindingId][]NodeIndex),
		UsedBindingAt: make(map[NodeIndex]BindingId),
	}
	ix := &indexer{tree: t}
	t.Root = ix.walk(root, noParent, nil)
	return t
}

func (ix *indexer) newNode(n Node, parent NodeIndex) NodeIndex {
	idx := NodeIndex(len(ix.tree.Nodes))
	ix.tree.Nodes = append(ix.tree.Nodes, n)
	ix.tree.Parent = append(ix.tree.Parent, parent)
	ix.tree.Children = append(ix.tree.Children, nil)
	if parent != noParent {
		ix.tree.Children[parent] = append(ix.tree.Children[parent], idx)
	}
	return idx
}

func (ix *indexer) walk(n Node, parent NodeIndex, scope *scopeFrame) NodeIndex {
	idx := ix.newNode(n, parent)
	ix.tree.Scope = append(ix.tree.Scope, scope)

	switch node := n.(type) {
	case *Let:
		bodyScope := scope
		for i := range node.Bindings {
			b := &node.Bindings[i]
			if node.Flag == Lazy {
				id := BindingId{DeclNode: idx, Name: b.Name}
				ix.tree.LazyLets[id] = b.Rhs
				ix.tree.LazyLetOrder[idx] = append(ix.tree.LazyLetOrder[idx], id)
				// The RHS of a non-recursive let is evaluated in the outer
				// scope, not seeing sibling bindings declared alongside it.
				ix.walk(b.Rhs, idx, scope)
				idCopy := id
				bodyScope = bodyScope.push(b.Name, &idCopy)
			} else {
				// Plain and recursive lets still occupy the name (shadowing
				// matters for scope correctness) but are not float
				// candidates, so their binder carries no BindingId.
				rhsScope := scope
				if node.Flag == Recursive {
					rhsScope = rhsScope.push(b.Name, nil)
				}
				ix.walk(b.Rhs, idx, rhsScope)
				bodyScope = bodyScope.push(b.Name, nil)
			}
		}
		ix.walk(node.Body, idx, bodyScope)

	case *Lambda:
		ix.walk(node.Body, idx, scope.push(node.Param, nil))

	case *Apply:
		ix.walk(node.Function, idx, scope)
		ix.walk(node.Argument, idx, scope)

	case *IfThenElse:
		ix.walk(node.Cond, idx, scope)
		ix.walk(node.Then, idx, scope)
		ix.walk(node.Else, idx, scope)

	case *Case:
		ix.walk(node.Scrutinee, idx, scope)
		for i := range node.Branches {
			br := &node.Branches[i]
			brScope := scope
			for _, v := range br.Vars {
				brScope = brScope.push(v, nil)
			}
			ix.walk(br.Body, idx, brScope)
		}

	case *And:
		ix.walk(node.Left, idx, scope)
		ix.walk(node.Right, idx, scope)

	case *Or:
		ix.walk(node.Left, idx, scope)
		ix.walk(node.Right, idx, scope)

	case *Cast:
		ix.walk(node.Body, idx, scope)

	case *Var:
		if binding, ok := scope.lookup(node.Name); ok && binding != nil {
			ix.tree.Uses[*binding] = append(ix.tree.Uses[*binding], idx)
			ix.tree.UsedBindingAt[idx] = *binding
		}

	case *ExternalVar, *Const, *Builtin, *ErrorNode:
		// leaves with no children and no BindingId dependency

	default:
		// unreachable: every Node variant is handled above
	}

	return idx
}
