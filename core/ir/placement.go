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

// depths returns, for every node, its distance from the root. Parent indices
// are always smaller than their children's (nodes are assigned in pre-order),
// so a single forward pass suffices.
func depths(tree *IndexedTree) []int {
	d := make([]int, len(tree.Nodes))
	for i := range tree.Nodes {
		if tree.Parent[i] == noParent {
			d[i] = 0
			continue
		}
		d[i] = d[tree.Parent[i]] + 1
	}
	return d
}

// lca returns the lowest common ancestor of a and b, walking up the parent
// chain from whichever is deeper until both meet.
func lca(tree *IndexedTree, d []int, a, b NodeIndex) NodeIndex {
	for d[a] > d[b] {
		a = tree.Parent[a]
	}
	for d[b] > d[a] {
		b = tree.Parent[b]
	}
	for a != b {
		a = tree.Parent[a]
		b = tree.Parent[b]
	}
	return a
}

// lcaOfAll folds lca across every node in nodes; nodes must be non-empty.
func lcaOfAll(tree *IndexedTree, d []int, nodes []NodeIndex) NodeIndex {
	acc := nodes[0]
	for _, n := range nodes[1:] {
		acc = lca(tree, d, acc, n)
	}
	return acc
}

// visibleAt reports whether id's name still resolves to id itself in the
// scope recorded at node (as opposed to an inner binder having shadowed the
// name with something else in between).
func visibleAt(tree *IndexedTree, node NodeIndex, id BindingId) bool {
	resolved, ok := tree.Scope[node].lookup(id.Name)
	return ok && resolved != nil && *resolved == id
}

// childSlot returns the index of child within tree.Children[parent].
func childSlot(tree *IndexedTree, parent, child NodeIndex) int {
	for i, c := range tree.Children[parent] {
		if c == child {
			return i
		}
	}
	return -1
}

// isLegalInsertionPoint implements spec.md §4.6 Phase 2's legal-point list:
// the root; the body (last child) of a Let; the body of a Lambda; a
// non-condition branch of IfThenElse; the body of a Case branch. Scrutinees,
// Apply arguments, and an IfThenElse condition are illegal.
func isLegalInsertionPoint(tree *IndexedTree, node NodeIndex) bool {
	if node == tree.Root {
		return true
	}
	parent := tree.Parent[node]
	switch tree.Nodes[parent].(type) {
	case *Let:
		children := tree.Children[parent]
		return len(children) > 0 && children[len(children)-1] == node
	case *Lambda:
		return true
	case *IfThenElse:
		slot := childSlot(tree, parent, node)
		return slot == 1 || slot == 2 // Then or Else, not Cond
	case *Case:
		slot := childSlot(tree, parent, node)
		return slot >= 1 // any branch body, not the Scrutinee
	default:
		return false
	}
}

// placement is one binding's chosen destination.
type placement struct {
	id   BindingId
	node NodeIndex
}

// computePlacements runs Phase 2 for every lazy binding in the tree,
// dropping bindings with no recorded uses (spec.md §4.6's "unused lazy lets
// are dropped", finalized in Phase 3).
func computePlacements(tree *IndexedTree) []placement {
	d := depths(tree)
	var out []placement
	// Iterate declaring nodes in their original pre-order position (not Go's
	// randomized map order) so fallback-to-declaration-order in Phase 3 is
	// actually deterministic.
	for declNode := NodeIndex(0); int(declNode) < len(tree.Nodes); declNode++ {
		ids, ok := tree.LazyLetOrder[declNode]
		if !ok {
			continue
		}
		for _, id := range ids {
			uses := tree.Uses[id]
			if len(uses) == 0 {
				continue // unused; Phase 3 drops it
			}
			node := lcaOfAll(tree, d, uses)

			rhs := tree.LazyLets[id]
			rhsRoot := findRhsIndex(tree, id, rhs)
			deps := dependencies(tree, rhsRoot)
			depList := make([]BindingId, 0, deps.Cardinality())
			for _, elem := range deps.ToSlice() {
				depList = append(depList, elem.(BindingId))
			}
			for node != tree.Root {
				allVisible := true
				for _, dep := range depList {
					if !visibleAt(tree, node, dep) {
						allVisible = false
						break
					}
				}
				if allVisible {
					break
				}
				node = tree.Parent[node]
			}

			for !isLegalInsertionPoint(tree, node) && node != tree.Root {
				node = tree.Parent[node]
			}

			out = append(out, placement{id: id, node: node})
		}
	}
	return out
}

// findRhsIndex recovers the node index of a binding's RHS: it is always the
// child of DeclNode at the binding's ordinal position among that node's
// lazy bindings (recorded in LazyLetOrder), which BuildIndex walked in the
// same left-to-right order it appended to Children.
func findRhsIndex(tree *IndexedTree, id BindingId, rhs Node) NodeIndex {
	order := tree.LazyLetOrder[id.DeclNode]
	for i, candidate := range order {
		if candidate == id {
			return tree.Children[id.DeclNode][i]
		}
	}
	_ = rhs
	return id.DeclNode
}
