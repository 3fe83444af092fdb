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

// Reconstruct runs Phase 3: it rebuilds the tree with every used lazy
// binding moved to the insertion node Phase 2 chose for it, drops every
// lazy binding with no recorded uses, and leaves Plain and Recursive lets
// untouched. Var, ExternalVar, Const, and Builtin leaves are copied as-is;
// this pass never renames a reference, so a floated binding can be shadowed
// by an inner binder of the same name.
func Reconstruct(tree *IndexedTree) Node {
	groups := make(map[NodeIndex][]BindingId)
	for _, p := range computePlacements(tree) {
		groups[p.node] = append(groups[p.node], p.id)
	}
	for node, ids := range groups {
		groups[node] = orderGroup(tree, ids)
	}
	r := &rebuilder{tree: tree, groups: groups}
	return r.rebuild(tree.Root)
}

// orderGroup topologically sorts the bindings a single insertion node
// received, by each binding's dependency on another binding in the same
// group, so the reconstructed nested Lets bind dependencies before
// dependents. If the group's dependencies form a cycle (which a correctly
// scoped input tree should never produce, but Phase 2's placement walk does
// not itself guarantee), it falls back to the bindings' original
// declaration order rather than risk an ill-scoped tree.
func orderGroup(tree *IndexedTree, ids []BindingId) []BindingId {
	inGroup := make(map[BindingId]bool, len(ids))
	for _, id := range ids {
		inGroup[id] = true
	}

	deps := make(map[BindingId][]BindingId, len(ids))
	for _, id := range ids {
		rhsRoot := findRhsIndex(tree, id, tree.LazyLets[id])
		for _, elem := range dependencies(tree, rhsRoot).ToSlice() {
			dep := elem.(BindingId)
			if dep != id && inGroup[dep] {
				deps[id] = append(deps[id], dep)
			}
		}
	}

	remaining := make(map[BindingId]bool, len(ids))
	for _, id := range ids {
		remaining[id] = true
	}

	ordered := make([]BindingId, 0, len(ids))
	for len(ordered) < len(ids) {
		progressed := false
		for _, id := range ids {
			if !remaining[id] {
				continue
			}
			ready := true
			for _, dep := range deps[id] {
				if remaining[dep] {
					ready = false
					break
				}
			}
			if ready {
				ordered = append(ordered, id)
				delete(remaining, id)
				progressed = true
			}
		}
		if !progressed {
			return ids // unresolvable cycle: keep original declaration order
		}
	}
	return ordered
}

// rebuilder walks the original Node tree guided by the IndexedTree's
// parallel tables, producing a fresh tree with floated bindings re-inserted.
type rebuilder struct {
	tree   *IndexedTree
	groups map[NodeIndex][]BindingId
}

func (r *rebuilder) bodyIndex(idx NodeIndex) NodeIndex {
	children := r.tree.Children[idx]
	return children[len(children)-1]
}

func (r *rebuilder) rebuild(idx NodeIndex) Node {
	var out Node

	switch node := r.tree.Nodes[idx].(type) {
	case *Let:
		if node.Flag == Lazy {
			// The declaration site itself disappears; every still-used
			// binding reappears at its own placement node (possibly this
			// same one), and unused ones are simply never re-emitted.
			out = r.rebuild(r.bodyIndex(idx))
		} else {
			children := r.tree.Children[idx]
			bindings := make([]Binding, len(node.Bindings))
			for i := range node.Bindings {
				bindings[i] = Binding{Name: node.Bindings[i].Name, Rhs: r.rebuild(children[i])}
			}
			out = &Let{Bindings: bindings, Body: r.rebuild(children[len(children)-1]), Flag: node.Flag}
		}

	case *Lambda:
		children := r.tree.Children[idx]
		out = &Lambda{Param: node.Param, Body: r.rebuild(children[0])}

	case *Apply:
		children := r.tree.Children[idx]
		out = &Apply{Function: r.rebuild(children[0]), Argument: r.rebuild(children[1])}

	case *IfThenElse:
		children := r.tree.Children[idx]
		out = &IfThenElse{Cond: r.rebuild(children[0]), Then: r.rebuild(children[1]), Else: r.rebuild(children[2])}

	case *Case:
		children := r.tree.Children[idx]
		branches := make([]CaseBranch, len(node.Branches))
		for i := range node.Branches {
			branches[i] = CaseBranch{Vars: node.Branches[i].Vars, Body: r.rebuild(children[i+1])}
		}
		out = &Case{Scrutinee: r.rebuild(children[0]), Branches: branches}

	case *And:
		children := r.tree.Children[idx]
		out = &And{Left: r.rebuild(children[0]), Right: r.rebuild(children[1])}

	case *Or:
		children := r.tree.Children[idx]
		out = &Or{Left: r.rebuild(children[0]), Right: r.rebuild(children[1])}

	case *Cast:
		children := r.tree.Children[idx]
		out = &Cast{Body: r.rebuild(children[0]), Type: node.Type}

	case *Var:
		out = &Var{Name: node.Name}

	case *ExternalVar:
		out = &ExternalVar{Name: node.Name}

	case *Const:
		out = &Const{Value: node.Value}

	case *Builtin:
		out = &Builtin{Name: node.Name}

	case *ErrorNode:
		out = &ErrorNode{}
	}

	// Wrap with the bindings floated here, innermost binding closest to the
	// original subtree, so a binding that depends on an earlier one in the
	// same group still finds it in lexical scope.
	ids := r.groups[idx]
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		rhs := r.rebuild(findRhsIndex(r.tree, id, r.tree.LazyLets[id]))
		out = &Let{Bindings: []Binding{{Name: id.Name, Rhs: rhs}}, Body: out, Flag: Plain}
	}

	return out
}
