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

import mapset "github.com/deckarep/golang-set"

// dependencies returns the de-duplicated set of other lazy bindings a
// binding's RHS subtree refers to (spec.md §4.6 Phase 2's "dependencies are
// other BindingIds referenced in the RHS; non-local ExternalVars are
// ignored"). rhsRoot is the RHS's own node index.
func dependencies(tree *IndexedTree, rhsRoot NodeIndex) mapset.Set {
	deps := mapset.NewSet()
	var walk func(NodeIndex)
	walk = func(idx NodeIndex) {
		if id, ok := tree.UsedBindingAt[idx]; ok {
			deps.Add(id)
		}
		for _, child := range tree.Children[idx] {
			walk(child)
		}
	}
	walk(rhsRoot)
	return deps
}
