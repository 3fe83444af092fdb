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

package vm

import (
	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/params"
)

// BuiltinID is core/vm's own named alias of uplc.BuiltinID, so builtin
// denotations can be written against readable constants while the wire codec
// keeps needing only the bare integer type.
type BuiltinID = uplc.BuiltinID

// execContext is threaded into every denotation so builtins that need
// ambient effects (trace's log emission, equalsData's cache, and the branch
// application of caseList and caseData) can reach them without
// widening every other builtin's signature to carry unused parameters.
type execContext struct {
	Tracer Tracer
	// DataCache memoises serialised Data nodes so equalsData on repeatedly
	// compared data does not re-walk the same subtree every call.
	DataCache *uplc.DataCache
	// Apply hands fn back to the CEK machine's own application frames,
	// curried over args in order. caseList and caseData use this to invoke
	// a caller-supplied branch function on the decomposed head/tail or
	// constructor contents, the same way Case applies its matched branch
	// term rather than returning it unevaluated.
	Apply func(fn Value, args ...Value) (Value, error)
}

// denotation is a builtin's executable body: given fully-applied, already
// force-satisfied argument values, produce a result value or fail.
type denotation func(ctx *execContext, args []Value) (Value, error)

// builtinEntry is one catalog row, the UPLC analogue of the teacher's
// jump_table.go operation struct: static metadata (arity, cost shape) plus
// the executable body.
type builtinEntry struct {
	ID     BuiltinID
	Name   string
	Arity  int // number of term arguments; Force applications are counted in Forces
	Forces int // number of leading Force applications the builtin itself consumes
	Shape  params.ArgShape
	Exec   denotation
}

// BuiltinSet is the catalog enabled for one protocol era, indexed by ID for
// O(1) dispatch during evaluation (mirrors JumpTable's flat array).
type BuiltinSet struct {
	entries map[BuiltinID]builtinEntry
}

func (s *BuiltinSet) Lookup(id BuiltinID) (builtinEntry, bool) {
	e, ok := s.entries[id]
	return e, ok
}

func newBuiltinSet(entries []builtinEntry) *BuiltinSet {
	m := make(map[BuiltinID]builtinEntry, len(entries))
	for _, e := range entries {
		m[e.ID] = e
	}
	return &BuiltinSet{entries: m}
}

// builtinsForLanguage returns the full catalog entries visible to a given
// language generation, used by NewCostModel to know which keys to require.
func builtinsForLanguage(lang params.Language) []builtinEntry {
	set := BuiltinSetForLanguage(lang)
	out := make([]builtinEntry, 0, len(set.entries))
	for _, e := range set.entries {
		out = append(out, e)
	}
	return out
}

// BuiltinSetForLanguage chains the fork-style builtin sets the same way the
// teacher's newIstanbulInstructionSet layers enable1344/enable1884/enable2200
// on top of newConstantinopleInstructionSet: each era's set is the previous
// era's set plus its own additions.
func BuiltinSetForLanguage(lang params.Language) *BuiltinSet {
	v1 := newV1BuiltinSet()
	if lang == params.PlutusV1 {
		return v1
	}
	v2 := extendWithV2Builtins(v1)
	if lang == params.PlutusV2 {
		return v2
	}
	v3 := extendWithV3Builtins(v2)
	if lang == params.PlutusV3 {
		return v3
	}
	return extendWithV4Builtins(v3)
}

func extend(base *BuiltinSet, additions []builtinEntry) *BuiltinSet {
	merged := make([]builtinEntry, 0, len(base.entries)+len(additions))
	for _, e := range base.entries {
		merged = append(merged, e)
	}
	merged = append(merged, additions...)
	return newBuiltinSet(merged)
}
