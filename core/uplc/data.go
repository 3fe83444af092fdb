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

package uplc

import (
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

// Data is the closed recursive sum exchanged between scripts and the ledger
// (the GLOSSARY's "uniform structured payload type"). Structural equality is
// by value; a hash of canonical CBOR is sometimes requested by builtins.
type Data interface {
	isData()
}

// DataConstr is a tagged sum constructor.
type DataConstr struct {
	Tag  uint64
	Args []Data
}

// DataPair is one key/value entry of a DataMap.
type DataPair struct {
	Key   Data
	Value Data
}

// DataMap is an association list, not a hash map: order is significant for
// equality and serialisation, matching the wire representation.
type DataMap struct {
	Pairs []DataPair
}

// DataList is an ordered sequence of Data.
type DataList struct {
	Items []Data
}

// DataI is an arbitrary-precision integer leaf.
type DataI struct {
	Int *big.Int
}

// DataB is a byte-string leaf.
type DataB struct {
	Bytes []byte
}

func (*DataConstr) isData() {}
func (*DataMap) isData()    {}
func (*DataList) isData()   {}
func (*DataI) isData()      {}
func (*DataB) isData()      {}

// dataEqualFrame is one pending comparison on the worklist DataEqual uses.
// Recursing on Data structure is forbidden by spec.md §9 ("Deep recursion in
// the interpreter ... must also be iterative — convert recursive Data
// equality/serialization to explicit worklists"), so equality walks an
// explicit stack instead of calling itself.
type dataEqualFrame struct {
	a, b Data
}

// DataEqual reports whether two Data values are structurally equal,
// comparing iteratively so that deeply nested payloads cannot blow the Go
// call stack.
func DataEqual(a, b Data) bool {
	stack := []dataEqualFrame{{a, b}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch x := f.a.(type) {
		case *DataI:
			y, ok := f.b.(*DataI)
			if !ok || x.Int.Cmp(y.Int) != 0 {
				return false
			}
		case *DataB:
			y, ok := f.b.(*DataB)
			if !ok || !bytesEqual(x.Bytes, y.Bytes) {
				return false
			}
		case *DataConstr:
			y, ok := f.b.(*DataConstr)
			if !ok || x.Tag != y.Tag || len(x.Args) != len(y.Args) {
				return false
			}
			for i := range x.Args {
				stack = append(stack, dataEqualFrame{x.Args[i], y.Args[i]})
			}
		case *DataList:
			y, ok := f.b.(*DataList)
			if !ok || len(x.Items) != len(y.Items) {
				return false
			}
			for i := range x.Items {
				stack = append(stack, dataEqualFrame{x.Items[i], y.Items[i]})
			}
		case *DataMap:
			y, ok := f.b.(*DataMap)
			if !ok || len(x.Pairs) != len(y.Pairs) {
				return false
			}
			for i := range x.Pairs {
				stack = append(stack, dataEqualFrame{x.Pairs[i].Key, y.Pairs[i].Key})
				stack = append(stack, dataEqualFrame{x.Pairs[i].Value, y.Pairs[i].Value})
			}
		default:
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DataCache memoises the canonical-CBOR serialisation of Data nodes seen
// during equality checks inside a single evaluation. It is owned by a single
// Machine and discarded with it; it is never a package-level global
// (spec.md §9 forbids global mutable machine state).
type DataCache struct {
	cache *lru.Cache
}

// NewDataCache builds a cache holding up to size serialised Data nodes.
func NewDataCache(size int) *DataCache {
	c, _ := lru.New(size)
	return &DataCache{cache: c}
}

func (h *DataCache) serialise(d Data) []byte {
	if h.cache != nil {
		if v, ok := h.cache.Get(d); ok {
			return v.([]byte)
		}
	}
	b := SerialiseData(d)
	if h.cache != nil {
		h.cache.Add(d, b)
	}
	return b
}

// Equals reports whether a and b serialise to the same canonical CBOR,
// reusing cached serialisations of either side across repeated calls within
// the same evaluation. Canonical CBOR is a bijection over Data, so byte
// equality of the serialised forms is equivalent to DataEqual but avoids
// re-walking previously-seen subtrees (equalsData is commonly called
// repeatedly against the same datum, e.g. pattern-matching a redeemer).
func (h *DataCache) Equals(a, b Data) bool {
	return bytesEqual(h.serialise(a), h.serialise(b))
}
