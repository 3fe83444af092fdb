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

import "math/big"

// wordSize is the machine word the memory-usage measure counts in: 64 bits,
// matching the teacher's own 64-bit-limb framing for big-integer cost
// (spec.md §9: "Memory-usage measures depend on the number of 64-bit
// limbs").
const wordSize = 8

// ExMemoryUsage is the cost model's memory-usage measure for a constant: the
// number of machine words its representation occupies. It is charged at
// every Constant step and supplied as builtin costing-function input
// (spec.md §3, §4.2).
func ExMemoryUsage(c Constant) int64 {
	switch c.Type.Tag {
	case TyInteger:
		v, _ := c.AsInteger()
		return integerMemoryUsage(v)
	case TyByteString:
		v, _ := c.AsByteString()
		return byteStringMemoryUsage(v)
	case TyString:
		v, _ := c.AsString()
		return byteStringMemoryUsage([]byte(v))
	case TyBool, TyUnit:
		return 1
	case TyData:
		v, _ := c.AsData()
		return dataMemoryUsage(v)
	case TyList:
		v, _ := c.AsList()
		var total int64 = 1
		for _, e := range v {
			total += ExMemoryUsage(e)
		}
		return total
	case TyPair:
		v, _ := c.AsPair()
		return 1 + ExMemoryUsage(v.First) + ExMemoryUsage(v.Second)
	case TyBLSG1:
		return 18 // matches the 1152-bit internal projective representation used by the catalog's BLS backend
	case TyBLSG2:
		return 36
	case TyBLSMLResult:
		return 144
	default:
		return 0
	}
}

// integerMemoryUsage counts 64-bit limbs, with zero counted as one limb
// (there is no zero-limb representation of the value zero).
func integerMemoryUsage(v *big.Int) int64 {
	bits := v.BitLen()
	if bits == 0 {
		return 1
	}
	return int64((bits + 63) / 64)
}

// byteStringMemoryUsage counts 8-byte words, rounding up, with a minimum of
// one word for the empty string.
func byteStringMemoryUsage(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64((len(b) + wordSize - 1) / wordSize)
}

// dataMemoryUsage walks Data iteratively, per the Design Notes' ban on
// recursing over Data-shaped input.
func dataMemoryUsage(root Data) int64 {
	order := flattenDataPostorder(root)
	var total int64
	for _, node := range order {
		switch x := node.(type) {
		case *DataI:
			total += 4 + integerMemoryUsage(x.Int)
		case *DataB:
			total += 4 + byteStringMemoryUsage(x.Bytes)
		case *DataConstr:
			total += 4 + int64(len(x.Args))
		case *DataList:
			total += 4 + int64(len(x.Items))
		case *DataMap:
			total += 4 + int64(2*len(x.Pairs))
		}
	}
	return total
}
