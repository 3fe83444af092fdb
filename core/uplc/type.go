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

// TypeTag is the base-type alphabet a Constant's type descriptor is built
// from: a small Polish-notation tree over these tags and the list/pair
// constructors (spec.md §4.1).
type TypeTag int

const (
	TyInteger TypeTag = iota
	TyByteString
	TyString
	TyUnit
	TyBool
	TyData
	TyList
	TyPair
	TyBLSG1
	TyBLSG2
	TyBLSMLResult
)

// Type is a Constant's type descriptor. List carries its element type; Pair
// carries both component types.
type Type struct {
	Tag   TypeTag
	Elem  *Type // set when Tag == TyList
	First *Type // set when Tag == TyPair
	Second *Type // set when Tag == TyPair
}

func (t Type) String() string {
	switch t.Tag {
	case TyInteger:
		return "integer"
	case TyByteString:
		return "bytestring"
	case TyString:
		return "string"
	case TyUnit:
		return "unit"
	case TyBool:
		return "bool"
	case TyData:
		return "data"
	case TyList:
		return "(list " + t.Elem.String() + ")"
	case TyPair:
		return "(pair " + t.First.String() + " " + t.Second.String() + ")"
	case TyBLSG1:
		return "bls12_381_G1_element"
	case TyBLSG2:
		return "bls12_381_G2_element"
	case TyBLSMLResult:
		return "bls12_381_MlResult"
	default:
		return "?"
	}
}

// Equal reports whether two type descriptors denote the same type.
func (t Type) Equal(o Type) bool {
	if t.Tag != o.Tag {
		return false
	}
	switch t.Tag {
	case TyList:
		return t.Elem.Equal(*o.Elem)
	case TyPair:
		return t.First.Equal(*o.First) && t.Second.Equal(*o.Second)
	default:
		return true
	}
}

var (
	typeInteger   = Type{Tag: TyInteger}
	typeByteString = Type{Tag: TyByteString}
	typeString    = Type{Tag: TyString}
	typeUnit      = Type{Tag: TyUnit}
	typeBool      = Type{Tag: TyBool}
	typeData      = Type{Tag: TyData}
	typeBLSG1     = Type{Tag: TyBLSG1}
	typeBLSG2     = Type{Tag: TyBLSG2}
	typeBLSMLResult = Type{Tag: TyBLSMLResult}
)

// TInteger, TByteString, ... are the monomorphic base type descriptors.
func TInteger() Type      { return typeInteger }
func TByteString() Type   { return typeByteString }
func TString() Type       { return typeString }
func TUnit() Type         { return typeUnit }
func TBool() Type         { return typeBool }
func TData() Type         { return typeData }
func TBLSG1() Type        { return typeBLSG1 }
func TBLSG2() Type        { return typeBLSG2 }
func TBLSMLResult() Type  { return typeBLSMLResult }

// TList builds a list-of-elem type descriptor.
func TList(elem Type) Type { return Type{Tag: TyList, Elem: &elem} }

// TPair builds a pair type descriptor.
func TPair(a, b Type) Type { return Type{Tag: TyPair, First: &a, Second: &b} }
