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
	"bytes"
	"math/big"
)

// PairValue is the payload of a TyPair Constant.
type PairValue struct {
	First, Second Constant
}

// Constant tags a ground value with its UPLC type (spec.md §3). Exactly one
// of the Value union members is meaningful, selected by Type.Tag.
type Constant struct {
	Type  Type
	Value interface{} // *big.Int | []byte | string | bool | struct{} | Data | []Constant | *PairValue | *BLSG1 | *BLSG2 | *BLSMLResult
}

// BLSG1, BLSG2 and BLSMLResult are opaque handles for the BLS12-381 curve
// elements and pairing result. The concrete backing representation lives in
// core/vm/bls.go (which owns the gnark-crypto wiring); this package only
// needs to carry them around as immutable constants.
type (
	BLSG1       struct{ Bytes [48]byte }
	BLSG2       struct{ Bytes [96]byte }
	BLSMLResult struct{ Opaque interface{} }
)

func NewInteger(i *big.Int) Constant    { return Constant{Type: TInteger(), Value: new(big.Int).Set(i)} }
func NewByteString(b []byte) Constant   { return Constant{Type: TByteString(), Value: append([]byte(nil), b...)} }
func NewString(s string) Constant       { return Constant{Type: TString(), Value: s} }
func NewBool(b bool) Constant           { return Constant{Type: TBool(), Value: b} }
func NewUnit() Constant                 { return Constant{Type: TUnit(), Value: struct{}{}} }
func NewData(d Data) Constant           { return Constant{Type: TData(), Value: d} }
func NewList(elem Type, xs []Constant) Constant {
	return Constant{Type: TList(elem), Value: append([]Constant(nil), xs...)}
}
func NewPair(a, b Constant) Constant {
	return Constant{Type: TPair(a.Type, b.Type), Value: &PairValue{First: a, Second: b}}
}

func (c Constant) AsInteger() (*big.Int, bool) {
	v, ok := c.Value.(*big.Int)
	return v, ok && c.Type.Tag == TyInteger
}
func (c Constant) AsByteString() ([]byte, bool) {
	v, ok := c.Value.([]byte)
	return v, ok && c.Type.Tag == TyByteString
}
func (c Constant) AsString() (string, bool) {
	v, ok := c.Value.(string)
	return v, ok && c.Type.Tag == TyString
}
func (c Constant) AsBool() (bool, bool) {
	v, ok := c.Value.(bool)
	return v, ok && c.Type.Tag == TyBool
}
func (c Constant) AsData() (Data, bool) {
	v, ok := c.Value.(Data)
	return v, ok && c.Type.Tag == TyData
}
func (c Constant) AsList() ([]Constant, bool) {
	v, ok := c.Value.([]Constant)
	return v, ok && c.Type.Tag == TyList
}
func (c Constant) AsPair() (*PairValue, bool) {
	v, ok := c.Value.(*PairValue)
	return v, ok && c.Type.Tag == TyPair
}

// ConstantEqual reports structural equality of two ground constants of the
// same type. Builtins such as equalsData/equalsByteString/equalsString rely
// on this.
func ConstantEqual(a, b Constant) bool {
	if !a.Type.Equal(b.Type) {
		return false
	}
	switch a.Type.Tag {
	case TyInteger:
		x, _ := a.AsInteger()
		y, _ := b.AsInteger()
		return x.Cmp(y) == 0
	case TyByteString:
		x, _ := a.AsByteString()
		y, _ := b.AsByteString()
		return bytes.Equal(x, y)
	case TyString:
		x, _ := a.AsString()
		y, _ := b.AsString()
		return x == y
	case TyBool:
		x, _ := a.AsBool()
		y, _ := b.AsBool()
		return x == y
	case TyUnit:
		return true
	case TyData:
		x, _ := a.AsData()
		y, _ := b.AsData()
		return DataEqual(x, y)
	case TyList:
		x, _ := a.AsList()
		y, _ := b.AsList()
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !ConstantEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	case TyPair:
		x, _ := a.AsPair()
		y, _ := b.AsPair()
		return ConstantEqual(x.First, y.First) && ConstantEqual(x.Second, y.Second)
	default:
		return false
	}
}
