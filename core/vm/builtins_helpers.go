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
	"errors"
	"math/big"

	"github.com/core-coin/go-uplc/core/uplc"
)

var (
	errWrongArgType  = errors.New("argument has the wrong type for this builtin")
	errDivideByZero  = errors.New("division by zero")
	errOutOfRange    = errors.New("index out of range")
	errInvalidUtf8   = errors.New("bytestring is not valid utf-8")
	errWidthOverflow = errors.New("integer does not fit in the requested byte width")
)

func con(v uplc.Constant) Value { return &VCon{Value: v} }

func asInt(v Value) (*big.Int, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	n, ok := c.Value.AsInteger()
	if !ok {
		return nil, errWrongArgType
	}
	return n, nil
}

func asBytes(v Value) ([]byte, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	b, ok := c.Value.AsByteString()
	if !ok {
		return nil, errWrongArgType
	}
	return b, nil
}

func asStr(v Value) (string, error) {
	c, ok := v.(*VCon)
	if !ok {
		return "", errWrongArgType
	}
	s, ok := c.Value.AsString()
	if !ok {
		return "", errWrongArgType
	}
	return s, nil
}

func asBool(v Value) (bool, error) {
	c, ok := v.(*VCon)
	if !ok {
		return false, errWrongArgType
	}
	b, ok := c.Value.AsBool()
	if !ok {
		return false, errWrongArgType
	}
	return b, nil
}

func asData(v Value) (uplc.Data, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	d, ok := c.Value.AsData()
	if !ok {
		return nil, errWrongArgType
	}
	return d, nil
}

func asListOf(v Value) ([]uplc.Constant, uplc.Type, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, uplc.Type{}, errWrongArgType
	}
	xs, ok := c.Value.AsList()
	if !ok {
		return nil, uplc.Type{}, errWrongArgType
	}
	return xs, *c.Value.Type.Elem, nil
}

func asPairOf(v Value) (*uplc.PairValue, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	p, ok := c.Value.AsPair()
	if !ok {
		return nil, errWrongArgType
	}
	return p, nil
}

func mkInt(n *big.Int) Value        { return con(uplc.NewInteger(n)) }
func mkIntI(n int64) Value          { return con(uplc.NewInteger(big.NewInt(n))) }
func mkBytes(b []byte) Value        { return con(uplc.NewByteString(b)) }
func mkStr(s string) Value          { return con(uplc.NewString(s)) }
func mkBool(b bool) Value           { return con(uplc.NewBool(b)) }
func mkData(d uplc.Data) Value      { return con(uplc.NewData(d)) }
func mkList(t uplc.Type, xs []uplc.Constant) Value {
	return con(uplc.NewList(t, xs))
}
func mkPair(a, b uplc.Constant) Value { return con(uplc.NewPair(a, b)) }

// wrapConstant re-tags raw constant slices/pairs back as Value for the few
// builtins (fstPair, headList, ...) that hand an already-built Constant back
// out untouched.
func wrapConstant(c uplc.Constant) Value { return con(c) }
