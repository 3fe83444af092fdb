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

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/core-coin/go-uplc/core/uplc"
)

var errBLSDeserialization = errors.New("invalid BLS12-381 point encoding")

func blsG1FromValue(v Value) (*bls12381.G1Affine, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	g, ok := c.Value.Value.(*uplc.BLSG1)
	if !ok {
		return nil, errWrongArgType
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(g.Bytes[:]); err != nil {
		return nil, errBLSDeserialization
	}
	return &p, nil
}

func blsG2FromValue(v Value) (*bls12381.G2Affine, error) {
	c, ok := v.(*VCon)
	if !ok {
		return nil, errWrongArgType
	}
	g, ok := c.Value.Value.(*uplc.BLSG2)
	if !ok {
		return nil, errWrongArgType
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(g.Bytes[:]); err != nil {
		return nil, errBLSDeserialization
	}
	return &p, nil
}

func mkBLSG1(p *bls12381.G1Affine) Value {
	b := p.Bytes()
	g := &uplc.BLSG1{}
	copy(g.Bytes[:], b[:])
	return con(uplc.Constant{Type: uplc.TBLSG1(), Value: g})
}

func mkBLSG2(p *bls12381.G2Affine) Value {
	b := p.Bytes()
	g := &uplc.BLSG2{}
	copy(g.Bytes[:], b[:])
	return con(uplc.Constant{Type: uplc.TBLSG2(), Value: g})
}

func mkMlResult(gt bls12381.GT) Value {
	return con(uplc.Constant{Type: uplc.TBLSMLResult(), Value: &uplc.BLSMLResult{Opaque: gt}})
}

func asMlResult(v Value) (bls12381.GT, error) {
	c, ok := v.(*VCon)
	if !ok {
		return bls12381.GT{}, errWrongArgType
	}
	m, ok := c.Value.Value.(*uplc.BLSMLResult)
	if !ok {
		return bls12381.GT{}, errWrongArgType
	}
	gt, ok := m.Opaque.(bls12381.GT)
	if !ok {
		return bls12381.GT{}, errWrongArgType
	}
	return gt, nil
}

func biBls12_381_G1_Add(_ *execContext, args []Value) (Value, error) {
	a, err := blsG1FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blsG1FromValue(args[1])
	if err != nil {
		return nil, err
	}
	var aj, bj, rj bls12381.G1Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).AddAssign(&bj)
	var out bls12381.G1Affine
	out.FromJacobian(&rj)
	return mkBLSG1(&out), nil
}

func biBls12_381_G1_Neg(_ *execContext, args []Value) (Value, error) {
	a, err := blsG1FromValue(args[0])
	if err != nil {
		return nil, err
	}
	var out bls12381.G1Affine
	out.Neg(a)
	return mkBLSG1(&out), nil
}

func biBls12_381_G1_ScalarMul(_ *execContext, args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	a, err := blsG1FromValue(args[1])
	if err != nil {
		return nil, err
	}
	var out bls12381.G1Affine
	out.ScalarMultiplication(a, n)
	return mkBLSG1(&out), nil
}

func biBls12_381_G1_Equal(_ *execContext, args []Value) (Value, error) {
	a, err := blsG1FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blsG1FromValue(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(a.Equal(b)), nil
}

func biBls12_381_G1_HashToGroup(_ *execContext, args []Value) (Value, error) {
	msg, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	dst, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, err
	}
	return mkBLSG1(&p), nil
}

func biBls12_381_G1_Compress(_ *execContext, args []Value) (Value, error) {
	a, err := blsG1FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b := a.Bytes()
	return mkBytes(b[:]), nil
}

func biBls12_381_G1_Uncompress(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	if len(b) != 48 {
		return nil, errBLSDeserialization
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, errBLSDeserialization
	}
	g := &uplc.BLSG1{}
	copy(g.Bytes[:], b)
	return con(uplc.Constant{Type: uplc.TBLSG1(), Value: g}), nil
}

func biBls12_381_G2_Add(_ *execContext, args []Value) (Value, error) {
	a, err := blsG2FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blsG2FromValue(args[1])
	if err != nil {
		return nil, err
	}
	var aj, bj, rj bls12381.G2Jac
	aj.FromAffine(a)
	bj.FromAffine(b)
	rj.Set(&aj).AddAssign(&bj)
	var out bls12381.G2Affine
	out.FromJacobian(&rj)
	return mkBLSG2(&out), nil
}

func biBls12_381_G2_Neg(_ *execContext, args []Value) (Value, error) {
	a, err := blsG2FromValue(args[0])
	if err != nil {
		return nil, err
	}
	var out bls12381.G2Affine
	out.Neg(a)
	return mkBLSG2(&out), nil
}

func biBls12_381_G2_ScalarMul(_ *execContext, args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	a, err := blsG2FromValue(args[1])
	if err != nil {
		return nil, err
	}
	var out bls12381.G2Affine
	out.ScalarMultiplication(a, n)
	return mkBLSG2(&out), nil
}

func biBls12_381_G2_Equal(_ *execContext, args []Value) (Value, error) {
	a, err := blsG2FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blsG2FromValue(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(a.Equal(b)), nil
}

func biBls12_381_G2_HashToGroup(_ *execContext, args []Value) (Value, error) {
	msg, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	dst, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	return mkBLSG2(&p), nil
}

func biBls12_381_G2_Compress(_ *execContext, args []Value) (Value, error) {
	a, err := blsG2FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b := a.Bytes()
	return mkBytes(b[:]), nil
}

func biBls12_381_G2_Uncompress(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	if len(b) != 96 {
		return nil, errBLSDeserialization
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, errBLSDeserialization
	}
	g := &uplc.BLSG2{}
	copy(g.Bytes[:], b)
	return con(uplc.Constant{Type: uplc.TBLSG2(), Value: g}), nil
}

func biBls12_381_MillerLoop(_ *execContext, args []Value) (Value, error) {
	a, err := blsG1FromValue(args[0])
	if err != nil {
		return nil, err
	}
	b, err := blsG2FromValue(args[1])
	if err != nil {
		return nil, err
	}
	gt, err := bls12381.MillerLoop([]bls12381.G1Affine{*a}, []bls12381.G2Affine{*b})
	if err != nil {
		return nil, err
	}
	return mkMlResult(gt), nil
}

func biBls12_381_MulMlResult(_ *execContext, args []Value) (Value, error) {
	a, err := asMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult(args[1])
	if err != nil {
		return nil, err
	}
	var out bls12381.GT
	out.Mul(&a, &b)
	return mkMlResult(out), nil
}

func biBls12_381_FinalVerify(_ *execContext, args []Value) (Value, error) {
	a, err := asMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult(args[1])
	if err != nil {
		return nil, err
	}
	af := bls12381.FinalExponentiation(&a)
	bf := bls12381.FinalExponentiation(&b)
	return mkBool(af.Equal(&bf)), nil
}
