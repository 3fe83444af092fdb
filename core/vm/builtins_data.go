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
	"math/big"

	"github.com/core-coin/go-uplc/core/uplc"
)

func biConstrData(_ *execContext, args []Value) (Value, error) {
	tag, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	xs, _, err := asListOf(args[1])
	if err != nil {
		return nil, err
	}
	items := make([]uplc.Data, 0, len(xs))
	for _, c := range xs {
		d, ok := c.AsData()
		if !ok {
			return nil, errWrongArgType
		}
		items = append(items, d)
	}
	return mkData(&uplc.DataConstr{Tag: tag.Uint64(), Args: items}), nil
}

func biMapData(_ *execContext, args []Value) (Value, error) {
	xs, _, err := asListOf(args[0])
	if err != nil {
		return nil, err
	}
	pairs := make([]uplc.DataPair, 0, len(xs))
	for _, c := range xs {
		p, ok := c.AsPair()
		if !ok {
			return nil, errWrongArgType
		}
		k, ok := p.First.AsData()
		if !ok {
			return nil, errWrongArgType
		}
		v, ok := p.Second.AsData()
		if !ok {
			return nil, errWrongArgType
		}
		pairs = append(pairs, uplc.DataPair{Key: k, Value: v})
	}
	return mkData(&uplc.DataMap{Pairs: pairs}), nil
}

func biListData(_ *execContext, args []Value) (Value, error) {
	xs, _, err := asListOf(args[0])
	if err != nil {
		return nil, err
	}
	items := make([]uplc.Data, 0, len(xs))
	for _, c := range xs {
		d, ok := c.AsData()
		if !ok {
			return nil, errWrongArgType
		}
		items = append(items, d)
	}
	return mkData(&uplc.DataList{Items: items}), nil
}

func biIData(_ *execContext, args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	return mkData(&uplc.DataI{Int: n}), nil
}

func biBData(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkData(&uplc.DataB{Bytes: b}), nil
}

func biUnConstrData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	c, ok := d.(*uplc.DataConstr)
	if !ok {
		return nil, errWrongArgType
	}
	items := make([]uplc.Constant, 0, len(c.Args))
	for _, a := range c.Args {
		items = append(items, uplc.NewData(a))
	}
	return mkPair(uplc.NewInteger(new(big.Int).SetUint64(c.Tag)), uplc.NewList(uplc.TData(), items)), nil
}

func biUnMapData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	m, ok := d.(*uplc.DataMap)
	if !ok {
		return nil, errWrongArgType
	}
	pairType := uplc.TPair(uplc.TData(), uplc.TData())
	items := make([]uplc.Constant, 0, len(m.Pairs))
	for _, p := range m.Pairs {
		items = append(items, uplc.NewPair(uplc.NewData(p.Key), uplc.NewData(p.Value)))
	}
	return mkList(pairType, items), nil
}

func biUnListData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := d.(*uplc.DataList)
	if !ok {
		return nil, errWrongArgType
	}
	items := make([]uplc.Constant, 0, len(l.Items))
	for _, a := range l.Items {
		items = append(items, uplc.NewData(a))
	}
	return mkList(uplc.TData(), items), nil
}

func biUnIData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	i, ok := d.(*uplc.DataI)
	if !ok {
		return nil, errWrongArgType
	}
	return mkInt(i.Int), nil
}

func biUnBData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	b, ok := d.(*uplc.DataB)
	if !ok {
		return nil, errWrongArgType
	}
	return mkBytes(b.Bytes), nil
}

func biEqualsData(ctx *execContext, args []Value) (Value, error) {
	x, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asData(args[1])
	if err != nil {
		return nil, err
	}
	if ctx.DataCache != nil {
		return mkBool(ctx.DataCache.Equals(x, y)), nil
	}
	return mkBool(uplc.DataEqual(x, y)), nil
}

func biSerialiseData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(uplc.SerialiseData(d)), nil
}

// biChooseData dispatches on a Data node's shape to one of five
// already-evaluated branch arguments; the branch to select is fully
// determined here, the same way biIfThenElse hands back one of two
// already-evaluated arguments.
func biChooseData(_ *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	switch d.(type) {
	case *uplc.DataConstr:
		return args[1], nil
	case *uplc.DataMap:
		return args[2], nil
	case *uplc.DataList:
		return args[3], nil
	case *uplc.DataI:
		return args[4], nil
	case *uplc.DataB:
		return args[5], nil
	default:
		return nil, errWrongArgType
	}
}

// biCaseData is chooseData's PlutusV4 counterpart: rather than selecting an
// already-evaluated alternative, it applies the matching branch function to
// the Data node's own decomposed contents (the same shapes UnConstrData,
// UnMapData, UnListData, UnIData and UnBData produce), so the branch term
// consumes the tag/args, pairs, items, integer or bytes directly instead of
// re-extracting them via a further builtin call.
func biCaseData(ctx *execContext, args []Value) (Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	switch x := d.(type) {
	case *uplc.DataConstr:
		items := make([]uplc.Constant, 0, len(x.Args))
		for _, a := range x.Args {
			items = append(items, uplc.NewData(a))
		}
		tag := mkInt(new(big.Int).SetUint64(x.Tag))
		return ctx.Apply(args[1], tag, mkList(uplc.TData(), items))
	case *uplc.DataMap:
		pairType := uplc.TPair(uplc.TData(), uplc.TData())
		items := make([]uplc.Constant, 0, len(x.Pairs))
		for _, p := range x.Pairs {
			items = append(items, uplc.NewPair(uplc.NewData(p.Key), uplc.NewData(p.Value)))
		}
		return ctx.Apply(args[2], mkList(pairType, items))
	case *uplc.DataList:
		items := make([]uplc.Constant, 0, len(x.Items))
		for _, a := range x.Items {
			items = append(items, uplc.NewData(a))
		}
		return ctx.Apply(args[3], mkList(uplc.TData(), items))
	case *uplc.DataI:
		return ctx.Apply(args[4], mkInt(x.Int))
	case *uplc.DataB:
		return ctx.Apply(args[5], mkBytes(x.Bytes))
	default:
		return nil, errWrongArgType
	}
}
