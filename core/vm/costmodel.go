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

import "github.com/core-coin/go-uplc/params"

// linearCoeffs is the (intercept, slope) pair shared by most non-constant
// costing shapes.
type linearCoeffs struct {
	Intercept int64
	Slope     int64
}

func (c linearCoeffs) apply(x int64) int64 { return c.Intercept + c.Slope*x }

// quadraticCoeffs backs ShapeQuadraticInX/Y: c0 + c1*x + c2*x^2.
type quadraticCoeffs struct {
	C0, C1, C2 int64
}

func (c quadraticCoeffs) apply(x int64) int64 { return c.C0 + c.C1*x + c.C2*x*x }

// piecewiseCoeffs backs ShapePiecewiseLinearXY: one line when size(X) >=
// size(Y), a floor of Minimum otherwise.
type piecewiseCoeffs struct {
	Intercept, Slope, Minimum int64
}

// CostingFunction evaluates one dimension (cpu or memory) of a builtin's
// cost, given the memory sizes of its arguments in declared order.
type CostingFunction struct {
	Shape    params.ArgShape
	Constant int64
	Linear   linearCoeffs
	Quad     quadraticCoeffs
	Piece    piecewiseCoeffs
	// Literal holds a per-input-size lookup table for
	// ShapeLiteralInYOrLinearZ, indexed by the sole argument's memory usage
	// (the hashing builtins that use this shape are all arity 1). Sizes
	// beyond the table fall back to Linear.
	Literal map[int64]int64
}

// Evaluate computes this dimension's cost given the argument sizes, in the
// order the builtin declares them (x, y, z, ...).
func (f CostingFunction) Evaluate(sizes ...int64) int64 {
	get := func(i int) int64 {
		if i < len(sizes) {
			return sizes[i]
		}
		return 0
	}
	switch f.Shape {
	case params.ShapeConstant:
		return f.Constant
	case params.ShapeLinearInX:
		return f.Linear.apply(get(0))
	case params.ShapeLinearInY:
		return f.Linear.apply(get(1))
	case params.ShapeLinearInZ:
		return f.Linear.apply(get(2))
	case params.ShapeLinearInMaxXY:
		x, y := get(0), get(1)
		if x > y {
			return f.Linear.apply(x)
		}
		return f.Linear.apply(y)
	case params.ShapeLinearInMinXY:
		x, y := get(0), get(1)
		if x < y {
			return f.Linear.apply(x)
		}
		return f.Linear.apply(y)
	case params.ShapeLinearInSumXY:
		return f.Linear.apply(get(0) + get(1))
	case params.ShapeQuadraticInX:
		return f.Quad.apply(get(0))
	case params.ShapeQuadraticInY:
		return f.Quad.apply(get(1))
	case params.ShapePiecewiseLinearXY:
		x, y := get(0), get(1)
		if x >= y {
			v := f.Piece.Intercept + f.Piece.Slope*x
			if v < f.Piece.Minimum {
				return f.Piece.Minimum
			}
			return v
		}
		return f.Piece.Minimum
	case params.ShapeLiteralInYOrLinearZ:
		x := get(0)
		if v, ok := f.Literal[x]; ok {
			return v
		}
		return f.Linear.apply(x)
	default:
		return 0
	}
}

// BuiltinCosting pairs a builtin's cpu and memory costing functions.
type BuiltinCosting struct {
	CPU CostingFunction
	Mem CostingFunction
}

// CostModel holds every coefficient needed to cost both machine steps and
// builtin invocations for one protocol version, decoded from a flat
// params.RawCostModel the way the teacher's energy_table.go hard-codes its
// per-opcode energy table, except here the table is parameter-driven instead
// of compiled in.
type CostModel struct {
	Language params.Language
	Steps    [10]ExBudget // indexed by params.MachineStepKind
	Builtins map[BuiltinID]BuiltinCosting
}

// RequiredCostModelKeys lists every flat RawCostModel key NewCostModel needs
// for lang, so a caller assembling or validating a protocol-parameter cost
// model blob (or a test building one from scratch) knows exactly what to
// supply without having to enumerate the builtin catalog itself.
func RequiredCostModelKeys(lang params.Language) []string {
	var keys []string
	for k := params.StepStartup; k <= params.StepCase; k++ {
		keys = append(keys, k.CPUKey(), k.MemKey())
	}
	for _, e := range builtinsForLanguage(lang) {
		for _, dim := range []string{"-cpu-arguments", "-memory-arguments"} {
			prefix := e.Name + dim
			if suffixes := e.Shape.KeySuffixes(); len(suffixes) > 0 {
				for _, suffix := range suffixes {
					keys = append(keys, prefix+suffix)
				}
			} else {
				keys = append(keys, prefix)
			}
		}
	}
	return keys
}

// NewCostModel decodes a raw protocol-parameter cost model into a CostModel
// for the given language, failing with CostModelIncompleteError naming a
// missing step key, or the "-cpu-arguments"/"-memory-arguments" key prefix of
// a builtin whose coefficients are incomplete.
func NewCostModel(lang params.Language, raw params.RawCostModel) (*CostModel, error) {
	cm := &CostModel{Language: lang, Builtins: make(map[BuiltinID]BuiltinCosting)}
	for k := params.StepStartup; k <= params.StepCase; k++ {
		cpu, ok := raw.Get(k.CPUKey())
		if !ok {
			return nil, &CostModelIncompleteError{Language: lang.String(), Key: k.CPUKey()}
		}
		mem, ok := raw.Get(k.MemKey())
		if !ok {
			return nil, &CostModelIncompleteError{Language: lang.String(), Key: k.MemKey()}
		}
		cm.Steps[k] = ExBudget{CPU: uint64(cpu), Memory: uint64(mem)}
	}
	for _, e := range builtinsForLanguage(lang) {
		cpuFn, err := decodeCostingFunction(raw, e.Name+"-cpu-arguments", e.Shape)
		if err != nil {
			return nil, &CostModelIncompleteError{Language: lang.String(), Key: e.Name + "-cpu-arguments"}
		}
		memFn, err := decodeCostingFunction(raw, e.Name+"-memory-arguments", e.Shape)
		if err != nil {
			return nil, &CostModelIncompleteError{Language: lang.String(), Key: e.Name + "-memory-arguments"}
		}
		cm.Builtins[e.ID] = BuiltinCosting{CPU: cpuFn, Mem: memFn}
	}
	return cm, nil
}

func decodeCostingFunction(raw params.RawCostModel, prefix string, shape params.ArgShape) (CostingFunction, error) {
	suffixes := shape.KeySuffixes()
	if len(suffixes) == 0 {
		v, ok := raw.Get(prefix)
		if !ok {
			return CostingFunction{}, &CostModelIncompleteError{Key: prefix}
		}
		return CostingFunction{Shape: shape, Constant: v}, nil
	}
	switch shape {
	case params.ShapeQuadraticInX, params.ShapeQuadraticInY:
		c0, ok0 := raw.Get(prefix + suffixes[0])
		c1, ok1 := raw.Get(prefix + suffixes[1])
		c2, ok2 := raw.Get(prefix + suffixes[2])
		if !ok0 || !ok1 || !ok2 {
			return CostingFunction{}, &CostModelIncompleteError{Key: prefix}
		}
		return CostingFunction{Shape: shape, Quad: quadraticCoeffs{C0: c0, C1: c1, C2: c2}}, nil
	case params.ShapePiecewiseLinearXY:
		intercept, ok0 := raw.Get(prefix + suffixes[0])
		slope, ok1 := raw.Get(prefix + suffixes[1])
		minimum, ok2 := raw.Get(prefix + suffixes[2])
		if !ok0 || !ok1 || !ok2 {
			return CostingFunction{}, &CostModelIncompleteError{Key: prefix}
		}
		return CostingFunction{Shape: shape, Piece: piecewiseCoeffs{Intercept: intercept, Slope: slope, Minimum: minimum}}, nil
	case params.ShapeLiteralInYOrLinearZ:
		n := len(suffixes) - 2
		lit := make(map[int64]int64, n)
		for i := 0; i < n; i++ {
			v, ok := raw.Get(prefix + suffixes[i])
			if !ok {
				return CostingFunction{}, &CostModelIncompleteError{Key: prefix + suffixes[i]}
			}
			lit[int64(i)] = v
		}
		intercept, ok0 := raw.Get(prefix + suffixes[n])
		slope, ok1 := raw.Get(prefix + suffixes[n+1])
		if !ok0 || !ok1 {
			return CostingFunction{}, &CostModelIncompleteError{Key: prefix}
		}
		return CostingFunction{Shape: shape, Literal: lit, Linear: linearCoeffs{Intercept: intercept, Slope: slope}}, nil
	default:
		intercept, ok0 := raw.Get(prefix + suffixes[0])
		slope, ok1 := raw.Get(prefix + suffixes[1])
		if !ok0 || !ok1 {
			return CostingFunction{}, &CostModelIncompleteError{Key: prefix}
		}
		return CostingFunction{Shape: shape, Linear: linearCoeffs{Intercept: intercept, Slope: slope}}, nil
	}
}
