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

package params

import (
	"encoding/json"
	"strconv"
)

// RawCostModel is the flat string-to-integer map published as a Cardano
// protocol parameter, e.g. {"addInteger-cpu-arguments-intercept": 205665,
// "cekStartupCost-exBudgetCPU": 100, ...}. Unknown keys are tolerated;
// callers that need a specific key and find it absent report
// CostModelIncomplete.
type RawCostModel map[string]int64

// DecodeRawCostModel parses a protocol-parameter cost model block. The wire
// format is JSON (the CBOR encoding used on-chain carries the same flat
// key/value shape and is decoded by the caller into this same map type
// before reaching here).
func DecodeRawCostModel(data []byte) (RawCostModel, error) {
	var m RawCostModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get looks up a required key, reporting which (language, key) pair is
// missing so the caller can build a CostModelIncomplete error.
func (m RawCostModel) Get(key string) (int64, bool) {
	v, ok := m[key]
	return v, ok
}

// MachineStepKind enumerates the CEK machine's own step kinds, distinct from
// builtin invocations, per spec.md §4.2.
type MachineStepKind int

const (
	StepStartup MachineStepKind = iota
	StepVariable
	StepConstant
	StepLambda
	StepDelay
	StepForce
	StepApply
	StepBuiltin
	StepConstr
	StepCase
)

var machineStepNames = [...]string{
	StepStartup:  "cekStartupCost",
	StepVariable: "cekVarCost",
	StepConstant: "cekConstCost",
	StepLambda:   "cekLamCost",
	StepDelay:    "cekDelayCost",
	StepForce:    "cekForceCost",
	StepApply:    "cekApplyCost",
	StepBuiltin:  "cekBuiltinCost",
	StepConstr:   "cekConstrCost",
	StepCase:     "cekCaseCost",
}

// String returns the JSON key stem for this step kind, e.g. "cekStartupCost".
func (k MachineStepKind) String() string {
	if int(k) < 0 || int(k) >= len(machineStepNames) {
		return "cekUnknownCost"
	}
	return machineStepNames[k]
}

// CPUKey and MemKey return the two flat JSON keys that carry this step's
// constant (cpu, memory) cost pair.
func (k MachineStepKind) CPUKey() string { return k.String() + "-exBudgetCPU" }
func (k MachineStepKind) MemKey() string { return k.String() + "-exBudgetMemory" }

// ArgShape names a builtin costing formula shape, per spec.md §4.2.
type ArgShape int

const (
	ShapeConstant ArgShape = iota
	ShapeLinearInX
	ShapeLinearInY
	ShapeLinearInMaxXY
	ShapeLinearInMinXY
	ShapeLinearInSumXY
	ShapeLinearInZ
	ShapeQuadraticInX
	ShapeQuadraticInY
	ShapeLiteralInYOrLinearZ // literal per-byte table keyed by input size, linear fallback beyond the table
	ShapePiecewiseLinearXY   // one linear formula (floored at a minimum) when size(X) >= size(Y), the minimum otherwise
)

// LiteralTableSize bounds how many explicit input-byte-length entries
// ShapeLiteralInYOrLinearZ's lookup table carries. Inputs longer than this
// are costed by the shape's linear fallback instead of growing the schema
// without bound — the hashing builtins that use this shape see digest-sized
// or smaller inputs in the overwhelming common case, so a small literal
// table covers those exactly while the fallback still costs larger ones.
const LiteralTableSize = 8

// KeySuffixes lists the flat-JSON key suffixes a shape needs, appended after
// "<builtinName>-cpu-arguments" and "<builtinName>-memory-arguments". Shapes
// needing no extra coefficient (ShapeConstant) use the bare
// "-cpu-arguments"/"-memory-arguments" keys themselves.
func (s ArgShape) KeySuffixes() []string {
	switch s {
	case ShapeConstant:
		return nil
	case ShapeLinearInX, ShapeLinearInY, ShapeLinearInMaxXY, ShapeLinearInMinXY, ShapeLinearInSumXY, ShapeLinearInZ:
		return []string{"-intercept", "-slope"}
	case ShapeQuadraticInX, ShapeQuadraticInY:
		return []string{"-c0", "-c1", "-c2"}
	case ShapePiecewiseLinearXY:
		return []string{"-intercept", "-slope", "-minimum"}
	case ShapeLiteralInYOrLinearZ:
		suffixes := make([]string, 0, LiteralTableSize+2)
		for i := 0; i < LiteralTableSize; i++ {
			suffixes = append(suffixes, "-"+strconv.Itoa(i))
		}
		return append(suffixes, "-intercept", "-slope")
	default:
		return nil
	}
}
