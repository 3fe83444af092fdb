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
	"testing"

	"github.com/core-coin/go-uplc/params"
	"github.com/stretchr/testify/require"
)

// The six hash builtins (Sha2_256 among them) use ShapeLiteralInYOrLinearZ,
// keyed by the single argument's own size: a literal table for sizes inside
// params.LiteralTableSize, a linear fallback beyond it. Both branches must be
// size-dependent, not a size-independent constant.
func TestLiteralCostShapeUsesTableWithinRangeAndLinearBeyond(t *testing.T) {
	lang := params.PlutusV1
	raw := make(params.RawCostModel)
	for _, key := range RequiredCostModelKeys(lang) {
		raw[key] = 1
	}
	raw[Sha2_256.Name()+"-cpu-arguments-3"] = 777
	raw[Sha2_256.Name()+"-cpu-arguments-intercept"] = 10
	raw[Sha2_256.Name()+"-cpu-arguments-slope"] = 100

	cm, err := NewCostModel(lang, raw)
	require.NoError(t, err)
	costing, ok := cm.Builtins[Sha2_256]
	require.True(t, ok)

	require.Equal(t, int64(777), costing.CPU.Evaluate(3), "a size inside the literal table must return its literal entry")
	require.Equal(t, int64(10+100*20), costing.CPU.Evaluate(20), "a size beyond the literal table must fall back to the linear formula")
	require.NotEqual(t, costing.CPU.Evaluate(3), costing.CPU.Evaluate(20), "cost must depend on input size, not be a constant")
}

// NewCostModel must fail, not silently zero-fill, when a literal table entry
// is missing from the raw cost model.
func TestLiteralCostShapeRejectsIncompleteTable(t *testing.T) {
	lang := params.PlutusV1
	raw := make(params.RawCostModel)
	for _, key := range RequiredCostModelKeys(lang) {
		raw[key] = 1
	}
	delete(raw, Sha2_256.Name()+"-cpu-arguments-0")

	_, err := NewCostModel(lang, raw)
	require.Error(t, err)
	_, ok := err.(*CostModelIncompleteError)
	require.True(t, ok, "expected a *CostModelIncompleteError, got %T", err)
}
