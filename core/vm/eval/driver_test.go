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

package eval

import (
	"context"
	"math/big"
	"testing"

	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/core/vm"
	"github.com/core-coin/go-uplc/params"
	"github.com/stretchr/testify/require"
)

func testRawCostModel(lang params.Language) params.RawCostModel {
	raw := make(params.RawCostModel)
	for _, key := range vm.RequiredCostModelKeys(lang) {
		raw[key] = 1
	}
	return raw
}

func bigBudget() vm.ExBudget { return vm.ExBudget{CPU: 10_000_000_000, Memory: 14_000_000} }

func identityProgram() *uplc.Program {
	return &uplc.Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &uplc.Lambda{ParamName: "x", Body: &uplc.Var{Index: 0}},
	}
}

// Applying the identity program to a single argument must succeed and
// return that argument, round-tripped through the newest supported era.
func TestEvaluateAndComputeCostIdentity(t *testing.T) {
	lang := params.LanguageForEra(params.EraVanRossem)
	arg := &uplc.Const{Value: uplc.NewInteger(big.NewInt(42))}

	result := EvaluateAndComputeCost(context.Background(), identityProgram(), []uplc.Term{arg}, testRawCostModel(lang), bigBudget())

	require.True(t, result.Success, "unexpected failure: %v", result.Err)
	con, ok := result.Value.(*vm.VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(42).Cmp(con.Value.Value.(*big.Int)))
}

// A program whose version header is not in params.SupportedProgramVersions
// must be rejected before the machine ever runs.
func TestEvaluateRejectsUnsupportedVersion(t *testing.T) {
	prog := &uplc.Program{
		Version: params.ProgramVersion{Major: 99, Minor: 0, Patch: 0},
		Term:    &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))},
	}
	result := EvaluateAndComputeCost(context.Background(), prog, nil, testRawCostModel(params.PlutusV4), bigBudget())
	require.False(t, result.Success)
	require.ErrorIs(t, result.Err, ErrUnsupportedVersion)
}

// Validate must additionally reject a successful evaluation that spent more
// than the per-transaction ledger caps, even though EvaluateAndComputeCost
// alone would call it a success.
func TestValidateEnforcesLedgerCaps(t *testing.T) {
	lang := params.LanguageForEra(params.EraVanRossem)
	arg := &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}
	raw := testRawCostModel(lang)

	tiny := vm.ExBudget{CPU: 1000, Memory: 1000}
	err := Validate(context.Background(), identityProgram(), []uplc.Term{arg}, raw, tiny, params.EraVanRossem)
	require.NoError(t, err, "a budget large enough to succeed and within ledger caps must validate cleanly")

	// The apply step alone now costs the whole CPU cap, and the budget lies
	// above the caps, so the run succeeds but spends more than they allow.
	raw[params.StepApply.CPUKey()] = int64(params.MaxTxExCPU)
	over := vm.ExBudget{CPU: 2 * params.MaxTxExCPU, Memory: params.MaxTxExMem + 1}
	err = Validate(context.Background(), identityProgram(), []uplc.Term{arg}, raw, over, params.EraVanRossem)
	require.Error(t, err)
}

// trace messages reach Result.Logs without affecting the returned value.
func TestEvaluateCollectsTraceLogs(t *testing.T) {
	lang := params.LanguageForEra(params.EraVanRossem)
	prog := &uplc.Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.Force{Body: &uplc.BuiltinRef{ID: vm.Trace}},
				Argument: &uplc.Const{Value: uplc.NewString("hello")},
			},
			Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(7))},
		},
	}
	result := EvaluateInEra(context.Background(), prog, nil, testRawCostModel(lang), bigBudget(), params.EraVanRossem)
	require.True(t, result.Success, "unexpected failure: %v", result.Err)
	con, ok := result.Value.(*vm.VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(7).Cmp(con.Value.Value.(*big.Int)))
	require.Equal(t, []string{"hello"}, result.Logs)
}
