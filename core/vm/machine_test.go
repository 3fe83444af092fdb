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
	"context"
	"math/big"
	"testing"

	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/params"
	"github.com/stretchr/testify/require"
)

// testCostModel builds a params.RawCostModel with every key a language's
// full builtin catalog and machine step table requires, all set to small
// constants, so NewCostModel never fails with CostModelIncompleteError on
// tests that only care about evaluation semantics, not exact cost figures.
func testCostModel(t *testing.T, lang params.Language) *CostModel {
	t.Helper()
	raw := make(params.RawCostModel)
	for _, key := range RequiredCostModelKeys(lang) {
		raw[key] = 1
	}
	cm, err := NewCostModel(lang, raw)
	require.NoError(t, err)
	return cm
}

func newTestMachine(t *testing.T, lang params.Language, budget ExBudget) *Machine {
	t.Helper()
	return NewMachine(Config{
		Builtins: BuiltinSetForLanguage(lang),
		Costs:    testCostModel(t, lang),
		Budget:   budget,
	})
}

func bigBudget() ExBudget { return ExBudget{CPU: 10_000_000_000, Memory: 14_000_000} }

// (lam x x) 5 must reduce to the constant 5: the simplest possible Apply/
// Lambda/Var round trip through Compute and Return.
func TestIdentityApplication(t *testing.T) {
	m := newTestMachine(t, params.PlutusV1, bigBudget())
	five := &uplc.Const{Value: uplc.NewInteger(big.NewInt(5))}
	term := &uplc.Apply{
		Function: &uplc.Lambda{ParamName: "x", Body: &uplc.Var{Index: 0}},
		Argument: five,
	}

	value, spent, err := m.Run(context.Background(), term)
	require.NoError(t, err)

	con, ok := value.(*VCon)
	require.True(t, ok)
	require.Equal(t, big.NewInt(5), con.Value.Value)
	require.True(t, spent.CPU > 0, "a successful run must have charged a nonzero amount of CPU")
}

// addInteger 2 3 must reduce to 5 via the builtin dispatch path.
func TestAddIntegerBuiltin(t *testing.T) {
	m := newTestMachine(t, params.PlutusV1, bigBudget())
	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.BuiltinRef{ID: AddInteger},
			Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(2))},
		},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(3))},
	}

	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)

	con, ok := value.(*VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(5).Cmp(con.Value.Value.(*big.Int)))
}

// An unconditional Error term must fail evaluation rather than return a
// value, regardless of how much budget remains.
func TestErrorTermFails(t *testing.T) {
	m := newTestMachine(t, params.PlutusV1, bigBudget())
	_, _, err := m.Run(context.Background(), &uplc.ErrorTerm{})
	require.Error(t, err)
}

// Running with a budget too small to pay even the startup/variable steps
// must fail with a BudgetExhaustedError rather than silently under-charge.
func TestBudgetExhaustion(t *testing.T) {
	m := newTestMachine(t, params.PlutusV1, ExBudget{CPU: 1, Memory: 1})
	term := &uplc.Apply{
		Function: &uplc.Lambda{ParamName: "x", Body: &uplc.Var{Index: 0}},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))},
	}
	_, _, err := m.Run(context.Background(), term)
	require.Error(t, err)
	_, ok := err.(*BudgetExhaustedError)
	require.True(t, ok, "expected a *BudgetExhaustedError, got %T", err)
}

// Applying an argument to a builtin that still has pending Forces is not a
// builtin-specific failure (there is no BuiltinError-shaped "unexpected
// force" outcome for an argument application): it is the ordinary "tried to
// apply a non-function value" case, the same as applying an argument to an
// Integer.
func TestApplyToPartiallyForcedBuiltinIsNonFunctionApplication(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())
	term := &uplc.Apply{
		Function: &uplc.BuiltinRef{ID: CaseList},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(0))},
	}
	_, _, err := m.Run(context.Background(), term)
	require.ErrorIs(t, err, ErrNonFunctionApplication)
}

// Case on a VConstr must dispatch to the matching branch by tag.
func TestCaseDispatch(t *testing.T) {
	m := newTestMachine(t, params.PlutusV1, bigBudget())
	term := &uplc.Case{
		Scrutinee: &uplc.Constr{Tag: 1, Args: nil},
		Branches: []uplc.Term{
			&uplc.Const{Value: uplc.NewInteger(big.NewInt(100))},
			&uplc.Const{Value: uplc.NewInteger(big.NewInt(200))},
		},
	}
	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	con, ok := value.(*VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(200).Cmp(con.Value.Value.(*big.Int)))
}
