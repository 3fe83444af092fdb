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

// caseList over a non-empty list must apply the cons branch to the real
// (head, tail) pair, not hand back the unapplied branch function: a lambda
// value surviving to the top of Run would be a *VLam, never a *VCon.
func TestCaseListAppliesConsBranchToHeadAndTail(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())

	xs := uplc.NewList(uplc.TInteger(), []uplc.Constant{
		uplc.NewInteger(big.NewInt(7)),
		uplc.NewInteger(big.NewInt(8)),
	})
	nilBranch := &uplc.Const{Value: uplc.NewInteger(big.NewInt(-1))}
	// consBranch = \head tail -> head. Applying head first extends the
	// environment at index 0; applying tail next shifts head to index 1.
	consBranch := &uplc.Lambda{ParamName: "head", Body: &uplc.Lambda{ParamName: "tail", Body: &uplc.Var{Index: 1}}}

	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.Force{Body: &uplc.Force{Body: &uplc.BuiltinRef{ID: CaseList}}},
				Argument: nilBranch,
			},
			Argument: &uplc.Const{Value: xs},
		},
		Argument: consBranch,
	}

	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	con, ok := value.(*VCon)
	require.True(t, ok, "expected caseList to return the applied branch's result, got %T", value)
	require.Equal(t, 0, big.NewInt(7).Cmp(con.Value.Value.(*big.Int)))
}

// caseList over an empty list must return the nil branch untouched, the one
// path that was never broken.
func TestCaseListOnEmptyListReturnsNilBranch(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())

	xs := uplc.NewList(uplc.TInteger(), nil)
	nilBranch := &uplc.Const{Value: uplc.NewInteger(big.NewInt(42))}
	consBranch := &uplc.Lambda{ParamName: "head", Body: &uplc.Lambda{ParamName: "tail", Body: &uplc.Var{Index: 1}}}

	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.Force{Body: &uplc.Force{Body: &uplc.BuiltinRef{ID: CaseList}}},
				Argument: nilBranch,
			},
			Argument: &uplc.Const{Value: xs},
		},
		Argument: consBranch,
	}

	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	con, ok := value.(*VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(42).Cmp(con.Value.Value.(*big.Int)))
}

// dropList(n, xs) clamps n to the list length rather than failing.
func TestDropListClampsCount(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())
	xs := uplc.NewList(uplc.TInteger(), []uplc.Constant{
		uplc.NewInteger(big.NewInt(1)),
		uplc.NewInteger(big.NewInt(2)),
	})
	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Force{Body: &uplc.BuiltinRef{ID: DropList}},
			Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(99))},
		},
		Argument: &uplc.Const{Value: xs},
	}
	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	items, elemType, err := asListOf(value)
	require.NoError(t, err)
	require.True(t, elemType.Equal(uplc.TInteger()))
	require.Empty(t, items)
}

// indexArray(xs, i) out of bounds must fail rather than panic or wrap around.
func TestIndexArrayOutOfRangeFails(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())
	xs := uplc.NewList(uplc.TInteger(), []uplc.Constant{uplc.NewInteger(big.NewInt(1))})
	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Force{Body: &uplc.BuiltinRef{ID: IndexArray}},
			Argument: &uplc.Const{Value: xs},
		},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(5))},
	}
	_, _, err := m.Run(context.Background(), term)
	require.Error(t, err)
}
