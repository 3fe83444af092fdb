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

// caseData on an I-shaped Data node must apply the integer branch to the
// unwrapped integer, not hand back an unapplied branch function or alias
// chooseData's already-evaluated-alternative behavior.
func TestCaseDataAppliesIntegerBranch(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())

	d := &uplc.Const{Value: uplc.NewData(&uplc.DataI{Int: big.NewInt(42)})}
	identity := &uplc.Lambda{ParamName: "x", Body: &uplc.Var{Index: 0}}
	// Unused branches must still evaluate to some value — any function works,
	// since caseData only ever applies the one matching the scrutinee's shape.
	constrBranch := &uplc.Lambda{ParamName: "tag", Body: &uplc.Lambda{ParamName: "args", Body: &uplc.Var{Index: 1}}}

	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.Apply{
					Function: &uplc.Apply{
						Function: &uplc.Apply{
							Function: &uplc.Force{Body: &uplc.BuiltinRef{ID: CaseData}},
							Argument: d,
						},
						Argument: constrBranch,
					},
					Argument: identity, // map branch, unused
				},
				Argument: identity, // list branch, unused
			},
			Argument: identity, // int branch, used
		},
		Argument: identity, // bytes branch, unused
	}

	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	con, ok := value.(*VCon)
	require.True(t, ok, "expected caseData to return the applied branch's result, got %T", value)
	require.Equal(t, 0, big.NewInt(42).Cmp(con.Value.Value.(*big.Int)))
}

// caseData on a Constr-shaped Data node must curry the tag and args into the
// constr branch separately, matching unConstrData's (tag, args) decomposition.
func TestCaseDataAppliesConstrBranchToTagAndArgs(t *testing.T) {
	m := newTestMachine(t, params.PlutusV4, bigBudget())

	inner := &uplc.DataI{Int: big.NewInt(7)}
	d := &uplc.Const{Value: uplc.NewData(&uplc.DataConstr{Tag: 3, Args: []uplc.Data{inner}})}
	identity := &uplc.Lambda{ParamName: "x", Body: &uplc.Var{Index: 0}}
	// constrBranch = \tag args -> tag
	constrBranch := &uplc.Lambda{ParamName: "tag", Body: &uplc.Lambda{ParamName: "args", Body: &uplc.Var{Index: 1}}}

	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.Apply{
					Function: &uplc.Apply{
						Function: &uplc.Apply{
							Function: &uplc.Force{Body: &uplc.BuiltinRef{ID: CaseData}},
							Argument: d,
						},
						Argument: constrBranch,
					},
					Argument: identity,
				},
				Argument: identity,
			},
			Argument: identity,
		},
		Argument: identity,
	}

	value, _, err := m.Run(context.Background(), term)
	require.NoError(t, err)
	con, ok := value.(*VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(3).Cmp(con.Value.Value.(*big.Int)))
}
