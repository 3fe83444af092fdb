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

// integerToByteString/byteStringToInteger must round-trip, and a fixed
// width narrower than the value must fail rather than silently truncate.
func TestIntegerToByteStringRoundTrips(t *testing.T) {
	toBytes := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.BuiltinRef{ID: IntegerToByteString},
				Argument: &uplc.Const{Value: uplc.NewBool(false)}, // big-endian
			},
			Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(0))}, // minimal width
		},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(511))},
	}
	m1 := newTestMachine(t, params.PlutusV2, bigBudget())
	bytesVal, _, err := m1.Run(context.Background(), toBytes)
	require.NoError(t, err)
	bytesCon := bytesVal.(*VCon).Value

	toInt := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.BuiltinRef{ID: ByteStringToInteger},
			Argument: &uplc.Const{Value: uplc.NewBool(false)},
		},
		Argument: &uplc.Const{Value: bytesCon},
	}
	m2 := newTestMachine(t, params.PlutusV2, bigBudget())
	intVal, _, err := m2.Run(context.Background(), toInt)
	require.NoError(t, err)
	con, ok := intVal.(*VCon)
	require.True(t, ok)
	require.Equal(t, 0, big.NewInt(511).Cmp(con.Value.Value.(*big.Int)))
}

// integerToByteString must fail, not truncate, when the requested fixed
// width is too narrow to hold the value.
func TestIntegerToByteStringRejectsWidthOverflow(t *testing.T) {
	m := newTestMachine(t, params.PlutusV2, bigBudget())
	term := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.BuiltinRef{ID: IntegerToByteString},
				Argument: &uplc.Const{Value: uplc.NewBool(false)},
			},
			Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(1))}, // 1 byte requested
		},
		Argument: &uplc.Const{Value: uplc.NewInteger(big.NewInt(511))}, // needs 2 bytes
	}
	_, _, err := m.Run(context.Background(), term)
	require.Error(t, err)
}

// bls12_381_G1_equal must be reflexive over a point produced by hashToGroup,
// and a point must not equal its negation (barring the identity, which a
// hash-to-curve output never produces).
func TestBls12_381_G1_HashToGroupAndEqual(t *testing.T) {
	hashTerm := func(msg string) *uplc.Apply {
		return &uplc.Apply{
			Function: &uplc.Apply{
				Function: &uplc.BuiltinRef{ID: Bls12_381_G1_HashToGroup},
				Argument: &uplc.Const{Value: uplc.NewByteString([]byte(msg))},
			},
			Argument: &uplc.Const{Value: uplc.NewByteString([]byte("go-uplc-test-dst"))},
		}
	}

	m1 := newTestMachine(t, params.PlutusV3, bigBudget())
	p1Val, _, err := m1.Run(context.Background(), hashTerm("hello"))
	require.NoError(t, err)
	p1 := p1Val.(*VCon).Value

	equalSelf := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.BuiltinRef{ID: Bls12_381_G1_Equal},
			Argument: &uplc.Const{Value: p1},
		},
		Argument: &uplc.Const{Value: p1},
	}
	m2 := newTestMachine(t, params.PlutusV3, bigBudget())
	selfVal, _, err := m2.Run(context.Background(), equalSelf)
	require.NoError(t, err)
	require.True(t, selfVal.(*VCon).Value.Value.(bool))

	negTerm := &uplc.Apply{Function: &uplc.BuiltinRef{ID: Bls12_381_G1_Neg}, Argument: &uplc.Const{Value: p1}}
	m3 := newTestMachine(t, params.PlutusV3, bigBudget())
	negVal, _, err := m3.Run(context.Background(), negTerm)
	require.NoError(t, err)

	equalNeg := &uplc.Apply{
		Function: &uplc.Apply{
			Function: &uplc.BuiltinRef{ID: Bls12_381_G1_Equal},
			Argument: &uplc.Const{Value: p1},
		},
		Argument: &uplc.Const{Value: negVal.(*VCon).Value},
	}
	m4 := newTestMachine(t, params.PlutusV3, bigBudget())
	negEqVal, _, err := m4.Run(context.Background(), equalNeg)
	require.NoError(t, err)
	require.False(t, negEqVal.(*VCon).Value.Value.(bool), "a curve point must not equal its own negation")
}
