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

package uplc

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/core-coin/go-uplc/params"
	"github.com/stretchr/testify/require"
)

// Lambda/Var don't round-trip ParamName (the wire format is de-Bruijn only),
// so program round trips are checked by re-encoding the decoded result and
// comparing bytes, rather than comparing decoded structs field-by-field.
func assertProgramRoundTrips(t *testing.T, p *Program) {
	t.Helper()
	encoded := Encode(p)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, p.Version, decoded.Version)
	require.Equal(t, encoded, Encode(decoded), "re-encoding a decoded program must reproduce the original bytes")
}

func TestProgramRoundTripSimpleTerms(t *testing.T) {
	assertProgramRoundTrips(t, &Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &Const{Value: NewInteger(big.NewInt(-12345))},
	})
	assertProgramRoundTrips(t, &Program{
		Version: params.ProgramVersion{Major: 1, Minor: 0, Patch: 0},
		Term: &Apply{
			Function: &Lambda{Body: &Var{Index: 0}},
			Argument: &Const{Value: NewByteString([]byte{0xde, 0xad, 0xbe, 0xef})},
		},
	})
	assertProgramRoundTrips(t, &Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &Force{Body: &Delay{Body: &BuiltinRef{ID: 7}}},
	})
	assertProgramRoundTrips(t, &Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &ErrorTerm{},
	})
}

func TestProgramRoundTripConstrAndCase(t *testing.T) {
	assertProgramRoundTrips(t, &Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term: &Case{
			Scrutinee: &Constr{Tag: 2, Args: []Term{
				&Const{Value: NewInteger(big.NewInt(1))},
				&Const{Value: NewInteger(big.NewInt(2))},
			}},
			Branches: []Term{
				&Const{Value: NewInteger(big.NewInt(100))},
				&Const{Value: NewInteger(big.NewInt(200))},
				&Const{Value: NewInteger(big.NewInt(300))},
			},
		},
	})
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	full := Encode(&Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &Const{Value: NewInteger(big.NewInt(42))},
	})
	_, err := Decode(full[:len(full)-1])
	require.Error(t, err)
	var malformed *MalformedProgramError
	require.ErrorAs(t, err, &malformed)
}

func TestDecodeRejectsTrailingGarbage(t *testing.T) {
	full := Encode(&Program{
		Version: params.ProgramVersion{Major: 1, Minor: 1, Patch: 0},
		Term:    &Const{Value: NewInteger(big.NewInt(42))},
	})
	withGarbage := append(append([]byte(nil), full...), 0xff)
	_, err := Decode(withGarbage)
	require.Error(t, err)
}

// writeConstant/readConstant back every Constant wire-format branch
// (codec_value.go); exercised directly here rather than only indirectly
// through Program encoding, since not every constant shape is exercised by
// the simple program-level round trips above.
func roundTripConstant(t *testing.T, c Constant) Constant {
	t.Helper()
	w := &bitWriter{}
	writeConstant(w, c)
	r := newBitReader(w.bytes())
	got, err := readConstant(r)
	require.NoError(t, err)
	return got
}

func TestConstantRoundTrip(t *testing.T) {
	cases := []Constant{
		NewInteger(big.NewInt(0)),
		NewInteger(big.NewInt(-999999999999)),
		NewInteger(new(big.Int).Lsh(big.NewInt(1), 300)), // exceeds a machine word
		NewByteString(nil),
		NewByteString(bytes.Repeat([]byte{0x5a}, 300)), // spans multiple chunked groups
		NewString("hello, UPLC"),
		NewBool(true),
		NewBool(false),
		NewUnit(),
		NewList(TInteger(), []Constant{NewInteger(big.NewInt(1)), NewInteger(big.NewInt(2))}),
		NewPair(NewInteger(big.NewInt(7)), NewBool(true)),
	}
	for _, c := range cases {
		got := roundTripConstant(t, c)
		require.True(t, ConstantEqual(c, got), "round trip changed value of type %s", c.Type.String())
	}
}

func TestConstantRoundTripData(t *testing.T) {
	d := &DataConstr{Tag: 1, Args: []Data{
		&DataI{Int: big.NewInt(42)},
		&DataB{Bytes: []byte("payload")},
	}}
	got := roundTripConstant(t, NewData(d))
	gotData, ok := got.AsData()
	require.True(t, ok)
	require.True(t, DataEqual(d, gotData))
}

func TestDataCBORRoundTrip(t *testing.T) {
	tree := &DataList{Items: []Data{
		&DataI{Int: big.NewInt(-5)},
		&DataB{Bytes: []byte{0x01, 0x02, 0x03}},
		&DataConstr{Tag: 0, Args: nil},
		&DataMap{Pairs: []DataPair{
			{Key: &DataI{Int: big.NewInt(1)}, Value: &DataB{Bytes: []byte("one")}},
			{Key: &DataI{Int: big.NewInt(2)}, Value: &DataB{Bytes: []byte("two")}},
		}},
	}}

	encoded := SerialiseData(tree)
	decoded, err := deserialiseDataBytes(encoded)
	require.NoError(t, err)
	require.True(t, DataEqual(tree, decoded))

	// Canonical CBOR must be deterministic: serialising twice must match.
	require.Equal(t, encoded, SerialiseData(tree))
}

func TestDataEqualDistinguishesShapeAndValue(t *testing.T) {
	a := &DataI{Int: big.NewInt(1)}
	b := &DataI{Int: big.NewInt(2)}
	require.True(t, DataEqual(a, a))
	require.False(t, DataEqual(a, b))
	require.False(t, DataEqual(a, &DataB{Bytes: []byte{1}}))
}

func TestDataCacheEqualsAgreesWithDataEqual(t *testing.T) {
	a := &DataConstr{Tag: 5, Args: []Data{&DataI{Int: big.NewInt(9)}}}
	b := &DataConstr{Tag: 5, Args: []Data{&DataI{Int: big.NewInt(9)}}}
	c := &DataConstr{Tag: 5, Args: []Data{&DataI{Int: big.NewInt(10)}}}

	cache := NewDataCache(8)
	require.True(t, cache.Equals(a, b))
	require.False(t, cache.Equals(a, c))
	// Repeating the same comparison must hit the cache path and still agree.
	require.True(t, cache.Equals(a, b))
}

func TestExMemoryUsageCountsLimbsAndWords(t *testing.T) {
	require.Equal(t, int64(1), ExMemoryUsage(NewInteger(big.NewInt(0))))
	require.Equal(t, int64(1), ExMemoryUsage(NewInteger(big.NewInt(1))))
	require.Equal(t, int64(1), ExMemoryUsage(NewByteString(nil)))
	require.Equal(t, int64(2), ExMemoryUsage(NewByteString(make([]byte, 9))))
}
