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

func writeConstant(w *bitWriter, c Constant) {
	writeType(w, c.Type)
	writeConstantValue(w, c)
}

func writeConstantValue(w *bitWriter, c Constant) {
	switch c.Type.Tag {
	case TyInteger:
		v, _ := c.AsInteger()
		writeInteger(w, v)
	case TyByteString:
		v, _ := c.AsByteString()
		writeByteString(w, v)
	case TyString:
		v, _ := c.AsString()
		writeByteString(w, []byte(v))
	case TyBool:
		v, _ := c.AsBool()
		if v {
			w.writeBits(1, 1)
		} else {
			w.writeBits(0, 1)
		}
	case TyUnit:
		// no payload
	case TyData:
		v, _ := c.AsData()
		writeByteString(w, SerialiseData(v))
	case TyList:
		v, _ := c.AsList()
		writeNatural(w, uint64(len(v)))
		for _, e := range v {
			writeConstantValue(w, e)
		}
	case TyPair:
		v, _ := c.AsPair()
		writeConstantValue(w, v.First)
		writeConstantValue(w, v.Second)
	case TyBLSG1:
		g := c.Value.(*BLSG1)
		writeByteString(w, g.Bytes[:])
	case TyBLSG2:
		g := c.Value.(*BLSG2)
		writeByteString(w, g.Bytes[:])
	case TyBLSMLResult:
		// Miller-loop products are never program literals; encoding one is a
		// programmer error, not a wire-format concern.
		panic("cannot encode a bls12_381_MlResult as a program constant")
	}
}

func readConstant(r *bitReader) (Constant, error) {
	t, err := readType(r)
	if err != nil {
		return Constant{}, err
	}
	v, err := readConstantValue(r, t)
	if err != nil {
		return Constant{}, err
	}
	return v, nil
}

func readConstantValue(r *bitReader, t Type) (Constant, error) {
	switch t.Tag {
	case TyInteger:
		v, err := readInteger(r)
		if err != nil {
			return Constant{}, err
		}
		return NewInteger(v), nil
	case TyByteString:
		v, err := readByteString(r)
		if err != nil {
			return Constant{}, err
		}
		return NewByteString(v), nil
	case TyString:
		v, err := readByteString(r)
		if err != nil {
			return Constant{}, err
		}
		return NewString(string(v)), nil
	case TyBool:
		b, err := r.readBits(1)
		if err != nil {
			return Constant{}, err
		}
		return NewBool(b == 1), nil
	case TyUnit:
		return NewUnit(), nil
	case TyData:
		raw, err := readByteString(r)
		if err != nil {
			return Constant{}, err
		}
		d, err := deserialiseDataBytes(raw)
		if err != nil {
			return Constant{}, err
		}
		return NewData(d), nil
	case TyList:
		n, err := readNatural(r)
		if err != nil {
			return Constant{}, err
		}
		items := make([]Constant, 0, n)
		for i := uint64(0); i < n; i++ {
			e, err := readConstantValue(r, *t.Elem)
			if err != nil {
				return Constant{}, err
			}
			items = append(items, e)
		}
		return NewList(*t.Elem, items), nil
	case TyPair:
		first, err := readConstantValue(r, *t.First)
		if err != nil {
			return Constant{}, err
		}
		second, err := readConstantValue(r, *t.Second)
		if err != nil {
			return Constant{}, err
		}
		return NewPair(first, second), nil
	case TyBLSG1:
		raw, err := readByteString(r)
		if err != nil {
			return Constant{}, err
		}
		if len(raw) != 48 {
			return Constant{}, &MalformedProgramError{Offset: r.bytePos, Reason: "bls12_381_G1_element must be 48 bytes"}
		}
		g := &BLSG1{}
		copy(g.Bytes[:], raw)
		return Constant{Type: TBLSG1(), Value: g}, nil
	case TyBLSG2:
		raw, err := readByteString(r)
		if err != nil {
			return Constant{}, err
		}
		if len(raw) != 96 {
			return Constant{}, &MalformedProgramError{Offset: r.bytePos, Reason: "bls12_381_G2_element must be 96 bytes"}
		}
		g := &BLSG2{}
		copy(g.Bytes[:], raw)
		return Constant{Type: TBLSG2(), Value: g}, nil
	default:
		return Constant{}, &MalformedProgramError{Offset: r.bytePos, Reason: "unsupported constant type in wire format"}
	}
}
