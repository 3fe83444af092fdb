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
	"math/big"

	"github.com/core-coin/go-uplc/params"
)

// MalformedProgramError reports a truncated or ill-tagged binary program
// (spec.md §4.1, §6).
type MalformedProgramError struct {
	Offset int
	Reason string
}

func (e *MalformedProgramError) Error() string {
	return "malformed program at offset " + itoaInt(e.Offset) + ": " + e.Reason
}

func itoaInt(n int) string {
	if n < 0 {
		return "-" + itoaInt(-n)
	}
	return itoaUint(uint64(n))
}
func itoaUint(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// UnsupportedLanguageVersionError reports a program version header outside
// the set the caller enabled (spec.md §6).
type UnsupportedLanguageVersionError struct {
	Version params.ProgramVersion
}

func (e *UnsupportedLanguageVersionError) Error() string {
	return "unsupported language version " + e.Version.String()
}

const termTagBits = 4

const (
	tagVar = iota
	tagDelay
	tagLambda
	tagApply
	tagConstant
	tagForce
	tagErrorTerm
	tagBuiltin
	tagConstr
	tagCase
)

// writeNatural encodes a nonnegative integer as Elias-Gamma-like
// length-prefixed 7-bit groups, least-significant group first, each group's
// leading bit set when another group follows.
func writeNatural(w *bitWriter, n uint64) {
	for {
		chunk := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			w.writeBits(uint64(chunk)|0x80, 8)
		} else {
			w.writeBits(uint64(chunk), 8)
			return
		}
	}
}

func readNatural(r *bitReader) (uint64, error) {
	var v uint64
	var shift uint
	for {
		chunk, err := r.readBits(8)
		if err != nil {
			return 0, err
		}
		v |= (chunk & 0x7f) << shift
		if chunk&0x80 == 0 {
			return v, nil
		}
		shift += 7
		if shift > 70 {
			return 0, &MalformedProgramError{Offset: r.bytePos, Reason: "natural number too long"}
		}
	}
}

// writeBigNatural encodes an arbitrary-precision nonnegative integer the
// same way, one 7-bit group per iteration over the big.Int's bits.
func writeBigNatural(w *bitWriter, n *big.Int) {
	if n.Sign() == 0 {
		w.writeBits(0, 8)
		return
	}
	v := new(big.Int).Set(n)
	mask := big.NewInt(0x7f)
	for v.Sign() != 0 {
		chunk := new(big.Int).And(v, mask)
		v.Rsh(v, 7)
		c := byte(chunk.Uint64())
		if v.Sign() != 0 {
			w.writeBits(uint64(c)|0x80, 8)
		} else {
			w.writeBits(uint64(c), 8)
		}
	}
}

func readBigNatural(r *bitReader) (*big.Int, error) {
	result := new(big.Int)
	shift := uint(0)
	for {
		chunk, err := r.readBits(8)
		if err != nil {
			return nil, err
		}
		part := new(big.Int).Lsh(big.NewInt(int64(chunk&0x7f)), shift)
		result.Or(result, part)
		if chunk&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// zigzag/unzigzag map signed integers onto naturals so the same
// length-prefixed chunk encoding covers both.
func zigzag(n *big.Int) *big.Int {
	if n.Sign() >= 0 {
		return new(big.Int).Lsh(n, 1)
	}
	v := new(big.Int).Neg(n)
	v.Lsh(v, 1)
	v.Sub(v, big.NewInt(1))
	return v
}

func unzigzag(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return new(big.Int).Rsh(n, 1)
	}
	v := new(big.Int).Add(n, big.NewInt(1))
	v.Rsh(v, 1)
	return v.Neg(v)
}

func writeInteger(w *bitWriter, n *big.Int) { writeBigNatural(w, zigzag(n)) }
func readInteger(r *bitReader) (*big.Int, error) {
	z, err := readBigNatural(r)
	if err != nil {
		return nil, err
	}
	return unzigzag(z), nil
}

// writeByteString aligns to a byte boundary then emits length-prefixed 8-bit
// chunks of at most 255 bytes. The string ends at the first chunk shorter
// than 255 bytes, which is a zero-length chunk when the length is a multiple
// of 255.
func writeByteString(w *bitWriter, b []byte) {
	w.align()
	for len(b) >= 255 {
		chunk := b[:255]
		b = b[255:]
		w.writeBits(255, 8)
		for _, by := range chunk {
			w.writeBits(uint64(by), 8)
		}
	}
	w.writeBits(uint64(len(b)), 8)
	for _, by := range b {
		w.writeBits(uint64(by), 8)
	}
}

func readByteString(r *bitReader) ([]byte, error) {
	if err := r.align(); err != nil {
		return nil, err
	}
	var out []byte
	for {
		n, err := r.readBits(8)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out, nil
		}
		for i := uint64(0); i < n; i++ {
			by, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			out = append(out, byte(by))
		}
		if n < 255 {
			return out, nil
		}
	}
}

const (
	typeTagInteger = iota
	typeTagByteString
	typeTagString
	typeTagUnit
	typeTagBool
	typeTagData
	typeTagList
	typeTagPair
	typeTagBLSG1
	typeTagBLSG2
	typeTagBLSMLResult
)

func writeType(w *bitWriter, t Type) {
	switch t.Tag {
	case TyInteger:
		writeNatural(w, typeTagInteger)
	case TyByteString:
		writeNatural(w, typeTagByteString)
	case TyString:
		writeNatural(w, typeTagString)
	case TyUnit:
		writeNatural(w, typeTagUnit)
	case TyBool:
		writeNatural(w, typeTagBool)
	case TyData:
		writeNatural(w, typeTagData)
	case TyBLSG1:
		writeNatural(w, typeTagBLSG1)
	case TyBLSG2:
		writeNatural(w, typeTagBLSG2)
	case TyBLSMLResult:
		writeNatural(w, typeTagBLSMLResult)
	case TyList:
		writeNatural(w, typeTagList)
		writeType(w, *t.Elem)
	case TyPair:
		writeNatural(w, typeTagPair)
		writeType(w, *t.First)
		writeType(w, *t.Second)
	}
}

func readType(r *bitReader) (Type, error) {
	tag, err := readNatural(r)
	if err != nil {
		return Type{}, err
	}
	switch tag {
	case typeTagInteger:
		return TInteger(), nil
	case typeTagByteString:
		return TByteString(), nil
	case typeTagString:
		return TString(), nil
	case typeTagUnit:
		return TUnit(), nil
	case typeTagBool:
		return TBool(), nil
	case typeTagData:
		return TData(), nil
	case typeTagBLSG1:
		return TBLSG1(), nil
	case typeTagBLSG2:
		return TBLSG2(), nil
	case typeTagBLSMLResult:
		return TBLSMLResult(), nil
	case typeTagList:
		elem, err := readType(r)
		if err != nil {
			return Type{}, err
		}
		return TList(elem), nil
	case typeTagPair:
		first, err := readType(r)
		if err != nil {
			return Type{}, err
		}
		second, err := readType(r)
		if err != nil {
			return Type{}, err
		}
		return TPair(first, second), nil
	default:
		return Type{}, &MalformedProgramError{Offset: r.bytePos, Reason: "unknown type tag"}
	}
}
