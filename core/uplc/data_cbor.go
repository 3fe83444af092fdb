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

import "math/big"

var bigOne = big.NewInt(1)

func newBigFromUint64(n uint64) *big.Int { return new(big.Int).SetUint64(n) }

// SerialiseData produces the canonical CBOR encoding of a Data value, the
// payload `serialiseData` and `equalsData`-adjacent hashing builtins operate
// on (spec.md §4.3). The traversal is iterative (flatten to postorder, then
// fold children bottom-up) per the Design Notes' ban on recursing over
// Data-shaped input.
func SerialiseData(root Data) []byte {
	order := flattenDataPostorder(root)
	results := make([][]byte, 0, len(order))
	for _, node := range order {
		nc := len(dataChildren(node))
		children := results[len(results)-nc:]
		results = results[:len(results)-nc]
		results = append(results, encodeDataNode(node, children))
	}
	return results[0]
}

func dataChildren(d Data) []Data {
	switch x := d.(type) {
	case *DataConstr:
		return x.Args
	case *DataList:
		return x.Items
	case *DataMap:
		out := make([]Data, 0, len(x.Pairs)*2)
		for _, p := range x.Pairs {
			out = append(out, p.Key, p.Value)
		}
		return out
	default:
		return nil
	}
}

func flattenDataPostorder(root Data) []Data {
	type frame struct {
		node     Data
		children []Data
		idx      int
	}
	stack := []frame{{node: root, children: dataChildren(root)}}
	order := make([]Data, 0, 16)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx < len(top.children) {
			child := top.children[top.idx]
			top.idx++
			stack = append(stack, frame{node: child, children: dataChildren(child)})
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// constrTagCBOR maps a Constr's alternative index to its CBOR major-type-6
// tag, following the scheme used throughout the ecosystem: indices 0-6 get
// tags 121-127, indices 7-127 get tags 1280-1400, anything larger falls back
// to the general tag-102 [index, args] encoding.
func constrTagCBOR(tag uint64) (cborTag uint64, general bool) {
	switch {
	case tag <= 6:
		return 121 + tag, false
	case tag <= 127:
		return 1280 + (tag - 7), false
	default:
		return 102, true
	}
}

func encodeDataNode(node Data, children [][]byte) []byte {
	switch x := node.(type) {
	case *DataI:
		return encodeCBORBigInt(x.Int)
	case *DataB:
		return encodeCBORBytesChunked(x.Bytes)
	case *DataList:
		return encodeCBORArray(children)
	case *DataMap:
		return encodeCBORMap(children)
	case *DataConstr:
		cborTag, general := constrTagCBOR(x.Tag)
		body := encodeCBORArray(children)
		if !general {
			return append(encodeCBORTag(cborTag), body...)
		}
		idxBytes := encodeCBORUint(0, x.Tag)
		outer := encodeCBORArray([][]byte{idxBytes, body})
		return append(encodeCBORTag(cborTag), outer...)
	default:
		return nil
	}
}

func encodeCBORHead(major byte, n uint64) []byte {
	switch {
	case n < 24:
		return []byte{major<<5 | byte(n)}
	case n <= 0xff:
		return []byte{major<<5 | 24, byte(n)}
	case n <= 0xffff:
		return []byte{major<<5 | 25, byte(n >> 8), byte(n)}
	case n <= 0xffffffff:
		return []byte{major<<5 | 26, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	default:
		return []byte{major<<5 | 27,
			byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32),
			byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
}

func encodeCBORUint(major byte, n uint64) []byte { return encodeCBORHead(major, n) }

func encodeCBORTag(tag uint64) []byte { return encodeCBORHead(6, tag) }

// encodeCBORBigInt encodes an arbitrary-precision integer: small magnitudes
// use the native major-0/1 unsigned/negative forms; anything exceeding 64
// bits uses the bignum tags (2 for non-negative, 3 for negative).
func encodeCBORBigInt(i *big.Int) []byte {
	if i.IsInt64() {
		v := i.Int64()
		if v >= 0 {
			return encodeCBORHead(0, uint64(v))
		}
		return encodeCBORHead(1, uint64(-v-1))
	}
	abs := new(big.Int).Abs(i)
	payload := abs.Bytes()
	tag := uint64(2)
	if i.Sign() < 0 {
		tag = 3
		// CBOR bignum negative encoding stores n = -1 - payload.
		adj := new(big.Int).Sub(abs, big.NewInt(1))
		payload = adj.Bytes()
	}
	out := encodeCBORTag(tag)
	out = append(out, encodeCBORHead(2, uint64(len(payload)))...)
	out = append(out, payload...)
	return out
}

const cborBytesChunkSize = 64

// encodeCBORBytesChunked splits a byte string longer than 64 bytes into an
// indefinite-length sequence of 64-byte chunks, the on-chain convention for
// Data bytestrings.
func encodeCBORBytesChunked(b []byte) []byte {
	if len(b) <= cborBytesChunkSize {
		out := encodeCBORHead(2, uint64(len(b)))
		return append(out, b...)
	}
	out := []byte{0x5f} // indefinite-length byte string
	for off := 0; off < len(b); off += cborBytesChunkSize {
		end := off + cborBytesChunkSize
		if end > len(b) {
			end = len(b)
		}
		out = append(out, encodeCBORHead(2, uint64(end-off))...)
		out = append(out, b[off:end]...)
	}
	out = append(out, 0xff)
	return out
}

func encodeCBORArray(items [][]byte) []byte {
	out := encodeCBORHead(4, uint64(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

// encodeCBORMap expects children as an interleaved [key0, value0, key1,
// value1, ...] sequence, matching dataChildren's ordering for *DataMap.
func encodeCBORMap(children [][]byte) []byte {
	pairCount := len(children) / 2
	out := encodeCBORHead(5, uint64(pairCount))
	for _, c := range children {
		out = append(out, c...)
	}
	return out
}

// deserialiseDataBytes parses a canonical-CBOR-encoded Data literal embedded
// in a program's constant pool. Unlike SerialiseData (which must not recurse
// over already-evaluated, potentially attacker-sized Data), this runs once
// per embedded literal at program-load time, before any budget is charged,
// so a straightforward recursive descent is the right tool.
func deserialiseDataBytes(b []byte) (Data, error) {
	d, rest, err := decodeCBORData(b)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &MalformedProgramError{Offset: len(b) - len(rest), Reason: "trailing bytes after Data literal"}
	}
	return d, nil
}

func decodeCBORData(b []byte) (Data, []byte, error) {
	if len(b) == 0 {
		return nil, nil, &MalformedProgramError{Offset: 0, Reason: "empty Data literal"}
	}
	major := b[0] >> 5
	switch major {
	case 0: // unsigned integer
		n, rest, err := decodeCBORUint(b)
		if err != nil {
			return nil, nil, err
		}
		return &DataI{Int: newBigFromUint64(n)}, rest, nil
	case 1: // negative integer
		n, rest, err := decodeCBORUint(b)
		if err != nil {
			return nil, nil, err
		}
		v := newBigFromUint64(n)
		v.Neg(v).Sub(v, bigOne)
		return &DataI{Int: v}, rest, nil
	case 2: // byte string (definite or chunked indefinite)
		bs, rest, err := decodeCBORBytes(b)
		if err != nil {
			return nil, nil, err
		}
		return &DataB{Bytes: bs}, rest, nil
	case 4: // array
		n, rest, err := decodeCBORUint(b)
		if err != nil {
			return nil, nil, err
		}
		items := make([]Data, 0, n)
		for i := uint64(0); i < n; i++ {
			var item Data
			item, rest, err = decodeCBORData(rest)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, item)
		}
		return &DataList{Items: items}, rest, nil
	case 5: // map
		n, rest, err := decodeCBORUint(b)
		if err != nil {
			return nil, nil, err
		}
		pairs := make([]DataPair, 0, n)
		for i := uint64(0); i < n; i++ {
			var k, v Data
			k, rest, err = decodeCBORData(rest)
			if err != nil {
				return nil, nil, err
			}
			v, rest, err = decodeCBORData(rest)
			if err != nil {
				return nil, nil, err
			}
			pairs = append(pairs, DataPair{Key: k, Value: v})
		}
		return &DataMap{Pairs: pairs}, rest, nil
	case 6: // tag: Constr or bignum
		tag, rest, err := decodeCBORUint(b)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case tag == 2 || tag == 3:
			bs, rest2, err := decodeCBORBytes(rest)
			if err != nil {
				return nil, nil, err
			}
			v := new(big.Int).SetBytes(bs)
			if tag == 3 {
				v.Add(v, bigOne)
				v.Neg(v)
			}
			return &DataI{Int: v}, rest2, nil
		case tag == 102:
			idxData, rest2, err := decodeCBORData(rest)
			if err != nil {
				return nil, nil, err
			}
			idxI, ok := idxData.(*DataI)
			if !ok {
				return nil, nil, &MalformedProgramError{Reason: "general constructor index must be an integer"}
			}
			argsData, rest3, err := decodeCBORData(rest2)
			if err != nil {
				return nil, nil, err
			}
			argsList, ok := argsData.(*DataList)
			if !ok {
				return nil, nil, &MalformedProgramError{Reason: "general constructor args must be an array"}
			}
			return &DataConstr{Tag: idxI.Int.Uint64(), Args: argsList.Items}, rest3, nil
		case tag >= 121 && tag <= 127:
			return decodeConstrArgs(tag-121, rest)
		case tag >= 1280 && tag <= 1400:
			return decodeConstrArgs(tag-1280+7, rest)
		default:
			return nil, nil, &MalformedProgramError{Reason: "unrecognised CBOR tag in Data literal"}
		}
	default:
		return nil, nil, &MalformedProgramError{Reason: "unrecognised CBOR major type in Data literal"}
	}
}

func decodeConstrArgs(index uint64, rest []byte) (Data, []byte, error) {
	argsData, rest2, err := decodeCBORData(rest)
	if err != nil {
		return nil, nil, err
	}
	argsList, ok := argsData.(*DataList)
	if !ok {
		return nil, nil, &MalformedProgramError{Reason: "constructor args must be an array"}
	}
	return &DataConstr{Tag: index, Args: argsList.Items}, rest2, nil
}

// decodeCBORUint decodes one CBOR head's argument as a uint64, returning the
// bytes that follow the head. It reads a single head only; decodeCBORBytes
// loops over the chunks of an indefinite-length byte string itself.
func decodeCBORUint(b []byte) (uint64, []byte, error) {
	if len(b) == 0 {
		return 0, nil, &MalformedProgramError{Reason: "truncated CBOR head"}
	}
	info := b[0] & 0x1f
	rest := b[1:]
	switch {
	case info < 24:
		return uint64(info), rest, nil
	case info == 24:
		if len(rest) < 1 {
			return 0, nil, &MalformedProgramError{Reason: "truncated CBOR uint8"}
		}
		return uint64(rest[0]), rest[1:], nil
	case info == 25:
		if len(rest) < 2 {
			return 0, nil, &MalformedProgramError{Reason: "truncated CBOR uint16"}
		}
		return uint64(rest[0])<<8 | uint64(rest[1]), rest[2:], nil
	case info == 26:
		if len(rest) < 4 {
			return 0, nil, &MalformedProgramError{Reason: "truncated CBOR uint32"}
		}
		v := uint64(rest[0])<<24 | uint64(rest[1])<<16 | uint64(rest[2])<<8 | uint64(rest[3])
		return v, rest[4:], nil
	case info == 27:
		if len(rest) < 8 {
			return 0, nil, &MalformedProgramError{Reason: "truncated CBOR uint64"}
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v = v<<8 | uint64(rest[i])
		}
		return v, rest[8:], nil
	default:
		return 0, nil, &MalformedProgramError{Reason: "indefinite-length head has no scalar argument"}
	}
}

func decodeCBORBytes(b []byte) ([]byte, []byte, error) {
	if len(b) == 0 {
		return nil, nil, &MalformedProgramError{Reason: "truncated CBOR byte string"}
	}
	if b[0] == 0x5f { // indefinite-length chunked byte string
		rest := b[1:]
		var out []byte
		for {
			if len(rest) == 0 {
				return nil, nil, &MalformedProgramError{Reason: "unterminated chunked byte string"}
			}
			if rest[0] == 0xff {
				return out, rest[1:], nil
			}
			n, r2, err := decodeCBORUint(rest)
			if err != nil {
				return nil, nil, err
			}
			if uint64(len(r2)) < n {
				return nil, nil, &MalformedProgramError{Reason: "truncated byte string chunk"}
			}
			out = append(out, r2[:n]...)
			rest = r2[n:]
		}
	}
	n, rest, err := decodeCBORUint(b)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < n {
		return nil, nil, &MalformedProgramError{Reason: "truncated byte string"}
	}
	return rest[:n], rest[n:], nil
}
