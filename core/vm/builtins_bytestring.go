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
	"bytes"
	"math/big"
	"unicode/utf8"
)

func biAppendByteString(_ *execContext, args []Value) (Value, error) {
	x, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(x)+len(y))
	out = append(out, x...)
	out = append(out, y...)
	return mkBytes(out), nil
}

func biConsByteString(_ *execContext, args []Value) (Value, error) {
	n, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 255 {
		return nil, errOutOfRange
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(n.Int64()))
	out = append(out, b...)
	return mkBytes(out), nil
}

func biSliceByteString(_ *execContext, args []Value) (Value, error) {
	from, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	length, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	b, err := asBytes(args[2])
	if err != nil {
		return nil, err
	}
	start := from.Int64()
	if start < 0 {
		start = 0
	}
	end := start + length.Int64()
	if start > int64(len(b)) {
		start = int64(len(b))
	}
	if end > int64(len(b)) {
		end = int64(len(b))
	}
	if end < start {
		end = start
	}
	return mkBytes(append([]byte(nil), b[start:end]...)), nil
}

func biLengthOfByteString(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkIntI(int64(len(b))), nil
}

func biIndexByteString(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	i, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if !i.IsInt64() || i.Int64() < 0 || i.Int64() >= int64(len(b)) {
		return nil, errOutOfRange
	}
	return mkIntI(int64(b[i.Int64()])), nil
}

func biEqualsByteString(_ *execContext, args []Value) (Value, error) {
	x, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Equal(x, y)), nil
}

func biLessThanByteString(_ *execContext, args []Value) (Value, error) {
	x, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Compare(x, y) < 0), nil
}

func biLessThanEqualsByteString(_ *execContext, args []Value) (Value, error) {
	x, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Compare(x, y) <= 0), nil
}

// biIntegerToByteString implements integerToByteString(endian, size, int): a
// fixed-width (or, if size==0, minimal-width) big-endian/little-endian
// encoding of a nonnegative integer, failing rather than truncating when the
// requested width cannot hold the value.
func biIntegerToByteString(_ *execContext, args []Value) (Value, error) {
	endian, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	size, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	n, err := asInt(args[2])
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		return nil, errWrongArgType
	}
	raw := n.Bytes()
	width := len(raw)
	if size.Sign() != 0 {
		if !size.IsInt64() || size.Int64() < int64(width) {
			return nil, errWidthOverflow
		}
		width = int(size.Int64())
	}
	out := make([]byte, width)
	copy(out[width-len(raw):], raw)
	if endian { // true == little-endian
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return mkBytes(out), nil
}

func biByteStringToInteger(_ *execContext, args []Value) (Value, error) {
	endian, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	buf := append([]byte(nil), b...)
	if endian {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return mkInt(new(big.Int).SetBytes(buf)), nil
}

func biAppendString(_ *execContext, args []Value) (Value, error) {
	x, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asStr(args[1])
	if err != nil {
		return nil, err
	}
	return mkStr(x + y), nil
}

func biEqualsString(_ *execContext, args []Value) (Value, error) {
	x, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asStr(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(x == y), nil
}

func biEncodeUtf8(_ *execContext, args []Value) (Value, error) {
	s, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes([]byte(s)), nil
}

func biDecodeUtf8(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errInvalidUtf8
	}
	return mkStr(string(b)), nil
}
