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

import "math/big"

func biAddInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkInt(new(big.Int).Add(x, y)), nil
}

func biSubtractInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkInt(new(big.Int).Sub(x, y)), nil
}

func biMultiplyInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkInt(new(big.Int).Mul(x, y)), nil
}

// euclideanDivMod implements floor division and the Euclidean remainder
// (spec.md §4.3: "div/mod/quot/rem with Euclidean semantics"): mod's sign
// always matches the divisor, unlike Go's truncating %.
func euclideanDivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(x, y, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, y)
	}
	return q, r
}

func biDivideInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, errDivideByZero
	}
	q, _ := euclideanDivMod(x, y)
	return mkInt(q), nil
}

func biModInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, errDivideByZero
	}
	_, r := euclideanDivMod(x, y)
	return mkInt(r), nil
}

func biQuotientInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, errDivideByZero
	}
	return mkInt(new(big.Int).Quo(x, y)), nil
}

func biRemainderInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, errDivideByZero
	}
	return mkInt(new(big.Int).Rem(x, y)), nil
}

func biEqualsInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(x.Cmp(y) == 0), nil
}

func biLessThanInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(x.Cmp(y) < 0), nil
}

func biLessThanEqualsInteger(_ *execContext, args []Value) (Value, error) {
	x, err := asInt(args[0])
	if err != nil {
		return nil, err
	}
	y, err := asInt(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(x.Cmp(y) <= 0), nil
}
