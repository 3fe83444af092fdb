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

import "github.com/core-coin/go-uplc/core/uplc"

// biIfThenElse is polymorphic over its two branches (one Force precedes
// the value arguments, per spec.md §4.3); since denotations here already
// receive evaluated Values regardless of type, the force accounting lives in
// the catalog entry's Forces field rather than in this body.
func biIfThenElse(_ *execContext, args []Value) (Value, error) {
	cond, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	if cond {
		return args[1], nil
	}
	return args[2], nil
}

func biChooseUnit(_ *execContext, args []Value) (Value, error) {
	// args[0] is checked for type only; its value carries no information.
	if _, err := asUnit(args[0]); err != nil {
		return nil, err
	}
	return args[1], nil
}

func asUnit(v Value) (struct{}, error) {
	c, ok := v.(*VCon)
	if !ok {
		return struct{}{}, errWrongArgType
	}
	if c.Value.Type.Tag != uplc.TyUnit {
		return struct{}{}, errWrongArgType
	}
	return struct{}{}, nil
}

// biTrace emits args[0] (a string) to the tracer's log sink and returns
// args[1] unchanged, matching spec.md §4.3's "trace" contract.
func biTrace(ctx *execContext, args []Value) (Value, error) {
	msg, err := asStr(args[0])
	if err != nil {
		return nil, err
	}
	if ctx != nil && ctx.Tracer != nil {
		ctx.Tracer.CaptureLog(msg)
	}
	return args[1], nil
}
