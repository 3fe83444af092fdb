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
	"errors"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-stack/stack"
)

// Sentinel machine errors that carry no payload, mirroring the teacher's flat
// error-var list in its own errors.go.
var (
	ErrNonFunctionApplication = errors.New("cannot apply argument to a non-function value")
	ErrNonPolymorphicForce    = errors.New("cannot force a value that is not a delayed computation")
	ErrUnexpectedForce        = errors.New("builtin received a force where none was expected")
	ErrNonConstrScrutinee     = errors.New("case scrutinee did not reduce to a constructor value")
	ErrCaseBranchMissing      = errors.New("case tag has no matching branch")
	ErrUserError              = errors.New("evaluation failed: error term reached")
	ErrUnknownBuiltin         = errors.New("builtin id not present in the enabled catalog")
)

// OpenTermError reports a free (unbound) variable reached during evaluation,
// which can only happen for a program that was not closed at encode time.
type OpenTermError struct {
	Index uint64
	Site  stack.Call
}

func (e *OpenTermError) Error() string {
	return "open term: variable index " + itoaUint(e.Index) + " unbound at " + e.Site.String()
}

// BuiltinError reports a builtin denotation's own failure (malformed
// argument, domain error), with the offending arguments captured via spew so
// a CEK trace can show exactly what was applied.
type BuiltinError struct {
	Name string
	Args []interface{}
	Err  error
}

func (e *BuiltinError) Error() string {
	return "builtin " + e.Name + " failed on " + spew.Sdump(e.Args...) + ": " + e.Err.Error()
}

func (e *BuiltinError) Unwrap() error { return e.Err }

// BudgetExhaustedError reports the machine running past its allotted
// execution budget (spec.md §4.5), the UPLC analogue of the teacher's
// ErrOutOfEnergy.
type BudgetExhaustedError struct {
	Required  ExBudget
	Remaining ExBudget
}

func (e *BudgetExhaustedError) Error() string {
	return "out of budget: required " + e.Required.String() + " but only " + e.Remaining.String() + " remained"
}

// CostModelIncompleteError reports a cost-model parameter missing for a
// given language version, which prevents the machine from even starting.
type CostModelIncompleteError struct {
	Language string
	Key      string
}

func (e *CostModelIncompleteError) Error() string {
	return "cost model for " + e.Language + " is missing parameter " + e.Key
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
