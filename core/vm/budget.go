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

// ExBudget is the two-dimensional execution budget (spec.md §4.2, §4.5): a
// step counts against both CPU and memory simultaneously, mirroring the
// teacher's single-dimensional energy pool generalized to two axes.
type ExBudget struct {
	CPU    uint64
	Memory uint64
}

// Add returns the sum of two budgets. Used to accumulate the cost of a
// completed evaluation for reporting, never on the hot path (the hot path
// subtracts from a running remaining-budget value instead).
func (b ExBudget) Add(o ExBudget) ExBudget {
	return ExBudget{CPU: b.CPU + o.CPU, Memory: b.Memory + o.Memory}
}

// Sub subtracts a charge from the remaining budget. If either axis would go
// negative it returns ok=false and the would-be-negative deltas are not
// applied; the caller turns that into a BudgetExhaustedError carrying the
// required and the (unmodified) remaining budget.
func (b ExBudget) Sub(charge ExBudget) (ExBudget, bool) {
	if charge.CPU > b.CPU || charge.Memory > b.Memory {
		return b, false
	}
	return ExBudget{CPU: b.CPU - charge.CPU, Memory: b.Memory - charge.Memory}, true
}

// Exhausted reports whether either axis has reached zero while a charge is
// still outstanding.
func (b ExBudget) Exhausted() bool {
	return b.CPU == 0 || b.Memory == 0
}

func (b ExBudget) String() string {
	return "{cpu: " + itoaUint(b.CPU) + ", mem: " + itoaUint(b.Memory) + "}"
}
