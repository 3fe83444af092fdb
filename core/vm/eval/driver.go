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

// Package eval is the thin driver layer on top of package vm: it assembles a
// Config (builtin catalog, cost model, budget) for a chosen protocol era,
// applies a program to its redeemer/datum/context arguments, and runs the
// machine to completion, collecting trace logs along the way. This mirrors
// the teacher's core package wiring a vm.Config and calling CVM.Call rather
// than handing callers the bare interpreter.
package eval

import (
	"context"
	"errors"

	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/core/vm"
	"github.com/core-coin/go-uplc/log"
	"github.com/core-coin/go-uplc/params"
)

// ErrUnsupportedVersion is returned when a program's version header is not
// in params.SupportedProgramVersions (spec.md §6).
var ErrUnsupportedVersion = errors.New("unsupported program version")

// Result is the outcome of one evaluation: Success is true with Value set, or
// Success is false with Err set,
// mirroring the teacher's ExecutionResult{UsedEnergy, Err}.
type Result struct {
	Success bool
	Value   vm.Value
	Budget  vm.ExBudget
	Logs    []string
	Err     error
}

// logCollector is a vm.Tracer that only accumulates trace/log messages; it
// does not reconstruct a full per-step execution trace. EvaluateWithTracer
// below accepts a caller-supplied vm.Tracer for that.
type logCollector struct {
	logs []string
}

func (c *logCollector) CaptureStep(params.MachineStepKind, vm.ExBudget, vm.ExBudget)    {}
func (c *logCollector) CaptureBuiltin(vm.BuiltinID, []vm.Value, vm.ExBudget, vm.ExBudget) {}
func (c *logCollector) CaptureLog(message string)                                        { c.logs = append(c.logs, message) }
func (c *logCollector) CaptureFault(error, vm.ExBudget)                                   {}

// applyArgs builds the initial term to evaluate: the program's root term
// applied, left to right, to each supplied argument (spec.md §6's "a script
// evaluation context is the program applied to its arguments in order").
func applyArgs(root uplc.Term, args []uplc.Term) uplc.Term {
	t := root
	for _, a := range args {
		t = &uplc.Apply{Function: t, Argument: a}
	}
	return t
}

// EvaluateAndComputeCost runs prog applied to args under budget, returning
// the resulting value and the execution units actually spent, without
// enforcing the per-transaction ledger caps (spec.md §6's "compute, don't
// validate" mode). It always evaluates under the newest supported era;
// callers that must pin an older era (e.g. replaying a historical
// transaction) should call EvaluateInEra directly.
func EvaluateAndComputeCost(ctx context.Context, prog *uplc.Program, args []uplc.Term, rawCosts params.RawCostModel, budget vm.ExBudget) Result {
	return EvaluateInEra(ctx, prog, args, rawCosts, budget, params.EraVanRossem)
}

// EvaluateInEra is EvaluateAndComputeCost with an explicit protocol era,
// used by callers (e.g. a ledger replaying historical transactions) that
// must pin the builtin/cost-model generation rather than always using the
// newest one.
func EvaluateInEra(ctx context.Context, prog *uplc.Program, args []uplc.Term, rawCosts params.RawCostModel, budget vm.ExBudget, era params.ProtocolEra) Result {
	if !params.SupportedProgramVersions[prog.Version] {
		return Result{Err: ErrUnsupportedVersion}
	}
	lang := params.LanguageForEra(era)
	costs, err := vm.NewCostModel(lang, rawCosts)
	if err != nil {
		return Result{Err: err}
	}
	collector := &logCollector{}
	m := vm.NewMachine(vm.Config{
		Builtins: vm.BuiltinSetForLanguage(lang),
		Costs:    costs,
		Budget:   budget,
		Tracer:   collector,
	})
	term := applyArgs(prog.Term, args)
	value, spent, err := m.Run(ctx, term)
	if err != nil {
		log.New("phase", "eval").Debug("script evaluation failed", "err", err, "spent", spent.String())
		return Result{Success: false, Budget: spent, Logs: collector.logs, Err: err}
	}
	return Result{Success: true, Value: value, Budget: spent, Logs: collector.logs}
}

// Validate is EvaluateInEra plus the ledger-level acceptance check: the
// script must succeed, and its consumed budget must not exceed either the
// caller-supplied per-redeemer budget or the protocol-wide per-transaction
// ceilings (spec.md §4.5).
func Validate(ctx context.Context, prog *uplc.Program, args []uplc.Term, rawCosts params.RawCostModel, budget vm.ExBudget, era params.ProtocolEra) error {
	result := EvaluateInEra(ctx, prog, args, rawCosts, budget, era)
	if !result.Success {
		return result.Err
	}
	if result.Budget.CPU > params.MaxTxExCPU || result.Budget.Memory > params.MaxTxExMem {
		return &vm.BudgetExhaustedError{
			Required:  result.Budget,
			Remaining: vm.ExBudget{CPU: params.MaxTxExCPU, Memory: params.MaxTxExMem},
		}
	}
	return nil
}

// EvaluateWithTracer is EvaluateInEra for callers that want full per-step
// visibility (e.g. a debugger or an execution-unit profiler) rather than
// just accumulated trace/log messages; the supplied Tracer receives every
// CaptureStep/CaptureBuiltin/CaptureLog/CaptureFault call the machine makes.
func EvaluateWithTracer(ctx context.Context, prog *uplc.Program, args []uplc.Term, rawCosts params.RawCostModel, budget vm.ExBudget, era params.ProtocolEra, tracer vm.Tracer) Result {
	if !params.SupportedProgramVersions[prog.Version] {
		return Result{Err: ErrUnsupportedVersion}
	}
	lang := params.LanguageForEra(era)
	costs, err := vm.NewCostModel(lang, rawCosts)
	if err != nil {
		return Result{Err: err}
	}
	m := vm.NewMachine(vm.Config{
		Builtins: vm.BuiltinSetForLanguage(lang),
		Costs:    costs,
		Budget:   budget,
		Tracer:   tracer,
	})
	term := applyArgs(prog.Term, args)
	value, spent, err := m.Run(ctx, term)
	if err != nil {
		return Result{Success: false, Budget: spent, Err: err}
	}
	return Result{Success: true, Value: value, Budget: spent}
}
