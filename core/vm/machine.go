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

// Package vm implements the CEK abstract machine that evaluates a
// core/uplc.Term, its cost model, and its builtin catalog. The machine loop
// (Machine.Run) mirrors the teacher's CVMInterpreter.Run step loop: a single
// goroutine repeatedly executes one small step, charges it against a budget,
// and polls for cancellation every few thousand steps rather than on every
// step.
package vm

import (
	"context"

	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/params"
	"github.com/go-stack/stack"
)

// Value is a fully evaluated CEK value (spec.md §3).
type Value interface {
	isValue()
}

// VCon wraps a ground constant as a value.
type VCon struct {
	Value uplc.Constant
}

// VLam is a closure: a lambda body paired with the environment it closed
// over.
type VLam struct {
	ParamName string
	Body      uplc.Term
	Env       *Environment
}

// VDelay is a suspended computation, forced by a matching Force.
type VDelay struct {
	Body uplc.Term
	Env  *Environment
}

// VBuiltin is a partially applied builtin: it accumulates forces and
// arguments until both are fully supplied, at which point FrameAwaitArgApp
// invokes it.
type VBuiltin struct {
	ID              BuiltinID
	Arity           int
	RemainingForces int
	Args            []Value
}

// VConstr is a constructor value: a tag plus its fully evaluated arguments,
// the only value a Case frame may scrutinise.
type VConstr struct {
	Tag  uint64
	Args []Value
}

func (*VCon) isValue()     {}
func (*VLam) isValue()     {}
func (*VDelay) isValue()   {}
func (*VBuiltin) isValue() {}
func (*VConstr) isValue()  {}

// Environment is a persistent linked list of bindings, innermost first, so
// Var(i) resolves by walking i parent links (spec.md §3's de-Bruijn
// environment).
type Environment struct {
	value  Value
	parent *Environment
}

// Extend returns a new environment with v bound at index 0, shifting every
// existing binding up by one index. The parent is shared, not copied: this
// is what makes closures cheap to build.
func (e *Environment) Extend(v Value) *Environment {
	return &Environment{value: v, parent: e}
}

// Lookup resolves a de-Bruijn index against this environment.
func (e *Environment) Lookup(index uint64) (Value, bool) {
	cur := e
	for i := uint64(0); i < index; i++ {
		if cur == nil {
			return nil, false
		}
		cur = cur.parent
	}
	if cur == nil {
		return nil, false
	}
	return cur.value, true
}

// Frame is one entry of the machine's explicit continuation stack (spec.md
// §4.4).
type Frame interface {
	isFrame()
}

type FrameForce struct{}

type FrameAwaitFunApp struct {
	Arg Term
	Env *Environment
}

type FrameAwaitArgApp struct {
	Fun Value
}

type FrameConstr struct {
	Tag     uint64
	Pending []Term
	Done    []Value
	Env     *Environment
}

type FrameCase struct {
	Branches []Term
	Env      *Environment
}

func (FrameForce) isFrame()        {}
func (FrameAwaitFunApp) isFrame()  {}
func (FrameAwaitArgApp) isFrame()  {}
func (*FrameConstr) isFrame()      {}
func (FrameCase) isFrame()         {}

// Term is a local alias so this file reads naturally against spec.md §4.4's
// notation without a uplc. prefix on every line.
type Term = uplc.Term

// Tracer observes every machine step and every builtin invocation, the UPLC
// analogue of the teacher's vm.EVMLogger hooks (CaptureState/CaptureFault).
// A nil Tracer disables tracing with zero overhead beyond the nil check.
type Tracer interface {
	CaptureStep(kind params.MachineStepKind, cost ExBudget, remaining ExBudget)
	CaptureBuiltin(id BuiltinID, args []Value, cost ExBudget, remaining ExBudget)
	CaptureLog(message string)
	CaptureFault(err error, remaining ExBudget)
}

// Config bundles the pieces a Machine needs beyond the program itself:
// which builtins are enabled, how they cost, the starting budget, and
// optional tracing. Modeled on the teacher's vm.Config{Debug, Tracer}.
type Config struct {
	Builtins      *BuiltinSet
	Costs         *CostModel
	Budget        ExBudget
	Tracer        Tracer
	CancelCheck   int // steps between ctx.Err() polls; 0 uses params.DefaultCancelCheckInterval
}

// Machine runs the CEK small-step loop to completion or failure.
type Machine struct {
	cfg       Config
	remaining ExBudget
	steps     int
	dataCache *uplc.DataCache
}

// dataCacheSize bounds the per-machine equalsData memoisation cache. A script
// rarely compares more than a few hundred distinct Data subtrees in one run,
// so this is generous headroom rather than a tuned figure.
const dataCacheSize = 256

// NewMachine builds a fresh machine for one evaluation. Each evaluation gets
// its own Machine; no state is ever shared across calls (spec.md §5: no
// global mutable machine state).
func NewMachine(cfg Config) *Machine {
	if cfg.CancelCheck <= 0 {
		cfg.CancelCheck = params.DefaultCancelCheckInterval
	}
	return &Machine{cfg: cfg, remaining: cfg.Budget, dataCache: uplc.NewDataCache(dataCacheSize)}
}

// Run evaluates term to a final value or fails, returning the budget
// actually consumed either way.
func (m *Machine) Run(ctx context.Context, term Term) (Value, ExBudget, error) {
	initial := m.remaining
	if err := m.charge(params.StepStartup); err != nil {
		return nil, m.spent(initial), err
	}
	frames := []Frame{}

	computing := true
	var curTerm Term = term
	var curEnv *Environment
	var curValue Value

	for {
		m.steps++
		if m.steps%m.cfg.CancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return nil, m.spent(initial), err
			}
		}

		var nextFrames []Frame
		var err error
		if computing {
			curValue, curTerm, curEnv, nextFrames, computing, err = m.compute(curTerm, curEnv, frames)
		} else {
			curValue, curTerm, curEnv, nextFrames, computing, err = m.ret(curValue, frames)
		}
		if err != nil {
			if m.cfg.Tracer != nil {
				m.cfg.Tracer.CaptureFault(err, m.remaining)
			}
			return nil, m.spent(initial), err
		}
		frames = nextFrames
		if !computing && frames == nil {
			return curValue, m.spent(initial), nil
		}
	}
}

func (m *Machine) spent(initial ExBudget) ExBudget {
	return ExBudget{CPU: initial.CPU - m.remaining.CPU, Memory: initial.Memory - m.remaining.Memory}
}

// charge subtracts a step's cost from the remaining budget, failing with
// BudgetExhaustedError if that would go negative. Run calls it once for the
// startup step, and every Compute transition except Error calls it before
// performing its semantic action; Return transitions are not charged.
func (m *Machine) charge(kind params.MachineStepKind) error {
	cost := m.cfg.Costs.Steps[kind]
	next, ok := m.remaining.Sub(cost)
	if !ok {
		return &BudgetExhaustedError{Required: cost, Remaining: m.remaining}
	}
	m.remaining = next
	if m.cfg.Tracer != nil {
		m.cfg.Tracer.CaptureStep(kind, cost, m.remaining)
	}
	return nil
}

// compute evaluates one Compute(t, E) rule, returning either a value (with
// computing=false so the loop switches to Return on the same frame stack) or
// a new (term, env) pair to keep computing, plus the (possibly popped)
// frame stack. Exactly one of the two result shapes is meaningful at a time.
func (m *Machine) compute(t Term, env *Environment, frames []Frame) (value Value, nextTerm Term, nextEnv *Environment, nextFrames []Frame, computing bool, err error) {
	switch x := t.(type) {
	case *uplc.Var:
		if err := m.charge(params.StepVariable); err != nil {
			return nil, nil, nil, nil, false, err
		}
		v, ok := env.Lookup(x.Index)
		if !ok {
			return nil, nil, nil, nil, false, &OpenTermError{Index: x.Index, Site: stack.Caller(0)}
		}
		return v, nil, nil, frames, false, nil

	case *uplc.Const:
		if err := m.charge(params.StepConstant); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return &VCon{Value: x.Value}, nil, nil, frames, false, nil

	case *uplc.Lambda:
		if err := m.charge(params.StepLambda); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return &VLam{ParamName: x.ParamName, Body: x.Body, Env: env}, nil, nil, frames, false, nil

	case *uplc.Delay:
		if err := m.charge(params.StepDelay); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return &VDelay{Body: x.Body, Env: env}, nil, nil, frames, false, nil

	case *uplc.Force:
		if err := m.charge(params.StepForce); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return nil, x.Body, env, append(frames, FrameForce{}), true, nil

	case *uplc.Apply:
		if err := m.charge(params.StepApply); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return nil, x.Function, env, append(frames, FrameAwaitFunApp{Arg: x.Argument, Env: env}), true, nil

	case *uplc.BuiltinRef:
		if err := m.charge(params.StepBuiltin); err != nil {
			return nil, nil, nil, nil, false, err
		}
		entry, ok := m.cfg.Builtins.Lookup(x.ID)
		if !ok {
			return nil, nil, nil, nil, false, &BuiltinError{Name: x.ID.Name(), Err: ErrUnknownBuiltin}
		}
		return &VBuiltin{ID: x.ID, Arity: entry.Arity, RemainingForces: entry.Forces}, nil, nil, frames, false, nil

	case *uplc.ErrorTerm:
		return nil, nil, nil, nil, false, ErrUserError

	case *uplc.Constr:
		if err := m.charge(params.StepConstr); err != nil {
			return nil, nil, nil, nil, false, err
		}
		if len(x.Args) == 0 {
			return &VConstr{Tag: x.Tag, Args: nil}, nil, nil, frames, false, nil
		}
		frame := &FrameConstr{Tag: x.Tag, Pending: x.Args[1:], Done: nil, Env: env}
		return nil, x.Args[0], env, append(frames, frame), true, nil

	case *uplc.Case:
		if err := m.charge(params.StepCase); err != nil {
			return nil, nil, nil, nil, false, err
		}
		return nil, x.Scrutinee, env, append(frames, FrameCase{Branches: x.Branches, Env: env}), true, nil

	default:
		return nil, nil, nil, nil, false, ErrNonFunctionApplication
	}
}

// ret performs one Return(V, frames) rule: pop the top frame and act on it.
// An empty frame stack after popping signals the machine is done.
func (m *Machine) ret(v Value, frames []Frame) (value Value, nextTerm Term, nextEnv *Environment, nextFrames []Frame, computing bool, err error) {
	if len(frames) == 0 {
		return v, nil, nil, nil, false, nil
	}
	top := frames[len(frames)-1]
	rest := frames[:len(frames)-1]

	switch f := top.(type) {
	case FrameForce:
		switch dv := v.(type) {
		case *VDelay:
			return nil, dv.Body, dv.Env, rest, true, nil
		case *VBuiltin:
			if dv.RemainingForces == 0 {
				return nil, nil, nil, nil, false, &BuiltinError{Name: dv.ID.Name(), Err: ErrUnexpectedForce}
			}
			nb := *dv
			nb.RemainingForces--
			return &nb, nil, nil, rest, false, nil
		default:
			return nil, nil, nil, nil, false, ErrNonPolymorphicForce
		}

	case FrameAwaitFunApp:
		return nil, f.Arg, f.Env, append(rest, FrameAwaitArgApp{Fun: v}), true, nil

	case FrameAwaitArgApp:
		return m.applyArg(f.Fun, v, rest)

	case *FrameConstr:
		done := append(append([]Value{}, f.Done...), v)
		if len(f.Pending) == 0 {
			return &VConstr{Tag: f.Tag, Args: done}, nil, nil, rest, false, nil
		}
		nextFrame := &FrameConstr{Tag: f.Tag, Pending: f.Pending[1:], Done: done, Env: f.Env}
		return nil, f.Pending[0], f.Env, append(rest, nextFrame), true, nil

	case FrameCase:
		vc, ok := v.(*VConstr)
		if !ok {
			return nil, nil, nil, nil, false, ErrNonConstrScrutinee
		}
		if int(vc.Tag) >= len(f.Branches) {
			return nil, nil, nil, nil, false, ErrCaseBranchMissing
		}
		branch := f.Branches[vc.Tag]
		callEnv := f.Env
		for _, arg := range vc.Args {
			callEnv = callEnv.Extend(arg)
		}
		return nil, branch, callEnv, rest, true, nil

	default:
		return nil, nil, nil, nil, false, ErrNonFunctionApplication
	}
}

// applyArg performs FrameAwaitArgApp(fun) applied to argument v: lambda
// application extends the closure's environment; a saturating builtin
// invokes its denotation; a not-yet-saturated builtin accumulates the
// argument.
func (m *Machine) applyArg(fun Value, v Value, rest []Frame) (value Value, nextTerm Term, nextEnv *Environment, nextFrames []Frame, computing bool, err error) {
	switch f := fun.(type) {
	case *VLam:
		return nil, f.Body, f.Env.Extend(v), rest, true, nil
	case *VBuiltin:
		if f.RemainingForces != 0 {
			// spec.md §4.4's FrameAwaitArgApp rule only matches a fully-forced
			// VBuiltin(id, arity, 0, args); anything else, including one still
			// awaiting a Force, falls under "any other f_val: fail
			// NonFunctionApplication."
			return nil, nil, nil, nil, false, ErrNonFunctionApplication
		}
		args := append(append([]Value{}, f.Args...), v)
		if len(args) == f.Arity {
			result, err := m.invokeBuiltin(f.ID, args)
			if err != nil {
				return nil, nil, nil, nil, false, err
			}
			return result, nil, nil, rest, false, nil
		}
		return &VBuiltin{ID: f.ID, Arity: f.Arity, RemainingForces: 0, Args: args}, nil, nil, rest, false, nil
	default:
		return nil, nil, nil, nil, false, ErrNonFunctionApplication
	}
}

// invokeBuiltin charges a builtin's cost as a function of its operands'
// memory usages, then runs its denotation (spec.md §4.3/§4.4).
func (m *Machine) invokeBuiltin(id BuiltinID, args []Value) (Value, error) {
	entry, ok := m.cfg.Builtins.Lookup(id)
	if !ok {
		return nil, &BuiltinError{Name: id.Name(), Err: ErrUnknownBuiltin}
	}
	sizes := make([]int64, len(args))
	for i, a := range args {
		sizes[i] = valueMemoryUsage(a)
	}
	costing, ok := m.cfg.Costs.Builtins[id]
	if !ok {
		return nil, &CostModelIncompleteError{Language: m.cfg.Costs.Language.String(), Key: id.Name()}
	}
	cost := ExBudget{
		CPU:    uint64(costing.CPU.Evaluate(sizes...)),
		Memory: uint64(costing.Mem.Evaluate(sizes...)),
	}
	next, within := m.remaining.Sub(cost)
	if !within {
		return nil, &BudgetExhaustedError{Required: cost, Remaining: m.remaining}
	}
	m.remaining = next
	if m.cfg.Tracer != nil {
		m.cfg.Tracer.CaptureBuiltin(id, args, cost, m.remaining)
	}
	result, err := entry.Exec(&execContext{Tracer: m.cfg.Tracer, DataCache: m.dataCache, Apply: m.applyFully}, args)
	if err != nil {
		return nil, &BuiltinError{Name: entry.Name, Args: debugArgs(args), Err: err}
	}
	return result, nil
}

// applyFully curries fn over args through the machine's own applyArg rule,
// one argument at a time, driving any resulting lambda body to a value
// before applying the next argument. It runs with its own private frame
// stack so the nested evaluation cannot leak into or observe the caller's
// continuation, the same isolation a fresh top-level Run gets.
func (m *Machine) applyFully(fn Value, args ...Value) (Value, error) {
	cur := fn
	for _, a := range args {
		value, term, env, frames, computing, err := m.applyArg(cur, a, nil)
		if err != nil {
			return nil, err
		}
		if !computing {
			cur = value
			continue
		}
		v, err := m.runFrom(term, env, frames)
		if err != nil {
			return nil, err
		}
		cur = v
	}
	return cur, nil
}

// runFrom drives compute/ret to completion from a (term, env, frames) triple
// that did not originate at Run's top level, charging steps against the same
// budget and step counter as the enclosing evaluation.
func (m *Machine) runFrom(term Term, env *Environment, frames []Frame) (Value, error) {
	computing := true
	curTerm := term
	curEnv := env
	var curValue Value
	for {
		m.steps++
		var nextFrames []Frame
		var err error
		if computing {
			curValue, curTerm, curEnv, nextFrames, computing, err = m.compute(curTerm, curEnv, frames)
		} else {
			curValue, curTerm, curEnv, nextFrames, computing, err = m.ret(curValue, frames)
		}
		if err != nil {
			return nil, err
		}
		frames = nextFrames
		if !computing && frames == nil {
			return curValue, nil
		}
	}
}

func debugArgs(args []Value) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// valueMemoryUsage reports a value's memory-usage measure for builtin
// costing (spec.md §4.2). Non-constant values (closures, partially applied
// builtins, constructors), such as the branch functions passed to caseList
// and caseData, have no constant payload to measure and report 1.
func valueMemoryUsage(v Value) int64 {
	switch x := v.(type) {
	case *VCon:
		return uplc.ExMemoryUsage(x.Value)
	default:
		return 1
	}
}
