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

// upleval evaluates a flat-encoded UPLC program against a cost model and
// prints the resulting value, the execution units spent, and any trace
// logs. It is the minimal ambient CLI around package eval, in the same
// spirit as the teacher's cmd/cvm wrapping package runtime.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/core-coin/go-uplc/core/uplc"
	"github.com/core-coin/go-uplc/core/vm"
	"github.com/core-coin/go-uplc/core/vm/eval"
	"github.com/core-coin/go-uplc/log"
	"github.com/core-coin/go-uplc/params"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "path to a flat-encoded UPLC program ('-' for stdin)")
		costModel  = flag.String("costmodel", "", "path to a JSON-encoded cost model (protocol parameter block)")
		era        = flag.String("era", string(params.EraVanRossem), "protocol era: Vasil, Chang, or vanRossem")
		cpuBudget  = flag.Uint64("cpu", params.MaxTxExCPU, "CPU execution units available")
		memBudget  = flag.Uint64("mem", params.MaxTxExMem, "memory execution units available")
		validate   = flag.Bool("validate", false, "also enforce the per-transaction ledger budget caps")
		debug      = flag.Bool("debug", false, "trace every machine step to stderr")
		argsFlag   = flag.String("args", "", "comma-separated paths to flat-encoded argument terms, applied left to right")
	)
	flag.Parse()

	if err := run(*scriptPath, *costModel, *era, *cpuBudget, *memBudget, *validate, *debug, *argsFlag); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(scriptPath, costModelPath, eraName string, cpu, mem uint64, validate, debug bool, argsFlag string) error {
	if scriptPath == "" {
		return fmt.Errorf("missing -script")
	}
	if costModelPath == "" {
		return fmt.Errorf("missing -costmodel")
	}

	scriptBytes, err := readAll(scriptPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	prog, err := uplc.Decode(scriptBytes)
	if err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}

	rawCostBytes, err := ioutil.ReadFile(costModelPath)
	if err != nil {
		return fmt.Errorf("reading cost model: %w", err)
	}
	rawCosts, err := params.DecodeRawCostModel(rawCostBytes)
	if err != nil {
		return fmt.Errorf("decoding cost model: %w", err)
	}

	eraValue := params.ProtocolEra(eraName)

	args, err := loadArgs(argsFlag)
	if err != nil {
		return err
	}

	budget := vm.ExBudget{CPU: cpu, Memory: mem}
	ctx := context.Background()

	var result eval.Result
	if debug {
		result = eval.EvaluateWithTracer(ctx, prog, args, rawCosts, budget, eraValue, newStderrTracer())
	} else {
		result = eval.EvaluateInEra(ctx, prog, args, rawCosts, budget, eraValue)
	}

	for _, line := range result.Logs {
		fmt.Fprintln(os.Stderr, "log:", line)
	}

	if validate {
		if verr := eval.Validate(ctx, prog, args, rawCosts, budget, eraValue); verr != nil {
			return verr
		}
	}

	if !result.Success {
		return result.Err
	}

	fmt.Printf("result: %#v\n", result.Value)
	fmt.Printf("budget spent: %s\n", result.Budget.String())
	return nil
}

// loadArgs decodes each comma-separated path as its own flat-encoded
// single-term program, taking only its Term; upleval has no standalone
// term-list wire format of its own.
func loadArgs(argsFlag string) ([]uplc.Term, error) {
	if argsFlag == "" {
		return nil, nil
	}
	var args []uplc.Term
	start := 0
	for i := 0; i <= len(argsFlag); i++ {
		if i != len(argsFlag) && argsFlag[i] != ',' {
			continue
		}
		path := argsFlag[start:i]
		start = i + 1
		if path == "" {
			continue
		}
		data, err := readAll(path)
		if err != nil {
			return nil, fmt.Errorf("reading argument %q: %w", path, err)
		}
		p, err := uplc.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding argument %q: %w", path, err)
		}
		args = append(args, p.Term)
	}
	return args, nil
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

// stderrTracer prints every machine step, builtin invocation, log message,
// and fault to stderr using the shared package log for consistent coloring.
type stderrTracer struct {
	logger log.Logger
}

func newStderrTracer() *stderrTracer {
	return &stderrTracer{logger: log.New("phase", "trace")}
}

func (t *stderrTracer) CaptureStep(kind params.MachineStepKind, before, after vm.ExBudget) {
	t.logger.Trace("step", "kind", kind.String(), "before", before.String(), "after", after.String())
}

func (t *stderrTracer) CaptureBuiltin(id vm.BuiltinID, args []vm.Value, before, after vm.ExBudget) {
	t.logger.Debug("builtin", "id", id, "argc", len(args), "before", before.String(), "after", after.String())
}

func (t *stderrTracer) CaptureLog(message string) {
	t.logger.Info(message)
}

func (t *stderrTracer) CaptureFault(err error, remaining vm.ExBudget) {
	t.logger.Error("fault", "err", err, "remaining", remaining.String())
}
