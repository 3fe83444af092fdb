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

package params

// Per-transaction execution unit caps, the ledger-level ceilings the driver's
// Validate mode enforces in addition to the caller-supplied budget (spec.md
// §4.5). These mirror the teacher's per-block energy caps
// (params.GenesisEnergyLimit and friends) scaled to the per-redeemer axis.
const (
	MaxTxExCPU uint64 = 10_000_000_000
	MaxTxExMem uint64 = 14_000_000

	// DefaultCancelCheckInterval is how many machine steps elapse between
	// cooperative-cancellation checks (spec.md §5), mirroring the teacher's
	// 1000-step abort-flag poll in CVMInterpreter.Run.
	DefaultCancelCheckInterval = 4096

	// CallDepthLimit is a CEK frame-stack depth figure, mirroring
	// params.CallCreateDepth in the teacher. The machine does not check its
	// frame stack against it.
	CallDepthLimit = 1 << 16
)
