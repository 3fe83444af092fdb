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

// Language is the Plutus language generation, the protocol-parameter axis
// that selects which builtin subset the machine's jump table exposes.
type Language int

const (
	PlutusV1 Language = iota
	PlutusV2
	PlutusV3
	PlutusV4
)

func (l Language) String() string {
	switch l {
	case PlutusV1:
		return "PlutusV1"
	case PlutusV2:
		return "PlutusV2"
	case PlutusV3:
		return "PlutusV3"
	case PlutusV4:
		return "PlutusV4"
	default:
		return "unknown"
	}
}

// ProtocolEra names the hard-fork epoch associated with a Language, mirroring
// the teacher's fork-name constants (Frontier, Homestead, ... Istanbul) that
// gate its instruction sets.
type ProtocolEra string

const (
	EraVasil     ProtocolEra = "Vasil"     // enables PlutusV2
	EraChang     ProtocolEra = "Chang"     // enables PlutusV3
	EraVanRossem ProtocolEra = "vanRossem" // enables PlutusV4: caseList/caseData, dropList, array builtins
)

// EraForMajorProtocolVersion maps a ledger major protocol version to the era
// that gates the corresponding builtin subset. Unknown versions fall back to
// the oldest era so that a conforming node never silently enables a feature
// the chain hasn't activated yet.
func EraForMajorProtocolVersion(major int) ProtocolEra {
	switch {
	case major >= 10:
		return EraVanRossem
	case major >= 9:
		return EraChang
	case major >= 7:
		return EraVasil
	default:
		return EraVasil
	}
}

// LanguageForEra returns the highest Language a given era enables.
func LanguageForEra(era ProtocolEra) Language {
	switch era {
	case EraVanRossem:
		return PlutusV4
	case EraChang:
		return PlutusV3
	case EraVasil:
		return PlutusV2
	default:
		return PlutusV1
	}
}

// ProgramVersion is the three-natural version header every encoded program
// carries, per spec.md §4.1/§6.
type ProgramVersion struct {
	Major, Minor, Patch uint64
}

func (v ProgramVersion) String() string {
	return itoa(v.Major) + "." + itoa(v.Minor) + "." + itoa(v.Patch)
}

func itoa(n uint64) string {
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

// SupportedProgramVersions is the currently supported version-header set, per
// spec.md §6. A driver may extend this with additional vectors it explicitly
// enables.
var SupportedProgramVersions = map[ProgramVersion]bool{
	{Major: 1, Minor: 0, Patch: 0}: true,
	{Major: 1, Minor: 1, Patch: 0}: true,
}
