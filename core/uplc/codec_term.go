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

package uplc

import "github.com/core-coin/go-uplc/params"

// Decode parses a flat-encoded binary program (spec.md §4.1). It fails with
// *MalformedProgramError for any truncated or ill-tagged input.
func Decode(data []byte) (*Program, error) {
	r := newBitReader(data)
	major, err := r.readBits(8)
	if err != nil {
		return nil, err
	}
	minor, err := r.readBits(8)
	if err != nil {
		return nil, err
	}
	patch, err := r.readBits(8)
	if err != nil {
		return nil, err
	}
	term, err := decodeTerm(r)
	if err != nil {
		return nil, err
	}
	if !r.atEnd() {
		return nil, &MalformedProgramError{Offset: r.bytePos, Reason: "trailing data after term"}
	}
	return &Program{
		Version: params.ProgramVersion{Major: major, Minor: minor, Patch: patch},
		Term:    term,
	}, nil
}

// Encode is Decode's inverse, up to the zero-bit padding of the final byte
// (spec.md §4.1's contract: decode(encode(p)) == p up to byte alignment).
func Encode(p *Program) []byte {
	w := &bitWriter{}
	w.writeBits(p.Version.Major, 8)
	w.writeBits(p.Version.Minor, 8)
	w.writeBits(p.Version.Patch, 8)
	encodeTerm(w, p.Term)
	return w.bytes()
}

func encodeTerm(w *bitWriter, t Term) {
	switch x := t.(type) {
	case *Var:
		w.writeBits(tagVar, termTagBits)
		writeNatural(w, x.Index)
	case *Delay:
		w.writeBits(tagDelay, termTagBits)
		encodeTerm(w, x.Body)
	case *Lambda:
		w.writeBits(tagLambda, termTagBits)
		encodeTerm(w, x.Body)
	case *Apply:
		w.writeBits(tagApply, termTagBits)
		encodeTerm(w, x.Function)
		encodeTerm(w, x.Argument)
	case *Const:
		w.writeBits(tagConstant, termTagBits)
		writeConstant(w, x.Value)
	case *Force:
		w.writeBits(tagForce, termTagBits)
		encodeTerm(w, x.Body)
	case *ErrorTerm:
		w.writeBits(tagErrorTerm, termTagBits)
	case *BuiltinRef:
		w.writeBits(tagBuiltin, termTagBits)
		writeNatural(w, uint64(x.ID))
	case *Constr:
		w.writeBits(tagConstr, termTagBits)
		writeNatural(w, x.Tag)
		writeTermList(w, x.Args)
	case *Case:
		w.writeBits(tagCase, termTagBits)
		encodeTerm(w, x.Scrutinee)
		writeTermList(w, x.Branches)
	}
}

func decodeTerm(r *bitReader) (Term, error) {
	tag, err := r.readBits(termTagBits)
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagVar:
		idx, err := readNatural(r)
		if err != nil {
			return nil, err
		}
		return &Var{Index: idx}, nil
	case tagDelay:
		body, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &Delay{Body: body}, nil
	case tagLambda:
		body, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &Lambda{Body: body}, nil
	case tagApply:
		fn, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		arg, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &Apply{Function: fn, Argument: arg}, nil
	case tagConstant:
		c, err := readConstant(r)
		if err != nil {
			return nil, err
		}
		return &Const{Value: c}, nil
	case tagForce:
		body, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return &Force{Body: body}, nil
	case tagErrorTerm:
		return &ErrorTerm{}, nil
	case tagBuiltin:
		id, err := readNatural(r)
		if err != nil {
			return nil, err
		}
		return &BuiltinRef{ID: BuiltinID(id)}, nil
	case tagConstr:
		t, err := readNatural(r)
		if err != nil {
			return nil, err
		}
		args, err := readTermList(r)
		if err != nil {
			return nil, err
		}
		return &Constr{Tag: t, Args: args}, nil
	case tagCase:
		scrut, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		branches, err := readTermList(r)
		if err != nil {
			return nil, err
		}
		return &Case{Scrutinee: scrut, Branches: branches}, nil
	default:
		return nil, &MalformedProgramError{Offset: r.bytePos, Reason: "unknown term tag"}
	}
}

// writeTermList/readTermList encode Constr's argument list and Case's branch
// list: a one-bit "more follows" flag before each element, terminated by a
// zero bit.
func writeTermList(w *bitWriter, ts []Term) {
	for _, t := range ts {
		w.writeBits(1, 1)
		encodeTerm(w, t)
	}
	w.writeBits(0, 1)
}

func readTermList(r *bitReader) ([]Term, error) {
	var out []Term
	for {
		more, err := r.readBits(1)
		if err != nil {
			return nil, err
		}
		if more == 0 {
			return out, nil
		}
		t, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
}
