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

import "github.com/core-coin/go-uplc/crypto"

func biSha2_256(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Sha2_256(b)), nil
}

func biSha3_256(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Sha3_256(b)), nil
}

func biBlake2b_256(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Blake2b256(b)), nil
}

func biBlake2b_224(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Blake2b224(b)), nil
}

func biKeccak_256(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Keccak256(b)), nil
}

func biRipemd_160(_ *execContext, args []Value) (Value, error) {
	b, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	return mkBytes(crypto.Ripemd160(b)), nil
}

// The three signature-verification builtins fail outright (rather than
// returning false) on a malformed key or signature, matching the reference
// catalog's distinction between "verification failed" and "input ill-formed".
func biVerifyEd25519Signature(_ *execContext, args []Value) (Value, error) {
	pk, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	msg, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asBytes(args[2])
	if err != nil {
		return nil, err
	}
	ok, err := crypto.VerifyEd25519Signature(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}

func biVerifyEcdsaSecp256k1Signature(_ *execContext, args []Value) (Value, error) {
	pk, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	msgHash, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asBytes(args[2])
	if err != nil {
		return nil, err
	}
	ok, err := crypto.VerifyEcdsaSecp256k1Signature(pk, msgHash, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}

func biVerifySchnorrSecp256k1Signature(_ *execContext, args []Value) (Value, error) {
	pk, err := asBytes(args[0])
	if err != nil {
		return nil, err
	}
	msg, err := asBytes(args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asBytes(args[2])
	if err != nil {
		return nil, err
	}
	ok, err := crypto.VerifySchnorrSecp256k1Signature(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}
