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

// Package crypto wires the hashing and signature-verification builtins
// (spec.md §4.3) to concrete implementations, the way the teacher's own
// package crypto picks a concrete curve/hash backend for its signing and
// address-derivation helpers.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Sha2_256 is the standard-library SHA-256; the teacher reaches for
// crypto/sha256 the same way for its own hash-of-address helpers.
func Sha2_256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// Sha3_256 and Keccak256 are deliberately distinct: Sha3_256 is the NIST
// SHA3-256 (padding 0x06), Keccak256 is the pre-standardization Keccak
// (padding 0x01) the ledger also exposes as a separate builtin.
func Sha3_256(b []byte) []byte {
	h := sha3.Sum256(b)
	return h[:]
}

func Keccak256(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

func Blake2b256(b []byte) []byte {
	h := blake2b.Sum256(b)
	return h[:]
}

func Blake2b224(b []byte) []byte {
	h, _ := blake2b.New(28, nil)
	h.Write(b)
	return h.Sum(nil)
}

func Ripemd160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}
