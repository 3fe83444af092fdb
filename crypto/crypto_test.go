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

package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/cloudflare/circl/sign/ed25519"
	"github.com/stretchr/testify/require"
)

func TestHashesAreDeterministicAndDistinct(t *testing.T) {
	msg := []byte("the quick brown fox")

	require.Equal(t, Sha2_256(msg), Sha2_256(msg))
	require.Len(t, Sha2_256(msg), 32)
	require.Len(t, Sha3_256(msg), 32)
	require.Len(t, Keccak256(msg), 32)
	require.Len(t, Blake2b256(msg), 32)
	require.Len(t, Blake2b224(msg), 28)
	require.Len(t, Ripemd160(msg), 20)

	// Sha3_256 and Keccak256 differ only in padding, but must still produce
	// distinct digests over the same input.
	require.False(t, bytes.Equal(Sha3_256(msg), Keccak256(msg)))
}

func TestVerifyEd25519SignatureRoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("sign me")
	sig := ed25519.Sign(priv, msg)

	ok, err := VerifyEd25519Signature(pub, msg, sig)
	require.NoError(t, err)
	require.True(t, ok)

	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0xff
	ok, err = VerifyEd25519Signature(pub, tampered, sig)
	require.NoError(t, err)
	require.False(t, ok, "a signature over the original message must not verify against a tampered one")
}

func TestVerifyEd25519SignatureRejectsMalformedInput(t *testing.T) {
	_, err := VerifyEd25519Signature(make([]byte, 10), []byte("m"), make([]byte, 64))
	require.ErrorIs(t, err, ErrMalformedKey)

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, err = VerifyEd25519Signature(pub, []byte("m"), make([]byte, 10))
	require.ErrorIs(t, err, ErrMalformedSignature)
}

func TestVerifyEcdsaSecp256k1SignatureRejectsMalformedInput(t *testing.T) {
	_, err := VerifyEcdsaSecp256k1Signature(make([]byte, 33), make([]byte, 10), make([]byte, 64))
	require.ErrorIs(t, err, ErrMalformedSignature, "a non-32-byte message hash must be rejected before the key is even parsed")

	_, err = VerifyEcdsaSecp256k1Signature([]byte("not a valid compressed pubkey"), make([]byte, 32), make([]byte, 64))
	require.ErrorIs(t, err, ErrMalformedKey)
}

func TestVerifySchnorrSecp256k1SignatureRejectsMalformedInput(t *testing.T) {
	_, err := VerifySchnorrSecp256k1Signature(make([]byte, 10), []byte("m"), make([]byte, 64))
	require.ErrorIs(t, err, ErrMalformedKey)

	_, err = VerifySchnorrSecp256k1Signature(make([]byte, 32), []byte("m"), make([]byte, 10))
	require.ErrorIs(t, err, ErrMalformedSignature)
}
