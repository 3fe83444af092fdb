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
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/cloudflare/circl/sign/ed25519"
)

// ErrMalformedKey/ErrMalformedSignature report a wrong-length key or
// signature, which spec.md §4.3 requires to surface as BuiltinError rather
// than as a false verification result.
var (
	ErrMalformedKey       = errors.New("malformed public key")
	ErrMalformedSignature = errors.New("malformed signature")
)

// VerifyEd25519Signature checks an Ed25519 signature over msg. circl's
// implementation is used instead of the teacher's own Ed448 ("goldilocks")
// curve, since the catalog specifically calls for Ed25519.
func VerifyEd25519Signature(pubKey, msg, sig []byte) (bool, error) {
	if len(pubKey) != ed25519.PublicKeySize {
		return false, ErrMalformedKey
	}
	if len(sig) != ed25519.SignatureSize {
		return false, ErrMalformedSignature
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig), nil
}

// VerifyEcdsaSecp256k1Signature checks a fixed-size (r||s) ECDSA signature
// over a pre-hashed 32-byte message, using the same secp256k1 backend the
// ProbeChain sibling module depends on for its transaction signatures.
func VerifyEcdsaSecp256k1Signature(pubKey, msgHash, sig []byte) (bool, error) {
	if len(msgHash) != 32 {
		return false, ErrMalformedSignature
	}
	pk, err := btcec.ParsePubKey(pubKey)
	if err != nil {
		return false, ErrMalformedKey
	}
	if len(sig) != 64 {
		return false, ErrMalformedSignature
	}
	var r, s btcec.ModNScalar
	r.SetByteSlice(sig[:32])
	s.SetByteSlice(sig[32:])
	signature := ecdsa.NewSignature(&r, &s)
	return signature.Verify(msgHash, pk), nil
}

// VerifySchnorrSecp256k1Signature checks a BIP-340 Schnorr signature over a
// 32-byte message using an x-only public key.
func VerifySchnorrSecp256k1Signature(pubKey, msg, sig []byte) (bool, error) {
	if len(pubKey) != 32 {
		return false, ErrMalformedKey
	}
	if len(sig) != 64 {
		return false, ErrMalformedSignature
	}
	pk, err := schnorr.ParsePubKey(pubKey)
	if err != nil {
		return false, ErrMalformedKey
	}
	parsedSig, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, ErrMalformedSignature
	}
	return parsedSig.Verify(msg, pk), nil
}
