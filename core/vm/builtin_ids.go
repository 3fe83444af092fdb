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

// Builtin opcode numbering, stable across protocol versions: a builtin once
// assigned a number keeps it even if a later era stops exposing it (spec.md
// §4.3, §4.1).
const (
	AddInteger BuiltinID = iota
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger

	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString

	Sha2_256
	Sha3_256
	Blake2b_256
	VerifyEd25519Signature

	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8

	IfThenElse
	ChooseUnit
	Trace

	FstPair
	SndPair

	ChooseList
	MkCons
	HeadList
	TailList
	NullList

	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData
	MkPairData
	MkNilData
	MkNilPairData
	SerialiseData

	VerifyEcdsaSecp256k1Signature
	VerifySchnorrSecp256k1Signature

	// PlutusV2 additions.
	Blake2b_224
	Keccak_256
	IntegerToByteString
	ByteStringToInteger

	// PlutusV3 additions: BLS12-381.
	Bls12_381_G1_Add
	Bls12_381_G1_Neg
	Bls12_381_G1_ScalarMul
	Bls12_381_G1_Equal
	Bls12_381_G1_HashToGroup
	Bls12_381_G1_Compress
	Bls12_381_G1_Uncompress
	Bls12_381_G2_Add
	Bls12_381_G2_Neg
	Bls12_381_G2_ScalarMul
	Bls12_381_G2_Equal
	Bls12_381_G2_HashToGroup
	Bls12_381_G2_Compress
	Bls12_381_G2_Uncompress
	Bls12_381_MillerLoop
	Bls12_381_MulMlResult
	Bls12_381_FinalVerify
	Ripemd_160

	// PlutusV4 additions: array-shaped and list-shaped optimized primitives,
	// plus caseList (nil and cons arms) and caseData (one arm per Data shape)
	// dispatch, introduced alongside the term-level Constr/Case constructs.
	LengthOfArray
	IndexArray
	DropList
	CaseList
	CaseData
)

var builtinNames = map[BuiltinID]string{
	AddInteger:                      "addInteger",
	SubtractInteger:                 "subtractInteger",
	MultiplyInteger:                 "multiplyInteger",
	DivideInteger:                   "divideInteger",
	QuotientInteger:                 "quotientInteger",
	RemainderInteger:                "remainderInteger",
	ModInteger:                      "modInteger",
	EqualsInteger:                   "equalsInteger",
	LessThanInteger:                 "lessThanInteger",
	LessThanEqualsInteger:           "lessThanEqualsInteger",
	AppendByteString:                "appendByteString",
	ConsByteString:                  "consByteString",
	SliceByteString:                 "sliceByteString",
	LengthOfByteString:              "lengthOfByteString",
	IndexByteString:                 "indexByteString",
	EqualsByteString:                "equalsByteString",
	LessThanByteString:              "lessThanByteString",
	LessThanEqualsByteString:        "lessThanEqualsByteString",
	Sha2_256:                        "sha2_256",
	Sha3_256:                        "sha3_256",
	Blake2b_256:                     "blake2b_256",
	VerifyEd25519Signature:          "verifyEd25519Signature",
	AppendString:                    "appendString",
	EqualsString:                    "equalsString",
	EncodeUtf8:                      "encodeUtf8",
	DecodeUtf8:                      "decodeUtf8",
	IfThenElse:                      "ifThenElse",
	ChooseUnit:                      "chooseUnit",
	Trace:                           "trace",
	FstPair:                         "fstPair",
	SndPair:                         "sndPair",
	ChooseList:                      "chooseList",
	MkCons:                          "mkCons",
	HeadList:                        "headList",
	TailList:                        "tailList",
	NullList:                        "nullList",
	ChooseData:                      "chooseData",
	ConstrData:                      "constrData",
	MapData:                         "mapData",
	ListData:                        "listData",
	IData:                           "iData",
	BData:                           "bData",
	UnConstrData:                    "unConstrData",
	UnMapData:                       "unMapData",
	UnListData:                      "unListData",
	UnIData:                         "unIData",
	UnBData:                         "unBData",
	EqualsData:                      "equalsData",
	MkPairData:                      "mkPairData",
	MkNilData:                       "mkNilData",
	MkNilPairData:                   "mkNilPairData",
	SerialiseData:                   "serialiseData",
	VerifyEcdsaSecp256k1Signature:   "verifyEcdsaSecp256k1Signature",
	VerifySchnorrSecp256k1Signature: "verifySchnorrSecp256k1Signature",
	Blake2b_224:                     "blake2b_224",
	Keccak_256:                      "keccak_256",
	IntegerToByteString:             "integerToByteString",
	ByteStringToInteger:             "byteStringToInteger",
	Bls12_381_G1_Add:                "bls12_381_G1_add",
	Bls12_381_G1_Neg:                "bls12_381_G1_neg",
	Bls12_381_G1_ScalarMul:          "bls12_381_G1_scalarMul",
	Bls12_381_G1_Equal:              "bls12_381_G1_equal",
	Bls12_381_G1_HashToGroup:        "bls12_381_G1_hashToGroup",
	Bls12_381_G1_Compress:           "bls12_381_G1_compress",
	Bls12_381_G1_Uncompress:         "bls12_381_G1_uncompress",
	Bls12_381_G2_Add:                "bls12_381_G2_add",
	Bls12_381_G2_Neg:                "bls12_381_G2_neg",
	Bls12_381_G2_ScalarMul:          "bls12_381_G2_scalarMul",
	Bls12_381_G2_Equal:              "bls12_381_G2_equal",
	Bls12_381_G2_HashToGroup:        "bls12_381_G2_hashToGroup",
	Bls12_381_G2_Compress:           "bls12_381_G2_compress",
	Bls12_381_G2_Uncompress:         "bls12_381_G2_uncompress",
	Bls12_381_MillerLoop:            "bls12_381_millerLoop",
	Bls12_381_MulMlResult:           "bls12_381_mulMlResult",
	Bls12_381_FinalVerify:           "bls12_381_finalVerify",
	Ripemd_160:                      "ripemd_160",
	LengthOfArray:                   "lengthOfArray",
	IndexArray:                      "indexArray",
	DropList:                        "dropList",
	CaseList:                        "caseList",
	CaseData:                        "caseData",
}

// Name returns the builtin's catalog name, used in error messages and trace
// output.
func (id BuiltinID) Name() string {
	if n, ok := builtinNames[id]; ok {
		return n
	}
	return "unknown"
}
