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

import "github.com/core-coin/go-uplc/params"

// newV1BuiltinSet builds the catalog present since the very first Plutus
// language generation. Later eras only ever add entries on top of this one
// (builtin IDs are never reused or removed), the same way the teacher's
// newFrontierInstructionSet is the root every later fork's instruction set
// extends.
func newV1BuiltinSet() *BuiltinSet {
	return newBuiltinSet([]builtinEntry{
		{ID: AddInteger, Name: AddInteger.Name(), Arity: 2, Shape: params.ShapeLinearInMaxXY, Exec: biAddInteger},
		{ID: SubtractInteger, Name: SubtractInteger.Name(), Arity: 2, Shape: params.ShapeLinearInMaxXY, Exec: biSubtractInteger},
		{ID: MultiplyInteger, Name: MultiplyInteger.Name(), Arity: 2, Shape: params.ShapeLinearInSumXY, Exec: biMultiplyInteger},
		{ID: DivideInteger, Name: DivideInteger.Name(), Arity: 2, Shape: params.ShapeQuadraticInX, Exec: biDivideInteger},
		{ID: QuotientInteger, Name: QuotientInteger.Name(), Arity: 2, Shape: params.ShapeQuadraticInX, Exec: biQuotientInteger},
		{ID: RemainderInteger, Name: RemainderInteger.Name(), Arity: 2, Shape: params.ShapeQuadraticInX, Exec: biRemainderInteger},
		{ID: ModInteger, Name: ModInteger.Name(), Arity: 2, Shape: params.ShapeQuadraticInX, Exec: biModInteger},
		{ID: EqualsInteger, Name: EqualsInteger.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biEqualsInteger},
		{ID: LessThanInteger, Name: LessThanInteger.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biLessThanInteger},
		{ID: LessThanEqualsInteger, Name: LessThanEqualsInteger.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biLessThanEqualsInteger},

		{ID: AppendByteString, Name: AppendByteString.Name(), Arity: 2, Shape: params.ShapeLinearInSumXY, Exec: biAppendByteString},
		{ID: ConsByteString, Name: ConsByteString.Name(), Arity: 2, Shape: params.ShapeLinearInY, Exec: biConsByteString},
		{ID: SliceByteString, Name: SliceByteString.Name(), Arity: 3, Shape: params.ShapeLinearInZ, Exec: biSliceByteString},
		{ID: LengthOfByteString, Name: LengthOfByteString.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biLengthOfByteString},
		{ID: IndexByteString, Name: IndexByteString.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biIndexByteString},
		{ID: EqualsByteString, Name: EqualsByteString.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biEqualsByteString},
		{ID: LessThanByteString, Name: LessThanByteString.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biLessThanByteString},
		{ID: LessThanEqualsByteString, Name: LessThanEqualsByteString.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biLessThanEqualsByteString},

		{ID: Sha2_256, Name: Sha2_256.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biSha2_256},
		{ID: Sha3_256, Name: Sha3_256.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biSha3_256},
		{ID: Blake2b_256, Name: Blake2b_256.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biBlake2b_256},
		{ID: VerifyEd25519Signature, Name: VerifyEd25519Signature.Name(), Arity: 3, Shape: params.ShapeLinearInY, Exec: biVerifyEd25519Signature},

		{ID: AppendString, Name: AppendString.Name(), Arity: 2, Shape: params.ShapeLinearInSumXY, Exec: biAppendString},
		{ID: EqualsString, Name: EqualsString.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biEqualsString},
		{ID: EncodeUtf8, Name: EncodeUtf8.Name(), Arity: 1, Shape: params.ShapeLinearInX, Exec: biEncodeUtf8},
		{ID: DecodeUtf8, Name: DecodeUtf8.Name(), Arity: 1, Shape: params.ShapeLinearInX, Exec: biDecodeUtf8},

		{ID: IfThenElse, Name: IfThenElse.Name(), Arity: 3, Forces: 1, Shape: params.ShapeConstant, Exec: biIfThenElse},
		{ID: ChooseUnit, Name: ChooseUnit.Name(), Arity: 2, Forces: 1, Shape: params.ShapeConstant, Exec: biChooseUnit},
		{ID: Trace, Name: Trace.Name(), Arity: 2, Forces: 1, Shape: params.ShapeConstant, Exec: biTrace},

		{ID: FstPair, Name: FstPair.Name(), Arity: 1, Forces: 2, Shape: params.ShapeConstant, Exec: biFstPair},
		{ID: SndPair, Name: SndPair.Name(), Arity: 1, Forces: 2, Shape: params.ShapeConstant, Exec: biSndPair},

		{ID: ChooseList, Name: ChooseList.Name(), Arity: 3, Forces: 2, Shape: params.ShapeConstant, Exec: biChooseList},
		{ID: MkCons, Name: MkCons.Name(), Arity: 2, Forces: 1, Shape: params.ShapeConstant, Exec: biMkCons},
		{ID: HeadList, Name: HeadList.Name(), Arity: 1, Forces: 1, Shape: params.ShapeConstant, Exec: biHeadList},
		{ID: TailList, Name: TailList.Name(), Arity: 1, Forces: 1, Shape: params.ShapeConstant, Exec: biTailList},
		{ID: NullList, Name: NullList.Name(), Arity: 1, Forces: 1, Shape: params.ShapeConstant, Exec: biNullList},

		{ID: ChooseData, Name: ChooseData.Name(), Arity: 6, Forces: 1, Shape: params.ShapeConstant, Exec: biChooseData},
		{ID: ConstrData, Name: ConstrData.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biConstrData},
		{ID: MapData, Name: MapData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biMapData},
		{ID: ListData, Name: ListData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biListData},
		{ID: IData, Name: IData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biIData},
		{ID: BData, Name: BData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBData},
		{ID: UnConstrData, Name: UnConstrData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biUnConstrData},
		{ID: UnMapData, Name: UnMapData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biUnMapData},
		{ID: UnListData, Name: UnListData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biUnListData},
		{ID: UnIData, Name: UnIData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biUnIData},
		{ID: UnBData, Name: UnBData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biUnBData},
		{ID: EqualsData, Name: EqualsData.Name(), Arity: 2, Shape: params.ShapeLinearInMinXY, Exec: biEqualsData},
		{ID: MkPairData, Name: MkPairData.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biMkPairData},
		{ID: MkNilData, Name: MkNilData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biMkNilData},
		{ID: MkNilPairData, Name: MkNilPairData.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biMkNilPairData},
		{ID: SerialiseData, Name: SerialiseData.Name(), Arity: 1, Shape: params.ShapeLinearInX, Exec: biSerialiseData},

		{ID: VerifyEcdsaSecp256k1Signature, Name: VerifyEcdsaSecp256k1Signature.Name(), Arity: 3, Shape: params.ShapeConstant, Exec: biVerifyEcdsaSecp256k1Signature},
		{ID: VerifySchnorrSecp256k1Signature, Name: VerifySchnorrSecp256k1Signature.Name(), Arity: 3, Shape: params.ShapeLinearInY, Exec: biVerifySchnorrSecp256k1Signature},
	})
}

// extendWithV2Builtins layers on the additions introduced alongside the
// second Plutus language generation: two more hash functions and a pair of
// fixed-width integer/bytestring conversions.
func extendWithV2Builtins(base *BuiltinSet) *BuiltinSet {
	return extend(base, []builtinEntry{
		{ID: Blake2b_224, Name: Blake2b_224.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biBlake2b_224},
		{ID: Keccak_256, Name: Keccak_256.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biKeccak_256},
		{ID: IntegerToByteString, Name: IntegerToByteString.Name(), Arity: 3, Shape: params.ShapeQuadraticInX, Exec: biIntegerToByteString},
		{ID: ByteStringToInteger, Name: ByteStringToInteger.Name(), Arity: 2, Shape: params.ShapeQuadraticInX, Exec: biByteStringToInteger},
	})
}

// extendWithV3Builtins layers on the BLS12-381 pairing-curve primitives and
// ripemd_160, introduced together for on-chain cross-chain verification.
func extendWithV3Builtins(base *BuiltinSet) *BuiltinSet {
	return extend(base, []builtinEntry{
		{ID: Bls12_381_G1_Add, Name: Bls12_381_G1_Add.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_G1_Add},
		{ID: Bls12_381_G1_Neg, Name: Bls12_381_G1_Neg.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G1_Neg},
		{ID: Bls12_381_G1_ScalarMul, Name: Bls12_381_G1_ScalarMul.Name(), Arity: 2, Shape: params.ShapeLinearInX, Exec: biBls12_381_G1_ScalarMul},
		{ID: Bls12_381_G1_Equal, Name: Bls12_381_G1_Equal.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_G1_Equal},
		{ID: Bls12_381_G1_HashToGroup, Name: Bls12_381_G1_HashToGroup.Name(), Arity: 2, Shape: params.ShapeLinearInX, Exec: biBls12_381_G1_HashToGroup},
		{ID: Bls12_381_G1_Compress, Name: Bls12_381_G1_Compress.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G1_Compress},
		{ID: Bls12_381_G1_Uncompress, Name: Bls12_381_G1_Uncompress.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G1_Uncompress},

		{ID: Bls12_381_G2_Add, Name: Bls12_381_G2_Add.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_G2_Add},
		{ID: Bls12_381_G2_Neg, Name: Bls12_381_G2_Neg.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G2_Neg},
		{ID: Bls12_381_G2_ScalarMul, Name: Bls12_381_G2_ScalarMul.Name(), Arity: 2, Shape: params.ShapeLinearInX, Exec: biBls12_381_G2_ScalarMul},
		{ID: Bls12_381_G2_Equal, Name: Bls12_381_G2_Equal.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_G2_Equal},
		{ID: Bls12_381_G2_HashToGroup, Name: Bls12_381_G2_HashToGroup.Name(), Arity: 2, Shape: params.ShapeLinearInX, Exec: biBls12_381_G2_HashToGroup},
		{ID: Bls12_381_G2_Compress, Name: Bls12_381_G2_Compress.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G2_Compress},
		{ID: Bls12_381_G2_Uncompress, Name: Bls12_381_G2_Uncompress.Name(), Arity: 1, Shape: params.ShapeConstant, Exec: biBls12_381_G2_Uncompress},

		{ID: Bls12_381_MillerLoop, Name: Bls12_381_MillerLoop.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_MillerLoop},
		{ID: Bls12_381_MulMlResult, Name: Bls12_381_MulMlResult.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_MulMlResult},
		{ID: Bls12_381_FinalVerify, Name: Bls12_381_FinalVerify.Name(), Arity: 2, Shape: params.ShapeConstant, Exec: biBls12_381_FinalVerify},

		{ID: Ripemd_160, Name: Ripemd_160.Name(), Arity: 1, Shape: params.ShapeLiteralInYOrLinearZ, Exec: biRipemd_160},
	})
}

// extendWithV4Builtins layers on the array-shaped and list-shaped optimized
// primitives introduced alongside the term-level Constr/Case constructs.
func extendWithV4Builtins(base *BuiltinSet) *BuiltinSet {
	return extend(base, []builtinEntry{
		{ID: LengthOfArray, Name: LengthOfArray.Name(), Arity: 1, Forces: 1, Shape: params.ShapeConstant, Exec: biLengthOfArray},
		{ID: IndexArray, Name: IndexArray.Name(), Arity: 2, Forces: 1, Shape: params.ShapeConstant, Exec: biIndexArray},
		{ID: DropList, Name: DropList.Name(), Arity: 2, Forces: 1, Shape: params.ShapeLinearInX, Exec: biDropList},
		{ID: CaseList, Name: CaseList.Name(), Arity: 3, Forces: 2, Shape: params.ShapeConstant, Exec: biCaseList},
		{ID: CaseData, Name: CaseData.Name(), Arity: 6, Forces: 1, Shape: params.ShapeConstant, Exec: biCaseData},
	})
}
