/*
 * rvkit - RISC-V instruction encoding toolkit
 *
 * Copyright rvkit contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package insn

// SignExtend interprets bit as the sign bit of value and
// extends it through bit 31.
func SignExtend(value uint32, bit uint) int32 {
	shift := 31 - bit
	return int32(value<<shift) >> shift
}

// Whole-immediate codecs per format. Decode returns the immediate
// sign-extended; Insert scatters the immediate's bits into the word
// without clearing, matching the per-field insert helpers.

// ImmI decodes the I-type immediate, bits 31:20, sign bit 11.
func ImmI(w Word) int32 {
	return SignExtend(ExtractImm12(w), 11)
}

// InsertImmI scatters imm[11:0] into bits 31:20.
func InsertImmI(w *Word, imm int32) {
	InsertImm12(w, uint32(imm))
}

// ImmS decodes the S-type immediate: imm[11:5] from bits 31:25,
// imm[4:0] from bits 11:7.
func ImmS(w Word) int32 {
	v := uint32(x(w, 25, genMask(6, 0)))<<5 |
		uint32(x(w, 7, genMask(4, 0)))
	return SignExtend(v, 11)
}

func InsertImmS(w *Word, imm int32) {
	v := Word(imm)
	*w |= x(v, 5, genMask(6, 0)) << 25
	*w |= x(v, 0, genMask(4, 0)) << 7
}

// ImmB decodes the B-type immediate: imm[12] from bit 31, imm[11] from
// bit 7, imm[10:5] from bits 30:25, imm[4:1] from bits 11:8. Bit 0 is
// always zero.
func ImmB(w Word) int32 {
	v := uint32(x(w, 31, genMask(0, 0)))<<12 |
		uint32(x(w, 7, genMask(0, 0)))<<11 |
		uint32(x(w, 25, genMask(5, 0)))<<5 |
		uint32(x(w, 8, genMask(3, 0)))<<1
	return SignExtend(v, 12)
}

func InsertImmB(w *Word, imm int32) {
	v := Word(imm)
	*w |= x(v, 12, genMask(0, 0)) << 31
	*w |= x(v, 11, genMask(0, 0)) << 7
	*w |= x(v, 5, genMask(5, 0)) << 25
	*w |= x(v, 1, genMask(3, 0)) << 8
}

// ImmU decodes the U-type immediate field, bits 31:12, sign bit 19.
// The value is the upper-immediate field, not shifted up.
func ImmU(w Word) int32 {
	return SignExtend(ExtractImm20(w), 19)
}

func InsertImmU(w *Word, imm int32) {
	InsertImm20(w, uint32(imm))
}

// ImmJ decodes the J-type immediate: imm[20] from bit 31, imm[19:12]
// from bits 19:12, imm[11] from bit 20, imm[10:1] from bits 30:21.
// Bit 0 is always zero.
func ImmJ(w Word) int32 {
	v := uint32(x(w, 31, genMask(0, 0)))<<20 |
		uint32(x(w, 12, genMask(7, 0)))<<12 |
		uint32(x(w, 20, genMask(0, 0)))<<11 |
		uint32(x(w, 21, genMask(9, 0)))<<1
	return SignExtend(v, 20)
}

func InsertImmJ(w *Word, imm int32) {
	v := Word(imm)
	*w |= x(v, 20, genMask(0, 0)) << 31
	*w |= x(v, 12, genMask(7, 0)) << 12
	*w |= x(v, 11, genMask(0, 0)) << 20
	*w |= x(v, 1, genMask(9, 0)) << 21
}
