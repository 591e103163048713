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

// Package insn provides accessors and encoders for the fields of 32-bit
// RISC-V instruction words.
//
// Every field comes as an extract/insert/update triple:
// extract masks the field out of the word, insert ORs the field value into
// an existing word without clearing anything, and update clears the field's
// bits first and then inserts.
package insn

// Word is a 32-bit RISC-V instruction word.
type Word uint32

// genMask returns a Word with bits hi through lo set.
func genMask(hi, lo uint) Word {
	return Word(^uint32(0)>>(31-hi+lo)) << lo
}

// x shifts the word right by s and masks the result, the basic
// field-extraction primitive all accessors are built from.
func x(w Word, s uint, mask Word) Word {
	return (w >> s) & mask
}

// Imm12 occupies bits 31:20 (I-type immediate).

func ExtractImm12(w Word) uint32 {
	return uint32(x(w, 20, genMask(11, 0)))
}

func InsertImm12(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(11, 0)) << 20
}

func UpdateImm12(w *Word, value uint32) {
	*w &^= genMask(31, 20)
	InsertImm12(w, value)
}

// Rd occupies bits 11:7.

func ExtractRd(w Word) uint32 {
	return uint32(x(w, 7, genMask(4, 0)))
}

func InsertRd(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(4, 0)) << 7
}

func UpdateRd(w *Word, value uint32) {
	*w &^= genMask(11, 7)
	InsertRd(w, value)
}

// Rs1 occupies bits 19:15.

func ExtractRs1(w Word) uint32 {
	return uint32(x(w, 15, genMask(4, 0)))
}

func InsertRs1(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(4, 0)) << 15
}

func UpdateRs1(w *Word, value uint32) {
	*w &^= genMask(19, 15)
	InsertRs1(w, value)
}

// Rs2 occupies bits 24:20.

func ExtractRs2(w Word) uint32 {
	return uint32(x(w, 20, genMask(4, 0)))
}

func InsertRs2(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(4, 0)) << 20
}

func UpdateRs2(w *Word, value uint32) {
	*w &^= genMask(24, 20)
	InsertRs2(w, value)
}

// Opcode occupies bits 6:0.

func ExtractOpcode(w Word) uint32 {
	return uint32(x(w, 0, genMask(6, 0)))
}

func InsertOpcode(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(6, 0))
}

func UpdateOpcode(w *Word, value uint32) {
	*w &^= genMask(6, 0)
	InsertOpcode(w, value)
}

// Funct3 occupies bits 14:12.

func ExtractFunct3(w Word) uint32 {
	return uint32(x(w, 12, genMask(2, 0)))
}

func InsertFunct3(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(2, 0)) << 12
}

func UpdateFunct3(w *Word, value uint32) {
	*w &^= genMask(14, 12)
	InsertFunct3(w, value)
}

// Funct7 occupies bits 31:25.

func ExtractFunct7(w Word) uint32 {
	return uint32(x(w, 25, genMask(6, 0)))
}

func InsertFunct7(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(6, 0)) << 25
}

func UpdateFunct7(w *Word, value uint32) {
	*w &^= genMask(31, 25)
	InsertFunct7(w, value)
}

// Imm20 occupies bits 31:12 (U-type immediate field).

func ExtractImm20(w Word) uint32 {
	return uint32(x(w, 12, genMask(19, 0)))
}

func InsertImm20(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(19, 0)) << 12
}

func UpdateImm20(w *Word, value uint32) {
	*w &^= genMask(31, 12)
	InsertImm20(w, value)
}

// Shamt occupies bits 25:20 (RV64 shift amount; RV32 uses bits 24:20).

func ExtractShamt(w Word) uint32 {
	return uint32(x(w, 20, genMask(5, 0)))
}

func InsertShamt(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(5, 0)) << 20
}

func UpdateShamt(w *Word, value uint32) {
	*w &^= genMask(25, 20)
	InsertShamt(w, value)
}

// CSR occupies bits 31:20, the same position as Imm12 but zero-extended.

func ExtractCSR(w Word) uint32 {
	return uint32(x(w, 20, genMask(11, 0)))
}

func InsertCSR(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(11, 0)) << 20
}

func UpdateCSR(w *Word, value uint32) {
	*w &^= genMask(31, 20)
	InsertCSR(w, value)
}

// Aq and Rl are the single-bit atomic ordering flags, bits 26 and 25.

func ExtractAq(w Word) uint32 {
	return uint32(x(w, 26, genMask(0, 0)))
}

func InsertAq(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(0, 0)) << 26
}

func UpdateAq(w *Word, value uint32) {
	*w &^= genMask(26, 26)
	InsertAq(w, value)
}

func ExtractRl(w Word) uint32 {
	return uint32(x(w, 25, genMask(0, 0)))
}

func InsertRl(w *Word, value uint32) {
	*w |= x(Word(value), 0, genMask(0, 0)) << 25
}

func UpdateRl(w *Word, value uint32) {
	*w &^= genMask(25, 25)
	InsertRl(w, value)
}
