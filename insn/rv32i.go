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

// Mask/match pairs for the RV32I base instruction set.
// A word w encodes the instruction iff w & mask == match.
const (
	MaskLUI  Word = 0x0000007f
	MatchLUI Word = 0x00000037

	MaskAUIPC  Word = 0x0000007f
	MatchAUIPC Word = 0x00000017

	MaskJAL  Word = 0x0000007f
	MatchJAL Word = 0x0000006f

	MaskJALR  Word = 0x0000707f
	MatchJALR Word = 0x00000067

	MaskBEQ   Word = 0x0000707f
	MatchBEQ  Word = 0x00000063
	MaskBNE   Word = 0x0000707f
	MatchBNE  Word = 0x00001063
	MaskBLT   Word = 0x0000707f
	MatchBLT  Word = 0x00004063
	MaskBGE   Word = 0x0000707f
	MatchBGE  Word = 0x00005063
	MaskBLTU  Word = 0x0000707f
	MatchBLTU Word = 0x00006063
	MaskBGEU  Word = 0x0000707f
	MatchBGEU Word = 0x00007063

	MaskLB   Word = 0x0000707f
	MatchLB  Word = 0x00000003
	MaskLH   Word = 0x0000707f
	MatchLH  Word = 0x00001003
	MaskLW   Word = 0x0000707f
	MatchLW  Word = 0x00002003
	MaskLBU  Word = 0x0000707f
	MatchLBU Word = 0x00004003
	MaskLHU  Word = 0x0000707f
	MatchLHU Word = 0x00005003

	MaskSB  Word = 0x0000707f
	MatchSB Word = 0x00000023
	MaskSH  Word = 0x0000707f
	MatchSH Word = 0x00001023
	MaskSW  Word = 0x0000707f
	MatchSW Word = 0x00002023

	MaskADDI   Word = 0x0000707f
	MatchADDI  Word = 0x00000013
	MaskSLTI   Word = 0x0000707f
	MatchSLTI  Word = 0x00002013
	MaskSLTIU  Word = 0x0000707f
	MatchSLTIU Word = 0x00003013
	MaskXORI   Word = 0x0000707f
	MatchXORI  Word = 0x00004013
	MaskORI    Word = 0x0000707f
	MatchORI   Word = 0x00006013
	MaskANDI   Word = 0x0000707f
	MatchANDI  Word = 0x00007013

	MaskSLLI  Word = 0xfe00707f
	MatchSLLI Word = 0x00001013
	MaskSRLI  Word = 0xfe00707f
	MatchSRLI Word = 0x00005013
	MaskSRAI  Word = 0xfe00707f
	MatchSRAI Word = 0x40005013

	MaskADD   Word = 0xfe00707f
	MatchADD  Word = 0x00000033
	MaskSUB   Word = 0xfe00707f
	MatchSUB  Word = 0x40000033
	MaskSLL   Word = 0xfe00707f
	MatchSLL  Word = 0x00001033
	MaskSLT   Word = 0xfe00707f
	MatchSLT  Word = 0x00002033
	MaskSLTU  Word = 0xfe00707f
	MatchSLTU Word = 0x00003033
	MaskXOR   Word = 0xfe00707f
	MatchXOR  Word = 0x00004033
	MaskSRL   Word = 0xfe00707f
	MatchSRL  Word = 0x00005033
	MaskSRA   Word = 0xfe00707f
	MatchSRA  Word = 0x40005033
	MaskOR    Word = 0xfe00707f
	MatchOR   Word = 0x00006033
	MaskAND   Word = 0xfe00707f
	MatchAND  Word = 0x00007033

	MaskFENCE  Word = 0x0000707f
	MatchFENCE Word = 0x0000000f

	MaskECALL   Word = 0xffffffff
	MatchECALL  Word = 0x00000073
	MaskEBREAK  Word = 0xffffffff
	MatchEBREAK Word = 0x00100073
)

func IsLUI(w Word) bool    { return w&MaskLUI == MatchLUI }
func IsAUIPC(w Word) bool  { return w&MaskAUIPC == MatchAUIPC }
func IsJAL(w Word) bool    { return w&MaskJAL == MatchJAL }
func IsJALR(w Word) bool   { return w&MaskJALR == MatchJALR }
func IsBEQ(w Word) bool    { return w&MaskBEQ == MatchBEQ }
func IsBNE(w Word) bool    { return w&MaskBNE == MatchBNE }
func IsBLT(w Word) bool    { return w&MaskBLT == MatchBLT }
func IsBGE(w Word) bool    { return w&MaskBGE == MatchBGE }
func IsBLTU(w Word) bool   { return w&MaskBLTU == MatchBLTU }
func IsBGEU(w Word) bool   { return w&MaskBGEU == MatchBGEU }
func IsLB(w Word) bool     { return w&MaskLB == MatchLB }
func IsLH(w Word) bool     { return w&MaskLH == MatchLH }
func IsLW(w Word) bool     { return w&MaskLW == MatchLW }
func IsLBU(w Word) bool    { return w&MaskLBU == MatchLBU }
func IsLHU(w Word) bool    { return w&MaskLHU == MatchLHU }
func IsSB(w Word) bool     { return w&MaskSB == MatchSB }
func IsSH(w Word) bool     { return w&MaskSH == MatchSH }
func IsSW(w Word) bool     { return w&MaskSW == MatchSW }
func IsADDI(w Word) bool   { return w&MaskADDI == MatchADDI }
func IsSLTI(w Word) bool   { return w&MaskSLTI == MatchSLTI }
func IsSLTIU(w Word) bool  { return w&MaskSLTIU == MatchSLTIU }
func IsXORI(w Word) bool   { return w&MaskXORI == MatchXORI }
func IsORI(w Word) bool    { return w&MaskORI == MatchORI }
func IsANDI(w Word) bool   { return w&MaskANDI == MatchANDI }
func IsSLLI(w Word) bool   { return w&MaskSLLI == MatchSLLI }
func IsSRLI(w Word) bool   { return w&MaskSRLI == MatchSRLI }
func IsSRAI(w Word) bool   { return w&MaskSRAI == MatchSRAI }
func IsADD(w Word) bool    { return w&MaskADD == MatchADD }
func IsSUB(w Word) bool    { return w&MaskSUB == MatchSUB }
func IsSLL(w Word) bool    { return w&MaskSLL == MatchSLL }
func IsSLT(w Word) bool    { return w&MaskSLT == MatchSLT }
func IsSLTU(w Word) bool   { return w&MaskSLTU == MatchSLTU }
func IsXOR(w Word) bool    { return w&MaskXOR == MatchXOR }
func IsSRL(w Word) bool    { return w&MaskSRL == MatchSRL }
func IsSRA(w Word) bool    { return w&MaskSRA == MatchSRA }
func IsOR(w Word) bool     { return w&MaskOR == MatchOR }
func IsAND(w Word) bool    { return w&MaskAND == MatchAND }
func IsFENCE(w Word) bool  { return w&MaskFENCE == MatchFENCE }
func IsECALL(w Word) bool  { return w&MaskECALL == MatchECALL }
func IsEBREAK(w Word) bool { return w&MaskEBREAK == MatchEBREAK }

// Builders. Each starts from the instruction's match pattern and
// inserts the variable fields.

func encodeR(match Word, rd, rs1, rs2 uint32) Word {
	w := match
	InsertRd(&w, rd)
	InsertRs1(&w, rs1)
	InsertRs2(&w, rs2)
	return w
}

func encodeI(match Word, rd, rs1 uint32, imm int32) Word {
	w := match
	InsertRd(&w, rd)
	InsertRs1(&w, rs1)
	InsertImmI(&w, imm)
	return w
}

func encodeShift(match Word, rd, rs1, shamt uint32) Word {
	w := match
	InsertRd(&w, rd)
	InsertRs1(&w, rs1)
	// RV32 shift amount is 5 bits; bit 5 belongs to funct7
	w |= x(Word(shamt), 0, genMask(4, 0)) << 20
	return w
}

func encodeS(match Word, rs1, rs2 uint32, imm int32) Word {
	w := match
	InsertRs1(&w, rs1)
	InsertRs2(&w, rs2)
	InsertImmS(&w, imm)
	return w
}

func encodeB(match Word, rs1, rs2 uint32, imm int32) Word {
	w := match
	InsertRs1(&w, rs1)
	InsertRs2(&w, rs2)
	InsertImmB(&w, imm)
	return w
}

func encodeU(match Word, rd uint32, imm int32) Word {
	w := match
	InsertRd(&w, rd)
	InsertImmU(&w, imm)
	return w
}

func encodeJ(match Word, rd uint32, imm int32) Word {
	w := match
	InsertRd(&w, rd)
	InsertImmJ(&w, imm)
	return w
}

func LUI(rd uint32, imm20 int32) Word   { return encodeU(MatchLUI, rd, imm20) }
func AUIPC(rd uint32, imm20 int32) Word { return encodeU(MatchAUIPC, rd, imm20) }

func JAL(rd uint32, offset int32) Word { return encodeJ(MatchJAL, rd, offset) }

func JALR(rd, rs1 uint32, imm int32) Word { return encodeI(MatchJALR, rd, rs1, imm) }

func BEQ(rs1, rs2 uint32, offset int32) Word  { return encodeB(MatchBEQ, rs1, rs2, offset) }
func BNE(rs1, rs2 uint32, offset int32) Word  { return encodeB(MatchBNE, rs1, rs2, offset) }
func BLT(rs1, rs2 uint32, offset int32) Word  { return encodeB(MatchBLT, rs1, rs2, offset) }
func BGE(rs1, rs2 uint32, offset int32) Word  { return encodeB(MatchBGE, rs1, rs2, offset) }
func BLTU(rs1, rs2 uint32, offset int32) Word { return encodeB(MatchBLTU, rs1, rs2, offset) }
func BGEU(rs1, rs2 uint32, offset int32) Word { return encodeB(MatchBGEU, rs1, rs2, offset) }

func LB(rd, rs1 uint32, offset int32) Word  { return encodeI(MatchLB, rd, rs1, offset) }
func LH(rd, rs1 uint32, offset int32) Word  { return encodeI(MatchLH, rd, rs1, offset) }
func LW(rd, rs1 uint32, offset int32) Word  { return encodeI(MatchLW, rd, rs1, offset) }
func LBU(rd, rs1 uint32, offset int32) Word { return encodeI(MatchLBU, rd, rs1, offset) }
func LHU(rd, rs1 uint32, offset int32) Word { return encodeI(MatchLHU, rd, rs1, offset) }

func SB(rs2, rs1 uint32, offset int32) Word { return encodeS(MatchSB, rs1, rs2, offset) }
func SH(rs2, rs1 uint32, offset int32) Word { return encodeS(MatchSH, rs1, rs2, offset) }
func SW(rs2, rs1 uint32, offset int32) Word { return encodeS(MatchSW, rs1, rs2, offset) }

func ADDI(rd, rs1 uint32, imm12 int32) Word  { return encodeI(MatchADDI, rd, rs1, imm12) }
func SLTI(rd, rs1 uint32, imm12 int32) Word  { return encodeI(MatchSLTI, rd, rs1, imm12) }
func SLTIU(rd, rs1 uint32, imm12 int32) Word { return encodeI(MatchSLTIU, rd, rs1, imm12) }
func XORI(rd, rs1 uint32, imm12 int32) Word  { return encodeI(MatchXORI, rd, rs1, imm12) }
func ORI(rd, rs1 uint32, imm12 int32) Word   { return encodeI(MatchORI, rd, rs1, imm12) }
func ANDI(rd, rs1 uint32, imm12 int32) Word  { return encodeI(MatchANDI, rd, rs1, imm12) }

func SLLI(rd, rs1, shamt uint32) Word { return encodeShift(MatchSLLI, rd, rs1, shamt) }
func SRLI(rd, rs1, shamt uint32) Word { return encodeShift(MatchSRLI, rd, rs1, shamt) }
func SRAI(rd, rs1, shamt uint32) Word { return encodeShift(MatchSRAI, rd, rs1, shamt) }

func ADD(rd, rs1, rs2 uint32) Word  { return encodeR(MatchADD, rd, rs1, rs2) }
func SUB(rd, rs1, rs2 uint32) Word  { return encodeR(MatchSUB, rd, rs1, rs2) }
func SLL(rd, rs1, rs2 uint32) Word  { return encodeR(MatchSLL, rd, rs1, rs2) }
func SLT(rd, rs1, rs2 uint32) Word  { return encodeR(MatchSLT, rd, rs1, rs2) }
func SLTU(rd, rs1, rs2 uint32) Word { return encodeR(MatchSLTU, rd, rs1, rs2) }
func XOR(rd, rs1, rs2 uint32) Word  { return encodeR(MatchXOR, rd, rs1, rs2) }
func SRL(rd, rs1, rs2 uint32) Word  { return encodeR(MatchSRL, rd, rs1, rs2) }
func SRA(rd, rs1, rs2 uint32) Word  { return encodeR(MatchSRA, rd, rs1, rs2) }
func OR(rd, rs1, rs2 uint32) Word   { return encodeR(MatchOR, rd, rs1, rs2) }
func AND(rd, rs1, rs2 uint32) Word  { return encodeR(MatchAND, rd, rs1, rs2) }

// FENCE encodes the pred and succ ordering sets, 4 bits each.
func FENCE(pred, succ uint32) Word {
	w := MatchFENCE
	w |= x(Word(succ), 0, genMask(3, 0)) << 20
	w |= x(Word(pred), 0, genMask(3, 0)) << 24
	return w
}

func ECALL() Word  { return MatchECALL }
func EBREAK() Word { return MatchEBREAK }

// NOP is addi x0, x0, 0.
func NOP() Word { return MatchADDI }
