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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImm12Accessors(t *testing.T) {
	t.Parallel()

	var w Word

	InsertImm12(&w, 42)
	assert.Equal(t, Word(42)<<20, w)
	assert.Equal(t, uint32(42), ExtractImm12(w))

	// insert must OR, not replace
	InsertImm12(&w, 0x801)
	assert.Equal(t, uint32(0x82b), ExtractImm12(w))

	// update clears first
	UpdateImm12(&w, 7)
	assert.Equal(t, uint32(7), ExtractImm12(w))

	// bits outside the field are dropped on insert
	w = 0
	InsertImm12(&w, 0xffff_ff01)
	assert.Equal(t, uint32(0xf01), ExtractImm12(w))
}

func TestRegisterAccessors(t *testing.T) {
	t.Parallel()

	var w Word

	InsertRd(&w, 1)
	InsertRs1(&w, 2)
	InsertRs2(&w, 3)

	assert.Equal(t, uint32(1), ExtractRd(w))
	assert.Equal(t, uint32(2), ExtractRs1(w))
	assert.Equal(t, uint32(3), ExtractRs2(w))

	UpdateRd(&w, 31)
	UpdateRs1(&w, 30)
	UpdateRs2(&w, 29)

	assert.Equal(t, uint32(31), ExtractRd(w))
	assert.Equal(t, uint32(30), ExtractRs1(w))
	assert.Equal(t, uint32(29), ExtractRs2(w))

	// register numbers are 5 bits
	UpdateRd(&w, 33)
	assert.Equal(t, uint32(1), ExtractRd(w))
}

func TestFunctAndOpcodeAccessors(t *testing.T) {
	t.Parallel()

	w := ADD(10, 11, 12)

	assert.Equal(t, uint32(0x33), ExtractOpcode(w))
	assert.Equal(t, uint32(0), ExtractFunct3(w))
	assert.Equal(t, uint32(0), ExtractFunct7(w))

	w = SRA(10, 11, 12)
	assert.Equal(t, uint32(5), ExtractFunct3(w))
	assert.Equal(t, uint32(0x20), ExtractFunct7(w))
}

func TestIsADDI(t *testing.T) {
	t.Parallel()

	assert.True(t, IsADDI(0x00000013))
	assert.True(t, IsADDI(ADDI(1, 2, 42)))
	assert.False(t, IsADDI(ADD(1, 2, 3)))
	assert.False(t, IsADDI(SLTI(1, 2, 42)))
}

func TestADDI(t *testing.T) {
	t.Parallel()

	w := ADDI(1, 2, 42)
	require.Equal(t, Word(0x02a10093), w)

	assert.Equal(t, uint32(1), ExtractRd(w))
	assert.Equal(t, uint32(2), ExtractRs1(w))
	assert.Equal(t, int32(42), ImmI(w))

	// addi sp, sp, -16
	assert.Equal(t, Word(0xff010113), ADDI(2, 2, -16))

	// addi x0, x0, 0
	assert.Equal(t, Word(0x00000013), NOP())
}

func TestGoldenEncodings(t *testing.T) {
	t.Parallel()

	// cross-checked against binutils disassembly
	for _, test := range []struct {
		name     string
		actual   Word
		expected Word
	}{
		{"lui a0, 0x12345", LUI(10, 0x12345), 0x12345537},
		{"auipc a0, 0x1", AUIPC(10, 1), 0x00001517},
		{"jal ra, 8", JAL(1, 8), 0x008000ef},
		{"jalr ra, t0, 0", JALR(1, 5, 0), 0x000280e7},
		{"beq t0, t1, -4", BEQ(5, 6, -4), 0xfe628ee3},
		{"lw a0, 8(sp)", LW(10, 2, 8), 0x00812503},
		{"sw a0, 8(sp)", SW(10, 2, 8), 0x00a12423},
		{"srai a0, a0, 3", SRAI(10, 10, 3), 0x40355513},
		{"add a0, a1, a2", ADD(10, 11, 12), 0x00c58533},
		{"sub a0, a1, a2", SUB(10, 11, 12), 0x40c58533},
		{"fence iorw, iorw", FENCE(0xf, 0xf), 0x0ff0000f},
		{"ecall", ECALL(), 0x00000073},
		{"ebreak", EBREAK(), 0x00100073},
	} {
		assert.Equalf(t, test.expected, test.actual, "%s", test.name)
	}
}

func TestMatchersMatchTheirBuilders(t *testing.T) {
	t.Parallel()

	assert.True(t, IsLUI(LUI(1, 2)))
	assert.True(t, IsAUIPC(AUIPC(1, 2)))
	assert.True(t, IsJAL(JAL(1, 2048)))
	assert.True(t, IsJALR(JALR(1, 2, 4)))
	assert.True(t, IsBEQ(BEQ(1, 2, 16)))
	assert.True(t, IsBNE(BNE(1, 2, 16)))
	assert.True(t, IsBLT(BLT(1, 2, 16)))
	assert.True(t, IsBGE(BGE(1, 2, 16)))
	assert.True(t, IsBLTU(BLTU(1, 2, 16)))
	assert.True(t, IsBGEU(BGEU(1, 2, 16)))
	assert.True(t, IsLB(LB(1, 2, 3)))
	assert.True(t, IsLH(LH(1, 2, 3)))
	assert.True(t, IsLW(LW(1, 2, 3)))
	assert.True(t, IsLBU(LBU(1, 2, 3)))
	assert.True(t, IsLHU(LHU(1, 2, 3)))
	assert.True(t, IsSB(SB(1, 2, 3)))
	assert.True(t, IsSH(SH(1, 2, 3)))
	assert.True(t, IsSW(SW(1, 2, 3)))
	assert.True(t, IsSLTI(SLTI(1, 2, 3)))
	assert.True(t, IsSLTIU(SLTIU(1, 2, 3)))
	assert.True(t, IsXORI(XORI(1, 2, 3)))
	assert.True(t, IsORI(ORI(1, 2, 3)))
	assert.True(t, IsANDI(ANDI(1, 2, 3)))
	assert.True(t, IsSLLI(SLLI(1, 2, 3)))
	assert.True(t, IsSRLI(SRLI(1, 2, 3)))
	assert.True(t, IsSRAI(SRAI(1, 2, 3)))
	assert.True(t, IsADD(ADD(1, 2, 3)))
	assert.True(t, IsSUB(SUB(1, 2, 3)))
	assert.True(t, IsSLL(SLL(1, 2, 3)))
	assert.True(t, IsSLT(SLT(1, 2, 3)))
	assert.True(t, IsSLTU(SLTU(1, 2, 3)))
	assert.True(t, IsXOR(XOR(1, 2, 3)))
	assert.True(t, IsSRL(SRL(1, 2, 3)))
	assert.True(t, IsSRA(SRA(1, 2, 3)))
	assert.True(t, IsOR(OR(1, 2, 3)))
	assert.True(t, IsAND(AND(1, 2, 3)))
	assert.True(t, IsFENCE(FENCE(0xf, 0xf)))
	assert.True(t, IsECALL(ECALL()))
	assert.True(t, IsEBREAK(EBREAK()))
}

func TestShiftBuildersDropBit5(t *testing.T) {
	t.Parallel()

	// an out-of-range shift amount must not leak into funct7
	assert.Equal(t, SLLI(1, 2, 1), SLLI(1, 2, 33))
}
