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

package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvkit/rvkit/insn"
)

func TestAssemble(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		line     string
		expected insn.Word
	}{
		{"addi x1, x2, 42", 0x02a10093},
		{"addi sp, sp, -16", 0xff010113},
		{"addi a0, a1, 0x2a", 0x02a58513},
		{"lui a0, 0x12345", 0x12345537},
		{"jal ra, 8", 0x008000ef},
		{"jalr ra, t0, 0", 0x000280e7},
		{"beq t0, t1, -4", 0xfe628ee3},
		{"lw a0, 8(sp)", 0x00812503},
		{"sw a0, 8(sp)", 0x00a12423},
		{"srai a0, a0, 3", 0x40355513},
		{"add a0, a1, a2", 0x00c58533},
		{"fence", 0x0ff0000f},
		{"fence rw, rw", 0x0330000f},
		{"ecall", 0x00000073},
		{"ebreak", 0x00100073},
		{"nop", 0x00000013},
	} {
		actual, err := Assemble(test.line)
		require.NoErrorf(t, err, "%s", test.line)
		assert.Equalf(t, test.expected, actual, "%s", test.line)
	}
}

func TestAssembleIsCaseInsensitiveInMnemonic(t *testing.T) {
	t.Parallel()

	lower, err := Assemble("addi x1, x2, 42")
	require.NoError(t, err)

	upper, err := Assemble("ADDI x1, x2, 42")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestAssembleComment(t *testing.T) {
	t.Parallel()

	word, err := Assemble("addi x1, x2, 42 # the answer")
	require.NoError(t, err)
	assert.Equal(t, insn.Word(0x02a10093), word)
}

func TestAssembleUnknownMnemonic(t *testing.T) {
	t.Parallel()

	_, err := Assemble("ebrek")
	require.Error(t, err)

	var unknownErr UnknownMnemonicError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ebrek", unknownErr.Mnemonic)
	assert.Equal(t, "ebreak", unknownErr.Suggestion)
	assert.Equal(t, `did you mean "ebreak"?`, unknownErr.SecondaryError())
}

func TestAssembleUnknownRegister(t *testing.T) {
	t.Parallel()

	_, err := Assemble("addi x1, x33, 42")
	require.Error(t, err)

	var registerErr UnknownRegisterError
	require.ErrorAs(t, err, &registerErr)
	assert.Equal(t, "x33", registerErr.Name)
}

func TestAssembleImmediateRange(t *testing.T) {
	t.Parallel()

	_, err := Assemble("addi x1, x2, 2048")
	require.Error(t, err)

	var rangeErr ImmediateRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, int64(2048), rangeErr.Value)
	assert.Equal(t, int64(2047), rangeErr.Max)

	_, err = Assemble("addi x1, x2, -2049")
	require.Error(t, err)

	_, err = Assemble("slli x1, x2, 32")
	require.Error(t, err)
}

func TestAssembleMisalignedOffset(t *testing.T) {
	t.Parallel()

	_, err := Assemble("beq t0, t1, 3")
	require.Error(t, err)

	var misalignedErr MisalignedOffsetError
	require.ErrorAs(t, err, &misalignedErr)
	assert.Equal(t, int64(3), misalignedErr.Value)
}

func TestAssembleWrongOperandCount(t *testing.T) {
	t.Parallel()

	_, err := Assemble("addi x1, x2")
	require.Error(t, err)

	var syntaxErr SyntaxError
	require.ErrorAs(t, err, &syntaxErr)

	_, err = Assemble("ecall x1")
	require.Error(t, err)
}

func TestAssembleBadMemoryOperand(t *testing.T) {
	t.Parallel()

	_, err := Assemble("lw a0, sp")
	require.Error(t, err)

	var syntaxErr SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Message, "memory operand")
}

func TestAssembleAll(t *testing.T) {
	t.Parallel()

	const program = `
# a tiny function

addi sp, sp, -16
sw a0, 8(sp)
lw a0, 8(sp)
addi sp, sp, 16
jalr zero, ra, 0
`

	words, err := AssembleAll(strings.NewReader(program))
	require.NoError(t, err)

	assert.Equal(t,
		[]insn.Word{
			0xff010113,
			0x00a12423,
			0x00812503,
			0x01010113,
			0x00008067,
		},
		words,
	)
}

func TestAssembleAllReportsLine(t *testing.T) {
	t.Parallel()

	const program = `
addi sp, sp, -16
frob a0, a1
`

	_, err := AssembleAll(strings.NewReader(program))
	require.Error(t, err)

	var lineErr LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 3, lineErr.Line)

	var unknownErr UnknownMnemonicError
	require.ErrorAs(t, err, &unknownErr)
}

func TestRegisterNumber(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name     string
		expected uint32
	}{
		{"zero", 0},
		{"x0", 0},
		{"ra", 1},
		{"sp", 2},
		{"fp", 8},
		{"s0", 8},
		{"a0", 10},
		{"t6", 31},
		{"x31", 31},
	} {
		number, err := RegisterNumber(test.name)
		require.NoError(t, err)
		assert.Equal(t, test.expected, number)
	}

	_, err := RegisterNumber("q7")
	require.Error(t, err)
}

func TestMnemonics(t *testing.T) {
	t.Parallel()

	names := Mnemonics()
	assert.Contains(t, names, "addi")
	assert.Contains(t, names, "ebreak")
	assert.True(t, sortedStrings(names))

	assert.Equal(t, "add immediate", Describe("addi"))
	assert.Equal(t, "", Describe("frob"))
}

func sortedStrings(names []string) bool {
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			return false
		}
	}
	return true
}
