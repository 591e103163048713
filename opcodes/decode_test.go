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

package opcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeADDI(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// addi x1, x2, 42
	decoded, err := dict.Decode(0x02a10093)
	require.NoError(t, err)

	assert.Equal(t, "addi", decoded.Instruction.Name)
	assert.Equal(t,
		[]Operand{
			{Name: "rd", Kind: FieldRegister, Value: 1},
			{Name: "rs1", Kind: FieldRegister, Value: 2},
			{Name: "imm12", Kind: FieldImm, Value: 42},
		},
		decoded.Operands,
	)
}

func TestDecodeNegativeImmediate(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// addi sp, sp, -16
	decoded, err := dict.Decode(0xff010113)
	require.NoError(t, err)

	assert.Equal(t, "addi", decoded.Instruction.Name)
	assert.Equal(t, int64(-16), decoded.Operands[2].Value)
}

func TestDecodeSplitBranchImmediate(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// beq t0, t1, -4
	decoded, err := dict.Decode(0xfe628ee3)
	require.NoError(t, err)

	assert.Equal(t, "beq", decoded.Instruction.Name)
	assert.Equal(t,
		[]Operand{
			{Name: "bimm12", Kind: FieldImm, Value: -4},
			{Name: "rs1", Kind: FieldRegister, Value: 5},
			{Name: "rs2", Kind: FieldRegister, Value: 6},
		},
		decoded.Operands,
	)
}

func TestDecodeStoreImmediate(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// sw a0, 8(sp)
	decoded, err := dict.Decode(0x00a12423)
	require.NoError(t, err)

	assert.Equal(t, "sw", decoded.Instruction.Name)
	assert.Equal(t,
		[]Operand{
			{Name: "imm12", Kind: FieldImm, Value: 8},
			{Name: "rs1", Kind: FieldRegister, Value: 2},
			{Name: "rs2", Kind: FieldRegister, Value: 10},
		},
		decoded.Operands,
	)
}

func TestDecodeUpperImmediate(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// lui a0, 0x12345
	decoded, err := dict.Decode(0x12345537)
	require.NoError(t, err)

	assert.Equal(t, "lui", decoded.Instruction.Name)
	// the operand is the full immediate, low 12 bits zero
	assert.Equal(t,
		[]Operand{
			{Name: "rd", Kind: FieldRegister, Value: 10},
			{Name: "imm20", Kind: FieldImm, Value: 0x12345000},
		},
		decoded.Operands,
	)
}

func TestDecodeJumpImmediate(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// jal ra, 8
	decoded, err := dict.Decode(0x008000ef)
	require.NoError(t, err)

	assert.Equal(t, "jal", decoded.Instruction.Name)
	assert.Equal(t,
		[]Operand{
			{Name: "rd", Kind: FieldRegister, Value: 1},
			{Name: "jimm20", Kind: FieldImm, Value: 8},
		},
		decoded.Operands,
	)
}

func TestDecodeFence(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	// fence iorw, iorw
	decoded, err := dict.Decode(0x0ff0000f)
	require.NoError(t, err)

	assert.Equal(t, "fence", decoded.Instruction.Name)
	assert.Equal(t,
		[]Operand{
			{Name: "fm", Kind: FieldFlag, Value: 0},
			{Name: "pred", Kind: FieldFlag, Value: 0xf},
			{Name: "succ", Kind: FieldFlag, Value: 0xf},
			{Name: "rs1", Kind: FieldRegister, Value: 0},
			{Name: "rd", Kind: FieldRegister, Value: 0},
		},
		decoded.Operands,
	)
}

func TestDecodeUnknownWord(t *testing.T) {
	t.Parallel()

	dict := RV32I()

	_, err := dict.Decode(0xffffffff)
	require.Error(t, err)

	var unknownErr UnknownWordError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, uint32(0xffffffff), unknownErr.Word)
}

func TestDecodeSkipsPseudo(t *testing.T) {
	t.Parallel()

	fsys := mapFS(map[string]string{
		"rv_i": `
ecall 11..7=0 19..15=0 31..20=0x000 14..12=0 6..2=0x1C 1..0=3
$pseudo_op rv_i::ecall scall 11..7=0 19..15=0 31..20=0x000 14..12=0 6..2=0x1C 1..0=3
`,
	})

	dict, err := ParseFS(fsys, Options{IncludePseudo: true}, "rv_i")
	require.NoError(t, err)

	decoded, err := dict.Decode(0x00000073)
	require.NoError(t, err)
	assert.Equal(t, "ecall", decoded.Instruction.Name)
}
