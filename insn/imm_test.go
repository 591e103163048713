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
)

func TestSignExtend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(42), SignExtend(42, 11))
	assert.Equal(t, int32(-1), SignExtend(0xfff, 11))
	assert.Equal(t, int32(-2048), SignExtend(0x800, 11))
	assert.Equal(t, int32(2047), SignExtend(0x7ff, 11))
	assert.Equal(t, int32(-1), SignExtend(1, 0))
}

func TestImmIRoundTrip(t *testing.T) {
	t.Parallel()

	for _, imm := range []int32{0, 1, -1, 42, -16, 2047, -2048} {
		var w Word
		InsertImmI(&w, imm)
		assert.Equal(t, imm, ImmI(w))
	}
}

func TestImmSRoundTrip(t *testing.T) {
	t.Parallel()

	for _, imm := range []int32{0, 1, -1, 8, -8, 2047, -2048} {
		var w Word
		InsertImmS(&w, imm)
		assert.Equal(t, imm, ImmS(w))
	}
}

func TestImmBRoundTrip(t *testing.T) {
	t.Parallel()

	// branch offsets are even; bit 0 is not encoded
	for _, imm := range []int32{0, 2, -2, 4, -4, 16, 4094, -4096} {
		var w Word
		InsertImmB(&w, imm)
		assert.Equal(t, imm, ImmB(w))
	}
}

func TestImmURoundTrip(t *testing.T) {
	t.Parallel()

	for _, imm := range []int32{0, 1, -1, 0x12345, 0x7ffff, -0x80000} {
		var w Word
		InsertImmU(&w, imm)
		assert.Equal(t, imm, ImmU(w))
	}
}

func TestImmJRoundTrip(t *testing.T) {
	t.Parallel()

	for _, imm := range []int32{0, 2, -2, 8, -8, 2048, -2048, 1048574, -1048576} {
		var w Word
		InsertImmJ(&w, imm)
		assert.Equal(t, imm, ImmJ(w))
	}
}

func TestImmBKeepsFixedBits(t *testing.T) {
	t.Parallel()

	// inserting an immediate must not disturb opcode or register fields
	w := BEQ(5, 6, 0)
	InsertImmB(&w, -4)

	assert.Equal(t, uint32(5), ExtractRs1(w))
	assert.Equal(t, uint32(6), ExtractRs2(w))
	assert.True(t, IsBEQ(w))
	assert.Equal(t, int32(-4), ImmB(w))
}
