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

func TestFieldAccessors(t *testing.T) {
	t.Parallel()

	var w Word

	FieldRd.Insert(&w, 10)
	assert.Equal(t, uint32(10), FieldRd.Extract(w))
	assert.Equal(t, uint32(10), ExtractRd(w))

	FieldRd.Insert(&w, 5)
	assert.Equal(t, uint32(15), FieldRd.Extract(w))

	FieldRd.Update(&w, 3)
	assert.Equal(t, uint32(3), FieldRd.Extract(w))

	// neighbours untouched
	FieldRs1.Update(&w, 31)
	assert.Equal(t, uint32(3), FieldRd.Extract(w))
	assert.Equal(t, uint32(31), FieldRs1.Extract(w))
	assert.Equal(t, uint32(0), FieldFunct3.Extract(w))
}

func TestFieldWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(5), FieldRd.Width())
	assert.Equal(t, uint(12), FieldImm12.Width())
	assert.Equal(t, uint(20), FieldImm20.Width())
	assert.Equal(t, uint(1), FieldAq.Width())
}

func TestFormatValidate(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{
		FormatR,
		FormatI,
		FormatS,
		FormatB,
		FormatU,
		FormatJ,
	} {
		require.NoError(t, format.Validate(), "format %s", format)
	}
}

func TestFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "R", FormatR.String())
	assert.Equal(t, "J", FormatJ.String())
}
