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

// FieldKind classifies a variable field.
type FieldKind int

const (
	FieldFlag FieldKind = iota
	FieldImm
	FieldUImm
	FieldNZImm
	FieldNZUImm
	FieldRegister
	FieldNZRegister
	FieldCRegister
	FieldCSR
)

// Signed reports whether values of this kind are sign-extended.
func (k FieldKind) Signed() bool {
	return k == FieldImm || k == FieldNZImm
}

// Register reports whether values of this kind name a register.
func (k FieldKind) Register() bool {
	switch k {
	case FieldRegister, FieldNZRegister, FieldCRegister:
		return true
	default:
		return false
	}
}

// Segment is a contiguous run of immediate bits, Hi >= Lo.
type Segment struct {
	Hi uint
	Lo uint
}

// VarField describes where a named variable field sits in the
// instruction word and, for immediates, which bits of the immediate
// its encoding bits carry (MSB first).
type VarField struct {
	Kind FieldKind
	Hi   uint
	Lo   uint
	Imm  []Segment
}

func (f VarField) Width() uint {
	return f.Hi - f.Lo + 1
}

// SignBit returns the highest immediate bit the field carries.
func (f VarField) SignBit() uint {
	var bit uint
	for _, segment := range f.Imm {
		if segment.Hi > bit {
			bit = segment.Hi
		}
	}
	return bit
}

// VarFields is the metadata table for the variable fields of the
// 32-bit base encoding.
var VarFields = map[string]VarField{
	"rd":  {Kind: FieldRegister, Hi: 11, Lo: 7},
	"rs1": {Kind: FieldRegister, Hi: 19, Lo: 15},
	"rs2": {Kind: FieldRegister, Hi: 24, Lo: 20},
	"rs3": {Kind: FieldRegister, Hi: 31, Lo: 27},

	"imm12": {
		Kind: FieldImm, Hi: 31, Lo: 20,
		Imm: []Segment{{11, 0}},
	},
	"imm12hi": {
		Kind: FieldImm, Hi: 31, Lo: 25,
		Imm: []Segment{{11, 5}},
	},
	"imm12lo": {
		Kind: FieldImm, Hi: 11, Lo: 7,
		Imm: []Segment{{4, 0}},
	},
	"bimm12hi": {
		Kind: FieldImm, Hi: 31, Lo: 25,
		Imm: []Segment{{12, 12}, {10, 5}},
	},
	"bimm12lo": {
		Kind: FieldImm, Hi: 11, Lo: 7,
		Imm: []Segment{{4, 1}, {11, 11}},
	},
	"imm20": {
		Kind: FieldImm, Hi: 31, Lo: 12,
		Imm: []Segment{{31, 12}},
	},
	"jimm20": {
		Kind: FieldImm, Hi: 31, Lo: 12,
		Imm: []Segment{{20, 20}, {10, 1}, {11, 11}, {19, 12}},
	},

	"shamtw": {Kind: FieldUImm, Hi: 24, Lo: 20},
	"shamtd": {Kind: FieldUImm, Hi: 25, Lo: 20},
	"shamtq": {Kind: FieldUImm, Hi: 26, Lo: 20},

	"csr":  {Kind: FieldCSR, Hi: 31, Lo: 20},
	"zimm": {Kind: FieldUImm, Hi: 19, Lo: 15},

	"aq": {Kind: FieldFlag, Hi: 26, Lo: 26},
	"rl": {Kind: FieldFlag, Hi: 25, Lo: 25},
	"rm": {Kind: FieldFlag, Hi: 14, Lo: 12},

	"fm":   {Kind: FieldFlag, Hi: 31, Lo: 28},
	"pred": {Kind: FieldFlag, Hi: 27, Lo: 24},
	"succ": {Kind: FieldFlag, Hi: 23, Lo: 20},
}
