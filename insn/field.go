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
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/rvkit/rvkit/errors"
)

// Field is a contiguous named bit range of an instruction word.
// Hi and Lo are bit positions within the word, Hi >= Lo.
type Field struct {
	Name string
	Hi   uint
	Lo   uint
}

func (f Field) Width() uint {
	return f.Hi - f.Lo + 1
}

func (f Field) mask() Word {
	return genMask(f.Hi, f.Lo)
}

func (f Field) valueMask() Word {
	return genMask(f.Width()-1, 0)
}

// Extract returns the field's value, shifted down to bit 0.
func (f Field) Extract(w Word) uint32 {
	return uint32(x(w, f.Lo, f.valueMask()))
}

// Insert ORs the value into the field's bits. Bits outside the field's
// width are dropped, bits already set in the word are left alone.
func (f Field) Insert(w *Word, value uint32) {
	*w |= x(Word(value), 0, f.valueMask()) << f.Lo
}

// Update clears the field's bits and then inserts the value.
func (f Field) Update(w *Word, value uint32) {
	*w &^= f.mask()
	f.Insert(w, value)
}

// The standard variable fields of the 32-bit encoding.
var (
	FieldOpcode = Field{Name: "opcode", Hi: 6, Lo: 0}
	FieldRd     = Field{Name: "rd", Hi: 11, Lo: 7}
	FieldFunct3 = Field{Name: "funct3", Hi: 14, Lo: 12}
	FieldRs1    = Field{Name: "rs1", Hi: 19, Lo: 15}
	FieldRs2    = Field{Name: "rs2", Hi: 24, Lo: 20}
	FieldFunct7 = Field{Name: "funct7", Hi: 31, Lo: 25}
	FieldImm12  = Field{Name: "imm12", Hi: 31, Lo: 20}
	FieldImm20  = Field{Name: "imm20", Hi: 31, Lo: 12}
	FieldShamt  = Field{Name: "shamt", Hi: 25, Lo: 20}
	FieldCSR    = Field{Name: "csr", Hi: 31, Lo: 20}
	FieldAq     = Field{Name: "aq", Hi: 26, Lo: 26}
	FieldRl     = Field{Name: "rl", Hi: 25, Lo: 25}
)

// Format is one of the six instruction formats of the base encoding.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		panic(errors.NewUnreachableError())
	}
}

// Fields returns the format's fields in encoding order, low bits first.
// Split immediates are reported as the halves they occupy in the word.
func (f Format) Fields() []Field {
	switch f {
	case FormatR:
		return []Field{FieldOpcode, FieldRd, FieldFunct3, FieldRs1, FieldRs2, FieldFunct7}
	case FormatI:
		return []Field{FieldOpcode, FieldRd, FieldFunct3, FieldRs1, FieldImm12}
	case FormatS:
		return []Field{
			FieldOpcode,
			{Name: "imm12lo", Hi: 11, Lo: 7},
			FieldFunct3,
			FieldRs1,
			FieldRs2,
			{Name: "imm12hi", Hi: 31, Lo: 25},
		}
	case FormatB:
		return []Field{
			FieldOpcode,
			{Name: "bimm12lo", Hi: 11, Lo: 7},
			FieldFunct3,
			FieldRs1,
			FieldRs2,
			{Name: "bimm12hi", Hi: 31, Lo: 25},
		}
	case FormatU:
		return []Field{FieldOpcode, FieldRd, FieldImm20}
	case FormatJ:
		return []Field{FieldOpcode, FieldRd, {Name: "jimm20", Hi: 31, Lo: 12}}
	default:
		panic(errors.NewUnreachableError())
	}
}

// OverlappingFieldsError is reported when two fields of one format
// claim the same bit of the instruction word.
type OverlappingFieldsError struct {
	Format Format
	Bit    uint
}

var _ errors.UserError = OverlappingFieldsError{}

func (e OverlappingFieldsError) IsUserError() {}

func (e OverlappingFieldsError) Error() string {
	return fmt.Sprintf(
		"overlapping fields in format %s at bit %d",
		e.Format,
		e.Bit,
	)
}

// IncompleteFormatError is reported when a format's fields
// do not tile all 32 bits of the instruction word.
type IncompleteFormatError struct {
	Format Format
	Bit    uint
}

var _ errors.UserError = IncompleteFormatError{}

func (e IncompleteFormatError) IsUserError() {}

func (e IncompleteFormatError) Error() string {
	return fmt.Sprintf(
		"format %s leaves bit %d uncovered",
		e.Format,
		e.Bit,
	)
}

// Validate checks that the format's fields tile the whole 32-bit word
// with no overlap.
func (f Format) Validate() error {
	covered := bitset.New(32)
	for _, field := range f.Fields() {
		for bit := field.Lo; bit <= field.Hi; bit++ {
			if covered.Test(bit) {
				return OverlappingFieldsError{Format: f, Bit: bit}
			}
			covered.Set(bit)
		}
	}
	if covered.Count() != 32 {
		bit, _ := covered.NextClear(0)
		return IncompleteFormatError{Format: f, Bit: bit}
	}
	return nil
}
