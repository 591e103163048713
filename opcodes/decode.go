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
	"strings"
)

// Operand is a decoded variable field value. Split immediates
// (e.g. bimm12hi/bimm12lo) are merged into one operand named after
// their common stem.
type Operand struct {
	Name  string
	Kind  FieldKind
	Value int64
}

// Decoded is the result of matching a word against the dictionary.
type Decoded struct {
	Instruction *Instruction
	Operands    []Operand
}

// Decode finds the instruction whose fixed bits match the word and
// decodes its variable fields. Pseudo instructions never match.
func (d *Dict) Decode(w uint32) (*Decoded, error) {
	for _, instruction := range d.Instructions() {
		if instruction.Pseudo || !instruction.Matches(w) {
			continue
		}
		operands, err := decodeOperands(w, instruction)
		if err != nil {
			return nil, err
		}
		return &Decoded{
			Instruction: instruction,
			Operands:    operands,
		}, nil
	}
	return nil, UnknownWordError{Word: w}
}

// operandStem merges the hi/lo halves of split immediates under one
// name: "bimm12hi" and "bimm12lo" both decode into "bimm12".
func operandStem(field string) string {
	if stem, ok := strings.CutSuffix(field, "hi"); ok {
		return stem
	}
	if stem, ok := strings.CutSuffix(field, "lo"); ok {
		return stem
	}
	return field
}

func decodeOperands(w uint32, instruction *Instruction) ([]Operand, error) {
	var (
		operands []Operand
		index    = map[string]int{}
		signBits = map[string]uint{}
	)

	for _, field := range instruction.Fields {
		varField, ok := VarFields[field]
		if !ok {
			return nil, UnknownFieldError{
				Name:  instruction.Name,
				Field: field,
			}
		}

		raw := (w >> varField.Lo) & uint32(1<<varField.Width()-1)

		value := int64(raw)
		if len(varField.Imm) > 0 {
			value = int64(scatter(raw, varField))
		}

		stem := operandStem(field)

		i, merged := index[stem]
		if !merged {
			index[stem] = len(operands)
			operands = append(operands, Operand{
				Name:  stem,
				Kind:  varField.Kind,
				Value: value,
			})
			i = index[stem]
		} else {
			operands[i].Value |= value
		}

		if bit := varField.SignBit(); bit > signBits[stem] {
			signBits[stem] = bit
		}

		if varField.Kind.Signed() {
			operands[i].Kind = varField.Kind
		}
	}

	// sign-extend merged immediates once all halves are in
	for i, operand := range operands {
		if !operand.Kind.Signed() {
			continue
		}
		bit := signBits[operand.Name]
		if bit >= 63 {
			continue
		}
		shift := 63 - bit
		operands[i].Value = operand.Value << shift >> shift
	}

	return operands, nil
}

// scatter distributes the field's raw encoding bits, MSB first, onto
// the immediate bit positions the field carries.
func scatter(raw uint32, field VarField) uint64 {
	var value uint64
	shift := field.Width()
	for _, segment := range field.Imm {
		width := segment.Hi - segment.Lo + 1
		shift -= width
		chunk := uint64(raw>>shift) & (1<<width - 1)
		value |= chunk << segment.Lo
	}
	return value
}
