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

// Package disasm renders instruction words as a readable listing.
package disasm

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rvkit/rvkit/insn"
	"github.com/rvkit/rvkit/opcodes"
)

// Line is one disassembled instruction.
type Line struct {
	Address  uint32
	Word     insn.Word
	Name     string
	Operands string
}

// Disassemble decodes each word against the dictionary. Words no
// instruction matches become ".word" lines carrying the raw value.
func Disassemble(words []insn.Word, dict *opcodes.Dict) []Line {
	lines := make([]Line, 0, len(words))

	for i, word := range words {
		address := uint32(i) * 4

		decoded, err := dict.Decode(uint32(word))
		if err != nil {
			lines = append(lines, Line{
				Address:  address,
				Word:     word,
				Name:     ".word",
				Operands: fmt.Sprintf("%#08x", uint32(word)),
			})
			continue
		}

		var operandsBuilder strings.Builder
		for i, operand := range decoded.Operands {
			if i > 0 {
				operandsBuilder.WriteByte(' ')
			}
			if operand.Kind.Register() {
				_, _ = fmt.Fprintf(&operandsBuilder, "%s:x%d", operand.Name, operand.Value)
			} else {
				_, _ = fmt.Fprintf(&operandsBuilder, "%s:%d", operand.Name, operand.Value)
			}
		}

		lines = append(lines, Line{
			Address:  address,
			Word:     word,
			Name:     decoded.Instruction.Name,
			Operands: operandsBuilder.String(),
		})
	}

	return lines
}

// PrintListing writes the words as an aligned "address | name | operands"
// listing.
func PrintListing(
	builder *strings.Builder,
	words []insn.Word,
	dict *opcodes.Dict,
	colorize bool,
) error {

	tabWriter := tabwriter.NewWriter(builder, 0, 0, 1, ' ', tabwriter.AlignRight)

	for _, line := range Disassemble(words, dict) {
		name := line.Name
		if colorize {
			name = colorizeName(name)
		}

		_, _ = fmt.Fprintf(
			tabWriter,
			"%08x |\t%s |\t%s\n",
			line.Address,
			name,
			line.Operands,
		)
	}

	_ = tabWriter.Flush()
	_, _ = fmt.Fprintln(builder)

	return nil
}
