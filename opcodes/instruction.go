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

// Package opcodes parses instruction-set extension files in the
// riscv-opcodes format and builds an instruction dictionary with
// mask/match encodings, duplicate detection, and YAML import/export.
package opcodes

import (
	"strings"
)

// BaseExtension is the set of base ISAs an extension applies to.
type BaseExtension uint8

const (
	RV32 BaseExtension = 1 << iota
	RV64
	RV128
)

const AnyBase = RV32 | RV64 | RV128

func (b BaseExtension) String() string {
	var parts []string
	if b&RV32 != 0 {
		parts = append(parts, "RV32")
	}
	if b&RV64 != 0 {
		parts = append(parts, "RV64")
	}
	if b&RV128 != 0 {
		parts = append(parts, "RV128")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// baseExtensionOf derives the base ISA set from an extension file name.
// An unprefixed name (e.g. "rv_i") applies to all bases.
func baseExtensionOf(extension string) BaseExtension {
	switch {
	case strings.HasPrefix(extension, "rv32"):
		return RV32
	case strings.HasPrefix(extension, "rv64"):
		return RV64
	case strings.HasPrefix(extension, "rv128"):
		return RV128
	default:
		return AnyBase
	}
}

// Instruction is one entry of the dictionary: a named encoding with its
// fixed bits (Mask/Match), its named variable fields, and the
// extensions that define or import it.
type Instruction struct {
	Name       string
	Extensions []string
	// Encoding is the bit pattern, MSB first, with '-' for variable bits.
	Encoding string
	Mask     uint32
	Match    uint32
	// Fields are the named variable fields in definition order.
	Fields []string
	// Pseudo marks instructions defined via a pseudo-op directive.
	// They alias their parent's encoding space and are excluded from
	// encoding-conflict checks.
	Pseudo bool
	// PseudoOf names the parent instruction for pseudo instructions,
	// as "extension::name".
	PseudoOf string
}

// EncodingSize returns the width of the encoding in bits:
// 16 for compressed ("c.") instructions, 32 otherwise.
func EncodingSize(name string) int {
	if strings.HasPrefix(name, "c.") {
		return 16
	}
	return 32
}

// BaseExtension returns the union of the base ISAs of all extensions
// the instruction belongs to.
func (i *Instruction) BaseExtension() BaseExtension {
	var base BaseExtension
	for _, extension := range i.Extensions {
		base |= baseExtensionOf(extension)
	}
	return base
}

// Matches reports whether the word's fixed bits equal this
// instruction's encoding.
func (i *Instruction) Matches(w uint32) bool {
	return w&i.Mask == i.Match
}
