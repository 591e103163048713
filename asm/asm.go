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

// Package asm assembles single lines of RV32I assembly into
// instruction words.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rvkit/rvkit/insn"
)

// format describes how a mnemonic's operands are written.
type format int

const (
	formatR      format = iota // rd, rs1, rs2
	formatI                    // rd, rs1, imm
	formatLoad                 // rd, imm(rs1)
	formatStore                // rs2, imm(rs1)
	formatBranch               // rs1, rs2, offset
	formatU                    // rd, imm
	formatJ                    // rd, offset
	formatShift                // rd, rs1, shamt
	formatFence                // [pred, succ]
	formatNone                 // no operands
)

// operands holds the parsed operand values of one line.
type operands struct {
	rd, rs1, rs2 uint32
	imm          int64
	pred, succ   uint32
}

type mnemonic struct {
	format      format
	description string
	encode      func(o operands) insn.Word
}

var mnemonics = map[string]mnemonic{
	"lui":   {formatU, "load upper immediate", func(o operands) insn.Word { return insn.LUI(o.rd, int32(o.imm)) }},
	"auipc": {formatU, "add upper immediate to pc", func(o operands) insn.Word { return insn.AUIPC(o.rd, int32(o.imm)) }},

	"jal":  {formatJ, "jump and link", func(o operands) insn.Word { return insn.JAL(o.rd, int32(o.imm)) }},
	"jalr": {formatI, "jump and link register", func(o operands) insn.Word { return insn.JALR(o.rd, o.rs1, int32(o.imm)) }},

	"beq":  {formatBranch, "branch if equal", func(o operands) insn.Word { return insn.BEQ(o.rs1, o.rs2, int32(o.imm)) }},
	"bne":  {formatBranch, "branch if not equal", func(o operands) insn.Word { return insn.BNE(o.rs1, o.rs2, int32(o.imm)) }},
	"blt":  {formatBranch, "branch if less than", func(o operands) insn.Word { return insn.BLT(o.rs1, o.rs2, int32(o.imm)) }},
	"bge":  {formatBranch, "branch if greater or equal", func(o operands) insn.Word { return insn.BGE(o.rs1, o.rs2, int32(o.imm)) }},
	"bltu": {formatBranch, "branch if less than, unsigned", func(o operands) insn.Word { return insn.BLTU(o.rs1, o.rs2, int32(o.imm)) }},
	"bgeu": {formatBranch, "branch if greater or equal, unsigned", func(o operands) insn.Word { return insn.BGEU(o.rs1, o.rs2, int32(o.imm)) }},

	"lb":  {formatLoad, "load byte", func(o operands) insn.Word { return insn.LB(o.rd, o.rs1, int32(o.imm)) }},
	"lh":  {formatLoad, "load halfword", func(o operands) insn.Word { return insn.LH(o.rd, o.rs1, int32(o.imm)) }},
	"lw":  {formatLoad, "load word", func(o operands) insn.Word { return insn.LW(o.rd, o.rs1, int32(o.imm)) }},
	"lbu": {formatLoad, "load byte, unsigned", func(o operands) insn.Word { return insn.LBU(o.rd, o.rs1, int32(o.imm)) }},
	"lhu": {formatLoad, "load halfword, unsigned", func(o operands) insn.Word { return insn.LHU(o.rd, o.rs1, int32(o.imm)) }},

	"sb": {formatStore, "store byte", func(o operands) insn.Word { return insn.SB(o.rs2, o.rs1, int32(o.imm)) }},
	"sh": {formatStore, "store halfword", func(o operands) insn.Word { return insn.SH(o.rs2, o.rs1, int32(o.imm)) }},
	"sw": {formatStore, "store word", func(o operands) insn.Word { return insn.SW(o.rs2, o.rs1, int32(o.imm)) }},

	"addi":  {formatI, "add immediate", func(o operands) insn.Word { return insn.ADDI(o.rd, o.rs1, int32(o.imm)) }},
	"slti":  {formatI, "set if less than immediate", func(o operands) insn.Word { return insn.SLTI(o.rd, o.rs1, int32(o.imm)) }},
	"sltiu": {formatI, "set if less than immediate, unsigned", func(o operands) insn.Word { return insn.SLTIU(o.rd, o.rs1, int32(o.imm)) }},
	"xori":  {formatI, "exclusive-or immediate", func(o operands) insn.Word { return insn.XORI(o.rd, o.rs1, int32(o.imm)) }},
	"ori":   {formatI, "or immediate", func(o operands) insn.Word { return insn.ORI(o.rd, o.rs1, int32(o.imm)) }},
	"andi":  {formatI, "and immediate", func(o operands) insn.Word { return insn.ANDI(o.rd, o.rs1, int32(o.imm)) }},

	"slli": {formatShift, "shift left logical immediate", func(o operands) insn.Word { return insn.SLLI(o.rd, o.rs1, uint32(o.imm)) }},
	"srli": {formatShift, "shift right logical immediate", func(o operands) insn.Word { return insn.SRLI(o.rd, o.rs1, uint32(o.imm)) }},
	"srai": {formatShift, "shift right arithmetic immediate", func(o operands) insn.Word { return insn.SRAI(o.rd, o.rs1, uint32(o.imm)) }},

	"add":  {formatR, "add", func(o operands) insn.Word { return insn.ADD(o.rd, o.rs1, o.rs2) }},
	"sub":  {formatR, "subtract", func(o operands) insn.Word { return insn.SUB(o.rd, o.rs1, o.rs2) }},
	"sll":  {formatR, "shift left logical", func(o operands) insn.Word { return insn.SLL(o.rd, o.rs1, o.rs2) }},
	"slt":  {formatR, "set if less than", func(o operands) insn.Word { return insn.SLT(o.rd, o.rs1, o.rs2) }},
	"sltu": {formatR, "set if less than, unsigned", func(o operands) insn.Word { return insn.SLTU(o.rd, o.rs1, o.rs2) }},
	"xor":  {formatR, "exclusive-or", func(o operands) insn.Word { return insn.XOR(o.rd, o.rs1, o.rs2) }},
	"srl":  {formatR, "shift right logical", func(o operands) insn.Word { return insn.SRL(o.rd, o.rs1, o.rs2) }},
	"sra":  {formatR, "shift right arithmetic", func(o operands) insn.Word { return insn.SRA(o.rd, o.rs1, o.rs2) }},
	"or":   {formatR, "or", func(o operands) insn.Word { return insn.OR(o.rd, o.rs1, o.rs2) }},
	"and":  {formatR, "and", func(o operands) insn.Word { return insn.AND(o.rd, o.rs1, o.rs2) }},

	"fence":  {formatFence, "memory ordering fence", func(o operands) insn.Word { return insn.FENCE(o.pred, o.succ) }},
	"ecall":  {formatNone, "environment call", func(o operands) insn.Word { return insn.ECALL() }},
	"ebreak": {formatNone, "environment breakpoint", func(o operands) insn.Word { return insn.EBREAK() }},
	"nop":    {formatNone, "no operation", func(o operands) insn.Word { return insn.NOP() }},
}

// Mnemonics returns all known mnemonics, sorted.
func Mnemonics() []string {
	names := make([]string, 0, len(mnemonics))
	for name := range mnemonics { //nolint:maprange
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns a short description of a mnemonic,
// or the empty string for an unknown one.
func Describe(name string) string {
	return mnemonics[name].description
}

var memoryOperandPattern = regexp.MustCompile(`^(-?[0-9a-fA-Fx]+)\((\w+)\)$`)

// Assemble encodes a single line of assembly. Comments start with '#'.
func Assemble(line string) (insn.Word, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return 0, SyntaxError{Message: "empty line"}
	}

	name := strings.ToLower(tokens[0])
	m, ok := mnemonics[name]
	if !ok {
		return 0, UnknownMnemonicError{
			Mnemonic:   name,
			Suggestion: closestMnemonic(name),
		}
	}

	args := splitOperands(strings.Join(tokens[1:], " "))

	o, err := parseOperands(name, m.format, args)
	if err != nil {
		return 0, err
	}

	return m.encode(o), nil
}

// AssembleAll encodes one instruction per line,
// skipping blank lines and comments.
func AssembleAll(r io.Reader) ([]insn.Word, error) {
	var words []insn.Word

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, err := Assemble(line)
		if err != nil {
			return nil, LineError{Line: lineNumber, Err: err}
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

func splitOperands(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func parseOperands(name string, f format, args []string) (operands, error) {
	var o operands

	arity := map[format]int{
		formatR:      3,
		formatI:      3,
		formatLoad:   2,
		formatStore:  2,
		formatBranch: 3,
		formatU:      2,
		formatJ:      2,
		formatShift:  3,
	}

	if want, counted := arity[f]; counted && len(args) != want {
		return o, SyntaxError{
			Mnemonic: name,
			Message:  fmt.Sprintf("expected %d operands, got %d", want, len(args)),
		}
	}

	var err error

	switch f {
	case formatR:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.rs1, err = RegisterNumber(args[1]); err != nil {
			return o, err
		}
		if o.rs2, err = RegisterNumber(args[2]); err != nil {
			return o, err
		}

	case formatI:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.rs1, err = RegisterNumber(args[1]); err != nil {
			return o, err
		}
		if o.imm, err = parseImmediate(name, args[2], -2048, 2047); err != nil {
			return o, err
		}

	case formatLoad:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.imm, o.rs1, err = parseMemoryOperand(name, args[1]); err != nil {
			return o, err
		}

	case formatStore:
		if o.rs2, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.imm, o.rs1, err = parseMemoryOperand(name, args[1]); err != nil {
			return o, err
		}

	case formatBranch:
		if o.rs1, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.rs2, err = RegisterNumber(args[1]); err != nil {
			return o, err
		}
		if o.imm, err = parseImmediate(name, args[2], -4096, 4094); err != nil {
			return o, err
		}
		if o.imm%2 != 0 {
			return o, MisalignedOffsetError{Mnemonic: name, Value: o.imm}
		}

	case formatU:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.imm, err = parseImmediate(name, args[1], 0, 0xfffff); err != nil {
			return o, err
		}

	case formatJ:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.imm, err = parseImmediate(name, args[1], -1048576, 1048574); err != nil {
			return o, err
		}
		if o.imm%2 != 0 {
			return o, MisalignedOffsetError{Mnemonic: name, Value: o.imm}
		}

	case formatShift:
		if o.rd, err = RegisterNumber(args[0]); err != nil {
			return o, err
		}
		if o.rs1, err = RegisterNumber(args[1]); err != nil {
			return o, err
		}
		if o.imm, err = parseImmediate(name, args[2], 0, 31); err != nil {
			return o, err
		}

	case formatFence:
		// bare "fence" is fence iorw, iorw
		o.pred, o.succ = 0xf, 0xf
		if len(args) == 2 {
			if o.pred, err = parseOrderingSet(name, args[0]); err != nil {
				return o, err
			}
			if o.succ, err = parseOrderingSet(name, args[1]); err != nil {
				return o, err
			}
		} else if len(args) != 0 {
			return o, SyntaxError{
				Mnemonic: name,
				Message:  "expected no operands or pred, succ",
			}
		}

	case formatNone:
		if len(args) != 0 {
			return o, SyntaxError{
				Mnemonic: name,
				Message:  "expected no operands",
			}
		}
	}

	return o, nil
}

func parseImmediate(name, s string, min, max int64) (int64, error) {
	value, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, SyntaxError{
			Mnemonic: name,
			Message:  fmt.Sprintf("invalid immediate %q", s),
		}
	}
	if value < min || value > max {
		return 0, ImmediateRangeError{
			Mnemonic: name,
			Value:    value,
			Min:      min,
			Max:      max,
		}
	}
	return value, nil
}

func parseMemoryOperand(name, s string) (int64, uint32, error) {
	m := memoryOperandPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, SyntaxError{
			Mnemonic: name,
			Message:  fmt.Sprintf("invalid memory operand %q, expected offset(register)", s),
		}
	}
	offset, err := parseImmediate(name, m[1], -2048, 2047)
	if err != nil {
		return 0, 0, err
	}
	base, err := RegisterNumber(m[2])
	if err != nil {
		return 0, 0, err
	}
	return offset, base, nil
}

// parseOrderingSet parses a fence ordering set like "iorw" or "rw"
// into its 4-bit encoding.
func parseOrderingSet(name, s string) (uint32, error) {
	var set uint32
	for _, r := range strings.ToLower(s) {
		var bit uint32
		switch r {
		case 'i':
			bit = 8
		case 'o':
			bit = 4
		case 'r':
			bit = 2
		case 'w':
			bit = 1
		default:
			return 0, SyntaxError{
				Mnemonic: name,
				Message:  fmt.Sprintf("invalid ordering set %q", s),
			}
		}
		if set&bit != 0 {
			return 0, SyntaxError{
				Mnemonic: name,
				Message:  fmt.Sprintf("duplicate flag in ordering set %q", s),
			}
		}
		set |= bit
	}
	return set, nil
}
