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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rvkit/rvkit/asm"
	"github.com/rvkit/rvkit/disasm"
	"github.com/rvkit/rvkit/insn"
	"github.com/rvkit/rvkit/opcodes"
)

const usage = `rvkit is a RISC-V instruction encoding toolkit.

Usage:

  rvkit <command> [arguments]

Commands:

  encode [file ...]    assemble RV32I source into instruction words
  decode <word ...>    disassemble instruction words
  dict                 dump an opcode dictionary as YAML
  repl                 start the interactive assembler (default)
`

func main() {
	if len(os.Args) < 2 {
		runREPL()
		return
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "dict":
		runDict(os.Args[2:])
	case "repl":
		runREPL()
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, colorizeError(err.Error()))
	os.Exit(1)
}

// runEncode assembles the given source files, or standard input when no
// file is given, and prints one instruction word per line.
func runEncode(args []string) {
	flagSet := flag.NewFlagSet("encode", flag.ExitOnError)
	listingFlag := flagSet.Bool("listing", false, "print a disassembly listing instead of raw words")
	_ = flagSet.Parse(args)

	var words []insn.Word

	assemble := func(r io.Reader) {
		assembled, err := asm.AssembleAll(r)
		if err != nil {
			exitWithError(err)
		}
		words = append(words, assembled...)
	}

	if flagSet.NArg() == 0 {
		assemble(os.Stdin)
	} else {
		for _, filename := range flagSet.Args() {
			file, err := os.Open(filename)
			if err != nil {
				exitWithError(err)
			}
			assemble(file)
			_ = file.Close()
		}
	}

	if *listingFlag {
		printListing(words)
		return
	}

	for _, word := range words {
		fmt.Printf("0x%08x\n", uint32(word))
	}
}

// runDecode disassembles the words given as arguments, or read as
// whitespace-separated tokens from standard input when no argument is
// given.
func runDecode(args []string) {
	flagSet := flag.NewFlagSet("decode", flag.ExitOnError)
	_ = flagSet.Parse(args)

	tokens := flagSet.Args()
	if len(tokens) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(err)
		}
		tokens = strings.Fields(string(data))
	}

	words := make([]insn.Word, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseUint(token, 0, 32)
		if err != nil {
			exitWithError(fmt.Errorf("invalid instruction word %q: %w", token, err))
		}
		words = append(words, insn.Word(value))
	}

	printListing(words)
}

func printListing(words []insn.Word) {
	var builder strings.Builder
	err := disasm.PrintListing(&builder, words, opcodes.RV32I(), colorsEnabled())
	if err != nil {
		exitWithError(err)
	}
	fmt.Print(builder.String())
}

// runDict dumps an opcode dictionary as YAML. Without arguments the
// builtin RV32I dictionary is dumped. With -C, the named extension
// files are parsed from the given directory instead.
func runDict(args []string) {
	flagSet := flag.NewFlagSet("dict", flag.ExitOnError)
	dirFlag := flagSet.String("C", "", "parse extension files from this directory")
	pseudoFlag := flagSet.Bool("pseudo", false, "include pseudo-instructions")
	_ = flagSet.Parse(args)

	var dict *opcodes.Dict

	if *dirFlag == "" {
		dict = opcodes.RV32I()
	} else {
		patterns := flagSet.Args()
		if len(patterns) == 0 {
			patterns = []string{"*"}
		}

		var err error
		dict, err = opcodes.ParseFS(
			os.DirFS(*dirFlag),
			opcodes.Options{
				IncludePseudo: *pseudoFlag,
			},
			patterns...,
		)
		if err != nil {
			exitWithError(err)
		}
	}

	err := dict.DumpYAML(os.Stdout)
	if err != nil {
		exitWithError(err)
	}
}
