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
	goErrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/rvkit/rvkit/asm"
	"github.com/rvkit/rvkit/disasm"
	"github.com/rvkit/rvkit/errors"
	"github.com/rvkit/rvkit/insn"
	"github.com/rvkit/rvkit/opcodes"
)

const replHelpMessage = `
Enter RV32I instructions to assemble them.
Commands are prefixed with a dot. Valid commands are:

.dict     List the known instructions
.exit     Exit the assembler
.help     Print this help message

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

func runREPL() {
	fmt.Printf("Welcome to rvkit!\n%s\n\n", replAssistanceMessage)

	dict := opcodes.RV32I()

	executor := func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		if strings.HasPrefix(line, ".") {
			handleCommand(line)
			return
		}

		word, err := asm.Assemble(line)
		if err != nil {
			printREPLError(err)
			return
		}

		lines := disasm.Disassemble([]insn.Word{word}, dict)

		fmt.Printf(
			"%s  %s %s\n",
			colorizeResult(fmt.Sprintf("0x%08x", uint32(word))),
			lines[0].Name,
			lines[0].Operands,
		)
	}

	suggest := func(d prompt.Document) []prompt.Suggest {
		if len(d.GetWordBeforeCursor()) == 0 {
			return nil
		}

		suggests := []prompt.Suggest{}

		for _, name := range asm.Mnemonics() {
			suggests = append(suggests, prompt.Suggest{
				Text:        name,
				Description: asm.Describe(name),
			})
		}

		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), false)
	}

	prompt.New(
		executor,
		suggest,
		prompt.OptionPrefix("> "),
	).Run()
}

func printREPLError(err error) {
	fmt.Println(colorizeError(err.Error()))

	var secondaryError errors.SecondaryError
	if goErrors.As(err, &secondaryError) {
		fmt.Println(colorizeError(secondaryError.SecondaryError()))
	}
}

func handleCommand(command string) {
	switch command {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	case ".dict":
		for _, name := range asm.Mnemonics() {
			fmt.Printf("%-8s %s\n", name, asm.Describe(name))
		}
	default:
		fmt.Println(colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
}
