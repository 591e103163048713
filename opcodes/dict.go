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
	"fmt"
	"io/fs"
	"slices"
	"sort"
)

// Dict is an instruction dictionary built from one or more extension
// files. Iteration order is definition order.
type Dict struct {
	byName map[string]*Instruction
	names  []string
}

func NewDict() *Dict {
	return &Dict{
		byName: map[string]*Instruction{},
	}
}

func (d *Dict) Len() int {
	return len(d.names)
}

// Names returns the instruction names in definition order.
func (d *Dict) Names() []string {
	return slices.Clone(d.names)
}

func (d *Dict) Get(name string) *Instruction {
	return d.byName[name]
}

// Instructions returns the entries in definition order.
func (d *Dict) Instructions() []*Instruction {
	instructions := make([]*Instruction, 0, len(d.names))
	for _, name := range d.names {
		instructions = append(instructions, d.byName[name])
	}
	return instructions
}

func (d *Dict) add(instruction *Instruction) {
	d.byName[instruction.Name] = instruction
	d.names = append(d.names, instruction.Name)
}

// Options control dictionary building.
type Options struct {
	// IncludePseudo includes all pseudo-op instructions.
	IncludePseudo bool
	// IncludePseudoOps includes the named pseudo-op instructions even
	// when IncludePseudo is off.
	IncludePseudoOps []string
}

// ParseFS builds a dictionary from the extension files matching the
// given glob patterns. Import and pseudo-op directives are resolved
// against instructions defined in any matched file, and the finished
// dictionary is checked for encoding conflicts.
func ParseFS(fsys fs.FS, options Options, patterns ...string) (*Dict, error) {
	var filenames []string
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, matches...)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(filenames)))

	var (
		allLines []parsedLine
		seen     = map[string]string{}
	)

	for _, filename := range filenames {
		f, err := fsys.Open(filename)
		if err != nil {
			return nil, err
		}

		lines, err := parseExtension(f, extensionName(filename))
		_ = f.Close()
		if err != nil {
			return nil, err
		}

		allLines = append(allLines, lines...)
	}

	dict := NewDict()

	// first pass: plain definitions
	for _, line := range allLines {
		definition, ok := line.(instructionLine)
		if !ok {
			continue
		}
		if extension, defined := seen[definition.name]; defined {
			return nil, DuplicateInstructionError{
				Extension: extension,
				Name:      definition.name,
			}
		}
		seen[definition.name] = definition.extension

		dict.add(&Instruction{
			Name:       definition.name,
			Extensions: []string{definition.extension},
			Encoding:   definition.args.encoding,
			Mask:       definition.args.mask,
			Match:      definition.args.match,
			Fields:     definition.args.fields,
		})
	}

	// second pass: imports and pseudo-ops against the full set
	for _, line := range allLines {
		switch directive := line.(type) {
		case importLine:
			imported := dict.Get(directive.importName)
			if imported == nil ||
				!slices.Contains(imported.Extensions, directive.importExtension) {

				return nil, IllegalImportError{
					Extension:       directive.extension,
					ImportExtension: directive.importExtension,
					ImportName:      directive.importName,
				}
			}
			imported.Extensions = append(imported.Extensions, directive.extension)

		case pseudoLine:
			parent := dict.Get(directive.importName)
			if parent == nil ||
				!slices.Contains(parent.Extensions, directive.importExtension) {

				return nil, IllegalImportError{
					Extension:       directive.extension,
					ImportExtension: directive.importExtension,
					ImportName:      directive.importName,
				}
			}

			if !options.IncludePseudo &&
				!slices.Contains(options.IncludePseudoOps, directive.name) {

				continue
			}

			if extension, defined := seen[directive.name]; defined {
				return nil, DuplicateInstructionError{
					Extension: extension,
					Name:      directive.name,
				}
			}
			seen[directive.name] = directive.extension

			dict.add(&Instruction{
				Name:       directive.name,
				Extensions: []string{directive.extension},
				Encoding:   directive.args.encoding,
				Mask:       directive.args.mask,
				Match:      directive.args.match,
				Fields:     directive.args.fields,
				Pseudo:     true,
				PseudoOf: fmt.Sprintf(
					"%s::%s",
					directive.importExtension,
					directive.importName,
				),
			})
		}
	}

	if err := dict.checkEncodingConflicts(); err != nil {
		return nil, err
	}

	return dict, nil
}

// checkEncodingConflicts reports two non-pseudo instructions whose
// fixed bits coincide on every bit both of them fix, within a shared
// base ISA.
func (d *Dict) checkEncodingConflicts() error {
	instructions := d.Instructions()
	for i, a := range instructions {
		if a.Pseudo {
			continue
		}
		for _, b := range instructions[i+1:] {
			if b.Pseudo {
				continue
			}
			base := a.BaseExtension() & b.BaseExtension()
			if base == 0 {
				continue
			}
			if len(a.Encoding) != len(b.Encoding) {
				continue
			}
			common := a.Mask & b.Mask
			if a.Match&common == b.Match&common {
				return DuplicateEncodingError{
					Name:          a.Name,
					DuplicateName: b.Name,
					Base:          base,
				}
			}
		}
	}
	return nil
}

// extensionName strips the directory part of a matched filename:
// the extension is named after its file.
func extensionName(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '/' {
			return filename[i+1:]
		}
	}
	return filename
}
