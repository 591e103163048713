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
	"io"
	"sort"
	"strconv"

	"github.com/goccy/go-yaml"
)

// dictEntry is the YAML shape of one dictionary entry, matching the
// instr-dict output of the riscv-opcodes tooling.
type dictEntry struct {
	Encoding       string   `yaml:"encoding"`
	Extensions     []string `yaml:"extension"`
	Mask           string   `yaml:"mask"`
	Match          string   `yaml:"match"`
	VariableFields []string `yaml:"variable_fields"`
	PseudoOf       string   `yaml:"pseudo_of,omitempty"`
}

// DumpYAML writes the dictionary in definition order.
func (d *Dict) DumpYAML(w io.Writer) error {
	var doc yaml.MapSlice
	for _, instruction := range d.Instructions() {
		doc = append(doc, yaml.MapItem{
			Key: instruction.Name,
			Value: dictEntry{
				Encoding:       instruction.Encoding,
				Extensions:     instruction.Extensions,
				Mask:           fmt.Sprintf("%#x", instruction.Mask),
				Match:          fmt.Sprintf("%#x", instruction.Match),
				VariableFields: instruction.Fields,
				PseudoOf:       instruction.PseudoOf,
			},
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// LoadYAML reads a dictionary dumped by DumpYAML. YAML mappings are
// unordered, so entries are sorted by name.
func LoadYAML(r io.Reader) (*Dict, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var entries map[string]dictEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for name := range entries { //nolint:maprange
		names = append(names, name)
	}
	sort.Strings(names)

	dict := NewDict()
	for _, name := range names {
		entry := entries[name]

		mask, err := strconv.ParseUint(entry.Mask, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("instruction %q: invalid mask: %w", name, err)
		}
		match, err := strconv.ParseUint(entry.Match, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("instruction %q: invalid match: %w", name, err)
		}

		dict.add(&Instruction{
			Name:       name,
			Extensions: entry.Extensions,
			Encoding:   entry.Encoding,
			Mask:       uint32(mask),
			Match:      uint32(match),
			Fields:     entry.VariableFields,
			Pseudo:     entry.PseudoOf != "",
			PseudoOf:   entry.PseudoOf,
		})
	}

	return dict, nil
}
