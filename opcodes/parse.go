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
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
)

// Extension file lines are either an instruction definition
//
//	name field field msb..lsb=value ...
//
// or one of the directives
//
//	$import extension::name
//	$pseudo_op extension::name newname field field msb..lsb=value ...
//
// Blank lines and '#' comments are skipped.
var (
	numericArgPattern = regexp.MustCompile(`^(\d+)(?:\.\.(\d+))?=(.+)$`)
	importPattern     = regexp.MustCompile(`^\$import\s+(\S+)::(\S+)`)
	pseudoPattern     = regexp.MustCompile(`^\$pseudo_op\s+(\S+)::(\S+)\s+(\S+)\s+(.*)`)
)

type parsedLine interface {
	isParsedLine()
}

type instructionLine struct {
	extension string
	name      string
	args      argList
}

type importLine struct {
	extension       string
	importExtension string
	importName      string
}

type pseudoLine struct {
	extension       string
	importExtension string
	importName      string
	name            string
	args            argList
}

func (instructionLine) isParsedLine() {}
func (importLine) isParsedLine()      {}
func (pseudoLine) isParsedLine()      {}

// argList is the parsed right-hand side of an instruction line:
// the named variable fields and the fixed bits as encoding/mask/match.
type argList struct {
	fields   []string
	encoding string
	mask     uint32
	match    uint32
}

type numericArg struct {
	msb   uint
	lsb   uint
	value uint32
}

func parseNumericArg(token string) (numericArg, bool, error) {
	m := numericArgPattern.FindStringSubmatch(token)
	if m == nil {
		return numericArg{}, false, nil
	}

	msb, err := strconv.ParseUint(m[1], 10, 8)
	if err != nil {
		return numericArg{}, false, err
	}

	lsb := msb
	if m[2] != "" {
		lsb, err = strconv.ParseUint(m[2], 10, 8)
		if err != nil {
			return numericArg{}, false, err
		}
	}

	value, err := strconv.ParseUint(m[3], 0, 32)
	if err != nil {
		return numericArg{}, false, err
	}

	return numericArg{
		msb:   uint(msb),
		lsb:   uint(lsb),
		value: uint32(value),
	}, true, nil
}

// parseArgList splits the space-delimited arguments of an instruction
// line into named fields and fixed bit ranges, accumulating the fixed
// ranges into the encoding string, mask, and match.
func parseArgList(extension, name string, encodingSize int, rawArgs string) (argList, error) {
	// don't-care bits are dashes until a fixed range claims them
	encoding := []byte(strings.Repeat("-", encodingSize))

	var (
		fields      []string
		mask, match uint32
	)

	for _, token := range strings.Fields(rawArgs) {
		arg, ok, err := parseNumericArg(token)
		if err != nil {
			return argList{}, err
		}
		if !ok {
			fields = append(fields, token)
			continue
		}

		if arg.lsb > arg.msb {
			return argList{}, fmt.Errorf("invalid range %d..%d", arg.msb, arg.lsb)
		}
		if arg.msb >= uint(encodingSize) {
			return argList{}, fmt.Errorf("bit %d outside %d-bit encoding", arg.msb, encodingSize)
		}

		numBits := int(arg.msb - arg.lsb + 1)
		if bits.Len32(arg.value) > numBits {
			return argList{}, ValueTooLargeError{
				Extension: extension,
				Name:      name,
				Value:     arg.value,
				Bits:      numBits,
			}
		}

		argMask := uint32((uint64(1)<<(arg.msb+1) - 1) &^ (uint64(1)<<arg.lsb - 1))
		if argMask&mask != 0 {
			overlap := argMask & mask
			return argList{}, OverlappingBitsError{
				Extension: extension,
				Name:      name,
				Bit:       uint(bits.TrailingZeros32(overlap)),
			}
		}
		mask |= argMask
		match |= arg.value << arg.lsb

		// the encoding string is MSB first
		bitValue := fmt.Sprintf("%0*b", numBits, arg.value)
		copy(encoding[encodingSize-1-int(arg.msb):], bitValue)
	}

	return argList{
		fields:   fields,
		encoding: string(encoding),
		mask:     mask,
		match:    match,
	}, nil
}

// parseExtension reads one extension file and yields its lines in
// order, without resolving directives.
func parseExtension(r io.Reader, extension string) ([]parsedLine, error) {
	var lines []parsedLine

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "$import"):
			m := importPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, MalformedLineError{
					Extension: extension,
					Line:      lineNumber,
					Message:   "malformed import directive",
				}
			}
			lines = append(lines, importLine{
				extension:       extension,
				importExtension: m[1],
				importName:      m[2],
			})

		case strings.HasPrefix(line, "$pseudo_op"):
			m := pseudoPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, MalformedLineError{
					Extension: extension,
					Line:      lineNumber,
					Message:   "malformed pseudo-op directive",
				}
			}
			name := m[3]
			args, err := parseArgList(extension, name, EncodingSize(name), m[4])
			if err != nil {
				return nil, MalformedLineError{
					Extension: extension,
					Line:      lineNumber,
					Message:   err.Error(),
				}
			}
			lines = append(lines, pseudoLine{
				extension:       extension,
				importExtension: m[1],
				importName:      m[2],
				name:            name,
				args:            args,
			})

		default:
			tokens := strings.Fields(line)
			name := tokens[0]
			rawArgs := strings.Join(tokens[1:], " ")
			args, err := parseArgList(extension, name, EncodingSize(name), rawArgs)
			if err != nil {
				return nil, MalformedLineError{
					Extension: extension,
					Line:      lineNumber,
					Message:   err.Error(),
				}
			}
			lines = append(lines, instructionLine{
				extension: extension,
				name:      name,
				args:      args,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
