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

	"github.com/rvkit/rvkit/errors"
)

// MalformedLineError is reported for a line that cannot be parsed,
// e.g. a bad directive or an invalid numeric argument.
type MalformedLineError struct {
	Extension string
	Line      int
	Message   string
}

var _ errors.UserError = MalformedLineError{}

func (e MalformedLineError) IsUserError() {}

func (e MalformedLineError) Error() string {
	return fmt.Sprintf(
		"%s:%d: %s",
		e.Extension,
		e.Line,
		e.Message,
	)
}

// OverlappingBitsError is reported when two fixed bit ranges of one
// instruction line claim the same bit.
type OverlappingBitsError struct {
	Extension string
	Name      string
	Bit       uint
}

var _ errors.UserError = OverlappingBitsError{}

func (e OverlappingBitsError) IsUserError() {}

func (e OverlappingBitsError) Error() string {
	return fmt.Sprintf(
		"instruction %q in extension %q: overlapping fixed bits at bit %d",
		e.Name,
		e.Extension,
		e.Bit,
	)
}

// ValueTooLargeError is reported when a fixed bit range's value does
// not fit the range's width.
type ValueTooLargeError struct {
	Extension string
	Name      string
	Value     uint32
	Bits      int
}

var _ errors.UserError = ValueTooLargeError{}

func (e ValueTooLargeError) IsUserError() {}

func (e ValueTooLargeError) Error() string {
	return fmt.Sprintf(
		"instruction %q in extension %q: value %#x too large to fit in %d bits",
		e.Name,
		e.Extension,
		e.Value,
		e.Bits,
	)
}

// DuplicateInstructionError is reported when an instruction name is
// defined twice in the same extension.
type DuplicateInstructionError struct {
	Extension string
	Name      string
}

var _ errors.UserError = DuplicateInstructionError{}

func (e DuplicateInstructionError) IsUserError() {}

func (e DuplicateInstructionError) Error() string {
	return fmt.Sprintf(
		"instruction %q already defined in extension %q",
		e.Name,
		e.Extension,
	)
}

// DuplicateEncodingError is reported when two instructions with an
// overlapping base ISA share an encoding.
type DuplicateEncodingError struct {
	Name          string
	DuplicateName string
	Base          BaseExtension
}

var _ errors.UserError = DuplicateEncodingError{}

func (e DuplicateEncodingError) IsUserError() {}

func (e DuplicateEncodingError) Error() string {
	return fmt.Sprintf(
		"instruction %q has the same encoding as %q in base extension(s) %s",
		e.Name,
		e.DuplicateName,
		e.Base,
	)
}

// IllegalImportError is reported when an import or pseudo-op directive
// names an instruction that is not defined anywhere in the parsed set.
type IllegalImportError struct {
	Extension       string
	ImportExtension string
	ImportName      string
}

var _ errors.UserError = IllegalImportError{}

func (e IllegalImportError) IsUserError() {}

func (e IllegalImportError) Error() string {
	return fmt.Sprintf(
		"extension %q imports unknown instruction %s::%s",
		e.Extension,
		e.ImportExtension,
		e.ImportName,
	)
}

// UnknownWordError is reported when no instruction in the dictionary
// matches a word being decoded.
type UnknownWordError struct {
	Word uint32
}

var _ errors.UserError = UnknownWordError{}

func (e UnknownWordError) IsUserError() {}

func (e UnknownWordError) Error() string {
	return fmt.Sprintf("no instruction matches word %#08x", e.Word)
}

// UnknownFieldError is reported when an instruction names a variable
// field that has no metadata entry.
type UnknownFieldError struct {
	Name  string
	Field string
}

var _ errors.InternalError = UnknownFieldError{}

func (e UnknownFieldError) IsInternalError() {}

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf(
		"instruction %q uses unknown variable field %q",
		e.Name,
		e.Field,
	)
}
