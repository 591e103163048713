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

package asm

import (
	"fmt"

	"github.com/rvkit/rvkit/errors"
)

// UnknownMnemonicError is reported for an unrecognized instruction
// name. Suggestion, if non-empty, is the closest known mnemonic.
type UnknownMnemonicError struct {
	Mnemonic   string
	Suggestion string
}

var _ errors.UserError = UnknownMnemonicError{}
var _ errors.SecondaryError = UnknownMnemonicError{}

func (e UnknownMnemonicError) IsUserError() {}

func (e UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown mnemonic %q", e.Mnemonic)
}

func (e UnknownMnemonicError) SecondaryError() string {
	if e.Suggestion == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", e.Suggestion)
}

// UnknownRegisterError is reported for an unrecognized register name.
type UnknownRegisterError struct {
	Name string
}

var _ errors.UserError = UnknownRegisterError{}

func (e UnknownRegisterError) IsUserError() {}

func (e UnknownRegisterError) Error() string {
	return fmt.Sprintf("unknown register %q", e.Name)
}

// SyntaxError is reported when a line's operands do not fit the
// mnemonic's format.
type SyntaxError struct {
	Mnemonic string
	Message  string
}

var _ errors.UserError = SyntaxError{}

func (e SyntaxError) IsUserError() {}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Mnemonic, e.Message)
}

// ImmediateRangeError is reported for an out-of-range immediate.
type ImmediateRangeError struct {
	Mnemonic string
	Value    int64
	Min      int64
	Max      int64
}

var _ errors.UserError = ImmediateRangeError{}

func (e ImmediateRangeError) IsUserError() {}

func (e ImmediateRangeError) Error() string {
	return fmt.Sprintf(
		"%s: immediate %d out of range [%d, %d]",
		e.Mnemonic,
		e.Value,
		e.Min,
		e.Max,
	)
}

// MisalignedOffsetError is reported for an odd branch or jump offset.
type MisalignedOffsetError struct {
	Mnemonic string
	Value    int64
}

var _ errors.UserError = MisalignedOffsetError{}

func (e MisalignedOffsetError) IsUserError() {}

func (e MisalignedOffsetError) Error() string {
	return fmt.Sprintf("%s: offset %d must be even", e.Mnemonic, e.Value)
}

// LineError wraps an error with the line number it occurred on.
type LineError struct {
	Line int
	Err  error
}

var _ errors.UserError = LineError{}

func (e LineError) IsUserError() {}

func (e LineError) Unwrap() error {
	return e.Err
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}
