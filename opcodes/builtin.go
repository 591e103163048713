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
	"embed"

	"github.com/rvkit/rvkit/errors"
)

//go:embed extensions
var builtinExtensions embed.FS

// RV32I returns the dictionary of the embedded base integer extension.
func RV32I() *Dict {
	dict, err := ParseFS(builtinExtensions, Options{}, "extensions/rv_i")
	if err != nil {
		panic(errors.NewUnexpectedError("failed to parse builtin extension: %w", err))
	}
	return dict
}
