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
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// closestMnemonic finds the known mnemonic with the smallest edit
// distance from the given name. In cases of typos, this should provide
// a helpful hint. Returns the empty string when nothing is close.
func closestMnemonic(name string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	for _, candidate := range Mnemonics() {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't suggest a candidate if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of its text
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}
