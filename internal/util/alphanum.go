// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

// AlphanumCompare reports whether a sorts before b in natural order, so
// that "Week 2" comes before "Week 10". Text chunks are compared without
// regard to case.
func AlphanumCompare(a, b string) bool {
	chunks_a := chunkRegexp.FindAllString(a, -1)
	chunks_b := chunkRegexp.FindAllString(b, -1)

	for i := 0; i < len(chunks_a) && i < len(chunks_b); i++ {
		ca, cb := chunks_a[i], chunks_b[i]

		aInt, aErr := strconv.Atoi(ca)
		bInt, bErr := strconv.Atoi(cb)

		// Numeric chunks are compared by value.
		if aErr == nil && bErr == nil {
			if aInt != bInt {
				return aInt < bInt
			}
			continue
		}

		if la, lb := strings.ToLower(ca), strings.ToLower(cb); la != lb {
			return la < lb
		}
	}

	// One is a prefix of the other: the shorter one goes first.
	return len(chunks_a) < len(chunks_b)
}
