// SPDX-License-Identifier: Apache-2.0

package gs1

import "strings"

// fixedLengthAIs gives the value length of the handful of 2-digit AIs
// this package's encoder needs to recognise syntactically, to decide
// where one AI's value ends and the next begins without a separating
// '^' — the separator is optional when the value's length is known in
// advance. AIs absent from this table are treated as variable-length,
// '^'-terminated. This is deliberately not the full GS1 AI dictionary —
// see the airegistry package for that — just enough to support the
// GS-separator rule below.
var fixedLengthAIs = map[string]int{
	"00": 18,
	"01": 14,
	"11": 6,
	"17": 6,
}

// lastAIIsVariableLength walks linear, a '^'-prefixed (or bare) AI-mode
// string, and reports whether its last AI element is variable-length.
// A composite component gets a GS separator inserted before it iff this
// is true.
func lastAIIsVariableLength(linear string) bool {
	s := linear
	if len(s) > 0 && s[0] == '^' {
		s = s[1:]
	}

	variable := true
	for len(s) >= 2 {
		tag := s[:2]
		rest := s[2:]

		if length, ok := fixedLengthAIs[tag]; ok {
			if len(rest) < length {
				break
			}
			variable = false
			rest = rest[length:]
			rest = strings.TrimPrefix(rest, "^")
		} else {
			variable = true
			if idx := strings.IndexByte(rest, '^'); idx >= 0 {
				rest = rest[idx+1:]
			} else {
				rest = ""
			}
		}
		s = rest
	}
	return variable
}
