// SPDX-License-Identifier: Apache-2.0

package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestScancatToWire(t *testing.T) {
	assert.Equal(t, "01TEST\x1D99VALUE", scancat("^01TEST^99VALUE", true))
	assert.Equal(t, "TESTING", scancat("TESTING", true))
}

func TestScancatFromWire(t *testing.T) {
	assert.Equal(t, "TESTING", scancat("TESTING", false))
	assert.Equal(t, "^TESTING", scancat("\\^TESTING", false))
	assert.Equal(t, "\\^TESTING", scancat("\\\\^TESTING", false))
}

func TestEscapeUnescapeLeadingCaretRoundTrip(t *testing.T) {
	assert.Equal(t, "\\^TESTING", escapeLeadingCaret("^TESTING"))
	assert.Equal(t, "TESTING", escapeLeadingCaret("TESTING"))
	assert.Equal(t, "^TESTING", unescapeLeadingCaret("\\^TESTING"))
	assert.Equal(t, "TESTING", unescapeLeadingCaret("TESTING"))
}

// TestEscapeUnescapeLeadingCaretIsInverse codifies the fifth quantified
// invariant: scancat (via the escape/unescape pair) is idempotent over
// decode-then-encode for plain data whose only meta characters are '^'
// and '\'.
func TestEscapeUnescapeLeadingCaretIsInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom([]rune{'^', '\\', 'A', '1'}), 0, 20).Draw(t, "runes")
		body := string(runes)
		escaped := escapeLeadingCaret(body)
		assert.Equal(t, body, unescapeLeadingCaret(escaped))
	})
}
