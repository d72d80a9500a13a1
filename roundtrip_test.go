// SPDX-License-Identifier: Apache-2.0

package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// plainAlphabet deliberately excludes 'h', 't', 'p' (so random draws can
// never spell out an "http(s)://" scheme and trigger DL URI parsing) and
// excludes GS (0x1D), which is reserved as the wire-form FNC1 sentinel.
var plainAlphabet = []rune("ABCDEFGIJKLMNOQRSUVWXYZ0123456789^\\")

// TestGenerateProcessRoundTripPlainData codifies quantified invariant 1
// for the plain-data (non-AI) symbologies: encoding an arbitrary
// data_str for a QR code and decoding the result reproduces the same
// symbol and data, modulo the documented leading-caret escape.
func TestGenerateProcessRoundTripPlainData(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom(plainAlphabet), 0, 30).Draw(t, "runes")
		data := string(runes)

		ctx := NewContext()
		ctx.Sym = SymQR
		ctx.DataStr = data

		out, ok := GenerateScanData(ctx)
		if !ok {
			t.Fatalf("GenerateScanData unexpectedly failed: %v", ctx.ErrMsg)
		}

		decodeCtx := NewContext(WithAIProcessor(stubAIProcessor{}))
		ok = ProcessScanData(decodeCtx, out)
		if !ok {
			t.Fatalf("ProcessScanData unexpectedly failed on %q: %v", out, decodeCtx.ErrMsg)
		}

		assert.Equal(t, SymQR, decodeCtx.Sym)
		assert.Equal(t, data, decodeCtx.DataStr)
	})
}

// TestProcessScanDataFailureLeavesEmptyState codifies quantified
// invariant 3: for any input, a false return from ProcessScanData leaves
// Sym reset to SymNone and DataStr empty.
func TestProcessScanDataFailureLeavesEmptyState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := rapid.SliceOfN(rapid.Byte(), 0, 40).Draw(t, "body")

		ctx := NewContext(WithAIProcessor(stubAIProcessor{}))
		ctx.Sym = SymQR
		ctx.DataStr = "leftover"

		if ProcessScanData(ctx, string(body)) {
			return
		}
		assert.Equal(t, SymNone, ctx.Sym)
		assert.Empty(t, ctx.DataStr)
	})
}

// TestGenerateScanDataNeverMutatesDataStr codifies quantified invariant
// 4: generating scan data, success or failure, never changes DataStr
// (trivially true for Go's immutable strings, but pinned here as a
// regression guard against a future refactor that introduces a mutable
// scratch buffer).
func TestGenerateScanDataNeverMutatesDataStr(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom(plainAlphabet), 0, 30).Draw(t, "runes")
		data := string(runes)

		ctx := NewContext()
		ctx.Sym = SymQR
		ctx.DataStr = data

		GenerateScanData(ctx)
		assert.Equal(t, data, ctx.DataStr)
	})
}
