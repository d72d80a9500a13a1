// SPDX-License-Identifier: Apache-2.0

package gs1

import "strings"

// gs is the byte a barcode reader substitutes for FNC1 on the wire (ASCII
// Group Separator, 0x1D). The canonical internal form uses '^' instead.
const gs = 0x1D

// scancat folds a single AI-mode or plain-data fragment from the
// canonical '^'-delimited form into the GS-delimited wire form, or back.
// A small, pure, receiver-less byte-slice transform, with no allocation
// beyond the returned string.
//
// When toWire is true, in is a canonical fragment beginning with '^': the
// leading caret (already emitted as the symbology-identifier prefix) is
// dropped, and every remaining '^' becomes GS. When toWire is false, in is
// a wire fragment possibly carrying the leading-caret escape described on
// escapeLeadingCaret; exactly one leading '\' is stripped iff it is
// immediately followed by a run of '\' then '^' — i.e. "\^" -> "^", "\\^"
// -> "\^", and so on — and the remainder is copied verbatim.
func scancat(in string, toWire bool) string {
	if toWire {
		if len(in) == 0 || in[0] != '^' {
			return in
		}
		var b strings.Builder
		b.Grow(len(in) - 1)
		for i := 1; i < len(in); i++ {
			if in[i] == '^' {
				b.WriteByte(gs)
			} else {
				b.WriteByte(in[i])
			}
		}
		return b.String()
	}

	n := 0
	for n < len(in) && in[n] == '\\' {
		n++
	}
	if n > 0 && n < len(in) && in[n] == '^' {
		return in[1:]
	}
	return in
}

// escapeLeadingCaret is the decode-time half of the leading-caret
// escaping rule for non-AI (plain) data, applied by ProcessScanData when
// it stores the data in data_str: if the data, after
// skipping any run of leading '\' bytes, begins with '^', one more '\' is
// prepended so the stored form is unambiguous. Data with no such leading
// caret is returned unchanged.
func escapeLeadingCaret(s string) string {
	n := 0
	for n < len(s) && s[n] == '\\' {
		n++
	}
	if n < len(s) && s[n] == '^' {
		return "\\" + s
	}
	return s
}

// unescapeLeadingCaret is the inverse of escapeLeadingCaret, used by
// GenerateScanData's non-AI branch to recover the original wire bytes: if
// data_str begins with one or more '\' followed by '^', drop exactly one
// '\'.
func unescapeLeadingCaret(s string) string {
	n := 0
	for n < len(s) && s[n] == '\\' {
		n++
	}
	if n > 0 && n < len(s) && s[n] == '^' {
		return s[1:]
	}
	return s
}
