// SPDX-License-Identifier: Apache-2.0

package gs1

import (
	"strings"

	"github.com/gs1-syntax/engine-go/dluri"
)

// ProcessScanData classifies a raw barcode reader payload by its leading
// symbology identifier, validates and normalises it, and on success
// leaves ctx.Sym and ctx.DataStr set to the canonical form. It returns
// false on any failure, with ctx.Err/ctx.ErrMsg describing the cause and
// ctx.Sym reset to SymNone.
//
// The validation order below is load-bearing: symbology-identifier
// presence, then recognition, then the length ceiling, then per-symbology
// structural checks, then numeric checks, then the check digit, then AI
// parsing, then DL URI parsing. Tests depend on this order.
func ProcessScanData(ctx *Context, scanData string) bool {
	ctx.reset()

	if len(scanData) < 3 || scanData[0] != ']' {
		return ctx.fail(NewError(ErrMissingSymbologyIdentifier))
	}

	sym, aiMode := LookupSymAndMode(scanData[1:3])
	if sym == SymNone {
		return ctx.fail(NewError(ErrUnsupportedSymbologyIdentifier))
	}

	body := scanData[3:]
	if len(body) >= MaxData {
		return ctx.fail(NewError(ErrDataTooLong))
	}

	if sym == SymEAN13 || sym == SymEAN8 {
		return ctx.decodeEAN(sym, body)
	}
	if aiMode == AI {
		return ctx.decodeAIMode(sym, body, "")
	}
	return ctx.decodePlain(sym, body)
}

// decodeEAN handles a fixed-length EAN-13/EAN-8 primary, optionally
// followed by a "|]e0"-prefixed composite component
// that continues as an AI-mode payload.
func (ctx *Context) decodeEAN(sym Symbology, body string) bool {
	primaryLen := 13
	if sym == SymEAN8 {
		primaryLen = 8
	}

	if len(body) < primaryLen {
		return ctx.fail(NewError(ErrPrimaryScanDataTooShort))
	}

	primary := body[:primaryLen]
	rest := body[primaryLen:]

	if rest != "" && !strings.HasPrefix(rest, "|]"+ccSymID) {
		return ctx.fail(NewError(ErrPrimaryMessageTooLong))
	}
	if !isAllDigits(primary) {
		return ctx.fail(NewError(ErrPrimaryMessageNotDigits))
	}

	buf := []byte(primary)
	if !ValidateParity(buf) {
		return ctx.fail(NewError(ErrPrimaryMessageCheckDigitIncorrect))
	}
	primary = string(buf)

	if rest == "" {
		ctx.Sym = sym
		ctx.DataStr = primary
		return true
	}

	composite := rest[len("|]"+ccSymID):]
	return ctx.decodeAIMode(sym, composite, primary+"|")
}

// decodeAIMode handles AI-mode decoding. prefix, when non-empty, is an
// already-validated EAN primary plus its "|" separator that must be kept
// ahead of the AI-mode payload being decoded (the composite-component
// continuation); pure AI-mode scans pass prefix="".
func (ctx *Context) decodeAIMode(sym Symbology, body string, prefix string) bool {
	if strings.IndexByte(body, '^') >= 0 {
		return ctx.fail(NewError(ErrScanDataContainsIllegalCarat))
	}

	var b strings.Builder
	b.Grow(len(body) + 1)
	b.WriteByte('^')
	for i := 0; i < len(body); i++ {
		if body[i] == gs {
			b.WriteByte('^')
		} else {
			b.WriteByte(body[i])
		}
	}

	if ctx.AIProcessor == nil {
		return ctx.fail(NewError(ErrFailedToProcessScanData))
	}

	aiString := b.String()
	if err := ctx.AIProcessor.ProcessAIData(ctx, aiString, true); err != nil {
		if gerr, ok := err.(*Error); ok {
			return ctx.fail(gerr)
		}
		return ctx.fail(NewWrappedError(ErrFailedToProcessScanData, err))
	}

	ctx.Sym = sym
	ctx.DataStr = prefix + aiString
	return true
}

// decodePlain handles opaque (non-AI) data, with the leading-caret
// escape applied and, for an exact-case http(s) scheme
// prefix, an attempt to decompose it as a GS1 Digital Link URI.
func (ctx *Context) decodePlain(sym Symbology, body string) bool {
	dataStr := escapeLeadingCaret(body)

	if hasDLScheme(dataStr) {
		ai, err := dluri.Parse(dataStr)
		if err != nil {
			return ctx.fail(NewWrappedError(ErrFailedToProcessScanData, err))
		}
		ctx.DLAIBuffer = ai
	} else {
		ctx.DLAIBuffer = ""
	}

	ctx.Sym = sym
	ctx.DataStr = dataStr
	return true
}

// hasDLScheme reports whether s begins with one of the four exact-case
// scheme spellings recognised as a candidate GS1 Digital Link URI.
// Mixed-case spellings such as "HtTps://" are deliberately not matched:
// the data is stored as plain text but never handed to the DL URI
// parser.
func hasDLScheme(s string) bool {
	for _, scheme := range [...]string{"http://", "https://", "HTTP://", "HTTPS://"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}
