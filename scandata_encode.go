// SPDX-License-Identifier: Apache-2.0

package gs1

import "strings"

// GenerateScanData renders ctx.Sym and ctx.DataStr back into the wire
// form a barcode reader would have emitted. It returns ("", false) on
// failure, with ctx.Err/ctx.ErrMsg set; ctx.DataStr is never touched,
// success or failure, since splitting it at '|' is a local operation on
// an immutable Go string rather than an in-place buffer mutation.
func GenerateScanData(ctx *Context) (string, bool) {
	linear, composite, hasComposite := strings.Cut(ctx.DataStr, "|")

	out, err := ctx.generateBody(linear, composite, hasComposite)
	if err != nil {
		ctx.Err = err.Code
		ctx.ErrMsg = err.Error()
		ctx.OutStr = ""
		return "", false
	}

	ctx.OutStr = out
	ctx.Err = NoError
	ctx.ErrMsg = ""
	return out, true
}

func (ctx *Context) generateBody(linear, composite string, hasComposite bool) (string, *Error) {
	switch ctx.Sym {
	case SymQR, SymDM, SymDotCode:
		return generateMatrix(ctx.Sym, linear, composite, hasComposite)

	case SymGS1_128_CCA, SymGS1_128_CCC:
		if !hasComposite {
			return generateGS1_128LinearOnly(linear)
		}
		return generateComposite(ccSymID, linear, composite, hasComposite)

	case SymDataBarExpanded:
		return generateComposite(ccSymID, linear, composite, hasComposite)

	case SymDataBarOmni, SymDataBarTruncated, SymDataBarStacked,
		SymDataBarStackedOmni, SymDataBarLimited:
		return ctx.generateDataBar(linear, composite, hasComposite)

	case SymEAN13, SymEAN8, SymUPCA, SymUPCE:
		return ctx.generateEANUPC(linear, composite, hasComposite)

	default:
		return "", NewError(ErrFailedToProcessScanData)
	}
}

// generateMatrix handles the matrix-symbology branch (QR, DM, DotCode).
// When data_str contains a '|', the '|' found by the Cut in
// GenerateScanData is not composite syntax for these symbologies — it and
// the text after it are restored literally, in either mode, since matrix
// symbologies have no composite concept.
func generateMatrix(sym Symbology, linear, composite string, hasComposite bool) (string, *Error) {
	aiMode := NonAI
	if len(linear) > 0 && linear[0] == '^' {
		aiMode = AI
	}
	symID := LookupSymID(sym, aiMode)

	var body string
	if aiMode == AI {
		body = scancat(linear, true)
	} else {
		body = unescapeLeadingCaret(linear)
	}
	if hasComposite {
		body += "|" + composite
	}

	return "]" + symID + body, nil
}

// generateGS1_128LinearOnly handles the GS1-128 branch for the
// no-composite case: the wire identifier is the literal "C1" regardless
// of which GS1-128 variant (CC-A or CC-C) is stored on the context.
func generateGS1_128LinearOnly(linear string) (string, *Error) {
	if len(linear) == 0 || linear[0] != '^' {
		return "", NewError(ErrFailedToProcessScanData)
	}
	return "]C1" + scancat(linear, true), nil
}

// generateComposite handles the combined GS1-128-composite /
// DataBarExpanded branch: both emit "]e0" plus the linear AI body, with
// the composite (when present) appended, GS-separated only when the
// linear component's last AI is variable-length.
func generateComposite(symID, linear, composite string, hasComposite bool) (string, *Error) {
	if len(linear) == 0 || linear[0] != '^' {
		return "", NewError(ErrFailedToProcessScanData)
	}
	body := scancat(linear, true)

	if hasComposite {
		if len(composite) == 0 || composite[0] != '^' {
			return "", NewError(ErrFailedToProcessScanData)
		}
		if lastAIIsVariableLength(linear) {
			body += string([]byte{gs})
		}
		body += scancat(composite, true)
	}

	return "]" + symID + body, nil
}

// generateDataBar handles the DataBar-family (non-Expanded) branch: a
// normalised 14-digit GTIN, with DataBarLimited additionally
// capped below 2×10^13 (its documented value ceiling), and the composite
// appended with no GS separator.
func (ctx *Context) generateDataBar(linear, composite string, hasComposite bool) (string, *Error) {
	primaryIn := strings.TrimPrefix(linear, "^01")

	normalised, err := CheckAndNormalisePrimaryData(primaryIn, 14, ctx.AddCheckDigit)
	if err != nil {
		return "", err
	}
	if ctx.Sym == SymDataBarLimited && len(normalised) > 0 && normalised[0] >= '2' {
		return "", NewError(ErrPrimaryDataTooLarge)
	}

	body := "01" + normalised
	if hasComposite {
		if len(composite) == 0 || composite[0] != '^' {
			return "", NewError(ErrFailedToProcessScanData)
		}
		body += scancat(composite, true)
	}

	return "]" + ccSymID + body, nil
}

// generateEANUPC handles the EAN/UPC branch: the primary is normalised
// to the symbology's fixed digit count (skipping any leading
// zero-padding left over from an AI-01-prefixed input), UPC-A and UPC-E
// are emitted with a leading '0' so the wire primary is 13 digits, and a composite,
// if present, is appended as a new logical message introduced by its own
// symbology identifier.
func (ctx *Context) generateEANUPC(linear, composite string, hasComposite bool) (string, *Error) {
	expectedLen := map[Symbology]int{
		SymEAN13: 13,
		SymEAN8:  8,
		SymUPCA:  12,
		SymUPCE:  12,
	}[ctx.Sym]

	primaryIn := linear
	if strings.HasPrefix(primaryIn, "^01") {
		primaryIn = primaryIn[3:]
		if len(primaryIn) > expectedLen {
			primaryIn = primaryIn[len(primaryIn)-expectedLen:]
		}
	}

	normalised, err := CheckAndNormalisePrimaryData(primaryIn, expectedLen, ctx.AddCheckDigit)
	if err != nil {
		return "", err
	}

	symID := LookupSymID(ctx.Sym, NonAI)
	out := "]" + symID
	if ctx.Sym == SymUPCA || ctx.Sym == SymUPCE {
		out += "0"
	}
	out += normalised

	if hasComposite {
		if len(composite) == 0 || composite[0] != '^' {
			return "", NewError(ErrFailedToProcessScanData)
		}
		out += "|]" + ccSymID + scancat(composite, true)
	}

	return out, nil
}
