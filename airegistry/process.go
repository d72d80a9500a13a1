// SPDX-License-Identifier: Apache-2.0

package airegistry

import (
	"strings"

	"github.com/gs1-syntax/engine-go"
)

// Processor implements gs1.AIProcessor against this package's registry.
// A zero-value Processor is ready to use.
type Processor struct{}

// ProcessAIData walks a '^'-delimited AI element string, resolving each
// AI against the registry and appending a gs1.AIRecord to ctx.AIData for
// each one. It returns an error — which ProcessScanData will surface as
// the scan's failure — on the first AI it cannot resolve, unless
// ctx.PermitUnknownAIs is set, in which case unresolved AIs are recorded
// with a best-effort (2-digit tag, variable-length value) parse instead
// of aborting.
//
// extract is accepted to satisfy the gs1.AIProcessor signature; this
// registry does not distinguish extraction from validation-only
// processing.
func (Processor) ProcessAIData(ctx *gs1.Context, aiString string, extract bool) error {
	s := aiString
	if len(s) > 0 && s[0] == '^' {
		s = s[1:]
	}

	for len(s) > 0 {
		ai, spec, ok := lookup(s)
		if !ok {
			if !ctx.PermitUnknownAIs {
				return formatUnknownAIError(firstTag(s))
			}
			ai, spec = unknownAISpec(s)
		}

		rest := s[len(ai):]
		var value string
		if spec.Length > 0 {
			if len(rest) < spec.Length {
				return formatUnknownAIError(ai)
			}
			value, rest = rest[:spec.Length], rest[spec.Length:]
			rest = strings.TrimPrefix(rest, "^")
		} else if idx := strings.IndexByte(rest, '^'); idx >= 0 {
			value, rest = rest[:idx], rest[idx+1:]
		} else {
			value, rest = rest, ""
		}

		ctx.AIData = append(ctx.AIData, gs1.AIRecord{
			AI:    ai,
			Value: value,
			FNC1:  spec.Length == 0,
		})
		ctx.NumAIs++
		s = rest
	}

	if ctx.NumAIs == 0 {
		return formatUnknownAIError(aiString)
	}
	return nil
}

func firstTag(s string) string {
	n := 4
	if len(s) < n {
		n = len(s)
	}
	return s[:n]
}
