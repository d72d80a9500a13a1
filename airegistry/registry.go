// SPDX-License-Identifier: Apache-2.0

// Package airegistry is a small, intentionally non-exhaustive
// implementation of the gs1.AIProcessor collaborator. It knows a handful
// of Application Identifiers — enough to exercise the decoder's
// delegation contract and the encoder's composite-splicing rule — not
// the full GS1 AI dictionary.
package airegistry

import "fmt"

// Spec describes one Application Identifier's syntax: its fixed value
// length (0 for variable-length, '^'-terminated) and a human-readable
// title used only for documentation purposes by callers that want it.
type Spec struct {
	Length int
	Title  string
}

// registry is a name-keyed table built by Register calls, consulted by
// lookups, never mutated after init. An AI needs no behavior beyond its
// syntax, so the value is a plain Spec.
var registry = map[string]Spec{}

func init() {
	Register("00", Spec{18, "SSCC"})
	Register("01", Spec{14, "GTIN"})
	Register("10", Spec{0, "BATCH/LOT"})
	Register("11", Spec{6, "PROD DATE"})
	Register("17", Spec{6, "USE BY OR EXPIRY"})
	Register("21", Spec{0, "SERIAL"})
	Register("22", Spec{0, "CPV"})
	Register("90", Spec{0, "INTERNAL"})
	Register("91", Spec{0, "INTERNAL"})
	Register("92", Spec{0, "INTERNAL"})
	Register("93", Spec{0, "INTERNAL"})
	Register("94", Spec{0, "INTERNAL"})
	Register("95", Spec{0, "INTERNAL"})
	Register("96", Spec{0, "INTERNAL"})
	Register("97", Spec{0, "INTERNAL"})
	Register("98", Spec{0, "INTERNAL"})
	Register("99", Spec{0, "INTERNAL"})
}

// Register adds an AI to the registry. It panics on a duplicate key
// rather than silently overwriting it.
func Register(ai string, spec Spec) {
	if _, ok := registry[ai]; ok {
		panic("airegistry: AI " + ai + " is already registered")
	}
	registry[ai] = spec
}

// IsRegistered reports whether ai is a known Application Identifier.
func IsRegistered(ai string) bool {
	_, ok := registry[ai]
	return ok
}

// lookup finds the Spec matching the start of s, trying progressively
// shorter AI tag lengths (GS1 AIs are 2 to 4 digits), longest match
// first so that, e.g., a registered 4-digit AI is not shadowed by a
// registered 2-digit prefix of it.
func lookup(s string) (ai string, spec Spec, ok bool) {
	for n := 4; n >= 2; n-- {
		if len(s) < n {
			continue
		}
		if sp, found := registry[s[:n]]; found {
			return s[:n], sp, true
		}
	}
	return "", Spec{}, false
}

// unknownAISpec is used when PermitUnknownAIs accepts an AI this
// registry has no Spec for: its tag length is guessed as the GS1 default
// of two digits and its value is treated as variable-length, mirroring
// how a real implementation would fall back to the least assumptive
// parse for data it cannot validate.
func unknownAISpec(s string) (string, Spec) {
	n := 2
	if len(s) < n {
		n = len(s)
	}
	return s[:n], Spec{0, "UNKNOWN"}
}

func formatUnknownAIError(ai string) error {
	return fmt.Errorf("airegistry: unrecognised AI %q", ai)
}
