// SPDX-License-Identifier: Apache-2.0

package dluri

// aiSpec describes enough about an AI for URI decomposition: its fixed
// value length (0 for variable-length, terminated by '^' or end of
// string) and, optionally, the GS1 Digital Link "short name" path
// component it may appear as instead of its numeric form.
type aiSpec struct {
	length int
	short  string
}

// aiTable is a deliberately small slice of the full GS1 AI dictionary —
// enough to exercise DL URI path/query decomposition and the primary vs.
// qualifier distinction, not a complete AI dictionary (see the
// airegistry package for that).
var aiTable = map[string]aiSpec{
	"00": {18, "sscc"},
	"01": {14, "gtin"},
	"10": {0, "lot"},
	"11": {6, "prodDate"},
	"17": {6, "exp"},
	"21": {0, "ser"},
	"22": {0, "cpv"},
	"90": {0, ""},
	"91": {0, ""},
	"92": {0, ""},
	"93": {0, ""},
	"94": {0, ""},
	"95": {0, ""},
	"96": {0, ""},
	"97": {0, ""},
	"98": {0, ""},
	"99": {0, ""},
	"8200": {0, "exturl"},
}

// shortNameTable is the reverse of aiTable's short names, built once at
// package init so GS1 Digital Link URIs using short path component names
// (e.g. "/gtin/…") dealias to their numeric AI.
var shortNameTable = func() map[string]string {
	m := make(map[string]string, len(aiTable))
	for ai, spec := range aiTable {
		if spec.short != "" {
			m[spec.short] = ai
		}
	}
	return m
}()

// resolveAI dealiases a path or query component to a numeric AI known to
// aiTable, or returns "" if it is neither a recognised numeric AI nor a
// recognised short name.
func resolveAI(component string) string {
	if _, ok := aiTable[component]; ok {
		return component
	}
	if ai, ok := shortNameTable[component]; ok {
		return ai
	}
	return ""
}

// isVariableLength reports whether ai's value is delimited rather than
// fixed-length.
func isVariableLength(ai string) bool {
	return aiTable[ai].length == 0
}

// isPrimaryAI reports whether ai is eligible to appear as a GS1 Digital
// Link URI's primary path identifier (a GTIN or an SSCC).
func isPrimaryAI(ai string) bool {
	return ai == "01" || ai == "00"
}

func matchAI(s string) (string, aiSpec, bool) {
	if len(s) >= 4 {
		if spec, ok := aiTable[s[:4]]; ok {
			return s[:4], spec, true
		}
	}
	if len(s) >= 2 {
		if spec, ok := aiTable[s[:2]]; ok {
			return s[:2], spec, true
		}
	}
	return "", aiSpec{}, false
}
