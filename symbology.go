// SPDX-License-Identifier: Apache-2.0

package gs1

// Symbology is the closed enumeration of barcode types this engine
// understands.
type Symbology int

const (
	SymNone Symbology = iota
	SymEAN13
	SymEAN8
	SymUPCA
	SymUPCE
	SymGS1_128_CCA
	SymGS1_128_CCC
	SymDataBarOmni
	SymDataBarTruncated
	SymDataBarStacked
	SymDataBarStackedOmni
	SymDataBarLimited
	SymDataBarExpanded
	SymQR
	SymDM
	SymDotCode
)

func (s Symbology) String() string {
	switch s {
	case SymNone:
		return "NONE"
	case SymEAN13:
		return "EAN13"
	case SymEAN8:
		return "EAN8"
	case SymUPCA:
		return "UPCA"
	case SymUPCE:
		return "UPCE"
	case SymGS1_128_CCA:
		return "GS1_128_CCA"
	case SymGS1_128_CCC:
		return "GS1_128_CCC"
	case SymDataBarOmni:
		return "DataBarOmni"
	case SymDataBarTruncated:
		return "DataBarTruncated"
	case SymDataBarStacked:
		return "DataBarStacked"
	case SymDataBarStackedOmni:
		return "DataBarStackedOmni"
	case SymDataBarLimited:
		return "DataBarLimited"
	case SymDataBarExpanded:
		return "DataBarExpanded"
	case SymQR:
		return "QR"
	case SymDM:
		return "DM"
	case SymDotCode:
		return "DotCode"
	default:
		return "UNKNOWN"
	}
}

// AIMode distinguishes AI element-string data from opaque plain data.
type AIMode int

const (
	NonAI AIMode = iota
	AI
)

// symIDEntry is one row of the ordered symbology-identifier table. The
// table is scanned linearly; the first matching row wins for either
// lookup direction, so row order is load-bearing and must not be
// changed without changing the documented defaults.
type symIDEntry struct {
	symID  string
	aiMode AIMode
	sym    Symbology
}

// ccSymID is the two-byte symbology identifier used verbatim when a
// linear symbology's scan data is followed by a composite component.
const ccSymID = "e0"

// symbologyTable is the canonical table of symbology identifiers,
// reproduced verbatim and in order: 27 entries, never reordered and
// never converted to a map, since that would silently discard the
// intentional tie-break behavior where several rows share an identifier.
var symbologyTable = []symIDEntry{
	{"C1", AI, SymGS1_128_CCA},
	{"C1", AI, SymGS1_128_CCC},
	{"E0", NonAI, SymEAN13},
	{"E0", AI, SymEAN13},
	{"E0", NonAI, SymUPCA},
	{"E0", AI, SymUPCA},
	{"E0", NonAI, SymUPCE},
	{"E0", AI, SymUPCE},
	{"E4", NonAI, SymEAN8},
	{"E4", AI, SymEAN8},
	{ccSymID, AI, SymDataBarExpanded},
	{ccSymID, AI, SymDataBarOmni},
	{ccSymID, NonAI, SymDataBarOmni},
	{ccSymID, AI, SymDataBarTruncated},
	{ccSymID, NonAI, SymDataBarTruncated},
	{ccSymID, AI, SymDataBarStacked},
	{ccSymID, NonAI, SymDataBarStacked},
	{ccSymID, AI, SymDataBarStackedOmni},
	{ccSymID, NonAI, SymDataBarStackedOmni},
	{ccSymID, AI, SymDataBarLimited},
	{ccSymID, NonAI, SymDataBarLimited},
	{"d1", NonAI, SymDM},
	{"d2", AI, SymDM},
	{"Q1", NonAI, SymQR},
	{"Q3", AI, SymQR},
	{"J0", NonAI, SymDotCode},
	{"J1", AI, SymDotCode},
}

// LookupSymID returns the two-byte symbology identifier for sym in the
// given AI mode, scanning the table in order and returning the first
// match. It is a programmer error to call this with a (sym, mode) pair
// the table has no row for: every supported pair has at least one row,
// so callers that construct sym from data under their control should
// never hit the panic.
func LookupSymID(sym Symbology, mode AIMode) string {
	for _, e := range symbologyTable {
		if e.sym == sym && e.aiMode == mode {
			return e.symID
		}
	}
	panic("gs1: no symbology-identifier table row for " + sym.String())
}

// LookupSymAndMode returns the (Symbology, AIMode) pair registered for a
// two-byte symbology identifier, or (SymNone, NonAI) if none matches.
// The table is scanned in order, so where several symbologies share an
// identifier (e.g. "e0"), the first row's symbology is the decode-time
// default.
func LookupSymAndMode(symID string) (Symbology, AIMode) {
	for _, e := range symbologyTable {
		if e.symID == symID {
			return e.sym, e.aiMode
		}
	}
	return SymNone, NonAI
}
