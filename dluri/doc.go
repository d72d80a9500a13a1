// SPDX-License-Identifier: Apache-2.0

// Package dluri implements the GS1 Digital Link URI collaborator:
// translating between an HTTP(S) URI that encodes AI data in its path
// and query, and the '^'-separated AI element string the core scan-data
// decoder expects.
//
// This package knows nothing about Context; the core calls Parse directly
// and stores the result in Context.DLAIBuffer itself — the scan-data
// decoder never inspects the AI buffer; it treats parse failure as scan
// failure.
//
// Its AI table is intentionally small — the full GS1 AI dictionary is the
// AIRegistry collaborator's job (see the airegistry package), not this
// one's. Parse and Generate only recognise the handful of AIs listed in
// aiTable.
package dluri
