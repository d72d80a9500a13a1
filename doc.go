// SPDX-License-Identifier: Apache-2.0

// Package gs1 implements the core of a GS1 barcode syntax engine: the
// bidirectional codec between scan data (the byte sequence a barcode
// scanner emits) and the internal AI element string, plus the primary-data
// (GTIN) validation and FNC1/GS escaping rules that codec depends on.
//
// The AI-element-string parser/linter and the GS1 Digital Link URI
// collaborator are deliberately kept outside this package (see
// sub-packages airegistry and dluri) and are consumed through the
// AIProcessor interface and the dluri package respectively.
package gs1
