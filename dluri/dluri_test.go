// SPDX-License-Identifier: Apache-2.0

package dluri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector7(t *testing.T) {
	ai, err := Parse("https://example.com/01/12312312312333?99=TEST")
	require.NoError(t, err)
	assert.Equal(t, "^011231231231233399TEST", ai)
}

func TestParseShortNamePathComponent(t *testing.T) {
	ai, err := Parse("https://id.gs1.org/gtin/12312312312333")
	require.NoError(t, err)
	assert.Equal(t, "^0112312312312333", ai)
}

func TestParseIgnoresNonAIQueryParameters(t *testing.T) {
	ai, err := Parse("https://example.com/01/12312312312333?linkType=pip&99=TEST")
	require.NoError(t, err)
	assert.Equal(t, "^011231231231233399TEST", ai)
}

func TestParseOddPathSegmentsRejected(t *testing.T) {
	_, err := Parse("https://example.com/01/12312312312333/10")
	assert.Error(t, err)
}

func TestParseUnrecognisedPathComponentRejected(t *testing.T) {
	_, err := Parse("https://example.com/zz/12312312312333")
	assert.Error(t, err)
}

func TestParseNoAIDataRejected(t *testing.T) {
	_, err := Parse("https://example.com/")
	assert.Error(t, err)
}

func TestGenerateRoundTripsWithParse(t *testing.T) {
	uri, err := Generate("^011231231231233310ABC123^99TESTING")
	require.NoError(t, err)
	assert.Equal(t, "https://id.gs1.org/01/12312312312333?10=ABC123&99=TESTING", uri)

	ai, err := Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "^011231231231233310ABC123^99TESTING", ai)
}

func TestGenerateWithHost(t *testing.T) {
	uri, err := Generate("^00123456789012345678", WithHost("https://example.com/"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/00/123456789012345678", uri)
}

func TestGenerateRequiresCaretPrefix(t *testing.T) {
	_, err := Generate("011231231231233310ABC123")
	assert.Error(t, err)
}

func TestGenerateRequiresPrimaryAI(t *testing.T) {
	_, err := Generate("^99TESTING")
	assert.Error(t, err)
}
