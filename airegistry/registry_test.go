// SPDX-License-Identifier: Apache-2.0

package airegistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1-syntax/engine-go"
)

func TestIsRegistered(t *testing.T) {
	assert.True(t, IsRegistered("01"))
	assert.True(t, IsRegistered("99"))
	assert.False(t, IsRegistered("zz"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("01", Spec{14, "GTIN"})
	})
}

func TestProcessAIDataFixedAndVariable(t *testing.T) {
	ctx := gs1.NewContext(gs1.WithAIProcessor(Processor{}))

	err := (Processor{}).ProcessAIData(ctx, "^011231231231233310ABC123^99TESTING", true)
	require.NoError(t, err)
	require.Len(t, ctx.AIData, 3)

	assert.Equal(t, gs1.AIRecord{AI: "01", Value: "12312312312333", FNC1: false}, ctx.AIData[0])
	assert.Equal(t, gs1.AIRecord{AI: "10", Value: "ABC123", FNC1: true}, ctx.AIData[1])
	assert.Equal(t, gs1.AIRecord{AI: "99", Value: "TESTING", FNC1: true}, ctx.AIData[2])
	assert.Equal(t, 3, ctx.NumAIs)
}

func TestProcessAIDataUnknownAIRejected(t *testing.T) {
	ctx := gs1.NewContext(gs1.WithAIProcessor(Processor{}))
	err := (Processor{}).ProcessAIData(ctx, "^77UNKNOWN", true)
	assert.Error(t, err)
}

func TestProcessAIDataUnknownAIPermitted(t *testing.T) {
	ctx := gs1.NewContext(gs1.WithAIProcessor(Processor{}), gs1.WithPermitUnknownAIs(true))
	err := (Processor{}).ProcessAIData(ctx, "^77UNKNOWN", true)
	require.NoError(t, err)
	require.Len(t, ctx.AIData, 1)
	assert.Equal(t, "77", ctx.AIData[0].AI)
	assert.Equal(t, "UNKNOWN", ctx.AIData[0].Value)
}

func TestProcessAIDataEmptyFails(t *testing.T) {
	ctx := gs1.NewContext(gs1.WithAIProcessor(Processor{}))
	err := (Processor{}).ProcessAIData(ctx, "^", true)
	assert.Error(t, err)
}
