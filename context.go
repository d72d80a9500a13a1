// SPDX-License-Identifier: Apache-2.0

package gs1

// MaxData bounds the length of any textual form this package accepts or
// produces: there are no growable buffers, every data buffer has a fixed
// ceiling. Scan-data bodies of MaxData bytes or more are rejected rather
// than truncated.
const MaxData = 2200

// AIRecord is one parsed Application Identifier, produced by an
// AIProcessor.
type AIRecord struct {
	AI    string
	Value string
	FNC1  bool // true if the AI is variable-length
}

// AIProcessor is the external collaborator contract for extracting AI
// element strings into structured AIRecords. The scan-data decoder
// invokes it once, after composing the AI element string, and treats any
// error it returns as a scan failure; it never inspects the resulting
// records itself.
//
// This package never implements AIProcessor itself; see the airegistry
// package for a working (intentionally small) collaborator.
type AIProcessor interface {
	ProcessAIData(ctx *Context, aiString string, extract bool) error
}

// Context is the mutable per-call state a caller threads through every
// operation in this package. A *Context must not be used concurrently
// from more than one goroutine; two Contexts are fully independent, and
// the package-level symbologyTable they both consult is immutable and
// safe to share.
type Context struct {
	Sym Symbology

	// DataStr is the canonical textual form. For AI mode it begins with
	// '^' (logical FNC1) and uses '^' as the AI separator; a '|' may
	// separate a linear component from a composite component, each half
	// independently AI-mode and beginning with '^'. For non-AI mode it
	// holds opaque data, with a leading literal '^' escaped as described
	// on escapeLeadingCaret.
	DataStr string

	// OutStr holds the most recent GenerateScanData result; callers that
	// inspect ctx.OutStr afterward see the same value GenerateScanData
	// returns directly.
	OutStr string

	// DLAIBuffer receives the AI element string extracted from a GS1
	// Digital Link URI carried in a plain-data scan.
	DLAIBuffer string

	AIData []AIRecord
	NumAIs int

	Err             ErrorCode
	ErrMsg          string
	LinterErr       error
	LinterErrMarkup string

	AddCheckDigit     bool
	PermitUnknownAIs  bool
	ValidationEnabled map[string]bool

	// AIProcessor is the injected AI-element-string parser collaborator.
	// ProcessScanData fails with ErrFailedToProcessScanData if this is nil
	// and an AI-mode scan is decoded.
	AIProcessor AIProcessor
}

// Option configures a Context at construction time via the
// functional-options pattern.
type Option func(*Context)

// WithAddCheckDigit causes primary-data validation to expect the check
// digit to be absent from the input; a '-' placeholder is put in its
// place instead of a computed digit.
func WithAddCheckDigit(enabled bool) Option {
	return func(c *Context) { c.AddCheckDigit = enabled }
}

// WithPermitUnknownAIs relaxes AI-element-string processing to accept AIs
// the injected AIProcessor does not recognise.
func WithPermitUnknownAIs(enabled bool) Option {
	return func(c *Context) { c.PermitUnknownAIs = enabled }
}

// WithValidation toggles a named validation kind (e.g. "checksums",
// "mutex-ais") the AIProcessor collaborator may consult.
func WithValidation(kind string, enabled bool) Option {
	return func(c *Context) { c.ValidationEnabled[kind] = enabled }
}

// WithAIProcessor injects the AI-element-string parser collaborator.
func WithAIProcessor(p AIProcessor) Option {
	return func(c *Context) { c.AIProcessor = p }
}

// NewContext builds a ready-to-use Context. Reuse the returned value
// across calls rather than constructing a fresh one per operation; it
// owns no resources that need explicit release.
func NewContext(opts ...Option) *Context {
	c := &Context{
		ValidationEnabled: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// reset clears per-call state at the start of ProcessScanData.
func (c *Context) reset() {
	c.Sym = SymNone
	c.DataStr = ""
	c.AIData = nil
	c.NumAIs = 0
	c.Err = NoError
	c.ErrMsg = ""
	c.LinterErr = nil
	c.LinterErrMarkup = ""
}

// fail records a decode failure and restores the invariant that a failed
// ProcessScanData leaves Sym=SymNone and DataStr empty. It always returns
// false so call sites can `return c.fail(err)`.
func (c *Context) fail(err *Error) bool {
	c.Sym = SymNone
	c.DataStr = ""
	c.Err = err.Code
	c.ErrMsg = err.Error()
	return false
}
