// SPDX-License-Identifier: Apache-2.0

package dluri

import (
	"fmt"
	"net/url"
	"strings"
)

// GenerateOptions holds Generate's optional parameters.
type GenerateOptions struct {
	Host string
}

// GenerateOption configures GenerateOptions via the functional-options
// pattern.
type GenerateOption func(*GenerateOptions)

// WithHost overrides the default "https://id.gs1.org" host used when
// generating a GS1 Digital Link URI.
func WithHost(host string) GenerateOption {
	return func(o *GenerateOptions) { o.Host = host }
}

// Generate is the inverse of Parse: given a '^'-separated AI element
// string, it produces a GS1 Digital Link URI with the primary
// identification AI (GTIN or SSCC) in the path and every other AI as a
// query parameter — a natural completion of the parser's contract, since
// GS1 Digital Link URIs are documented as round-trippable.
func Generate(aiString string, opts ...GenerateOption) (string, error) {
	o := GenerateOptions{Host: "https://id.gs1.org"}
	for _, opt := range opts {
		opt(&o)
	}

	if len(aiString) == 0 || aiString[0] != '^' {
		return "", fmt.Errorf("dluri: AI element string must start with '^'")
	}
	pairs, err := splitAIString(aiString[1:])
	if err != nil {
		return "", err
	}
	if len(pairs) == 0 {
		return "", fmt.Errorf("dluri: no AI data to encode")
	}

	var path strings.Builder
	var query []string
	primaryUsed := false
	for _, p := range pairs {
		if !primaryUsed && isPrimaryAI(p.ai) {
			path.WriteByte('/')
			path.WriteString(p.ai)
			path.WriteByte('/')
			path.WriteString(url.PathEscape(p.value))
			primaryUsed = true
			continue
		}
		query = append(query, p.ai+"="+url.QueryEscape(p.value))
	}
	if !primaryUsed {
		return "", fmt.Errorf("dluri: AI element string has no primary identification AI")
	}

	out := strings.TrimRight(o.Host, "/") + path.String()
	if len(query) > 0 {
		out += "?" + strings.Join(query, "&")
	}
	return out, nil
}

func splitAIString(s string) ([]aiPair, error) {
	var pairs []aiPair
	for len(s) > 0 {
		if s[0] == '^' {
			s = s[1:]
			continue
		}

		tag, spec, ok := matchAI(s)
		if !ok {
			return nil, fmt.Errorf("dluri: unrecognised AI at %q", s)
		}
		rest := s[len(tag):]

		var value string
		if spec.length > 0 {
			if len(rest) < spec.length {
				return nil, fmt.Errorf("dluri: AI %s value is shorter than %d digits", tag, spec.length)
			}
			value, rest = rest[:spec.length], rest[spec.length:]
		} else if idx := strings.IndexByte(rest, '^'); idx >= 0 {
			value, rest = rest[:idx], rest[idx:]
		} else {
			value, rest = rest, ""
		}

		pairs = append(pairs, aiPair{tag, value})
		s = rest
	}
	return pairs, nil
}
