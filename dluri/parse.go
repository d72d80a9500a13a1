// SPDX-License-Identifier: Apache-2.0

package dluri

import (
	"fmt"
	"net/url"
	"strings"
)

type aiPair struct {
	ai    string
	value string
}

// Parse decomposes a GS1 Digital Link URI into the '^'-separated AI
// element string the scan-data decoder stores in Context.DLAIBuffer.
// Path segments come in (AI, value) pairs and are
// treated as primary identification data; query parameters that dealias
// to a known AI are treated as qualifiers or attributes. Query parameters
// that are not recognised AIs (e.g. "linkType") are ignored rather than
// rejected, matching real-world GS1 Digital Link URIs that mix GS1 and
// non-GS1 query parameters.
func Parse(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("dluri: %w", err)
	}

	pairs, err := pathPairs(u.Path)
	if err != nil {
		return "", err
	}

	queryPairs, err := queryPairs(u.RawQuery)
	if err != nil {
		return "", err
	}
	pairs = append(pairs, queryPairs...)

	if len(pairs) == 0 {
		return "", fmt.Errorf("dluri: no AI data found in URI")
	}

	var b strings.Builder
	b.WriteByte('^')
	for i, p := range pairs {
		b.WriteString(p.ai)
		b.WriteString(p.value)
		if isVariableLength(p.ai) && i != len(pairs)-1 {
			b.WriteByte('^')
		}
	}
	return b.String(), nil
}

func pathPairs(path string) ([]aiPair, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil, nil
	}
	segments := strings.Split(trimmed, "/")
	if len(segments)%2 != 0 {
		return nil, fmt.Errorf("dluri: path has an odd number of segments")
	}

	pairs := make([]aiPair, 0, len(segments)/2)
	for i := 0; i+1 < len(segments); i += 2 {
		ai := resolveAI(segments[i])
		if ai == "" {
			return nil, fmt.Errorf("dluri: unrecognised path component %q", segments[i])
		}
		pairs = append(pairs, aiPair{ai, segments[i+1]})
	}
	return pairs, nil
}

func queryPairs(rawQuery string) ([]aiPair, error) {
	if rawQuery == "" {
		return nil, nil
	}

	var pairs []aiPair
	for _, kv := range strings.Split(rawQuery, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		k, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("dluri: malformed query parameter %q: %w", kv, err)
		}
		v, err = url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("dluri: malformed query parameter %q: %w", kv, err)
		}

		ai := resolveAI(k)
		if ai == "" {
			continue
		}
		pairs = append(pairs, aiPair{ai, v})
	}
	return pairs, nil
}
