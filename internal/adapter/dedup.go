// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"sort"
	"strings"

	"golang.org/x/sync/singleflight"
)

// inflightGroup coalesces concurrent identical idempotent calls into one
// network round trip. All callers receive the same outcome.
type inflightGroup struct {
	group singleflight.Group
}

func newInflightGroup() *inflightGroup {
	return &inflightGroup{}
}

// Do executes fn once per key: the first caller runs fn, later callers with
// the same key block until it finishes and then share its result.
func (g *inflightGroup) Do(key string, fn func() ([]byte, error)) ([]byte, error) {
	v, err, _ := g.group.Do(key, func() (any, error) {
		return fn()
	})

	body, _ := v.([]byte)
	return body, err
}

// dedupKey builds the identity of an idempotent call from its method, path
// and query parameters. Parameters are sorted so that map iteration order
// does not split identical calls.
func dedupKey(method, path string, query map[string]string) string {
	var b strings.Builder
	b.WriteString(method)
	b.WriteByte(' ')
	b.WriteString(path)

	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteByte('?')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(query[k])
		}
	}

	return b.String()
}
