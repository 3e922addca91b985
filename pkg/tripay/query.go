package tripay

import (
	"net/url"
	"strings"
)

// query keeps parameters in insertion order. url.Values sorts keys, and
// Tripay's examples put code ahead of amount.
type query []param

type param struct {
	key   string
	value string
}

func (q *query) add(key, value string) {
	*q = append(*q, param{key: key, value: value})
}

func (q query) encode() string {
	parts := make([]string, 0, len(q))
	for _, p := range q {
		parts = append(parts, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

func buildURL(base, path string, q query) string {
	u := strings.TrimRight(base, "/") + path
	if len(q) > 0 {
		u += "?" + q.encode()
	}
	return u
}
