package filter

import (
	"net/url"
	"strings"

	"github.com/rashpile/go-envoy-query-rewrite/rewrite"
)

// QueryHelper provides methods for working with the query string of a request target
type QueryHelper struct{}

// NewQueryHelper creates a new query helper
func NewQueryHelper() *QueryHelper {
	return &QueryHelper{}
}

// SplitTarget splits a request target into path, query and fragment.
// The query is returned without its leading '?', the fragment keeps its '#'.
func (h *QueryHelper) SplitTarget(target string) (path, query, fragment string) {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target, fragment = target[:i], target[i:]
	}
	path, query, _ = strings.Cut(target, "?")
	return path, query, fragment
}

// ExtractQueryPairs parses the query parameters of a request target in order
func (h *QueryHelper) ExtractQueryPairs(target string) []rewrite.Pair {
	_, query, _ := h.SplitTarget(target)
	if query == "" {
		return nil
	}
	return h.parseQueryString(query)
}

// parseQueryString converts a query string into ordered pairs, keeping duplicates
func (h *QueryHelper) parseQueryString(query string) []rewrite.Pair {
	var pairs []rewrite.Pair
	for _, param := range strings.Split(query, "&") {
		// Skip empty parameters
		if param == "" {
			continue
		}
		name, value, _ := strings.Cut(param, "=")
		pairs = append(pairs, rewrite.Pair{
			Name:  decodeQueryComponent(name),
			Value: decodeQueryComponent(value),
		})
	}
	return pairs
}

// EncodeQueryPairs serializes pairs as application/x-www-form-urlencoded
func (h *QueryHelper) EncodeQueryPairs(pairs []rewrite.Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// RewriteTarget applies ops to the query of target. Path and fragment are
// kept verbatim; an empty resulting query drops the '?'.
func (h *QueryHelper) RewriteTarget(target string, ops *rewrite.OperationSet) (string, bool) {
	if ops.Len() == 0 {
		return target, false
	}

	path, query, fragment := h.SplitTarget(target)
	var pairs []rewrite.Pair
	if query != "" {
		pairs = h.parseQueryString(query)
	}
	pairs = rewrite.Transform(ops, pairs)

	rewritten := path
	if encoded := h.EncodeQueryPairs(pairs); encoded != "" {
		rewritten += "?" + encoded
	}
	rewritten += fragment

	return rewritten, rewritten != target
}

// decodeQueryComponent decodes '+' and percent escapes. Malformed escapes are
// kept as they are instead of failing the whole query.
func decodeQueryComponent(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
