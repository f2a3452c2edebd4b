package filter

// RequestTarget is the part of the request headers the filter reads and rewrites.
// api.RequestHeaderMap satisfies it.
type RequestTarget interface {
	// Path returns the :path pseudo header, i.e. path and query.
	Path() string
	// SetPath replaces the :path pseudo header before the request is forwarded.
	SetPath(path string)
}
