// Package engine provides the regex engine adapters behind the
// ports.Engine seam. The default backend compiles with Go's regexp package
// and is the only backend usable inside the sandboxed guest build. Native
// host builds may opt into the RE2 backend with the "re2" build tag:
//
//	go build -tags re2
//
// Both backends perform leftmost-first searches.
package engine
