// Package headers provides an ordered collection of HTTP header name/value pairs.
// Pairs keep insertion order and duplicates are allowed, which matches how
// response headers arrive on the wire and how request headers are sent.
package headers
