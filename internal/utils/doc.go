// Package utils provides small helpers shared across the application:
// safe integer conversions, header line parsing, content type checks
// and the User-Agent provider used for default request headers.
package utils
