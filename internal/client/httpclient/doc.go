// Package httpclient provides a step-wise HTTP/1.1 client in the shape of
// microcontroller HTTP libraries: a request is begun, its request line and
// header lines are sent one by one, the body is written, and the response is
// consumed as a status code, an iteration over header lines and a body read.
//
// The client keeps a single connection and can reuse it across requests when
// keep-alive is enabled. It is not safe for concurrent use.
package httpclient
