// Package httpapi adapts the generic HTTP transport used by the device SDK layer
// to a step-wise HTTP client.
//
// An Adapter owns a single client slot. CreateConnection fills the slot on first use
// and rebinds the same client on later calls, so every Handle it returns for the
// lifetime of the adapter refers to the same client. ExecuteRequest drives one
// request/response exchange and copies the status, headers and body into
// caller-supplied containers. All operations are synchronous and serialized by the adapter.
package httpapi
