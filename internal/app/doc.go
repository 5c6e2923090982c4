// Package app wires configuration, transport and metrics together for the CLI commands.
// It sends one request through the HTTP transport adapter and prints the response.
package app
