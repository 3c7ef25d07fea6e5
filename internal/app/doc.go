// Package app wires application dependencies for the CLI.
//
// Config is read from MIXGET_* environment variables, optionally seeded from
// a .env file. NewWire builds the HTTP client, the resilient remote client,
// the typed API, the model writer and the metrics recorder from it, and
// hands out export workers bound to them.
package app
