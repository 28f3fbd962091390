// Package http implements the HTTP transport of the notes service.
//
// It wires the chi routes for /notes and /api-info, decodes and encodes notes
// as JSON and maps service outcomes to status codes. Request tracing, access
// logging and gzip compression are applied as middleware before requests
// reach the note service.
package http
