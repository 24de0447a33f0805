// Package http implements the HTTP transport of the content node.
//
// It serves the endpoints peers call to read a user's clock status and the
// node version, and the sync mode endpoints used by the replica sync job.
// Request tracing, access logging and panic recovery are handled here before
// requests reach the service layer.
package http
