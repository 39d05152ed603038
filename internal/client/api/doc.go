// Package api contains the client-side transport for the Fynd backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     backend surface the app consumes: login, registration, the student
//     directory, profile fragment updates, and media uploads.
//  2. A concrete net/http implementation (see HTTPClient) that attaches the
//     bearer token and a request id to every call, encodes fragment updates
//     as JSON and media as multipart form data, and maps HTTP statuses to
//     sentinel errors.
//
// # Error Handling
//
// Callers match conditions with errors.Is: ErrUnauthenticated (401/403),
// ErrServer (any other non-2xx), ErrNetwork (transport failure). No call is
// retried — a failed request surfaces immediately and the user resubmits.
package api
