// Package api implements the REST transport for the docproc backend.
//
// # Overview
//
// The package provides:
//  1. A single shared Client constructed once at process start with explicit
//     configuration (base URL, default request timeout, extended upload
//     timeout) and passed by injection into the lifecycle services.
//  2. The three endpoint groups of the backend contract: file operations
//     (upload, get, list, delete, download), task operations (create, get,
//     list, cancel, retry) and result operations (list, preview, download one,
//     download all).
//  3. Envelope decoding: every JSON response arrives wrapped as
//     {success, message, data?, error_code?}; failures are surfaced as *Error
//     carrying the server's message and code.
//
// # Error Handling
//
// Connectivity and timeout failures are mapped to ErrUnavailable; unknown or
// deleted entities to ErrNotFound. Both are matched with errors.Is. A task in
// status "failed" is NOT an error from this package's perspective; it is a
// legitimate terminal state returned as data.
//
// Concurrency & Contexts
//
// The Client is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; a timeout surfaces as a transport
// failure and is never retried here.
package api
