// Package services implements the file, task and result lifecycle clients on
// top of the api transport.
//
// The services own the local side of each lifecycle: reading files off disk
// for upload, guarding task creation against an empty file selection,
// treating a repeated delete as success, and materializing downloads with
// filenames resolved from content-disposition headers. All server-side state
// stays server-authoritative; no service ever mutates a File or Task record
// locally beyond returning what the backend answered.
package services
