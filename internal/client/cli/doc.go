// Package cli provides the interactive docproc command-line client.
//
// It wires configuration, the HTTP API client, the file/task/result services
// and the task status watcher into an interactive REPL. Typical flow: upload
// documents, create a processing task over them, watch it to completion, then
// preview or save the results.
//
// Key features:
//   - Upload / list / inspect / delete / fetch files
//   - Create, watch, cancel and retry processing tasks
//   - List, preview and save task results (singly or as one archive)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
