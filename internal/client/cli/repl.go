package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Upload(ctx context.Context, paths []string) error
	Files(ctx context.Context) error
	File(ctx context.Context, fileID string) error
	Remove(ctx context.Context, fileID string) error
	Fetch(ctx context.Context, fileID string) error
	CreateTask(ctx context.Context, args []string) error
	Tasks(ctx context.Context) error
	TaskStatus(ctx context.Context, taskID string) error
	Watch(ctx context.Context, taskID string) error
	Cancel(ctx context.Context, taskID string) error
	Retry(ctx context.Context, taskID string) error
	Results(ctx context.Context, taskID string) error
	Preview(ctx context.Context, taskID, resultID string) error
	Save(ctx context.Context, taskID, resultID string) error
	SaveAll(ctx context.Context, taskID string) error
	Session(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the docproc CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//   - help                       — show available commands
//   - upload <path ...>          — upload one or more local files
//   - files                      — list files in the current session
//   - file <file-id>             — show a single file record
//   - rm <file-id>               — delete a file
//   - fetch <file-id>            — download a file to the output directory
//   - task [type] <file-id ...>  — create a processing task (type defaults to full)
//   - tasks                      — list tasks in the current session
//   - status <task-id>           — show one task record
//   - watch <task-id>            — poll a task until it reaches a terminal state
//   - cancel <task-id>           — request task cancellation
//   - retry <task-id>            — retry a failed task
//   - results <task-id>          — list results of a task
//   - preview <task-id> <result-id> — print a textual preview of one result
//   - save <task-id> <result-id> — save one result to the output directory
//   - saveall <task-id>          — save all results as one archive
//   - session                    — show a summary of the current session
//   - exit | quit                — leave the program
//
// Any errors returned by command handlers are reported to the user and the
// loop continues. This keeps the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("docproc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			printlnFn("Available commands: upload, files, file, rm, fetch, task, tasks, status, watch, cancel, retry, results, preview, save, saveall, session, exit")

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path ...>")
				continue
			}
			err = a.Upload(ctx, args)

		case "files":
			err = a.Files(ctx)

		case "file":
			if len(args) != 1 {
				printlnFn("Usage: file <file-id>")
				continue
			}
			err = a.File(ctx, args[0])

		case "rm":
			if len(args) != 1 {
				printlnFn("Usage: rm <file-id>")
				continue
			}
			err = a.Remove(ctx, args[0])

		case "fetch":
			if len(args) != 1 {
				printlnFn("Usage: fetch <file-id>")
				continue
			}
			err = a.Fetch(ctx, args[0])

		case "task":
			if len(args) == 0 {
				printlnFn("Usage: task [type] <file-id ...>")
				continue
			}
			err = a.CreateTask(ctx, args)

		case "tasks":
			err = a.Tasks(ctx)

		case "status":
			if len(args) != 1 {
				printlnFn("Usage: status <task-id>")
				continue
			}
			err = a.TaskStatus(ctx, args[0])

		case "watch":
			if len(args) != 1 {
				printlnFn("Usage: watch <task-id>")
				continue
			}
			err = a.Watch(ctx, args[0])

		case "cancel":
			if len(args) != 1 {
				printlnFn("Usage: cancel <task-id>")
				continue
			}
			err = a.Cancel(ctx, args[0])

		case "retry":
			if len(args) != 1 {
				printlnFn("Usage: retry <task-id>")
				continue
			}
			err = a.Retry(ctx, args[0])

		case "results":
			if len(args) != 1 {
				printlnFn("Usage: results <task-id>")
				continue
			}
			err = a.Results(ctx, args[0])

		case "preview":
			if len(args) != 2 {
				printlnFn("Usage: preview <task-id> <result-id>")
				continue
			}
			err = a.Preview(ctx, args[0], args[1])

		case "save":
			if len(args) != 2 {
				printlnFn("Usage: save <task-id> <result-id>")
				continue
			}
			err = a.Save(ctx, args[0], args[1])

		case "saveall":
			if len(args) != 1 {
				printlnFn("Usage: saveall <task-id>")
				continue
			}
			err = a.SaveAll(ctx, args[0])

		case "session":
			err = a.Session(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
