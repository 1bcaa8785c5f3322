package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.sessionID == "" {
		return ""
	}
	// Session ids are long; the first block is enough to tell sessions apart.
	short := a.sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("(%s) ", short)
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to docproc CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
