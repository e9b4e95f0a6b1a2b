// Command studyctl runs maintenance tasks against the study documents
// database: schema migrations, search reindexing and stale document cleanup.
// It is meant for operators and external cron jobs.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "studyctl:", err)
		os.Exit(1)
	}
}
