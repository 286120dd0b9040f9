package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mishra-anubhav/addrfind"
	"github.com/mishra-anubhav/addrfind/batch"
)

// runBatch reads the input dataset, processes every URL, and writes the
// result workbook.
func runBatch(ctx context.Context, cli *CLI, deps *Dependencies) error {
	dataset, err := deps.Reader.Read(cli.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %s", cli.Input, addrfind.ErrorMessage(err))
	}

	// The only batch-aborting condition: a structurally invalid dataset.
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("%s: %s", cli.Input, addrfind.ErrorMessage(err))
	}

	urls := dataset.URLs()
	fmt.Fprintf(deps.Stdout, "Processing %d URLs...\n", len(urls))

	runner := &batch.Runner{
		Processors:  deps.Processors,
		Concurrency: cli.Concurrency,
		Progress: func(p addrfind.Progress) {
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %s (eta %s)\n",
				p.Completed, p.Total, addrfind.Hostname(p.URL), p.Status, p.Remaining.Round(time.Second))
		},
	}
	result := runner.Run(ctx, urls)

	if err := deps.Writer.WriteResults(cli.Output, dataset, result); err != nil {
		return fmt.Errorf("writing %s: %w", cli.Output, err)
	}

	fmt.Fprintf(deps.Stdout, "Done: %d extracted, %d to check manually. Results in %s\n",
		result.SuccessCount(), result.FailureCount(), cli.Output)
	return nil
}
