package main

import (
	"fmt"

	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/discover"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	if c.URL != "" && c.Source != "" {
		fmt.Fprintf(deps.Stderr, "error: --url and --source are mutually exclusive\n")
		return warmline.Errorf(warmline.EINVALID, "--url and --source are mutually exclusive")
	}

	if c.URL != "" {
		result, err := deps.Pipeline.ProcessURL(deps.Ctx, c.URL, c.Tag, "")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
			return err
		}
		printResult(deps, c.URL, result)
		return nil
	}

	if c.Source != "" {
		source, err := deps.Sources.FindSourceByID(deps.Ctx, c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
			return err
		}
		result, err := deps.Pipeline.ProcessSource(deps.Ctx, source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
			return err
		}
		printResult(deps, source.URL, result)
		return nil
	}

	summary, err := deps.Pipeline.ProcessDue(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", warmline.ErrorMessage(err))
		return err
	}

	if summary.Sources == 0 {
		fmt.Fprintln(deps.Stdout, "No sources due for a check.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Checked %d sources: %d extracted, %d inserted, %d duplicates, %d errors\n",
		summary.Sources, summary.Extracted, summary.Inserted, summary.Skipped, summary.Errors)
	return nil
}

func printResult(deps *Dependencies, url string, result *discover.Result) {
	if result.Unchanged {
		fmt.Fprintf(deps.Stdout, "%s unchanged since last check\n", url)
		return
	}
	fmt.Fprintf(deps.Stdout, "%s: %d extracted, %d inserted, %d duplicates\n",
		url, result.Extracted, result.Inserted, result.Skipped)
}
