package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/textract"
	"github.com/fwojciec/textract/batch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := textract.RecordFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'textract extract --save' to store one.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-11s  %8s  %s\n",
			r.ID, r.ExtractedAt.Format(time.DateTime), r.Backend,
			batch.FormatBytes(len(r.Text)), r.Source)
	}

	return nil
}
