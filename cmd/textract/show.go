package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/textract"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if textract.ErrorCode(err) == textract.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'textract list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
		}
		return err
	}

	out := rec.Text
	if c.Body {
		out = rec.Body
	}
	fmt.Fprint(deps.Stdout, out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
