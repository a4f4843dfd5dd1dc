package main

import (
	"fmt"

	"github.com/fwojciec/textract"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return textract.Errorf(textract.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if textract.ErrorCode(err) == textract.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: extraction %q not found. Use 'textract list' to see stored extractions.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted extraction %s\n", c.ID)
	return nil
}
