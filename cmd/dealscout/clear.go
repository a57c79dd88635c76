package main

import (
	"fmt"

	"github.com/fwojciec/dealscout"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm clearing the history\n")
		return dealscout.Errorf(dealscout.EINVALID, "use --force to confirm clearing the history")
	}

	n, err := deps.Searches.DeleteSearches(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleared %d searches\n", n)
	return nil
}
