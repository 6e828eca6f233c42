package main

import (
	"fmt"

	"github.com/fwojciec/smartscrape"
)

// Run executes the models command.
func (c *ModelsCmd) Run(deps *Dependencies) error {
	for _, m := range smartscrape.Models() {
		if m == smartscrape.DefaultModel {
			fmt.Fprintf(deps.Stdout, "%s (default)\n", m)
			continue
		}
		fmt.Fprintln(deps.Stdout, m)
	}
	return nil
}
