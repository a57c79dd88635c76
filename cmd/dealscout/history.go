package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/dealscout"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Limit <= 0 {
		fmt.Fprintf(deps.Stderr, "error: limit must be positive\n")
		return dealscout.Errorf(dealscout.EINVALID, "limit must be positive")
	}

	searches, err := deps.Searches.FindSearches(deps.Ctx, dealscout.SearchFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
		return err
	}

	if len(searches) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches yet. Use 'dealscout analyze --save' or the API to record one.")
		return nil
	}

	for _, s := range searches {
		price := s.ProductInfo.Price
		if price == "" {
			price = dealscout.PriceNotAvailable
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			s.Timestamp.Local().Format(time.DateTime), s.ProductInfo.Name, price, s.URL)
	}

	return nil
}
