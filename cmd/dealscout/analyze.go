package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/dealscout"
	"github.com/fwojciec/dealscout/analyze"
)

type analyzeOutput struct {
	URL         string                    `json:"url"`
	Fingerprint string                    `json:"fingerprint,omitempty"`
	Result      *dealscout.AnalysisResult `json:"result"`
}

// Run executes the analyze command. Results are printed as one JSON
// object per URL in the order the URLs were given.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	results, err := analyze.AnalyzeAll(deps.Ctx, deps.Analyzer, c.URLs, c.Concurrency)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")

	for i, result := range results {
		fp := analyze.Fingerprint(result)

		if c.Save && !result.Failed() {
			rec := &dealscout.SearchRecord{
				URL:         c.URLs[i],
				ProductInfo: result.ProductInfo,
				Fingerprint: fp,
			}
			if err := deps.Searches.CreateSearch(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
				return err
			}
		}

		out := analyzeOutput{URL: c.URLs[i], Result: result}
		if c.Fingerprint {
			out.Fingerprint = fp
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}

	return nil
}
