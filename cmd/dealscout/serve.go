package main

import (
	"fmt"

	"github.com/fwojciec/dealscout"
	dealscouthttp "github.com/fwojciec/dealscout/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := dealscouthttp.NewServer()
	s.Addr = c.Addr
	s.Analyzer = deps.Analyzer
	s.SearchService = deps.Searches
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
		return err
	}
	s.Logger.Info("server started", "url", s.URL())

	<-deps.Ctx.Done()

	s.Logger.Info("shutting down server")
	if err := s.Close(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dealscout.ErrorMessage(err))
		return err
	}
	return nil
}
