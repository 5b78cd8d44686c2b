package main

import (
	"fmt"

	wfhttp "github.com/fwojciec/wordfreq/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := wfhttp.NewServer()
	s.Addr = c.Addr
	s.Analyzer = deps.Analyzer
	s.Charts = deps.Charts
	s.Sessions = deps.Sessions
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}

	fmt.Fprintf(deps.Stdout, "Serving on %s\n", s.URL())
	deps.Logger.Info("server started", "addr", c.Addr, "port", s.Port())

	if err := s.Serve(deps.Ctx); err != nil {
		return err
	}
	deps.Logger.Info("server stopped")
	return nil
}
