package main

import (
	"fmt"

	"github.com/fwojciec/firmlist"
	"github.com/fwojciec/firmlist/batch"
)

// Config converts the flags into a firmlist.Config.
func (c *ExtractCmd) Config() firmlist.Config {
	inputs := c.Input
	if len(inputs) == 0 {
		inputs = firmlist.DefaultInputFiles()
	}
	return firmlist.Config{
		InputFiles:  inputs,
		MinRecords:  c.MinRecords,
		OutputPath:  c.Output,
		SourceURL:   c.SourceURL,
		RevenueYear: c.RevenueYear,
	}
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	writers := make([]firmlist.CompanyWriter, len(deps.Writers))
	for i, w := range deps.Writers {
		writers[i] = w.Writer
	}

	runner := &batch.Runner{
		Reader:    deps.Reader,
		Extractor: deps.Extractor,
		Writers:   writers,
		Config:    c.Config(),
		Stdout:    deps.Stdout,
	}

	result, err := runner.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", firmlist.ErrorMessage(err))
		return err
	}

	if deps.Logger != nil {
		deps.Logger.Info("export finished",
			"total", result.Total,
			"files", result.Files,
			"missing", len(result.Missing),
			"written", result.Written,
			"possible_duplicates", result.PossibleDuplicates,
		)
	}

	return nil
}
