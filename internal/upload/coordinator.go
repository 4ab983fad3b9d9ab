// Package upload enforces batch and capacity limits around scenario file
// uploads and feeds accepted scenarios into the store.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AlexGerus/dolf-charts/internal/model"
	"github.com/AlexGerus/dolf-charts/internal/scenario"
	"github.com/AlexGerus/dolf-charts/internal/store"
)

// MaxBatchFiles is the largest number of files accepted in one upload.
const MaxBatchFiles = 6

// ErrTooManyFiles is returned for a batch larger than MaxBatchFiles.
var ErrTooManyFiles = errors.New("Maximum 6 files can be uploaded at once")

// QuotaError reports a batch that would push the store past capacity.
// Remaining is how many scenarios may still be added.
type QuotaError struct {
	Remaining int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("Can only upload %d more scenario(s). Maximum is 6 total.", e.Remaining)
}

// File is one raw upload: a display name plus a lazily opened byte source.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Coordinator runs upload batches: quota checks, per-file parsing, then
// committing the whole batch to the store.
type Coordinator struct {
	parser *scenario.Parser
	store  *store.Store
	logger *logrus.Logger
}

// NewCoordinator creates a Coordinator around the given parser and store.
func NewCoordinator(parser *scenario.Parser, st *store.Store, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		parser: parser,
		store:  st,
		logger: logger,
	}
}

// HandleUpload processes one batch of files. Checks run in order:
//
//  1. the batch itself may not exceed 6 files;
//  2. the batch plus the current store contents may not exceed 6 scenarios;
//  3. every file must carry a .json name and parse cleanly.
//
// Parsing is all-or-nothing: the first bad file aborts the batch and nothing
// reaches the store. Once every file has parsed, scenarios are added in file
// order; a capacity failure during that phase halts further adds but leaves
// earlier adds in place.
func (c *Coordinator) HandleUpload(ctx context.Context, files []File) ([]model.ScenarioData, error) {
	if len(files) > MaxBatchFiles {
		return nil, ErrTooManyFiles
	}

	currentCount := c.store.Count()
	if currentCount+len(files) > store.MaxScenarios {
		return nil, &QuotaError{Remaining: store.MaxScenarios - currentCount}
	}

	scenarios := make([]model.ScenarioData, 0, len(files))
	for _, f := range files {
		if !strings.HasSuffix(f.Name, ".json") {
			return nil, fmt.Errorf("File %q is not a JSON file", f.Name)
		}

		data, err := c.parseFile(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse %q: %w", f.Name, err)
		}
		scenarios = append(scenarios, data)
	}

	for _, sc := range scenarios {
		if err := c.store.Add(sc); err != nil {
			return nil, err
		}
		c.logger.WithFields(logrus.Fields{
			"scenario": sc.Scenario,
			"symbol":   sc.Symbol,
			"candles":  len(sc.Candles),
		}).Info("Scenario added")
	}

	return scenarios, nil
}

func (c *Coordinator) parseFile(ctx context.Context, f File) (model.ScenarioData, error) {
	r, err := f.Open()
	if err != nil {
		return model.ScenarioData{}, fmt.Errorf("%w: %v", scenario.ErrReadFailed, err)
	}
	defer r.Close()

	return c.parser.Parse(ctx, r)
}
