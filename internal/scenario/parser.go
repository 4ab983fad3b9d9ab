// Package scenario turns uploaded JSON blobs into bounded, well-formed
// candle series: structural validation, decoding and downsampling.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AlexGerus/dolf-charts/internal/model"
)

var (
	// ErrInvalidFormat means the JSON decoded fine but does not have the
	// scenario shape.
	ErrInvalidFormat = errors.New("Invalid scenario data format")

	// ErrReadFailed means the file bytes could not be read at all.
	ErrReadFailed = errors.New("Failed to read file")
)

// Parser converts raw upload bytes into normalized scenarios.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads one scenario file and returns the decoded dataset with its
// candle series already downsampled. Failures are all-or-nothing: a partial
// scenario is never returned.
//
// Three failure cases: the read itself fails (wraps ErrReadFailed), the bytes
// are not valid JSON (wraps the decode error), or the decoded value fails
// validation (wraps ErrInvalidFormat).
func (p *Parser) Parse(ctx context.Context, r io.Reader) (model.ScenarioData, error) {
	var data model.ScenarioData

	if err := ctx.Err(); err != nil {
		return data, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return data, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	// Decode generically first so validation sees the raw JSON shape, not
	// whatever the struct decoder silently zero-filled.
	var raw any
	if err := json.Unmarshal(content, &raw); err != nil {
		return data, fmt.Errorf("Failed to parse file: %w", err)
	}

	if !Validate(raw) {
		return data, ErrInvalidFormat
	}

	if err := json.Unmarshal(content, &data); err != nil {
		return data, fmt.Errorf("Failed to parse file: %w", err)
	}

	data.Candles = OptimizeCandles(data.Candles)
	return data, nil
}
