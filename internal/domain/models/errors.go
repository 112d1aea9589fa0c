package models

import (
	"errors"
	"fmt"
)

// ErrEmptyBatch is returned by the aggregator when there are no results to
// summarize.
var ErrEmptyBatch = errors.New("empty batch: no results to summarize")

// UpstreamError wraps a failed or timed-out remote call made by a pipeline
// stage. The pipeline aborts at the failing stage.
type UpstreamError struct {
	Stage string
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("stage %s: upstream call failed: %v", e.Stage, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SchemaError reports a stage output that cannot be coerced into its
// declared typed field, e.g. a category outside the allowed set.
type SchemaError struct {
	Stage  string
	Field  string
	Value  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("stage %s: field %q: %s (got %q)", e.Stage, e.Field, e.Reason, e.Value)
}

// BatchTooLargeError rejects an oversize batch before any processing
// starts.
type BatchTooLargeError struct {
	Size  int
	Limit int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch of %d tickets exceeds limit of %d", e.Size, e.Limit)
}
