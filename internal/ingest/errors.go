package ingest

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedFormat is returned when no detection rule matches the
// uploaded payload. It is fatal for the whole file; there is no partial
// processing of an unrecognized layout.
var ErrUnrecognizedFormat = errors.New("unrecognized file format")

// DecodeError wraps a failure to read the raw bytes at all (wrong
// encoding, corrupt archive, unsupported extension). It aborts the
// whole batch.
type DecodeError struct {
	Ext string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Ext, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SkippedRow records one row or block that was discarded during
// normalization or validation. Skips are accumulated into the batch
// summary and never abort the upload.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
