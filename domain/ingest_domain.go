package domain

import (
	"errors"
)

var (
	MessageSuccessIngest = "batch ingested successfully"
	MessageFailedIngest  = "failed to ingest batch"

	ErrUnknownTable = errors.New("unknown ingestion table")
	ErrEmptyBatch   = errors.New("batch contains no data rows")
)

type (
	// IngestResult summarizes one accepted batch. A batch either loads
	// completely or not at all.
	IngestResult struct {
		BatchID  string `json:"batch_id"`
		Table    string `json:"table"`
		Inserted int    `json:"inserted"`
	}
)
