package dto

// BlockError records one block that could not be migrated. The block stays
// in place and is retried on the next run.
type BlockError struct {
	BlockID string `json:"blockId"`
	Title   string `json:"title,omitempty"`
	Stage   string `json:"stage"` // "convert", "upsert" or "delete"
	Reason  string `json:"reason"`
}

// MigrationReport is the accounting for one batch run.
type MigrationReport struct {
	ProcessedCount int          `json:"processedCount"`
	MigratedCount  int          `json:"migratedCount"`
	ErrorCount     int          `json:"errorCount"`
	PerBlockErrors []BlockError `json:"perBlockErrors"`
}

// EnqueuedResponse acknowledges an async migration request.
type EnqueuedResponse struct {
	TaskID string `json:"taskId"`
	Queue  string `json:"queue"`
}
