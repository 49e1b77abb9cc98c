package ports

import (
	"context"
	"fmt"
)

// SheetSourcePort returns the raw CSV export of the published sheet.
type SheetSourcePort interface {
	FetchCSV(ctx context.Context) (string, error)
}

// FetchError reports an unreachable upstream or a non-success status.
type FetchError struct {
	StatusCode int    // 0 when the request never got a response
	Status     string // HTTP status text
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Failed to fetch CSV: %v", e.Err)
	}
	return fmt.Sprintf("Failed to fetch CSV: %s", e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
