package homework

import "context"

// Source fetches the raw homework-status body for everything changed since
// fromDate (seconds since epoch).
type Source interface {
	Fetch(ctx context.Context, fromDate int64) (any, error)
}
