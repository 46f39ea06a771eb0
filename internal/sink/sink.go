// Package sink holds the key-value media the task store persists to.
package sink

import "context"

// Sink is opaque get/set-by-key storage. Get reports ok=false when the key
// has never been written.
type Sink interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	Set(ctx context.Context, key, value string) error
}
