// Package cache defines the tag-aware read-through cache contract used for
// serialized API responses.
package cache

import "context"

// Producer builds the serialized value for a key on a cache miss. It is
// invoked at most once per GetOrPopulate call.
type Producer func(ctx context.Context) (string, error)

// Keys for list endpoints are fixed operation names; keys for single-item
// endpoints append the record id. Tags group every key written for one
// entity type so a mutation can drop them all at once.
const (
	TagBooklet        = "bookletCache"
	TagBookletPercent = "bookletPercentCache"
	TagCurrentAccount = "currentAccountCache"
	TagUser           = "userCache"
)

// TagCache is a read-through cache with tag-based bulk invalidation.
//
// GetOrPopulate returns the stored value for key when present; otherwise it
// invokes produce exactly once, stores the result under key tagged with
// tag, and returns it. Concurrent population of the same key is
// last-write-wins. Backend failures propagate to the caller; there is no
// silent fallback around a broken cache.
type TagCache interface {
	GetOrPopulate(ctx context.Context, key, tag string, produce Producer) (string, error)
	InvalidateTag(ctx context.Context, tag string) error
}
