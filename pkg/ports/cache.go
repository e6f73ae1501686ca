package ports

import (
	"context"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// TransformCache stores the results of pure transforms so that repeated bodies
// are not recomputed.
type TransformCache interface {
	// Get returns the cached transform of body in direction dir.
	// found is false on a miss; err is reserved for backend failures.
	Get(ctx context.Context, dir domain.Direction, body string) (out string, found bool, err error)

	// Put stores the transform of body in direction dir.
	Put(ctx context.Context, dir domain.Direction, body, out string) error
}
