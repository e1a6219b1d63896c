// Package consumer contains interface of background workers.
package consumer

import (
	"context"

	"github.com/Decentr-net/socialdistribution/internal/health"
)

// Consumer pulls data from outside into the storage until ctx is done.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
