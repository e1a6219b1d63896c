// Package nodes contains consumer which copies authors of registered nodes into the storage.
package nodes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/socialdistribution/internal/consumer"
	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/federation"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var log = logrus.WithField("layer", "consumer").WithField("package", "nodes")

var syncedAuthors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialdistribution_node_sync_authors_total",
	Help: "Number of remote authors processed by node sync",
}, []string{"node", "status"})

// ErrNeverSynced is returned by Ping until the first sync completes.
var ErrNeverSynced = errors.New("nodes were never synced")

type syncer struct {
	s        storage.Storage
	fed      federation.Client
	interval time.Duration
	now      func() time.Time

	mu       *sync.RWMutex
	lastSync *time.Time
}

// Status ...
type Status struct {
	LastSync time.Time `json:"lastSync"`
}

// New returns consumer which syncs nodes every interval.
func New(s storage.Storage, fed federation.Client, interval time.Duration) consumer.Consumer {
	return syncer{
		s:        s,
		fed:      fed,
		interval: interval,
		now:      time.Now,
		mu:       &sync.RWMutex{},
		lastSync: new(time.Time),
	}
}

func (c syncer) Name() string {
	return "nodes"
}

func (c syncer) Ping(_ context.Context) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lastSync.IsZero() {
		return nil, ErrNeverSynced
	}

	return Status{LastSync: *c.lastSync}, nil
}

func (c syncer) Run(ctx context.Context) error {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		if err := c.sync(ctx); err != nil {
			log.WithError(err).Error("failed to sync nodes")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (c syncer) sync(ctx context.Context) error {
	nn, err := c.s.ListNodes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list nodes: %w", err)
	}

	for _, n := range nn {
		if ctx.Err() != nil {
			return nil
		}

		if err := c.syncNode(ctx, n); err != nil {
			log.WithError(err).WithField("node", n.Name).Error("failed to sync node")
		}
	}

	c.mu.Lock()
	*c.lastSync = c.now()
	c.mu.Unlock()

	return nil
}

func (c syncer) syncNode(ctx context.Context, n *entities.Node) error {
	aa, err := c.fed.ListAuthors(ctx, n)
	if err != nil {
		return err
	}

	var synced int
	for _, a := range aa {
		if a.DisplayName == "" {
			syncedAuthors.WithLabelValues(n.Name, "skipped").Inc()
			continue
		}
		if a.ProfileImage == "" {
			a.ProfileImage = entities.DefaultProfileImage
		}

		if err := c.s.UpsertRemoteAuthor(ctx, a); err != nil {
			log.WithError(err).WithField("node", n.Name).WithField("author", a.ID).Error("failed to save remote author")
			syncedAuthors.WithLabelValues(n.Name, "failed").Inc()
			continue
		}

		synced++
		syncedAuthors.WithLabelValues(n.Name, "ok").Inc()
	}

	log.WithField("node", n.Name).WithField("authors", synced).Debug("node synced")

	return nil
}
