package impl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/events"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var inboxDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialdistribution_inbox_deliveries_total",
	Help: "Number of posts delivered into followers' inboxes",
}, []string{"target", "status"})

// onPostCreated copies the post into followers' inboxes. Delivery is best effort:
// failures are logged and never reported to the caller.
func (s srv) onPostCreated(ctx context.Context, author *entities.Author, p *entities.Post) {
	defer s.publish(ctx, events.PostCreated, author.ID, p.ID)

	followers, err := s.recipients(ctx, author, p)
	if err != nil {
		log.WithError(err).WithField("post", p.ID).Error("failed to get post recipients")
		return
	}

	var local []uuid.UUID
	var remote []*entities.Author

	for _, v := range followers {
		if v.IsRemote() {
			remote = append(remote, v)
		} else {
			local = append(local, v.ID)
		}
	}

	if len(local) > 0 {
		if err := s.s.AddToInbox(ctx, p.ID, local...); err != nil {
			log.WithError(err).WithField("post", p.ID).Error("failed to add post to inboxes")
			inboxDeliveries.WithLabelValues("local", "failed").Add(float64(len(local)))
		} else {
			inboxDeliveries.WithLabelValues("local", "ok").Add(float64(len(local)))
		}
	}

	for _, v := range remote {
		l := log.WithField("post", p.ID).WithField("follower", v.ID).WithField("host", v.Host)

		n, err := s.s.GetNodeByHost(ctx, v.Host)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				l.Warn("skip remote follower: node is not registered")
			} else {
				l.WithError(err).Error("failed to get node")
			}
			inboxDeliveries.WithLabelValues("remote", "skipped").Inc()
			continue
		}

		if err := s.fed.PushPost(ctx, n, v.ID, p); err != nil {
			l.WithError(err).Error("failed to push post to remote inbox")
			inboxDeliveries.WithLabelValues("remote", "failed").Inc()
			continue
		}

		inboxDeliveries.WithLabelValues("remote", "ok").Inc()
	}

	log.WithField("post", p.ID).WithField("local", len(local)).WithField("remote", len(remote)).
		Debug("post sent to stream inboxes")
}

// recipients returns followers allowed to see the post.
func (s srv) recipients(ctx context.Context, author *entities.Author, p *entities.Post) ([]*entities.Author, error) {
	switch p.Visibility {
	case entities.PublicVisibility, entities.FriendsOnlyVisibility:
	default:
		return nil, nil
	}

	followers, err := s.s.ListFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	if p.Visibility == entities.PublicVisibility {
		return followers, nil
	}

	following, err := s.s.ListFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]struct{}, len(following))
	for _, v := range following {
		m[v.ID] = struct{}{}
	}

	out := make([]*entities.Author, 0, len(followers))
	for _, v := range followers {
		if _, ok := m[v.ID]; ok {
			out = append(out, v)
		}
	}

	return out, nil
}
