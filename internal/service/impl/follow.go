package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/events"
	"github.com/Decentr-net/socialdistribution/internal/service"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

func (s srv) SendFollowRequest(ctx context.Context, follower, following uuid.UUID) (*entities.FollowRequest, error) {
	if follower == following {
		return nil, fmt.Errorf("%w: author can not follow itself", service.ErrInvalidRequest)
	}

	target, err := s.GetAuthor(ctx, following)
	if err != nil {
		return nil, err
	}

	actor, err := s.GetAuthor(ctx, follower)
	if err != nil {
		return nil, err
	}

	exists, err := s.s.FollowRequestExists(ctx, follower, following)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow request: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: follow request already sent", service.ErrConflict)
	}

	ok, err := s.s.IsFollowing(ctx, follower, following)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow: %w", err)
	}
	if ok {
		return nil, fmt.Errorf("%w: already following", service.ErrConflict)
	}

	fr := entities.FollowRequest{
		ID:          uuid.New(),
		Summary:     fmt.Sprintf("%s wants to follow %s", actor.DisplayName, target.DisplayName),
		FollowerID:  follower,
		FollowingID: following,
	}

	if err := s.s.CreateFollowRequest(ctx, &fr); err != nil {
		return nil, fmt.Errorf("failed to create follow request: %w", err)
	}

	s.publish(ctx, events.FollowRequested, follower, following)

	return &fr, nil
}

func (s srv) ReceiveFollowRequest(ctx context.Context, following uuid.UUID,
	p *service.FollowParams) (*entities.FollowRequest, error) {
	if _, err := s.GetAuthor(ctx, following); err != nil {
		return nil, err
	}

	if err := validateFollow(p, following); err != nil {
		return nil, err
	}

	if _, err := s.s.GetAuthor(ctx, p.Actor.ID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to get actor: %w", err)
		}

		if p.Actor.Host == "" || p.Actor.DisplayName == "" {
			return nil, fmt.Errorf("%w: unknown actor", service.ErrInvalidRequest)
		}

		actor := *p.Actor
		actor.UserID = nil
		if actor.ProfileImage == "" {
			actor.ProfileImage = entities.DefaultProfileImage
		}

		if err := validateAuthor(&actor); err != nil {
			return nil, err
		}

		if err := s.s.UpsertRemoteAuthor(ctx, &actor); err != nil {
			return nil, fmt.Errorf("failed to save remote actor: %w", err)
		}
	}

	fr := entities.FollowRequest{
		ID:          uuid.New(),
		Summary:     p.Summary,
		FollowerID:  p.Actor.ID,
		FollowingID: following,
	}

	if err := s.s.CreateFollowRequest(ctx, &fr); err != nil {
		return nil, fmt.Errorf("failed to create follow request: %w", err)
	}

	s.publish(ctx, events.FollowRequested, fr.FollowerID, following)

	return &fr, nil
}

func (s srv) ListFollowRequests(ctx context.Context, following uuid.UUID) ([]*entities.FollowRequest, error) {
	if _, err := s.GetAuthor(ctx, following); err != nil {
		return nil, err
	}

	frs, err := s.s.ListFollowRequests(ctx, following)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow requests: %w", err)
	}

	return frs, nil
}

func (s srv) AcceptFollowRequest(ctx context.Context, requester, id uuid.UUID) error {
	fr, err := s.getOwnFollowRequest(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := s.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.Follow(ctx, fr.FollowerID, fr.FollowingID); err != nil {
			return fmt.Errorf("failed to follow: %w", err)
		}

		if err := s.DeleteFollowRequest(ctx, fr.ID); err != nil {
			return fmt.Errorf("failed to delete follow request: %w", err)
		}

		return nil
	}); err != nil {
		return err
	}

	s.publish(ctx, events.FollowAccepted, fr.FollowerID, fr.FollowingID)

	return nil
}

func (s srv) DeclineFollowRequest(ctx context.Context, requester, id uuid.UUID) error {
	fr, err := s.getOwnFollowRequest(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := s.s.DeleteFollowRequest(ctx, fr.ID); err != nil {
		return fmt.Errorf("failed to delete follow request: %w", err)
	}

	return nil
}

func (s srv) Unfollow(ctx context.Context, follower, following uuid.UUID) error {
	if _, err := s.GetAuthor(ctx, following); err != nil {
		return err
	}

	if err := s.s.Unfollow(ctx, follower, following); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

func (s srv) ListFollowers(ctx context.Context, id uuid.UUID) ([]*entities.Author, error) {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		return nil, err
	}

	aa, err := s.s.ListFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return aa, nil
}

func (s srv) GetFollower(ctx context.Context, id, followerID uuid.UUID) (*entities.Author, error) {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.s.IsFollowing(ctx, followerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("failed to get follower: %w", storage.ErrNotFound)
	}

	return s.GetAuthor(ctx, followerID)
}

func (s srv) AddFollower(ctx context.Context, id, followerID uuid.UUID) error {
	if id == followerID {
		return fmt.Errorf("%w: author can not follow itself", service.ErrInvalidRequest)
	}

	if _, err := s.GetAuthor(ctx, id); err != nil {
		return err
	}

	if _, err := s.GetAuthor(ctx, followerID); err != nil {
		return err
	}

	if err := s.s.Follow(ctx, followerID, id); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}

	return nil
}

func (s srv) RemoveFollower(ctx context.Context, id, followerID uuid.UUID) error {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		return err
	}

	if err := s.s.Unfollow(ctx, followerID, id); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}

	return nil
}

func (s srv) getOwnFollowRequest(ctx context.Context, requester, id uuid.UUID) (*entities.FollowRequest, error) {
	fr, err := s.s.GetFollowRequest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get follow request: %w", err)
	}

	if fr.FollowingID != requester {
		return nil, fmt.Errorf("%w: follow request is addressed to another author", service.ErrForbidden)
	}

	return fr, nil
}
