package impl

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/service"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

func (s srv) GetInbox(ctx context.Context, id uuid.UUID) (*entities.Author, []*entities.Post, error) {
	a, err := s.GetAuthor(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	pp, err := s.s.ListInbox(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list inbox: %w", err)
	}

	return a, pp, nil
}

func (s srv) DeliverToInbox(ctx context.Context, id uuid.UUID, p *entities.Post) error {
	if _, err := s.GetAuthor(ctx, id); err != nil {
		return err
	}

	if p.ID == uuid.Nil || p.AuthorID == uuid.Nil {
		return fmt.Errorf("%w: post id and author are required", service.ErrInvalidRequest)
	}

	existing, err := s.s.GetPost(ctx, p.ID)
	switch {
	case err == nil:
		if existing.AuthorID != p.AuthorID {
			return fmt.Errorf("%w: post belongs to another author", service.ErrConflict)
		}
	case errors.Is(err, storage.ErrNotFound):
		author, err := s.s.GetAuthor(ctx, p.AuthorID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if author, err = s.fetchRemoteAuthor(ctx, p); err != nil {
				return err
			}
		case err != nil:
			return fmt.Errorf("failed to get post author: %w", err)
		}

		post := *p
		s.fillPostDefaults(&post, author)

		if err := validatePost(&post); err != nil {
			return err
		}

		if err := s.s.CreatePost(ctx, &post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
	default:
		return fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.s.AddToInbox(ctx, p.ID, id); err != nil {
		return fmt.Errorf("failed to add post to inbox: %w", err)
	}

	return nil
}

// fetchRemoteAuthor loads the author of a pushed post from the node registered for the post's origin host.
func (s srv) fetchRemoteAuthor(ctx context.Context, p *entities.Post) (*entities.Author, error) {
	host := postHost(p)
	if host == "" {
		return nil, fmt.Errorf("%w: unknown post author", service.ErrInvalidRequest)
	}

	n, err := s.s.GetNodeByHost(ctx, host)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown post author", service.ErrInvalidRequest)
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}

	aa, err := s.fed.ListAuthors(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors of %s: %w", n.Name, err)
	}

	for _, a := range aa {
		if a.ID != p.AuthorID {
			continue
		}

		if a.ProfileImage == "" {
			a.ProfileImage = entities.DefaultProfileImage
		}
		if err := s.s.UpsertRemoteAuthor(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to save remote author: %w", err)
		}

		return a, nil
	}

	return nil, fmt.Errorf("%w: unknown post author", service.ErrInvalidRequest)
}

func postHost(p *entities.Post) string {
	for _, v := range []string{p.Origin, p.Source} {
		if u, err := url.Parse(v); err == nil && u.Host != "" {
			return u.Host
		}
	}

	return ""
}

func (s srv) ClearInbox(ctx context.Context, requester, id uuid.UUID) error {
	if requester != id {
		return fmt.Errorf("%w: only owner can clear inbox", service.ErrForbidden)
	}

	if _, err := s.GetAuthor(ctx, id); err != nil {
		return err
	}

	if err := s.s.ClearInbox(ctx, id); err != nil {
		return fmt.Errorf("failed to clear inbox: %w", err)
	}

	return nil
}
