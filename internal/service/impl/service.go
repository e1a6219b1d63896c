// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/socialdistribution/internal/auth"
	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/events"
	"github.com/Decentr-net/socialdistribution/internal/federation"
	"github.com/Decentr-net/socialdistribution/internal/service"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// Config ...
type Config struct {
	// Host is written into local authors and used to build inbox addresses.
	Host string
	// BaseURL is a public url of the node, authors' urls are built from it.
	BaseURL string
	// AutoActivate makes new users active right after signup.
	AutoActivate bool
}

type srv struct {
	s   storage.Storage
	fed federation.Client
	pub events.Publisher
	cfg Config
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, fed federation.Client, pub events.Publisher, cfg Config) service.Service {
	return srv{
		s:   s,
		fed: fed,
		pub: pub,
		cfg: cfg,
		now: time.Now,
	}
}

func (s srv) Signup(ctx context.Context, p *service.SignupParams) (*entities.Author, error) {
	if err := validateSignup(p); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(p.Password1)
	if err != nil {
		return nil, err
	}

	user := entities.User{
		ID:           uuid.New(),
		Username:     p.Username,
		PasswordHash: hash,
		Active:       s.cfg.AutoActivate,
		CreatedAt:    s.now(),
	}

	id := uuid.New()
	author := entities.Author{
		ID:           id,
		UserID:       &user.ID,
		URL:          fmt.Sprintf("%s/authors/%s", strings.TrimSuffix(s.cfg.BaseURL, "/"), id),
		Host:         s.cfg.Host,
		DisplayName:  p.Username,
		Github:       p.Github,
		ProfileImage: entities.DefaultProfileImage,
	}

	if err := s.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.CreateUser(ctx, &user); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("%w: username already exists", service.ErrConflict)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		if err := s.CreateAuthor(ctx, &author); err != nil {
			return fmt.Errorf("failed to create author: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	log.WithField("author", author.ID).WithField("active", user.Active).Info("user signed up")

	return &author, nil
}

func (s srv) Login(ctx context.Context, username, password string) (*entities.Author, error) {
	user, err := s.s.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, service.ErrInactiveUser
	}

	author, err := s.s.GetAuthorByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return author, nil
}

func (s srv) ListAuthors(ctx context.Context, search string) ([]*entities.Author, error) {
	p := storage.ListAuthorsParams{}
	if search = strings.TrimSpace(search); search != "" {
		p.Search = &search
	}

	aa, err := s.s.ListAuthors(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return aa, nil
}

func (s srv) GetAuthor(ctx context.Context, id uuid.UUID) (*entities.Author, error) {
	a, err := s.s.GetAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return a, nil
}

func (s srv) GetAuthors(ctx context.Context, id ...uuid.UUID) ([]*entities.Author, error) {
	aa, err := s.s.GetAuthors(ctx, id...)
	if err != nil {
		return nil, fmt.Errorf("failed to get authors: %w", err)
	}

	return aa, nil
}

func (s srv) UpdateAuthor(ctx context.Context, requester, id uuid.UUID,
	p *service.UpdateAuthorParams) (*entities.Author, error) {
	if requester != id {
		return nil, fmt.Errorf("%w: only author can update profile", service.ErrForbidden)
	}

	a, err := s.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.DisplayName != nil {
		a.DisplayName = strings.TrimSpace(*p.DisplayName)
	}
	if p.Github != nil {
		a.Github = strings.TrimSpace(*p.Github)
	}
	if p.ProfileImage != nil {
		a.ProfileImage = strings.TrimSpace(*p.ProfileImage)
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}

	if err := validateAuthor(a); err != nil {
		return nil, err
	}

	if err := s.s.UpdateAuthor(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return a, nil
}

func (s srv) publish(ctx context.Context, t events.Type, actor, object uuid.UUID) {
	if err := s.pub.Publish(ctx, events.Event{
		Type:      t,
		Actor:     actor,
		Object:    object,
		Timestamp: s.now(),
	}); err != nil {
		log.WithError(err).WithField("type", t).Error("failed to publish event")
	}
}
