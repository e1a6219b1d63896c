// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *entities.User) error
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)

	CreateAuthor(ctx context.Context, a *entities.Author) error
	UpsertRemoteAuthor(ctx context.Context, a *entities.Author) error
	UpdateAuthor(ctx context.Context, a *entities.Author) error
	GetAuthor(ctx context.Context, id uuid.UUID) (*entities.Author, error)
	GetAuthorByUserID(ctx context.Context, userID uuid.UUID) (*entities.Author, error)
	GetAuthors(ctx context.Context, id ...uuid.UUID) ([]*entities.Author, error)
	ListAuthors(ctx context.Context, p *ListAuthorsParams) ([]*entities.Author, error)

	Follow(ctx context.Context, follower, following uuid.UUID) error
	Unfollow(ctx context.Context, follower, following uuid.UUID) error
	IsFollowing(ctx context.Context, follower, following uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, id uuid.UUID) ([]*entities.Author, error)
	ListFollowing(ctx context.Context, id uuid.UUID) ([]*entities.Author, error)

	CreateFollowRequest(ctx context.Context, fr *entities.FollowRequest) error
	GetFollowRequest(ctx context.Context, id uuid.UUID) (*entities.FollowRequest, error)
	FollowRequestExists(ctx context.Context, follower, following uuid.UUID) (bool, error)
	ListFollowRequests(ctx context.Context, following uuid.UUID) ([]*entities.FollowRequest, error)
	DeleteFollowRequest(ctx context.Context, id uuid.UUID) error

	CreatePost(ctx context.Context, p *entities.Post) error
	UpdatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	AddToInbox(ctx context.Context, postID uuid.UUID, authorID ...uuid.UUID) error
	ListInbox(ctx context.Context, authorID uuid.UUID) ([]*entities.Post, error)
	ClearInbox(ctx context.Context, authorID uuid.UUID) error

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error)

	CreatePostLike(ctx context.Context, l *entities.PostLike) error
	GetPostLike(ctx context.Context, postID, authorID uuid.UUID) (*entities.PostLike, error)
	DeletePostLike(ctx context.Context, id uuid.UUID) error
	ListPostLikes(ctx context.Context, postID uuid.UUID) ([]*entities.PostLike, error)

	CreateCommentLike(ctx context.Context, l *entities.CommentLike) error
	GetCommentLike(ctx context.Context, commentID, authorID uuid.UUID) (*entities.CommentLike, error)
	DeleteCommentLike(ctx context.Context, id uuid.UUID) error
	ListCommentLikes(ctx context.Context, commentID uuid.UUID) ([]*entities.CommentLike, error)

	CreateNode(ctx context.Context, n *entities.Node) error
	UpdateNode(ctx context.Context, n *entities.Node) error
	GetNode(ctx context.Context, id uuid.UUID) (*entities.Node, error)
	GetNodeByHost(ctx context.Context, host string) (*entities.Node, error)
	ListNodes(ctx context.Context) ([]*entities.Node, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error
}

// ListAuthorsParams ...
type ListAuthorsParams struct {
	// Search filters authors by case-insensitive substring of display name.
	Search *string
}

// ListPostsParams ...
type ListPostsParams struct {
	AuthorID        *uuid.UUID
	Visibility      []entities.Visibility
	IncludeUnlisted bool
}
