// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrInvalidRequest is returned when input doesn't pass validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrForbidden is returned when requester isn't allowed to perform an action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials ...
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInactiveUser is returned on login of a user which wasn't activated yet.
	ErrInactiveUser = errors.New("user is not active")
	// ErrConflict is returned when an entity already exists.
	ErrConflict = errors.New("conflict")
)

// Service ...
type Service interface {
	Signup(ctx context.Context, p *SignupParams) (*entities.Author, error)
	Login(ctx context.Context, username, password string) (*entities.Author, error)

	ListAuthors(ctx context.Context, search string) ([]*entities.Author, error)
	GetAuthor(ctx context.Context, id uuid.UUID) (*entities.Author, error)
	GetAuthors(ctx context.Context, id ...uuid.UUID) ([]*entities.Author, error)
	UpdateAuthor(ctx context.Context, requester, id uuid.UUID, p *UpdateAuthorParams) (*entities.Author, error)

	ListPosts(ctx context.Context, requester, authorID uuid.UUID) ([]*entities.Post, error)
	GetPost(ctx context.Context, requester, authorID, postID uuid.UUID) (*entities.Post, error)
	CreatePost(ctx context.Context, requester uuid.UUID, p *entities.Post) (*entities.Post, error)
	UpdatePost(ctx context.Context, requester, authorID, postID uuid.UUID, p *UpdatePostParams) (*entities.Post, error)
	DeletePost(ctx context.Context, requester, authorID, postID uuid.UUID) error

	ListComments(ctx context.Context, requester, authorID, postID uuid.UUID) ([]*entities.Comment, error)
	CreateComment(ctx context.Context, requester, authorID uuid.UUID, c *entities.Comment) (*entities.Comment, error)

	TogglePostLike(ctx context.Context, requester, authorID, postID uuid.UUID) (bool, error)
	ListPostLikes(ctx context.Context, requester, authorID, postID uuid.UUID) ([]*entities.PostLike, error)
	ToggleCommentLike(ctx context.Context, requester, authorID, postID, commentID uuid.UUID) (bool, error)
	ListCommentLikes(ctx context.Context, requester, authorID, postID, commentID uuid.UUID) ([]*entities.CommentLike, error)

	SendFollowRequest(ctx context.Context, follower, following uuid.UUID) (*entities.FollowRequest, error)
	ReceiveFollowRequest(ctx context.Context, following uuid.UUID, p *FollowParams) (*entities.FollowRequest, error)
	ListFollowRequests(ctx context.Context, following uuid.UUID) ([]*entities.FollowRequest, error)
	AcceptFollowRequest(ctx context.Context, requester, id uuid.UUID) error
	DeclineFollowRequest(ctx context.Context, requester, id uuid.UUID) error
	Unfollow(ctx context.Context, follower, following uuid.UUID) error

	ListFollowers(ctx context.Context, id uuid.UUID) ([]*entities.Author, error)
	GetFollower(ctx context.Context, id, followerID uuid.UUID) (*entities.Author, error)
	AddFollower(ctx context.Context, id, followerID uuid.UUID) error
	RemoveFollower(ctx context.Context, id, followerID uuid.UUID) error

	GetInbox(ctx context.Context, id uuid.UUID) (*entities.Author, []*entities.Post, error)
	DeliverToInbox(ctx context.Context, id uuid.UUID, p *entities.Post) error
	ClearInbox(ctx context.Context, requester, id uuid.UUID) error

	ListNodes(ctx context.Context) ([]*entities.Node, error)
	CreateNode(ctx context.Context, n *entities.Node) (*entities.Node, error)
	UpdateNode(ctx context.Context, n *entities.Node) (*entities.Node, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error
}

// SignupParams ...
type SignupParams struct {
	Username  string
	Github    string
	Password1 string
	Password2 string
}

// UpdateAuthorParams contains fields to be changed, nil means unchanged.
type UpdateAuthorParams struct {
	DisplayName  *string
	Github       *string
	ProfileImage *string
	Bio          *string
}

// UpdatePostParams contains fields to be changed, nil means unchanged.
type UpdatePostParams struct {
	Title       *string
	Description *string
	ContentType *string
	Content     *string
	Categories  *string
	Visibility  *entities.Visibility
	Unlisted    *bool
}

// FollowParams is a follow activity received from other node.
type FollowParams struct {
	Summary string
	Actor   *entities.Author
	Object  *entities.Author
}
