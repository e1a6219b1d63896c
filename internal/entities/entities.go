// Package entities contains main entities of service.
package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImage is used for authors without a profile image.
const DefaultProfileImage = "https://i.imgur.com/k7XVwpB.jpeg"

// Visibility ...
type Visibility string

const (
	// PublicVisibility ...
	PublicVisibility Visibility = "PUBLIC"
	// PrivateVisibility ...
	PrivateVisibility Visibility = "PRIVATE"
	// FriendsOnlyVisibility means the post is visible for mutual followers only.
	FriendsOnlyVisibility Visibility = "FRIENDS_ONLY"
)

// Valid ...
func (v Visibility) Valid() bool {
	switch v {
	case PublicVisibility, PrivateVisibility, FriendsOnlyVisibility:
		return true
	default:
		return false
	}
}

// User is an account which owns a local author.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	Active       bool
	CreatedAt    time.Time
}

// Author ...
type Author struct {
	ID           uuid.UUID
	UserID       *uuid.UUID // nil for authors synced from other nodes
	URL          string
	Host         string
	DisplayName  string
	Github       string
	ProfileImage string
	Bio          string
}

// IsRemote ...
func (a Author) IsRemote() bool {
	return a.UserID == nil
}

// StreamURL returns the author's address as used in inbox responses.
func (a Author) StreamURL() string {
	return fmt.Sprintf("http://%s/authors/%s", a.Host, a.ID)
}

// Post ...
type Post struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Source      string
	Origin      string
	Description string
	ContentType string
	Content     string
	Categories  string
	Count       int
	Published   time.Time
	Visibility  Visibility
	Unlisted    bool
}

// Comment ...
type Comment struct {
	ID          uuid.UUID
	PostID      uuid.UUID
	AuthorID    uuid.UUID
	Comment     string
	ContentType string
	Published   time.Time
}

// PostLike ...
type PostLike struct {
	ID       uuid.UUID
	PostID   uuid.UUID
	AuthorID uuid.UUID
	Context  string
	Summary  string
}

// CommentLike ...
type CommentLike struct {
	ID        uuid.UUID
	CommentID uuid.UUID
	AuthorID  uuid.UUID
	Context   string
	Summary   string
}

// FollowRequest is a pending follow edge, it is removed once accepted or declined.
type FollowRequest struct {
	ID          uuid.UUID
	Summary     string
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
}

// Node is a remote federation peer.
type Node struct {
	ID     uuid.UUID
	Name   string
	APIURL string
	Host   string
}
