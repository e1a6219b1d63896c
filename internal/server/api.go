package server

import (
	"github.com/Decentr-net/socialdistribution/internal/activity"
	"github.com/Decentr-net/socialdistribution/internal/entities"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// SignupRequest ...
// swagger:model
type SignupRequest struct {
	Username  string `json:"username"`
	Github    string `json:"github"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ...
// swagger:model
type LoginResponse struct {
	// Bearer token, should be passed in Authorization header.
	Token  string                 `json:"token"`
	Author activity.AuthorDetails `json:"author"`
}

// UpdateAuthorRequest contains profile fields to be changed, omitted fields stay the same.
// swagger:model
type UpdateAuthorRequest struct {
	DisplayName  *string `json:"displayName"`
	Github       *string `json:"github"`
	ProfileImage *string `json:"profileImage"`
	Bio          *string `json:"bio"`
}

// PostRequest ...
// swagger:model
type PostRequest struct {
	Title       string              `json:"title"`
	Source      string              `json:"source"`
	Origin      string              `json:"origin"`
	Description string              `json:"description"`
	ContentType string              `json:"contentType"`
	Content     string              `json:"content"`
	Categories  string              `json:"categories"`
	Visibility  entities.Visibility `json:"visibility"`
	Unlisted    bool                `json:"unlisted"`
}

// UpdatePostRequest contains post fields to be changed, omitted fields stay the same.
// swagger:model
type UpdatePostRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	ContentType *string              `json:"contentType"`
	Content     *string              `json:"content"`
	Categories  *string              `json:"categories"`
	Visibility  *entities.Visibility `json:"visibility"`
	Unlisted    *bool                `json:"unlisted"`
}

// CommentRequest ...
// swagger:model
type CommentRequest struct {
	Comment     string `json:"comment"`
	ContentType string `json:"contentType"`
}

// LikeResponse ...
// swagger:model
type LikeResponse struct {
	Liked bool `json:"liked"`
}

func authorDetails(a *entities.Author) activity.AuthorDetails {
	return activity.AuthorDetails{
		Author: activity.FromAuthor(a),
		Bio:    a.Bio,
	}
}

func (p PostRequest) toPost() *entities.Post {
	return &entities.Post{
		Title:       p.Title,
		Source:      p.Source,
		Origin:      p.Origin,
		Description: p.Description,
		ContentType: p.ContentType,
		Content:     p.Content,
		Categories:  p.Categories,
		Visibility:  p.Visibility,
		Unlisted:    p.Unlisted,
	}
}
