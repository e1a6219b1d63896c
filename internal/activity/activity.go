// Package activity contains JSON representations shared by the API and federation client.
package activity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/entities"
)

// Object types.
const (
	AuthorsType   = "authors"
	PostType      = "post"
	PostsType     = "posts"
	CommentType   = "comment"
	CommentsType  = "comments"
	LikeType      = "Like"
	LikesType     = "likes"
	FollowType    = "Follow"
	FollowersType = "followers"
	InboxType     = "inbox"
)

// Author ...
// swagger:model
type Author struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	Host         string    `json:"host"`
	DisplayName  string    `json:"displayName"`
	Github       string    `json:"github"`
	ProfileImage string    `json:"profileImage"`
}

// AuthorDetails is an author with profile fields returned by the single author endpoint.
// swagger:model
type AuthorDetails struct {
	Author
	Bio string `json:"bio"`
}

// Post ...
// swagger:model
type Post struct {
	Type        string              `json:"type"`
	Title       string              `json:"title"`
	ID          uuid.UUID           `json:"id"`
	Source      string              `json:"source"`
	Origin      string              `json:"origin"`
	Description string              `json:"description"`
	ContentType string              `json:"contentType"`
	Content     string              `json:"content"`
	Author      uuid.UUID           `json:"author"`
	Categories  string              `json:"categories"`
	Count       int                 `json:"count"`
	Published   time.Time           `json:"published"`
	Visibility  entities.Visibility `json:"visibility"`
	Unlisted    bool                `json:"unlisted"`
}

// Comment ...
// swagger:model
type Comment struct {
	Type        string    `json:"type"`
	ID          uuid.UUID `json:"id"`
	Post        uuid.UUID `json:"post"`
	Author      uuid.UUID `json:"author"`
	Comment     string    `json:"comment"`
	ContentType string    `json:"contentType"`
	Published   time.Time `json:"published"`
}

// Like ...
// swagger:model
type Like struct {
	Type    string    `json:"type"`
	ID      uuid.UUID `json:"id"`
	Context string    `json:"context"`
	Summary string    `json:"summary"`
	Author  uuid.UUID `json:"author"`
	Object  uuid.UUID `json:"object"`
}

// Follow is a follow request where actor wants to follow object.
// swagger:model
type Follow struct {
	Type    string  `json:"type"`
	Summary string  `json:"summary"`
	Actor   *Author `json:"actor"`
	Object  *Author `json:"object"`
}

// Node ...
// swagger:model
type Node struct {
	ID       uuid.UUID `json:"id"`
	NodeName string    `json:"nodeName"`
	APIURL   string    `json:"apiURL"`
	Host     string    `json:"host"`
}

// Collection is a typed list of items, e.g. {"type": "followers", "items": [...]}.
// swagger:model
type Collection struct {
	Type  string      `json:"type"`
	Items interface{} `json:"items"`
}

// AuthorsCollection is used for decoding remote authors lists.
type AuthorsCollection struct {
	Type  string   `json:"type"`
	Items []Author `json:"items"`
}

// Inbox ...
// swagger:model
type Inbox struct {
	Type   string `json:"type"`
	Author string `json:"author"`
	Items  []Post `json:"items"`
}

// FromAuthor ...
func FromAuthor(a *entities.Author) Author {
	return Author{
		ID:           a.ID,
		URL:          a.URL,
		Host:         a.Host,
		DisplayName:  a.DisplayName,
		Github:       a.Github,
		ProfileImage: a.ProfileImage,
	}
}

// FromAuthors ...
func FromAuthors(aa []*entities.Author) []Author {
	out := make([]Author, len(aa))
	for i, v := range aa {
		out[i] = FromAuthor(v)
	}

	return out
}

// ToAuthor returns remote author entity, user is never set.
func (a Author) ToAuthor() *entities.Author {
	return &entities.Author{
		ID:           a.ID,
		URL:          a.URL,
		Host:         a.Host,
		DisplayName:  a.DisplayName,
		Github:       a.Github,
		ProfileImage: a.ProfileImage,
	}
}

// FromPost ...
func FromPost(p *entities.Post) Post {
	return Post{
		Type:        PostType,
		Title:       p.Title,
		ID:          p.ID,
		Source:      p.Source,
		Origin:      p.Origin,
		Description: p.Description,
		ContentType: p.ContentType,
		Content:     p.Content,
		Author:      p.AuthorID,
		Categories:  p.Categories,
		Count:       p.Count,
		Published:   p.Published,
		Visibility:  p.Visibility,
		Unlisted:    p.Unlisted,
	}
}

// FromPosts ...
func FromPosts(pp []*entities.Post) []Post {
	out := make([]Post, len(pp))
	for i, v := range pp {
		out[i] = FromPost(v)
	}

	return out
}

// ToPost ...
func (p Post) ToPost() *entities.Post {
	return &entities.Post{
		ID:          p.ID,
		AuthorID:    p.Author,
		Title:       p.Title,
		Source:      p.Source,
		Origin:      p.Origin,
		Description: p.Description,
		ContentType: p.ContentType,
		Content:     p.Content,
		Categories:  p.Categories,
		Count:       p.Count,
		Published:   p.Published,
		Visibility:  p.Visibility,
		Unlisted:    p.Unlisted,
	}
}

// FromComments ...
func FromComments(cc []*entities.Comment) []Comment {
	out := make([]Comment, len(cc))
	for i, c := range cc {
		out[i] = FromComment(c)
	}

	return out
}

// FromComment ...
func FromComment(c *entities.Comment) Comment {
	return Comment{
		Type:        CommentType,
		ID:          c.ID,
		Post:        c.PostID,
		Author:      c.AuthorID,
		Comment:     c.Comment,
		ContentType: c.ContentType,
		Published:   c.Published,
	}
}

// FromPostLikes ...
func FromPostLikes(ll []*entities.PostLike) []Like {
	out := make([]Like, len(ll))
	for i, l := range ll {
		out[i] = Like{
			Type:    LikeType,
			ID:      l.ID,
			Context: l.Context,
			Summary: l.Summary,
			Author:  l.AuthorID,
			Object:  l.PostID,
		}
	}

	return out
}

// FromCommentLikes ...
func FromCommentLikes(ll []*entities.CommentLike) []Like {
	out := make([]Like, len(ll))
	for i, l := range ll {
		out[i] = Like{
			Type:    LikeType,
			ID:      l.ID,
			Context: l.Context,
			Summary: l.Summary,
			Author:  l.AuthorID,
			Object:  l.CommentID,
		}
	}

	return out
}

// FromNode ...
func FromNode(n *entities.Node) Node {
	return Node{
		ID:       n.ID,
		NodeName: n.Name,
		APIURL:   n.APIURL,
		Host:     n.Host,
	}
}

// FromNodes ...
func FromNodes(nn []*entities.Node) []Node {
	out := make([]Node, len(nn))
	for i, v := range nn {
		out[i] = FromNode(v)
	}

	return out
}

// ToNode ...
func (n Node) ToNode() *entities.Node {
	return &entities.Node{
		ID:     n.ID,
		Name:   n.NodeName,
		APIURL: n.APIURL,
		Host:   n.Host,
	}
}

// NewFollow builds follow object, authors dictionary should contain both follower and following.
func NewFollow(fr *entities.FollowRequest, authors map[uuid.UUID]*entities.Author) Follow {
	out := Follow{
		Type:    FollowType,
		Summary: fr.Summary,
	}

	if a, ok := authors[fr.FollowerID]; ok {
		v := FromAuthor(a)
		out.Actor = &v
	}

	if a, ok := authors[fr.FollowingID]; ok {
		v := FromAuthor(a)
		out.Object = &v
	}

	return out
}
