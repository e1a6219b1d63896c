package postgres

import (
	"github.com/Decentr-net/socialdistribution/internal/entities"
)

func toAuthorDTO(a *entities.Author) authorDTO {
	return authorDTO{
		ID:           a.ID,
		UserID:       a.UserID,
		URL:          a.URL,
		Host:         a.Host,
		DisplayName:  a.DisplayName,
		Github:       a.Github,
		ProfileImage: a.ProfileImage,
		Bio:          a.Bio,
	}
}

func toAuthor(a *authorDTO) *entities.Author {
	return &entities.Author{
		ID:           a.ID,
		UserID:       a.UserID,
		URL:          a.URL,
		Host:         a.Host,
		DisplayName:  a.DisplayName,
		Github:       a.Github,
		ProfileImage: a.ProfileImage,
		Bio:          a.Bio,
	}
}

func toPostDTO(p *entities.Post) postDTO {
	return postDTO{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Source:      p.Source,
		Origin:      p.Origin,
		Description: p.Description,
		ContentType: p.ContentType,
		Content:     p.Content,
		Categories:  p.Categories,
		Count:       p.Count,
		Published:   p.Published.UTC(),
		Visibility:  string(p.Visibility),
		Unlisted:    p.Unlisted,
	}
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		Title:       p.Title,
		Source:      p.Source,
		Origin:      p.Origin,
		Description: p.Description,
		ContentType: p.ContentType,
		Content:     p.Content,
		Categories:  p.Categories,
		Count:       p.Count,
		Published:   p.Published.UTC(),
		Visibility:  entities.Visibility(p.Visibility),
		Unlisted:    p.Unlisted,
	}
}

func toComment(c *commentDTO) *entities.Comment {
	return &entities.Comment{
		ID:          c.ID,
		PostID:      c.PostID,
		AuthorID:    c.AuthorID,
		Comment:     c.Comment,
		ContentType: c.ContentType,
		Published:   c.Published.UTC(),
	}
}

func toPostLike(l *likeDTO) *entities.PostLike {
	return &entities.PostLike{
		ID:       l.ID,
		PostID:   l.TargetID,
		AuthorID: l.AuthorID,
		Context:  l.Context,
		Summary:  l.Summary,
	}
}

func toCommentLike(l *likeDTO) *entities.CommentLike {
	return &entities.CommentLike{
		ID:        l.ID,
		CommentID: l.TargetID,
		AuthorID:  l.AuthorID,
		Context:   l.Context,
		Summary:   l.Summary,
	}
}

func toFollowRequest(fr *followRequestDTO) *entities.FollowRequest {
	return &entities.FollowRequest{
		ID:          fr.ID,
		Summary:     fr.Summary,
		FollowerID:  fr.FollowerID,
		FollowingID: fr.FollowingID,
	}
}

func toNodeDTO(n *entities.Node) nodeDTO {
	return nodeDTO{
		ID:     n.ID,
		Name:   n.Name,
		APIURL: n.APIURL,
		Host:   n.Host,
	}
}

func toNode(n *nodeDTO) *entities.Node {
	return &entities.Node{
		ID:     n.ID,
		Name:   n.Name,
		APIURL: n.APIURL,
		Host:   n.Host,
	}
}
