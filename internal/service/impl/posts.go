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

const defaultContentType = "text/plain"

func (s srv) ListPosts(ctx context.Context, requester, authorID uuid.UUID) ([]*entities.Post, error) {
	if _, err := s.GetAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	p := storage.ListPostsParams{
		AuthorID: &authorID,
	}

	if requester != authorID {
		p.Visibility = []entities.Visibility{entities.PublicVisibility}

		ok, err := s.areFriends(ctx, requester, authorID)
		if err != nil {
			return nil, err
		}
		if ok {
			p.Visibility = append(p.Visibility, entities.FriendsOnlyVisibility)
		}
	} else {
		p.IncludeUnlisted = true
	}

	pp, err := s.s.ListPosts(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return pp, nil
}

func (s srv) GetPost(ctx context.Context, requester, authorID, postID uuid.UUID) (*entities.Post, error) {
	return s.getVisiblePost(ctx, requester, authorID, postID)
}

func (s srv) CreatePost(ctx context.Context, requester uuid.UUID, p *entities.Post) (*entities.Post, error) {
	if requester != p.AuthorID {
		return nil, fmt.Errorf("%w: posts can be created by author only", service.ErrForbidden)
	}

	author, err := s.GetAuthor(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	post := *p
	s.fillPostDefaults(&post, author)

	if err := validatePost(&post); err != nil {
		return nil, err
	}

	if err := s.s.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: post already exists", service.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.onPostCreated(ctx, author, &post)

	return &post, nil
}

func (s srv) UpdatePost(ctx context.Context, requester, authorID, postID uuid.UUID,
	p *service.UpdatePostParams) (*entities.Post, error) {
	if requester != authorID {
		return nil, fmt.Errorf("%w: posts can be updated by author only", service.ErrForbidden)
	}

	post, err := s.getAuthorPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Description != nil {
		post.Description = *p.Description
	}
	if p.ContentType != nil {
		post.ContentType = *p.ContentType
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Categories != nil {
		post.Categories = *p.Categories
	}
	if p.Visibility != nil {
		post.Visibility = *p.Visibility
	}
	if p.Unlisted != nil {
		post.Unlisted = *p.Unlisted
	}

	if err := validatePost(post); err != nil {
		return nil, err
	}

	if err := s.s.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

func (s srv) DeletePost(ctx context.Context, requester, authorID, postID uuid.UUID) error {
	if requester != authorID {
		return fmt.Errorf("%w: posts can be deleted by author only", service.ErrForbidden)
	}

	if _, err := s.getAuthorPost(ctx, authorID, postID); err != nil {
		return err
	}

	if err := s.s.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.publish(ctx, events.PostDeleted, authorID, postID)

	return nil
}

func (s srv) ListComments(ctx context.Context, requester, authorID, postID uuid.UUID) ([]*entities.Comment, error) {
	if _, err := s.getVisiblePost(ctx, requester, authorID, postID); err != nil {
		return nil, err
	}

	cc, err := s.s.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return cc, nil
}

func (s srv) CreateComment(ctx context.Context, requester, authorID uuid.UUID,
	c *entities.Comment) (*entities.Comment, error) {
	if _, err := s.getVisiblePost(ctx, requester, authorID, c.PostID); err != nil {
		return nil, err
	}

	comment := entities.Comment{
		ID:          uuid.New(),
		PostID:      c.PostID,
		AuthorID:    requester,
		Comment:     c.Comment,
		ContentType: c.ContentType,
		Published:   s.now(),
	}
	if comment.ContentType == "" {
		comment.ContentType = defaultContentType
	}

	if err := validateComment(&comment); err != nil {
		return nil, err
	}

	if err := s.s.CreateComment(ctx, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.publish(ctx, events.Commented, requester, comment.PostID)

	return &comment, nil
}

func (s srv) TogglePostLike(ctx context.Context, requester, authorID, postID uuid.UUID) (bool, error) {
	post, err := s.getVisiblePost(ctx, requester, authorID, postID)
	if err != nil {
		return false, err
	}

	liker, err := s.GetAuthor(ctx, requester)
	if err != nil {
		return false, err
	}

	l, err := s.s.GetPostLike(ctx, postID, requester)
	switch {
	case err == nil:
		if err := s.s.DeletePostLike(ctx, l.ID); err != nil {
			return false, fmt.Errorf("failed to delete like: %w", err)
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
	default:
		return false, fmt.Errorf("failed to get like: %w", err)
	}

	if err := s.s.CreatePostLike(ctx, &entities.PostLike{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: requester,
		Context:  post.Source,
		Summary:  likeSummary(liker),
	}); err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	s.publish(ctx, events.Liked, requester, postID)

	return true, nil
}

func (s srv) ListPostLikes(ctx context.Context, requester, authorID, postID uuid.UUID) ([]*entities.PostLike, error) {
	if _, err := s.getVisiblePost(ctx, requester, authorID, postID); err != nil {
		return nil, err
	}

	ll, err := s.s.ListPostLikes(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return ll, nil
}

func (s srv) ToggleCommentLike(ctx context.Context, requester, authorID, postID, commentID uuid.UUID) (bool, error) {
	post, err := s.getVisiblePost(ctx, requester, authorID, postID)
	if err != nil {
		return false, err
	}

	if _, err := s.getPostComment(ctx, postID, commentID); err != nil {
		return false, err
	}

	liker, err := s.GetAuthor(ctx, requester)
	if err != nil {
		return false, err
	}

	l, err := s.s.GetCommentLike(ctx, commentID, requester)
	switch {
	case err == nil:
		if err := s.s.DeleteCommentLike(ctx, l.ID); err != nil {
			return false, fmt.Errorf("failed to delete like: %w", err)
		}
		return false, nil
	case errors.Is(err, storage.ErrNotFound):
	default:
		return false, fmt.Errorf("failed to get like: %w", err)
	}

	if err := s.s.CreateCommentLike(ctx, &entities.CommentLike{
		ID:        uuid.New(),
		CommentID: commentID,
		AuthorID:  requester,
		Context:   post.Source,
		Summary:   likeSummary(liker),
	}); err != nil {
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	s.publish(ctx, events.Liked, requester, commentID)

	return true, nil
}

func (s srv) ListCommentLikes(ctx context.Context, requester, authorID, postID,
	commentID uuid.UUID) ([]*entities.CommentLike, error) {
	if _, err := s.getVisiblePost(ctx, requester, authorID, postID); err != nil {
		return nil, err
	}

	if _, err := s.getPostComment(ctx, postID, commentID); err != nil {
		return nil, err
	}

	ll, err := s.s.ListCommentLikes(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	return ll, nil
}

func (s srv) fillPostDefaults(p *entities.Post, author *entities.Author) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Title == "" {
		p.Title = "Untitled"
	}
	if p.ContentType == "" {
		p.ContentType = defaultContentType
	}
	if p.Visibility == "" {
		p.Visibility = entities.PublicVisibility
	}
	if p.Source == "" {
		p.Source = author.URL
	}
	if p.Origin == "" {
		p.Origin = author.URL
	}
	if p.Published.IsZero() {
		p.Published = s.now()
	}
}

// getAuthorPost returns post only if it belongs to the author.
func (s srv) getAuthorPost(ctx context.Context, authorID, postID uuid.UUID) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if p.AuthorID != authorID {
		return nil, fmt.Errorf("failed to get post: %w", storage.ErrNotFound)
	}

	return p, nil
}

// getVisiblePost hides posts requester isn't allowed to see behind ErrNotFound.
func (s srv) getVisiblePost(ctx context.Context, requester, authorID, postID uuid.UUID) (*entities.Post, error) {
	p, err := s.getAuthorPost(ctx, authorID, postID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canSee(ctx, requester, p)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("failed to get post: %w", storage.ErrNotFound)
	}

	return p, nil
}

func (s srv) getPostComment(ctx context.Context, postID, commentID uuid.UUID) (*entities.Comment, error) {
	c, err := s.s.GetComment(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	if c.PostID != postID {
		return nil, fmt.Errorf("failed to get comment: %w", storage.ErrNotFound)
	}

	return c, nil
}

func (s srv) canSee(ctx context.Context, requester uuid.UUID, p *entities.Post) (bool, error) {
	if requester == p.AuthorID {
		return true, nil
	}

	switch p.Visibility {
	case entities.PublicVisibility:
		return true, nil
	case entities.FriendsOnlyVisibility:
		return s.areFriends(ctx, requester, p.AuthorID)
	default:
		return false, nil
	}
}

func (s srv) areFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	if a == uuid.Nil || b == uuid.Nil || a == b {
		return false, nil
	}

	for _, v := range [][2]uuid.UUID{{a, b}, {b, a}} {
		ok, err := s.s.IsFollowing(ctx, v[0], v[1])
		if err != nil {
			return false, fmt.Errorf("failed to check follow: %w", err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

func likeSummary(a *entities.Author) string {
	return fmt.Sprintf("%s likes this", a.DisplayName)
}
