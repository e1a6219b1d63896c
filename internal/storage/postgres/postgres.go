// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

type pg struct {
	ext sqlx.ExtContext
}

type userDTO struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash []byte    `db:"password_hash"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type authorDTO struct {
	ID           uuid.UUID  `db:"id"`
	UserID       *uuid.UUID `db:"user_id"`
	URL          string     `db:"url"`
	Host         string     `db:"host"`
	DisplayName  string     `db:"display_name"`
	Github       string     `db:"github"`
	ProfileImage string     `db:"profile_image"`
	Bio          string     `db:"bio"`
}

type postDTO struct {
	ID          uuid.UUID `db:"id"`
	AuthorID    uuid.UUID `db:"author_id"`
	Title       string    `db:"title"`
	Source      string    `db:"source"`
	Origin      string    `db:"origin"`
	Description string    `db:"description"`
	ContentType string    `db:"content_type"`
	Content     string    `db:"content"`
	Categories  string    `db:"categories"`
	Count       int       `db:"count"`
	Published   time.Time `db:"published"`
	Visibility  string    `db:"visibility"`
	Unlisted    bool      `db:"unlisted"`
}

type commentDTO struct {
	ID          uuid.UUID `db:"id"`
	PostID      uuid.UUID `db:"post_id"`
	AuthorID    uuid.UUID `db:"author_id"`
	Comment     string    `db:"comment"`
	ContentType string    `db:"content_type"`
	Published   time.Time `db:"published"`
}

type likeDTO struct {
	ID       uuid.UUID `db:"id"`
	TargetID uuid.UUID `db:"target_id"`
	AuthorID uuid.UUID `db:"author_id"`
	Context  string    `db:"context"`
	Summary  string    `db:"summary"`
}

type followRequestDTO struct {
	ID          uuid.UUID `db:"id"`
	Summary     string    `db:"summary"`
	FollowerID  uuid.UUID `db:"follower_id"`
	FollowingID uuid.UUID `db:"following_id"`
}

type nodeDTO struct {
	ID     uuid.UUID `db:"id"`
	Name   string    `db:"node_name"`
	APIURL string    `db:"api_url"`
	Host   string    `db:"host"`
}

const (
	authorColumns = `author.id, author.user_id, author.url, author.host, author.display_name, author.github,
		author.profile_image, author.bio`
	postColumns = `post.id, post.author_id, post.title, post.source, post.origin, post.description,
		post.content_type, post.content, post.categories, post.count, post.published, post.visibility, post.unlisted`
)

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	if _, err := s.ext.ExecContext(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) CreateUser(ctx context.Context, u *entities.User) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO app_user(id, username, password_hash, active, created_at)
			VALUES(:id, :username, :password_hash, :active, :created_at)
		`, userDTO{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			Active:       u.Active,
			CreatedAt:    u.CreatedAt.UTC(),
		},
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u userDTO

	if err := sqlx.GetContext(ctx, s.ext, &u, `
			SELECT id, username, password_hash, active, created_at FROM app_user WHERE username = $1
		`, username,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return &entities.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}, nil
}

func (s pg) CreateAuthor(ctx context.Context, a *entities.Author) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO author(id, user_id, url, host, display_name, github, profile_image, bio)
			VALUES(:id, :user_id, :url, :host, :display_name, :github, :profile_image, :bio)
		`, toAuthorDTO(a),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) UpsertRemoteAuthor(ctx context.Context, a *entities.Author) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO author(id, user_id, url, host, display_name, github, profile_image, bio)
			VALUES(:id, NULL, :url, :host, :display_name, :github, :profile_image, :bio)
			ON CONFLICT(id) DO UPDATE SET
			url=excluded.url, host=excluded.host, display_name=excluded.display_name, github=excluded.github,
			profile_image=excluded.profile_image
			WHERE author.user_id IS NULL
		`, toAuthorDTO(a),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) UpdateAuthor(ctx context.Context, a *entities.Author) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE author SET url=:url, host=:host, display_name=:display_name, github=:github,
			profile_image=:profile_image, bio=:bio
			WHERE id=:id
		`, toAuthorDTO(a),
	)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) GetAuthor(ctx context.Context, id uuid.UUID) (*entities.Author, error) {
	var a authorDTO

	if err := sqlx.GetContext(ctx, s.ext, &a,
		fmt.Sprintf(`SELECT %s FROM author WHERE id = $1`, authorColumns), id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toAuthor(&a), nil
}

func (s pg) GetAuthorByUserID(ctx context.Context, userID uuid.UUID) (*entities.Author, error) {
	var a authorDTO

	if err := sqlx.GetContext(ctx, s.ext, &a,
		fmt.Sprintf(`SELECT %s FROM author WHERE user_id = $1`, authorColumns), userID,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toAuthor(&a), nil
}

func (s pg) GetAuthors(ctx context.Context, id ...uuid.UUID) ([]*entities.Author, error) {
	if len(id) == 0 {
		return []*entities.Author{}, nil
	}

	return s.selectAuthors(ctx,
		fmt.Sprintf(`SELECT %s FROM author WHERE id = ANY($1::uuid[]) ORDER BY display_name`, authorColumns),
		pq.StringArray(uuidsToStrings(uuidsUnique(id))),
	)
}

func (s pg) ListAuthors(ctx context.Context, p *storage.ListAuthorsParams) ([]*entities.Author, error) {
	if p.Search != nil {
		return s.selectAuthors(ctx,
			fmt.Sprintf(`SELECT %s FROM author WHERE display_name ILIKE $1 ORDER BY display_name`, authorColumns),
			"%"+escapeLike(*p.Search)+"%",
		)
	}

	return s.selectAuthors(ctx, fmt.Sprintf(`SELECT %s FROM author ORDER BY display_name`, authorColumns))
}

func (s pg) Follow(ctx context.Context, follower, following uuid.UUID) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO follow(follower_id, following_id) VALUES($1, $2) ON CONFLICT DO NOTHING
		`, follower, following,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) Unfollow(ctx context.Context, follower, following uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx,
		`
			DELETE FROM follow WHERE follower_id=$1 AND following_id=$2
		`, follower, following,
	)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) IsFollowing(ctx context.Context, follower, following uuid.UUID) (bool, error) {
	var ok bool

	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM follow WHERE follower_id=$1 AND following_id=$2)
		`, follower, following,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) ListFollowers(ctx context.Context, id uuid.UUID) ([]*entities.Author, error) {
	return s.selectAuthors(ctx, fmt.Sprintf(`
			SELECT %s FROM author
			INNER JOIN follow ON follow.follower_id = author.id
			WHERE follow.following_id = $1
			ORDER BY author.display_name
		`, authorColumns), id,
	)
}

func (s pg) ListFollowing(ctx context.Context, id uuid.UUID) ([]*entities.Author, error) {
	return s.selectAuthors(ctx, fmt.Sprintf(`
			SELECT %s FROM author
			INNER JOIN follow ON follow.following_id = author.id
			WHERE follow.follower_id = $1
			ORDER BY author.display_name
		`, authorColumns), id,
	)
}

func (s pg) CreateFollowRequest(ctx context.Context, fr *entities.FollowRequest) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO follow_request(id, summary, follower_id, following_id)
			VALUES(:id, :summary, :follower_id, :following_id)
		`, followRequestDTO{
			ID:          fr.ID,
			Summary:     fr.Summary,
			FollowerID:  fr.FollowerID,
			FollowingID: fr.FollowingID,
		},
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) GetFollowRequest(ctx context.Context, id uuid.UUID) (*entities.FollowRequest, error) {
	var fr followRequestDTO

	if err := sqlx.GetContext(ctx, s.ext, &fr, `
			SELECT id, summary, follower_id, following_id FROM follow_request WHERE id = $1
		`, id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toFollowRequest(&fr), nil
}

func (s pg) FollowRequestExists(ctx context.Context, follower, following uuid.UUID) (bool, error) {
	var ok bool

	if err := sqlx.GetContext(ctx, s.ext, &ok, `
			SELECT EXISTS(SELECT 1 FROM follow_request WHERE follower_id=$1 AND following_id=$2)
		`, follower, following,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return ok, nil
}

func (s pg) ListFollowRequests(ctx context.Context, following uuid.UUID) ([]*entities.FollowRequest, error) {
	var frs []*followRequestDTO

	if err := sqlx.SelectContext(ctx, s.ext, &frs, `
			SELECT id, summary, follower_id, following_id FROM follow_request WHERE following_id = $1
		`, following,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.FollowRequest, len(frs))
	for i, v := range frs {
		out[i] = toFollowRequest(v)
	}

	return out, nil
}

func (s pg) DeleteFollowRequest(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM follow_request WHERE id = $1`, id)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(id, author_id, title, source, origin, description, content_type, content, categories,
				count, published, visibility, unlisted)
			VALUES(:id, :author_id, :title, :source, :origin, :description, :content_type, :content, :categories,
				:count, :published, :visibility, :unlisted)
		`, toPostDTO(p),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) UpdatePost(ctx context.Context, p *entities.Post) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE post SET title=:title, source=:source, origin=:origin, description=:description,
			content_type=:content_type, content=:content, categories=:categories, count=:count,
			visibility=:visibility, unlisted=:unlisted
			WHERE id=:id
		`, toPostDTO(p),
	)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) GetPost(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		fmt.Sprintf(`SELECT %s FROM post WHERE id = $1`, postColumns), id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toPost(&p), nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	var (
		where []string
		args  []interface{}
	)

	if p.AuthorID != nil {
		args = append(args, *p.AuthorID)
		where = append(where, fmt.Sprintf("author_id = $%d", len(args)))
	}

	if len(p.Visibility) > 0 {
		v := make([]string, len(p.Visibility))
		for i := range p.Visibility {
			v[i] = string(p.Visibility[i])
		}

		args = append(args, pq.StringArray(v))
		where = append(where, fmt.Sprintf("visibility = ANY($%d)", len(args)))
	}

	if !p.IncludeUnlisted {
		where = append(where, "NOT unlisted")
	}

	query := fmt.Sprintf(`SELECT %s FROM post`, postColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY published DESC"

	return s.selectPosts(ctx, query, args...)
}

func (s pg) DeletePost(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) AddToInbox(ctx context.Context, postID uuid.UUID, authorID ...uuid.UUID) error {
	if len(authorID) == 0 {
		return nil
	}

	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO inbox(author_id, post_id)
			SELECT unnest($1::uuid[]), $2
			ON CONFLICT DO NOTHING
		`, pq.StringArray(uuidsToStrings(uuidsUnique(authorID))), postID,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) ListInbox(ctx context.Context, authorID uuid.UUID) ([]*entities.Post, error) {
	return s.selectPosts(ctx, fmt.Sprintf(`
			SELECT %s FROM post
			INNER JOIN inbox ON inbox.post_id = post.id
			WHERE inbox.author_id = $1
			ORDER BY post.published DESC
		`, postColumns), authorID,
	)
}

func (s pg) ClearInbox(ctx context.Context, authorID uuid.UUID) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM inbox WHERE author_id = $1`, authorID); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) CreateComment(ctx context.Context, c *entities.Comment) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO comment(id, post_id, author_id, comment, content_type, published)
			VALUES(:id, :post_id, :author_id, :comment, :content_type, :published)
		`, commentDTO{
			ID:          c.ID,
			PostID:      c.PostID,
			AuthorID:    c.AuthorID,
			Comment:     c.Comment,
			ContentType: c.ContentType,
			Published:   c.Published.UTC(),
		},
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) GetComment(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var c commentDTO

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT id, post_id, author_id, comment, content_type, published FROM comment WHERE id = $1
		`, id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toComment(&c), nil
}

func (s pg) ListComments(ctx context.Context, postID uuid.UUID) ([]*entities.Comment, error) {
	var cc []*commentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT id, post_id, author_id, comment, content_type, published FROM comment
			WHERE post_id = $1
			ORDER BY published
		`, postID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Comment, len(cc))
	for i, v := range cc {
		out[i] = toComment(v)
	}

	return out, nil
}

func (s pg) CreatePostLike(ctx context.Context, l *entities.PostLike) error {
	return s.createLike(ctx, "post_like", "post_id", likeDTO{
		ID:       l.ID,
		TargetID: l.PostID,
		AuthorID: l.AuthorID,
		Context:  l.Context,
		Summary:  l.Summary,
	})
}

func (s pg) GetPostLike(ctx context.Context, postID, authorID uuid.UUID) (*entities.PostLike, error) {
	l, err := s.getLike(ctx, "post_like", "post_id", postID, authorID)
	if err != nil {
		return nil, err
	}

	return toPostLike(l), nil
}

func (s pg) DeletePostLike(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM post_like WHERE id = $1`, id)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) ListPostLikes(ctx context.Context, postID uuid.UUID) ([]*entities.PostLike, error) {
	ll, err := s.listLikes(ctx, "post_like", "post_id", postID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.PostLike, len(ll))
	for i, v := range ll {
		out[i] = toPostLike(v)
	}

	return out, nil
}

func (s pg) CreateCommentLike(ctx context.Context, l *entities.CommentLike) error {
	return s.createLike(ctx, "comment_like", "comment_id", likeDTO{
		ID:       l.ID,
		TargetID: l.CommentID,
		AuthorID: l.AuthorID,
		Context:  l.Context,
		Summary:  l.Summary,
	})
}

func (s pg) GetCommentLike(ctx context.Context, commentID, authorID uuid.UUID) (*entities.CommentLike, error) {
	l, err := s.getLike(ctx, "comment_like", "comment_id", commentID, authorID)
	if err != nil {
		return nil, err
	}

	return toCommentLike(l), nil
}

func (s pg) DeleteCommentLike(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM comment_like WHERE id = $1`, id)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) ListCommentLikes(ctx context.Context, commentID uuid.UUID) ([]*entities.CommentLike, error) {
	ll, err := s.listLikes(ctx, "comment_like", "comment_id", commentID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.CommentLike, len(ll))
	for i, v := range ll {
		out[i] = toCommentLike(v)
	}

	return out, nil
}

func (s pg) CreateNode(ctx context.Context, n *entities.Node) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO node(id, node_name, api_url, host) VALUES(:id, :node_name, :api_url, :host)
		`, toNodeDTO(n),
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) UpdateNode(ctx context.Context, n *entities.Node) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE node SET node_name=:node_name, api_url=:api_url, host=:host WHERE id=:id
		`, toNodeDTO(n),
	)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) GetNode(ctx context.Context, id uuid.UUID) (*entities.Node, error) {
	var n nodeDTO

	if err := sqlx.GetContext(ctx, s.ext, &n, `
			SELECT id, node_name, api_url, host FROM node WHERE id = $1
		`, id,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toNode(&n), nil
}

func (s pg) GetNodeByHost(ctx context.Context, host string) (*entities.Node, error) {
	var n nodeDTO

	if err := sqlx.GetContext(ctx, s.ext, &n, `
			SELECT id, node_name, api_url, host FROM node WHERE host = $1 LIMIT 1
		`, host,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return toNode(&n), nil
}

func (s pg) ListNodes(ctx context.Context) ([]*entities.Node, error) {
	var nn []*nodeDTO

	if err := sqlx.SelectContext(ctx, s.ext, &nn, `
			SELECT id, node_name, api_url, host FROM node ORDER BY node_name
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Node, len(nn))
	for i, v := range nn {
		out[i] = toNode(v)
	}

	return out, nil
}

func (s pg) DeleteNode(ctx context.Context, id uuid.UUID) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM node WHERE id = $1`, id)
	if err != nil {
		return wrapExecError(err)
	}

	return checkAffected(res)
}

func (s pg) selectAuthors(ctx context.Context, query string, args ...interface{}) ([]*entities.Author, error) {
	var aa []*authorDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Author, len(aa))
	for i, v := range aa {
		out[i] = toAuthor(v)
	}

	return out, nil
}

func (s pg) selectPosts(ctx context.Context, query string, args ...interface{}) ([]*entities.Post, error) {
	var pp []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

// table and column are never user input.
func (s pg) createLike(ctx context.Context, table, column string, l likeDTO) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext, fmt.Sprintf(`
			INSERT INTO %s(id, %s, author_id, context, summary)
			VALUES(:id, :target_id, :author_id, :context, :summary)
		`, table, column), l,
	); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (s pg) getLike(ctx context.Context, table, column string, target, authorID uuid.UUID) (*likeDTO, error) {
	var l likeDTO

	if err := sqlx.GetContext(ctx, s.ext, &l, fmt.Sprintf(`
			SELECT id, %[2]s AS target_id, author_id, context, summary FROM %[1]s
			WHERE %[2]s = $1 AND author_id = $2
			LIMIT 1
		`, table, column), target, authorID,
	); err != nil {
		return nil, wrapQueryError(err)
	}

	return &l, nil
}

func (s pg) listLikes(ctx context.Context, table, column string, target uuid.UUID) ([]*likeDTO, error) {
	var ll []*likeDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ll, fmt.Sprintf(`
			SELECT id, %[2]s AS target_id, author_id, context, summary FROM %[1]s
			WHERE %[2]s = $1
		`, table, column), target,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ll, nil
}

func wrapQueryError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	return fmt.Errorf("failed to query: %w", err)
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", storage.ErrNotFound, pqErr.Constraint)
		case uniqueViolation:
			return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, pqErr.Constraint)
		}
	}

	return fmt.Errorf("failed to exec: %w", err)
}

func checkAffected(res sql.Result) error {
	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func uuidsUnique(s []uuid.UUID) []uuid.UUID {
	m := make(map[uuid.UUID]struct{}, len(s))
	out := make([]uuid.UUID, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

func uuidsToStrings(s []uuid.UUID) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.String()
	}

	return out
}
