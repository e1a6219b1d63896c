//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	for _, table := range []string{
		"node", "inbox", "comment_like", "post_like", "comment", "post", "follow_request", "follow", "author", "app_user",
	} {
		_, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table))
		require.NoError(t, err)
	}
}

func createAuthor(t *testing.T, name string) *entities.Author {
	u := &entities.User{
		ID:           uuid.New(),
		Username:     name,
		PasswordHash: []byte("hash"),
		Active:       true,
		CreatedAt:    time.Unix(1000, 0).UTC(),
	}
	require.NoError(t, s.CreateUser(ctx, u))

	a := &entities.Author{
		ID:           uuid.New(),
		UserID:       &u.ID,
		URL:          "http://127.0.0.1:8000/authors/" + name,
		Host:         "127.0.0.1:8000",
		DisplayName:  name,
		ProfileImage: entities.DefaultProfileImage,
	}
	require.NoError(t, s.CreateAuthor(ctx, a))

	return a
}

func createPost(t *testing.T, author *entities.Author, published int64, v entities.Visibility, unlisted bool) *entities.Post {
	p := &entities.Post{
		ID:          uuid.New(),
		AuthorID:    author.ID,
		Title:       "title",
		ContentType: "text/plain",
		Content:     "content",
		Published:   time.Unix(published, 0).UTC(),
		Visibility:  v,
		Unlisted:    unlisted,
	}
	require.NoError(t, s.CreatePost(ctx, p))

	return p
}

func postIDs(pp []*entities.Post) []uuid.UUID {
	out := make([]uuid.UUID, len(pp))
	for i, v := range pp {
		out[i] = v.ID
	}
	return out
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}

func TestPg_User(t *testing.T) {
	defer cleanup(t)

	a := createAuthor(t, "alice")

	u, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, *a.UserID, u.ID)
	assert.Equal(t, []byte("hash"), u.PasswordHash)
	assert.True(t, u.Active)
	assert.Equal(t, time.Unix(1000, 0).UTC(), u.CreatedAt.UTC())

	_, err = s.GetUserByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	err = s.CreateUser(ctx, &entities.User{ID: uuid.New(), Username: "alice", PasswordHash: []byte("x"), CreatedAt: time.Now()})
	assert.True(t, errors.Is(err, storage.ErrAlreadyExists))
}

func TestPg_Author(t *testing.T) {
	defer cleanup(t)

	a := createAuthor(t, "alice")

	got, err := s.GetAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got, err = s.GetAuthorByUserID(ctx, *a.UserID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	a.Bio = "about"
	a.Github = "https://github.com/alice"
	require.NoError(t, s.UpdateAuthor(ctx, a))

	got, err = s.GetAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = s.GetAuthor(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	assert.True(t, errors.Is(s.UpdateAuthor(ctx, &entities.Author{ID: uuid.New(), DisplayName: "x"}), storage.ErrNotFound))
}

func TestPg_UpsertRemoteAuthor(t *testing.T) {
	defer cleanup(t)

	local := createAuthor(t, "alice")
	remote := &entities.Author{
		ID:           uuid.New(),
		URL:          "http://remote/authors/carl",
		Host:         "remote",
		DisplayName:  "carl",
		ProfileImage: entities.DefaultProfileImage,
	}

	require.NoError(t, s.UpsertRemoteAuthor(ctx, remote))

	remote.DisplayName = "carl2"
	require.NoError(t, s.UpsertRemoteAuthor(ctx, remote))

	got, err := s.GetAuthor(ctx, remote.ID)
	require.NoError(t, err)
	assert.Equal(t, remote, got)
	assert.True(t, got.IsRemote())

	require.NoError(t, s.UpsertRemoteAuthor(ctx, &entities.Author{
		ID:          local.ID,
		Host:        "remote",
		DisplayName: "hijacked",
	}))

	got, err = s.GetAuthor(ctx, local.ID)
	require.NoError(t, err)
	assert.Equal(t, local, got)
}

func TestPg_ListAuthors(t *testing.T) {
	defer cleanup(t)

	bob := createAuthor(t, "bob")
	alice := createAuthor(t, "alice")
	percent := createAuthor(t, "al_100")

	tt := []struct {
		name   string
		search *string
		expect []*entities.Author
	}{
		{name: "all", expect: []*entities.Author{percent, alice, bob}},
		{name: "search", search: func(s string) *string { return &s }("AL"), expect: []*entities.Author{percent, alice}},
		{name: "escaped", search: func(s string) *string { return &s }("l_"), expect: []*entities.Author{percent}},
		{name: "nothing", search: func(s string) *string { return &s }("zed"), expect: []*entities.Author{}},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			aa, err := s.ListAuthors(ctx, &storage.ListAuthorsParams{Search: tc.search})
			require.NoError(t, err)
			assert.Equal(t, tc.expect, aa)
		})
	}

	aa, err := s.GetAuthors(ctx, bob.ID, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Author{alice, bob}, aa)

	aa, err = s.GetAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, aa)
}

func TestPg_Follow(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")
	carl := createAuthor(t, "carl")

	require.NoError(t, s.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, s.Follow(ctx, bob.ID, alice.ID))
	require.NoError(t, s.Follow(ctx, carl.ID, alice.ID))
	require.NoError(t, s.Follow(ctx, alice.ID, carl.ID))

	ok, err := s.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	aa, err := s.ListFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Author{bob, carl}, aa)

	aa, err = s.ListFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Author{carl}, aa)

	require.NoError(t, s.Unfollow(ctx, bob.ID, alice.ID))
	assert.True(t, errors.Is(s.Unfollow(ctx, bob.ID, alice.ID), storage.ErrNotFound))

	assert.True(t, errors.Is(s.Follow(ctx, uuid.New(), alice.ID), storage.ErrNotFound))
}

func TestPg_FollowRequest(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")

	fr := &entities.FollowRequest{
		ID:          uuid.New(),
		Summary:     "bob wants to follow alice",
		FollowerID:  bob.ID,
		FollowingID: alice.ID,
	}
	require.NoError(t, s.CreateFollowRequest(ctx, fr))

	got, err := s.GetFollowRequest(ctx, fr.ID)
	require.NoError(t, err)
	assert.Equal(t, fr, got)

	ok, err := s.FollowRequestExists(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.FollowRequestExists(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	frs, err := s.ListFollowRequests(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.FollowRequest{fr}, frs)

	require.NoError(t, s.DeleteFollowRequest(ctx, fr.ID))
	assert.True(t, errors.Is(s.DeleteFollowRequest(ctx, fr.ID), storage.ErrNotFound))

	_, err = s.GetFollowRequest(ctx, fr.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Post(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	p := createPost(t, alice, 100, entities.PublicVisibility, false)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Title = "updated"
	p.Visibility = entities.FriendsOnlyVisibility
	p.Unlisted = true
	require.NoError(t, s.UpdatePost(ctx, p))

	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	assert.True(t, errors.Is(s.CreatePost(ctx, p), storage.ErrAlreadyExists))

	require.NoError(t, s.DeletePost(ctx, p.ID))
	assert.True(t, errors.Is(s.DeletePost(ctx, p.ID), storage.ErrNotFound))
	assert.True(t, errors.Is(s.UpdatePost(ctx, p), storage.ErrNotFound))

	_, err = s.GetPost(ctx, p.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")

	p1 := createPost(t, alice, 100, entities.PublicVisibility, false)
	p2 := createPost(t, alice, 300, entities.FriendsOnlyVisibility, false)
	p3 := createPost(t, bob, 200, entities.PublicVisibility, false)
	p4 := createPost(t, alice, 400, entities.PublicVisibility, true)
	p5 := createPost(t, bob, 500, entities.PrivateVisibility, false)

	tt := []struct {
		name   string
		params storage.ListPostsParams
		expect []uuid.UUID
	}{
		{
			name:   "all listed",
			expect: []uuid.UUID{p5.ID, p2.ID, p3.ID, p1.ID},
		},
		{
			name:   "public",
			params: storage.ListPostsParams{Visibility: []entities.Visibility{entities.PublicVisibility}},
			expect: []uuid.UUID{p3.ID, p1.ID},
		},
		{
			name:   "author",
			params: storage.ListPostsParams{AuthorID: &alice.ID},
			expect: []uuid.UUID{p2.ID, p1.ID},
		},
		{
			name:   "author with unlisted",
			params: storage.ListPostsParams{AuthorID: &alice.ID, IncludeUnlisted: true},
			expect: []uuid.UUID{p4.ID, p2.ID, p1.ID},
		},
		{
			name: "author public and friends",
			params: storage.ListPostsParams{
				AuthorID:   &bob.ID,
				Visibility: []entities.Visibility{entities.PublicVisibility, entities.FriendsOnlyVisibility},
			},
			expect: []uuid.UUID{p3.ID},
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			pp, err := s.ListPosts(ctx, &tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, postIDs(pp))
		})
	}
}

func TestPg_Inbox(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")

	p1 := createPost(t, alice, 100, entities.PublicVisibility, false)
	p2 := createPost(t, alice, 200, entities.FriendsOnlyVisibility, true)

	require.NoError(t, s.AddToInbox(ctx, p1.ID, bob.ID, alice.ID, bob.ID))
	require.NoError(t, s.AddToInbox(ctx, p2.ID, bob.ID))
	require.NoError(t, s.AddToInbox(ctx, p2.ID, bob.ID))
	require.NoError(t, s.AddToInbox(ctx, p2.ID))

	pp, err := s.ListInbox(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Post{p2, p1}, pp)

	pp, err = s.ListInbox(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1.ID}, postIDs(pp))

	require.NoError(t, s.ClearInbox(ctx, bob.ID))

	pp, err = s.ListInbox(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, pp)

	pp, err = s.ListInbox(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, pp, 1)

	assert.True(t, errors.Is(s.AddToInbox(ctx, uuid.New(), bob.ID), storage.ErrNotFound))
}

func TestPg_Comment(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")
	p := createPost(t, alice, 100, entities.PublicVisibility, false)

	c2 := &entities.Comment{
		ID:          uuid.New(),
		PostID:      p.ID,
		AuthorID:    alice.ID,
		Comment:     "second",
		ContentType: "text/markdown",
		Published:   time.Unix(300, 0).UTC(),
	}
	c1 := &entities.Comment{
		ID:          uuid.New(),
		PostID:      p.ID,
		AuthorID:    bob.ID,
		Comment:     "first",
		ContentType: "text/plain",
		Published:   time.Unix(200, 0).UTC(),
	}
	require.NoError(t, s.CreateComment(ctx, c2))
	require.NoError(t, s.CreateComment(ctx, c1))

	got, err := s.GetComment(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, c1, got)

	cc, err := s.ListComments(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Comment{c1, c2}, cc)

	_, err = s.GetComment(ctx, uuid.New())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	c1.ID = uuid.New()
	c1.PostID = uuid.New()
	assert.True(t, errors.Is(s.CreateComment(ctx, c1), storage.ErrNotFound))
}

func TestPg_Likes(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	bob := createAuthor(t, "bob")
	p := createPost(t, alice, 100, entities.PublicVisibility, false)
	c := &entities.Comment{
		ID:          uuid.New(),
		PostID:      p.ID,
		AuthorID:    bob.ID,
		Comment:     "nice",
		ContentType: "text/plain",
		Published:   time.Unix(200, 0).UTC(),
	}
	require.NoError(t, s.CreateComment(ctx, c))

	t.Run("post", func(t *testing.T) {
		l := &entities.PostLike{
			ID:       uuid.New(),
			PostID:   p.ID,
			AuthorID: bob.ID,
			Context:  "https://www.w3.org/ns/activitystreams",
			Summary:  "bob likes your post",
		}
		require.NoError(t, s.CreatePostLike(ctx, l))

		got, err := s.GetPostLike(ctx, p.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, l, got)

		_, err = s.GetPostLike(ctx, p.ID, alice.ID)
		assert.True(t, errors.Is(err, storage.ErrNotFound))

		ll, err := s.ListPostLikes(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []*entities.PostLike{l}, ll)

		require.NoError(t, s.DeletePostLike(ctx, l.ID))
		assert.True(t, errors.Is(s.DeletePostLike(ctx, l.ID), storage.ErrNotFound))

		ll, err = s.ListPostLikes(ctx, p.ID)
		require.NoError(t, err)
		assert.Empty(t, ll)
	})

	t.Run("comment", func(t *testing.T) {
		l := &entities.CommentLike{
			ID:        uuid.New(),
			CommentID: c.ID,
			AuthorID:  alice.ID,
			Summary:   "alice likes your comment",
		}
		require.NoError(t, s.CreateCommentLike(ctx, l))

		got, err := s.GetCommentLike(ctx, c.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, l, got)

		ll, err := s.ListCommentLikes(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, []*entities.CommentLike{l}, ll)

		require.NoError(t, s.DeleteCommentLike(ctx, l.ID))
		assert.True(t, errors.Is(s.DeleteCommentLike(ctx, l.ID), storage.ErrNotFound))

		_, err = s.GetCommentLike(ctx, c.ID, alice.ID)
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})
}

func TestPg_Node(t *testing.T) {
	defer cleanup(t)

	b := &entities.Node{ID: uuid.New(), Name: "beta", APIURL: "http://beta/api/", Host: "beta"}
	a := &entities.Node{ID: uuid.New(), Name: "alpha", APIURL: "http://alpha/api/", Host: "alpha"}
	require.NoError(t, s.CreateNode(ctx, b))
	require.NoError(t, s.CreateNode(ctx, a))

	nn, err := s.ListNodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entities.Node{a, b}, nn)

	got, err := s.GetNodeByHost(ctx, "beta")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	b.APIURL = "https://beta/api/"
	require.NoError(t, s.UpdateNode(ctx, b))

	got, err = s.GetNode(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)

	require.NoError(t, s.DeleteNode(ctx, b.ID))
	assert.True(t, errors.Is(s.DeleteNode(ctx, b.ID), storage.ErrNotFound))
	assert.True(t, errors.Is(s.UpdateNode(ctx, b), storage.ErrNotFound))

	_, err = s.GetNodeByHost(ctx, "beta")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	alice := createAuthor(t, "alice")
	errRollback := errors.New("rollback")

	err := s.InTx(ctx, func(tx storage.Storage) error {
		p := createPostWith(t, tx, alice)

		_, err := tx.GetPost(ctx, p.ID)
		require.NoError(t, err)

		return errRollback
	})
	require.True(t, errors.Is(err, errRollback))

	pp, err := s.ListPosts(ctx, &storage.ListPostsParams{})
	require.NoError(t, err)
	assert.Empty(t, pp)

	err = s.InTx(ctx, func(tx storage.Storage) error {
		createPostWith(t, tx, alice)

		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	})
	require.True(t, errors.Is(err, errBeginCalledWithinTx))

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		createPostWith(t, tx, alice)
		return nil
	}))

	pp, err = s.ListPosts(ctx, &storage.ListPostsParams{})
	require.NoError(t, err)
	assert.Len(t, pp, 1)
}

func createPostWith(t *testing.T, st storage.Storage, author *entities.Author) *entities.Post {
	p := &entities.Post{
		ID:          uuid.New(),
		AuthorID:    author.ID,
		ContentType: "text/plain",
		Content:     "content",
		Published:   time.Now().UTC(),
		Visibility:  entities.PublicVisibility,
	}
	require.NoError(t, st.CreatePost(ctx, p))

	return p
}
