package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/socialdistribution/internal/auth"
	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/service"
	"github.com/Decentr-net/socialdistribution/internal/service/mock"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var (
	alice = &entities.Author{
		ID:           uuid.MustParse("0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01"),
		URL:          "http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
		Host:         "127.0.0.1:8000",
		DisplayName:  "alice",
		Github:       "http://github.com/alice",
		ProfileImage: entities.DefaultProfileImage,
		Bio:          "bio",
	}
	bob = &entities.Author{
		ID:           uuid.MustParse("7c3d2b1a-5e4f-4c6b-8a9d-0e1f2a3b4c02"),
		URL:          "http://remote.host/authors/7c3d2b1a-5e4f-4c6b-8a9d-0e1f2a3b4c02",
		Host:         "remote.host",
		DisplayName:  "bob",
		ProfileImage: entities.DefaultProfileImage,
	}

	postID    = uuid.MustParse("f1e2d3c4-b5a6-4978-8a9b-0c1d2e3f4a03")
	timestamp = time.Unix(100, 0).UTC()
)

type testServer struct {
	router chi.Router
	s      *mock.MockService
	tokens *auth.Tokens
}

func newTestServer(t *testing.T) testServer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ts := testServer{
		router: chi.NewRouter(),
		s:      mock.NewMockService(ctrl),
		tokens: auth.NewTokens("secret", time.Hour),
	}

	SetupRouter(ts.s, ts.tokens, ts.router, time.Minute, time.Minute)

	return ts
}

func (ts testServer) do(t *testing.T, method, path, body string, as *entities.Author) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	if as != nil {
		token, err := ts.tokens.Issue(as.ID)
		require.NoError(t, err)
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)

	return w
}

func Test_signup(t *testing.T) {
	tt := []struct {
		name string
		body string
		err  error
		code int
		resp string
	}{
		{
			name: "success",
			body: `{"username":"alice","github":"http://github.com/alice","password1":"password","password2":"password"}`,
			code: http.StatusCreated,
			resp: `{
				"id":"0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
				"url":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
				"host":"127.0.0.1:8000",
				"displayName":"alice",
				"github":"http://github.com/alice",
				"profileImage":"https://i.imgur.com/k7XVwpB.jpeg",
				"bio":"bio"
			}`,
		},
		{
			name: "invalid",
			body: `{"username":"alice","password1":"password","password2":"other"}`,
			err:  fmt.Errorf("%w: passwords do not match", service.ErrInvalidRequest),
			code: http.StatusBadRequest,
			resp: `{"error":"invalid request: passwords do not match"}`,
		},
		{
			name: "conflict",
			body: `{"username":"alice","password1":"password","password2":"password"}`,
			err:  fmt.Errorf("%w: username already exists", service.ErrConflict),
			code: http.StatusConflict,
			resp: `{"error":"conflict: username already exists"}`,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)

			ts.s.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p *service.SignupParams) (*entities.Author, error) {
					assert.Equal(t, "alice", p.Username)
					if tc.err != nil {
						return nil, tc.err
					}
					return alice, nil
				},
			)

			w := ts.do(t, http.MethodPost, "/api/signup", tc.body, nil)

			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.resp, w.Body.String())
		})
	}
}

func Test_signup_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/signup", `{"username":1}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func Test_login(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "success", code: http.StatusOK},
		{name: "invalid_credentials", err: service.ErrInvalidCredentials, code: http.StatusUnauthorized},
		{name: "inactive", err: service.ErrInactiveUser, code: http.StatusForbidden},
		{name: "internal", err: errors.New("test"), code: http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)

			if tc.err != nil {
				ts.s.EXPECT().Login(gomock.Any(), "alice", "password").Return(nil, tc.err)
			} else {
				ts.s.EXPECT().Login(gomock.Any(), "alice", "password").Return(alice, nil)
			}

			w := ts.do(t, http.MethodPost, "/api/login", `{"username":"alice","password":"password"}`, nil)
			require.Equal(t, tc.code, w.Code)

			if tc.err != nil {
				return
			}

			var resp LoginResponse
			require.NoError(t, jsonDecode(w, &resp))

			id, err := ts.tokens.Parse(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, alice.ID, id)
			assert.Equal(t, "bio", resp.Author.Bio)
		})
	}
}

func Test_getAuthor(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/authors/not-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.s.EXPECT().GetAuthor(gomock.Any(), bob.ID).Return(nil, fmt.Errorf("failed to get author: %w", storage.ErrNotFound))
	w = ts.do(t, http.MethodGet, "/api/authors/"+bob.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())

	ts.s.EXPECT().GetAuthor(gomock.Any(), alice.ID).Return(alice, nil)
	w = ts.do(t, http.MethodGet, "/api/authors/"+alice.ID.String()+"/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bio":"bio"`)
}

func Test_listAuthors(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ListAuthors(gomock.Any(), "al").Return([]*entities.Author{alice}, nil)

	w := ts.do(t, http.MethodGet, "/api/authors?search=al", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"type":"authors",
		"items":[{
			"id":"0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"url":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"host":"127.0.0.1:8000",
			"displayName":"alice",
			"github":"http://github.com/alice",
			"profileImage":"https://i.imgur.com/k7XVwpB.jpeg"
		}]
	}`, w.Body.String())
}

func Test_updateAuthor(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String(), `{"bio":"new"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().UpdateAuthor(gomock.Any(), bob.ID, alice.ID, gomock.Any()).Return(nil, service.ErrForbidden)
	w = ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String(), `{"bio":"new"}`, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ts.s.EXPECT().UpdateAuthor(gomock.Any(), alice.ID, alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID, p *service.UpdateAuthorParams) (*entities.Author, error) {
			assert.Nil(t, p.DisplayName)
			require.NotNil(t, p.Bio)
			assert.Equal(t, "new", *p.Bio)
			return alice, nil
		},
	)
	w = ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String(), `{"bio":"new"}`, alice)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_listPosts(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ListPosts(gomock.Any(), uuid.Nil, alice.ID).Return([]*entities.Post{{
		ID:          postID,
		AuthorID:    alice.ID,
		Title:       "title",
		Source:      alice.URL,
		Origin:      alice.URL,
		ContentType: "text/plain",
		Content:     "content",
		Categories:  "web,tutorial",
		Published:   timestamp,
		Visibility:  entities.PublicVisibility,
	}}, nil)

	w := ts.do(t, http.MethodGet, "/api/authors/"+alice.ID.String()+"/posts", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"type":"posts",
		"items":[{
			"type":"post",
			"title":"title",
			"id":"f1e2d3c4-b5a6-4978-8a9b-0c1d2e3f4a03",
			"source":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"origin":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"description":"",
			"contentType":"text/plain",
			"content":"content",
			"author":"0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"categories":"web,tutorial",
			"count":0,
			"published":"1970-01-01T00:01:40Z",
			"visibility":"PUBLIC",
			"unlisted":false
		}]
	}`, w.Body.String())
}

func Test_createPost(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().CreatePost(gomock.Any(), alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, p *entities.Post) (*entities.Post, error) {
			assert.Equal(t, uuid.Nil, p.ID)
			assert.Equal(t, alice.ID, p.AuthorID)
			assert.Equal(t, entities.FriendsOnlyVisibility, p.Visibility)
			assert.Equal(t, "hello", p.Content)

			out := *p
			out.ID = postID
			return &out, nil
		},
	)

	w := ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String()+"/posts",
		`{"content":"hello","visibility":"FRIENDS_ONLY"}`, alice)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), postID.String())
}

func Test_putPost(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().CreatePost(gomock.Any(), alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, p *entities.Post) (*entities.Post, error) {
			assert.Equal(t, postID, p.ID)
			return nil, fmt.Errorf("%w: post already exists", service.ErrConflict)
		},
	)

	w := ts.do(t, http.MethodPut, "/api/authors/"+alice.ID.String()+"/posts/"+postID.String(),
		`{"content":"hello"}`, alice)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func Test_deletePost(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().DeletePost(gomock.Any(), alice.ID, alice.ID, postID).Return(nil)

	w := ts.do(t, http.MethodDelete, "/api/authors/"+alice.ID.String()+"/posts/"+postID.String(), "", alice)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_togglePostLike(t *testing.T) {
	ts := newTestServer(t)
	path := fmt.Sprintf("/api/authors/%s/posts/%s/likes", alice.ID, postID)

	ts.s.EXPECT().TogglePostLike(gomock.Any(), bob.ID, alice.ID, postID).Return(true, nil)
	w := ts.do(t, http.MethodPost, path, "", bob)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"liked":true}`, w.Body.String())

	ts.s.EXPECT().TogglePostLike(gomock.Any(), bob.ID, alice.ID, postID).Return(false, nil)
	w = ts.do(t, http.MethodPost, path, "", bob)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_listCommentLikes(t *testing.T) {
	ts := newTestServer(t)
	commentID := uuid.New()
	likeID := uuid.New()

	ts.s.EXPECT().ListCommentLikes(gomock.Any(), uuid.Nil, alice.ID, postID, commentID).Return([]*entities.CommentLike{{
		ID:        likeID,
		CommentID: commentID,
		AuthorID:  bob.ID,
		Context:   alice.URL,
		Summary:   "bob likes this",
	}}, nil)

	w := ts.do(t, http.MethodGet, fmt.Sprintf("/api/authors/%s/posts/%s/comments/%s/likes", alice.ID, postID, commentID), "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"type":"likes",
		"items":[{"type":"Like","id":%q,"context":%q,"summary":"bob likes this","author":%q,"object":%q}]
	}`, likeID, alice.URL, bob.ID, commentID), w.Body.String())
}

func Test_followers(t *testing.T) {
	ts := newTestServer(t)
	path := fmt.Sprintf("/api/authors/%s/followers/%s", alice.ID, bob.ID)

	ts.s.EXPECT().AddFollower(gomock.Any(), alice.ID, bob.ID).Return(nil)
	w := ts.do(t, http.MethodPut, path, "", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	ts.s.EXPECT().GetFollower(gomock.Any(), alice.ID, bob.ID).Return(bob, nil)
	w = ts.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.s.EXPECT().RemoveFollower(gomock.Any(), alice.ID, bob.ID).Return(storage.ErrNotFound)
	w = ts.do(t, http.MethodDelete, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPatch, path, "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func Test_follow(t *testing.T) {
	ts := newTestServer(t)
	fr := &entities.FollowRequest{
		ID:          uuid.New(),
		Summary:     "bob wants to follow alice",
		FollowerID:  bob.ID,
		FollowingID: alice.ID,
	}

	ts.s.EXPECT().SendFollowRequest(gomock.Any(), bob.ID, alice.ID).Return(fr, nil)
	ts.s.EXPECT().GetAuthors(gomock.Any(), bob.ID, alice.ID).Return([]*entities.Author{alice, bob}, nil)

	w := ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String()+"/follow", "", bob)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"type":"Follow",
		"summary":"bob wants to follow alice",
		"actor":{
			"id":"7c3d2b1a-5e4f-4c6b-8a9d-0e1f2a3b4c02",
			"url":"http://remote.host/authors/7c3d2b1a-5e4f-4c6b-8a9d-0e1f2a3b4c02",
			"host":"remote.host",
			"displayName":"bob",
			"github":"",
			"profileImage":"https://i.imgur.com/k7XVwpB.jpeg"
		},
		"object":{
			"id":"0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"url":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
			"host":"127.0.0.1:8000",
			"displayName":"alice",
			"github":"http://github.com/alice",
			"profileImage":"https://i.imgur.com/k7XVwpB.jpeg"
		}
	}`, w.Body.String())
}

func Test_receiveFollowRequest(t *testing.T) {
	ts := newTestServer(t)
	path := "/api/authors/" + alice.ID.String() + "/inbox/followrequest"

	w := ts.do(t, http.MethodPost, path, `{"type":"Like"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	fr := &entities.FollowRequest{ID: uuid.New(), Summary: "hi", FollowerID: bob.ID, FollowingID: alice.ID}

	ts.s.EXPECT().ReceiveFollowRequest(gomock.Any(), alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, p *service.FollowParams) (*entities.FollowRequest, error) {
			assert.Equal(t, "hi", p.Summary)
			require.NotNil(t, p.Actor)
			assert.Equal(t, bob.ID, p.Actor.ID)
			assert.Equal(t, "remote.host", p.Actor.Host)
			assert.Nil(t, p.Actor.UserID)
			require.NotNil(t, p.Object)
			assert.Equal(t, alice.ID, p.Object.ID)
			return fr, nil
		},
	)
	ts.s.EXPECT().GetAuthors(gomock.Any(), bob.ID, alice.ID).Return([]*entities.Author{alice, bob}, nil)

	w = ts.do(t, http.MethodPost, path, fmt.Sprintf(`{
		"type":"Follow",
		"summary":"hi",
		"actor":{"id":%q,"host":"remote.host","displayName":"bob"},
		"object":{"id":%q}
	}`, bob.ID, alice.ID), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_acceptFollowRequest(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	w := ts.do(t, http.MethodPost, "/api/followrequests/"+id.String()+"/accept", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().AcceptFollowRequest(gomock.Any(), bob.ID, id).Return(service.ErrForbidden)
	w = ts.do(t, http.MethodPost, "/api/followrequests/"+id.String()+"/accept", "", bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ts.s.EXPECT().AcceptFollowRequest(gomock.Any(), alice.ID, id).Return(nil)
	w = ts.do(t, http.MethodPost, "/api/followrequests/"+id.String()+"/accept", "", alice)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_getInbox(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().GetInbox(gomock.Any(), alice.ID).Return(alice, []*entities.Post{}, nil)

	w := ts.do(t, http.MethodGet, "/api/authors/"+alice.ID.String()+"/inbox", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"type":"inbox",
		"author":"http://127.0.0.1:8000/authors/0b6a0f5e-6a3e-4a8a-9d8f-2c1a6e2f4b01",
		"items":[]
	}`, w.Body.String())
}

func Test_deliverToInbox(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().DeliverToInbox(gomock.Any(), alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, p *entities.Post) error {
			assert.Equal(t, postID, p.ID)
			assert.Equal(t, bob.ID, p.AuthorID)
			assert.Equal(t, "remote", p.Content)
			return nil
		},
	)

	w := ts.do(t, http.MethodPost, "/api/authors/"+alice.ID.String()+"/inbox",
		fmt.Sprintf(`{"type":"post","id":%q,"author":%q,"content":"remote","visibility":"PUBLIC"}`, postID, bob.ID), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_clearInbox(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().ClearInbox(gomock.Any(), alice.ID, alice.ID).Return(nil)

	w := ts.do(t, http.MethodDelete, "/api/authors/"+alice.ID.String()+"/inbox", "", alice)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_deliverToInbox_BasicAuthPeer(t *testing.T) {
	ts := newTestServer(t)

	ts.s.EXPECT().DeliverToInbox(gomock.Any(), alice.ID, gomock.Any()).Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/api/authors/"+alice.ID.String()+"/inbox",
		strings.NewReader(fmt.Sprintf(`{"type":"post","id":%q,"author":%q,"content":"remote"}`, postID, bob.ID)))
	r.SetBasicAuth("node", "secret")

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func Test_clearInbox_BasicAuthIsAnonymous(t *testing.T) {
	ts := newTestServer(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/authors/"+alice.ID.String()+"/inbox", nil)
	r.SetBasicAuth("node", "secret")

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_updatePost(t *testing.T) {
	path := fmt.Sprintf("/api/authors/%s/posts/%s", alice.ID, postID)

	tt := []struct {
		name string
		as   *entities.Author
		err  error
		code int
	}{
		{name: "anonymous", code: http.StatusUnauthorized},
		{name: "forbidden", as: bob, err: service.ErrForbidden, code: http.StatusForbidden},
		{name: "invalid", as: alice, err: service.ErrInvalidRequest, code: http.StatusBadRequest},
		{name: "success", as: alice, code: http.StatusCreated},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)

			if tc.as != nil {
				ts.s.EXPECT().UpdatePost(gomock.Any(), tc.as.ID, alice.ID, postID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _, _ uuid.UUID, p *service.UpdatePostParams) (*entities.Post, error) {
						require.NotNil(t, p.Title)
						assert.Equal(t, "new", *p.Title)
						require.NotNil(t, p.Unlisted)
						assert.True(t, *p.Unlisted)
						assert.Nil(t, p.Content)
						assert.Nil(t, p.Visibility)

						if tc.err != nil {
							return nil, tc.err
						}
						return &entities.Post{ID: postID, AuthorID: alice.ID, Title: "new", Unlisted: true}, nil
					},
				)
			}

			w := ts.do(t, http.MethodPost, path, `{"title":"new","unlisted":true}`, tc.as)

			assert.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusCreated {
				assert.Contains(t, w.Body.String(), `"title":"new"`)
				assert.Contains(t, w.Body.String(), `"unlisted":true`)
			}
		})
	}
}

func Test_comments(t *testing.T) {
	ts := newTestServer(t)
	path := fmt.Sprintf("/api/authors/%s/posts/%s/comments", alice.ID, postID)
	commentID := uuid.MustParse("3a4b5c6d-7e8f-4a0b-9c1d-2e3f4a5b6c04")

	comment := &entities.Comment{
		ID:          commentID,
		PostID:      postID,
		AuthorID:    bob.ID,
		Comment:     "nice",
		ContentType: "text/markdown",
		Published:   timestamp,
	}

	ts.s.EXPECT().ListComments(gomock.Any(), uuid.Nil, alice.ID, postID).Return([]*entities.Comment{comment}, nil)
	w := ts.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{
		"type":"comments",
		"items":[{
			"type":"comment",
			"id":%q,
			"post":%q,
			"author":%q,
			"comment":"nice",
			"contentType":"text/markdown",
			"published":"1970-01-01T00:01:40Z"
		}]
	}`, commentID, postID, bob.ID), w.Body.String())

	w = ts.do(t, http.MethodPost, path, `{"comment":"nice"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().CreateComment(gomock.Any(), bob.ID, alice.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ uuid.UUID, c *entities.Comment) (*entities.Comment, error) {
			assert.Equal(t, postID, c.PostID)
			assert.Equal(t, "nice", c.Comment)
			assert.Equal(t, "text/markdown", c.ContentType)
			return comment, nil
		},
	)
	w = ts.do(t, http.MethodPost, path, `{"comment":"nice","contentType":"text/markdown"}`, bob)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), commentID.String())

	ts.s.EXPECT().CreateComment(gomock.Any(), bob.ID, alice.ID, gomock.Any()).Return(nil, storage.ErrNotFound)
	w = ts.do(t, http.MethodPost, path, `{"comment":"nice"}`, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_unfollow(t *testing.T) {
	ts := newTestServer(t)
	path := "/api/authors/" + alice.ID.String() + "/unfollow"

	w := ts.do(t, http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().Unfollow(gomock.Any(), bob.ID, alice.ID).Return(fmt.Errorf("failed to unfollow: %w", storage.ErrNotFound))
	w = ts.do(t, http.MethodPost, path, "", bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.s.EXPECT().Unfollow(gomock.Any(), bob.ID, alice.ID).Return(nil)
	w = ts.do(t, http.MethodPost, path, "", bob)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_listFollowRequests(t *testing.T) {
	ts := newTestServer(t)
	path := "/api/authors/" + alice.ID.String() + "/inbox/followrequest"

	ts.s.EXPECT().ListFollowRequests(gomock.Any(), alice.ID).Return([]*entities.FollowRequest{}, nil)
	w := ts.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	fr := &entities.FollowRequest{ID: uuid.New(), Summary: "bob wants to follow alice", FollowerID: bob.ID, FollowingID: alice.ID}
	ts.s.EXPECT().ListFollowRequests(gomock.Any(), alice.ID).Return([]*entities.FollowRequest{fr}, nil)
	ts.s.EXPECT().GetAuthors(gomock.Any(), bob.ID, alice.ID).Return([]*entities.Author{alice, bob}, nil)

	w = ts.do(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		Type    string `json:"type"`
		Summary string `json:"summary"`
		Actor   struct {
			ID uuid.UUID `json:"id"`
		} `json:"actor"`
		Object struct {
			ID uuid.UUID `json:"id"`
		} `json:"object"`
	}
	require.NoError(t, jsonDecode(w, &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Follow", resp[0].Type)
	assert.Equal(t, fr.Summary, resp[0].Summary)
	assert.Equal(t, bob.ID, resp[0].Actor.ID)
	assert.Equal(t, alice.ID, resp[0].Object.ID)

	ts.s.EXPECT().ListFollowRequests(gomock.Any(), bob.ID).Return(nil, storage.ErrNotFound)
	w = ts.do(t, http.MethodGet, "/api/authors/"+bob.ID.String()+"/inbox/followrequest", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_declineFollowRequest(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	path := "/api/followrequests/" + id.String() + "/decline"

	w := ts.do(t, http.MethodPost, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().DeclineFollowRequest(gomock.Any(), bob.ID, id).Return(fmt.Errorf("%w: not yours", service.ErrForbidden))
	w = ts.do(t, http.MethodPost, path, "", bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	ts.s.EXPECT().DeclineFollowRequest(gomock.Any(), alice.ID, id).Return(storage.ErrNotFound)
	w = ts.do(t, http.MethodPost, path, "", alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.s.EXPECT().DeclineFollowRequest(gomock.Any(), alice.ID, id).Return(nil)
	w = ts.do(t, http.MethodPost, path, "", alice)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_nodes(t *testing.T) {
	ts := newTestServer(t)
	node := &entities.Node{ID: uuid.New(), Name: "remote", APIURL: "http://remote.host/api", Host: "remote.host"}

	ts.s.EXPECT().ListNodes(gomock.Any()).Return([]*entities.Node{}, nil)

	for i := 0; i < 2; i++ {
		w := ts.do(t, http.MethodGet, "/api/nodes", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	}

	w := ts.do(t, http.MethodPost, "/api/nodes", `{"nodeName":"remote"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.s.EXPECT().CreateNode(gomock.Any(), gomock.Any()).Return(node, nil)
	w = ts.do(t, http.MethodPost, "/api/nodes",
		`{"nodeName":"remote","apiURL":"http://remote.host/api","host":"remote.host"}`, alice)
	assert.Equal(t, http.StatusCreated, w.Code)

	ts.s.EXPECT().ListNodes(gomock.Any()).Return([]*entities.Node{node}, nil)
	w = ts.do(t, http.MethodGet, "/api/nodes", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%q,"nodeName":"remote","apiURL":"http://remote.host/api","host":"remote.host"}]`,
		node.ID), w.Body.String())

	ts.s.EXPECT().UpdateNode(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *entities.Node) (*entities.Node, error) {
		assert.Equal(t, node.ID, n.ID)
		assert.Equal(t, "renamed", n.Name)
		return n, nil
	})
	w = ts.do(t, http.MethodPut, "/api/nodes/"+node.ID.String(),
		`{"nodeName":"renamed","apiURL":"http://remote.host/api","host":"remote.host"}`, alice)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"nodeName":"renamed"`)

	ts.s.EXPECT().ListNodes(gomock.Any()).Return([]*entities.Node{}, nil)
	w = ts.do(t, http.MethodGet, "/api/nodes", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	ts.s.EXPECT().DeleteNode(gomock.Any(), node.ID).Return(fmt.Errorf("failed to delete node: %w", storage.ErrNotFound))
	w = ts.do(t, http.MethodDelete, "/api/nodes/"+node.ID.String(), "", alice)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.s.EXPECT().DeleteNode(gomock.Any(), node.ID).Return(nil)
	w = ts.do(t, http.MethodDelete, "/api/nodes/"+node.ID.String(), "", alice)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func jsonDecode(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
