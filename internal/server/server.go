// Package server Socialdistribution
//
// The Socialdistribution is a federated social network node: authors, posts, comments, likes and follows.
//
//     Schemes: https
//     BasePath: /api
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//       bearer:
//         type: apiKey
//         name: Authorization
//         in: header
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/socialdistribution/internal/auth"
	mm "github.com/Decentr-net/socialdistribution/internal/middleware"
	"github.com/Decentr-net/socialdistribution/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const (
	maxBodySize = 64 * 1024
	cacheSize   = 128
)

var log = logrus.WithField("layer", "api").WithField("package", "server")

type server struct {
	s      service.Service
	tokens *auth.Tokens
	nodes  *mm.Cache
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, tokens *auth.Tokens, r chi.Router, timeout, cacheTTL time.Duration) {
	r.Use(
		middleware.StripSlashes,
		middleware.RequestID,
		mm.Logger,
		mm.Metrics,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s:      s,
		tokens: tokens,
		nodes:  mm.NewCache(cacheSize, cacheTTL),
	}

	private := mm.RequireAuth(tokens)

	r.Route("/api", func(r chi.Router) {
		r.Use(mm.OptionalAuth(tokens))

		r.Post("/signup", srv.signup)
		r.Post("/login", srv.login)

		r.Get("/authors", srv.listAuthors)

		r.Route("/authors/{id}", func(r chi.Router) {
			r.Get("/", srv.getAuthor)
			r.With(private).Post("/", srv.updateAuthor)

			r.Get("/posts", srv.listPosts)
			r.With(private).Post("/posts", srv.createPost)
			r.Get("/posts/{pid}", srv.getPost)
			r.With(private).Post("/posts/{pid}", srv.updatePost)
			r.With(private).Put("/posts/{pid}", srv.putPost)
			r.With(private).Delete("/posts/{pid}", srv.deletePost)

			r.Get("/posts/{pid}/comments", srv.listComments)
			r.With(private).Post("/posts/{pid}/comments", srv.createComment)

			r.Get("/posts/{pid}/likes", srv.listPostLikes)
			r.With(private).Post("/posts/{pid}/likes", srv.togglePostLike)
			r.Get("/posts/{pid}/comments/{cid}/likes", srv.listCommentLikes)
			r.With(private).Post("/posts/{pid}/comments/{cid}/likes", srv.toggleCommentLike)

			r.Get("/followers", srv.listFollowers)
			r.Get("/followers/{fid}", srv.getFollower)
			r.Put("/followers/{fid}", srv.addFollower)
			r.Delete("/followers/{fid}", srv.removeFollower)

			r.With(private).Post("/follow", srv.follow)
			r.With(private).Post("/unfollow", srv.unfollow)

			r.Get("/inbox", srv.getInbox)
			r.Post("/inbox", srv.deliverToInbox)
			r.With(private).Delete("/inbox", srv.clearInbox)
			r.Get("/inbox/followrequest", srv.listFollowRequests)
			r.Post("/inbox/followrequest", srv.receiveFollowRequest)
		})

		r.With(private).Post("/followrequests/{id}/accept", srv.acceptFollowRequest)
		r.With(private).Post("/followrequests/{id}/decline", srv.declineFollowRequest)

		r.Get("/nodes", srv.nodes.Handler(srv.listNodes))
		r.With(private).Post("/nodes", srv.createNode)
		r.With(private).Put("/nodes/{id}", srv.updateNode)
		r.With(private).Delete("/nodes/{id}", srv.deleteNode)
	})
}
