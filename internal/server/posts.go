package server

import (
	"net/http"

	"github.com/Decentr-net/socialdistribution/internal/activity"
	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/service"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/posts Posts ListPosts
	//
	// Returns author's posts visible to the requester, newest first.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/Collection"
	//   '404':
	//     description: author not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	pp, err := s.s.ListPosts(r.Context(), requester(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.PostsType,
		Items: activity.FromPosts(pp),
	})
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/posts/{pid} Posts GetPost
	//
	// ---
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found or hidden from the requester
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	p, err := s.s.GetPost(r.Context(), requester(r), id, pid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.FromPost(p))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/posts Posts CreatePost
	//
	// Creates post and sends it to followers' inboxes.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/PostRequest'
	// responses:
	//   '201':
	//     description: Created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: forbidden
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.savePost(w, r, false)
}

func (s server) putPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /authors/{id}/posts/{pid} Posts PutPost
	//
	// Creates post with the given id.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '201':
	//     description: Created post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '409':
	//     description: post already exists
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.savePost(w, r, true)
}

func (s server) savePost(w http.ResponseWriter, r *http.Request, withID bool) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req PostRequest
	if !decode(w, r, &req) {
		return
	}

	p := req.toPost()
	p.AuthorID = id

	if withID {
		if p.ID, ok = pathUUID(w, r, "pid"); !ok {
			return
		}
	}

	created, err := s.s.CreatePost(r.Context(), requester(r), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity.FromPost(created))
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/posts/{pid} Posts UpdatePost
	//
	// Updates post fields. Omitted fields stay unchanged.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/UpdatePostRequest'
	// responses:
	//   '201':
	//     description: Updated post
	//     schema:
	//       "$ref": "#/definitions/Post"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := s.s.UpdatePost(r.Context(), requester(r), id, pid, &service.UpdatePostParams{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		Content:     req.Content,
		Categories:  req.Categories,
		Visibility:  req.Visibility,
		Unlisted:    req.Unlisted,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity.FromPost(p))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /authors/{id}/posts/{pid} Posts DeletePost
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: Post is deleted
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	if err := s.s.DeletePost(r.Context(), requester(r), id, pid); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listComments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/posts/{pid}/comments Comments ListComments
	//
	// ---
	// responses:
	//   '200':
	//     description: Comments
	//     schema:
	//       "$ref": "#/definitions/Collection"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	cc, err := s.s.ListComments(r.Context(), requester(r), id, pid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.CommentsType,
		Items: activity.FromComments(cc),
	})
}

func (s server) createComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/posts/{pid}/comments Comments CreateComment
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/CommentRequest'
	// responses:
	//   '201':
	//     description: Created comment
	//     schema:
	//       "$ref": "#/definitions/Comment"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	var req CommentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := s.s.CreateComment(r.Context(), requester(r), id, &entities.Comment{
		PostID:      pid,
		Comment:     req.Comment,
		ContentType: req.ContentType,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity.FromComment(c))
}

func (s server) listPostLikes(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/posts/{pid}/likes Likes ListPostLikes
	//
	// ---
	// responses:
	//   '200':
	//     description: Likes
	//     schema:
	//       "$ref": "#/definitions/Collection"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	ll, err := s.s.ListPostLikes(r.Context(), requester(r), id, pid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.LikesType,
		Items: activity.FromPostLikes(ll),
	})
}

func (s server) togglePostLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/posts/{pid}/likes Likes TogglePostLike
	//
	// Likes the post or removes the like when it's already there.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '201':
	//     description: Post is liked
	//     schema:
	//       "$ref": "#/definitions/LikeResponse"
	//   '204':
	//     description: Like is removed

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}

	liked, err := s.s.TogglePostLike(r.Context(), requester(r), id, pid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeLiked(w, liked)
}

func (s server) listCommentLikes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}
	cid, ok := pathUUID(w, r, "cid")
	if !ok {
		return
	}

	ll, err := s.s.ListCommentLikes(r.Context(), requester(r), id, pid, cid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.LikesType,
		Items: activity.FromCommentLikes(ll),
	})
}

func (s server) toggleCommentLike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathUUID(w, r, "pid")
	if !ok {
		return
	}
	cid, ok := pathUUID(w, r, "cid")
	if !ok {
		return
	}

	liked, err := s.s.ToggleCommentLike(r.Context(), requester(r), id, pid, cid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeLiked(w, liked)
}

func writeLiked(w http.ResponseWriter, liked bool) {
	if !liked {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, LikeResponse{Liked: true})
}
