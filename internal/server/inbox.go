package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Decentr-net/socialdistribution/internal/activity"
)

func (s server) getInbox(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/inbox Inbox GetInbox
	//
	// Returns posts delivered to the author's stream, newest first.
	//
	// ---
	// responses:
	//   '200':
	//     description: Inbox
	//     schema:
	//       "$ref": "#/definitions/Inbox"
	//   '404':
	//     description: author not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, pp, err := s.s.GetInbox(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Inbox{
		Type:   activity.InboxType,
		Author: a.StreamURL(),
		Items:  activity.FromPosts(pp),
	})
}

func (s server) deliverToInbox(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/inbox Inbox DeliverToInbox
	//
	// Federation entry point: other nodes push posts of their authors here.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/Post'
	// responses:
	//   '201':
	//     description: Post is delivered
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req activity.Post
	if !decode(w, r, &req) {
		return
	}

	if req.Type != "" && !strings.EqualFold(req.Type, activity.PostType) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unexpected type %q", req.Type))
		return
	}

	if err := s.s.DeliverToInbox(r.Context(), id, req.ToPost()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	req.Type = activity.PostType
	writeJSON(w, http.StatusCreated, req)
}

func (s server) clearInbox(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /authors/{id}/inbox Inbox ClearInbox
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: Inbox is cleared

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.s.ClearInbox(r.Context(), requester(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
