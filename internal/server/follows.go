package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/activity"
	"github.com/Decentr-net/socialdistribution/internal/entities"
	"github.com/Decentr-net/socialdistribution/internal/service"
)

func (s server) listFollowers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/followers Followers ListFollowers
	//
	// ---
	// responses:
	//   '200':
	//     description: Followers
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

	aa, err := s.s.ListFollowers(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.FollowersType,
		Items: activity.FromAuthors(aa),
	})
}

func (s server) getFollower(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/followers/{fid} Followers GetFollower
	//
	// Checks if fid follows id.
	//
	// ---
	// responses:
	//   '200':
	//     description: Follower
	//     schema:
	//       "$ref": "#/definitions/Author"
	//   '404':
	//     description: fid isn't a follower
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	fid, ok := pathUUID(w, r, "fid")
	if !ok {
		return
	}

	a, err := s.s.GetFollower(r.Context(), id, fid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.FromAuthor(a))
}

func (s server) addFollower(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /authors/{id}/followers/{fid} Followers AddFollower
	//
	// Makes fid a follower of id. Repeated calls are no-op.
	//
	// ---
	// responses:
	//   '201':
	//     description: fid follows id

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	fid, ok := pathUUID(w, r, "fid")
	if !ok {
		return
	}

	if err := s.s.AddFollower(r.Context(), id, fid); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (s server) removeFollower(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /authors/{id}/followers/{fid} Followers RemoveFollower
	//
	// ---
	// responses:
	//   '204':
	//     description: fid doesn't follow id anymore
	//   '404':
	//     description: fid isn't a follower
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	fid, ok := pathUUID(w, r, "fid")
	if !ok {
		return
	}

	if err := s.s.RemoveFollower(r.Context(), id, fid); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) follow(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/follow Follows Follow
	//
	// Sends follow request from the requester to id.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '201':
	//     description: Follow request
	//     schema:
	//       "$ref": "#/definitions/Follow"
	//   '409':
	//     description: request is already sent or requester already follows the author
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	fr, err := s.s.SendFollowRequest(r.Context(), requester(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ff, err := s.follows(r.Context(), fr)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ff[0])
}

func (s server) unfollow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.s.Unfollow(r.Context(), requester(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listFollowRequests(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id}/inbox/followrequest Follows ListFollowRequests
	//
	// ---
	// responses:
	//   '200':
	//     description: Follow requests addressed to the author
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Follow"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	frs, err := s.s.ListFollowRequests(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ff, err := s.follows(r.Context(), frs...)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ff)
}

func (s server) receiveFollowRequest(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id}/inbox/followrequest Follows ReceiveFollowRequest
	//
	// Federation entry point: other nodes deliver follow activities here.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/Follow'
	// responses:
	//   '201':
	//     description: Follow request
	//     schema:
	//       "$ref": "#/definitions/Follow"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req activity.Follow
	if !decode(w, r, &req) {
		return
	}

	if req.Type != "" && !strings.EqualFold(req.Type, activity.FollowType) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unexpected type %q", req.Type))
		return
	}

	p := service.FollowParams{Summary: req.Summary}
	if req.Actor != nil {
		p.Actor = req.Actor.ToAuthor()
	}
	if req.Object != nil {
		p.Object = req.Object.ToAuthor()
	}

	fr, err := s.s.ReceiveFollowRequest(r.Context(), id, &p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	ff, err := s.follows(r.Context(), fr)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ff[0])
}

func (s server) acceptFollowRequest(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /followrequests/{id}/accept Follows AcceptFollowRequest
	//
	// Makes the request sender a follower. Only the followed author can accept.
	//
	// ---
	// security:
	// - bearer: []
	// responses:
	//   '204':
	//     description: Request is accepted
	//   '403':
	//     description: request is addressed to another author
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.s.AcceptFollowRequest(r.Context(), requester(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) declineFollowRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.s.DeclineFollowRequest(r.Context(), requester(r), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// follows loads actors and objects of the requests with one query.
func (s server) follows(ctx context.Context, frs ...*entities.FollowRequest) ([]activity.Follow, error) {
	out := make([]activity.Follow, len(frs))
	if len(frs) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(frs)*2)
	for _, v := range frs {
		ids = append(ids, v.FollowerID, v.FollowingID)
	}

	aa, err := s.s.GetAuthors(ctx, ids...)
	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]*entities.Author, len(aa))
	for _, v := range aa {
		m[v.ID] = v
	}

	for i, v := range frs {
		out[i] = activity.NewFollow(v, m)
	}

	return out, nil
}
