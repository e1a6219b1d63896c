package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/google/uuid"

	"github.com/Decentr-net/socialdistribution/internal/activity"
	mm "github.com/Decentr-net/socialdistribution/internal/middleware"
	"github.com/Decentr-net/socialdistribution/internal/service"
	"github.com/Decentr-net/socialdistribution/internal/storage"
)

var errNotFound = errors.New("not found")

func (s server) signup(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /signup Accounts Signup
	//
	// Creates a new user and its author. The user can't log in until activated.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/SignupRequest'
	// responses:
	//   '201':
	//     description: Author
	//     schema:
	//       "$ref": "#/definitions/AuthorDetails"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: username is taken
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SignupRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := s.s.Signup(r.Context(), &service.SignupParams{
		Username:  req.Username,
		Github:    req.Github,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authorDetails(a))
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /login Accounts Login
	//
	// Issues bearer token for active user.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/LoginRequest'
	// responses:
	//   '200':
	//     description: Token and author
	//     schema:
	//       "$ref": "#/definitions/LoginResponse"
	//   '401':
	//     description: invalid credentials
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: user is not active
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := s.s.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := s.tokens.Issue(a.ID)
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:  token,
		Author: authorDetails(a),
	})
}

func (s server) listAuthors(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors Authors ListAuthors
	//
	// Returns authors ordered by display name.
	//
	// ---
	// parameters:
	// - name: search
	//   description: filters authors by display name substring
	//   in: query
	//   required: false
	//   example: ali
	// responses:
	//   '200':
	//     description: Authors
	//     schema:
	//       "$ref": "#/definitions/Collection"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	aa, err := s.s.ListAuthors(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.Collection{
		Type:  activity.AuthorsType,
		Items: activity.FromAuthors(aa),
	})
}

func (s server) getAuthor(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /authors/{id} Authors GetAuthor
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// responses:
	//   '200':
	//     description: Author
	//     schema:
	//       "$ref": "#/definitions/AuthorDetails"
	//   '404':
	//     description: author not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := s.s.GetAuthor(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authorDetails(a))
}

func (s server) updateAuthor(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /authors/{id} Authors UpdateAuthor
	//
	// Updates author's profile. Only the author can do it.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/UpdateAuthorRequest'
	// responses:
	//   '201':
	//     description: Updated author
	//     schema:
	//       "$ref": "#/definitions/AuthorDetails"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '403':
	//     description: forbidden
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateAuthorRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := s.s.UpdateAuthor(r.Context(), requester(r), id, &service.UpdateAuthorParams{
		DisplayName:  req.DisplayName,
		Github:       req.Github,
		ProfileImage: req.ProfileImage,
		Bio:          req.Bio,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authorDetails(a))
}

// requester returns authenticated author or uuid.Nil.
func requester(r *http.Request) uuid.UUID {
	id, _ := mm.AuthorIDFromContext(r.Context())
	return id
}

// pathUUID writes 404 when the url param isn't an uuid: such an entity can't exist.
func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		writeError(w, http.StatusNotFound, errNotFound.Error())
		return uuid.Nil, false
	}

	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, Error{Error: msg})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithError(err).
		WithField("request_id", middleware.GetReqID(r.Context())).
		WithField("url", r.URL.String()).
		Error("internal error")

	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, errNotFound.Error())
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrInactiveUser):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, storage.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeInternalError(w, r, err)
	}
}
