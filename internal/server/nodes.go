package server

import (
	"net/http"

	"github.com/Decentr-net/socialdistribution/internal/activity"
)

func (s server) listNodes(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /nodes Nodes ListNodes
	//
	// Returns registered federation nodes. The response is cached.
	//
	// ---
	// responses:
	//   '200':
	//     description: Nodes
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Node"

	nn, err := s.s.ListNodes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, activity.FromNodes(nn))
}

func (s server) createNode(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /nodes Nodes CreateNode
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     '$ref': '#/definitions/Node'
	// responses:
	//   '201':
	//     description: Node
	//     schema:
	//       "$ref": "#/definitions/Node"

	var req activity.Node
	if !decode(w, r, &req) {
		return
	}

	n, err := s.s.CreateNode(r.Context(), req.ToNode())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	s.nodes.Purge()

	writeJSON(w, http.StatusCreated, activity.FromNode(n))
}

func (s server) updateNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req activity.Node
	if !decode(w, r, &req) {
		return
	}

	node := req.ToNode()
	node.ID = id

	n, err := s.s.UpdateNode(r.Context(), node)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	s.nodes.Purge()

	writeJSON(w, http.StatusOK, activity.FromNode(n))
}

func (s server) deleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.s.DeleteNode(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	s.nodes.Purge()

	w.WriteHeader(http.StatusNoContent)
}
