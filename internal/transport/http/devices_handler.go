package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/queries/list_children"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/create_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/delete_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
)

// DevicesHandler handles HTTP requests for the brand > type > series > model
// device tree backing repair bookings.
type DevicesHandler struct {
	logger       *zap.Logger
	createNode   *create_node.Interactor
	deleteNode   *delete_node.Interactor
	listChildren *list_children.Query
}

// NewDevicesHandler creates a new devices HTTP handler.
func NewDevicesHandler(
	logger *zap.Logger,
	createNode *create_node.Interactor,
	deleteNode *delete_node.Interactor,
	listChildren *list_children.Query,
) *DevicesHandler {
	return &DevicesHandler{
		logger:       logger,
		createNode:   createNode,
		deleteNode:   deleteNode,
		listChildren: listChildren,
	}
}

// Register mounts the device-tree routes.
func (h *DevicesHandler) Register(r chi.Router) {
	r.Route("/devices", func(r chi.Router) {
		r.Post("/", h.handleCreateNode)
		r.Get("/{level}", h.handleListChildren)
		r.Delete("/{level}/{nodeID}", h.handleDeleteNode)
	})
}

type createNodeRequest struct {
	Level        string `json:"level"`
	ParentID     string `json:"parent_id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int64  `json:"display_order"`
}

func (h *DevicesHandler) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var body createNodeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	level, err := domain.ParseLevel(body.Level)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	nodeID, err := h.createNode.Execute(r.Context(), &create_node.Request{
		Level:        level,
		ParentID:     body.ParentID,
		Name:         body.Name,
		ImageURL:     body.ImageURL,
		DisplayOrder: body.DisplayOrder,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"node_id": nodeID})
}

func (h *DevicesHandler) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	level, err := domain.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	err = h.deleteNode.Execute(r.Context(), &delete_node.Request{
		Level:  level,
		NodeID: chi.URLParam(r, "nodeID"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type nodeResponse struct {
	NodeID       string `json:"node_id"`
	ParentID     string `json:"parent_id,omitempty"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int64  `json:"display_order"`
}

func (h *DevicesHandler) handleListChildren(w http.ResponseWriter, r *http.Request) {
	level, err := domain.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	nodes, err := h.listChildren.Execute(r.Context(), &list_children.Request{
		Level:    level,
		ParentID: r.URL.Query().Get("parent_id"),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	resp := make([]nodeResponse, 0, len(nodes))
	for _, node := range nodes {
		resp = append(resp, nodeResponse{
			NodeID:       node.NodeID,
			ParentID:     node.ParentID,
			Name:         node.Name,
			ImageURL:     node.ImageURL,
			DisplayOrder: node.DisplayOrder,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"nodes": resp})
}
