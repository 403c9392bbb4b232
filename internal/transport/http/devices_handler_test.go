package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/queries/list_children"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/create_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/usecases/delete_node"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

type fakeNodeRepo struct {
	nodes    map[string]*domain.Node
	children map[string][]*domain.Node
}

func (f *fakeNodeRepo) InsertMut(node *domain.Node) *spanner.Mutation {
	return spanner.Insert("device_brands", []string{}, []interface{}{})
}

func (f *fakeNodeRepo) DeleteMut(level domain.Level, nodeID string) (*spanner.Mutation, error) {
	return spanner.Insert("device_brands", []string{}, []interface{}{}), nil
}

func (f *fakeNodeRepo) GetByID(ctx context.Context, level domain.Level, nodeID string) (*domain.Node, error) {
	node, ok := f.nodes[nodeID]
	if !ok || node.Level() != level {
		return nil, domain.ErrNodeNotFound
	}
	return node, nil
}

func (f *fakeNodeRepo) ListChildren(ctx context.Context, level domain.Level, parentID string) ([]*domain.Node, error) {
	return f.children[parentID], nil
}

func (f *fakeNodeRepo) HasChildren(ctx context.Context, level domain.Level, nodeID string) (bool, error) {
	return len(f.children[nodeID]) > 0, nil
}

type fakeApplier struct{}

func (f *fakeApplier) Apply(ctx context.Context, plan *committer.CommitPlan) error { return nil }

func (f *fakeApplier) ApplyWithVersionCheck(ctx context.Context, table string, key spanner.Key, versionColumn string, expectedVersion int64, plan *committer.CommitPlan) error {
	return nil
}

func newDevicesRouter(t *testing.T, repo *fakeNodeRepo) chi.Router {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	handler := NewDevicesHandler(
		zap.NewNop(),
		create_node.NewInteractor(repo, &fakeApplier{}, clk),
		delete_node.NewInteractor(repo, &fakeApplier{}),
		list_children.NewQuery(repo),
	)
	r := chi.NewRouter()
	handler.Register(r)
	return r
}

func TestDevicesHandler_CreateBrand(t *testing.T) {
	repo := &fakeNodeRepo{nodes: map[string]*domain.Node{}, children: map[string][]*domain.Node{}}
	router := newDevicesRouter(t, repo)

	body := `{"level":"brand","name":"Apple","display_order":1}`
	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "node_id")
}

func TestDevicesHandler_CreateNodeWithUnknownParent(t *testing.T) {
	repo := &fakeNodeRepo{nodes: map[string]*domain.Node{}, children: map[string][]*domain.Node{}}
	router := newDevicesRouter(t, repo)

	body := `{"level":"type","parent_id":"nope","name":"Smartphone"}`
	req := httptest.NewRequest(http.MethodPost, "/devices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestDevicesHandler_ListBrands(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	brand := domain.ReconstructNode("brand-1", domain.LevelBrand, "", "Apple", "", 1, now, now)
	repo := &fakeNodeRepo{
		nodes:    map[string]*domain.Node{"brand-1": brand},
		children: map[string][]*domain.Node{"": {brand}},
	}
	router := newDevicesRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/devices/brand", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Apple"`)
}

func TestDevicesHandler_DeleteNodeWithChildren(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	brand := domain.ReconstructNode("brand-1", domain.LevelBrand, "", "Apple", "", 1, now, now)
	child := domain.ReconstructNode("type-1", domain.LevelType, "brand-1", "Smartphone", "", 1, now, now)
	repo := &fakeNodeRepo{
		nodes:    map[string]*domain.Node{"brand-1": brand, "type-1": child},
		children: map[string][]*domain.Node{"brand-1": {child}},
	}
	router := newDevicesRouter(t, repo)

	req := httptest.NewRequest(http.MethodDelete, "/devices/brand/brand-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestDevicesHandler_UnknownLevel(t *testing.T) {
	repo := &fakeNodeRepo{nodes: map[string]*domain.Node{}, children: map[string][]*domain.Node{}}
	router := newDevicesRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/devices/planet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
