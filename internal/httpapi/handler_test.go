package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catppuccin-api/internal/adapters"
	"catppuccin-api/internal/app"
	"catppuccin-api/internal/types"
	"catppuccin-api/tests/testutil"
)

func newTestRouter(t *testing.T, presentation types.Presentation) *gin.Engine {
	t.Helper()
	return NewRouter(newTestQuery(t, presentation), nil)
}

func newTestQuery(t *testing.T, presentation types.Presentation) app.QueryService {
	t.Helper()
	gin.SetMode(gin.TestMode)
	root := testutil.RepoRoot(t)
	fetcher := adapters.NewLocationFetcherAdapter(map[types.SourceKind]string{
		types.SourceKindPorts:      filepath.Join(root, "fixtures", "ports.yml"),
		types.SourceKindUserstyles: filepath.Join(root, "fixtures", "userstyles.yml"),
	}, 0, 0, 0)
	catalog, err := app.BuildCatalog(t.Context(), app.NewServiceWithFetcher(fetcher).Source, app.BuildOptions{})
	require.NoError(t, err)
	query, err := app.NewQueryService(catalog, presentation)
	require.NoError(t, err)
	return query
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPortRoutes(t *testing.T) {
	router := newTestRouter(t, types.PresentationSingleOrMultiple)

	tests := []struct {
		name   string
		path   string
		status int
		array  bool
	}{
		{name: "folded multiple", path: "/ports/github", status: http.StatusOK, array: true},
		{name: "folded single", path: "/ports/NEOVIM", status: http.StatusOK},
		{name: "legacy alias", path: "/port/alacritty", status: http.StatusOK},
		{name: "exact override", path: "/ports/github?match=exact", status: http.StatusOK},
		{name: "exact override miss", path: "/ports/GITHUB?match=exact", status: http.StatusNotFound},
		{name: "bad match", path: "/ports/github?match=fuzzy", status: http.StatusBadRequest},
		{name: "missing", path: "/ports/nonexistent", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.path)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status != http.StatusOK {
				return
			}
			if tt.array {
				var body []map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Len(t, body, 2)
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Contains(t, body, "identifier")
		})
	}
}

func TestNotFoundIsPlainText(t *testing.T) {
	router := newTestRouter(t, types.PresentationGrouped)
	tests := []struct {
		path string
		body string
	}{
		{path: "/ports/nonexistent", body: "No port with identifier nonexistent"},
		{path: "/collaborators/nobody", body: "No collaborator with username nobody"},
		{path: "/collaborator/nobody", body: "No collaborator with username nobody"},
		{path: "/categories/nonexistent", body: "No category with key nonexistent"},
	}
	for _, tt := range tests {
		rec := get(t, router, tt.path)
		assert.Equal(t, http.StatusNotFound, rec.Code, tt.path)
		assert.Equal(t, tt.body, rec.Body.String(), tt.path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain", tt.path)
	}
}

func TestListPortsShapes(t *testing.T) {
	flat := get(t, newTestRouter(t, types.PresentationFlat), "/ports")
	require.Equal(t, http.StatusOK, flat.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(flat.Body.Bytes(), &list))
	require.Len(t, list, 5)
	assert.Equal(t, "alacritty", list[0]["identifier"])
	assert.Contains(t, list[0], "current-maintainers")
	assert.NotContains(t, list[0], "past-maintainers")

	grouped := get(t, newTestRouter(t, types.PresentationGrouped), "/ports")
	require.Equal(t, http.StatusOK, grouped.Code)
	var byIdentifier map[string][]map[string]any
	require.NoError(t, json.Unmarshal(grouped.Body.Bytes(), &byIdentifier))
	require.Len(t, byIdentifier, 5)
	require.Len(t, byIdentifier["GitHub"], 1)
}

func TestCollaboratorRoutes(t *testing.T) {
	router := newTestRouter(t, types.PresentationGrouped)

	rec := get(t, router, "/collaborators/bob")
	require.Equal(t, http.StatusOK, rec.Code)
	var bob types.Collaborator
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bob))
	if diff := cmp.Diff(types.Collaborator{Name: "Robert", URL: "https://github.com/bob"}, bob); diff != "" {
		t.Fatalf("unexpected collaborator (-want +got):\n%s", diff)
	}

	rec = get(t, router, "/collaborators")
	require.Equal(t, http.StatusOK, rec.Code)
	var byUsername map[string]types.Collaborator
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byUsername))
	require.Len(t, byUsername, 4)

	flat := get(t, newTestRouter(t, types.PresentationFlat), "/collaborators")
	var list []types.Collaborator
	require.NoError(t, json.Unmarshal(flat.Body.Bytes(), &list))
	require.Len(t, list, 4)
}

func TestCategoryAndShowcaseRoutes(t *testing.T) {
	router := newTestRouter(t, types.PresentationSingleOrMultiple)

	rec := get(t, router, "/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "Terminal", categories["terminal"]["name"])
	assert.NotContains(t, categories["terminal"], "key")

	rec = get(t, router, "/categories/social")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, router, "/showcases")
	require.Equal(t, http.StatusOK, rec.Code)
	var showcases []types.Showcase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &showcases))
	require.Len(t, showcases, 1)
}

func TestHealthRoute(t *testing.T) {
	rec := get(t, newTestRouter(t, types.PresentationFlat), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status       string               `json:"status"`
		Presentation string               `json:"presentation"`
		Catalog      types.CatalogSummary `json:"catalog"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "flat", body.Presentation)
	assert.Equal(t, 5, body.Catalog.Ports)
	assert.Equal(t, 4, body.Catalog.Collaborators)
}

func TestHealthReportsDocumentCache(t *testing.T) {
	server := miniredis.RunT(t)
	cache, err := adapters.NewRedisDocumentCache("redis://" + server.Addr())
	require.NoError(t, err)
	defer cache.Close()
	router := NewRouter(newTestQuery(t, types.PresentationSingleOrMultiple), cache)

	type healthBody struct {
		Status string `json:"status"`
		Cache  string `json:"cache"`
	}
	var body healthBody
	rec := get(t, router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthBody{Status: "ok", Cache: "ok"}, body)

	server.Close()
	body = healthBody{}
	rec = get(t, router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthBody{Status: "degraded", Cache: "unavailable"}, body)
}

func TestHealthOmitsCacheWhenNotConfigured(t *testing.T) {
	rec := get(t, newTestRouter(t, types.PresentationFlat), "/health")
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "cache")
}

func TestServeShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, addr, gin.New())
	}()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
