package post

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.ConnectPrimary(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Post{}))

	handler := NewHandler(NewService(NewRepository(db)))

	router := gin.New()
	api := router.Group("/api/v1")
	RegisterPublicRoutes(api, handler)
	RegisterAdminRoutes(api.Group("/admin"), handler)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type postEnvelope struct {
	Data Post `json:"data"`
}

type postListEnvelope struct {
	Data []Post `json:"data"`
}

func TestPostLifecycle(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/posts", CreatePostRequest{
		Slug:      "first-post",
		Title:     "First post",
		TitleAr:   "المنشور الأول",
		Published: true,
		Date:      "2026-01-15",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created postEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	w = performRequest(router, http.MethodGet, "/api/v1/posts/first-post", nil)
	require.Equal(t, http.StatusOK, w.Code)

	title := "First post, revised"
	w = performRequest(router, http.MethodPut, "/api/v1/admin/posts/1", UpdatePostRequest{Title: &title})
	require.Equal(t, http.StatusOK, w.Code)
	var updated postEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "First post, revised", updated.Data.Title)
	assert.Equal(t, "first-post", updated.Data.Slug)

	w = performRequest(router, http.MethodDelete, "/api/v1/admin/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/posts/first-post", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicListHidesDrafts(t *testing.T) {
	router := setupRouter(t)

	for _, req := range []CreatePostRequest{
		{Slug: "live", Title: "Live", Published: true},
		{Slug: "draft", Title: "Draft", Published: false},
	} {
		w := performRequest(router, http.MethodPost, "/api/v1/admin/posts", req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/api/v1/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public postListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public.Data, 1)
	assert.Equal(t, "live", public.Data[0].Slug)

	w = performRequest(router, http.MethodGet, "/api/v1/admin/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all postListEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Data, 2)

	// drafts are not reachable by slug either
	w = performRequest(router, http.MethodGet, "/api/v1/posts/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost_SlugConflict(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/v1/admin/posts", CreatePostRequest{
		Slug: "unique", Title: "One", Published: true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/admin/posts", CreatePostRequest{
		Slug: "unique", Title: "Two", Published: true,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePost_InvalidID(t *testing.T) {
	router := setupRouter(t)

	title := "x"
	w := performRequest(router, http.MethodPut, "/api/v1/admin/posts/abc", UpdatePostRequest{Title: &title})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
