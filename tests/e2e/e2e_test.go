package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
	"portfolio/internal/domain/auth"
	"portfolio/internal/domain/file"
	"portfolio/internal/domain/media"
	"portfolio/internal/domain/post"
	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/middleware"
	jwtsvc "portfolio/internal/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type suite struct {
	router *gin.Engine
	token  string
}

func setupSuite(t *testing.T) *suite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	primary, err := database.ConnectPrimary(":memory:")
	require.NoError(t, err)
	require.NoError(t, primary.AutoMigrate(
		&auth.User{},
		&profile.Profile{},
		&profile.Education{},
		&profile.Experience{},
		&post.Post{},
		&project.Project{},
		&file.PrimaryFile{},
	))

	secondary, err := database.ConnectSecondary(":memory:")
	require.NoError(t, err)
	require.NoError(t, secondary.AutoMigrate(&file.RawFile{}, &file.FileFeature{}, &file.FileDownload{}))

	hash, err := auth.HashPassword("owner-password")
	require.NoError(t, err)
	require.NoError(t, primary.Create(&auth.User{
		Email:        "owner@example.com",
		PasswordHash: hash,
		Role:         auth.RoleOwner,
	}).Error)

	blobs, err := media.NewDiskStore(t.TempDir(), "/static/media")
	require.NoError(t, err)

	j := jwtsvc.New("e2e-test-secret", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(auth.NewRepository(primary), j))
	fileHandler := file.NewHandler(file.NewService(file.NewSecondaryStore(secondary), file.NewPrimaryStore(primary)), blobs)
	postHandler := post.NewHandler(post.NewService(post.NewRepository(primary)))
	projectHandler := project.NewHandler(project.NewRepository(primary))
	profileHandler := profile.NewHandler(profile.NewRepository(primary))
	mediaHandler := media.NewHandler(blobs, media.NewHub())

	router := gin.New()
	v1 := router.Group("/api/v1")
	auth.RegisterPublicRoutes(v1, authHandler)
	profile.RegisterPublicRoutes(v1, profileHandler)
	post.RegisterPublicRoutes(v1, postHandler)
	project.RegisterPublicRoutes(v1, projectHandler)
	file.RegisterPublicRoutes(v1, fileHandler)

	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAuth(j))
	auth.RegisterAdminRoutes(admin, authHandler)
	profile.RegisterAdminRoutes(admin, profileHandler)
	post.RegisterAdminRoutes(admin, postHandler)
	project.RegisterAdminRoutes(admin, projectHandler)
	file.RegisterAdminRoutes(admin, fileHandler)
	media.RegisterAdminRoutes(admin, mediaHandler)

	return &suite{router: router}
}

func (s *suite) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func (s *suite) login(t *testing.T) {
	t.Helper()
	w, env := s.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "owner-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	s.token = data.Token
}

func TestOwnerWorkflow(t *testing.T) {
	s := setupSuite(t)

	// admin surface is closed until login
	w, _ := s.request(t, http.MethodGet, "/api/v1/admin/posts", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	s.login(t)

	w, _ = s.request(t, http.MethodGet, "/api/v1/admin/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")

	// publish a post and see it on the public site
	w, _ = s.request(t, http.MethodPost, "/api/v1/admin/posts", gin.H{
		"slug":      "launch",
		"title":     "Site launch",
		"titleAr":   "إطلاق الموقع",
		"published": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	public := &suite{router: s.router} // no token
	w, env := public.request(t, http.MethodGet, "/api/v1/posts/launch", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Site launch")

	// catalogue a file and download it anonymously
	w, env = s.request(t, http.MethodPost, "/api/v1/admin/files", gin.H{
		"title":       "Press kit",
		"category":    "Archive",
		"downloadUrl": "/static/media/files/press.zip",
		"fullPath":    "files/press.zip",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created file.File
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env = public.request(t, http.MethodPost, "/api/v1/files/"+created.ID+"/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "/static/media/files/press.zip")

	// update the profile and read it back publicly
	w, _ = s.request(t, http.MethodPut, "/api/v1/admin/profile", gin.H{
		"name":   "Jane Doe",
		"nameAr": "جين دو",
		"title":  "Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = public.request(t, http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Jane Doe")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := setupSuite(t)

	w, env := s.request(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "guess",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}
