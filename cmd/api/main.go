package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio/internal/database"
	"portfolio/internal/domain/achievement"
	"portfolio/internal/domain/auth"
	"portfolio/internal/domain/course"
	"portfolio/internal/domain/file"
	"portfolio/internal/domain/media"
	"portfolio/internal/domain/post"
	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/publication"
	"portfolio/internal/middleware"
	jwtsvc "portfolio/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	filesDB := envOr("FILES_DB_PATH", "files.db")
	mediaDir := envOr("MEDIA_DIR", "./media")
	mediaBaseURL := envOr("MEDIA_BASE_URL", "/static/media")
	port := envOr("PORT", "8080")

	primary, err := database.ConnectPrimary(dsn)
	if err != nil {
		log.Fatal(err)
	}
	secondary, err := database.ConnectSecondary(filesDB)
	if err != nil {
		log.Fatal(err)
	}

	if err := primary.AutoMigrate(
		&auth.User{},
		&profile.Profile{},
		&profile.Education{},
		&profile.Experience{},
		&post.Post{},
		&project.Project{},
		&publication.Publication{},
		&course.Course{},
		&achievement.Achievement{},
		&file.PrimaryFile{},
	); err != nil {
		log.Fatal("primary AutoMigrate failed: ", err)
	}
	if err := secondary.AutoMigrate(
		&file.RawFile{},
		&file.FileFeature{},
		&file.FileDownload{},
	); err != nil {
		log.Fatal("secondary AutoMigrate failed: ", err)
	}

	blobStore, err := media.NewDiskStore(mediaDir, mediaBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(auth.NewRepository(primary), j)
	authHandler := auth.NewHandler(authService)

	fileService := file.NewService(file.NewSecondaryStore(secondary), file.NewPrimaryStore(primary))
	fileHandler := file.NewHandler(fileService, blobStore)

	mediaHandler := media.NewHandler(blobStore, media.NewHub())

	postHandler := post.NewHandler(post.NewService(post.NewRepository(primary)))
	projectHandler := project.NewHandler(project.NewRepository(primary))
	publicationHandler := publication.NewHandler(primary)
	courseHandler := course.NewHandler(primary)
	achievementHandler := achievement.NewHandler(primary)
	profileHandler := profile.NewHandler(profile.NewRepository(primary))

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())
	r.Use(gin.Logger())

	r.Static(mediaBaseURL, mediaDir)

	v1 := r.Group("/api/v1")
	{
		auth.RegisterPublicRoutes(v1, authHandler)
		profile.RegisterPublicRoutes(v1, profileHandler)
		post.RegisterPublicRoutes(v1, postHandler)
		project.RegisterPublicRoutes(v1, projectHandler)
		publication.RegisterPublicRoutes(v1, publicationHandler)
		course.RegisterPublicRoutes(v1, courseHandler)
		achievement.RegisterPublicRoutes(v1, achievementHandler)
		file.RegisterPublicRoutes(v1, fileHandler)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(j))
		{
			auth.RegisterAdminRoutes(admin, authHandler)
			profile.RegisterAdminRoutes(admin, profileHandler)
			post.RegisterAdminRoutes(admin, postHandler)
			project.RegisterAdminRoutes(admin, projectHandler)
			publication.RegisterAdminRoutes(admin, publicationHandler)
			course.RegisterAdminRoutes(admin, courseHandler)
			achievement.RegisterAdminRoutes(admin, achievementHandler)
			file.RegisterAdminRoutes(admin, fileHandler)
			media.RegisterAdminRoutes(admin, mediaHandler)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
