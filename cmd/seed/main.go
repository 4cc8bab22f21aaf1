package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"portfolio/internal/database"
	"portfolio/internal/domain/auth"
	"portfolio/internal/domain/file"
	"portfolio/internal/domain/post"
	"portfolio/internal/domain/project"
)

// Seeds the owner account plus a handful of demo rows so a fresh checkout has
// something to click through. Safe to run more than once: existing rows are
// left alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	filesDB := os.Getenv("FILES_DB_PATH")
	if filesDB == "" {
		filesDB = "files.db"
	}

	primary, err := database.ConnectPrimary(dsn)
	if err != nil {
		log.Fatal(err)
	}
	secondary, err := database.ConnectSecondary(filesDB)
	if err != nil {
		log.Fatal(err)
	}

	if err := primary.AutoMigrate(&auth.User{}, &post.Post{}, &project.Project{}, &file.PrimaryFile{}); err != nil {
		log.Fatal(err)
	}
	if err := secondary.AutoMigrate(&file.RawFile{}, &file.FileFeature{}, &file.FileDownload{}); err != nil {
		log.Fatal(err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var count int64
	primary.Model(&auth.User{}).Where("email = ?", email).Count(&count)
	if count == 0 {
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatal(err)
		}
		owner := auth.User{Email: email, PasswordHash: hash, Name: "Owner", Role: auth.RoleOwner}
		if err := primary.Create(&owner).Error; err != nil {
			log.Fatal(err)
		}
		log.Printf("created owner account %s", email)
	} else {
		log.Printf("owner account %s already exists, skipping", email)
	}

	seedContent(primary)
	seedCatalogue(secondary)

	log.Println("seed complete")
}

func seedContent(db *gorm.DB) {
	var posts int64
	db.Model(&post.Post{}).Count(&posts)
	if posts == 0 {
		demo := post.Post{
			Slug:      "hello-world",
			Title:     "Hello, world",
			TitleAr:   "مرحبا بالعالم",
			Excerpt:   "First post on the new site.",
			ExcerptAr: "أول منشور على الموقع الجديد.",
			Content:   "Welcome to the portfolio.",
			ContentAr: "مرحبا بكم في الموقع.",
			Tags:      "announcement",
			Published: true,
			Date:      time.Now(),
		}
		if err := db.Create(&demo).Error; err != nil {
			log.Printf("seed post: %v", err)
		}
	}

	var projects int64
	db.Model(&project.Project{}).Count(&projects)
	if projects == 0 {
		demo := project.Project{
			Title:         "Portfolio backend",
			TitleAr:       "الواجهة الخلفية للموقع",
			Description:   "The API serving this very site.",
			DescriptionAr: "الواجهة البرمجية التي تخدم هذا الموقع.",
			Tech:          "go,gin,gorm",
		}
		if err := db.Create(&demo).Error; err != nil {
			log.Printf("seed project: %v", err)
		}
	}
}

func seedCatalogue(db *gorm.DB) {
	var files int64
	db.Model(&file.RawFile{}).Count(&files)
	if files != 0 {
		return
	}

	raw := file.RawFile{
		Name:         "cv.pdf",
		OriginalName: "cv.pdf",
		MimeType:     "application/pdf",
		Size:         102400,
		Path:         "files/cv.pdf",
		URL:          "/static/media/files/cv.pdf",
		Folder:       "files",
	}
	if err := db.Create(&raw).Error; err != nil {
		log.Printf("seed raw file: %v", err)
		return
	}
	feature := file.FileFeature{
		FileID:      raw.ID,
		Title:       "Curriculum Vitae",
		TitleAr:     "السيرة الذاتية",
		Description: "Latest CV, updated regularly.",
		Category:    file.CategoryDocument,
		Featured:    true,
	}
	if err := db.Create(&feature).Error; err != nil {
		log.Printf("seed file feature: %v", err)
	}
}
