package post

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if existing, _ := s.repo.GetBySlug(ctx, req.Slug); existing != nil {
		return nil, ErrSlugTaken
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	p := &Post{
		Slug:      req.Slug,
		Title:     req.Title,
		TitleAr:   req.TitleAr,
		Excerpt:   req.Excerpt,
		ExcerptAr: req.ExcerptAr,
		Content:   req.Content,
		ContentAr: req.ContentAr,
		Tags:      req.Tags,
		Image:     req.Image,
		Featured:  req.Featured,
		Published: req.Published,
		Date:      date,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns published posts for the public site, everything for the
// dashboard.
func (s *Service) List(ctx context.Context, includeDrafts bool) ([]Post, error) {
	return s.repo.List(ctx, !includeDrafts)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug only yields published posts; drafts are dashboard-only.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdatePostRequest) (*Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != p.Slug {
		if existing, _ := s.repo.GetBySlug(ctx, *req.Slug); existing != nil {
			return nil, ErrSlugTaken
		}
		p.Slug = *req.Slug
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.TitleAr != nil {
		p.TitleAr = *req.TitleAr
	}
	if req.Excerpt != nil {
		p.Excerpt = *req.Excerpt
	}
	if req.ExcerptAr != nil {
		p.ExcerptAr = *req.ExcerptAr
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.ContentAr != nil {
		p.ContentAr = *req.ContentAr
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		p.Date = date
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
