// Package content serves the public gallery and news sections and their admin CRUD.
package content

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/muhammadheryan/bhrc-portal/application/activity"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	galleryrepo "github.com/muhammadheryan/bhrc-portal/repository/gallery"
	newsrepo "github.com/muhammadheryan/bhrc-portal/repository/news"
	"github.com/muhammadheryan/bhrc-portal/utils/dberr"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/htmlsanitize"
	"github.com/muhammadheryan/bhrc-portal/utils/logger"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"go.uber.org/zap"
)

const (
	maxSlugAttempts = 10
	maxSlugLength   = 80
)

type ContentApp interface {
	CreateGallery(ctx context.Context, actor *model.Principal, req *model.GalleryRequest) (*model.GalleryEntity, error)
	UpdateGallery(ctx context.Context, actor *model.Principal, id uint64, req *model.GalleryRequest) (*model.GalleryEntity, error)
	DeleteGallery(ctx context.Context, actor *model.Principal, id uint64) error
	GetGallery(ctx context.Context, principal *model.Principal, id uint64) (*model.GalleryEntity, error)
	ListGallery(ctx context.Context, principal *model.Principal, filter *model.GalleryFilter) (*model.ListResponse[model.GalleryEntity], error)

	CreateNews(ctx context.Context, actor *model.Principal, req *model.NewsRequest) (*model.NewsEntity, error)
	UpdateNews(ctx context.Context, actor *model.Principal, id uint64, req *model.NewsRequest) (*model.NewsEntity, error)
	DeleteNews(ctx context.Context, actor *model.Principal, id uint64) error
	GetNews(ctx context.Context, id uint64) (*model.NewsEntity, error)
	GetPublishedNews(ctx context.Context, slug string) (*model.NewsEntity, error)
	ListNews(ctx context.Context, principal *model.Principal, filter *model.NewsFilter) (*model.ListResponse[model.NewsEntity], error)
}

type ContentAppImpl struct {
	galleryRepo galleryrepo.GalleryRepository
	newsRepo    newsrepo.NewsRepository
	activityApp activity.ActivityApp
	now         func() time.Time
}

func NewContentApp(galleryRepo galleryrepo.GalleryRepository, newsRepo newsrepo.NewsRepository, activityApp activity.ActivityApp) ContentApp {
	return &ContentAppImpl{
		galleryRepo: galleryRepo,
		newsRepo:    newsRepo,
		activityApp: activityApp,
		now:         time.Now,
	}
}

func isEditor(p *model.Principal) bool {
	return p != nil && constant.Allowed(p.Role, constant.CapContentManage)
}

func (s *ContentAppImpl) logChange(ctx context.Context, actor *model.Principal, action, kind string, id uint64, title string) {
	s.activityApp.Log(ctx, model.ActivityEntry{
		ActorID:     &actor.UserID,
		Action:      action,
		Description: kind + ": " + title,
		Metadata:    map[string]any{"type": kind, "id": id},
	})
}

func fillGallery(data *model.GalleryEntity, req *model.GalleryRequest) {
	data.Title = htmlsanitize.Plain(req.Title)
	data.Description = htmlsanitize.Plain(req.Description)
	data.Category = req.Category
	data.ImageURL = strings.TrimSpace(req.ImageURL)
	data.ThumbnailURL = strings.TrimSpace(req.ThumbnailURL)
	data.EventID = req.EventID
	if req.IsPublic != nil {
		data.IsPublic = *req.IsPublic
	}
}

func (s *ContentAppImpl) CreateGallery(ctx context.Context, actor *model.Principal, req *model.GalleryRequest) (*model.GalleryEntity, error) {
	data := &model.GalleryEntity{IsPublic: true, UploadedBy: &actor.UserID}
	fillGallery(data, req)

	id, err := s.galleryRepo.Create(ctx, data)
	if err != nil {
		logger.Error("[CreateGallery] err galleryRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.ID = id
	data.CreatedAt = s.now()

	s.logChange(ctx, actor, constant.ActionContentCreated, "gallery", id, data.Title)
	return data, nil
}

func (s *ContentAppImpl) findGallery(ctx context.Context, method string, id uint64) (*model.GalleryEntity, error) {
	g, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("["+method+"] err galleryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if g == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("gallery item not found")
	}
	return g, nil
}

func (s *ContentAppImpl) UpdateGallery(ctx context.Context, actor *model.Principal, id uint64, req *model.GalleryRequest) (*model.GalleryEntity, error) {
	data, err := s.findGallery(ctx, "UpdateGallery", id)
	if err != nil {
		return nil, err
	}
	fillGallery(data, req)
	if err := s.galleryRepo.Update(ctx, data); err != nil {
		logger.Error("[UpdateGallery] err galleryRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.logChange(ctx, actor, constant.ActionContentUpdated, "gallery", id, data.Title)
	return data, nil
}

func (s *ContentAppImpl) DeleteGallery(ctx context.Context, actor *model.Principal, id uint64) error {
	deleted, err := s.galleryRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteGallery] err galleryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("gallery item not found")
	}
	s.logChange(ctx, actor, constant.ActionContentDeleted, "gallery", id, strconv.FormatUint(id, 10))
	return nil
}

func (s *ContentAppImpl) GetGallery(ctx context.Context, principal *model.Principal, id uint64) (*model.GalleryEntity, error) {
	g, err := s.findGallery(ctx, "GetGallery", id)
	if err != nil {
		return nil, err
	}
	if !g.IsPublic && !isEditor(principal) {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("gallery item not found")
	}
	return g, nil
}

func (s *ContentAppImpl) ListGallery(ctx context.Context, principal *model.Principal, filter *model.GalleryFilter) (*model.ListResponse[model.GalleryEntity], error) {
	if !isEditor(principal) {
		filter.PublicOnly = true
	}
	items, total, err := s.galleryRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListGallery] err galleryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.GalleryEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}

// Slugify lowercases letters and digits and joins the runs with single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
		if b.Len() >= maxSlugLength {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "news"
	}
	return slug
}

func fillNews(data *model.NewsEntity, req *model.NewsRequest, now time.Time) {
	data.Title = htmlsanitize.Plain(req.Title)
	data.Summary = htmlsanitize.Plain(req.Summary)
	data.Content = htmlsanitize.Rich(req.Content)
	data.Category = req.Category
	data.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.Status != "" {
		data.Status = constant.NewsStatus(req.Status)
	}
	// first publish wins; republishing an archived post keeps the original date
	if data.Status == constant.NewsStatusPublished && data.PublishedAt == nil {
		data.PublishedAt = &now
	}
}

// CreateNews retries with a numeric suffix while the slug collides with an existing post.
func (s *ContentAppImpl) CreateNews(ctx context.Context, actor *model.Principal, req *model.NewsRequest) (*model.NewsEntity, error) {
	now := s.now()
	data := &model.NewsEntity{Status: constant.NewsStatusDraft, AuthorID: &actor.UserID}
	fillNews(data, req, now)

	base := Slugify(data.Title)
	var err error
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		data.Slug = base
		if attempt > 1 {
			data.Slug = base + "-" + strconv.Itoa(attempt)
		}
		data.ID, err = s.newsRepo.Create(ctx, data)
		if err == nil || !dberr.IsDuplicate(err) {
			break
		}
	}
	if err != nil {
		logger.Error("[CreateNews] err newsRepo.Create", zap.String("error", err.Error()), zap.String("slug", data.Slug))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	data.CreatedAt = now

	s.logChange(ctx, actor, constant.ActionContentCreated, "news", data.ID, data.Title)
	return data, nil
}

func (s *ContentAppImpl) GetNews(ctx context.Context, id uint64) (*model.NewsEntity, error) {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetNews] err newsRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if n == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("news not found")
	}
	return n, nil
}

func (s *ContentAppImpl) UpdateNews(ctx context.Context, actor *model.Principal, id uint64, req *model.NewsRequest) (*model.NewsEntity, error) {
	data, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	fillNews(data, req, s.now())
	if err := s.newsRepo.Update(ctx, data); err != nil {
		logger.Error("[UpdateNews] err newsRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.logChange(ctx, actor, constant.ActionContentUpdated, "news", id, data.Title)
	return data, nil
}

func (s *ContentAppImpl) DeleteNews(ctx context.Context, actor *model.Principal, id uint64) error {
	deleted, err := s.newsRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteNews] err newsRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound).WithMessage("news not found")
	}
	s.logChange(ctx, actor, constant.ActionContentDeleted, "news", id, strconv.FormatUint(id, 10))
	return nil
}

// GetPublishedNews counts a view on every successful read.
func (s *ContentAppImpl) GetPublishedNews(ctx context.Context, slug string) (*model.NewsEntity, error) {
	n, err := s.newsRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		logger.Error("[GetPublishedNews] err newsRepo.GetBySlug", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if n == nil || n.Status != constant.NewsStatusPublished {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithMessage("news not found")
	}

	if err := s.newsRepo.IncrementViews(ctx, n.ID); err != nil {
		logger.Warn("[GetPublishedNews] view not counted", zap.Uint64("id", n.ID), zap.String("error", err.Error()))
	} else {
		n.Views++
	}
	return n, nil
}

func (s *ContentAppImpl) ListNews(ctx context.Context, principal *model.Principal, filter *model.NewsFilter) (*model.ListResponse[model.NewsEntity], error) {
	if !isEditor(principal) {
		filter.PublishedOnly = true
		filter.Status = ""
	}
	items, total, err := s.newsRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListNews] err newsRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ListResponse[model.NewsEntity]{
		Items:      items,
		Pagination: querybuilder.PageOf(filter.ListQuery).Meta(total),
	}, nil
}
