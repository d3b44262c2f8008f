package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/bhrc-portal/constant"
	activitymocks "github.com/muhammadheryan/bhrc-portal/mocks/application/activity"
	gallerymocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/gallery"
	newsmocks "github.com/muhammadheryan/bhrc-portal/mocks/repository/news"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type fields struct {
	galleryRepo *gallerymocks.GalleryRepository
	newsRepo    *newsmocks.NewsRepository
	activityApp *activitymocks.ActivityApp
}

func newFields(t *testing.T) fields {
	return fields{
		galleryRepo: gallerymocks.NewGalleryRepository(t),
		newsRepo:    newsmocks.NewNewsRepository(t),
		activityApp: activitymocks.NewActivityApp(t),
	}
}

func (f fields) app() *ContentAppImpl {
	return &ContentAppImpl{
		galleryRepo: f.galleryRepo,
		newsRepo:    f.newsRepo,
		activityApp: f.activityApp,
		now:         func() time.Time { return now },
	}
}

func errType(t *testing.T, err error) constant.ErrorType {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	return ce.ErrorType()
}

var editor = &model.Principal{UserID: 2, Role: constant.RoleModerator}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Annual Report 2024", want: "annual-report-2024"},
		{title: "  Rights -- for   all! ", want: "rights-for-all"},
		{title: "???", want: "news"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}
}

func TestContentApp_CreateNews(t *testing.T) {
	t.Run("slug collision gets a suffix", func(t *testing.T) {
		f := newFields(t)
		f.newsRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.NewsEntity) bool { return n.Slug == "camp-report" })).
			Return(uint64(0), &mysql.MySQLError{Number: 1062}).Once()
		f.newsRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *model.NewsEntity) bool { return n.Slug == "camp-report-2" })).
			Return(uint64(9), nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		got, err := f.app().CreateNews(context.Background(), editor, &model.NewsRequest{
			Title: "Camp Report", Content: "<p>Hello</p><script>alert(1)</script>", Category: "report",
		})
		require.NoError(t, err)
		assert.Equal(t, "camp-report-2", got.Slug)
		assert.Equal(t, constant.NewsStatusDraft, got.Status)
		assert.Nil(t, got.PublishedAt)
		assert.NotContains(t, got.Content, "script")
	})

	t.Run("published immediately", func(t *testing.T) {
		f := newFields(t)
		f.newsRepo.On("Create", mock.Anything, mock.Anything).Return(uint64(10), nil).Once()
		f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

		got, err := f.app().CreateNews(context.Background(), editor, &model.NewsRequest{
			Title: "Statement", Content: "Statement body", Category: "press_release", Status: "published",
		})
		require.NoError(t, err)
		require.NotNil(t, got.PublishedAt)
		assert.Equal(t, now, *got.PublishedAt)
	})
}

func TestContentApp_UpdateNews_KeepsFirstPublishDate(t *testing.T) {
	f := newFields(t)
	first := now.AddDate(0, -2, 0)
	f.newsRepo.On("GetByID", mock.Anything, uint64(4)).Return(&model.NewsEntity{
		ID: 4, Slug: "old", Status: constant.NewsStatusArchived, PublishedAt: &first,
	}, nil).Once()
	f.newsRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	f.activityApp.On("Log", mock.Anything, mock.Anything).Return().Once()

	got, err := f.app().UpdateNews(context.Background(), editor, 4, &model.NewsRequest{
		Title: "Back again", Content: "Republished body", Category: "news", Status: "published",
	})
	require.NoError(t, err)
	assert.Equal(t, first, *got.PublishedAt)
	assert.Equal(t, "old", got.Slug)
}

func TestContentApp_GetPublishedNews(t *testing.T) {
	t.Run("draft is hidden", func(t *testing.T) {
		f := newFields(t)
		f.newsRepo.On("GetBySlug", mock.Anything, "draft-post").
			Return(&model.NewsEntity{ID: 1, Status: constant.NewsStatusDraft}, nil).Once()

		_, err := f.app().GetPublishedNews(context.Background(), "draft-post")
		assert.Equal(t, constant.ErrNotFound, errType(t, err))
	})

	t.Run("view counted", func(t *testing.T) {
		f := newFields(t)
		f.newsRepo.On("GetBySlug", mock.Anything, "live").
			Return(&model.NewsEntity{ID: 2, Status: constant.NewsStatusPublished, Views: 41}, nil).Once()
		f.newsRepo.On("IncrementViews", mock.Anything, uint64(2)).Return(nil).Once()

		got, err := f.app().GetPublishedNews(context.Background(), "Live")
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.Views)
	})
}

func TestContentApp_ListGallery(t *testing.T) {
	t.Run("visitors only see public items", func(t *testing.T) {
		f := newFields(t)
		f.galleryRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.GalleryFilter) bool { return fl.PublicOnly })).
			Return([]model.GalleryEntity{{ID: 1}}, int64(1), nil).Once()

		got, err := f.app().ListGallery(context.Background(), nil, &model.GalleryFilter{})
		require.NoError(t, err)
		assert.Len(t, got.Items, 1)
	})

	t.Run("editors see everything", func(t *testing.T) {
		f := newFields(t)
		f.galleryRepo.On("List", mock.Anything, mock.MatchedBy(func(fl *model.GalleryFilter) bool { return !fl.PublicOnly })).
			Return(nil, int64(0), nil).Once()

		_, err := f.app().ListGallery(context.Background(), editor, &model.GalleryFilter{})
		require.NoError(t, err)
	})
}
