package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// ListGallery handler
// @Summary List gallery items
// @Tags Content
// @Produce json
// @Param category query string false "Category"
// @Param event_id query int false "Event"
// @Success 200 {object} response.Envelope{data=[]model.GalleryEntity}
// @Router /api/gallery [get]
func (s *RestHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	f := &model.GalleryFilter{
		ListQuery: listQuery(r),
		Category:  r.URL.Query().Get("category"),
		EventID:   queryUint(r, "event_id"),
	}
	res, err := s.ContentApp.ListGallery(r.Context(), principal(r), f)
	list(w, res, err)
}

// GetGallery handler
// @Summary Get a gallery item
// @Tags Content
// @Produce json
// @Param id path int true "Gallery ID"
// @Success 200 {object} response.Envelope{data=model.GalleryEntity}
// @Router /api/gallery/{id} [get]
func (s *RestHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.ContentApp.GetGallery(r.Context(), principal(r), id)
	ok(w, res, err)
}

// CreateGallery handler
// @Summary Add a gallery item
// @Tags Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.GalleryRequest true "Gallery item"
// @Success 201 {object} response.Envelope{data=model.GalleryEntity}
// @Router /api/admin/gallery [post]
func (s *RestHandler) CreateGallery(w http.ResponseWriter, r *http.Request) {
	var req model.GalleryRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ContentApp.CreateGallery(r.Context(), principal(r), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "gallery item created")
}

// UpdateGallery handler
// @Summary Update a gallery item
// @Tags Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Gallery ID"
// @Param request body model.GalleryRequest true "Gallery item"
// @Success 200 {object} response.Envelope{data=model.GalleryEntity}
// @Router /api/admin/gallery/{id} [put]
func (s *RestHandler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.GalleryRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ContentApp.UpdateGallery(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// DeleteGallery handler
// @Summary Delete a gallery item
// @Tags Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "Gallery ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/gallery/{id} [delete]
func (s *RestHandler) DeleteGallery(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.ContentApp.DeleteGallery(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "gallery item deleted")
}

// ListNews handler
// @Summary List news articles
// @Description Visitors see published articles only
// @Tags Content
// @Produce json
// @Param category query string false "Category"
// @Param status query string false "Status (editors only)"
// @Success 200 {object} response.Envelope{data=[]model.NewsEntity}
// @Router /api/news [get]
func (s *RestHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	f := &model.NewsFilter{
		ListQuery: listQuery(r),
		Category:  r.URL.Query().Get("category"),
		Status:    r.URL.Query().Get("status"),
	}
	res, err := s.ContentApp.ListNews(r.Context(), principal(r), f)
	list(w, res, err)
}

// GetNewsBySlug handler
// @Summary Read a published article
// @Tags Content
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} response.Envelope{data=model.NewsEntity}
// @Failure 404 {object} response.Envelope
// @Router /api/news/{slug} [get]
func (s *RestHandler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	res, err := s.ContentApp.GetPublishedNews(r.Context(), mux.Vars(r)["slug"])
	ok(w, res, err)
}

// GetNews handler
// @Summary Get an article in any status
// @Tags Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} response.Envelope{data=model.NewsEntity}
// @Router /api/admin/news/{id} [get]
func (s *RestHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	res, err := s.ContentApp.GetNews(r.Context(), id)
	ok(w, res, err)
}

// CreateNews handler
// @Summary Write an article
// @Tags Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.NewsRequest true "Article"
// @Success 201 {object} response.Envelope{data=model.NewsEntity}
// @Router /api/admin/news [post]
func (s *RestHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req model.NewsRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ContentApp.CreateNews(r.Context(), principal(r), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "article created")
}

// UpdateNews handler
// @Summary Update an article
// @Tags Content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param request body model.NewsRequest true "Article"
// @Success 200 {object} response.Envelope{data=model.NewsEntity}
// @Router /api/admin/news/{id} [put]
func (s *RestHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	var req model.NewsRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.ContentApp.UpdateNews(r.Context(), principal(r), id, &req)
	ok(w, res, err)
}

// DeleteNews handler
// @Summary Delete an article
// @Tags Content
// @Security BearerAuth
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} response.Envelope
// @Router /api/admin/news/{id} [delete]
func (s *RestHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(w, r, "id")
	if !valid {
		return
	}
	if err := s.ContentApp.DeleteNews(r.Context(), principal(r), id); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "article deleted")
}
