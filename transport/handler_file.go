package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// multipart parts above this stay on disk
const multipartMemory = 8 << 20

// UploadFile handler
// @Summary Upload an image or document
// @Tags Files
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param type path string true "image or document"
// @Param file formData file true "File"
// @Success 201 {object} response.Envelope{data=model.FileUploadResponse}
// @Failure 413 {object} response.Envelope
// @Router /api/admin/files/{type} [post]
func (s *RestHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		response.Error(w, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("multipart form expected"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("file is required"))
		return
	}
	defer f.Close()

	res, err := s.FileApp.Upload(r.Context(), principal(r), mux.Vars(r)["type"], header.Filename, header.Size, f)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "file uploaded")
}

// DeleteFile handler
// @Summary Delete an uploaded file
// @Tags Files
// @Security BearerAuth
// @Produce json
// @Param type path string true "image or document"
// @Param name path string true "Stored file name"
// @Success 200 {object} response.Envelope
// @Router /api/admin/files/{type}/{name} [delete]
func (s *RestHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.FileApp.Delete(r.Context(), principal(r), vars["type"], vars["name"]); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "file deleted")
}
