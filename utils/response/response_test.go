package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	cerr "github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestEnvelope_StatusAndSuccessAgree(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
	}{
		{"success", func(w http.ResponseWriter) { response.Success(w, map[string]int{"id": 1}, "ok") }, http.StatusOK},
		{"created", func(w http.ResponseWriter) { response.Created(w, nil, "created") }, http.StatusCreated},
		{"paginated", func(w http.ResponseWriter) {
			response.Paginated(w, []int{1}, model.PaginationMeta{CurrentPage: 1, PerPage: 10, Total: 1, TotalPages: 1}, "")
		}, http.StatusOK},
		{"validation", func(w http.ResponseWriter) {
			response.ValidationError(w, []cerr.FieldError{{Field: "email", Message: "email is required"}})
		}, http.StatusBadRequest},
		{"unauthorized", func(w http.ResponseWriter) { response.Unauthorized(w, "") }, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { response.Forbidden(w, "") }, http.StatusForbidden},
		{"not found", func(w http.ResponseWriter) { response.NotFound(w, "") }, http.StatusNotFound},
		{"server error", func(w http.ResponseWriter) { response.ServerError(w) }, http.StatusInternalServerError},
		{"forced mismatch", func(w http.ResponseWriter) {
			response.JSON(w, http.StatusConflict, response.Envelope{Success: true, Message: "conflict"})
		}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantStatus >= 200 && tt.wantStatus < 300, body["success"])
			if !body["success"].(bool) {
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, cerr.SetCustomError(constant.ErrDonationCompleted))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "completed donations cannot be deleted", body["message"])
	assert.Equal(t, "0018", body["code"])

	rec = httptest.NewRecorder()
	response.Error(rec, cerr.SetCustomError(constant.ErrOTPCooldown).WithMeta("retry_after_seconds", 30))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(30), body["data"].(map[string]any)["retry_after_seconds"])

	rec = httptest.NewRecorder()
	response.Error(rec, errors.New("dial tcp 10.0.0.1:3306: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "error internal", body["message"])
	assert.NotContains(t, rec.Body.String(), "3306")
}

func TestCSV(t *testing.T) {
	rec := httptest.NewRecorder()
	response.CSV(rec, "complaints.csv", []string{"Number", "Subject"}, [][]string{
		{"BHRC2024030001", `He said "no"`},
		{"BHRC2024030002", "a, b"},
	})

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="complaints.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "\"Number\",\"Subject\"\r\n\"BHRC2024030001\",\"He said \"\"no\"\"\"\r\n\"BHRC2024030002\",\"a, b\"\r\n", rec.Body.String())
}
