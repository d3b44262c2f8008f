package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/bhrc-portal/constant"
	authmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/auth"
	complaintmocks "github.com/muhammadheryan/bhrc-portal/mocks/application/complaint"
	usermocks "github.com/muhammadheryan/bhrc-portal/mocks/application/user"
	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/transport"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminPrincipal  = &model.Principal{UserID: 1, Email: "admin@bhrc.org", Role: constant.RoleAdmin}
	memberPrincipal = &model.Principal{UserID: 9, Email: "asha@example.org", Role: constant.RoleMember}
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  []json.RawMessage `json:"errors"`
}

func newServer(rh *transport.RestHandler, opts transport.Options) http.Handler {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return transport.NewTransport(rh, opts)
}

func withTokens(t *testing.T) *authmocks.AuthApp {
	auth := authmocks.NewAuthApp(t)
	auth.On("ValidateToken", mock.Anything, "admin-token").Return(adminPrincipal, nil).Maybe()
	auth.On("ValidateToken", mock.Anything, "member-token").Return(memberPrincipal, nil).Maybe()
	auth.On("ValidateToken", mock.Anything, "stale-token").Return(nil, errors.SetCustomError(constant.ErrInvalidToken)).Maybe()
	return auth
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRoleGate(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		mockCall   func(u *usermocks.UserApp)
		wantStatus int
	}{
		{
			name:       "no token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token is treated as anonymous",
			token:      "stale-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "member on admin route",
			token:      "member-token",
			wantStatus: http.StatusForbidden,
		},
		{
			name:  "admin on admin route",
			token: "admin-token",
			mockCall: func(u *usermocks.UserApp) {
				u.On("Stats", mock.Anything).Return(&model.UserStats{Total: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := usermocks.NewUserApp(t)
			if tt.mockCall != nil {
				tt.mockCall(users)
			}
			h := newServer(&transport.RestHandler{AuthApp: withTokens(t), UserApp: users}, transport.Options{})

			rec, env := do(t, h, http.MethodGet, "/api/admin/users/stats", tt.token, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
		})
	}
}

func TestFileComplaint(t *testing.T) {
	valid := model.FileComplaintRequest{
		ComplainantName:  "Ravi Kumar",
		ComplainantEmail: "ravi@example.org",
		ComplainantPhone: "+919876543210",
		ComplaintType:    "police_misconduct",
		Subject:          "Detention without charge",
		Description:      "My brother was held at the station for three days without charge.",
	}

	t.Run("anonymous filing", func(t *testing.T) {
		complaints := complaintmocks.NewComplaintApp(t)
		complaints.On("File", mock.Anything, (*model.Principal)(nil), mock.AnythingOfType("*model.FileComplaintRequest"), "192.0.2.1").
			Return(&model.FileComplaintResponse{ID: 5, ComplaintNumber: "BHRC20260001", Status: constant.ComplaintStatusSubmitted}, nil).Once()
		h := newServer(&transport.RestHandler{AuthApp: withTokens(t), ComplaintApp: complaints}, transport.Options{})

		rec, env := do(t, h, http.MethodPost, "/api/complaints", "", valid)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), "BHRC20260001")
	})

	t.Run("file route accepts the documented payload", func(t *testing.T) {
		complaints := complaintmocks.NewComplaintApp(t)
		complaints.On("File", mock.Anything, (*model.Principal)(nil), &model.FileComplaintRequest{
			ComplainantName:  "Jane Doe",
			ComplainantEmail: "jane@x.com",
			ComplainantPhone: "9999999999",
			ComplaintType:    "discrimination",
			Subject:          "Denied service",
			Description:      "Refused entry to a public office because of caste.",
		}, mock.Anything).
			Return(&model.FileComplaintResponse{ID: 1, ComplaintNumber: "BHRC2024030001", Status: constant.ComplaintStatusSubmitted}, nil).Once()
		h := newServer(&transport.RestHandler{AuthApp: withTokens(t), ComplaintApp: complaints}, transport.Options{})

		rec, env := do(t, h, http.MethodPost, "/api/complaints/file", "", map[string]any{
			"complainant_name":  "Jane Doe",
			"complainant_email": "jane@x.com",
			"complainant_phone": "9999999999",
			"complaint_type":    "discrimination",
			"subject":           "Denied service",
			"description":       "Refused entry to a public office because of caste.",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), "BHRC2024030001")
	})

	t.Run("member filing is linked", func(t *testing.T) {
		complaints := complaintmocks.NewComplaintApp(t)
		complaints.On("File", mock.Anything, memberPrincipal, mock.Anything, mock.Anything).
			Return(&model.FileComplaintResponse{ID: 6, ComplaintNumber: "BHRC20260002"}, nil).Once()
		h := newServer(&transport.RestHandler{AuthApp: withTokens(t), ComplaintApp: complaints}, transport.Options{})

		rec, _ := do(t, h, http.MethodPost, "/api/complaints", "member-token", valid)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid body never reaches the service", func(t *testing.T) {
		complaints := complaintmocks.NewComplaintApp(t)
		h := newServer(&transport.RestHandler{AuthApp: withTokens(t), ComplaintApp: complaints}, transport.Options{})

		bad := valid
		bad.ComplainantEmail = "nope"
		bad.Description = "short"
		rec, env := do(t, h, http.MethodPost, "/api/complaints", "", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Len(t, env.Errors, 2)
	})
}

func TestBulkDeleteSelf(t *testing.T) {
	users := usermocks.NewUserApp(t)
	users.On("BulkDelete", mock.Anything, adminPrincipal, &model.BulkDeleteRequest{IDs: []uint64{1, 2}}).
		Return(nil, errors.SetCustomError(constant.ErrSelfAction)).Once()
	h := newServer(&transport.RestHandler{AuthApp: withTokens(t), UserApp: users}, transport.Options{})

	rec, env := do(t, h, http.MethodPost, "/api/admin/users/bulk-delete", "admin-token", map[string]any{"user_ids": []uint64{1, 2}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestMetricsKey(t *testing.T) {
	h := newServer(&transport.RestHandler{AuthApp: withTokens(t)}, transport.Options{MetricsKey: "s3cret"})

	rec, _ := do(t, h, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	h := newServer(&transport.RestHandler{AuthApp: withTokens(t)}, transport.Options{})
	rec, env := do(t, h, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}
