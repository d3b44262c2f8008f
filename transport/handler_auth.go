package transport

import (
	"net/http"

	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
)

// Register handler
// @Summary Register user
// @Description Register a new member account; a verification code is emailed
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} response.Envelope{data=model.RegisterResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.AuthApp.Register(r.Context(), &req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, res, "registration successful, check your email for the verification code")
}

// VerifyEmail handler
// @Summary Verify email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyEmailRequest true "Verify Request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/auth/verify-email [post]
func (s *RestHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyEmailRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.AuthApp.VerifyEmail(r.Context(), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "email verified")
}

// ResendOTP handler
// @Summary Resend verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendOTPRequest true "Resend Request"
// @Success 200 {object} response.Envelope{data=model.ResendOTPResponse}
// @Failure 429 {object} response.Envelope
// @Router /api/auth/resend-otp [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req model.ResendOTPRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.AuthApp.ResendOTP(r.Context(), &req)
	ok(w, res, err)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive an access and refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} response.Envelope{data=model.LoginResponse}
// @Failure 401 {object} response.Envelope
// @Router /api/auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.AuthApp.Login(r.Context(), &req, clientIP(r))
	ok(w, res, err)
}

// VerifyLogin handler
// @Summary Complete a login that requires an OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginOTPRequest true "Login OTP"
// @Success 200 {object} response.Envelope{data=model.LoginResponse}
// @Failure 400 {object} response.Envelope
// @Router /api/auth/login/verify [post]
func (s *RestHandler) VerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginOTPRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.AuthApp.VerifyLogin(r.Context(), &req, clientIP(r))
	ok(w, res, err)
}

// Refresh handler
// @Summary Rotate the token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh Request"
// @Success 200 {object} response.Envelope{data=model.TokenPair}
// @Failure 401 {object} response.Envelope
// @Router /api/auth/refresh [post]
func (s *RestHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if !bind(w, r, &req) {
		return
	}
	res, err := s.AuthApp.Refresh(r.Context(), &req)
	ok(w, res, err)
}

// ForgotPassword handler
// @Summary Request a password reset link
// @Description Always succeeds so account existence is not revealed
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Request"
// @Success 200 {object} response.Envelope
// @Router /api/auth/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.AuthApp.ForgotPassword(r.Context(), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "if the email is registered, a reset link has been sent")
}

// ResetPassword handler
// @Summary Reset password with a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/auth/reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.AuthApp.ResetPassword(r.Context(), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "password has been reset")
}

// Logout handler
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.LogoutRequest false "Logout Request"
// @Success 200 {object} response.Envelope
// @Router /api/auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req model.LogoutRequest
	// the body is optional
	if r.ContentLength > 0 && !bind(w, r, &req) {
		return
	}
	if err := s.AuthApp.Logout(r.Context(), principal(r), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "logged out")
}

// ChangePassword handler
// @Summary Change password
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.ChangePasswordRequest true "Change Request"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/auth/change-password [post]
func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if !bind(w, r, &req) {
		return
	}
	if err := s.AuthApp.ChangePassword(r.Context(), principal(r), &req); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "password changed")
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=model.UserEntity}
// @Router /api/auth/me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	res, err := s.AuthApp.Me(r.Context(), principal(r))
	ok(w, res, err)
}
