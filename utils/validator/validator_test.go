package validatorx_test

import (
	"testing"

	"github.com/muhammadheryan/bhrc-portal/model"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	validatorx "github.com/muhammadheryan/bhrc-portal/utils/validator"
	"github.com/stretchr/testify/assert"
)

func fieldsOf(errs []errors.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidate_AccumulatesEveryFailure(t *testing.T) {
	errs := validatorx.Validate(&model.FileComplaintRequest{
		ComplainantName:  "J",
		ComplainantEmail: "not-an-email",
		ComplainantPhone: "12",
		ComplaintType:    "unknown",
		Subject:          "Hi",
		Description:      "too short",
	})

	got := fieldsOf(errs)
	assert.Len(t, got, 6)
	assert.Equal(t, "complainant_name must be at least 2 characters", got["complainant_name"])
	assert.Equal(t, "complainant_email must be a valid email address", got["complainant_email"])
	assert.Equal(t, "complainant_phone must be a valid phone number", got["complainant_phone"])
	assert.Contains(t, got["complaint_type"], "complaint_type must be one of: discrimination, harassment")
	assert.Equal(t, "description must be at least 20 characters", got["description"])
}

func TestValidate_Valid(t *testing.T) {
	errs := validatorx.Validate(&model.FileComplaintRequest{
		ComplainantName:  "Jane Doe",
		ComplainantEmail: "jane@x.com",
		ComplainantPhone: "9999999999",
		ComplaintType:    "discrimination",
		Subject:          "Denied service",
		Description:      "I was denied service at the counter because of my caste.",
	})
	assert.Nil(t, errs)
}

func TestValidate_CrossField(t *testing.T) {
	tests := []struct {
		name    string
		req     model.ChangePasswordRequest
		wantErr map[string]string
	}{
		{
			name: "confirm differs from new",
			req: model.ChangePasswordRequest{
				CurrentPassword: "oldpass123",
				NewPassword:     "newpass123",
				ConfirmPassword: "newpass124",
			},
			wantErr: map[string]string{"confirm_password": "confirm_password must match new_password"},
		},
		{
			name: "new equals current",
			req: model.ChangePasswordRequest{
				CurrentPassword: "samepass123",
				NewPassword:     "samepass123",
				ConfirmPassword: "samepass123",
			},
			wantErr: map[string]string{"new_password": "new_password must differ from current_password"},
		},
		{
			name: "weak new password",
			req: model.ChangePasswordRequest{
				CurrentPassword: "oldpass123",
				NewPassword:     "onlyletters",
				ConfirmPassword: "onlyletters",
			},
			wantErr: map[string]string{"new_password": "new_password must be at least 8 characters and contain a letter and a digit"},
		},
		{
			name: "valid",
			req: model.ChangePasswordRequest{
				CurrentPassword: "oldpass123",
				NewPassword:     "newpass123",
				ConfirmPassword: "newpass123",
			},
			wantErr: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldsOf(validatorx.Validate(&tt.req))
			assert.Equal(t, tt.wantErr, got)
		})
	}
}

func TestValidate_AnonymousDonationSkipsDonorFields(t *testing.T) {
	anonymous := model.CreateDonationRequest{
		Amount:        500,
		DonationType:  "one-time",
		Category:      "general",
		PaymentMethod: "upi",
		IsAnonymous:   true,
	}
	assert.Nil(t, validatorx.Validate(&anonymous))

	named := anonymous
	named.IsAnonymous = false
	got := fieldsOf(validatorx.Validate(&named))
	assert.Contains(t, got, "donor_name")
	assert.Contains(t, got, "donor_email")
}

func TestValidate_OTPLength(t *testing.T) {
	tests := []struct {
		otp     string
		wantErr bool
	}{
		{otp: "1234"},
		{otp: "123456"},
		{otp: "12345678"},
		{otp: "1234567890"},
		{otp: "123", wantErr: true},
		{otp: "12345678901", wantErr: true},
		{otp: "12ab56", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.otp, func(t *testing.T) {
			errs := validatorx.Validate(&model.VerifyEmailRequest{Email: "a@example.org", OTP: tt.otp})
			assert.Equal(t, tt.wantErr, len(errs) > 0)

			errs = validatorx.Validate(&model.LoginOTPRequest{Email: "a@example.org", OTP: tt.otp})
			assert.Equal(t, tt.wantErr, len(errs) > 0)
		})
	}
}

func TestValidate_Role(t *testing.T) {
	assert.Nil(t, validatorx.Validate(&model.UpdateUserRoleRequest{Role: "moderator"}))
	got := fieldsOf(validatorx.Validate(&model.UpdateUserRoleRequest{Role: "superuser"}))
	assert.Equal(t, "role must be a valid role", got["role"])
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, validatorx.IsStrongPassword("abc12345"))
	assert.False(t, validatorx.IsStrongPassword("abc1234"))
	assert.False(t, validatorx.IsStrongPassword("12345678"))
	assert.False(t, validatorx.IsStrongPassword("abcdefgh"))
}
