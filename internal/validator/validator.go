package validator

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"videotube/internal/domain"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration validates an account registration payload.
func (v *Validator) ValidateRegistration(r *domain.Registration) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username_required"),
			validation.Match(usernameRegex).Error("invalid_username_format"),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("full_name_required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 72).Error("password_length_8_to_72"),
		),
	)
}

// ValidateVideoUpload validates the metadata of a video upload.
func (v *Validator) ValidateVideoUpload(title, description string) error {
	return validation.Errors{
		"title": validation.Validate(strings.TrimSpace(title),
			validation.Required.Error("title_required")),
		"description": validation.Validate(strings.TrimSpace(description),
			validation.Required.Error("description_required")),
	}.Filter()
}

// ValidatePlaylist validates a playlist creation payload.
func (v *Validator) ValidatePlaylist(name, description string) error {
	return validation.Errors{
		"name": validation.Validate(strings.TrimSpace(name),
			validation.Required.Error("name_required")),
		"description": validation.Validate(strings.TrimSpace(description),
			validation.Required.Error("description_required")),
	}.Filter()
}
