package validator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validator provides validation methods for inbound forms.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ProposalForm is a visitor's article submission.
type ProposalForm struct {
	Title     string   `json:"title"`
	Brief     string   `json:"brief"`
	Content   string   `json:"content"`
	TagSlugs  []string `json:"tags"`
	ImagePath *string  `json:"image_path"`
}

// ValidateProposal validates an article proposal.
func (v *Validator) ValidateProposal(f *ProposalForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&f.Brief,
			validation.Required.Error("brief_required"),
		),
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
		),
	)
}

// CommentForm is a comment submission.
type CommentForm struct {
	Content string `json:"content"`
}

// ValidateComment validates a comment submission.
func (v *Validator) ValidateComment(f *CommentForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Content,
			validation.Required.Error("content_required"),
			validation.By(wordCountRule(500)),
		),
	)
}

// RegistrationForm is an account registration request.
type RegistrationForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateRegistration validates an account registration.
func (v *Validator) ValidateRegistration(f *RegistrationForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Username,
			validation.Required.Error("username_required"),
			validation.Length(3, 100).Error("username_length"),
			is.Alphanumeric.Error("username_alphanumeric"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 128).Error("password_length"),
		),
	)
}

// ValidatePassword validates a bare password, used by the reset flow.
func (v *Validator) ValidatePassword(password string) error {
	return validation.Validate(password,
		validation.Required.Error("password_required"),
		validation.Length(8, 128).Error("password_length"),
	)
}

// TagForm is a tag creation request.
type TagForm struct {
	Name string `json:"name"`
}

// ValidateTag validates a tag creation request.
func (v *Validator) ValidateTag(f *TagForm) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Name,
			validation.Required.Error("name_required"),
			validation.Length(1, 50).Error("name_too_long"),
		),
	)
}

// wordCountRule creates a validation rule for max word count.
func wordCountRule(maxWords int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		wordCount := len(strings.Fields(strings.TrimSpace(s)))
		if wordCount > maxWords {
			return validation.NewError("content_exceeds_500_words", "content exceeds 500 words")
		}
		return nil
	}
}

// FieldErrors flattens ozzo validation errors to a field→reason map
// suitable for a JSON error payload.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if ve, ok := err.(validation.Errors); ok {
		for field, fieldErr := range ve {
			out[field] = fieldErr.Error()
		}
	} else if err != nil {
		out["_"] = err.Error()
	}
	return out
}
