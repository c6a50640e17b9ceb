package validators

import (
	"context"

	"github.com/MKhiriev/go-article-board/models"
)

// Field names accepted by UserValidator.
const (
	FieldUserID   = "user_id"
	FieldLogin    = "login"
	FieldPassword = "password"
)

// userRules declares the validation for user payloads: every field is simply
// required. Registration checks all three fields; authentication restricts
// validation to login and password via the fields argument.
var userRules = map[string]FieldRule{
	FieldUserID:   {Rule: RuleRequired, Err: ErrInvalidUserID},
	FieldLogin:    {Rule: RuleRequired, Err: ErrInvalidLogin},
	FieldPassword: {Rule: RuleRequired, Err: ErrInvalidPassword},
}

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		rule, ok := userRules[f]
		if !ok {
			return ErrUnknownField
		}

		if err := rule.apply(userField(user, f)); err != nil {
			return err
		}
	}

	return nil
}

func userField(user models.User, field string) string {
	switch field {
	case FieldUserID:
		return string(user.UserID)
	case FieldLogin:
		return user.Login
	case FieldPassword:
		return user.Password
	default:
		return ""
	}
}
