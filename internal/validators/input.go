// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-portal-client/models"
)

// Field names accepted by [InputValidator.Validate] for partial checks.
const (
	FieldUsername       = "Username"
	FieldPassword       = "Password"
	FieldTOTPCode       = "TOTPCode"
	FieldRecaptchaToken = "RecaptchaToken"
)

// InputValidator checks user-supplied request values against their
// validate struct tags.
type InputValidator struct {
	validate *validator.Validate
}

func NewInputValidator() Validator {
	return &InputValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginAttempt, models.BanRequest, models.ApplicationRequest,
		models.TOTPCodeRequest, models.ResetSeasonRequest:
		return v.check(value, fields...)
	case *models.LoginAttempt, *models.BanRequest, *models.ApplicationRequest,
		*models.TOTPCodeRequest, *models.ResetSeasonRequest:
		return v.check(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) check(obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describe(ve))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// describe renders validation failures as short user-facing phrases.
func describe(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := humanField(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must be %s characters", field, fe.Param()))
		case "numeric":
			msgs = append(msgs, field+" must contain digits only")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

func humanField(name string) string {
	switch name {
	case "TOTPCode", "Code":
		return "code"
	case "RecaptchaToken":
		return "captcha"
	default:
		return strings.ToLower(name)
	}
}
