// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by Validate for partial validation.
const (
	FieldID          = "ID"
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldImage       = "Image"
)

const maxObjectKeyLength = 255

// NoteValidator validates notes, drafts and object path requests.
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator returns a [Validator] with the note rules registered.
func NewNoteValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ("name") instead of Go names ("Name")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return strings.ToLower(field.Name)
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("objectkey", objectKey)
	_ = v.RegisterValidation("mediapath", mediaPath)

	return &NoteValidator{validate: v}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note, *models.Note,
		models.NoteDraft, *models.NoteDraft,
		models.DownloadURLRequest, *models.DownloadURLRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	return toValidationError(err)
}

// IsValidObjectKey reports whether key can name an object under an identity
// scope.
func IsValidObjectKey(key string) bool {
	if key == "" || key == "." || key == ".." || len(key) > maxObjectKeyLength {
		return false
	}

	for _, r := range key {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return false
		}
	}

	return true
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func objectKey(fl validator.FieldLevel) bool {
	return IsValidObjectKey(fl.Field().String())
}

func mediaPath(fl validator.FieldLevel) bool {
	_, _, err := models.ParseMediaPath(fl.Field().String())
	return err == nil
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fe.Field() + " must not be empty"
	case "objectkey":
		return fe.Field() + " must be a plain file name"
	case "mediapath":
		return fe.Field() + " must look like media/{identity}/{key}"
	case "uuid":
		return fe.Field() + " must be a UUID"
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
