// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/go-playground/validator/v10"
)

var (
	digitsRegexp     = regexp.MustCompile(`^[0-9]+$`)
	debtorNameRegexp = regexp.MustCompile(`^[\p{L} .'\-]+$`)
)

// minDebtorNameLen counts runes after trimming surrounding spaces.
const minDebtorNameLen = 3

// structFieldNames maps wire names to the Go field names StructPartial expects.
var structFieldNames = map[string]string{
	models.FieldApplicationNo: "ApplicationNo",
	models.FieldAppID:         "AppID",
	models.FieldNamaNasabah:   "NamaNasabah",
	models.FieldNoKTP:         "NoKTP",
}

// fieldLabels are the names the form shows for each field.
var fieldLabels = map[string]string{
	models.FieldApplicationNo: "Order ID",
	models.FieldAppID:         "App ID",
	models.FieldNamaNasabah:   "Debtor name",
	models.FieldNoKTP:         "No. KTP",
}

// messages holds the text for each field and failed rule.
var messages = map[string]map[string]string{
	models.FieldApplicationNo: {
		"digits": "Order ID must contain digits only",
		"max":    "Order ID must not exceed 20 characters",
	},
	models.FieldAppID: {
		"digits": "App ID must contain digits only",
		"max":    "App ID must not exceed 20 characters",
	},
	models.FieldNamaNasabah: {
		"namelen":    "Kindly enter at least 3 characters of the debtor name",
		"max":        "Kindly keep the debtor name under 100 characters",
		"debtorname": "Kindly use letters, spaces, dots, apostrophes or hyphens only",
	},
	models.FieldNoKTP: {
		"digits": "No. KTP must contain digits only",
		"len":    "No. KTP must be exactly 16 digits",
	},
}

// SearchInputValidator validates [models.SearchInput] with go-playground/validator.
type SearchInputValidator struct {
	validate *validator.Validate
}

// NewSearchInputValidator builds the validator and registers the custom
// "digits", "namelen" and "debtorname" rules used by the model tags.
func NewSearchInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("namelen", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= minDebtorNameLen
	})
	_ = v.RegisterValidation("debtorname", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return debtorNameRegexp.MatchString(name) && strings.IndexFunc(name, unicode.IsLetter) >= 0
	})

	return &SearchInputValidator{validate: v}
}

// Validate checks a models.SearchInput (value or pointer). When fields are
// given, only those wire names are checked. A rejected input yields a
// *ValidationError.
func (v *SearchInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchInput:
		return v.validateSearchInput(ctx, value, fields...)
	case *models.SearchInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSearchInput(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SearchInputValidator) validateSearchInput(ctx context.Context, in models.SearchInput, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, in)
	} else {
		structFields := make([]string, 0, len(fields))
		for _, field := range fields {
			name, ok := structFieldNames[field]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			structFields = append(structFields, name)
		}
		err = v.validate.StructPartialCtx(ctx, in, structFields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate search input: %w", err)
	}

	issues := make(Issues, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}

	return &ValidationError{Issues: issues}
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	label, ok := fieldLabels[field]
	if !ok {
		label = field
	}
	return label + " is invalid"
}

// IssuesOf extracts the issues carried by err, or nil when err is not a
// validation error.
func IssuesOf(err error) Issues {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Issues
	}
	return nil
}
