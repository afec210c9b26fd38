// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-borrower-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchInputValidator_Valid(t *testing.T) {
	v := NewSearchInputValidator()

	tests := []struct {
		name  string
		input models.SearchInput
	}{
		{name: "all empty", input: models.SearchInput{}},
		{name: "order id only", input: models.SearchInput{ApplicationNo: "20240001"}},
		{name: "app id only", input: models.SearchInput{AppID: "77"}},
		{name: "debtor name with punctuation", input: models.SearchInput{NamaNasabah: "Siti Nur'aini-Putri Jr."}},
		{name: "ktp only", input: models.SearchInput{NoKTP: "3171234567890001"}},
		{
			name: "all fields",
			input: models.SearchInput{
				ApplicationNo: "1",
				AppID:         "2",
				NamaNasabah:   "Budi",
				NoKTP:         "3171234567890001",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(context.Background(), tt.input))
		})
	}
}

func TestSearchInputValidator_Invalid(t *testing.T) {
	v := NewSearchInputValidator()

	tests := []struct {
		name        string
		input       models.SearchInput
		wantField   string
		wantMessage string
	}{
		{
			name:        "order id with letters",
			input:       models.SearchInput{ApplicationNo: "ABC123"},
			wantField:   models.FieldApplicationNo,
			wantMessage: "Order ID must contain digits only",
		},
		{
			name:        "order id too long",
			input:       models.SearchInput{ApplicationNo: strings.Repeat("1", 21)},
			wantField:   models.FieldApplicationNo,
			wantMessage: "Order ID must not exceed 20 characters",
		},
		{
			name:        "signed app id",
			input:       models.SearchInput{AppID: "-5"},
			wantField:   models.FieldAppID,
			wantMessage: "App ID must contain digits only",
		},
		{
			name:        "debtor name too short",
			input:       models.SearchInput{NamaNasabah: "Al"},
			wantField:   models.FieldNamaNasabah,
			wantMessage: "Kindly enter at least 3 characters of the debtor name",
		},
		{
			name:        "debtor name of spaces only",
			input:       models.SearchInput{NamaNasabah: "   "},
			wantField:   models.FieldNamaNasabah,
			wantMessage: "Kindly enter at least 3 characters of the debtor name",
		},
		{
			name:        "debtor name too short once trimmed",
			input:       models.SearchInput{NamaNasabah: "  Al  "},
			wantField:   models.FieldNamaNasabah,
			wantMessage: "Kindly enter at least 3 characters of the debtor name",
		},
		{
			name:        "debtor name without letters",
			input:       models.SearchInput{NamaNasabah: ". - ."},
			wantField:   models.FieldNamaNasabah,
			wantMessage: "Kindly use letters, spaces, dots, apostrophes or hyphens only",
		},
		{
			name:        "debtor name with digits",
			input:       models.SearchInput{NamaNasabah: "Budi 2"},
			wantField:   models.FieldNamaNasabah,
			wantMessage: "Kindly use letters, spaces, dots, apostrophes or hyphens only",
		},
		{
			name:        "ktp too short",
			input:       models.SearchInput{NoKTP: "317123"},
			wantField:   models.FieldNoKTP,
			wantMessage: "No. KTP must be exactly 16 digits",
		},
		{
			name:        "ktp with letters",
			input:       models.SearchInput{NoKTP: "31712345678900AB"},
			wantField:   models.FieldNoKTP,
			wantMessage: "No. KTP must contain digits only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSearchInput)

			issues := IssuesOf(err)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.wantField, issues[0].Field)
			assert.Equal(t, tt.wantMessage, issues[0].Message)
		})
	}
}

func TestSearchInputValidator_IssuesFollowFormOrder(t *testing.T) {
	v := NewSearchInputValidator()

	err := v.Validate(context.Background(), &models.SearchInput{
		ApplicationNo: "x",
		NoKTP:         "1",
	})

	issues := IssuesOf(err)
	require.Len(t, issues, 2)
	assert.Equal(t, []string{models.FieldApplicationNo, models.FieldNoKTP}, issues.Fields())
	assert.Empty(t, issues.For(models.FieldAppID))
	assert.Len(t, issues.ByField()[models.FieldNoKTP], 1)
}

func TestSearchInputValidator_PartialFields(t *testing.T) {
	v := NewSearchInputValidator()
	in := models.SearchInput{ApplicationNo: "x", NoKTP: "1"}

	err := v.Validate(context.Background(), in, models.FieldNoKTP)

	issues := IssuesOf(err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.FieldNoKTP, issues[0].Field)
}

func TestSearchInputValidator_UnknownField(t *testing.T) {
	v := NewSearchInputValidator()

	err := v.Validate(context.Background(), models.SearchInput{}, "birth_date")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSearchInputValidator_UnsupportedType(t *testing.T) {
	v := NewSearchInputValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "not an input"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.SearchInput)(nil)), ErrUnsupportedType)
}

func TestIssuesOf_NonValidationError(t *testing.T) {
	assert.Nil(t, IssuesOf(errors.New("boom")))
	assert.Nil(t, IssuesOf(nil))
}

func TestIssues_Views(t *testing.T) {
	issues := Issues{
		{Field: models.FieldNamaNasabah, Message: "a"},
		{Field: models.FieldNoKTP, Message: "b"},
		{Field: models.FieldNamaNasabah, Message: "c"},
	}

	assert.Equal(t, []string{"a", "b", "c"}, issues.Messages())
	assert.Equal(t, []string{"a", "c"}, issues.For(models.FieldNamaNasabah))
	assert.True(t, issues.Has(models.FieldNoKTP))
	assert.False(t, issues.Has(models.FieldAppID))
	assert.Equal(t, map[string][]string{
		models.FieldNamaNasabah: {"a", "c"},
		models.FieldNoKTP:       {"b"},
	}, issues.ByField())
	assert.Equal(t, "a; b; c", (&ValidationError{Issues: issues}).Error())
}
