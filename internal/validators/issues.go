// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
)

// Issue is a single validation failure.
type Issue struct {
	// Field is the wire name of the offending field (e.g. "no_ktp").
	Field string
	// Message is the human-readable description shown next to the field.
	Message string
}

// Issues is the ordered set of failures produced by one validation run.
type Issues []Issue

// Fields returns the field path of every issue, in order.
func (is Issues) Fields() []string {
	fields := make([]string, 0, len(is))
	for _, issue := range is {
		fields = append(fields, issue.Field)
	}
	return fields
}

// Messages returns the message of every issue, in order.
func (is Issues) Messages() []string {
	messages := make([]string, 0, len(is))
	for _, issue := range is {
		messages = append(messages, issue.Message)
	}
	return messages
}

// ByField groups the messages by field.
func (is Issues) ByField() map[string][]string {
	grouped := make(map[string][]string, len(is))
	for _, issue := range is {
		grouped[issue.Field] = append(grouped[issue.Field], issue.Message)
	}
	return grouped
}

// For returns the messages attached to field, nil when there are none.
func (is Issues) For(field string) []string {
	var messages []string
	for _, issue := range is {
		if issue.Field == field {
			messages = append(messages, issue.Message)
		}
	}
	return messages
}

// Has reports whether field has at least one issue.
func (is Issues) Has(field string) bool {
	for _, issue := range is {
		if issue.Field == field {
			return true
		}
	}
	return false
}

// ValidationError is returned by the validators when input is rejected.
type ValidationError struct {
	Issues Issues
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues.Messages(), "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSearchInput
}
