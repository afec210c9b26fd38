package models

// ParameterEntry is one displayed search parameter. Normally it holds a single
// field name mapped to the submitted value, but the shared parameter list may
// also carry a raw response payload or an empty record after a failed request.
type ParameterEntry map[string]any

// EmptyParameters is the parameter list shown after a failed request: a single
// empty record.
func EmptyParameters() []ParameterEntry {
	return []ParameterEntry{{}}
}
