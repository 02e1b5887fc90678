package logging

// Field names shared by every log line so that output can be filtered
// consistently.
const (
	FieldCategory   = "category"
	FieldKeyword    = "keyword"
	FieldStrategy   = "strategy"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldRoute      = "route"
	FieldAddress    = "address"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRulesFile  = "rules_file"
)
