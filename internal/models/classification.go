package models

// ClassificationInput is a single classification request.
type ClassificationInput struct {
	RawDescription string `json:"raw_description" yaml:"raw_description" csv:"raw_description"`
}

// ClassificationResult is what callers receive for a valid input.
//
// The clean description is exposed as "clean_description" on every wire
// format; the camelCase spelling is not accepted or produced.
type ClassificationResult struct {
	Category         string `json:"category" yaml:"category" csv:"category"`
	CleanDescription string `json:"clean_description" yaml:"clean_description" csv:"clean_description"`
}
