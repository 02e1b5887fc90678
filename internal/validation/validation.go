// Package validation checks classifier inputs and command-line paths before
// any work is done on them.
package validation

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/textutils"
)

// RawDescriptionField is the external name of the classified field.
const RawDescriptionField = "raw_description"

// ValidateRawDescription rejects empty and whitespace-only descriptions and,
// when maxLength is positive, descriptions longer than maxLength characters.
func ValidateRawDescription(raw string, maxLength int) error {
	if strings.TrimSpace(raw) == "" {
		return &classifyerror.InvalidArgumentError{
			Field:  RawDescriptionField,
			Reason: "must not be empty",
		}
	}
	if maxLength > 0 {
		if n := textutils.RuneLen(raw); n > maxLength {
			return &classifyerror.InputTooLongError{
				Field:  RawDescriptionField,
				Length: n,
				Max:    maxLength,
			}
		}
	}
	return nil
}

// IsReadableFile checks that path exists and is a regular file.
func IsReadableFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is not a regular file", path)
	}
	return nil
}

// IsValidOutputFormat checks if the given format is supported by the
// classify command.
func IsValidOutputFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'text'", format)
	}
}
