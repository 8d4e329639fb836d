package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates a request DTO against its validate tags.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)

// SanitizeForLogging strips control characters and truncates the value so
// caller-supplied data cannot corrupt or flood log files.
func SanitizeForLogging(value string, maxLength int) string {
	sanitized := controlChars.ReplaceAllString(value, "")
	if maxLength > 0 && len(sanitized) > maxLength {
		return sanitized[:maxLength]
	}
	return sanitized
}
