package services

import (
	"fmt"
	"regexp"
	"strconv"

	"masterdataapi/schema"
)

// prefixedIdentifier matches identifiers such as EQ00042 or EQ-00042: a letter
// prefix followed by a numeric suffix, with an optional hyphen between them.
var prefixedIdentifier = regexp.MustCompile(`^([A-Za-z]+)-?([0-9]+)$`)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// nextIdentifier computes the suggested next identifier from the maximum value
// observed in a column. Numeric columns increment and zero-pad to five digits
// (42 -> "00043"). String columns with a letter prefix increment the numeric
// suffix and rejoin with a hyphen (EQ00042 -> "EQ-00043").
func nextIdentifier(field schema.FieldDescriptor, max string) (string, *DispatchError) {
	if field.Kind.IsNumeric() {
		n, err := strconv.ParseInt(max, 10, 64)
		if err != nil {
			return "", unsupportedError(fmt.Sprintf("Cannot generate next ID from value '%s' in column %s.", max, field.Name))
		}
		return fmt.Sprintf("%05d", n+1), nil
	}

	if !field.Kind.IsStringLike() {
		return "", unsupportedError(fmt.Sprintf("Column type %s is not supported for max ID generation.", field.Kind))
	}

	if digitsOnly.MatchString(max) {
		n, _ := strconv.ParseInt(max, 10, 64)
		return fmt.Sprintf("%05d", n+1), nil
	}
	m := prefixedIdentifier.FindStringSubmatch(max)
	if m == nil {
		return "", unsupportedError(fmt.Sprintf("Cannot generate next ID from value '%s' in column %s.", max, field.Name))
	}
	n, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return "", unsupportedError(fmt.Sprintf("Cannot generate next ID from value '%s' in column %s.", max, field.Name))
	}
	return fmt.Sprintf("%s-%05d", m[1], n+1), nil
}
