package schema

import (
	"fmt"
	"math"
	"strconv"
)

// FieldErrors maps a field name to the reason its value was rejected.
type FieldErrors map[string]string

// Validate converts untyped caller input into a typed record for the given
// table. Fields not declared on the descriptor are dropped silently, matching
// the serializer field-whitelist behaviour of the upstream services. The
// active-flag column is never taken from caller input; use ForceActive after a
// successful validation.
func Validate(desc *TableDescriptor, input map[string]interface{}) (map[string]interface{}, FieldErrors) {
	return validate(desc, input, false)
}

// ValidatePartial validates only the fields present in the input, without
// required-field checks. Used by the legacy primary-key update path.
func ValidatePartial(desc *TableDescriptor, input map[string]interface{}) (map[string]interface{}, FieldErrors) {
	return validate(desc, input, true)
}

func validate(desc *TableDescriptor, input map[string]interface{}, partial bool) (map[string]interface{}, FieldErrors) {
	record := make(map[string]interface{}, len(desc.Fields))
	errs := FieldErrors{}

	for _, f := range desc.Fields {
		if f.Name == desc.ActiveFlagField {
			continue
		}
		raw, present := input[f.Name]
		if !present {
			if !partial && !f.Nullable {
				errs[f.Name] = "This field is required."
			}
			continue
		}
		value, reason := coerce(f, raw)
		if reason != "" {
			errs[f.Name] = reason
			continue
		}
		record[f.Name] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return record, nil
}

// ForceActive sets the soft-delete marker of the record to the active value.
// Callers cannot create pre-deactivated records.
func ForceActive(desc *TableDescriptor, record map[string]interface{}) {
	if desc.HasActiveFlag() {
		record[desc.ActiveFlagField] = ActiveValue
	}
}

// CoerceValue converts a single untyped value to the typed form of the field,
// returning a non-empty reason when the value is not acceptable. Used for
// locator column values, which arrive outside the payload map.
func CoerceValue(f FieldDescriptor, raw interface{}) (interface{}, string) {
	return coerce(f, raw)
}

func coerce(f FieldDescriptor, raw interface{}) (interface{}, string) {
	if raw == nil {
		if f.Nullable {
			return nil, ""
		}
		return nil, "This field may not be null."
	}

	switch f.Kind {
	case KindInt, KindSmallInt:
		return coerceInt(raw)
	case KindDecimal:
		return coerceDecimal(raw)
	default:
		return coerceString(raw)
	}
}

func coerceInt(raw interface{}) (interface{}, string) {
	switch v := raw.(type) {
	case float64:
		// JSON numbers decode as float64; only integral values are acceptable.
		if v != math.Trunc(v) {
			return nil, "A valid integer is required."
		}
		return int64(v), ""
	case int:
		return int64(v), ""
	case int64:
		return v, ""
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, "A valid integer is required."
		}
		return n, ""
	default:
		return nil, "A valid integer is required."
	}
}

func coerceDecimal(raw interface{}) (interface{}, string) {
	switch v := raw.(type) {
	case float64:
		return v, ""
	case int:
		return float64(v), ""
	case int64:
		return float64(v), ""
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, "A valid number is required."
		}
		return n, ""
	default:
		return nil, "A valid number is required."
	}
}

func coerceString(raw interface{}) (interface{}, string) {
	switch v := raw.(type) {
	case string:
		return v, ""
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), ""
		}
		return fmt.Sprintf("%v", v), ""
	case int:
		return strconv.Itoa(v), ""
	case int64:
		return strconv.FormatInt(v, 10), ""
	default:
		return nil, "Not a valid string."
	}
}
