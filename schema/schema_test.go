package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_WhitelistsKnownTables(t *testing.T) {
	r := DefaultRegistry()

	assert.True(t, r.IsWhitelisted("tbl_ship_master"))
	assert.True(t, r.IsWhitelisted("tbl_command_master"))
	assert.True(t, r.IsWhitelisted("tbl_lubricant_master"))
	assert.False(t, r.IsWhitelisted("tbl_unknown_master"))
	assert.False(t, r.IsWhitelisted(""))
}

func TestRegistry_RejectsMalformedTableNames(t *testing.T) {
	r := DefaultRegistry()

	assert.False(t, r.IsWhitelisted("tbl_ship_master; DROP TABLE users"))
	assert.False(t, r.IsWhitelisted("tbl-ship-master"))
	assert.False(t, r.IsWhitelisted("tbl_ship_master "))

	_, ok := r.Describe("tbl_ship_master'--")
	assert.False(t, ok)
}

func TestDescribe_FieldLookup(t *testing.T) {
	r := DefaultRegistry()
	desc, ok := r.Describe("tbl_section_master")
	require.True(t, ok)

	assert.Equal(t, "tbl_section_master", desc.Name)
	assert.True(t, desc.HasActiveFlag())
	assert.Equal(t, "is_active", desc.ActiveFlagField)

	f, ok := desc.Field("section_id")
	require.True(t, ok)
	assert.Equal(t, KindString, f.Kind)
	assert.False(t, f.Nullable)

	_, ok = desc.Field("no_such_column")
	assert.False(t, ok)
}

func TestDescribe_TablesWithoutActiveFlag(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"tbl_command_master", "tbl_department_master", "tbl_role_master"} {
		desc, ok := r.Describe(name)
		require.True(t, ok, name)
		assert.False(t, desc.HasActiveFlag(), name)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_country_master")

	_, errs := Validate(desc, map[string]interface{}{"name": "India"})
	require.NotNil(t, errs)
	assert.Equal(t, "This field is required.", errs["country_id"])
	assert.Equal(t, "This field is required.", errs["iso_code"])
}

func TestValidate_DropsUnknownFieldsSilently(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_country_master")

	record, errs := Validate(desc, map[string]interface{}{
		"country_id": "CNT-00001",
		"name":       "India",
		"iso_code":   "IN",
		"smuggled":   "value",
	})
	require.Nil(t, errs)
	_, present := record["smuggled"]
	assert.False(t, present)
}

func TestValidate_CoercesNumbers(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_role_master")

	// JSON decodes numbers as float64
	record, errs := Validate(desc, map[string]interface{}{
		"status": float64(1),
		"level":  "L1",
		"name":   "Administrator",
	})
	require.Nil(t, errs)
	assert.Equal(t, int64(1), record["status"])

	_, errs = Validate(desc, map[string]interface{}{
		"status": 1.5,
		"level":  "L1",
		"name":   "Administrator",
	})
	require.NotNil(t, errs)
	assert.Equal(t, "A valid integer is required.", errs["status"])
}

func TestValidate_NullableFields(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_ship_state_master")

	record, errs := Validate(desc, map[string]interface{}{
		"ship_state_id": "SS-00001",
		"ship_state":    "Operational",
		"status":        nil,
	})
	require.Nil(t, errs)
	assert.Nil(t, record["status"])
	_, present := record["ship_id"]
	assert.False(t, present)
}

func TestValidate_ActiveFlagNeverTakenFromInput(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_country_master")

	record, errs := Validate(desc, map[string]interface{}{
		"country_id": "CNT-00001",
		"name":       "India",
		"iso_code":   "IN",
		"is_active":  0,
	})
	require.Nil(t, errs)
	_, present := record["is_active"]
	assert.False(t, present)

	ForceActive(desc, record)
	assert.Equal(t, ActiveValue, record["is_active"])
}

func TestValidatePartial_SkipsRequiredChecks(t *testing.T) {
	r := DefaultRegistry()
	desc, _ := r.Describe("tbl_country_master")

	record, errs := ValidatePartial(desc, map[string]interface{}{"name": "Bharat"})
	require.Nil(t, errs)
	assert.Equal(t, "Bharat", record["name"])
	assert.Len(t, record, 1)
}

func TestCoerceValue_StringFromNumber(t *testing.T) {
	f := FieldDescriptor{Name: "ship_id", Kind: KindRef}
	v, reason := CoerceValue(f, float64(7))
	assert.Empty(t, reason)
	assert.Equal(t, "7", v)

	_, reason = CoerceValue(f, true)
	assert.Equal(t, "Not a valid string.", reason)
}
