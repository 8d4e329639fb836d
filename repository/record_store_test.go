package repository

import (
	"testing"

	"masterdataapi/pkg/memdb"
	"masterdataapi/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openStore(t *testing.T) (RecordStore, *gorm.DB) {
	t.Helper()
	db := memdb.OpenTest(t, schema.DefaultRegistry())
	return NewRecordStore(db), db
}

func seedCountry(t *testing.T, store RecordStore, countryID, name string, active int64) map[string]interface{} {
	t.Helper()
	stored, err := store.Insert("tbl_country_master", map[string]interface{}{
		"country_id": countryID,
		"name":       name,
		"iso_code":   "XX",
		"is_active":  active,
	})
	require.NoError(t, err)
	return stored
}

func TestInsert_ReturnsGeneratedID(t *testing.T) {
	store, _ := openStore(t)

	first := seedCountry(t, store, "CNT-00001", "India", 1)
	second := seedCountry(t, store, "CNT-00002", "France", 1)

	require.NotNil(t, first["id"])
	require.NotNil(t, second["id"])
	assert.EqualValues(t, 1, first["id"])
	assert.EqualValues(t, 2, second["id"])

	// Input fields travel through unchanged.
	assert.Equal(t, "India", first["name"])
}

func TestFindOne_Outcomes(t *testing.T) {
	store, _ := openStore(t)
	seedCountry(t, store, "CNT-00001", "India", 1)
	seedCountry(t, store, "CNT-00002", "France", 1)
	seedCountry(t, store, "CNT-00002", "France dup", 1)

	row, err := store.FindOne("tbl_country_master", map[string]interface{}{"country_id": "CNT-00001"})
	require.NoError(t, err)
	assert.EqualValues(t, "India", row["name"])

	_, err = store.FindOne("tbl_country_master", map[string]interface{}{"country_id": "CNT-09999"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindOne("tbl_country_master", map[string]interface{}{"country_id": "CNT-00002"})
	assert.ErrorIs(t, err, ErrMultipleFound)
}

func TestFindAll_FiltersAndOrders(t *testing.T) {
	store, _ := openStore(t)
	seedCountry(t, store, "CNT-00003", "Chile", 1)
	seedCountry(t, store, "CNT-00001", "India", 1)
	seedCountry(t, store, "CNT-00002", "France", 0)

	rows, err := store.FindAll("tbl_country_master", map[string]interface{}{"is_active": 1})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Ordered by primary key, not by the business identifier.
	assert.EqualValues(t, "Chile", rows[0]["name"])
	assert.EqualValues(t, "India", rows[1]["name"])

	all, err := store.FindAll("tbl_country_master", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMaxOf(t *testing.T) {
	store, _ := openStore(t)

	_, found, err := store.MaxOf("tbl_country_master", "country_id")
	require.NoError(t, err)
	assert.False(t, found)

	seedCountry(t, store, "CNT-00005", "India", 1)
	seedCountry(t, store, "CNT-00011", "France", 0)

	// Inactive rows count toward the maximum.
	max, found, err := store.MaxOf("tbl_country_master", "country_id")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "CNT-00011", max)
}

func TestSetField_FlipsActiveFlag(t *testing.T) {
	store, _ := openStore(t)
	stored := seedCountry(t, store, "CNT-00001", "India", 1)

	require.NoError(t, store.SetField("tbl_country_master", stored["id"], "is_active", 0))

	row, err := store.FindOne("tbl_country_master", map[string]interface{}{"id": stored["id"]})
	require.NoError(t, err)
	assert.EqualValues(t, 0, row["is_active"])
}

func TestProject_SelectsColumnsInOrder(t *testing.T) {
	store, _ := openStore(t)
	seedCountry(t, store, "CNT-00002", "France", 1)
	seedCountry(t, store, "CNT-00001", "India", 0)

	rows, err := store.Project("tbl_country_master", []string{"id", "name"}, map[string]interface{}{"is_active": 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0]["id"])
	assert.EqualValues(t, "France", rows[0]["name"])
	// Unselected columns are absent from the projection.
	_, present := rows[0]["iso_code"]
	assert.False(t, present)
}

func TestUpdateByID_And_DeleteByID(t *testing.T) {
	store, _ := openStore(t)
	stored := seedCountry(t, store, "CNT-00001", "India", 1)

	require.NoError(t, store.UpdateByID("tbl_country_master", stored["id"], map[string]interface{}{"name": "Bharat"}))

	row, err := store.FindOne("tbl_country_master", map[string]interface{}{"id": stored["id"]})
	require.NoError(t, err)
	assert.EqualValues(t, "Bharat", row["name"])

	affected, err := store.DeleteByID("tbl_country_master", stored["id"])
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = store.DeleteByID("tbl_country_master", stored["id"])
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}
