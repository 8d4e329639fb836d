package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"masterdataapi/config"

	"gorm.io/gorm"
)

// Sentinel outcomes for locator lookups. MultipleFound is distinct from
// NotFound because the flexible update/delete protocol requires exactly one
// active record per locator.
var (
	ErrNotFound      = errors.New("record not found")
	ErrMultipleFound = errors.New("multiple records found")
)

// RecordStore provides uniform single-row access to every whitelisted master
// table. Rows travel as plain field->value maps; the dispatcher and validator
// decide which fields are legal for each table.
type RecordStore interface {
	Insert(table string, row map[string]interface{}) (map[string]interface{}, error)
	FindOne(table string, preds map[string]interface{}) (map[string]interface{}, error)
	FindAll(table string, preds map[string]interface{}) ([]map[string]interface{}, error)
	// MaxOf returns the maximum value of the column across all rows, as its
	// string form. found is false when the table has no rows.
	MaxOf(table, column string) (value string, found bool, err error)
	SetField(table string, id interface{}, field string, value interface{}) error
	// Project returns the selected columns of matching rows ordered ascending
	// by the first column.
	Project(table string, columns []string, preds map[string]interface{}) ([]map[string]interface{}, error)
	UpdateByID(table string, id interface{}, row map[string]interface{}) error
	DeleteByID(table string, id interface{}) (int64, error)
}

type recordStore struct {
	db *gorm.DB
}

// NewRecordStore creates a record store over the given GORM handle, falling
// back to the global connection when db is nil.
func NewRecordStore(db *gorm.DB) RecordStore {
	if db == nil {
		db = config.DB
	}
	return &recordStore{db: db}
}

func (r *recordStore) Insert(table string, row map[string]interface{}) (map[string]interface{}, error) {
	// LAST_INSERT_ID is per-connection, so the insert and the id read must
	// share one transaction.
	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := tx.Table(table).Create(row).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	var id int64
	if err := tx.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	stored := make(map[string]interface{}, len(row)+1)
	for k, v := range row {
		stored[k] = v
	}
	stored["id"] = id
	return stored, nil
}

func (r *recordStore) FindOne(table string, preds map[string]interface{}) (map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.Table(table).Where(preds).Limit(2).Find(&rows).Error; err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return normalizeRow(rows[0]), nil
	default:
		return nil, ErrMultipleFound
	}
}

func (r *recordStore) FindAll(table string, preds map[string]interface{}) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	q := r.db.Table(table)
	if len(preds) > 0 {
		q = q.Where(preds)
	}
	if err := q.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i] = normalizeRow(rows[i])
	}
	return rows, nil
}

func (r *recordStore) MaxOf(table, column string) (string, bool, error) {
	var max sql.NullString
	row := r.db.Table(table).Select("MAX(" + quoteIdent(column) + ")").Row()
	if err := row.Scan(&max); err != nil {
		return "", false, err
	}
	if !max.Valid {
		return "", false, nil
	}
	return max.String, true, nil
}

func (r *recordStore) SetField(table string, id interface{}, field string, value interface{}) error {
	res := r.db.Table(table).Where("id = ?", id).Update(field, value)
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (r *recordStore) Project(table string, columns []string, preds map[string]interface{}) ([]map[string]interface{}, error) {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	var rows []map[string]interface{}
	q := r.db.Table(table).Select(strings.Join(quoted, ", "))
	if len(preds) > 0 {
		q = q.Where(preds)
	}
	if err := q.Order(quoted[0] + " asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i] = normalizeRow(rows[i])
	}
	return rows, nil
}

func (r *recordStore) UpdateByID(table string, id interface{}, row map[string]interface{}) error {
	res := r.db.Table(table).Where("id = ?", id).Updates(row)
	return res.Error
}

func (r *recordStore) DeleteByID(table string, id interface{}) (int64, error) {
	res := r.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(table)), id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// quoteIdent backtick-quotes an identifier. Table and column names are always
// validated against the schema registry before reaching the store; quoting
// keeps reserved words such as `system` usable as column names.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "") + "`"
}

// normalizeRow converts driver byte slices to strings so rows serialize as
// JSON text rather than base64.
func normalizeRow(row map[string]interface{}) map[string]interface{} {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}
