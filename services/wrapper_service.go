package services

import (
	"fmt"
	"net/http"

	"masterdataapi/pkg/logger"
	"masterdataapi/repository"
	"masterdataapi/schema"
)

// WrapperRequest is the normalized body of the generic table-wrapper endpoint.
type WrapperRequest struct {
	TableName   string                 `json:"table_name" validate:"required"`
	MethodName  string                 `json:"method_name" validate:"required"`
	ColumnName  string                 `json:"column_name"`
	ColumnValue interface{}            `json:"column_value"`
	GetMaxID    bool                   `json:"get_max_id"`
	ColumnList  []string               `json:"column_list"`
	Data        map[string]interface{} `json:"data"`
}

// Envelope is the uniform response shape of every wrapper operation.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// WrapperService dispatches a wrapper request to the matching CRUD handler.
type WrapperService interface {
	Dispatch(actor string, req WrapperRequest) (int, Envelope)
}

type wrapperService struct {
	registry *schema.Registry
	store    repository.RecordStore
	audit    AuditSink
}

// NewWrapperService creates the generic table-wrapper dispatcher.
func NewWrapperService(registry *schema.Registry, store repository.RecordStore, audit AuditSink) WrapperService {
	return &wrapperService{registry: registry, store: store, audit: audit}
}

// Dispatch validates the table against the whitelist, routes to the operation
// handler and returns the response envelope with its HTTP status.
func (s *wrapperService) Dispatch(actor string, req WrapperRequest) (int, Envelope) {
	if req.TableName == "" {
		return fail(shapeError("Missing required field: table_name."))
	}
	desc, ok := s.registry.Describe(req.TableName)
	if !ok {
		return fail(whitelistError())
	}
	if req.MethodName == "" {
		return fail(shapeError("Missing required field: method_name."))
	}

	switch req.MethodName {
	case "create":
		return s.create(desc, actor, req)
	case "list", "view":
		return s.list(desc, req)
	case "update":
		return s.update(desc, actor, req)
	case "delete":
		return s.delete(desc, actor, req)
	case "list_col_values":
		return s.listColValues(desc, req)
	case "update_by_id":
		return s.updateByID(desc, actor, req)
	case "delete_by_id":
		return s.deleteByID(desc, actor, req)
	default:
		return fail(shapeError("Invalid method name. Allowed: create, list, view, update, delete, list_col_values, update_by_id, delete_by_id"))
	}
}

func (s *wrapperService) create(desc *schema.TableDescriptor, actor string, req WrapperRequest) (int, Envelope) {
	if len(req.Data) == 0 {
		return fail(shapeError("Missing or invalid data for creation."))
	}
	record, fieldErrs := schema.Validate(desc, req.Data)
	if fieldErrs != nil {
		return fail(validationError("Invalid data.", fieldErrs))
	}
	schema.ForceActive(desc, record)

	stored, err := s.store.Insert(desc.Name, record)
	if err != nil {
		logger.Errorf("Insert into %s failed: %v", desc.Name, err)
		return fail(storeError(err))
	}
	s.audit.Record("CREATE", desc.Name, actor, fmt.Sprintf("%v", stored))
	return http.StatusCreated, Envelope{
		Success: true,
		Message: "Record created successfully.",
		Data:    stored,
	}
}

func (s *wrapperService) list(desc *schema.TableDescriptor, req WrapperRequest) (int, Envelope) {
	if req.GetMaxID {
		return s.suggestNextID(desc, req)
	}

	preds := map[string]interface{}{}
	if desc.HasActiveFlag() {
		preds[desc.ActiveFlagField] = schema.ActiveValue
	}
	rows, err := s.store.FindAll(desc.Name, preds)
	if err != nil {
		logger.Errorf("List %s failed: %v", desc.Name, err)
		return fail(storeError(err))
	}
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Records fetched successfully.",
		Data:    shapeRows(desc, rows),
	}
}

// suggestNextID runs the next-identifier suggestion over all rows of the
// table, active and inactive alike, so soft-deleted identifiers are never
// reused.
func (s *wrapperService) suggestNextID(desc *schema.TableDescriptor, req WrapperRequest) (int, Envelope) {
	if req.ColumnName == "" {
		return fail(shapeError("Missing required field: column_name for get_max_id."))
	}
	field, ok := desc.Field(req.ColumnName)
	if !ok {
		return fail(shapeError(fmt.Sprintf("Invalid column name: %s", req.ColumnName)))
	}

	max, found, err := s.store.MaxOf(desc.Name, field.Name)
	if err != nil {
		logger.Errorf("Max of %s.%s failed: %v", desc.Name, field.Name, err)
		return fail(storeError(err))
	}
	if !found {
		return http.StatusOK, Envelope{
			Success: true,
			Message: fmt.Sprintf("No records found in column %s.", field.Name),
			Data:    nil,
		}
	}
	next, derr := nextIdentifier(field, max)
	if derr != nil {
		return fail(derr)
	}
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Next ID generated successfully.",
		Data:    map[string]interface{}{"next_id": next},
	}
}

// update archives the unique active record matching the locator and inserts a
// replacement carrying the locator and the new field values. A failed insert
// restores the archived record so the locator never loses its active row.
func (s *wrapperService) update(desc *schema.TableDescriptor, actor string, req WrapperRequest) (int, Envelope) {
	locator, derr := s.requireLocator(desc, req, "update")
	if derr != nil {
		return fail(derr)
	}
	if len(req.Data) == 0 {
		return fail(shapeError("Missing or invalid data for update."))
	}
	if !desc.HasActiveFlag() {
		return fail(unsupportedError("Table does not support soft delete (no is_active field)."))
	}

	existing, derr := s.findActiveByLocator(desc, locator)
	if derr != nil {
		return fail(derr)
	}

	if err := s.store.SetField(desc.Name, existing["id"], desc.ActiveFlagField, schema.InactiveValue); err != nil {
		logger.Errorf("Soft delete on %s failed: %v", desc.Name, err)
		return fail(storeError(err))
	}
	s.audit.Record("SOFT DELETE (for update)", desc.Name, actor, locator.String())

	newData := make(map[string]interface{}, len(req.Data)+1)
	for k, v := range req.Data {
		newData[k] = v
	}
	newData[locator.column.Name] = locator.value

	record, fieldErrs := schema.Validate(desc, newData)
	if fieldErrs != nil {
		s.restore(desc, actor, existing, locator)
		return fail(validationError("Update failed - invalid data for new record", fieldErrs))
	}
	schema.ForceActive(desc, record)

	stored, err := s.store.Insert(desc.Name, record)
	if err != nil {
		logger.Errorf("Replacement insert into %s failed: %v", desc.Name, err)
		s.restore(desc, actor, existing, locator)
		return fail(storeError(err))
	}

	s.audit.Record("CREATE (for update)", desc.Name, actor, fmt.Sprintf("%s: %v", locator, stored))
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Record updated successfully (old record archived, new record created).",
		Data:    stored,
	}
}

// restore reactivates the archived record after a failed replacement insert.
func (s *wrapperService) restore(desc *schema.TableDescriptor, actor string, existing map[string]interface{}, locator locator) {
	if err := s.store.SetField(desc.Name, existing["id"], desc.ActiveFlagField, schema.ActiveValue); err != nil {
		logger.Errorf("Restore of %s %s failed: %v", desc.Name, locator, err)
		return
	}
	s.audit.Record("RESTORE (update failed)", desc.Name, actor, locator.String())
}

func (s *wrapperService) delete(desc *schema.TableDescriptor, actor string, req WrapperRequest) (int, Envelope) {
	locator, derr := s.requireLocator(desc, req, "delete")
	if derr != nil {
		return fail(derr)
	}
	if !desc.HasActiveFlag() {
		return fail(unsupportedError("Soft delete not supported for this table (no is_active field)."))
	}

	existing, derr := s.findActiveByLocator(desc, locator)
	if derr != nil {
		return fail(derr)
	}

	if err := s.store.SetField(desc.Name, existing["id"], desc.ActiveFlagField, schema.InactiveValue); err != nil {
		logger.Errorf("Soft delete on %s failed: %v", desc.Name, err)
		return fail(storeError(err))
	}
	s.audit.Record("SOFT DELETE", desc.Name, actor, locator.String())
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Record soft deleted successfully.",
		Data:    nil,
	}
}

// listColValues returns deduplicated {id, name} pairs for dropdown population.
// Rows arrive ordered by the id column, so the first occurrence of each name
// wins and the result stays sorted ascending by id.
func (s *wrapperService) listColValues(desc *schema.TableDescriptor, req WrapperRequest) (int, Envelope) {
	if len(req.ColumnList) != 2 {
		return fail(shapeError("column_list must contain exactly two columns."))
	}
	for _, col := range req.ColumnList {
		if col != "id" && !desc.HasField(col) {
			return fail(shapeError(fmt.Sprintf("Invalid column name: %s", col)))
		}
	}

	preds := map[string]interface{}{}
	if desc.HasActiveFlag() {
		preds[desc.ActiveFlagField] = schema.ActiveValue
	}
	rows, err := s.store.Project(desc.Name, req.ColumnList, preds)
	if err != nil {
		logger.Errorf("Column projection on %s failed: %v", desc.Name, err)
		return fail(storeError(err))
	}

	idCol, nameCol := req.ColumnList[0], req.ColumnList[1]
	seen := map[string]bool{}
	pairs := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		name := fmt.Sprintf("%v", row[nameCol])
		if seen[name] {
			continue
		}
		seen[name] = true
		pairs = append(pairs, map[string]interface{}{
			"id":   row[idCol],
			"name": row[nameCol],
		})
	}
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Records fetched successfully.",
		Data:    pairs,
	}
}

// updateByID is the legacy primary-key update: an in-place partial update with
// no archival, kept for tables without soft-delete support.
func (s *wrapperService) updateByID(desc *schema.TableDescriptor, actor string, req WrapperRequest) (int, Envelope) {
	pk, ok := req.Data["id"]
	if !ok || pk == nil {
		return fail(shapeError("Missing required field: id (primary key) for update."))
	}
	if len(req.Data) < 2 {
		return fail(shapeError("Missing or invalid data for update."))
	}

	if _, err := s.store.FindOne(desc.Name, map[string]interface{}{"id": pk}); err != nil {
		if err == repository.ErrNotFound {
			return fail(notFoundError("Record not found."))
		}
		logger.Errorf("Lookup of %s id=%v failed: %v", desc.Name, pk, err)
		return fail(storeError(err))
	}

	record, fieldErrs := schema.ValidatePartial(desc, req.Data)
	if fieldErrs != nil {
		return fail(validationError("Invalid data.", fieldErrs))
	}
	if len(record) == 0 {
		return fail(shapeError("Missing or invalid data for update."))
	}
	if err := s.store.UpdateByID(desc.Name, pk, record); err != nil {
		logger.Errorf("Update of %s id=%v failed: %v", desc.Name, pk, err)
		return fail(storeError(err))
	}

	updated, err := s.store.FindOne(desc.Name, map[string]interface{}{"id": pk})
	if err != nil {
		logger.Errorf("Reload of %s id=%v failed: %v", desc.Name, pk, err)
		return fail(storeError(err))
	}
	s.audit.Record("UPDATE", desc.Name, actor, fmt.Sprintf("id=%v: %v", pk, record))
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Record updated successfully.",
		Data:    shapeRow(desc, updated),
	}
}

// deleteByID is the legacy primary-key delete: a physical row removal, kept
// for tables without soft-delete support.
func (s *wrapperService) deleteByID(desc *schema.TableDescriptor, actor string, req WrapperRequest) (int, Envelope) {
	pk, ok := req.Data["id"]
	if !ok || pk == nil {
		return fail(shapeError("Missing required field: id (primary key) for delete."))
	}

	affected, err := s.store.DeleteByID(desc.Name, pk)
	if err != nil {
		logger.Errorf("Delete of %s id=%v failed: %v", desc.Name, pk, err)
		return fail(storeError(err))
	}
	if affected == 0 {
		return fail(notFoundError("Record not found."))
	}
	s.audit.Record("DELETE", desc.Name, actor, fmt.Sprintf("id=%v", pk))
	return http.StatusOK, Envelope{
		Success: true,
		Message: "Record deleted successfully.",
		Data:    nil,
	}
}

// locator identifies the target record for flexible update/delete by an
// arbitrary declared column instead of the primary key.
type locator struct {
	column schema.FieldDescriptor
	value  interface{}
}

func (l locator) String() string {
	return fmt.Sprintf("%s=%v", l.column.Name, l.value)
}

func (s *wrapperService) requireLocator(desc *schema.TableDescriptor, req WrapperRequest, op string) (locator, *DispatchError) {
	if req.ColumnName == "" {
		return locator{}, shapeError(fmt.Sprintf("Missing required field: column_name for %s.", op))
	}
	if req.ColumnValue == nil {
		return locator{}, shapeError(fmt.Sprintf("Missing required field: column_value for %s.", op))
	}
	field, ok := desc.Field(req.ColumnName)
	if !ok {
		return locator{}, shapeError(fmt.Sprintf("Invalid column name: %s", req.ColumnName))
	}
	value, reason := schema.CoerceValue(field, req.ColumnValue)
	if reason != "" {
		return locator{}, shapeError(fmt.Sprintf("Invalid column_value for %s: %s", field.Name, reason))
	}
	return locator{column: field, value: value}, nil
}

func (s *wrapperService) findActiveByLocator(desc *schema.TableDescriptor, l locator) (map[string]interface{}, *DispatchError) {
	preds := map[string]interface{}{
		l.column.Name:        l.value,
		desc.ActiveFlagField: schema.ActiveValue,
	}
	existing, err := s.store.FindOne(desc.Name, preds)
	switch err {
	case nil:
		return existing, nil
	case repository.ErrNotFound:
		return nil, notFoundError(fmt.Sprintf("Active record not found with %s.", l))
	case repository.ErrMultipleFound:
		return nil, ambiguousError(fmt.Sprintf("Multiple active records found with %s.", l))
	default:
		logger.Errorf("Lookup of %s %s failed: %v", desc.Name, l, err)
		return nil, storeError(err)
	}
}

func fail(err *DispatchError) (int, Envelope) {
	var data interface{}
	if err.Fields != nil {
		data = err.Fields
	}
	return err.HTTPStatus(), Envelope{
		Success: false,
		Message: err.Message,
		Data:    data,
	}
}

// shapeRows reduces stored rows to the declared outward fields plus the
// primary key, mirroring serializer field whitelists.
func shapeRows(desc *schema.TableDescriptor, rows []map[string]interface{}) []map[string]interface{} {
	shaped := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		shaped[i] = shapeRow(desc, row)
	}
	return shaped
}

func shapeRow(desc *schema.TableDescriptor, row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(desc.Fields)+1)
	if id, ok := row["id"]; ok {
		out["id"] = id
	}
	for _, f := range desc.Fields {
		if v, ok := row[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}
