package schema

import (
	"regexp"
	"sort"
)

// FieldKind classifies a master table column for validation and next-ID generation.
type FieldKind int

// Field kind constants mirroring the column types of the master tables.
const (
	KindInt FieldKind = iota
	KindSmallInt
	KindString
	KindText
	KindDecimal
	KindDate
	KindRef // foreign reference stored as an opaque string id
)

var kindNames = map[FieldKind]string{
	KindInt:      "integer",
	KindSmallInt: "smallint",
	KindString:   "string",
	KindText:     "text",
	KindDecimal:  "decimal",
	KindDate:     "date",
	KindRef:      "reference",
}

// String returns the human-readable name of the field kind.
func (k FieldKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// IsNumeric reports whether values of this kind carry integer semantics.
func (k FieldKind) IsNumeric() bool {
	return k == KindInt || k == KindSmallInt
}

// IsStringLike reports whether values of this kind are stored as short strings.
func (k FieldKind) IsStringLike() bool {
	return k == KindString || k == KindRef
}

// FieldDescriptor describes one column of a master table.
type FieldDescriptor struct {
	Name     string
	Kind     FieldKind
	Nullable bool
}

// TableDescriptor describes one whitelisted master table: its name, its
// declared columns and the optional soft-delete marker column.
// Descriptors are immutable and built once at process start.
type TableDescriptor struct {
	Name            string
	Fields          []FieldDescriptor
	ActiveFlagField string

	fieldIndex map[string]int
}

// Field returns the descriptor of the named column.
func (d *TableDescriptor) Field(name string) (FieldDescriptor, bool) {
	i, ok := d.fieldIndex[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return d.Fields[i], true
}

// HasField reports whether the named column is declared on the table.
func (d *TableDescriptor) HasField(name string) bool {
	_, ok := d.fieldIndex[name]
	return ok
}

// HasActiveFlag reports whether the table supports soft deletion.
func (d *TableDescriptor) HasActiveFlag() bool {
	return d.ActiveFlagField != ""
}

// tableNamePattern rejects table names with characters that could never match
// a whitelist entry, before the map lookup.
var tableNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Registry is the immutable whitelist of master tables. It is the single
// source of truth for which tables the wrapper endpoint may touch.
type Registry struct {
	tables map[string]*TableDescriptor
}

// NewRegistry builds a registry from the given table descriptors.
func NewRegistry(descriptors ...TableDescriptor) *Registry {
	tables := make(map[string]*TableDescriptor, len(descriptors))
	for i := range descriptors {
		d := descriptors[i]
		d.fieldIndex = make(map[string]int, len(d.Fields))
		for j, f := range d.Fields {
			d.fieldIndex[f.Name] = j
		}
		tables[d.Name] = &d
	}
	return &Registry{tables: tables}
}

// IsWhitelisted reports whether the table name is a whitelist entry.
func (r *Registry) IsWhitelisted(name string) bool {
	if !tableNamePattern.MatchString(name) {
		return false
	}
	_, ok := r.tables[name]
	return ok
}

// Describe returns the descriptor for a whitelisted table.
func (r *Registry) Describe(name string) (*TableDescriptor, bool) {
	if !tableNamePattern.MatchString(name) {
		return nil, false
	}
	d, ok := r.tables[name]
	return d, ok
}

// Names returns the whitelisted table names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
