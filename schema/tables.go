package schema

// Column shorthand used by the whitelist below. Master table schemas follow the
// upstream database conventions: short strings for names and codes, opaque
// string ids for cross-table references, smallint is_active soft-delete markers.

func str(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindString} }

func strNull(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindString, Nullable: true}
}

func txt(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindText} }

func ref(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindRef} }

func refNull(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Kind: KindRef, Nullable: true}
}

func intCol(name string) FieldDescriptor { return FieldDescriptor{Name: name, Kind: KindInt} }

func activeFlag() FieldDescriptor { return FieldDescriptor{Name: "is_active", Kind: KindSmallInt} }

// Soft-delete marker values for smallint is_active columns.
const (
	ActiveValue   = int64(1)
	InactiveValue = int64(0)
)

// DefaultRegistry builds the whitelist of all master tables served by the
// wrapper endpoint. Any table name not listed here is rejected at the boundary.
func DefaultRegistry() *Registry {
	return NewRegistry(
		// Core master tables (no soft-delete support, legacy pk paths only).
		TableDescriptor{
			Name:   "tbl_command_master",
			Fields: []FieldDescriptor{str("command"), str("hq"), str("code")},
		},
		TableDescriptor{
			Name:   "tbl_department_master",
			Fields: []FieldDescriptor{str("name"), str("type")},
		},
		TableDescriptor{
			Name:   "tbl_equipment_category_master",
			Fields: []FieldDescriptor{str("name")},
		},
		TableDescriptor{
			Name:   "tbl_ship_category_master",
			Fields: []FieldDescriptor{str("name"), txt("description")},
		},
		TableDescriptor{
			Name:   "tbl_role_master",
			Fields: []FieldDescriptor{intCol("status"), str("level"), str("name")},
		},

		// Ship fit definition master tables.
		TableDescriptor{
			Name: "tbl_section_master",
			Fields: []FieldDescriptor{
				str("section_id"), str("name"), ref("department_id"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_group_master",
			Fields: []FieldDescriptor{
				str("group_id"), str("name"), ref("section_id"), ref("generic_id"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_country_master",
			Fields: []FieldDescriptor{
				str("country_id"), str("name"), str("iso_code"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_class_master",
			Fields: []FieldDescriptor{
				str("class_id"), str("name"), str("type"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_supplier_master",
			Fields: []FieldDescriptor{
				str("supplier_id"), str("name"), str("address"), str("contact_number"),
				str("code"), str("contact_person"), str("email"), str("city"),
				str("area"), ref("country_id"), str("state"), str("equipment_supplied"),
				activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_opsauthority_master",
			Fields: []FieldDescriptor{
				str("opsauthority_id"), str("ops_authority"), ref("command_id"),
				str("address"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_generic_master",
			Fields: []FieldDescriptor{
				str("generic_id"), str("name"), txt("description"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_establishment_master",
			Fields: []FieldDescriptor{
				str("establishment_id"), str("name"), str("command"),
				ref("opsauthority_id"), ref("category_id"), str("category_name"),
				activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_propulsion_master",
			Fields: []FieldDescriptor{
				str("propulsion_id"), str("name"), str("category"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_manufacturer_master",
			Fields: []FieldDescriptor{
				str("manufacturer_id"), str("name"), str("address"), str("contact_number"),
				str("code"), str("contact_person"), str("email"), str("city"),
				str("area"), ref("country_id"), str("state"), str("equipment_manufactured"),
				activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_equipment_master",
			Fields: []FieldDescriptor{
				str("equipment_id"), str("equipment_name"), ref("generic_id"),
				ref("category_id"), ref("section_id"), ref("group_id"),
				str("equipment_serial_no"), str("equipment_code"), str("equipment_model"),
				str("maintop_number"), str("acquiant_issued"), str("authority"),
				str("ilms_equipment_code"), str("total_fits"), str("ship_applicable"),
				str("location_on_board"), str("equipment_type"), ref("ship_id"),
				FieldDescriptor{Name: "removal_date", Kind: KindDate, Nullable: true},
				txt("description"), str("srar_equipment"), str("system"),
				str("sub_system"), str("assembly"), ref("department_id"),
				str("obsolete"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_ship_master",
			Fields: []FieldDescriptor{
				str("ship_id"), str("name"), ref("command_id"), str("pennant_no"),
				ref("ship_category_id"), ref("class_id"),
				FieldDescriptor{Name: "displacement", Kind: KindDecimal, Nullable: true},
				str("base_port"), str("ship_builder"),
				FieldDescriptor{Name: "commission_date", Kind: KindDate, Nullable: true},
				FieldDescriptor{Name: "decommission_date", Kind: KindDate, Nullable: true},
				ref("propulsion_id"), str("refit_authority"), str("signal_name"),
				str("address"), str("contact_number"), str("nud_mail"), str("nic_mail"),
				str("overseeing_team"), txt("remark"), str("yard_no"),
				str("classification_society"), ref("opsauthority_id"), str("origin"),
				activeFlag(),
			},
			ActiveFlagField: "is_active",
		},

		// Ship running and activity reporting master tables.
		TableDescriptor{
			Name: "tbl_ship_state_master",
			Fields: []FieldDescriptor{
				str("ship_state_id"), str("ship_state"), refNull("ship_id"),
				strNull("status"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_ship_location_master",
			Fields: []FieldDescriptor{
				str("ship_location_id"), str("ship_location"), refNull("ship_state_id"),
				refNull("ship_id"), strNull("status"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_activity_type_master",
			Fields: []FieldDescriptor{
				str("activity_type_id"), str("activity_type"), ref("ship_location_id"),
				strNull("remark"), strNull("status"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_activity_details_master",
			Fields: []FieldDescriptor{
				str("activity_id"), ref("activity_type_id"), str("activity_detail"),
				strNull("status"), activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
		TableDescriptor{
			Name: "tbl_lubricant_master",
			Fields: []FieldDescriptor{
				str("lubricant_id"), str("lubricant_name"), str("lubricant_code"),
				str("lubricant_type"), str("unit"), refNull("ship_id"),
				str("application"), str("specification"), strNull("status"),
				activeFlag(),
			},
			ActiveFlagField: "is_active",
		},
	)
}
