// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "shift", Type: field.TypeEnum, Enums: []string{"Morning", "Afternoon", "Evening"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Pending_Confirmation", "Confirmed", "Cancelled", "Completed"}, Default: "Pending_Confirmation"},
		{Name: "created_by", Type: field.TypeEnum, Enums: []string{"customer", "partner"}, Default: "customer"},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_clinic_id_date_shift",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_clinic_id_status_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[7], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_customer_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[5]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "logo_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address", Type: field.TypeString},
		{Name: "ward", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "district", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "license_number_enc", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "suspended"}, Default: "pending"},
		{Name: "review_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_slug",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[6]},
			},
			{
				Name:    "clinic_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[4]},
			},
			{
				Name:    "clinic_status",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[16]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_customer_id_clinic_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[2], ConversationsColumns[3]},
			},
			{
				Name:    "conversation_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_key", Type: field.TypeString, Nullable: true},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "file_mime", Type: field.TypeString, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString, Size: 64},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[2], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PetsColumns holds the columns for the "pets" table.
	PetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 15},
		{Name: "species", Type: field.TypeEnum, Enums: []string{"dog", "cat", "bird", "rabbit", "hamster", "other"}, Default: "other"},
		{Name: "breed", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "gender", Type: field.TypeEnum, Enums: []string{"male", "female", "unknown"}, Default: "unknown"},
		{Name: "weight_kg", Type: field.TypeFloat64, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "medical_notes_enc", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "appointment_pets", Type: field.TypeUUID, Nullable: true},
	}
	// PetsTable holds the schema information for the "pets" table.
	PetsTable = &schema.Table{
		Name:       "pets",
		Columns:    PetsColumns,
		PrimaryKey: []*schema.Column{PetsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pets_appointments_pets",
				Columns:    []*schema.Column{PetsColumns[13]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pet_owner_id",
				Unique:  false,
				Columns: []*schema.Column{PetsColumns[4]},
			},
		},
	}
	// ServiceItemsColumns holds the columns for the "service_items" table.
	ServiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeInt64},
		{Name: "duration_min", Type: field.TypeInt, Default: 30},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "appointment_services", Type: field.TypeUUID, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// ServiceItemsTable holds the schema information for the "service_items" table.
	ServiceItemsTable = &schema.Table{
		Name:       "service_items",
		Columns:    ServiceItemsColumns,
		PrimaryKey: []*schema.Column{ServiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "service_items_appointments_services",
				Columns:    []*schema.Column{ServiceItemsColumns[9]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "service_items_clinics_services",
				Columns:    []*schema.Column{ServiceItemsColumns[10]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "serviceitem_clinic_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ServiceItemsColumns[10], ServiceItemsColumns[8]},
			},
		},
	}
	// ShiftCapacitiesColumns holds the columns for the "shift_capacities" table.
	ShiftCapacitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "shift", Type: field.TypeEnum, Enums: []string{"Morning", "Afternoon", "Evening"}},
		{Name: "capacity", Type: field.TypeInt},
	}
	// ShiftCapacitiesTable holds the schema information for the "shift_capacities" table.
	ShiftCapacitiesTable = &schema.Table{
		Name:       "shift_capacities",
		Columns:    ShiftCapacitiesColumns,
		PrimaryKey: []*schema.Column{ShiftCapacitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "shiftcapacity_clinic_id_date_shift",
				Unique:  true,
				Columns: []*schema.Column{ShiftCapacitiesColumns[3], ShiftCapacitiesColumns[4], ShiftCapacitiesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"customer", "partner", "admin"}, Default: "customer"},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_user",
				Columns:    []*schema.Column{UserSessionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_session_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[3]},
			},
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[10]},
			},
		},
	}
	// VeterinariansColumns holds the columns for the "veterinarians" table.
	VeterinariansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "license_number_enc", Type: field.TypeString, Nullable: true},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "clinic_id", Type: field.TypeUUID},
	}
	// VeterinariansTable holds the schema information for the "veterinarians" table.
	VeterinariansTable = &schema.Table{
		Name:       "veterinarians",
		Columns:    VeterinariansColumns,
		PrimaryKey: []*schema.Column{VeterinariansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "veterinarians_clinics_veterinarians",
				Columns:    []*schema.Column{VeterinariansColumns[12]},
				RefColumns: []*schema.Column{ClinicsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "veterinarian_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{VeterinariansColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		ClinicsTable,
		ConversationsTable,
		MessagesTable,
		NotificationsTable,
		PetsTable,
		ServiceItemsTable,
		ShiftCapacitiesTable,
		UsersTable,
		UserSessionsTable,
		VeterinariansTable,
	}
)

func init() {
	PetsTable.ForeignKeys[0].RefTable = AppointmentsTable
	ServiceItemsTable.ForeignKeys[0].RefTable = AppointmentsTable
	ServiceItemsTable.ForeignKeys[1].RefTable = ClinicsTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
	VeterinariansTable.ForeignKeys[0].RefTable = ClinicsTable
}
