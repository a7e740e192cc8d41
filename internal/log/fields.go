package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldDate      = "date"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldEntryType = "entry_type"
	FieldAmount    = "amount"
	FieldHours     = "hours"
	FieldCountry   = "country"
	FieldKey       = "key"
	FieldPath      = "path"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStorage  = "storage"
	ComponentEntries  = "entries"
	ComponentSettings = "settings"
	ComponentLogbook  = "logbook"
	ComponentBackup   = "backup"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpRead    = "read"
	OpWrite   = "write"
	OpSave    = "save"
	OpExport  = "export"
	OpImport  = "import"
	OpClear   = "clear"
	OpMigrate = "migrate"
)
