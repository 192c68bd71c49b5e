package log

// Canonical field name constants for structured logging.
const (
	FieldComponent = "component"

	// Matching fields
	FieldChannel   = "channel"
	FieldQuery     = "query"
	FieldMatched   = "matched"
	FieldScore     = "score"
	FieldMatchType = "match_type"
	FieldCallsign  = "callsign"
	FieldCategory  = "category"

	// Database fields
	FieldFile        = "file"
	FieldDatabaseDir = "database_dir"
	FieldBroadcast   = "broadcast"
	FieldPremium     = "premium"
	FieldFiles       = "files"
	FieldSkipped     = "skipped"
)
