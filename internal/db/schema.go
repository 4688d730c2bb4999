package db

// GetSchemaSQL returns the authoritative schema. Tests create their
// in-memory databases from this same string so the two never drift.
func GetSchemaSQL() string {
	return `
CREATE TABLE IF NOT EXISTS session_slots (
    slot       TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
}
