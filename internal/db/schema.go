package db

import "database/sql"

// SchemaSQL is the complete schema for a snapshot file.
//
// This is the single source of truth for the database schema. Tests build
// their in-memory databases from GetSchemaSQL(), so a repository that
// references a column missing here fails immediately with "no such
// column" instead of drifting silently.
//
// Dates are stored as ISO-8601 day strings (the dataset has day
// granularity). Each reachable stage also carries its boolean column
// (NULL until reached, then 1), paired with the matching date column so
// external readers of the snapshot get the flat true/false view.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS persons (
	person_id INTEGER PRIMARY KEY,
	person_type TEXT NOT NULL CHECK(person_type IN ('pilgrim_external', 'pilgrim_internal', 'service_worker', 'government', 'healthcare')),
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	nationality TEXT NOT NULL,
	age INTEGER NOT NULL,
	sex TEXT NOT NULL CHECK(sex IN ('M', 'F')),
	id_number TEXT,
	passport_number TEXT,
	channel TEXT NOT NULL CHECK(channel IN ('B2B', 'B2C')),
	visa_number TEXT NOT NULL,
	nusuk_number TEXT NOT NULL,

	service_provider TEXT NOT NULL,
	group_id INTEGER NOT NULL DEFAULT 0,
	spouse_id INTEGER,
	father_id INTEGER,

	travel_mode TEXT NOT NULL CHECK(travel_mode IN ('air', 'land', 'sea')),
	flight_number TEXT,
	departure_country TEXT NOT NULL,
	arrival_port TEXT NOT NULL,
	accommodation_zone TEXT NOT NULL,

	visa_issue_date TEXT,
	group_formation_date TEXT,
	travel_date TEXT,
	arrival_status INTEGER,
	arrival_date TEXT,
	card_printed INTEGER,
	card_printed_date TEXT,
	card_at_center INTEGER,
	card_at_center_date TEXT,
	card_at_provider INTEGER,
	card_at_provider_date TEXT,
	card_received INTEGER,
	card_received_date TEXT,
	card_activated INTEGER,
	card_activation_date TEXT,
	proof_picture_received INTEGER,
	proof_picture_date TEXT,

	health_status TEXT NOT NULL DEFAULT 'none' CHECK(health_status IN ('none', 'minor', 'moderate', 'severe', 'critical')),
	health_date TEXT,
	health_notes TEXT,
	death_status INTEGER NOT NULL DEFAULT 0,
	death_date TEXT
);

CREATE INDEX IF NOT EXISTS idx_persons_type ON persons(person_type);
CREATE INDEX IF NOT EXISTS idx_persons_nationality ON persons(nationality);
CREATE INDEX IF NOT EXISTS idx_persons_provider ON persons(service_provider);

-- Provenance of the generation run that produced this snapshot.
-- Single row, replaced wholesale on each run.
CREATE TABLE IF NOT EXISTS dataset_meta (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	run_id TEXT NOT NULL,
	seed INTEGER NOT NULL,
	generated_at DATETIME NOT NULL,
	total_records INTEGER NOT NULL,
	counts_by_type TEXT NOT NULL
);
`

// InitSchema creates the snapshot schema on the given connection.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent
// drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
