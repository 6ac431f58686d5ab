// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/nusuk/internal/models"
)

// dayLayout is the storage format for lifecycle dates. The dataset has
// day granularity, so dates are stored as ISO day strings.
const dayLayout = "2006-01-02"

// PersonRepository implements secondary.PersonRepository with SQLite.
type PersonRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new SQLite person repository.
func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

const personSelectCols = "person_id, person_type, first_name, last_name, nationality, age, sex, " +
	"id_number, passport_number, channel, visa_number, nusuk_number, " +
	"service_provider, group_id, spouse_id, father_id, " +
	"travel_mode, flight_number, departure_country, arrival_port, accommodation_zone, " +
	"visa_issue_date, group_formation_date, travel_date, arrival_date, " +
	"card_printed_date, card_at_center_date, card_at_provider_date, card_received_date, card_activation_date, proof_picture_date, " +
	"health_status, health_date, health_notes, death_status, death_date"

// personFlagCols are the stage-completion booleans paired with the date
// columns. They are written on insert so the snapshot file carries the
// flat true/false view, and derived from the dates on read.
const personFlagCols = "arrival_status, card_printed, card_at_center, card_at_provider, " +
	"card_received, card_activated, proof_picture_received"

const personInsertSQL = "INSERT INTO persons (" + personSelectCols + ", " + personFlagCols + ") VALUES " +
	"(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, " +
	"?, ?, ?, ?, ?, ?, ?)"

// dayString converts a nullable date to its storage representation.
func dayString(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dayLayout), Valid: true}
}

// parseDay converts a stored day string back to a nullable date.
func parseDay(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(dayLayout, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// stageFlag is the boolean column value for a stage date: NULL while the
// stage is unreached, true once its date is set.
func stageFlag(t *time.Time) sql.NullBool {
	if t == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: true, Valid: true}
}

// scanPerson scans a person row into a models.Person.
func scanPerson(scanner interface {
	Scan(dest ...any) error
}) (*models.Person, error) {
	var (
		idNumber, passportNumber, flightNumber, healthNotes sql.NullString
		spouseID, fatherID                                  sql.NullInt64
		dates                                               [12]sql.NullString
	)

	p := &models.Person{}
	err := scanner.Scan(
		&p.PersonID, &p.PersonType, &p.FirstName, &p.LastName, &p.Nationality, &p.Age, &p.Sex,
		&idNumber, &passportNumber, &p.Channel, &p.VisaNumber, &p.NusukNumber,
		&p.ServiceProvider, &p.GroupID, &spouseID, &fatherID,
		&p.TravelMode, &flightNumber, &p.DepartureCountry, &p.ArrivalPort, &p.AccommodationZone,
		&dates[0], &dates[1], &dates[2], &dates[3],
		&dates[4], &dates[5], &dates[6], &dates[7], &dates[8], &dates[9],
		&p.HealthStatus, &dates[10], &healthNotes, &p.DeathStatus, &dates[11],
	)
	if err != nil {
		return nil, err
	}

	p.IDNumber = idNumber.String
	p.PassportNumber = passportNumber.String
	p.FlightNumber = flightNumber.String
	p.HealthNotes = healthNotes.String
	if spouseID.Valid {
		v := int(spouseID.Int64)
		p.SpouseID = &v
	}
	if fatherID.Valid {
		v := int(fatherID.Int64)
		p.FatherID = &v
	}

	targets := []**time.Time{
		&p.VisaIssueDate, &p.GroupFormationDate, &p.TravelDate, &p.ArrivalDate,
		&p.CardPrintedDate, &p.CardAtCenterDate, &p.CardAtProviderDate,
		&p.CardReceivedDate, &p.CardActivationDate, &p.ProofPictureDate,
		&p.HealthDate, &p.DeathDate,
	}
	for i, target := range targets {
		d, err := parseDay(dates[i])
		if err != nil {
			return nil, fmt.Errorf("person %d: bad date at column %d: %w", p.PersonID, i, err)
		}
		*target = d
	}

	return p, nil
}

// Reset clears any previous snapshot.
func (r *PersonRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM persons"); err != nil {
		return fmt.Errorf("failed to reset persons: %w", err)
	}
	return nil
}

// BulkInsert persists a batch of persons inside one transaction.
func (r *PersonRepository) BulkInsert(ctx context.Context, persons []*models.Person) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, personInsertSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range persons {
		_, err := stmt.ExecContext(ctx,
			p.PersonID, p.PersonType, p.FirstName, p.LastName, p.Nationality, p.Age, p.Sex,
			nullString(p.IDNumber), nullString(p.PassportNumber), p.Channel, p.VisaNumber, p.NusukNumber,
			p.ServiceProvider, p.GroupID, nullInt(p.SpouseID), nullInt(p.FatherID),
			p.TravelMode, nullString(p.FlightNumber), p.DepartureCountry, p.ArrivalPort, p.AccommodationZone,
			dayString(p.VisaIssueDate), dayString(p.GroupFormationDate), dayString(p.TravelDate), dayString(p.ArrivalDate),
			dayString(p.CardPrintedDate), dayString(p.CardAtCenterDate), dayString(p.CardAtProviderDate),
			dayString(p.CardReceivedDate), dayString(p.CardActivationDate), dayString(p.ProofPictureDate),
			p.HealthStatus, dayString(p.HealthDate), nullString(p.HealthNotes), p.DeathStatus, dayString(p.DeathDate),
			stageFlag(p.ArrivalDate), stageFlag(p.CardPrintedDate), stageFlag(p.CardAtCenterDate),
			stageFlag(p.CardAtProviderDate), stageFlag(p.CardReceivedDate), stageFlag(p.CardActivationDate),
			stageFlag(p.ProofPictureDate),
		)
		if err != nil {
			return fmt.Errorf("failed to insert person %d: %w", p.PersonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}
	return nil
}

// LoadAll reads the entire snapshot, ordered by person ID.
func (r *PersonRepository) LoadAll(ctx context.Context) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+personSelectCols+" FROM persons ORDER BY person_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read persons: %w", err)
	}
	return persons, nil
}

// GetByID retrieves one person. Returns (nil, nil) when absent.
func (r *PersonRepository) GetByID(ctx context.Context, personID int) (*models.Person, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+personSelectCols+" FROM persons WHERE person_id = ?", personID)

	p, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", personID, err)
	}
	return p, nil
}

// Count returns the number of persisted records.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM persons").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count persons: %w", err)
	}
	return count, nil
}
