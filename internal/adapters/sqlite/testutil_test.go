// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production. Do
// not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/nusuk/internal/db"
	"github.com/example/nusuk/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative
// schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func testDate(month, day int) *time.Time {
	t := time.Date(2025, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// seedPerson builds a fully populated external pilgrim for round-trip
// tests.
func seedPerson(id int) *models.Person {
	spouse := id + 1
	return &models.Person{
		PersonID:          id,
		PersonType:        models.TypePilgrimExternal,
		FirstName:         "Ahmed",
		LastName:          "Hassan",
		Nationality:       "Egypt",
		Age:               54,
		Sex:               models.SexMale,
		PassportNumber:    "A12345678",
		Channel:           models.ChannelB2B,
		VisaNumber:        "HJ2500000001",
		NusukNumber:       "NSK-25-0000001",
		ServiceProvider:   "Al-Safwa Hajj Services",
		GroupID:           3,
		SpouseID:          &spouse,
		TravelMode:        models.TravelAir,
		FlightNumber:      "SV512",
		DepartureCountry:  "Egypt",
		ArrivalPort:       "Jeddah - KAIA",
		AccommodationZone: "Aziziya North",

		VisaIssueDate:      testDate(4, 10),
		GroupFormationDate: testDate(4, 20),
		TravelDate:         testDate(5, 9),
		ArrivalDate:        testDate(5, 10),
		CardPrintedDate:    testDate(4, 25),
		CardAtCenterDate:   testDate(4, 28),
		CardAtProviderDate: testDate(5, 2),
		CardReceivedDate:   testDate(5, 12),
		CardActivationDate: testDate(5, 14),
		ProofPictureDate:   testDate(5, 15),

		HealthStatus: models.HealthNone,
	}
}
