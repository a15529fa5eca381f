package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	profile := Profile{
		ID:         "profile-1",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		LinksJSON:  `[{"label":"GitHub","url":"https://github.com/jane"}]`,
		SkillsJSON: `["Go","SQL"]`,
		TargetRole: "Backend Engineer",
		Language:   "EN",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(
			profile.ID,
			profile.FullName,
			sqlmock.AnyArg(), // email
			nil,              // phone
			nil,              // location
			sqlmock.AnyArg(), // links_json
			nil,              // summary
			sqlmock.AnyArg(), // skills_json
			sqlmock.AnyArg(), // target_role
			profile.Language,
			profile.CreatedAt,
			profile.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMapsNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone", "location", "links_json",
		"summary", "skills_json", "target_role", "language", "created_at", "updated_at",
	}).AddRow("profile-1", "Jane Doe", nil, nil, nil, nil, nil, nil, nil, "EN", now, now)

	mock.ExpectQuery("SELECT (.+) FROM profiles").
		WithArgs("profile-1").
		WillReturnRows(rows)

	profile, err := repo.GetByID(context.Background(), "profile-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.FullName != "Jane Doe" {
		t.Fatalf("full name: got %q", profile.FullName)
	}
	if profile.Email != "" || profile.SkillsJSON != "" {
		t.Fatalf("expected empty strings for null columns, got %+v", profile)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE profiles SET").
		WithArgs(
			"missing", "Jane Doe",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"EN", sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Profile{ID: "missing", FullName: "Jane Doe", Language: "EN"})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM profiles").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
