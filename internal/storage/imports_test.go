package storage

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockImportRepo(t *testing.T) (*importRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &importRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestHasImport_SQLMock(t *testing.T) {
	cases := []struct {
		name     string
		exists   bool
		queryErr error
		wantErr  bool
	}{
		{name: "already imported", exists: true},
		{name: "not imported", exists: false},
		{name: "storage error", queryErr: errors.New("down"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockImportRepo(t)
			defer done()

			q := mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)")).
				WithArgs("products.csv")
			if tc.queryErr != nil {
				q.WillReturnError(tc.queryErr)
			} else {
				q.WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tc.exists))
			}

			got, err := repo.HasImport("products.csv")
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("has import: %v", err)
			}
			if got != tc.exists {
				t.Fatalf("got %v want %v", got, tc.exists)
			}
		})
	}
}

func TestRecordImport_SQLMock(t *testing.T) {
	repo, mock, done := newMockImportRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO import_log \(filename, row_count\)`).
		WithArgs("products.csv", 1000).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RecordImport("products.csv", 1000); err != nil {
		t.Fatalf("record import: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
