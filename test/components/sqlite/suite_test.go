package integration

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"paymulexport/internal/core"
	"paymulexport/internal/sqlite"
)

const testSequenceCode = "bank.paymul.identifier"

type TestSuite struct {
	DB       *sql.DB
	DBPath   string
	Client   *sqlite.Client
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_paymul.db")

	config := sqlite.Config{
		DatabasePath: dbPath,
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(context.Background(), config)
	require.NoError(t, err, "failed to create test client")

	suite := &TestSuite{
		DB:     client.DB(),
		DBPath: dbPath,
		Client: client,
		teardown: func() {
			client.Close()
			os.Remove(dbPath)
		},
	}

	return suite
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) SeedSequence(t *testing.T, code, prefix string, padding int, nextNumber int64) int64 {
	t.Helper()

	query := `
		INSERT INTO sequences (code, prefix, padding, next_number)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.DB.Exec(query, code, prefix, padding, nextNumber)
	require.NoError(t, err, "failed to seed sequence")

	id, err := result.LastInsertId()
	require.NoError(t, err, "failed to get inserted sequence ID")

	return id
}

func (s *TestSuite) GetNextNumber(t *testing.T, code string) int64 {
	t.Helper()

	var next int64
	err := s.DB.QueryRow("SELECT next_number FROM sequences WHERE code = ?", code).Scan(&next)
	require.NoError(t, err, "failed to get next number")

	return next
}

func (s *TestSuite) CountSequences(t *testing.T) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM sequences").Scan(&count)
	require.NoError(t, err, "failed to count sequences")

	return count
}

func (s *TestSuite) Service(t *testing.T, now time.Time) core.Service {
	t.Helper()

	store := s.Client.SequenceStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return core.NewService(store, logger, core.Config{
		SequenceCode:     testSequenceCode,
		MaxExecutionDays: 30,
	}).WithClock(func() time.Time { return now })
}
