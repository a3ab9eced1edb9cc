package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"paymulexport/internal/core"
	httpHandler "paymulexport/internal/http"
	"paymulexport/internal/sqlite"
)

const sequenceCode = "bank.paymul.identifier"

type TestSuite struct {
	Client   *sqlite.Client
	Handler  http.Handler
	teardown func()
}

func NewTestSuite(t *testing.T, now time.Time) *TestSuite {
	t.Helper()

	ctx := context.Background()

	client, err := sqlite.NewClient(ctx, sqlite.Config{
		DatabasePath:    filepath.Join(t.TempDir(), "test_paymul.db"),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		BusyTimeout:     30 * time.Second,
		EnableWAL:       true,
		SequencePrefix:  "PM",
		SequencePadding: 6,
	})
	require.NoError(t, err, "failed to create test client")

	store := client.SequenceStore()
	err = store.Register(ctx, client.DefaultSequence(sequenceCode))
	require.NoError(t, err, "failed to register sequence")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := core.NewService(store, logger, core.Config{
		SequenceCode:     sequenceCode,
		MaxExecutionDays: 30,
	}).WithClock(func() time.Time { return now })

	server := httpHandler.NewServer(service, logger, httpHandler.Config{})

	return &TestSuite{
		Client:  client,
		Handler: server.Handler(),
		teardown: func() {
			client.Close()
		},
	}
}

func (s *TestSuite) Teardown() {
	s.teardown()
}
