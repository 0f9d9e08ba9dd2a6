package testdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/logger"
	"github.com/frogcrew/api/internal/model"
)

// TestDB provides an isolated database environment for testing.
// Each TestDB is a private in-memory sqlite database with every model migrated.
type TestDB struct {
	DB   *database.DB
	Name string
	t    *testing.T
}

var counter atomic.Int64

// uniqueName generates a unique database name for test isolation
func uniqueName() string {
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter.Add(1))
}

// New opens and migrates a fresh database. It is closed automatically when
// the test finishes.
func New(t *testing.T) *TestDB {
	t.Helper()

	name := uniqueName()
	// A single connection keeps the shared-cache memory database alive and
	// serializes access the same way one request transaction would.
	db, err := database.Open(database.Config{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name),
		MaxOpenConns: 1,
	}, logger.FromZap(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Migrate(model.All()...); err != nil {
		_ = db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	tdb := &TestDB{DB: db, Name: name, t: t}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close releases the database. Safe to call more than once.
func (tdb *TestDB) Close() {
	_ = tdb.DB.Close()
}

// Context returns a context that is cancelled after 30 seconds or when the
// test ends.
func (tdb *TestDB) Context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}
