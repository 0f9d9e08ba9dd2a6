// Package database provides relational store connectivity for the FrogCrew API.
//
// Storage goes through gorm. Postgres is the production driver; sqlite serves
// local development and tests.
//
// # Connection Management
//
//	db, err := database.Open(database.Config{
//	    Driver: "postgres",
//	    DSN:    "host=localhost user=crew dbname=frogcrew sslmode=disable",
//	}, logger)
//	defer db.Close()
//	err = db.Migrate(model.All()...)
//
// # Transactions
//
// Each service operation runs inside Transaction. The open transaction rides
// in the context, and repositories obtain their handle with Conn(ctx), so every
// statement issued while handling one request commits or rolls back together:
//
//	err := db.Transaction(ctx, func(ctx context.Context) error {
//	    return db.Conn(ctx).Create(&schedule).Error
//	})
//
// # Error Types
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection failed
//
// Translate converts gorm errors into these sentinels.
package database
