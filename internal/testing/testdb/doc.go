// Package testdb provides isolated databases for tests.
//
// Every call to New returns a private in-memory sqlite database with all
// models migrated, so tests exercise the real gorm queries, unique indexes
// and cascades without a running server:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    repo := repository.NewMemberRepository(tdb.DB)
//	    ...
//	}
//
// Context returns a 30 second timeout context tied to the test.
package testdb
