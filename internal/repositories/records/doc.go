// Package records provides the durable local storage layer of the diary.
//
// # Overview
//
// The package defines a Repository interface over named blob records and a
// SQLite-backed implementation (SQLiteRepository) that persists them using a
// dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Data Model
//
// Storage is two independent domain records plus preferences, keyed by
// stable names:
//
//   - diary.credential — the opaque salted adaptive hash of the unlock password
//   - diary.entries    — the serialized ordered entry collection
//   - diary.app-theme  — the application-wide visual theme preference
//
// Each record is written whole in a single statement, so a reader never
// observes a partially written value.
//
// Typical Usage
//
//	repo := records.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, records.EntriesRecord, blob)
//	blob, _ := repo.Get(ctx, records.EntriesRecord)
//
// See also: internal/services for the components that own these records.
package records
