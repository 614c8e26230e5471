// Package runlog persists a record per training run plus per-phase timing in
// SQLite so `letterpress runs` can report history after the scratch directory
// is gone.
//
// The Store is written only by the pipeline driver at phase boundaries; pool
// workers never touch it. The database is a diagnostic archive, not shared
// state: deleting it loses history and nothing else. Schema changes bump
// schemaVersion in store.go; users clear the database to adopt the new schema.
package runlog
