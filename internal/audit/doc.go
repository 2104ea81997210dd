// Package audit records who did what during an operator session.
//
// The record store and the CLI only see Sink, a fire-and-forget contract:
// Record never returns an error and never aborts the caller. Recorder is
// the Sink implementation; it stamps each event with the time and the
// session id, hands it to a Writer, and logs (then drops) write failures.
//
// Writers:
//   - FileWriter   appends "[2006-01-02 15:04:05] User: <actor> | Action: <message>"
//     lines to a text file.
//   - SQLWriter    inserts rows into audit_events over database/sql; the schema
//     is applied with goose from embedded migrations (sqlite or pgx).
//   - MultiWriter  fans an event out to several writers.
package audit
