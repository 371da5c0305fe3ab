// Package history keeps the saved conversions of one session.
//
// A Store is an append-only, insertion-ordered log of Records with no
// deduplication and no size limit. Each Record is stamped with a logical
// sequence number from the store's Clock; ordering never depends on wall time.
//
// Two backends exist:
//   - memory: a slice, the default
//   - sqlite: a private in-memory SQLite database per store
//
// Neither backend writes to disk. Closing a store destroys its records, so a
// history never outlives the session that owns it. Stores are not safe for
// concurrent use; a session drives its store from one goroutine.
package history
