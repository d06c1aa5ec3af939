// Package userstore implements a file-backed credential store used to
// validate username/password pairs.
//
// The store file is a JSON object mapping usernames to bcrypt password
// hashes:
//
//	{
//	    "alice": "$2a$10$...",
//	    "bob":   "$2a$10$..."
//	}
//
// # Architecture
//
//   • Store – stats the file at creation, reads and parses it per Validate
//     call, and compares passwords with bcrypt.
//   • Watch – optional cached mode: the parsed store is held in memory and
//     refreshed by an fsnotify watcher whenever the file changes.
//   • errors.go – sentinel error values returned by the package.
//
// # Usage
//
// import "github.com/dmitrymomot/authkit/pkg/userstore"
//
// store, err := userstore.New("/etc/app/users.json")
// if err != nil {
//     // store file missing or unreadable
// }
//
// ok, err := store.Validate(ctx, "alice", "s3cret")
//
// # Error Handling
//
// Validate returns (false, nil) for unknown users and wrong passwords; an
// error is returned only when the file cannot be read or parsed, so callers
// can distinguish a rejected login from an unavailable store. No retries are
// performed; I/O failures propagate once per call.
//
// # Concurrency
//
// Store is safe for concurrent use. In watched mode the cache is guarded by
// an RWMutex and swapped wholesale on reload, so readers never observe a
// partially updated store.
package userstore
