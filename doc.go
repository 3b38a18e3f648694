// Package keyenv provides a Go client for the KeyEnv secrets-management API
// featuring structured logging, optional read-through caching of exported
// secret sets, and consistent error classification.
//
// The client wraps the KeyEnv REST surface (base URL + /api/v1) to provide:
//   - Typed operations for projects, environments, secrets, permissions,
//     and secret history
//   - An upsert write path (SetSecret) that converges regardless of whether
//     the key already exists
//   - Pluggable caching via the Cache interface and MemoryCache, scoped per
//     client instance and keyed by project + environment
//   - A non-blocking calling convention (Future-returning Async variants)
//     layered over the same synchronous core
//   - A single error kind (*Error) carrying the HTTP status and optional
//     machine code, with predicates for the common status classes
//
// # Security considerations
//
//   - The package never logs secret values; only keys, identifiers, and
//     operation metadata
//   - Error messages carry what the server reported and nothing resolved
//     from secret material
//
// # Thread safety
//
// All exported client methods are safe for concurrent use by multiple
// goroutines. The transport configuration is immutable after construction
// and MemoryCache is protected by a mutex. The client performs no
// client-side mutual exclusion across calls: concurrent writes to the same
// secret race at the server.
//
// # Usage
//
// See the package examples for construction, secret export, the upsert
// path, and error handling patterns.
package keyenv
