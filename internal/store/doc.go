// Package store holds the data behind the mock backend.
//
// MemoryStore is a concurrency-safe in-memory courses table. Seed data comes
// either from DefaultSeed or from a YAML/JSON file read by LoadSeed; nothing is
// ever written back to disk.
package store
