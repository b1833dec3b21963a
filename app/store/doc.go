// Package store provides durable storage for confirmed primes. Queue buffers records in memory and
// writes them to an Engine in a single transaction once the buffer reaches its threshold or on
// explicit Flush. SQLite engine is implemented with modernc sqlite in WAL mode.
package store
