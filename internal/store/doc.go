// Package store provides file-based persistence for cryptoprobe reports.
//
// Reports are serialised as indented JSON and written through a temp file
// followed by an atomic rename, so a reader never observes a partial report.
// All methods are concurrency-safe via internal locking.
package store
