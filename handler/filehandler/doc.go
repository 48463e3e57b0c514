// Package filehandler provides a file output handler that writes
// formatted log entries to a single file opened in append mode (the
// default) or truncate mode.
//
// Writes go through a bufio.Writer, so lines may sit in memory until
// Flush or Close. Close flushes, syncs and closes the file; after it,
// further entries are dropped. Opening the file is the only operation
// that can fail visibly; everything on the logging path swallows its
// errors.
//
// The handler never rotates, caps, or deletes the file, and it does
// not create missing parent directories.
package filehandler
