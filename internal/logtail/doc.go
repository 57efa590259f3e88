// Package logtail reads back the tail of the NoSleep log file.
//
// The terminal menu shows recent activity (arming transitions, toggles,
// refused assertions) by reading the last few lines of the log and parsing
// the slog text format into entries.
//
// Tail keeps a ring buffer of maxLines while scanning once, so memory stays
// O(maxLines) however large the file grows. Parse understands the
// key=value layout of slog.TextHandler, including quoted values.
package logtail
