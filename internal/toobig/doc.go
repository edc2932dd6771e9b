// Package toobig implements the directory scan behind the toobig command.
//
// It walks a directory tree in a single sequential pass, filters paths
// through name globs, extension suffixes and root .gitignore patterns,
// classifies the survivors as text or binary by probing for valid UTF-8,
// and accumulates per-file line and character counts alongside the
// aggregate totals and the largest files.
package toobig
