// Package patterns parses and evaluates the sensitive-file pattern set.
//
// A pattern file lists one glob per line, matched against file basenames
// only. Plain lines are include rules, '!'-prefixed lines are exclude
// rules, and '#' starts a comment. A basename is selected when it matches
// at least one include rule and none of the exclude rules.
//
// The set is loaded once at invocation start and is immutable afterwards.
package patterns
