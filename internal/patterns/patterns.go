package patterns

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	lockerrors "github.com/mkerring/envelock/internal/errors"
)

// DefaultFileName is the pattern file consulted by encrypt mode.
const DefaultFileName = ".sensitive-file-patterns"

// Rule is a single glob rule from the pattern file.
type Rule struct {
	Pattern string
	Exclude bool
}

// Set is an ordered collection of include and exclude rules. A Set is built
// once per invocation and never mutated afterwards.
type Set struct {
	rules    []Rule
	includes int
}

// Parse reads rules from r, one per line. Blank lines and lines whose first
// non-whitespace character is '#' are skipped. A leading '!' marks an
// exclude rule; everything else is an include rule.
func Parse(r io.Reader) (*Set, error) {
	s := bufio.NewScanner(r)
	set := &Set{}

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule := Rule{Pattern: line}
		if strings.HasPrefix(line, "!") {
			rule.Exclude = true
			rule.Pattern = line[1:]
			if rule.Pattern == "" {
				continue
			}
		}

		if !rule.Exclude {
			set.includes++
		}
		set.rules = append(set.rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading patterns: %w", err)
	}

	return set, nil
}

// Load reads the pattern file at path. A missing file is reported as
// ErrPatternFileNotFound so the caller can suggest running init.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", lockerrors.ErrPatternFileNotFound, path)
		}
		return nil, fmt.Errorf("opening pattern file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// HasIncludes reports whether at least one include rule was parsed. A set
// without includes selects nothing; callers treat it as a configuration
// warning rather than a fatal error.
func (s *Set) HasIncludes() bool {
	return s.includes > 0
}

// Rules returns the parsed rules in file order.
func (s *Set) Rules() []Rule {
	return s.rules
}

// Matches reports whether the basename name is selected by this set: it
// must match at least one include rule and no exclude rule.
func (s *Set) Matches(name string) bool {
	included := false
	for _, r := range s.rules {
		if !Match(r.Pattern, name) {
			continue
		}
		if r.Exclude {
			return false
		}
		included = true
	}
	return included
}

// Match reports whether a single glob pattern matches the basename name.
// Patterns use shell-glob semantics; '*' never crosses a path separator,
// which cannot occur in a basename anyway.
func Match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		// Malformed patterns select nothing.
		return false
	}
	return ok
}
