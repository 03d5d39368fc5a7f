// Package calfile locates calendar files and preprocesses them into the
// plain event lines the engine consumes: cpp-style comments are stripped,
// '#include' directives are expanded, and continuation lines are joined.
package calfile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harkabeeparolus/pylendar/pkg/terrors"
	"github.com/harkabeeparolus/pylendar/pkg/utils"

	"golang.org/x/text/unicode/norm"
)

const DefaultName = "calendar"

var (
	reBlockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLineComment  = regexp.MustCompile(`(?:^|\s)//.*`)
	reInclude      = regexp.MustCompile(`^#include\s+[<"]([^">]+)[">]`)
)

// FindCalendar returns the calendar file to read: the explicit path when
// given, otherwise the first file named "calendar" found in the cwd,
// ~/.calendar, or the configured search directories.
func FindCalendar(explicit string, searchDirs []string) (string, error) {
	if explicit != "" {
		return utils.NormalizePath(explicit)
	}
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".calendar"))
	}
	dirs = append(dirs, searchDirs...)
	for _, dir := range dirs {
		dir, err := utils.NormalizePath(dir)
		if err != nil {
			continue
		}
		file := filepath.Join(dir, DefaultName)
		if utils.FileExists(file) {
			return file, nil
		}
	}
	return "", terrors.ErrNotFound
}

// Processor expands calendar files the way the BSD utility runs them
// through cpp: comments removed, includes resolved, other '#' directives
// dropped. It owns the set of files already included so that repeated or
// cyclic includes are processed once.
type Processor struct {
	includeDirs []string
	included    map[string]struct{}
}

func NewProcessor(includeDirs []string) *Processor {
	return &Processor{
		includeDirs: includeDirs,
		included:    make(map[string]struct{}),
	}
}

// ProcessFile reads one file, strips comments, and splices in included
// files recursively. Lines are NFC-normalized. A malformed '#include' is a
// fatal error; a missing include target is skipped.
func (p *Processor) ProcessFile(path string) ([]string, error) {
	absPath, err := utils.NormalizePath(path)
	if err != nil {
		return nil, err
	}
	if _, ok := p.included[absPath]; ok {
		return nil, nil
	}
	p.included[absPath] = struct{}{}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	text := removeComments(norm.NFC.String(string(raw)))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "#include"):
			m := reInclude.FindStringSubmatch(stripped)
			if m == nil {
				return nil, terrors.ErrorMalformedInclude(line)
			}
			target := p.resolveInclude(m[1], filepath.Dir(absPath))
			if target == "" {
				continue
			}
			sub, err := p.ProcessFile(target)
			if err != nil {
				return nil, err
			}
			lines = append(lines, sub...)
		case strings.HasPrefix(stripped, "#"):
			// other preprocessor directives are ignored
		default:
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// resolveInclude searches the including file's directory first, then the
// configured include dirs, matching cpp semantics for relative includes.
func (p *Processor) resolveInclude(name, lookFirst string) string {
	dirs := append([]string{lookFirst}, p.includeDirs...)
	for _, dir := range dirs {
		dir, err := utils.NormalizePath(dir)
		if err != nil {
			continue
		}
		candidate := filepath.Join(dir, name)
		if utils.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func removeComments(text string) string {
	text = reBlockComment.ReplaceAllString(text, "")
	return reLineComment.ReplaceAllString(text, "")
}

// JoinContinuations merges continuation lines (lines starting with a tab
// and no date field) into the previous line's description with an embedded
// newline.
func JoinContinuations(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.HasPrefix(line, "\t") && len(out) > 0 {
			out[len(out)-1] += "\n" + line
		} else {
			out = append(out, line)
		}
	}
	return out
}
