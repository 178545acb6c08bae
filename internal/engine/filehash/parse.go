// Package filehash builds the path to object hash index of a git repository.
package filehash

import (
	"regexp"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatusEntry is one line of short-format status output.
type StatusEntry struct {
	ChangeType string
	Path       string
}

// Deleted reports whether the entry removes the file from the working tree.
func (e StatusEntry) Deleted() bool {
	return e.ChangeType == "D" || (len(e.ChangeType) == 2 && e.ChangeType[1] == 'D')
}

// statusToken matches either a double quoted name or a bare word with its trailing whitespace.
var statusToken = regexp.MustCompile(`"(?:\\"|[^"])+"|\S+\s*`)

// ParseTree parses `git ls-tree -r` output into a path to hash map.
// Object ids are 40 hex digits, or 64 in repositories using the sha256 object
// format; every id of one listing has the same length.
func ParseTree(output string) (domain.RepoHashes, error) {
	hashes := make(domain.RepoHashes)
	idLen := 0
	for _, line := range splitLines(output) {
		path, hash, err := parseTreeLine(line)
		if err == nil && idLen != 0 && len(hash) != idLen {
			err = domain.ErrTreeLineObjectID
		}
		if err != nil {
			return nil, zerr.With(err, "line", line)
		}
		idLen = len(hash)
		hashes[path] = hash
	}
	return hashes, nil
}

// parseTreeLine reads "<mode> <kind> <object>\t<path>".
func parseTreeLine(line string) (path, hash string, err error) {
	mode, rest, ok := cutField(line)
	if !ok || !isMode(mode) {
		return "", "", domain.ErrTreeLineMode
	}

	kind, rest, ok := cutField(rest)
	if !ok || (kind != "blob" && kind != "commit") {
		return "", "", domain.ErrTreeLineKind
	}

	id, rest, _ := cutField(rest)
	if !isObjectID(id) {
		return "", "", domain.ErrTreeLineObjectID
	}

	name := strings.TrimLeft(rest, " \t")
	if name == "" {
		return "", "", domain.ErrTreeLinePath
	}

	path, err = UnquoteFilename(name)
	if err != nil {
		return "", "", err
	}
	return path, id, nil
}

// ParseStatus parses `git status -s -u` output.
func ParseStatus(output string) ([]StatusEntry, error) {
	var entries []StatusEntry
	for _, line := range splitLines(output) {
		tokens := statusToken.FindAllString(line, -1)
		if len(tokens) < 2 {
			return nil, zerr.With(domain.ErrStatusLineMalformed, "line", line)
		}

		changeType := strings.TrimRight(tokens[0], " \t")
		names := tokens[1:]

		var name string
		if strings.HasPrefix(changeType, "R") {
			name = names[len(names)-1]
		} else {
			name = strings.Join(names, "")
		}

		path, err := UnquoteFilename(strings.TrimRight(name, " \t"))
		if err != nil {
			return nil, zerr.With(err, "line", line)
		}
		entries = append(entries, StatusEntry{ChangeType: changeType, Path: path})
	}
	return entries, nil
}

// ParseHashObjects pairs `git hash-object --stdin-paths` output with the paths that were hashed.
func ParseHashObjects(output string, paths []string) (map[string]string, error) {
	lines := splitLines(output)
	if len(lines) != len(paths) {
		err := zerr.With(domain.ErrHashCountMismatch, "expected", len(paths))
		return nil, zerr.With(err, "actual", len(lines))
	}

	hashes := make(map[string]string, len(paths))
	for i, p := range paths {
		hashes[p] = strings.TrimSpace(lines[i])
	}
	return hashes, nil
}

// splitLines trims the output and returns its non-empty lines.
func splitLines(output string) []string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// cutField splits s at its first space or tab.
func cutField(s string) (field, rest string, ok bool) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

func isMode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isObjectID accepts lower case SHA-1 (40 digit) and SHA-256 (64 digit) object names.
func isObjectID(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
