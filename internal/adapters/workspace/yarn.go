package workspace

import (
	"strconv"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// parseYarnLock parses the yarn v1 text format.
//
//	"foo@^1.0.0", foo@^1.1.0:
//	  version "1.2.0"
//	  dependencies:
//	    bar "^2.0.0"
func parseYarnLock(data []byte) (*domain.ParsedLock, error) {
	lock := domain.NewParsedLock(domain.LockKindYarn)

	var (
		keys    []string
		entry   domain.LockEntry
		section string
	)
	flush := func() {
		for _, key := range keys {
			lock.Entries[key] = entry
		}
		keys = nil
		entry = domain.LockEntry{}
		section = ""
	}

	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		switch indent := len(line) - len(strings.TrimLeft(line, " ")); {
		case indent == 0:
			flush()
			header, ok := strings.CutSuffix(trimmed, ":")
			if !ok {
				return nil, zerr.With(zerr.With(domain.ErrLockFileParse, "line", n+1), "text", trimmed)
			}
			for _, raw := range strings.Split(header, ",") {
				key, err := unquoteYarn(strings.TrimSpace(raw))
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParse.Error()), "line", n+1)
				}
				keys = append(keys, key)
			}

		case indent <= 2:
			if name, ok := strings.CutSuffix(trimmed, ":"); ok {
				section = name
				continue
			}
			section = ""
			key, value, err := splitYarnPair(trimmed)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParse.Error()), "line", n+1)
			}
			if key == "version" {
				entry.Version = value
			}

		default:
			if section != "dependencies" && section != "optionalDependencies" {
				continue
			}
			name, versionRange, err := splitYarnPair(trimmed)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParse.Error()), "line", n+1)
			}
			if entry.Dependencies == nil {
				entry.Dependencies = make(domain.Dependencies)
			}
			entry.Dependencies[name] = versionRange
		}
	}
	flush()

	return lock, nil
}

// splitYarnPair splits `key value` where either side may be quoted.
func splitYarnPair(s string) (key, value string, err error) {
	var rawKey, rest string
	if strings.HasPrefix(s, `"`) {
		end := strings.Index(s[1:], `"`)
		if end < 0 {
			return "", "", zerr.With(domain.ErrLockFileParse, "text", s)
		}
		rawKey, rest = s[:end+2], s[end+2:]
	} else {
		var ok bool
		rawKey, rest, ok = strings.Cut(s, " ")
		if !ok {
			return "", "", zerr.With(domain.ErrLockFileParse, "text", s)
		}
	}

	if key, err = unquoteYarn(rawKey); err != nil {
		return "", "", err
	}
	if value, err = unquoteYarn(strings.TrimSpace(rest)); err != nil {
		return "", "", err
	}
	return key, value, nil
}

func unquoteYarn(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' {
		return s, nil
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", zerr.With(domain.ErrLockFileParse, "text", s)
	}
	return out, nil
}

type berryEntry struct {
	Version              string            `yaml:"version"`
	Dependencies         map[string]string `yaml:"dependencies"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies"`
}

// parseBerryLock parses the YAML lock file written by yarn 2 and later.
// Descriptors carry a protocol ("foo@npm:^1.0.0"); the npm protocol is also
// indexed without it so manifest ranges resolve directly.
func parseBerryLock(data []byte) (*domain.ParsedLock, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockFileParse.Error())
	}

	lock := domain.NewParsedLock(domain.LockKindBerry)
	for header, node := range raw {
		if header == "__metadata" {
			continue
		}

		var e berryEntry
		if err := node.Decode(&e); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParse.Error()), "entry", header)
		}

		entry := domain.LockEntry{Version: e.Version}
		if len(e.Dependencies)+len(e.OptionalDependencies) > 0 {
			entry.Dependencies = make(domain.Dependencies)
			for name, r := range e.Dependencies {
				entry.Dependencies[name] = strings.TrimPrefix(r, "npm:")
			}
			for name, r := range e.OptionalDependencies {
				entry.Dependencies[name] = strings.TrimPrefix(r, "npm:")
			}
		}

		for _, descriptor := range strings.Split(header, ",") {
			descriptor = strings.TrimSpace(descriptor)
			lock.Entries[descriptor] = entry

			name, versionRange := domain.SplitSpec(descriptor)
			if stripped, ok := strings.CutPrefix(versionRange, "npm:"); ok {
				lock.Entries[string(domain.NewDependencySpec(name, stripped))] = entry
			}
		}
	}
	return lock, nil
}
