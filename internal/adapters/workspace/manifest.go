package workspace

import (
	"bytes"
	"encoding/json"
	"os"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// manifest is the subset of package.json the workspace adapter reads.
type manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Workspaces      workspacesField   `json:"workspaces"`
}

// workspacesField accepts both `"workspaces": [...]` and `"workspaces": {"packages": [...]}`.
type workspacesField struct {
	Patterns []string
	Set      bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *workspacesField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	w.Set = true

	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &w.Patterns)
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}
	w.Patterns = object.Packages
	return nil
}

func readManifest(path string) (*manifest, error) {
	// #nosec G304 -- path is a package.json inside the workspace
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestRead.Error()), "path", path)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestRead.Error()), "path", path)
	}
	return &m, nil
}

func (m *manifest) info(path string) *domain.PackageInfo {
	return &domain.PackageInfo{
		Name:            m.Name,
		Version:         m.Version,
		Private:         m.Private,
		PackageJSONPath: path,
		Dependencies:    domain.Dependencies(m.Dependencies),
		DevDependencies: domain.Dependencies(m.DevDependencies),
	}
}
