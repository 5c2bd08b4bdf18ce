// Package workspace models the monorepo manifest: which apps and packages
// exist, where they live, and how they depend on each other. Build
// orchestration consumes the manifest; this package only loads it and checks
// that it is internally consistent.
package workspace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes deployable apps from shared library packages.
type Kind string

const (
	KindApp     Kind = "app"
	KindPackage Kind = "package"
)

// Workspace is one declared sub-project of the monorepo.
type Workspace struct {
	Name      string   `yaml:"name"`
	Kind      Kind     `yaml:"kind"`
	Path      string   `yaml:"path"`
	Port      int      `yaml:"port,omitempty"`
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// Manifest is the full workspace declaration.
type Manifest struct {
	Project    string      `yaml:"project"`
	Workspaces []Workspace `yaml:"workspaces"`
}

// Load reads and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Lookup returns the workspace with the given name.
func (m *Manifest) Lookup(name string) (Workspace, bool) {
	for _, ws := range m.Workspaces {
		if ws.Name == name {
			return ws, true
		}
	}
	return Workspace{}, false
}

// Apps returns the deployable workspaces.
func (m *Manifest) Apps() []Workspace {
	return m.byKind(KindApp)
}

// Packages returns the shared library workspaces.
func (m *Manifest) Packages() []Workspace {
	return m.byKind(KindPackage)
}

func (m *Manifest) byKind(kind Kind) []Workspace {
	var out []Workspace
	for _, ws := range m.Workspaces {
		if ws.Kind == kind {
			out = append(out, ws)
		}
	}
	return out
}
