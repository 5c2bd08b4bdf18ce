package workspace

import (
	"errors"
	"fmt"
)

// Validate checks internal consistency: names and paths are present and
// unique, kinds are known, every dependency resolves to a declared package,
// apps carry a port no other app uses, and the dependency graph is acyclic.
// All findings are reported at once via errors.Join.
func (m *Manifest) Validate() error {
	var errs []error

	if m.Project == "" {
		errs = append(errs, errors.New("manifest: project name is required"))
	}
	if len(m.Workspaces) == 0 {
		errs = append(errs, errors.New("manifest: at least one workspace is required"))
	}

	byName := make(map[string]Workspace, len(m.Workspaces))
	paths := make(map[string]string, len(m.Workspaces))
	ports := make(map[int]string)

	for _, ws := range m.Workspaces {
		if ws.Name == "" {
			errs = append(errs, errors.New("manifest: workspace with empty name"))
			continue
		}
		if _, dup := byName[ws.Name]; dup {
			errs = append(errs, fmt.Errorf("workspace %q: duplicate name", ws.Name))
			continue
		}
		byName[ws.Name] = ws

		switch ws.Kind {
		case KindApp, KindPackage:
		default:
			errs = append(errs, fmt.Errorf("workspace %q: unknown kind %q", ws.Name, ws.Kind))
		}

		if ws.Path == "" {
			errs = append(errs, fmt.Errorf("workspace %q: path is required", ws.Name))
		} else if other, dup := paths[ws.Path]; dup {
			errs = append(errs, fmt.Errorf("workspace %q: path %q already used by %q", ws.Name, ws.Path, other))
		} else {
			paths[ws.Path] = ws.Name
		}

		switch ws.Kind {
		case KindApp:
			if ws.Port == 0 {
				errs = append(errs, fmt.Errorf("app %q: port is required", ws.Name))
			} else if other, dup := ports[ws.Port]; dup {
				errs = append(errs, fmt.Errorf("app %q: port %d already used by %q", ws.Name, ws.Port, other))
			} else {
				ports[ws.Port] = ws.Name
			}
		case KindPackage:
			if ws.Port != 0 {
				errs = append(errs, fmt.Errorf("package %q: packages do not declare ports", ws.Name))
			}
		}
	}

	for _, ws := range m.Workspaces {
		for _, dep := range ws.DependsOn {
			target, ok := byName[dep]
			if !ok {
				errs = append(errs, fmt.Errorf("workspace %q: depends on undeclared workspace %q", ws.Name, dep))
				continue
			}
			if target.Kind == KindApp {
				errs = append(errs, fmt.Errorf("workspace %q: depends on app %q; only packages may be depended on", ws.Name, dep))
			}
		}
	}

	if cycle := findCycle(m.Workspaces); cycle != nil {
		errs = append(errs, fmt.Errorf("manifest: dependency cycle: %v", cycle))
	}

	return errors.Join(errs...)
}

// findCycle runs a three-color DFS over the dependency edges and returns one
// cycle if any exists. Edges to undeclared workspaces are skipped; they are
// reported separately by Validate.
func findCycle(workspaces []Workspace) []string {
	deps := make(map[string][]string, len(workspaces))
	for _, ws := range workspaces {
		deps[ws.Name] = ws.DependsOn
	}

	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)
	color := make(map[string]int, len(deps))
	var cycle []string

	var visit func(name string, path []string) bool
	visit = func(name string, path []string) bool {
		color[name] = gray
		path = append(path, name)
		for _, dep := range deps[name] {
			if _, declared := deps[dep]; !declared {
				continue
			}
			switch color[dep] {
			case gray:
				// Close the loop for the report.
				for i, n := range path {
					if n == dep {
						cycle = append(append([]string{}, path[i:]...), dep)
						return true
					}
				}
				cycle = []string{dep, name, dep}
				return true
			case white:
				if visit(dep, path) {
					return true
				}
			}
		}
		color[name] = black
		return false
	}

	for _, ws := range workspaces {
		if color[ws.Name] == white {
			if visit(ws.Name, nil) {
				return cycle
			}
		}
	}
	return nil
}
