package domain

import "go.trai.ch/zerr"

// Manifest is the packaging layer's static configuration data: the
// project's cache-variable prefix, the interpreter identity, the pinned
// dependency list, the override tables, and the extension targets.
type Manifest struct {
	Prefix        string
	Python        string
	PythonVersion PythonVersion
	Pins          []Pin
	Overrides     Overrides
	Targets       []BuildTarget
}

// Target returns the extension with the given qualified name.
func (m *Manifest) Target(name string) (BuildTarget, error) {
	for _, t := range m.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	return BuildTarget{}, zerr.With(ErrTargetNotFound, "target", name)
}

// TargetNames returns all extension names in manifest order.
func (m *Manifest) TargetNames() []string {
	names := make([]string, len(m.Targets))
	for i, t := range m.Targets {
		names[i] = t.Name
	}
	return names
}
