package config

// manifestDTO represents the structure of the extbuild.yaml manifest file.
type manifestDTO struct {
	Version int    `yaml:"version"`
	Prefix  string `yaml:"prefix"`

	Python pythonDTO `yaml:"python"`

	// Dependencies pins the native component's third-party dependency
	// graph: id -> version identity. The orchestrator treats the pins as
	// opaque; it only checks ids against the override tables.
	Dependencies map[string]string `yaml:"dependencies"`

	Overrides overridesDTO `yaml:"overrides"`

	// Extensions maps qualified extension name to its build definition.
	Extensions map[string]extensionDTO `yaml:"extensions"`
}

type pythonDTO struct {
	Executable string `yaml:"executable"`
	Version    string `yaml:"version"`
}

type overridesDTO struct {
	// Sources maps dependency id to a pre-staged source checkout.
	Sources map[string]string `yaml:"sources"`
	// Archives maps dependency id to a pre-downloaded release archive.
	Archives map[string]string `yaml:"archives"`
}

type extensionDTO struct {
	Source  string   `yaml:"source"`
	Defines []string `yaml:"defines"`
}
