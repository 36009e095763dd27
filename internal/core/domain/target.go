package domain

// BuildTarget identifies one native extension to build.
// It is constructed once when the manifest is loaded and is immutable afterwards.
type BuildTarget struct {
	// Name is the qualified extension name (e.g., "controllers.cartesian_mapper").
	Name string

	// SourceDir is the directory holding the extension's CMakeLists.txt,
	// relative to the manifest. "." builds from the repository root.
	SourceDir string

	// Tool is the external build-tool executable (e.g., "cmake").
	Tool string

	// Prefix is the namespace for project-specific cache variables
	// (e.g., "EXTBUILD" yields -DEXTBUILD_PYTHON_VERSION=...).
	Prefix string

	// Defines are fixed feature toggles passed on every build,
	// in manifest order (e.g., "EXTBUILD_BUILD_TESTS=OFF").
	Defines []string
}
