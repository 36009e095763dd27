// Package resolver turns invocation parameters into the argument list
// handed to the external build system's configure step.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.kinematix.dev/extbuild/internal/core/domain"
	"go.kinematix.dev/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver computes deterministic build-system argument lists.
// Its only side effects are read-only stat calls on override paths and
// warnings for overrides that point nowhere.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// NormalizeOutputDir makes the output directory end in a path separator,
// which the build system's native-library auto-discovery requires.
// Normalizing an already-normalized path is a no-op.
func NormalizeOutputDir(dir string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir
	}
	return dir + string(os.PathSeparator)
}

// Resolve produces the configure-step arguments for one target.
//
// Structural flags come first, in fixed order. With overrideEnabled, two
// fixed flags disable network fetching and select the system numerical
// library, then each override whose path exists on disk contributes one
// flag, in sorted dependency order. Overrides pointing at missing paths
// are skipped with a warning: that dependency alone falls back to network
// fetch, which the disconnected build will then report in its own terms.
// Identical inputs always yield a byte-identical list.
func (r *Resolver) Resolve(
	target domain.BuildTarget,
	bctx domain.BuildContext,
	overrideEnabled bool,
	overrides domain.Overrides,
) (domain.ArgumentList, error) {
	if !filepath.IsAbs(bctx.OutputDir) {
		return nil, zerr.With(domain.ErrOutputDirNotAbsolute, "output_dir", bctx.OutputDir)
	}
	outputDir := NormalizeOutputDir(bctx.OutputDir)

	args := domain.ArgumentList{
		"-DCMAKE_LIBRARY_OUTPUT_DIRECTORY=" + outputDir,
		"-DPYTHON_EXECUTABLE=" + bctx.Python,
		fmt.Sprintf("-D%s_PYTHON_VERSION=%s", target.Prefix, bctx.PythonVersion.FlagValue()),
		"-DCMAKE_BUILD_TYPE=" + string(bctx.Mode),
	}
	for _, define := range target.Defines {
		args = append(args, "-D"+define)
	}
	args = append(args, "--log-level=VERBOSE")

	if !overrideEnabled {
		return args, nil
	}

	args = append(args,
		"-DFETCHCONTENT_FULLY_DISCONNECTED:BOOL=TRUE",
		fmt.Sprintf("-D%s_USE_SYSTEM_EIGEN3:BOOL=TRUE", target.Prefix),
	)

	for _, id := range sortedKeys(overrides.Archives) {
		path := overrides.Archives[id]
		if !pathExists(path, false) {
			r.warnMissing(id, path)
			continue
		}
		args = append(args, fmt.Sprintf("-D%s_%s_ARCHIVE=%s", target.Prefix, flagID(id), path))
	}

	for _, id := range sortedKeys(overrides.SourceDirs) {
		dir := overrides.SourceDirs[id]
		if !pathExists(dir, true) {
			r.warnMissing(id, dir)
			continue
		}
		args = append(args, fmt.Sprintf("-DFETCHCONTENT_SOURCE_DIR_%s:STRING=%s", flagID(id), dir))
	}

	return args, nil
}

func (r *Resolver) warnMissing(id, path string) {
	r.logger.Warn(fmt.Sprintf("override for %q skipped: %s does not exist, falling back to network fetch", id, path))
}

// flagID is the deterministic transformation of a dependency identifier
// into the variable component of its override flag.
func flagID(id string) string {
	return strings.ToUpper(id)
}

// pathExists is evaluated at resolve time, never cached.
func pathExists(path string, wantDir bool) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() == wantDir
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
