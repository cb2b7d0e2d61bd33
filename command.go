package arena

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// defaultInterpreters maps program extensions to interpreter argv
// prefixes. Unknown extensions run the file directly.
var defaultInterpreters = map[string][]string{
	".py":  {"python3"},
	".js":  {"node"},
	".lua": {"lua"},
}

// resolveCommand turns an agent program path into the argv used to
// launch it. overrides extends the built-in table per extension. A path
// that does not name a readable file is a setup failure: it surfaces
// here, before anything spawns, never per turn.
func resolveCommand(progPath string, overrides map[string][]string) ([]string, error) {
	info, err := os.Stat(progPath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, progPath)
	}

	ext := filepath.Ext(progPath)
	if argv, ok := overrides[ext]; ok {
		return append(slices.Clone(argv), progPath), nil
	}
	if argv, ok := defaultInterpreters[ext]; ok {
		return append(slices.Clone(argv), progPath), nil
	}
	if ext == ".class" {
		class := strings.TrimSuffix(filepath.Base(progPath), ext)
		return []string{"java", "-cp", filepath.Dir(progPath), class}, nil
	}

	// Direct execution. Bare filenames are anchored to the working
	// directory so exec does not consult PATH.
	if !strings.ContainsRune(progPath, os.PathSeparator) {
		progPath = "." + string(os.PathSeparator) + progPath
	}
	return []string{progPath}, nil
}
