package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Benchmark file name prefixes picked up by BenchmarkFiles.
const (
	LadderPrefix = "ladder_"
	BridgePrefix = "bridge_"
)

// DirFiles lists every regular *.txt file in dir, sorted by name.
func DirFiles(dir string) ([]string, error) {
	return listTxt(dir, func(string) bool { return true })
}

// BenchmarkFiles lists ladder_*.txt and bridge_*.txt in dir, smallest file
// first. Files of equal size keep name order.
func BenchmarkFiles(dir string) ([]string, error) {
	paths, err := listTxt(dir, func(name string) bool {
		return strings.HasPrefix(name, LadderPrefix) || strings.HasPrefix(name, BridgePrefix)
	})
	if err != nil {
		return nil, err
	}

	sizes := make(map[string]int64, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "batch: stat %s", p)
		}
		sizes[p] = fi.Size()
	}
	sort.SliceStable(paths, func(i, j int) bool { return sizes[paths[i]] < sizes[paths[j]] })

	return paths, nil
}

func listTxt(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: read dir %s", dir)
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasSuffix(name, ".txt") || !keep(name) {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}

	return out, nil
}
