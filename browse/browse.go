// SPDX-License-Identifier: GPL-2.0-or-later

// Package browse lists playable media files for the in-view menu.
package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var videoExtensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
}

// Videos returns the playable files directly inside dir, sorted by
// name. Hidden files and subdirectories are skipped. An empty dir
// means the working directory.
func Videos(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "list media directory")
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !videoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
