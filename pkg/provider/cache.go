package provider

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const cacheDirName = "hl_cache"

// cacheDir keys the cache by the exact command and a hash of the working
// directory, so the same listing from two trees never collides.
func cacheDir(root string, args []string, dir string) string {
	if root == "" {
		root = os.TempDir()
	}
	h := fnv.New64a()
	h.Write([]byte(dir))
	return filepath.Join(root, cacheDirName, strings.Join(args, "_"), strconv.FormatUint(h.Sum64(), 10))
}

// writeCache stores raw stdout under a "<unix>_<total>" file name; the name
// alone is enough to answer a later probe without reading the file.
func writeCache(root string, args []string, dir string, total int, stdout []byte) (string, error) {
	cdir := cacheDir(root, args, dir)
	if err := os.MkdirAll(cdir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(cdir, fmt.Sprintf("%d_%d", time.Now().Unix(), total))
	if err := os.WriteFile(path, stdout, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// probeCache returns the newest cache entry for the command, if any.
func probeCache(root string, args []string, dir string) (path string, total int, ok bool) {
	cdir := cacheDir(root, args, dir)
	entries, err := os.ReadDir(cdir)
	if err != nil {
		return "", 0, false
	}

	var bestStamp int64 = -1
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stamp, n, parseOK := parseCacheName(e.Name())
		if !parseOK || stamp <= bestStamp {
			continue
		}
		bestStamp = stamp
		path = filepath.Join(cdir, e.Name())
		total = n
	}
	return path, total, bestStamp >= 0
}

func parseCacheName(name string) (stamp int64, total int, ok bool) {
	parts := strings.Split(name, "_")
	if len(parts) != 2 {
		return 0, 0, false
	}
	stamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return stamp, total, true
}
