// Package config loads process configuration from the environment, with
// optional .env file support.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file.
//
// With explicit paths, only those are tried. Otherwise the search walks up
// from the executable's directory (so an installed binary finds the project
// root .env) and falls back to the working directory (for `go run`). If no
// .env exists anywhere, the process continues with the system environment.
func LoadEnv(paths ...string) {
	if len(paths) > 0 {
		if err := godotenv.Load(paths...); err != nil {
			log.Printf("[Config] No .env file at specified path(s), using system environment variables")
		}
		return
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Printf("[Config] Failed to load .env from %s: %v", p, err)
		} else {
			log.Printf("[Config] Loaded .env from %s", p)
		}
		return
	}
}

// searchPaths returns the ordered .env candidates: the executable's
// directory and up to three parents, then the working directory.
func searchPaths() []string {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	if exe, err := os.Executable(); err == nil {
		if real, err := filepath.EvalSymlinks(exe); err == nil {
			exe = real
		}
		dir := filepath.Dir(exe)
		for i := 0; i <= 3; i++ {
			add(filepath.Join(dir, ".env"))
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		add(filepath.Join(cwd, ".env"))
	}
	return out
}

// String returns the named variable, or def when unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int returns the named variable parsed as an int, or def when unset or
// unparsable.
func Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}
