package hyvamodules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks content scanning statistics
type ScanStats struct {
	Patterns        int // Content patterns expanded
	FilesDiscovered int // Total files matched by the patterns
	FilesScanned    int // Files Tailwind will read (after filtering)
	FilesSkipped    int // Files skipped because of .gitignore
}

// ContentPatterns returns the content globs of a merged configuration:
// content (or content.files) for v3, purge.content (or a purge list) for v2.
func ContentPatterns(config map[string]any) []string {
	var raw []any
	if DetectVersion(config) == VersionV2 {
		switch purge := config["purge"].(type) {
		case map[string]any:
			raw = asList(purge["content"])
		default:
			raw = asList(purge)
		}
	} else {
		switch content := config["content"].(type) {
		case map[string]any:
			raw = asList(content["files"])
		default:
			raw = asList(content)
		}
	}

	patterns := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			patterns = append(patterns, s)
		}
	}
	return patterns
}

// ScanContent expands content patterns into the files Tailwind scans.
// Relative patterns are resolved against themeDir; files ignored by the
// theme's .gitignore are skipped.
func ScanContent(patterns []string, themeDir string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{Patterns: len(patterns)}
	gi := loadGitIgnore(themeDir)

	for _, pattern := range patterns {
		fullPattern := pattern
		if !filepath.IsAbs(pattern) {
			fullPattern = filepath.Join(themeDir, pattern)
		}

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if isIgnored(gi, themeDir, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// loadGitIgnore compiles the theme's .gitignore.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(themeDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(themeDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// isIgnored applies .gitignore to files inside the theme directory only.
// Module files outside the theme are not affected by the theme's rules.
func isIgnored(gi *ignore.GitIgnore, themeDir, path string) bool {
	if gi == nil {
		return false
	}
	rel, err := filepath.Rel(themeDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}
