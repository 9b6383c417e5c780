package hyvamodules

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Reporter prints human readable summaries for the CLI
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a new reporter
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(forceColors),
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintModules lists module directories and what each contributes
func (r *Reporter) PrintModules(baseDir string, statuses []ModuleStatus) {
	if baseDir == "" {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, ManifestFile+" not found", r.useColors))
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run bin/magento hyva:config:generate in the Magento root", r.useColors))
		return
	}

	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, "Magento root:", r.useColors), baseDir)
	fmt.Fprintln(r.w, "")

	for _, s := range statuses {
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, s.Dir, r.useColors))

		if s.FragmentFile != "" {
			fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleGreen, "config:", r.useColors), filepath.Base(s.FragmentFile))
		} else {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGray, "config: none", r.useColors))
		}

		if s.HasStylesheet {
			fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleGreen, "css:", r.useColors), filepath.Base(SourceStylesheet))
		} else {
			fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGray, "css: none", r.useColors))
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s\n", pluralizeCount(len(statuses), "module", "modules"))
}

// PrintMergeSummary reports a merge pass
func (r *Reporter) PrintMergeSummary(result *MergeResult, output string) {
	fmt.Fprintf(r.w, "%s %s (tailwind %s)\n",
		RenderStyle(StyleGreen, "Merged configuration written to", r.useColors), output, result.Version)
	fmt.Fprintf(r.w, "  Modules merged: %d\n", len(result.Merged))
	fmt.Fprintf(r.w, "  Modules without configuration: %d\n", len(result.Skipped))
}

// PrintError reports a failed command
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "Error:", r.useColors), err)
}

// PrintContent lists content files and scanning statistics
func (r *Reporter) PrintContent(files []string, stats ScanStats, listFiles bool) {
	if listFiles {
		for _, f := range files {
			fmt.Fprintln(r.w, f)
		}
		fmt.Fprintln(r.w, "")
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Content Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------")
	fmt.Fprintf(r.w, "Patterns:          %d\n", stats.Patterns)
	fmt.Fprintf(r.w, "Files Discovered:  %d\n", stats.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Scanned:     %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Ignored:     %d\n", stats.FilesSkipped)
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
