package hyvamodules

import (
	"os"
	"path/filepath"
)

// LocateBaseDir finds the Magento root relative to the theme's tailwind
// directory. The app/design depth is tried before the vendor depth.
func LocateBaseDir(cwd string) (string, bool) {
	for _, trail := range []string{AppBackTrail, VendorBackTrail} {
		base := filepath.Join(cwd, trail)
		if fileExists(filepath.Join(base, ManifestFile)) {
			return base, true
		}
	}
	return "", false
}

// fileExists reports whether path exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
