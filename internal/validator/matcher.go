package validator

import (
	"strings"

	"github.com/ethanolivertroy/bundle-checker/internal/models"
	"github.com/ethanolivertroy/bundle-checker/internal/normalize"
)

// packageRoot is the normalized form of "\node_modules\"
const packageRoot = normalize.Separator + "node_modules" + normalize.Separator

// AppearsInBundle returns true if any module path lies inside the package
// root of dep, i.e. contains "\node_modules\<dep>" followed by a separator or
// the end of the path.
func AppearsInBundle(paths []models.ModulePath, dep models.DependencyName) bool {
	if dep == "" {
		return false
	}
	needle := packageRoot + string(dep)
	for _, p := range paths {
		if matchesPackageRoot(string(p), needle) {
			return true
		}
	}
	return false
}

// matchesPackageRoot tries every occurrence of needle, since nested
// node_modules directories can put the package root anywhere in the path.
func matchesPackageRoot(path, needle string) bool {
	for offset := 0; offset < len(path); {
		idx := strings.Index(path[offset:], needle)
		if idx < 0 {
			return false
		}
		end := offset + idx + len(needle)
		rest := path[end:]
		if rest == "" || strings.HasPrefix(rest, normalize.Separator) {
			return true
		}
		offset += idx + 1
	}
	return false
}
