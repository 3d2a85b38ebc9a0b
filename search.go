package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
)

// FindConfig locates the config file a loadConfig line refers to. It
// probes the exec's directory and the sibling ../configs directory,
// each with the name as given and lower-cased, and each of those bare
// and with every known config suffix. The first existing candidate
// wins. The tried list holds every path probed, for diagnostics; it
// comes back filled on failure too.
//
// An unreadable candidate is a file access error, not a miss: only
// plain absence moves the probe along.
func FindConfig(dir, name string) (path string, tried []string, err error) {
	suffixes := []string{""}
	for _, f := range config.AllFormats() {
		suffixes = append(suffixes, f.Suffix())
	}
	for _, base := range candidateBases(dir, name) {
		for _, suffix := range suffixes {
			cand := base + suffix
			tried = append(tried, cand)
			_, serr := os.Stat(cand)
			if serr == nil {
				return cand, tried, nil
			}
			if !os.IsNotExist(serr) {
				return "", tried, fmt.Errorf("%w: %v", ErrFileAccess, serr)
			}
		}
	}
	return "", tried, fmt.Errorf("%w: %s (tried %d paths under %s)", ErrConfigNotFound, name, len(tried), dir)
}

// candidateBases lists the suffix-less probe locations in order. The
// lower-cased variant lowercases the name before joining, and only
// appears when it differs.
func candidateBases(dir, name string) []string {
	lower := strings.ToLower(name)
	bases := []string{joinRel(dir, name)}
	if lower != name {
		bases = append(bases, joinRel(dir, lower))
	}
	if !filepath.IsAbs(name) {
		bases = append(bases, filepath.Join(dir, "..", "configs", name))
		if lower != name {
			bases = append(bases, filepath.Join(dir, "..", "configs", lower))
		}
	}
	return bases
}

func joinRel(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// FindTCSFile locates a telConfig target: the exec's directory, then
// the sibling ../configs directory, name exactly as given. TCS files
// name themselves fully, so there are no suffix or case variants.
func FindTCSFile(dir, name string) (string, error) {
	cands := []string{joinRel(dir, name)}
	if !filepath.IsAbs(name) {
		cands = append(cands, filepath.Join(dir, "..", "configs", name))
	}
	for _, cand := range cands {
		_, err := os.Stat(cand)
		if err == nil {
			return cand, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %v", ErrFileAccess, err)
		}
	}
	return "", fmt.Errorf("%w: %s under %s", ErrConfigNotFound, name, dir)
}
