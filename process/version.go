package process

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kballard/go-shellquote"
)

// MinSupported is the oldest engine release the rendered directive vocabulary
// targets. Older engines mostly work but are not exercised.
var MinSupported = semver.MustParse("5.0.0")

// bannerPattern matches banners such as "gnuplot 5.4 patchlevel 8" and
// "gnuplot 6.0 patchlevel 0".
var bannerPattern = regexp.MustCompile(`gnuplot\s+(\d+)\.(\d+)(?:\s+patchlevel\s+(\d+))?`)

// Version probes the engine release by running the command with --version.
// The probe is a separate short-lived invocation and never touches a session
// channel.
func Version(command string) (*semver.Version, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("split command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	out, err := exec.Command(argv[0], append(argv[1:], "--version")...).Output()
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", argv[0], err)
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the engine release from version banner text.
func ParseVersion(banner string) (*semver.Version, error) {
	m := bannerPattern.FindStringSubmatch(banner)
	if m == nil {
		return nil, fmt.Errorf("unrecognized version banner %q", strings.TrimSpace(banner))
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	v, err := semver.NewVersion(m[1] + "." + m[2] + "." + patch)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", m[0], err)
	}
	return v, nil
}

// Supported reports whether the probed release is at least MinSupported.
func Supported(v *semver.Version) bool {
	return !v.LessThan(MinSupported)
}
