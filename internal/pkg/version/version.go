// Package version exposes the git metadata embedded at build time.
package version

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && echo clean > dirty.txt || echo dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo is the build's git metadata.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// String formats the metadata on one line, e.g. "v1.2.0 (main@abc1234, dirty)".
func (g GitInfo) String() string {
	short := g.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	s := fmt.Sprintf("%s (%s@%s", g.Tag, g.Branch, short)
	if g.Dirty {
		s += ", dirty"
	}
	return s + ")"
}

var info = GitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the embedded git metadata.
func GetGitInfo() GitInfo {
	return info
}
