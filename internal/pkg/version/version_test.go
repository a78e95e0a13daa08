//go:build unit

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info GitInfo
		want string
	}{
		{
			name: "Clean",
			info: GitInfo{Commit: "0123456789abcdef", Branch: "main", Tag: "v1.2.0"},
			want: "v1.2.0 (main@0123456)",
		},
		{
			name: "DirtyShortCommit",
			info: GitInfo{Commit: "abc", Branch: "dev", Tag: "none", Dirty: true},
			want: "none (dev@abc, dirty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGetGitInfo_TrimsEmbeddedValues(t *testing.T) {
	info := GetGitInfo()
	assert.NotContains(t, info.Commit, "\n")
	assert.NotContains(t, info.Tag, "\n")
}
