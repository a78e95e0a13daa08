//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_ReadAndStatFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "uplink.json")
	testContent := []byte(`{"wired": {"device": "eth0"}}`)
	require.NoError(t, os.WriteFile(testFile, testContent, 0644))

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("ModTime", func(t *testing.T) {
		stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, os.Chtimes(testFile, stamp, stamp))

		modTime, err := adapter.ModTime(testFile)
		assert.NoError(t, err)
		assert.True(t, stamp.Equal(modTime))
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.json")))
		// Directories are not configuration files
		assert.False(t, adapter.FileExists(tempDir))
	})
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestManagerAdapter_ModTime_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ModTime("/nonexistent/file.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat file")
}

func TestNotifier(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "uplink.json")

	notifier, err := NewNotifier(testFile)
	require.NoError(t, err)
	defer notifier.Close()

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(testFile, []byte("{}"), 0644))

	select {
	case <-notifier.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}
}
