package testUtil

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

// Space is a temporary project directory for filesystem tests. The working
// directory is moved into it for the duration of the test and restored by
// t.Cleanup. Helper paths are relative to the space.
type Space struct {
	t   *testing.T
	Dir string
}

func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	require.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "srclist-test-")
	require.NoError(t, err)

	// MkdirTemp can hand out a path through a symlink (macOS /var ->
	// /private/var); resolve it so paths derived from Getwd compare equal.
	tempDir, err = filepath.EvalSymlinks(tempDir)
	require.NoError(t, err)

	require.NoError(t, os.Chdir(tempDir))

	t.Cleanup(func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	})

	return Space{
		t:   t,
		Dir: tempDir,
	}
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	full := filepath.Join(s.Dir, path)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(full), os.ModePerm))
	require.NoError(s.t, os.WriteFile(full, content, 0644))
}

func (s Space) Mkdir(path string) {
	s.t.Helper()

	require.NoError(s.t, os.MkdirAll(filepath.Join(s.Dir, path), os.ModePerm))
}

func (s Space) Remove(path string) {
	s.t.Helper()

	require.NoError(s.t, os.RemoveAll(filepath.Join(s.Dir, path)))
}

func (s Space) ReadFile(path string) []byte {
	s.t.Helper()

	content, err := os.ReadFile(filepath.Join(s.Dir, path))
	require.NoError(s.t, err)
	return content
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(filepath.Join(s.Dir, path))
	require.NoError(s.t, err)
	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(filepath.Join(s.Dir, path))
	require.NoError(s.t, err)
}

func (s Space) AssertNotExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(filepath.Join(s.Dir, path))
	require.True(s.t, os.IsNotExist(err))
}
