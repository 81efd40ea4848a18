package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/kmizu/JavaSee/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "Child.java"), "class Child {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "Child.java")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "Main.java")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "Child.java")
		writeTestFile(t, child, "class Child {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "Main.java")
	content := "class Main {\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_FileInfoAndWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "javasee.yml"))

	_, err := adapter.FileInfo(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, adapter.WriteFile(path, []byte("rules: []\n"), 0o644))

	info, err := adapter.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("rules: []\n")), info.Size())
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath("/project", "/project/src/Main.java")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("src", "Main.java")), rel)
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("directory is scanned recursively in walk order", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "B.java"), "class B {}\n")
		writeTestFile(t, filepath.Join(root, "A.java"), "class A {}\n")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "not java\n")

		nested := filepath.Join(root, "pkg")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(nested, "C.java"), "class C {}\n")

		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(root, "A.java"),
			filepath.Join(root, "B.java"),
			filepath.Join(nested, "C.java"),
		}, sourcePaths(sources))
	})

	t.Run("go style recursive suffix is accepted", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "pkg")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(nested, "C.java"), "class C {}\n")

		sources, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(nested, "C.java")}, sourcePaths(sources))
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		mainPath := filepath.Join(home, "Home.java")
		writeTestFile(t, mainPath, "class Home {}\n")

		sources, err := adapter.Get([]m.Path{"~"})
		require.NoError(t, err)

		assert.Contains(t, sourcePaths(sources), mainPath)
	})

	t.Run("vcs directories are skipped", func(t *testing.T) {
		root := t.TempDir()
		gitDir := filepath.Join(root, ".git")
		mustMkdir(t, gitDir)
		writeTestFile(t, filepath.Join(gitDir, "Hidden.java"), "class Hidden {}\n")
		writeTestFile(t, filepath.Join(root, "Main.java"), "class Main {}\n")

		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(root, "Main.java")}, sourcePaths(sources))
	})

	t.Run("returns error for missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
		assert.Error(t, err)
	})

	t.Run("file path returns single source", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "Main.java")
		writeTestFile(t, path, "class Main {}\n")

		sources, err := adapter.Get([]m.Path{m.Path(path)})
		require.NoError(t, err)

		assert.Equal(t, []string{path}, sourcePaths(sources))
	})

	t.Run("non-java file yields no sources", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "Main.kt")
		writeTestFile(t, path, "class Main\n")

		sources, err := adapter.Get([]m.Path{m.Path(path)})
		require.NoError(t, err)

		assert.Empty(t, sources)
	})

	t.Run("duplicate roots are de-duplicated", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "Main.java")
		writeTestFile(t, path, "class Main {}\n")

		sources, err := adapter.Get([]m.Path{m.Path(root), m.Path(path)})
		require.NoError(t, err)

		assert.Equal(t, []string{path}, sourcePaths(sources))
	})

	t.Run("no roots", func(t *testing.T) {
		sources, err := adapter.Get(nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func sourcePaths(sources []m.Source) []string {
	paths := make([]string, 0, len(sources))
	for _, s := range sources {
		paths = append(paths, string(s.Path))
	}

	return paths
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
