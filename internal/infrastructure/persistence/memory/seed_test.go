package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadSeed 测试种子文件加载
func TestLoadSeed(t *testing.T) {
	t.Run("正常加载保持顺序", func(t *testing.T) {
		path := writeSeedFile(t, `[
			{"isbn": "1", "author": "Chinua Achebe", "title": "Things Fall Apart"},
			{"isbn": "2", "author": "Hans Christian Andersen", "title": "Fairy tales"}
		]`)

		seed, err := LoadSeed(path)
		require.NoError(t, err)
		require.Len(t, seed, 2)
		assert.Equal(t, "1", seed[0].ISBN)
		assert.Equal(t, "2", seed[1].ISBN)
		assert.Equal(t, "Fairy tales", seed[1].Title)
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("非法JSON", func(t *testing.T) {
		path := writeSeedFile(t, `{not json`)
		_, err := LoadSeed(path)
		assert.Error(t, err)
	})

	t.Run("缺少isbn的条目被拒绝", func(t *testing.T) {
		path := writeSeedFile(t, `[{"author": "A", "title": "T"}]`)
		_, err := LoadSeed(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "isbn")
	})
}
