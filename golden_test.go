package jsondom

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			doc, err := Parse(string(src))

			var actual string
			if err != nil {
				// Invalid fixtures pin the exact error text instead.
				actual = err.Error()
			} else {
				actual, err = Serialize(doc, Indent(2))
				require.NoError(t, err)
			}

			goldenFile := strings.Replace(file, ".json", ".golden", 1)
			if *update {
				err := os.WriteFile(goldenFile, []byte(actual), 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "golden file not found, run with -update to create it")

			require.Equal(t, string(expected), actual)
		})
	}
}
