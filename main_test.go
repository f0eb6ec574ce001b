package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mousany/listfiles/lister"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppFlags(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), nil, 0644))
	outDir := t.TempDir()

	tests := []struct {
		name        string
		args        []string
		output      string
		expectError bool
	}{
		{
			name:   "explicit root and output",
			args:   []string{"listfiles", "--root", root, "--output", filepath.Join(outDir, "out.txt")},
			output: filepath.Join(outDir, "out.txt"),
		},
		{
			name:   "short aliases with debug",
			args:   []string{"listfiles", "-d", "-r", root, "-o", filepath.Join(outDir, "short.txt")},
			output: filepath.Join(outDir, "short.txt"),
		},
		{
			name:        "missing root",
			args:        []string{"listfiles", "--root", filepath.Join(root, "nope"), "--output", filepath.Join(outDir, "x.txt")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newApp().Run(tt.args)
			if tt.expectError {
				assert.ErrorIs(t, err, lister.ErrRootNotFound)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(tt.output)
			require.NoError(t, err)
			assert.Equal(t, "a.txt\n"+filepath.Join("sub", "b.txt")+"\n", string(data))
		})
	}
}

func TestAppDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "only.txt"), nil, 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { os.Chdir(wd) })

	require.NoError(t, newApp().Run([]string{"listfiles"}))

	data, err := os.ReadFile(filepath.Join(root, lister.DefaultOutput))
	require.NoError(t, err)
	assert.Equal(t, "only.txt\n", string(data))
}
