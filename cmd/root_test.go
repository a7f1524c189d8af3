package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"board", "column", "task", "use", "tui"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_BoardFlag(t *testing.T) {
	root := NewRootCmd()
	assert.NotNil(t, root.Flags().Lookup("board"))
}

func TestRootCmd_Help(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"column", "--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "reorder")
}
