package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should register server and job commands", func(t *testing.T) {
		cmd := New()

		names := []string{}
		for _, c := range cmd.Commands() {
			names = append(names, c.Name())
		}

		assert.ElementsMatch(t, []string{"server", "job"}, names)
	})

	t.Run("should reject unknown jobs before loading config", func(t *testing.T) {
		cmd := New()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"job", "run", "fetch_resources"})

		err := cmd.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid argument")
	})

	t.Run("should expose config flag on server commands", func(t *testing.T) {
		cmd := ServerCmd()

		flag := cmd.PersistentFlags().Lookup("config")

		require.NotNil(t, flag)
		assert.Equal(t, "./config.yaml", flag.DefValue)
	})
}
