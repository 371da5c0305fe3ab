package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quickScript = `name: quick
steps:
  - convert: {category: Length, value: 1, from: Meter, to: Foot}
  - save: true
  - convert: {category: Mass, value: 1, from: Kilogram, to: Pound}
  - save: true
  - history: true
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeRun(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRunCommand(&RootOptions{Format: format, History: "sqlite"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCommand_Text(t *testing.T) {
	out, err := executeRun(t, "text", writeScript(t, quickScript))
	require.NoError(t, err)
	assert.Equal(t, `# quick
1.0 Meter = 3.2808 Foot
saved: 1.0 Meter → 3.2808 Foot
1.0 Kilogram = 2.2046 Pound
saved: 1.0 Kilogram → 2.2046 Pound
history:
- 1.0 Meter → 3.2808 Foot
- 1.0 Kilogram → 2.2046 Pound
`, out)
}

func TestRunCommand_JSON(t *testing.T) {
	out, err := executeRun(t, "json", writeScript(t, quickScript))
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Name  string   `json:"name"`
			Lines []string `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "quick", resp.Data.Name)
	assert.Len(t, resp.Data.Lines, 7)
}

func TestRunCommand_InvalidScript(t *testing.T) {
	path := writeScript(t, "name: broken\nsteps:\n  - teleport: true\n")
	out, err := executeRun(t, "text", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [S003]")
}

func TestRunCommand_MissingFile(t *testing.T) {
	out, err := executeRun(t, "json", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "S001", resp.Error.Code)
}

func TestRunCommand_RequiresPath(t *testing.T) {
	_, err := executeRun(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
