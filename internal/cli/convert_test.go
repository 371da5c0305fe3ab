package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/unitconv/internal/units"
)

func executeConvert(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format, History: "memory"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCommand_Text(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"Length", "1", "Meter", "Foot"}, "1.0 Meter = 3.2808 Foot\n"},
		{[]string{"mass", "1", "kilogram", "pound"}, "1.0 Kilogram = 2.2046 Pound\n"},
		{[]string{"temperature", "100", "celsius", "fahrenheit"}, "100.0 Celsius = 212.00 Fahrenheit\n"},
		{[]string{"temperature", "-40", "celsius", "fahrenheit"}, "-40.0 Celsius = -40.00 Fahrenheit\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0]+"/"+tt.args[1], func(t *testing.T) {
			out, err := executeConvert(t, "text", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCommand_Save(t *testing.T) {
	out, err := executeConvert(t, "text", "--save", "length", "2.5", "kilometer", "meter")
	require.NoError(t, err)
	assert.Equal(t, "2.5 Kilometer = 2500.0000 Meter\nsaved: 2.5 Kilometer → 2500.0000 Meter\n", out)
}

func TestConvertCommand_JSON(t *testing.T) {
	out, err := executeConvert(t, "json", "--save", "temperature", "0", "celsius", "kelvin")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Conversion struct {
				Category string  `json:"category"`
				Value    float64 `json:"value"`
				From     string  `json:"from"`
				Result   float64 `json:"result"`
				To       string  `json:"to"`
			} `json:"conversion"`
			Saved *struct {
				Seq int64 `json:"seq"`
			} `json:"saved"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "Temperature", resp.Data.Conversion.Category)
	assert.Equal(t, "Celsius", resp.Data.Conversion.From)
	assert.Equal(t, "Kelvin", resp.Data.Conversion.To)
	assert.Equal(t, 273.15, resp.Data.Conversion.Result)
	require.NotNil(t, resp.Data.Saved)
	assert.Equal(t, int64(1), resp.Data.Saved.Seq)
}

func TestConvertCommand_UnknownUnit(t *testing.T) {
	out, err := executeConvert(t, "text", "Temperature", "0", "Celsius", "Rankine")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, units.IsUnknownUnit(err))
	assert.Equal(t, "Error [UNKNOWN_UNIT]: unknown Temperature unit \"Rankine\"\n", out)
}

func TestConvertCommand_UnknownUnitJSON(t *testing.T) {
	out, err := executeConvert(t, "json", "Temperature", "0", "Celsius", "Rankine")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_UNIT", resp.Error.Code)
}

func TestConvertCommand_NegativeLength(t *testing.T) {
	out, err := executeConvert(t, "text", "length", "-1", "meter", "foot")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NEGATIVE_VALUE]")
}

func TestConvertCommand_InvalidValue(t *testing.T) {
	out, err := executeConvert(t, "text", "length", "one", "meter", "foot")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `invalid value "one"`)
}

func TestConvertCommand_WrongArgCount(t *testing.T) {
	_, err := executeConvert(t, "text", "length", "1", "meter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 4 arg")
}

func TestConvertHelpText(t *testing.T) {
	out, err := executeConvert(t, "text", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Convert a value between two units")
	assert.Contains(t, out, "--save")
}
