package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp()
	app.Writer = out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"shardingconfig"}, args...))
	return out.String(), err
}

func withStdin(t *testing.T, input string) {
	t.Helper()
	previous := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() {
		stdin = previous
	})
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all fields",
			args: []string{"render", "-o", "json", "--batch-size", "10", "--glob-pattern", "/*", "--glob-pattern-base-path", "/data"},
			want: "{\n  \"BatchSize\": 10,\n  \"GlobPattern\": \"/*\",\n  \"GlobPatternBasePath\": \"/data\"\n}\n",
		},
		{
			name: "no fields",
			args: []string{"render", "-o", "json"},
			want: "{}\n",
		},
		{
			name: "empty pattern is kept",
			args: []string{"render", "-o", "json", "--glob-pattern", ""},
			want: "{\n  \"GlobPattern\": \"\"\n}\n",
		},
		{
			name: "yaml",
			args: []string{"render", "-o", "yaml", "--batch-size", "2"},
			want: "BatchSize: 2\n",
		},
		{
			name: "text",
			args: []string{"render", "--output", "text", "--batch-size", "2"},
			want: "{\n  \"BatchSize\": 2,\n  \"GlobPattern\": null,\n  \"GlobPatternBasePath\": null\n}\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderDefaultFormatFromEnvironment(t *testing.T) {
	t.Setenv("BACALHAU_OUTPUT_FORMAT", "yaml")

	got, err := run(t, "render", "--glob-pattern", "/in/*")
	require.NoError(t, err)
	assert.Equal(t, "GlobPattern: /in/*\n", got)
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := run(t, "render", "-o", "xml")
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("BACALHAU_LOG_LEVEL", "loud")

	_, err := run(t, "render", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log-level setting")
}

func TestParseStdin(t *testing.T) {
	withStdin(t, `{"batch_size": 3, "GlobPattern": ""}`)

	got, err := run(t, "parse", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "BatchSize: 3\nGlobPattern: \"\"\n", got)
}

func TestParseYAMLFile(t *testing.T) {
	previous := openFile
	t.Cleanup(func() {
		openFile = previous
	})
	openFile = func(path string) (io.ReadCloser, error) {
		if path != "sharding.yaml" {
			return nil, errors.New("not found")
		}
		return io.NopCloser(strings.NewReader("BatchSize: 5\nglob_pattern_base_path: /data\n")), nil
	}

	got, err := run(t, "parse", "-o", "json", "sharding.yaml")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"BatchSize\": 5,\n  \"GlobPatternBasePath\": \"/data\"\n}\n", got)

	_, err = run(t, "parse", "missing.yaml")
	assert.EqualError(t, err, "opening missing.yaml: not found")
}

func TestParseEmptyInput(t *testing.T) {
	withStdin(t, "")

	got, err := run(t, "parse", "-o", "json", "-")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", got)
}

func TestParseInvalidInput(t *testing.T) {
	withStdin(t, `{"BatchSize": "many"}`)

	_, err := run(t, "parse", "-o", "json")
	assert.EqualError(t, err, `decoding stdin: field BatchSize: "many" is not an integer`)
}

func TestSchema(t *testing.T) {
	got, err := run(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, got, `"BatchSize"`)
	assert.Contains(t, got, `"GlobPatternBasePath"`)
	assert.Contains(t, got, `"type": "int"`)
	assert.Contains(t, got, `"nullable": true`)
}
