package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutputFormatter_JSONSuccessTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"result": "success"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	require.NotEmpty(t, resp.TraceID)
	_, err = uuid.Parse(resp.TraceID)
	assert.NoError(t, err)
}

func TestOutputFormatter_JSONErrorTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("E008", "configuration invalid", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E008", resp.Error.Code)
	require.NotEmpty(t, resp.TraceID)
	_, err = uuid.Parse(resp.TraceID)
	assert.NoError(t, err)
}

func TestOutputFormatter_YAMLSuccessTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "yaml",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"result": "success"})
	require.NoError(t, err)

	var resp CLIResponse
	err = yaml.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.TraceID)
	_, err = uuid.Parse(resp.TraceID)
	assert.NoError(t, err)
}

func TestOutputFormatter_TraceIDsDistinct(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Success("first"))
	require.NoError(t, formatter.Success("second"))

	dec := json.NewDecoder(buf)
	var first, second CLIResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.NotEmpty(t, first.TraceID)
	require.NotEmpty(t, second.TraceID)
	assert.NotEqual(t, first.TraceID, second.TraceID)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("all checks passed")
	require.NoError(t, err)
	assert.Equal(t, "all checks passed\n", buf.String())
}
