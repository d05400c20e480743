/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testReport struct {
	Tool       string                       `json:"tool" yaml:"tool"`
	Containers map[string]map[string]string `json:"containers" yaml:"containers"`
}

func testData() testReport {
	return testReport{
		Tool: "netpeek",
		Containers: map[string]map[string]string{
			"web": {
				"bridge": "eth0",
			},
		},
	}
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format  Format
		unknown bool
	}{
		{format: FormatJSON, unknown: false},
		{format: FormatYAML, unknown: false},
		{format: FormatTable, unknown: false},
		{format: Format("xml"), unknown: true},
		{format: Format(""), unknown: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.unknown, tt.format.IsUnknown())
		})
	}
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(t.Context(), testData()))

	var decoded testReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "netpeek", decoded.Tool)
	assert.Equal(t, "eth0", decoded.Containers["web"]["bridge"])
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(t.Context(), testData()))
	assert.Contains(t, buf.String(), "tool: netpeek")
	assert.Contains(t, buf.String(), "bridge: eth0")
}

func TestWriterSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(t.Context(), testData()))
	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Containers.web.bridge")
	assert.Contains(t, out, "eth0")
}

func TestWriterSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(t.Context(), struct{}{}))
	assert.Contains(t, buf.String(), "<empty>")
}

func TestNewWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(t.Context(), testData()))

	var decoded testReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(t.Context(), testData()))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded testReport
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "netpeek", decoded.Tool)
}

func TestNewFileWriterOrStdoutEmptyPathFallsBack(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "  ")
	assert.NotNil(t, w)
	assert.NoError(t, w.Close())
}

func TestWriterCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
