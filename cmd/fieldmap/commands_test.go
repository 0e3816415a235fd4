package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectNames(t *testing.T) {
	names, format, err := collectNames(nil, []string{"a", "b"}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, "csv", format)

	_, _, err = collectNames(nil, nil, 1)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "kupci.csv")
	require.NoError(t, os.WriteFile(path, []byte("Naziv kupca;EMBS\nACME;123\n"), 0o600))
	names, format, err = collectNames([]string{path}, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Naziv kupca", "EMBS"}, names)
	assert.Equal(t, "csv", format)
}

func TestMapCommandJSON(t *testing.T) {
	cmd := mapCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--fields", "kolicina,xyz123", "-o", "json"})
	require.NoError(t, cmd.Execute())

	var doc struct {
		Statistics struct {
			TotalFields  int `json:"total_fields"`
			MappedFields int `json:"mapped_fields"`
		} `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 2, doc.Statistics.TotalFields)
	assert.Equal(t, 1, doc.Statistics.MappedFields)
}

func TestMapCommandUnknownOutput(t *testing.T) {
	cmd := mapCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--fields", "kolicina", "-o", "yaml"})
	assert.Error(t, cmd.Execute())
}
