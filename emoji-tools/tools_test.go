package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/emojify/seqtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	text, err := readAll("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", text)
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))
	text, err = readAll(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", text)
	_, err = readAll(filepath.Join(t.TempDir(), "none.txt"), nil)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, ok := parseKind("zwj")
	assert.True(t, ok)
	assert.Equal(t, seqtab.ZWJSequence, k)
	k, ok = parseKind("Keycap")
	assert.True(t, ok)
	assert.Equal(t, seqtab.KeycapSeq, k)
	_, ok = parseKind("-")
	assert.False(t, ok)
}

func TestNameMatches(t *testing.T) {
	name := "woman police officer: medium-light skin tone"
	assert.True(t, nameMatches(name, nil))
	assert.True(t, nameMatches(name, splitCSVSpace("police, woman")))
	assert.False(t, nameMatches(name, []string{"fairy"}))
}
