package rom

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdswan/rom/att"
)

const suppliersYAML = `- SNO: 1
  SName: Smith
  Status: 20
  City: London
- SNO: 2
  SName: Jones
  Status: 10
  City: Paris
`

func TestReadYAML(t *testing.T) {
	d, err := ReadYAML(strings.NewReader(suppliersYAML))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.True(t, d.At(0).Equal(suppliers().At(0)))
	assert.Equal(t, []att.Attribute{"SNO", "SName", "Status", "City"}, d.At(1).Names())

	d, err = ReadYAML(strings.NewReader(`[{"id": 1, "note": null}, {"id": 2}]`))
	require.NoError(t, err)
	assert.True(t, d.Equal(New([]att.Tuple{row("id", 1, "note", nil), row("id", 2)})))

	d, err = ReadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())

	_, err = ReadYAML(strings.NewReader("id: 1"))
	assert.Error(t, err)
}

func TestWriteYAML(t *testing.T) {
	d, err := ReadYAML(strings.NewReader(suppliersYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.WriteYAML(&buf))
	assert.Equal(t, suppliersYAML, buf.String())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppliers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(suppliersYAML), 0o600))

	d, err := LoadFile(path, WithJoinWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, d.Options().JoinWorkers)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal(New([]att.Tuple{row("b", 1, "a", "x"), row("c", nil)}))
	require.NoError(t, err)
	assert.Equal(t, `[{"b":1,"a":"x"},{"c":null}]`, string(b))

	b, err = json.Marshal(New(nil))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}
