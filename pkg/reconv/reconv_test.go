package reconv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/recokit/reconv/pkg/reconv"
)

const sampleDoc = `{"items":[
	{"guid":"abc-123","text":"Enable X","severity":"High","service":"VM","category":"Reliability","id":"R001"},
	{"guid":"def-456","text":"Enable Y","severity":"Low","waf":"Security"}
]}`

func TestConvertAndStore(t *testing.T) {
	records, err := reconv.Convert([]byte(sampleDoc), "checklist.json",
		reconv.WithDictionary(reconv.Dictionary{
			{Names: []string{"VM"}, Service: "Virtual Machines", ARM: "Microsoft.Compute/virtualMachines"},
		}),
		reconv.WithExtraLabels(map[string]string{"checklist": "sample"}),
	)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Service)
	assert.Equal(t, "Virtual Machines", *records[0].Service)
	assert.Equal(t, "sample", records[0].Labels["checklist"])

	root := t.TempDir()
	sum, err := reconv.Store(records, root)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Written)

	assert.FileExists(t, filepath.Join(root, "VirtualMachines", "abc-123.yaml"))
	assert.FileExists(t, filepath.Join(root, "cross-service", "Security", "def-456.yaml"))
}

func TestStoreRerunConflicts(t *testing.T) {
	records, err := reconv.Convert([]byte(sampleDoc), "checklist.json")
	require.NoError(t, err)

	root := t.TempDir()
	_, err = reconv.Store(records, root)
	require.NoError(t, err)

	sum, err := reconv.Store(records, root)
	require.NoError(t, err)
	assert.Zero(t, sum.Written)
	assert.Len(t, sum.Conflicts, 2)

	sum, err = reconv.Store(records, root, reconv.WithOverwrite(true))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Written)
}

func TestStoreJSONFormat(t *testing.T) {
	records, err := reconv.Convert([]byte(sampleDoc), "checklist.json")
	require.NoError(t, err)

	root := t.TempDir()
	_, err = reconv.Store(records, root, reconv.WithFormat("json"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "VM", "abc-123.json"))
}

func TestStoreBadFormat(t *testing.T) {
	_, err := reconv.Store(nil, t.TempDir(), reconv.WithFormat("toml"))
	assert.Error(t, err)
}

func TestConvertFileMultilineDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.json")
	doc := `{"items":[{"guid":"g1","text":"T","description":"line one  \nline two"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	records, err := reconv.ConvertFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	root := t.TempDir()
	_, err = reconv.Store(records, root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "cross-service", "g1.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "description: |")

	var m map[string]any
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, "line one\nline two", m["description"])
}
