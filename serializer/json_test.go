package serializer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langconv/parser"
)

func TestMarshal_Keys(t *testing.T) {
	record := parser.Extract(`public class Foo : Bar
{
    public const string Kind = "x";
    public int Count;
    public string Name { get; set; }
    public Foo(int count)
    public void Reset(bool hard)
}`, "Foo")

	data, err := Marshal(record, false)
	require.NoError(t, err)

	expected := `{
  "ClassName": "Foo",
  "Fields": [{"AccessModifier": "public", "Type": "int", "Name": "Count"}],
  "Properties": [{"AccessModifier": "public", "Type": "string", "Name": "Name"}],
  "Constants": [{"AccessModifier": "public", "Type": "string", "Name": "Kind", "Value": "x"}],
  "Methods": [{
    "AccessModifier": "public",
    "ReturnType": "void",
    "Name": "Reset",
    "Parameters": [{"Type": "bool", "Name": "hard"}]
  }],
  "ConstructorInfos": [{"Parameters": [{"Type": "int", "Name": "count"}]}],
  "Parents": ["Bar"]
}`
	assert.JSONEq(t, expected, string(data))
}

func TestMarshal_EmptyListsAreArrays(t *testing.T) {
	data, err := Marshal(parser.Extract("public class Foo\n{\npublic int Bar;\n}", "Foo"), false)
	require.NoError(t, err)

	assert.JSONEq(t, `{
  "ClassName": "Foo",
  "Fields": [{"AccessModifier": "public", "Type": "int", "Name": "Bar"}],
  "Properties": [],
  "Constants": [],
  "Methods": [],
  "ConstructorInfos": [],
  "Parents": [""]
}`, string(data))
}

func TestMarshal_Indent(t *testing.T) {
	record := parser.ClassRecord{ClassName: "Foo"}

	compact, err := Marshal(record, false)
	require.NoError(t, err)
	indented, err := Marshal(record, true)
	require.NoError(t, err)

	assert.NotContains(t, string(compact), "\n")
	assert.Contains(t, string(indented), "\n  \"ClassName\": \"Foo\"")
	assert.JSONEq(t, string(compact), string(indented))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	record := parser.Extract("public class Foo\n{\npublic int Bar;\n}", "Foo")

	outFile, err := WriteFile(dir, record, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Foo.json"), outFile)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var decoded parser.ClassRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "Foo.json")
	require.NoError(t, os.WriteFile(outFile, []byte("stale content that is longer than the record"), 0o644))

	_, err := WriteFile(dir, parser.ClassRecord{ClassName: "Foo"}, false)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
