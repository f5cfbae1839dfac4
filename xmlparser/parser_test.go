package xmlparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langconv/database"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected database.TableSchema
	}{
		{
			name:  "single column",
			input: `<sql_script><tableview_name>Customer</tableview_name><native_datatype_element>NUMBER</native_datatype_element><column_name>Id</column_name></sql_script>`,
			expected: database.TableSchema{
				Name:    "Customer",
				Columns: []database.Column{{NativeType: "NUMBER", Name: "Id"}},
			},
		},
		{
			name: "nested parse tree keeps document order",
			input: `<?xml version="1.0"?>
<sql_script>
  <create_table>
    <tableview_name>
      <id_expression>Orders</id_expression>
    </tableview_name>
    <column_definition>
      <column_name>Id</column_name>
      <datatype><native_datatype_element>NUMBER</native_datatype_element></datatype>
    </column_definition>
    <column_definition>
      <column_name>Title</column_name>
      <datatype><native_datatype_element>TEXT</native_datatype_element></datatype>
    </column_definition>
  </create_table>
</sql_script>`,
			expected: database.TableSchema{
				Name: "Orders",
				Columns: []database.Column{
					{NativeType: "NUMBER", Name: "Id"},
					{NativeType: "TEXT", Name: "Title"},
				},
			},
		},
		{
			name:  "extra datatype is dropped",
			input: `<sql_script><tableview_name>T</tableview_name><native_datatype_element>NUMBER</native_datatype_element><native_datatype_element>BIT</native_datatype_element><column_name>Id</column_name></sql_script>`,
			expected: database.TableSchema{
				Name:    "T",
				Columns: []database.Column{{NativeType: "NUMBER", Name: "Id"}},
			},
		},
		{
			name:  "first table name wins",
			input: `<sql_script><tableview_name>First</tableview_name><tableview_name>Second</tableview_name></sql_script>`,
			expected: database.TableSchema{
				Name: "First",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, schema)
		})
	}
}

func TestDecode_MissingElements(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		element string
	}{
		{
			name:    "empty document",
			input:   "",
			element: "sql_script",
		},
		{
			name:    "wrong root",
			input:   `<script><tableview_name>T</tableview_name></script>`,
			element: "sql_script",
		},
		{
			name:    "no table name",
			input:   `<sql_script><column_name>Id</column_name></sql_script>`,
			element: "tableview_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMissingElement)

			var missing *MissingElementError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.element, missing.Element)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`<sql_script><tableview_name>T</sql_script>`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingElement)
}

func TestParseDataClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_class.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<sql_script><tableview_name>Customer</tableview_name></sql_script>`), 0o644))

	schema, err := ParseDataClass(path)
	require.NoError(t, err)
	assert.Equal(t, "Customer", schema.Name)
	assert.Empty(t, schema.Columns)
}

func TestParseDataClass_MissingFile(t *testing.T) {
	_, err := ParseDataClass(filepath.Join(t.TempDir(), "data_class.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
