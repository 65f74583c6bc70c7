package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbcevik/CSV-to-Dataverse-JSON-citation/internal/diagnostic"
)

func TestParseOverlay(t *testing.T) {
	yaml := `
fields:
  - name: keyword
    multiple: true
    typeClass: compound
    subfields: [keywordValue, keywordTermURI]
  - name: projectCode
    typeClass: primitive
  - name: studyDesign
    multiple: true
    typeClass: vocabulary
  - name: funding
    multiple: true
    typeClass: compound
    subfields: "fundingAgency; fundingValue"
`

	o, err := ParseOverlay([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", o.Version)
	require.Len(t, o.Fields, 4)

	assert.Equal(t, TypeClassCompound, o.Fields[0].TypeClass)
	assert.Equal(t, StringArray{"keywordValue", "keywordTermURI"}, o.Fields[0].Subfields)
	assert.Equal(t, TypeClassVocabulary, o.Fields[2].TypeClass)
	assert.Equal(t, StringArray{"fundingAgency", "fundingValue"}, o.Fields[3].Subfields)
}

func TestApplyOverlay(t *testing.T) {
	o, err := ParseOverlay([]byte(`
fields:
  - name: keyword
    multiple: true
    typeClass: compound
    subfields: [keywordValue, keywordTermURI]
  - name: projectCode
    typeClass: primitive
`))
	require.NoError(t, err)

	base := Default()
	merged, err := base.Apply(o)
	require.NoError(t, err)

	assert.Equal(t, []string{"keywordValue", "keywordTermURI"}, merged.Subfields("keyword"))
	assert.Equal(t, []string{"keywordValue", "keywordVocabulary", "keywordVocabularyURI"}, base.Subfields("keyword"),
		"base registry must not change")

	d, ok := merged.Lookup("projectCode")
	require.True(t, ok)
	assert.Equal(t, Single, d.Cardinality)
	assert.False(t, base.Has("projectCode"))

	names := merged.Names()
	assert.Equal(t, "projectCode", names[len(names)-1])
	assert.Equal(t, base.Len()+1, merged.Len())
}

func TestValidateOverlay(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		errCode  string
		warnCode string
	}{
		{
			name:    "missing name",
			yaml:    "fields:\n  - typeClass: primitive\n",
			errCode: diagnostic.CodeFieldNameEmpty,
		},
		{
			name:    "bad type class",
			yaml:    "fields:\n  - name: x\n    typeClass: blob\n",
			errCode: diagnostic.CodeTypeClassInvalid,
		},
		{
			name:    "duplicate",
			yaml:    "fields:\n  - name: x\n    typeClass: primitive\n  - name: x\n    typeClass: primitive\n",
			errCode: diagnostic.CodeDuplicateDef,
		},
		{
			name:     "compound without subfields",
			yaml:     "fields:\n  - name: x\n    typeClass: compound\n",
			warnCode: diagnostic.CodeNoSubfields,
		},
		{
			name:     "primitive with subfields",
			yaml:     "fields:\n  - name: x\n    typeClass: primitive\n    subfields: [a]\n",
			warnCode: diagnostic.CodeSubfieldsIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := ParseOverlay([]byte(tt.yaml))
			require.NoError(t, err)

			res := ValidateOverlay(o)
			if tt.errCode != "" {
				require.True(t, res.HasErrors())
				assert.Equal(t, tt.errCode, res.Errors[0].Code)

				_, err := Default().Apply(o)
				require.Error(t, err)
			}

			if tt.warnCode != "" {
				assert.False(t, res.HasErrors())
				require.NotEmpty(t, res.Warnings)
				assert.Equal(t, tt.warnCode, res.Warnings[0].Code)
			}
		})
	}
}

func TestLoadOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n  - name: x\n    typeClass: primitive\n"), 0o644))

	o, err := LoadOverlayFile(path)
	require.NoError(t, err)
	require.Len(t, o.Fields, 1)

	_, err = LoadOverlayFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = ParseOverlay([]byte("fields: [unclosed"))
	require.Error(t, err)
}
