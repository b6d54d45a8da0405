package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormicadei/sessionbind/pkg/domain"
)

func TestParseSchema(t *testing.T) {
	doc := []byte(`
class: profile
fields:
  - name: name
    type: string
    default: anonymous
  - name: counter
    type: int
    default: 0
  - name: tags
    type: "[string]"
  - name: blob
`)

	s, err := domain.ParseSchema(doc)
	require.NoError(t, err)

	assert.Equal(t, "profile", s.Class())
	assert.Equal(t, []string{"name", "counter", "tags", "blob"}, s.FieldNames())

	name, _ := s.Field("name")
	assert.Equal(t, "anonymous", name.Default)

	counter, _ := s.Field("counter")
	assert.Equal(t, 0, counter.Default)
	assert.NoError(t, counter.Type.Validate(3))
	assert.Error(t, counter.Type.Validate("x"))

	blob, _ := s.Field("blob")
	assert.Nil(t, blob.Type, "omitted type means no validation")
	assert.Nil(t, blob.Default)
}

func TestParseSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("class: profile\nfields:\n  - name: counter\n    type: int\n"), 0o644))

	s, err := domain.ParseSchemaFile(path)
	require.NoError(t, err)
	assert.Equal(t, "profile", s.Class())

	_, err = domain.ParseSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSchema_Errors(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := domain.ParseSchema([]byte("class: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := domain.ParseSchema([]byte(`
class: p
fields:
  - name: x
    type: complex128
`))
		assert.Error(t, err)
	})

	t.Run("missing class", func(t *testing.T) {
		_, err := domain.ParseSchema([]byte(`
fields:
  - name: x
`))
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("default violating type", func(t *testing.T) {
		_, err := domain.ParseSchema([]byte(`
class: p
fields:
  - name: counter
    type: int
    default: zero
`))
		assert.Error(t, err)
	})
}
