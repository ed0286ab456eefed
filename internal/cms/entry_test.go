package cms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestEntryFrom_FlatAndWrappedAreEquivalent(t *testing.T) {
	flat := decode(t, `{"data": {"id": 7, "title": "  Annual Report ", "year": 2024}}`)
	wrapped := decode(t, `{"data": {"id": 7, "attributes": {"title": "  Annual Report ", "year": 2024}}}`)
	bare := decode(t, `{"id": 7, "title": "  Annual Report ", "year": 2024}`)

	for _, raw := range []any{flat, wrapped, bare} {
		e, ok := EntryFrom(raw)
		require.True(t, ok)
		assert.Equal(t, int64(7), e.Int("id"))
		assert.Equal(t, "Annual Report", e.String("title"))
		assert.Equal(t, int64(2024), e.Int("year"))
	}
}

func TestEntryFrom_NullData(t *testing.T) {
	_, ok := EntryFrom(decode(t, `{"data": null}`))
	assert.False(t, ok)

	_, ok = EntryFrom(nil)
	assert.False(t, ok)
}

func TestEntriesFrom_Collection(t *testing.T) {
	wrapped := decode(t, `{"data": [
		{"id": 1, "attributes": {"name": "one"}},
		{"id": 2, "attributes": {"name": "two"}}
	]}`)

	entries, ok := EntriesFrom(wrapped)
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].String("name"))
	assert.Equal(t, int64(2), entries[1].Int("id"))
}

func TestEntriesFrom_EmptyVsAbsent(t *testing.T) {
	entries, ok := EntriesFrom(decode(t, `{"data": []}`))
	require.True(t, ok, "present-but-empty collection must report ok")
	require.NotNil(t, entries)
	assert.Empty(t, entries)

	_, ok = EntriesFrom(decode(t, `{"data": null}`))
	assert.False(t, ok, "null collection must report not ok")
}

func TestEntriesFrom_SingleEntity(t *testing.T) {
	entries, ok := EntriesFrom(decode(t, `{"data": {"id": 5, "attributes": {"name": "solo"}}}`))
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "solo", entries[0].String("name"))
}

func TestEntry_NestedDescent(t *testing.T) {
	raw := decode(t, `{"data": {"attributes": {
		"image": {"data": {"attributes": {"url": "/uploads/a.png"}}},
		"tags": {"data": [{"attributes": {"name": "x"}}, {"attributes": {"name": "y"}}]}
	}}}`)

	e, ok := EntryFrom(raw)
	require.True(t, ok)

	image, ok := e.Entry("image")
	require.True(t, ok)
	assert.Equal(t, "/uploads/a.png", image.String("url"))

	tags, ok := e.Entries("tags")
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, "y", tags[1].String("name"))
}

func TestEntry_MissingFieldsNeverPanic(t *testing.T) {
	e, ok := EntryFrom(decode(t, `{"title": "only"}`))
	require.True(t, ok)

	assert.Equal(t, "", e.String("missing"))
	assert.Equal(t, int64(0), e.Int("missing"))
	assert.Equal(t, float64(0), e.Float("missing"))
	assert.False(t, e.Bool("missing"))
	assert.False(t, e.Has("missing"))

	_, nestedOK := e.Entry("missing")
	assert.False(t, nestedOK)
	_, listOK := e.Entries("missing")
	assert.False(t, listOK)

	assert.Equal(t, "fallback", e.StringOr("missing", "fallback"))
}

func TestEntry_Strings(t *testing.T) {
	e, ok := EntryFrom(decode(t, `{"keywords": [" power ", "", "grid", 42]}`))
	require.True(t, ok)
	assert.Equal(t, []string{"power", "grid"}, e.Strings("keywords"))
}
