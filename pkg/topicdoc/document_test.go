package topicdoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{"title":"T","sections":[{"name":"S","topics":["a","b"]}]}`

func TestParseFencedReply(t *testing.T) {
	raw := "Here you go:\n```json\n" + sample + "\n```\nGood luck!"

	doc, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []string{"a", "b"}, doc.Sections[0].Topics)
	assert.Equal(t, 2, doc.TopicCount())
	assert.JSONEq(t, sample, doc.JSON())
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"no object":         "I cannot help with that.",
		"broken json":       `{"title": "T", "sections": [}`,
		"missing title":     `{"sections":[{"name":"S","topics":["a"]}]}`,
		"blank title":       `{"title":"  ","sections":[{"name":"S","topics":["a"]}]}`,
		"no sections":       `{"title":"T","sections":[]}`,
		"section no name":   `{"title":"T","sections":[{"topics":["a"]}]}`,
		"section no topics": `{"title":"T","sections":[{"name":"S","topics":[]}]}`,
		"empty topic":       `{"title":"T","sections":[{"name":"S","topics":["a",""]}]}`,
		"wrong type":        `{"title":"T","sections":[{"name":"S","topics":"a"}]}`,
		"reversed braces":   `} nothing {`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseRaw(t *testing.T) {
	quoted, err := json.Marshal(sample)
	require.NoError(t, err)

	doc, err := ParseRaw(quoted)
	require.NoError(t, err)
	assert.Equal(t, "T", doc.Title)

	doc, err = ParseRaw(json.RawMessage(sample))
	require.NoError(t, err)
	assert.Equal(t, "S", doc.Sections[0].Name)

	_, err = ParseRaw(json.RawMessage(`"not json"`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseRaw(json.RawMessage(`42`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := Decode([]byte(sample + ` {"x":1}`))
	assert.ErrorIs(t, err, ErrMalformed)
}
