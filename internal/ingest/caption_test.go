package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaption(t *testing.T) {
	c, err := ParseCaption("9|PYQ|Maths|Chapter 1|Algebra PYQ 2024|yes")
	require.NoError(t, err)

	assert.Equal(t, "9", c.Grade)
	assert.Equal(t, "PYQ", c.Category)
	assert.Equal(t, "Maths", c.Subject)
	assert.Equal(t, "Chapter 1", c.Chapter)
	assert.Equal(t, "Algebra PYQ 2024", c.Title)
	assert.True(t, c.Premium)
}

func TestParseCaptionTrimsFields(t *testing.T) {
	c, err := ParseCaption(" 10 | Short Notes | Physics | Chapter 2 | Motion | 0 ")
	require.NoError(t, err)

	assert.Equal(t, "10", c.Grade)
	assert.Equal(t, "Short Notes", c.Category)
	assert.False(t, c.Premium)
}

func TestParseCaptionWrongArity(t *testing.T) {
	for _, caption := range []string{
		"",
		"9",
		"9|PYQ|Maths|Chapter 1|Algebra",
		"9|PYQ|Maths|Chapter 1|Algebra|yes|extra",
		"9|PYQ|Maths|Chapter|1|Algebra|yes",
	} {
		c, err := ParseCaption(caption)
		assert.ErrorIs(t, err, ErrMalformedCaption, "caption %q", caption)
		assert.Nil(t, c)
	}
}

func TestTruthy(t *testing.T) {
	for _, s := range []string{"1", "true", "yes", "y", "YES", "True", "Y", " y "} {
		assert.True(t, Truthy(s), "%q", s)
	}
	for _, s := range []string{"0", "false", "no", "n", "maybe", "", "2", "premium"} {
		assert.False(t, Truthy(s), "%q", s)
	}
}
