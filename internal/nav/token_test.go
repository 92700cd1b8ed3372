package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	actions := []Action{
		Home{},
		Class{Grade: "9"},
		Category{Grade: "9", Category: "PYQ"},
		Subject{Grade: "9", Category: "PYQ", Subject: "Maths"},
		Chapter{Grade: "9", Category: "PYQ", Subject: "Maths", Chapter: "Chapter 1"},
		Page{Grade: "11", Category: "Test Series", Subject: "Physics", Chapter: "Chapter 2", Index: 3},
		SendRange{Grade: "12", Category: "Sample Papers", Subject: "Chemistry", Chapter: "Chapter 5", Start: 8, Count: 8},
		Buy{},
		Redeem{},
		Plan{Key: "3m"},
	}
	for _, want := range actions {
		got, err := Decode(want.Encode())
		require.NoError(t, err, "token %q", want.Encode())
		assert.Equal(t, want, got)
	}
}

func TestDecodeWireFormat(t *testing.T) {
	got, err := Decode("page|9|PYQ|Maths|Chapter 1|2")
	require.NoError(t, err)
	assert.Equal(t, Page{Grade: "9", Category: "PYQ", Subject: "Maths", Chapter: "Chapter 1", Index: 2}, got)

	got, err = Decode("sendrange|9|PYQ|Maths|Chapter 1|0|8")
	require.NoError(t, err)
	assert.Equal(t, SendRange{Grade: "9", Category: "PYQ", Subject: "Maths", Chapter: "Chapter 1", Start: 0, Count: 8}, got)
}

func TestDecodeRejectsBadTokens(t *testing.T) {
	for _, data := range []string{
		"",
		"nope",
		"class",
		"class|9|extra",
		"cat|9",
		"page|9|PYQ|Maths|Chapter 1|two",
		"sendrange|9|PYQ|Maths|Chapter 1|0",
		"sendrange|9|PYQ|Maths|Chapter 1|x|8",
		"buy|1m",
	} {
		_, err := Decode(data)
		assert.Error(t, err, "token %q", data)
	}
}
