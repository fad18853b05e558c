package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAthleteID(t *testing.T) {
	for _, id := range []string{"123", "i123", "i1", "9999999"} {
		assert.True(t, ValidAthleteID(id), id)
	}
	for _, id := range []string{"", "i", "abc", "i12a", "12 3", "-5", "i-5"} {
		assert.False(t, ValidAthleteID(id), id)
	}
}

func TestResolveAthleteID(t *testing.T) {
	id, errMsg := ResolveAthleteID("i123", "i999")
	assert.Equal(t, "i123", id)
	assert.Empty(t, errMsg)

	id, errMsg = ResolveAthleteID("", "i999")
	assert.Equal(t, "i999", id)
	assert.Empty(t, errMsg)

	id, errMsg = ResolveAthleteID("", "")
	assert.Empty(t, id)
	assert.True(t, strings.HasPrefix(errMsg, "Error: No athlete ID provided"))

	id, errMsg = ResolveAthleteID("bogus", "")
	assert.Empty(t, id)
	assert.Contains(t, errMsg, "Invalid athlete ID")
}
