package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "Morning Pages Challenge", CleanTitle("  morning   pages challenge "))
	assert.Equal(t, "Build A Reading Habit", CleanTitle("build a READING habit"))
	assert.Equal(t, "", CleanTitle("   "))
	assert.Equal(t, "", CleanTitle(""))
}
