package deepseek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoryPrompt(t *testing.T) {
	prompt, err := GetStoryPrompt("Alice", "Hongyadong", "romance")
	require.NoError(t, err)

	for _, want := range []string{"Alice", "Hongyadong", "romance", "Chongqing", "中文故事："} {
		assert.Contains(t, prompt, want)
	}
	assert.NotContains(t, prompt, "{{")
}

func TestGetStoryPrompt_NoEscaping(t *testing.T) {
	prompt, err := GetStoryPrompt("Tom & Jerry", "<Ciqikou>", "sci-fi")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Tom & Jerry")
	assert.Contains(t, prompt, "<Ciqikou>")
}

func TestGetSystemPrompt(t *testing.T) {
	prompt := GetSystemPrompt()

	assert.Contains(t, prompt, "Chongqing")
	assert.Contains(t, prompt, "both Chinese and English")
	assert.Contains(t, prompt, "'English translation:'")
}
