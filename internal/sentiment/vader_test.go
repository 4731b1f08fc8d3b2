package sentiment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVADERClassifyPositive(t *testing.T) {
	c := NewVADERClassifier()

	prediction, err := c.Classify(context.Background(), "This is excellent!")

	require.NoError(t, err)
	assert.Equal(t, "positive", prediction.Label)
	assert.Greater(t, prediction.Confidence, 0.5)
	assert.LessOrEqual(t, prediction.Confidence, 1.0)
}

func TestVADERClassifyNegative(t *testing.T) {
	c := NewVADERClassifier()

	prediction, err := c.Classify(context.Background(), "I hate this.")

	require.NoError(t, err)
	assert.Equal(t, "negative", prediction.Label)
	assert.Greater(t, prediction.Confidence, 0.0)
}

func TestVADERClassifyNeutral(t *testing.T) {
	c := NewVADERClassifier()

	prediction, err := c.Classify(context.Background(), "The meeting is at noon.")

	require.NoError(t, err)
	assert.Equal(t, "neutral", prediction.Label)
}

func TestVADERClassifyDeterministic(t *testing.T) {
	c := NewVADERClassifier()

	first, err := c.Classify(context.Background(), "This is excellent!")
	require.NoError(t, err)
	second, err := c.Classify(context.Background(), "This is excellent!")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVADERClassifyOversizedInput(t *testing.T) {
	c := NewVADERClassifier()
	long := "This is excellent! " + strings.Repeat("filler words here ", 200)

	prediction, err := c.Classify(context.Background(), long)

	require.NoError(t, err)
	assert.NotEmpty(t, prediction.Label)
	assert.GreaterOrEqual(t, prediction.Confidence, 0.0)
	assert.LessOrEqual(t, prediction.Confidence, 1.0)
}

func TestVADERClassifyCancelledContext(t *testing.T) {
	c := NewVADERClassifier()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Classify(ctx, "anything")

	assert.Error(t, err)
}

func TestConvertMarkdownToText(t *testing.T) {
	input := "# Heading\n\nSome **bold** text with a [link](https://example.com/page)."
	output := ConvertMarkdownToText(input)

	assert.NotContains(t, output, "#")
	assert.NotContains(t, output, "**")
	assert.NotContains(t, output, "https://")
	assert.Contains(t, output, "bold")
	assert.Contains(t, output, "link")
}

func TestRemoveLinks(t *testing.T) {
	input := "see [docs](https://example.com/docs) and www.example.com/more"
	output := RemoveLinks(input)

	assert.Contains(t, output, "docs")
	assert.NotContains(t, output, "https://")
	assert.NotContains(t, output, "www.example.com")
}
