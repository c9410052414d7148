package tool

import (
	"context"
	"fmt"
	"strings"
)

// TextRatingToolName is the registry key of the text rating tool.
const TextRatingToolName = "text_rating"

// maxRating caps the score; one point per ten words.
const maxRating = 10

// Rate scores text by length: floor(words/10), capped at 10.
func Rate(text string) (rating, words int) {
	words = len(strings.Fields(text))
	return min(words/10, maxRating), words
}

// NewTextRatingTool returns a tool scoring its input by word count.
func NewTextRatingTool() Tool {
	return NewFunctionTool(TextRatingToolName, "Rate a text from 0 to 10 based on its word count.", func(_ context.Context, input string) (string, error) {
		rating, words := Rate(input)
		return fmt.Sprintf("Rating: %d/%d (based on %d words)", rating, maxRating, words), nil
	}, "rate this", "rating")
}
