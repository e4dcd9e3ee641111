package pipeline

import (
	"fmt"
	"strings"

	"cinemood/internal/catalog"
)

// FormatMovie renders a single recommendation for display.
func FormatMovie(m catalog.Movie) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s) - Rating: %s/10\n", m.Title, m.Year, m.Rating)
	fmt.Fprintf(&b, "  Genre: %s\n", m.Genre)
	fmt.Fprintf(&b, "  Plot: %s\n", m.Plot)
	fmt.Fprintf(&b, "  IMDb: %s", m.Link)

	return b.String()
}

// FormatDetection renders the emotion analysis line for a batch.
func FormatDetection(b *Batch) string {
	return fmt.Sprintf("Detected emotion: %s (confidence: %.2f - %s)",
		b.Detection.Emotion, b.Detection.Confidence, b.Detection.Tier)
}
