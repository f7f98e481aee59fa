package summarizer

import (
	"fmt"
	"strings"

	"github.com/vidbrief/backend/internal/pipeline/domain"
)

// BuildPrompt assembles the summarization instruction from the caller's
// config. Length and style are embedded directly; focus areas, when
// present, become an explicit directive appended after the transcript.
func BuildPrompt(transcript string, cfg domain.SummaryConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Summarize the following transcript in a %s %s format:\n\n%s\n\n",
		cfg.Length, cfg.Style, transcript)

	if len(cfg.FocusAreas) > 0 {
		fmt.Fprintf(&b, "Focus on the following areas: %s.", strings.Join(cfg.FocusAreas, ", "))
	}

	return b.String()
}
