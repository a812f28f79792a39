package ai

import (
	"fmt"
	"strings"

	"cardstudio/internal/domain"
)

func messagePrompt(name string, occasion domain.Occasion) string {
	switch occasion {
	case domain.OccasionBoth:
		return fmt.Sprintf("Write a warm, personal 2-line message for %s who is celebrating both their birthday and work anniversary today. Make it inspiring and mention both occasions. Keep each line short and impactful. Don't use emojis.", name)
	case domain.OccasionAnniversary:
		return fmt.Sprintf("Write a warm, personal 2-line work anniversary message for %s. Make it professional yet warm, mentioning their contributions and growth. Keep each line short and impactful. Don't use emojis.", name)
	default:
		return fmt.Sprintf("Write a warm, personal 2-line birthday message for %s. Make it inspiring and uplifting, mentioning having a great year ahead. Keep each line short and impactful. Don't use emojis.", name)
	}
}

// FallbackMessage is the fixed two-line message used whenever the AI path is
// unavailable or fails.
func FallbackMessage(name string, occasion domain.Occasion) string {
	switch occasion {
	case domain.OccasionBoth:
		return fmt.Sprintf("Happy birthday and work anniversary, %s!\nWhat a special day to celebrate both occasions!", name)
	case domain.OccasionAnniversary:
		return fmt.Sprintf("Happy work anniversary, %s!\nThank you for your dedication and contributions!", name)
	default:
		return fmt.Sprintf("Happy birthday, %s!\nWishing you a wonderful year ahead!", name)
	}
}

// truncateTwoLines keeps the first two non-blank lines of a provider
// response, rejoined with a single line break. An all-blank response yields
// the empty string, which callers replace with the fixed fallback.
func truncateTwoLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 2 {
			break
		}
	}
	return strings.Join(kept, "\n")
}
