package outwriter

import (
	"os"

	"github.com/huangsam/archsurvey/internal/contract"
	"golang.org/x/term"
)

// Bounds for free-text columns such as question text.
const (
	minTextWidth = 20
	maxTextWidth = 90
)

// getMaxTextWidth calculates the maximum width for free-text columns in table output
// based on terminal width and the columns enabled by the config.
func getMaxTextWidth(cfg *contract.Config) int {
	termWidth := cfg.Width

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// ID + Category + Value + Weight columns with borders/padding
	baseWidth := 45
	if cfg.Detail {
		baseWidth += 20
	}

	available := termWidth - baseWidth
	if available < minTextWidth {
		return minTextWidth
	}
	if available > maxTextWidth {
		return maxTextWidth
	}
	return available
}
