package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/despectus/despectus/app"
)

// ComputeLeftPanelWidth returns a stable left column width based on the
// terminal width with sensible clamping and ensuring room for the right side.
//
// Rules:
// - Target ~45% of terminal width
// - Clamp to [minLeft, maxLeft]
// - Reserve a single-space gap and at least rightMin for the right panel
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 44
		minLeft     = 32
		maxLeft     = 60
		gap         = 1
		rightMin    = 32
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := (termWidth * 9) / 20 // ~45%
	if left < minLeft {
		left = minLeft
	}
	if left > maxLeft {
		left = maxLeft
	}
	if left+gap+rightMin > termWidth {
		left = termWidth - gap - rightMin
	}
	if left < 20 { // last-ditch lower bound for very small terminals
		left = 20
	}
	return left
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left, gap int) int {
	w := termWidth - left - gap
	if w < 0 {
		w = 0
	}
	return w
}

// AccountHeader renders the gray top line with the connected account, or a
// placeholder until a refresh has resolved the Riot ID.
func AccountHeader(riotID string) string {
	if riotID == "" {
		riotID = "not connected"
	}
	return app.PathStyle.Render("⚔ " + riotID)
}

// Place bottom-aligns content in the full terminal area when dimensions are
// known, matching how every screen anchors its layout.
func Place(termWidth, termHeight int, content string) string {
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Left, lipgloss.Bottom, content)
	}
	return content
}
