package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/TNTwise/SkullKingComeptition/internal/sim"
)

var (
	clrBorder = lipgloss.Color("#30363d")
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrWhite  = lipgloss.Color("#e6edf3")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

func box(content string, borderClr lipgloss.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderClr).
		Padding(0, 2).
		Render(content)
}

// renderSummary formats the batch results as a ranked standings table.
func renderSummary(s sim.Summary) string {
	var sb strings.Builder

	sb.WriteString(bold(clrGold).Render("☠ SKULL KING — BATCH RESULTS") + "\n")
	sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf(
		"%d games · %d players · seed %d · %s",
		s.Games, s.Players, s.Seed, s.Elapsed.Round(time.Millisecond))) + "\n\n")

	sb.WriteString(bold(clrWhite).Render(fmt.Sprintf(
		"%-4s %-18s %4s %6s %7s %9s %9s",
		"", "Bot", "Seat", "Wins", "Win%", "Total", "Mean")) + "\n")
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", 62)) + "\n")

	for rank, b := range s.Ranked() {
		marker := fmt.Sprintf("%d.", rank+1)
		nameStyle := fg(clrWhite)
		if rank == 0 {
			marker = "♛ " + marker
			nameStyle = bold(clrGold)
		}

		winPct := 100 * float64(b.Wins) / float64(s.Games)
		scoreClr := clrGreen
		if b.TotalScore < 0 {
			scoreClr = clrRed
		}

		sb.WriteString(fmt.Sprintf("%-4s %s %4d %6d %6.1f%% %s %s\n",
			marker,
			nameStyle.Render(fmt.Sprintf("%-18s", b.Name)),
			b.Seat,
			b.Wins,
			winPct,
			fg(scoreClr).Render(fmt.Sprintf("%9d", b.TotalScore)),
			fg(clrSubtle).Render(fmt.Sprintf("%9.1f", b.MeanScore))))
	}

	return box(sb.String(), clrBorder)
}
