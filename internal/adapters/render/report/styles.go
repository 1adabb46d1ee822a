package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	heading    lipgloss.Style
	card       lipgloss.Style
	cardLabel  lipgloss.Style
	cardValue  lipgloss.Style
	positive   lipgloss.Style
	negative   lipgloss.Style
	advice     lipgloss.Style
	empty      lipgloss.Style
	seriesKey  lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	barText    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		cardLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		cardValue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		positive:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		negative:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		advice:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		empty:      lipgloss.NewStyle().Faint(true),
		seriesKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barText:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
