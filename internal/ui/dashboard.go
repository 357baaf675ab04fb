// Package ui provides the terminal report dashboard using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BobbyKostko/Astron1221-project2/internal/lunar"
	"github.com/BobbyKostko/Astron1221-project2/internal/report"
	"github.com/BobbyKostko/Astron1221-project2/internal/version"
)

// WindowDays is how many days the report view shows at once.
const WindowDays = 30

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	metricStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	eclipseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	supermoonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	sparkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// Model is the 30-day lunar report dashboard.
type Model struct {
	records []lunar.DayRecord
	offset  int // Index of the first visible record
	cursor  int // Selected row within the window
	width   int
	height  int
}

// New creates a dashboard over the full record set, starting at its
// first day.
func New(records []lunar.DayRecord) Model {
	return Model{records: records}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// windowSize returns the visible window length, clipped to the data.
func (m Model) windowSize() int {
	n := WindowDays
	if rem := len(m.records) - m.offset; rem < n {
		n = rem
	}
	if n < 0 {
		n = 0
	}
	return n
}

// window returns the currently visible records.
func (m Model) window() []lunar.DayRecord {
	return m.records[m.offset : m.offset+m.windowSize()]
}

// maxOffset is the largest valid window start.
func (m Model) maxOffset() int {
	max := len(m.records) - WindowDays
	if max < 0 {
		max = 0
	}
	return max
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "left", "h":
			if m.offset > 0 {
				m.offset--
			}
		case "right", "l":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "pgup", "b":
			m.offset -= WindowDays
			if m.offset < 0 {
				m.offset = 0
			}
		case "pgdown", "f":
			m.offset += WindowDays
			if m.offset > m.maxOffset() {
				m.offset = m.maxOffset()
			}
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.maxOffset()

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.windowSize()-1 {
				m.cursor++
			}
		}

		if m.cursor >= m.windowSize() && m.windowSize() > 0 {
			m.cursor = m.windowSize() - 1
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🌙 30-Day Lunar Report"))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(dimStyle.Render("No lunar data loaded"))
		b.WriteString("\n")
		return b.String()
	}

	win := m.window()

	b.WriteString(m.renderMetrics(win))
	b.WriteString("\n\n")
	b.WriteString(m.renderIlluminationChart(win))
	b.WriteString("\n\n")
	b.WriteString(m.renderCalendar(win))
	b.WriteString("\n")
	b.WriteString(m.renderEvents(win))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"←/→ shift day  PgUp/PgDn shift month  ↑/↓ select  q quit  %s", version.Version)))
	b.WriteString("\n")

	return b.String()
}

// renderMetrics renders the headline counters for the visible window.
func (m Model) renderMetrics(win []lunar.DayRecord) string {
	s := report.ComputeStats(win)

	metric := func(label string, n int) string {
		return dimStyle.Render(label+" ") + metricStyle.Render(fmt.Sprintf("%d", n))
	}

	period := fmt.Sprintf("%s – %s", win[0].DateString(), win[len(win)-1].DateString())

	return dimStyle.Render(period) + "   " +
		metric("Full Moons", s.FullMoons) + "   " +
		metric("New Moons", s.NewMoons) + "   " +
		metric("Supermoons", s.Supermoons) + "   " +
		metric("Eclipse Days", s.Eclipses)
}

// renderIlluminationChart renders the illumination sparkline for the window.
func (m Model) renderIlluminationChart(win []lunar.DayRecord) string {
	var spark strings.Builder
	for _, r := range win {
		spark.WriteRune(illuminationSpark(r.Illumination))
	}

	return titleStyle.Render("Illumination") + "\n" +
		"  " + sparkStyle.Render(spark.String()) + "\n" +
		"  " + dimStyle.Render(fmt.Sprintf("%s → %s", win[0].DateString(), win[len(win)-1].DateString()))
}

// renderCalendar renders the per-day table.
func (m Model) renderCalendar(win []lunar.DayRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Calendar"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %-20s %7s  %-14s %-14s %s",
		"Date", "Phase", "Illum", "Moon Rise", "Moon Set", "Events")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	// Fit rows to the terminal; metrics, chart and events need ~14 lines.
	maxRows := len(win)
	if m.height > 0 {
		if avail := m.height - 14; avail > 2 && avail < maxRows {
			maxRows = avail
		}
	}

	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(win) {
		end = len(win)
	}

	for i := start; i < end; i++ {
		r := win[i]

		var events []string
		if r.HasEclipse {
			events = append(events, eclipseStyle.Render(
				fmt.Sprintf("%s eclipse %d%%", r.EclipseTypeString(), r.Eclipse.Depth)))
		}
		if r.Supermoon {
			events = append(events, supermoonStyle.Render("supermoon"))
		}

		row := fmt.Sprintf("%-12s %s %-17s %6s%%  %-14s %-14s %s",
			r.DateString(),
			PhaseGlyph(r.Phase),
			r.Phase.String(),
			r.IlluminationString(),
			r.MoonRiseString(),
			r.MoonSetString(),
			strings.Join(events, " "),
		)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(win) > maxRows {
		b.WriteString(dimStyle.Render(
			fmt.Sprintf("  Showing %d-%d of %d days", start+1, end, len(win))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderEvents renders the special-events panel for the window.
func (m Model) renderEvents(win []lunar.DayRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Special Events"))
	b.WriteString("\n")

	any := false
	for _, r := range win {
		if r.HasEclipse {
			b.WriteString("  " + eclipseStyle.Render(fmt.Sprintf(
				"%s  %s eclipse, depth %d%%, max at %s",
				r.DateString(), r.EclipseTypeString(), r.Eclipse.Depth, r.EclipseTimeString())))
			b.WriteString("\n")
			any = true
		}
		if r.Supermoon {
			b.WriteString("  " + supermoonStyle.Render(fmt.Sprintf(
				"%s  supermoon (%s%% illuminated)", r.DateString(), r.IlluminationString())))
			b.WriteString("\n")
			any = true
		}
	}

	if !any {
		b.WriteString(dimStyle.Render("  No eclipses or supermoons in this window"))
		b.WriteString("\n")
	}

	return b.String()
}
