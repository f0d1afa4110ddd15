package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	fcolor "github.com/fatih/color"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 2)
	headingStyle     = lipgloss.NewStyle().Bold(true)
	temperatureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	detailStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// TerminalPage renders to a terminal and reads dialog answers from in.
// Dialogs read from the same reader as the command loop, so they must not run concurrently with it.
type TerminalPage struct {
	mu    sync.Mutex
	out   io.Writer
	in    *bufio.Reader
	input string
}

var (
	_ Page    = (*TerminalPage)(nil)
	_ Dialogs = (*TerminalPage)(nil)
)

func NewTerminalPage(in *bufio.Reader, out io.Writer) *TerminalPage {
	return &TerminalPage{in: in, out: out}
}

func (p *TerminalPage) CityInput() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

func (p *TerminalPage) SetCityInput(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = value
}

func (p *TerminalPage) ReplaceWeatherPanel(panel WeatherPanel) {
	if !panel.Visible {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, RenderWeatherPanel(panel))
}

func (p *TerminalPage) ReplaceCityRows(rows []CityRow) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, RenderCityRows(rows))
}

func (p *TerminalPage) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fcolor.New(fcolor.FgYellow, fcolor.Bold).Fprintln(p.out, "! "+message)
}

func (p *TerminalPage) Confirm(message string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fcolor.New(fcolor.FgCyan).Fprintf(p.out, "%s [y/N] ", message)
	answer, err := p.readLine()
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func (p *TerminalPage) Prompt(message string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fcolor.New(fcolor.FgCyan).Fprintf(p.out, "%s ", message)
	answer, err := p.readLine()
	if err != nil {
		return "", false
	}
	return answer, true
}

func (p *TerminalPage) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// RenderWeatherPanel draws the panel as a bordered card.
func RenderWeatherPanel(panel WeatherPanel) string {
	summary := temperatureStyle.Render(panel.Temperature) + " — " + panel.Description
	body := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(panel.Heading),
		summary,
		detailStyle.Render(panel.Details),
	)
	return cardStyle.Render(body)
}

// RenderCityRows draws the saved cities with the commands each row accepts.
func RenderCityRows(rows []CityRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Actions").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, row := range rows {
		actions := make([]string, 0, len(row.Actions))
		for _, action := range row.Actions {
			actions = append(actions, fmt.Sprintf("%s %s", action.Kind, action.Value))
		}
		t.Row(row.ID, row.Name, strings.Join(actions, " | "))
	}

	return t.String()
}
