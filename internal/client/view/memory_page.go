package view

import "sync"

type promptAnswer struct {
	value string
	ok    bool
}

// MemoryPage is a Page and Dialogs kept in memory. Confirm and Prompt answers are scripted
// in advance; with nothing queued Confirm declines and Prompt cancels.
type MemoryPage struct {
	mu         sync.Mutex
	input      string
	panel      WeatherPanel
	rows       []CityRow
	rowRenders int
	alerts     []string
	asked      []string
	confirms   []bool
	prompts    []promptAnswer
}

var (
	_ Page    = (*MemoryPage)(nil)
	_ Dialogs = (*MemoryPage)(nil)
)

func NewMemoryPage() *MemoryPage {
	return &MemoryPage{}
}

func (p *MemoryPage) CityInput() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

func (p *MemoryPage) SetCityInput(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = value
}

func (p *MemoryPage) ReplaceWeatherPanel(panel WeatherPanel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.panel = panel
}

func (p *MemoryPage) ReplaceCityRows(rows []CityRow) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = append([]CityRow(nil), rows...)
	p.rowRenders++
}

func (p *MemoryPage) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, message)
}

func (p *MemoryPage) Confirm(message string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return false
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer
}

func (p *MemoryPage) Prompt(message string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.asked = append(p.asked, message)
	if len(p.prompts) == 0 {
		return "", false
	}
	answer := p.prompts[0]
	p.prompts = p.prompts[1:]
	return answer.value, answer.ok
}

// QueueConfirm scripts the answer of the next Confirm.
func (p *MemoryPage) QueueConfirm(answer bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.confirms = append(p.confirms, answer)
}

// QueuePrompt scripts the answer of the next Prompt.
func (p *MemoryPage) QueuePrompt(value string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, promptAnswer{value: value, ok: ok})
}

func (p *MemoryPage) WeatherPanel() WeatherPanel {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.panel
}

func (p *MemoryPage) Rows() []CityRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]CityRow(nil), p.rows...)
}

// RowRenders counts ReplaceCityRows calls.
func (p *MemoryPage) RowRenders() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rowRenders
}

func (p *MemoryPage) Alerts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.alerts...)
}

// Asked returns the Confirm and Prompt messages shown so far.
func (p *MemoryPage) Asked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.asked...)
}
