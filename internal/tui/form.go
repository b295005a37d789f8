package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Answers holds the values collected by the configuration form.
type Answers struct {
	SpecsDir        string
	Env             string
	Tags            string
	Parallel        bool
	Nodes           int
	AdditionalFlags string
}

type field struct {
	key         string
	label       string
	placeholder string
	validate    func(string) error
	input       textinput.Model
	value       string
	err         string
}

// Model is the bubbletea model for the sequential configuration form.
type Model struct {
	styles   StyleSet
	fields   []field
	idx      int
	done     bool
	canceled bool
}

func validateNodes(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be an integer")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func validateYesNo(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y", "n", "yes", "no":
		return nil
	}
	return fmt.Errorf("answer y or n")
}

// NewModel creates the form with all fields in prompt order.
func NewModel() Model {
	styles := DefaultStyles()

	specs := []struct {
		key         string
		label       string
		placeholder string
		validate    func(string) error
	}{
		{"specs_dir", "Specs directory", "specs", nil},
		{"env", "Gauge environment", "default", nil},
		{"tags", "Tags expression (optional)", "", nil},
		{"parallel", "Run in parallel? (y/n)", "n", validateYesNo},
		{"nodes", "Parallel execution streams", "1", validateNodes},
		{"additional_flags", "Additional gauge flags (optional)", "", nil},
	}

	fields := make([]field, 0, len(specs))
	for _, s := range specs {
		ti := textinput.New()
		ti.Placeholder = s.placeholder
		ti.CharLimit = 120
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Accent)
		fields = append(fields, field{
			key:         s.key,
			label:       s.label,
			placeholder: s.placeholder,
			validate:    s.validate,
			input:       ti,
		})
	}
	fields[0].input.Focus()

	return Model{styles: styles, fields: fields}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key events: enter validates and advances, esc cancels.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.canceled {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			f := &m.fields[m.idx]
			val := strings.TrimSpace(f.input.Value())
			if val == "" {
				val = f.placeholder
			}
			if f.validate != nil {
				if err := f.validate(val); err != nil {
					f.err = err.Error()
					return m, nil
				}
			}
			f.err = ""
			f.value = val
			f.input.Blur()

			m.idx++
			if m.idx >= len(m.fields) {
				m.done = true
				return m, tea.Quit
			}
			m.fields[m.idx].input.Focus()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.fields[m.idx].input, cmd = m.fields[m.idx].input.Update(msg)
	return m, cmd
}

// View renders answered fields as a summary above the active prompt.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Gauge configuration") + "\n\n")

	for i := 0; i < m.idx && i < len(m.fields); i++ {
		f := m.fields[i]
		b.WriteString("  " + m.styles.Done.Render("✓") + " " +
			m.styles.Label.Render(f.label) + "  " +
			m.styles.Value.Render(f.value) + "\n")
	}

	if m.idx < len(m.fields) {
		f := m.fields[m.idx]
		b.WriteString("\n  " + m.styles.Label.Render(f.label) + "\n")
		b.WriteString("  " + f.input.View() + "\n")
		if f.err != "" {
			b.WriteString("  " + m.styles.Error.Render(f.err) + "\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("  enter confirm · esc cancel") + "\n")
	}

	return b.String()
}

// Answers converts the collected values. Call only after the form is done.
func (m Model) Answers() *Answers {
	if !m.done {
		return nil
	}
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.key] = f.value
	}

	nodes := 1
	if n, err := strconv.Atoi(values["nodes"]); err == nil {
		nodes = n
	}
	parallel := false
	switch strings.ToLower(values["parallel"]) {
	case "y", "yes":
		parallel = true
	}

	return &Answers{
		SpecsDir:        values["specs_dir"],
		Env:             values["env"],
		Tags:            values["tags"],
		Parallel:        parallel,
		Nodes:           nodes,
		AdditionalFlags: values["additional_flags"],
	}
}

// RunForm runs the form to completion. A nil Answers with a nil error
// means the user cancelled.
func RunForm() (*Answers, error) {
	p := tea.NewProgram(NewModel())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok || m.canceled {
		return nil, nil
	}
	return m.Answers(), nil
}
