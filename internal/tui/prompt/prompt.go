// Package prompt collects simulation settings interactively, one question
// at a time, when votesim runs on a terminal without explicit flags.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wbgray/votesim/internal/config"
	"github.com/wbgray/votesim/internal/errors"
)

// ErrExit is returned by Run when the user answers 0 to leave the program.
var ErrExit = errors.New("exit requested")

// Answers holds the values gathered by the prompt. Values passed to New
// are offered as defaults.
type Answers struct {
	Verbose    bool
	File       string
	Issues     int
	Population int
	Elections  int
}

// step is a single question. parse stores a valid answer in a and returns
// ErrExit when the user asked to leave.
type step struct {
	label string
	hint  string
	parse func(a *Answers, value string) error
}

// Model is the Bubbletea model for the settings prompt
type Model struct {
	steps     []step
	index     int
	textInput textinput.Model
	answers   Answers
	errorMsg  string
	exited    bool
	done      bool
}

// New creates a prompt model seeded with defaults.
func New(defaults Answers) Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "> "

	return Model{
		steps:     steps(defaults),
		textInput: ti,
		answers:   defaults,
	}
}

func steps(d Answers) []step {
	yesNo := "y/N"
	if d.Verbose {
		yesNo = "Y/n"
	}

	return []step{
		{
			label: "Print election statistics to the screen",
			hint:  fmt.Sprintf("(0 to exit) [%s]", yesNo),
			parse: parseVerbose,
		},
		{
			label: "Write election data to a file",
			hint:  "(empty for none, 0 to exit)",
			parse: parseFile,
		},
		{
			label: "Number of issues",
			hint:  fmt.Sprintf("(0 to exit) [1-%d, default %d]", config.MaxIssues(), d.Issues),
			parse: numberParser(func(a *Answers) *int { return &a.Issues }, config.ValidateIssues),
		},
		{
			label: "Population size",
			hint:  fmt.Sprintf("(0 to exit) [1-%d, default %d]", config.MaxPopulation(), d.Population),
			parse: numberParser(func(a *Answers) *int { return &a.Population }, config.ValidatePopulation),
		},
		{
			label: "Number of elections",
			hint:  fmt.Sprintf("(0 to exit) [default %d]", d.Elections),
			parse: numberParser(func(a *Answers) *int { return &a.Elections }, config.ValidateElections),
		},
	}
}

func parseVerbose(a *Answers, value string) error {
	switch strings.ToLower(value) {
	case "":
		return nil
	case "0":
		return ErrExit
	case "y", "yes":
		a.Verbose = true
	case "n", "no":
		a.Verbose = false
	default:
		return fmt.Errorf("expected y or n")
	}
	return nil
}

func parseFile(a *Answers, value string) error {
	if value == "0" {
		return ErrExit
	}
	a.File = value
	return nil
}

// numberParser accepts decimal, hex (0x) and octal (0) integers. An empty
// answer keeps the current value.
func numberParser(field func(*Answers) *int, validate func(int) *config.ValidationError) func(*Answers, string) error {
	return func(a *Answers, value string) error {
		if value == "" {
			value = strconv.Itoa(*field(a))
		}
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("expected a non-negative integer")
		}
		if n == 0 {
			return ErrExit
		}
		if verr := validate(int(n)); verr != nil {
			return fmt.Errorf("%s", verr.Message)
		}
		*field(a) = int(n)
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.exited = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")

	if err := m.steps[m.index].parse(&m.answers, value); err != nil {
		if errors.Is(err, ErrExit) {
			m.exited = true
			return m, tea.Quit
		}
		m.errorMsg = err.Error()
		return m, nil
	}

	m.errorMsg = ""
	m.index++
	if m.index == len(m.steps) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done || m.exited {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("votesim"))
	b.WriteString("\n\n")

	for _, s := range m.steps[:m.index] {
		b.WriteString(answeredStyle.Render(s.label))
		b.WriteString("\n")
	}

	s := m.steps[m.index]
	b.WriteString(labelStyle.Render(s.label))
	b.WriteString(" ")
	b.WriteString(hintStyle.Render(s.hint))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(errorStyle.Render("Invalid input: " + m.errorMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter to confirm, esc to exit"))
	return b.String()
}

// Answers returns the collected values and whether every question was
// answered.
func (m Model) Answers() (Answers, bool) {
	return m.answers, m.done
}

// Run shows the prompt and blocks until it is completed. It returns ErrExit
// when the user leaves early.
func Run(defaults Answers, opts ...tea.ProgramOption) (Answers, error) {
	final, err := tea.NewProgram(New(defaults), opts...).Run()
	if err != nil {
		return Answers{}, fmt.Errorf("prompt failed: %w", err)
	}

	answers, ok := final.(Model).Answers()
	if !ok {
		return Answers{}, ErrExit
	}
	return answers, nil
}
