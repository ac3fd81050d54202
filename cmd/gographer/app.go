package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plotsmith/gographer/pkg/classifier"
	"github.com/plotsmith/gographer/pkg/evaluator"
	"github.com/plotsmith/gographer/pkg/plot"
	"github.com/plotsmith/gographer/pkg/types"
)

type appConfig struct {
	xMin    float64
	xMax    float64
	preload []string
}

// entry is one committed definition line.
type entry struct {
	line string
	def  *types.Definition
}

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	crossStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type model struct {
	cfg      appConfig
	input    textinput.Model
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string

	env     *evaluator.Environment
	ev      *evaluator.Evaluator
	cls     *classifier.Classifier
	sampler *plot.Sampler
	isect   *plot.Intersector

	entries []entry
	xMin    float64
	xMax    float64
	yMin    float64
	yMax    float64
}

func newModel(cfg appConfig) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Focus()

	env := evaluator.NewEnvironment()
	ev := evaluator.New(evaluator.WithCaching(true))

	m := model{
		cfg:     cfg,
		input:   ti,
		status:  "enter a definition, or: view, set, list, clear, quit",
		env:     env,
		ev:      ev,
		cls:     classifier.New(env),
		sampler: plot.NewSampler(ev, plot.DefaultConfig()),
		isect:   plot.NewIntersector(ev, plot.DefaultIntersectConfig()),
		xMin:    cfg.xMin,
		xMax:    cfg.xMax,
		yMin:    cfg.xMin,
		yMax:    cfg.xMax,
	}
	for _, line := range cfg.preload {
		m.submit(line)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" {
				return m, tea.Quit
			}
			m.submit(line)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "starting..."
	}
	return m.viewport.View() + "\n" +
		statusStyle.Render(m.status) + "\n" +
		inputStyle.Render(m.input.View())
}

// submit handles one committed input line: a command or a definition.
func (m *model) submit(line string) {
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "view":
		m.cmdView(fields[1:])
		return
	case "set":
		m.cmdSet(fields[1:])
		return
	case "list":
		m.cmdList()
		return
	case "clear":
		m.env.Clear()
		m.entries = nil
		m.status = "cleared"
		return
	}

	def, err := m.cls.Classify(line)
	if err != nil {
		m.status = errStyle.Render(err.Error())
		return
	}
	if err := m.checkDefinition(def); err != nil {
		m.status = errStyle.Render(err.Error())
		return
	}

	// Parameters and sets get an initial value so references resolve.
	switch def.Type {
	case types.DefParameter:
		m.env.SetParam(def.Name, (def.Min+def.Max)/2)
	case types.DefExplicitSet, types.DefRangeSet:
		m.env.SetParam(def.Name, def.Values[0])
	}

	m.upsert(line, def)
	m.status = fmt.Sprintf("%s: %s", def.Type, line)
}

// checkDefinition compiles the definition's expressions so syntax errors
// surface immediately instead of during rendering.
func (m *model) checkDefinition(def *types.Definition) error {
	var sources []string
	switch def.Type {
	case types.DefFunction:
		sources = []string{def.Expr}
	case types.DefEquation, types.DefInequation:
		sources = []string{def.Left, def.Right}
	case types.DefPoint:
		sources = []string{def.XExpr, def.YExpr}
	}
	for _, src := range sources {
		if _, err := m.ev.Compile(src); err != nil {
			return err
		}
	}
	return nil
}

// upsert appends the definition, replacing any earlier one with the same
// name.
func (m *model) upsert(line string, def *types.Definition) {
	if def.Name != "" {
		for i, e := range m.entries {
			if e.def.Name == def.Name {
				m.entries[i] = entry{line: line, def: def}
				return
			}
		}
	}
	m.entries = append(m.entries, entry{line: line, def: def})
}

func (m *model) cmdView(args []string) {
	if len(args) != 2 && len(args) != 4 {
		m.status = errStyle.Render("usage: view <xmin> <xmax> [<ymin> <ymax>]")
		return
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			m.status = errStyle.Render("view bounds must be numeric")
			return
		}
		vals[i] = v
	}
	if vals[0] >= vals[1] || (len(vals) == 4 && vals[2] >= vals[3]) {
		m.status = errStyle.Render("view bounds must be increasing")
		return
	}
	m.xMin, m.xMax = vals[0], vals[1]
	if len(vals) == 4 {
		m.yMin, m.yMax = vals[2], vals[3]
	} else {
		m.yMin, m.yMax = vals[0], vals[1]
	}
	m.status = fmt.Sprintf("view x:[%g, %g] y:[%g, %g]", m.xMin, m.xMax, m.yMin, m.yMax)
}

func (m *model) cmdSet(args []string) {
	if len(args) != 2 {
		m.status = errStyle.Render("usage: set <name> <value>")
		return
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		m.status = errStyle.Render("parameter value must be numeric")
		return
	}
	m.env.SetParam(strings.ToLower(args[0]), v)
	m.status = fmt.Sprintf("%s = %g", strings.ToLower(args[0]), v)
}

func (m *model) cmdList() {
	if len(m.entries) == 0 {
		m.status = "no definitions"
		return
	}
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		lines[i] = e.line
	}
	m.status = strings.Join(lines, "  |  ")
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.render())
}
