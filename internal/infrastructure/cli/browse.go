package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
	"github.com/skilltrail/skilltrail/internal/render"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the roadmap tree interactively",
	Long: `Browse the roadmap tree interactively.

Keys:
  up/k, down/j  move
  enter/space   collapse or expand a module or section
  a             expand everything
  q             quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("SKILLTRAIL_SKIP_BROWSE_RUN") == "true" {
			return nil
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		rm, err := services.Roadmap.LoadMerged()
		if err != nil {
			return MapError(err)
		}

		p := tea.NewProgram(newBrowseModel(rm))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browse run failed: %w", err)
		}
		return nil
	},
}

type browseModel struct {
	title    string
	steps    []roadmap.Step
	renderer *render.Renderer
	lines    []render.Line
	cursor   int
	spin     spinner.Model
}

func newBrowseModel(rm *roadmap.Roadmap) browseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	renderer := render.NewRenderer(rm.Steps)
	return browseModel{
		title:    rm.Title,
		steps:    rm.Steps,
		renderer: renderer,
		lines:    renderer.Lines(rm.Steps),
		spin:     sp,
	}
}

func (m browseModel) Init() tea.Cmd { return m.spin.Tick }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.lines) > 0 && m.lines[m.cursor].Collapsible {
				m.renderer.Toggle(m.lines[m.cursor].Step.ID)
				m.refresh()
			}
		case "a":
			m.renderer.ExpandAll(m.steps)
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) refresh() {
	m.lines = m.renderer.Lines(m.steps)
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(render.TitleStyle.Render(" "+m.title+" ") + "\n\n")

	if len(m.lines) == 0 {
		b.WriteString(render.EmptyMessage + "\n")
	}
	for i, line := range m.lines {
		b.WriteString(m.renderer.RenderLine(line, i == m.cursor))
		if line.Step.Status == roadmap.StatusInProgress {
			b.WriteString(" " + m.spin.View())
		}
		b.WriteByte('\n')
	}

	b.WriteString(render.MetaStyle.Render("\nj/k move · enter toggle · a expand all · q quit") + "\n")
	return b.String()
}

func init() {
	RootCmd.AddCommand(browseCmd)
}
