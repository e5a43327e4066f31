package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("SKILLTRAIL_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		m, err := initialDashboardModel()
		if err != nil {
			return MapError(err)
		}
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var statBoxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

type dashboardModel struct {
	table   table.Model
	title   string
	points  int
	level   string
	streak  int
	badges  int
	percent float64
}

func initialDashboardModel() (dashboardModel, error) {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return dashboardModel{}, err
	}

	rm, err := services.Roadmap.LoadMerged()
	if err != nil {
		return dashboardModel{}, err
	}

	summary, err := services.Progress.Summarize()
	if err != nil {
		return dashboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Status", Width: 12},
		{Title: "Type", Width: 18},
		{Title: "Step", Width: 40},
		{Title: "Points", Width: 6},
		{Title: "ID", Width: 20},
	}

	rows := []table.Row{}
	rm.Walk(func(step *roadmap.Step, depth int) bool {
		rows = append(rows, table.Row{
			string(step.Status),
			string(step.Type),
			step.Title,
			strconv.Itoa(step.Points),
			step.ID,
		})
		return true
	})

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)

	return dashboardModel{
		table:   t,
		title:   rm.Title,
		points:  summary.Profile.Points,
		level:   summary.Profile.LevelName,
		streak:  summary.Profile.Streak.Current,
		badges:  len(summary.Profile.Badges),
		percent: summary.Progress,
	}, nil
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	default:
		_ = msg
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m dashboardModel) View() string {
	header := headerStyle.Render(fmt.Sprintf(" %s ", m.title))
	stats := statBoxStyle.Render(fmt.Sprintf(
		"%.1f%% complete · %d pts · %s · streak %d · %d badge(s)",
		m.percent, m.points, m.level, m.streak, m.badges,
	))
	return header + "\n" + stats + "\n\n" + baseStyle.Render(m.table.View()) + "\nPress q to quit.\n"
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}
