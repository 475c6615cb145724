package cli

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jmgilman/go/bitbucket"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorDim)
	styleYes    = lipgloss.NewStyle().Foreground(colorGreen)
	styleNo     = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable writes rows under headers as a bordered table.
func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleLabel).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers(headers...).
		Rows(rows...)
	fprintf(w, "%s\n", t.Render())
}

// renderFields writes a title followed by label/value lines.
func renderFields(w io.Writer, title string, fields [][2]string) {
	fprintf(w, "%s\n", styleTitle.Render(title))
	width := 0
	for _, f := range fields {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	label := styleLabel.Width(width + 2)
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fprintf(w, "%s%s\n", label.Render(f[0]+":"), f[1])
	}
}

func yesNo(v bool) string {
	if v {
		return styleYes.Render("yes")
	}
	return styleNo.Render("no")
}

func repositoryRows(repos []*bitbucket.RepositoryData) [][]string {
	rows := make([][]string, len(repos))
	for i, r := range repos {
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		rows[i] = []string{r.Slug, r.Name, visibility, r.CloneURL}
	}
	return rows
}

func pullRequestRows(prs []*bitbucket.PullRequestData) [][]string {
	rows := make([][]string, len(prs))
	for i, pr := range prs {
		rows[i] = []string{
			strconv.Itoa(pr.ID),
			pr.Title,
			pr.Source.Branch + " -> " + pr.Destination.Branch,
			pr.Author,
			pr.State,
		}
	}
	return rows
}
