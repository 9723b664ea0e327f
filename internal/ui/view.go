package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#03BF87"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#03BF87"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#03BF87"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("brewctl") + "\n\n")

	if m.loading {
		b.WriteString("  " + m.spin.View() + " checking environment...\n")
		return b.String()
	}
	if m.err != nil {
		b.WriteString("  " + warnStyle.Render("error: "+m.err.Error()) + "\n")
		b.WriteString("\n  " + helpStyle.Render("r refresh · q quit") + "\n")
		return b.String()
	}

	rows := [][2]string{}
	if m.rep.BrewInstalled {
		v := m.rep.BrewVersion
		if v == "" {
			v = "unknown"
		}
		rows = append(rows, [2]string{"brew", okStyle.Render("✓ "+v) + " " + dimStyle.Render(m.rep.BrewPath)})
	} else {
		rows = append(rows, [2]string{"brew", warnStyle.Render("× not installed · run `brewctl bootstrap`")})
	}
	if m.rep.BrewfileFound {
		rows = append(rows, [2]string{"Brewfile", okStyle.Render("✓") + " " + dimStyle.Render(m.rep.Brewfile)})
		rows = append(rows, [2]string{"entries", fmt.Sprintf("%d taps · %d formulae · %d casks", m.rep.Taps, m.rep.Formulae, m.rep.Casks)})
	} else {
		rows = append(rows, [2]string{"Brewfile", warnStyle.Render("× missing · run `brewctl dump`")})
	}

	labelW := 0
	for _, r := range rows {
		if w := xansi.StringWidth(r[0]); w > labelW {
			labelW = w
		}
	}
	for _, r := range rows {
		pad := labelW - xansi.StringWidth(r[0])
		b.WriteString("  " + labelStyle.Render(r[0]) + strings.Repeat(" ", pad+2) + r[1] + "\n")
	}

	b.WriteString("\n  " + helpStyle.Render("r refresh · q quit") + "\n")
	return b.String()
}
