package version

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Banner renders the startup box printed before the server starts. Colors
// follow the profile detected from the environment, so redirected output
// stays plain text.
func Banner(address string) string {
	return renderBanner(address, termenv.EnvColorProfile())
}

func renderBanner(address string, profile termenv.Profile) string {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(profile)

	titleStyle := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4"))

	infoStyle := renderer.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	boxStyle := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("httpfromtcp " + GetShortVersion()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("commit %s, built %s", Commit, BuildDate)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("listening on " + address))

	return boxStyle.Render(b.String())
}
