package ui

import (
	"github.com/renato0307/chime/internal/theme"
	"github.com/renato0307/chime/version"
)

// renderHeader renders the app name, version and tagline.
// If subtitle is provided, it's rendered below the tagline.
func renderHeader(subtitle string) string {
	result := theme.AppNameStyle.Render("chime") + theme.VersionStyle.Render(" "+version.Version) + "\n"
	result += theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	return result + "\n"
}
