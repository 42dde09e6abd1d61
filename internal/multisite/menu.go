package multisite

import (
	"fmt"
	"io"
	"strings"
)

// SiteTypes is the static list of publishing site types shown in the menu.
var SiteTypes = []string{
	"Blog network (several topical blogs)",
	"Documentation hub (product docs per site)",
	"Landing pages (campaign micro-sites)",
	"Client staging sites (one per client)",
	"Testing sandboxes (throwaway installs)",
}

// SetupMethods maps each choice letter to a setup approach.
var SetupMethods = []struct {
	Choice string
	Label  string
}{
	{"A", "Local development sites (*.local via locwp)"},
	{"B", "Subdomain multisite on one WordPress install"},
	{"C", "Separate staging domains per site"},
}

var suggestions = map[string][]string{
	"A": {
		"blog.local",
		"docs.local",
		"landing.local",
		"sandbox.local",
	},
	"B": {
		"blog.example.com",
		"docs.example.com",
		"landing.example.com",
		"shop.example.com",
	},
	"C": {
		"staging-blog.example.com",
		"staging-docs.example.com",
		"staging-landing.example.com",
		"staging-shop.example.com",
	},
}

// Suggestions returns the four suggested hostnames for a setup-method
// choice. Matching is case-insensitive; unknown choices return nil.
func Suggestions(choice string) []string {
	return suggestions[strings.ToUpper(strings.TrimSpace(choice))]
}

// RenderMenus writes the site-type and setup-method menus.
func RenderMenus(w io.Writer) {
	fmt.Fprintln(w, "Site types for a publishing pipeline:")
	for i, t := range SiteTypes {
		fmt.Fprintf(w, "  %d) %s\n", i+1, t)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Setup methods:")
	for _, m := range SetupMethods {
		fmt.Fprintf(w, "  %s) %s\n", m.Choice, m.Label)
	}
	fmt.Fprintln(w)
}

// RenderSuggestions writes the hostname suggestions for a choice, or a
// single hint line when the choice matches nothing.
func RenderSuggestions(w io.Writer, choice string) {
	hosts := Suggestions(choice)
	if hosts == nil {
		fmt.Fprintf(w, "No suggestions for %q. Pick A, B or C.\n", strings.TrimSpace(choice))
		return
	}
	fmt.Fprintln(w, "Suggested sites:")
	for _, h := range hosts {
		fmt.Fprintf(w, "  - %s\n", h)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps: create each site, then run `wppub connect` against it")
	fmt.Fprintln(w, "and `wppub env` inside each project directory.")
}
