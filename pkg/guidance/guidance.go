// Package guidance holds the usage text printed after a successful
// bootstrap. The line order is fixed and covered by tests; scripts
// watching our output get a stable surface.
package guidance

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/hookup/pkg/style"
)

// Header is the banner's first line, printed before the usage lines
func Header(tool string) string {
	return fmt.Sprintf("%s hooks are installed in this repository.", tool)
}

// Lines returns the usage guidance in its fixed order
func Lines(tool string) []string {
	return []string{
		"The configured checks now run automatically on every commit.",
		fmt.Sprintf("Run them by hand anytime:    %s run --all-files", tool),
		fmt.Sprintf("Update hook versions:        %s autoupdate", tool),
		"Skip checks for one commit:  git commit --no-verify",
	}
}

// Snippet returns the unstyled guidance text for the snippet command
func Snippet(tool string) string {
	var b strings.Builder
	b.WriteString(Header(tool))
	b.WriteString("\n\n")
	for _, line := range Lines(tool) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Banner writes the styled success banner to w
func Banner(w io.Writer, tool string) {
	fmt.Fprintln(w, style.OK(style.TitleStyle.Render(Header(tool))))
	fmt.Fprintln(w)
	for _, line := range Lines(tool) {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
