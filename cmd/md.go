package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown string for the terminal. On rendering
// failure the raw markdown is printed instead.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Println(src)
		return
	}
	fmt.Print(out)
}
