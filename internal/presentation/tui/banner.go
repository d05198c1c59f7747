package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Solid.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Five lines, five principles: a gradient from indigo to rose.
	s1 := termenv.String("  ___  ___  _    ___ ___  ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" / __|/ _ \\| |  |_ _|   \\ ").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(" \\__ \\ (_) | |__ | || |) |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String(" |___/\\___/|____|___|___/ ").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("   the field guide to Go design").Foreground(p.Color("#f472b6")).Italic()

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
