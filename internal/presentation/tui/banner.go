package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for svgtint.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Colored with the default gradient stops, red fading into blue.
	s1 := termenv.String("                 _   _       _   ").Foreground(p.Color("#ff0000"))
	s2 := termenv.String(" _____   ____ _ | |_(_)_ __ | |_ ").Foreground(p.Color("#cc0033"))
	s3 := termenv.String("/ __\\ \\ / / _` || __| | '_ \\| __|").Foreground(p.Color("#990066"))
	s4 := termenv.String("\\__ \\\\ V / (_| || |_| | | | | |_ ").Foreground(p.Color("#660099"))
	s5 := termenv.String("|___/ \\_/ \\__, | \\__|_|_| |_|\\__|").Foreground(p.Color("#3300cc"))
	s6 := termenv.String("          |___/                  ").Foreground(p.Color("#0000ff"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
