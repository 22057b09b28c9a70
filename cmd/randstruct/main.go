package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/layout"
	"github.com/wippyai/randstruct/partition"
	"github.com/wippyai/randstruct/structdef"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to YAML struct definitions")
		structName  = flag.String("struct", "", "Struct to randomize (default: all eligible)")
		seed        = flag.String("seed", "", "Randomization seed")
		auto        = flag.Bool("auto", false, "Randomize structs not marked randomize")
		list        = flag.Bool("list", false, "List defined structs and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: randstruct -file <structs.yaml> [-struct name] [-seed s] [-auto]")
		fmt.Fprintln(os.Stderr, "       randstruct -file <structs.yaml> -list")
		fmt.Fprintln(os.Stderr, "       randstruct -file <structs.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		partition.SetLogger(logger.Named("partition"))
		layout.SetLogger(logger.Named("layout"))
	}

	defs, err := structdef.Load(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(defs, *seed); err != nil {
			fmt.Fprintf(os.Stderr, "interactive: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *list {
		for _, s := range defs.Structs {
			marker := " "
			if s.Randomize {
				marker = "*"
			}
			fmt.Printf("%s %s (%d fields)\n", marker, s.Name, len(s.Fields))
		}
		return
	}

	cfg := randstruct.Config{Seed: *seed, AutoSelect: *auto}
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	ran := 0
	for _, s := range defs.Structs {
		if *structName != "" && s.Name != *structName {
			continue
		}
		if *structName == "" && !layout.ShouldRandomize(cfg, s.Randomize) {
			continue
		}
		if err := printRandomized(s, cfg, styled); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", s.Name, err)
			os.Exit(1)
		}
		ran++
	}

	if *structName != "" && ran == 0 {
		fmt.Fprintf(os.Stderr, "struct %q not found in %s\n", *structName, *file)
		os.Exit(1)
	}
}

var (
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	bitfieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
)

func printRandomized(s *structdef.Struct, cfg randstruct.Config, styled bool) error {
	fields := s.FieldList()
	order, err := layout.Rearrange(fields, structdef.Widths{}, cfg)
	if err != nil {
		return err
	}

	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	fmt.Println(render(nameStyle, "struct "+s.Name))
	fmt.Printf("  %s\n", render(headerStyle, "declared:"))
	for _, f := range fields {
		fmt.Printf("    %s\n", memberLabel(f, render))
	}
	fmt.Printf("  %s\n", render(headerStyle, "randomized:"))
	for _, f := range order {
		fmt.Printf("    %s\n", memberLabel(f, render))
	}
	fmt.Println()
	return nil
}

func memberLabel(f randstruct.Field, render func(lipgloss.Style, string) string) string {
	m := f.(*structdef.Member)
	if m.IsBitfield() {
		return render(bitfieldStyle, fmt.Sprintf("%s : %d", m.Name, m.Bits))
	}
	return m.Name
}
