package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/andrescamacho/greenhouse-go/internal/domain/garden"
)

// TreeFormatter renders the greenhouse composite as an indented tree
type TreeFormatter struct {
	useColors bool
	useEmojis bool

	seedling func(a ...interface{}) string
	mature   func(a ...interface{}) string
	dead     func(a ...interface{}) string
	section  func(a ...interface{}) string
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors, useEmojis bool) *TreeFormatter {
	return &TreeFormatter{
		useColors: useColors,
		useEmojis: useEmojis,
		seedling:  color.New(color.FgYellow).SprintFunc(),
		mature:    color.New(color.FgGreen).SprintFunc(),
		dead:      color.New(color.FgRed).SprintFunc(),
		section:   color.New(color.Bold).SprintFunc(),
	}
}

// FormatTree renders a component and everything below it
func (f *TreeFormatter) FormatTree(root garden.GardenComponent) string {
	if root == nil {
		return "(empty greenhouse)"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

func (f *TreeFormatter) formatNode(builder *strings.Builder, node garden.GardenComponent, prefix string, isLast bool, isRoot bool) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	switch n := node.(type) {
	case *garden.Plant:
		builder.WriteString(linePrefix + f.plantLine(n) + "\n")
	case *garden.GardenSection:
		builder.WriteString(linePrefix + f.sectionLine(n) + "\n")
	}

	children := node.Children()
	if len(children) == 0 {
		return
	}

	var childPrefix string
	if isRoot {
		childPrefix = ""
	} else if isLast {
		childPrefix = prefix + "    "
	} else {
		childPrefix = prefix + "│   "
	}

	for i, child := range children {
		f.formatNode(builder, child, childPrefix, i == len(children)-1, false)
	}
}

func (f *TreeFormatter) sectionLine(s *garden.GardenSection) string {
	count := 0
	for range garden.Plants(s) {
		count++
	}

	icon := "[+]"
	if f.useEmojis {
		icon = "🪴"
	}
	name := s.Name()
	if f.useColors {
		name = f.section(name)
	}
	return fmt.Sprintf("%s %s (%d %s)", icon, name, count, pluralize(count, "plant", "plants"))
}

func (f *TreeFormatter) plantLine(p *garden.Plant) string {
	stage := f.colorStage(p.Stage())
	line := fmt.Sprintf("%s %s [%s] age %d, water %.0f%%, %s",
		f.stageIcon(p.Stage()), p.Name(), stage, p.Age(), p.WaterLevel()*100, p.Price())
	if p.Location() != "" {
		line += " @ " + string(p.Location())
	}
	if p.IsSold() {
		line += " (sold)"
	}
	return line
}

func (f *TreeFormatter) stageIcon(stage garden.Stage) string {
	if !f.useEmojis {
		switch stage {
		case garden.StageMature:
			return "[*]"
		case garden.StageDead:
			return "[x]"
		default:
			return "[.]"
		}
	}

	switch stage {
	case garden.StageMature:
		return "🌸"
	case garden.StageDead:
		return "🥀"
	default:
		return "🌱"
	}
}

func (f *TreeFormatter) colorStage(stage garden.Stage) string {
	text := stage.String()
	if !f.useColors {
		return text
	}

	switch stage {
	case garden.StageMature:
		return f.mature(text)
	case garden.StageDead:
		return f.dead(text)
	default:
		return f.seedling(text)
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
