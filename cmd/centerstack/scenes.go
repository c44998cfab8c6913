package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	cs "github.com/grindlemire/centerstack"
)

const defaultScene = "hstack"

var (
	accent = lipgloss.Color("6")
	muted  = lipgloss.Color("8")
)

// scene is a named demo layout.
type scene struct {
	name        string
	description string
	build       func() cs.View
}

var scenes = []scene{
	{
		name:        "hstack",
		description: "a centered label with a wide sibling to its right",
		build: func() cs.View {
			return cs.CenteredHStack(cs.WithChildren(
				cs.Named("centered", cs.Centered(cs.Foreground(accent, cs.Text("[centered]")))),
				cs.Named("sibling", cs.Foreground(muted, cs.Text("sibling text"))),
			))
		},
	},
	{
		name:        "vstack",
		description: "a centered row with a tall header above it",
		build: func() cs.View {
			return cs.CenteredVStack(cs.WithChildren(
				cs.Named("header", cs.Foreground(muted, cs.Text("header\n------\nmore header"))),
				cs.Named("centered", cs.Centered(cs.Foreground(accent, cs.Text("[centered]")))),
			))
		},
	},
	{
		name:        "nested",
		description: "a centered column inside a centered row",
		build: func() cs.View {
			column := cs.CenteredVStack(
				cs.WithHorizontalAlignment(cs.Leading),
				cs.WithChildren(
					cs.Foreground(muted, cs.Text("above")),
					cs.Named("centered", cs.Centered(cs.Foreground(accent, cs.Text("[centered]")))),
				),
			)
			return cs.CenteredHStack(cs.WithChildren(
				cs.Named("column", cs.Centered(column)),
				cs.Named("sibling", cs.Foreground(muted, cs.Text("sibling text"))),
			))
		},
	},
	{
		name:        "plain",
		description: "the hstack scene in an ordinary HStack, for comparison",
		build: func() cs.View {
			return cs.HStack(cs.WithChildren(
				cs.Named("centered", cs.Centered(cs.Foreground(accent, cs.Text("[centered]")))),
				cs.Named("sibling", cs.Foreground(muted, cs.Text("sibling text"))),
			))
		},
	},
}

func lookupScene(name string) (scene, bool) {
	for _, s := range scenes {
		if s.name == name {
			return s, true
		}
	}
	return scene{}, false
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for _, s := range scenes {
		names = append(names, s.name)
	}
	return names
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the built-in scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range scenes {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", s.name, s.description); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
