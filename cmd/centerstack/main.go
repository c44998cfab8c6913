// Package main provides a demo CLI that renders centered stack scenes.
//
// Usage:
//
//	centerstack render [scene]    Render a scene at the terminal size
//	centerstack scenes            List the built-in scenes
//	centerstack --version         Print version information
//
// Examples:
//
//	centerstack render hstack
//	centerstack render nested --width 60 --height 12
//	centerstack render vstack --color never
//	centerstack render plain --debug-log /tmp/centerstack.log
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/centerstack/pkg/debug"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to out and errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var debugLog string

	root := &cobra.Command{
		Use:          "centerstack",
		Short:        "Render centered stack layouts in the terminal",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugLog == "" {
				return nil
			}
			return debug.Init(debugLog)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if debugLog == "" {
				return nil
			}
			return debug.Close()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "write a layout trace to this file")

	root.AddCommand(newRenderCmd(), newScenesCmd())
	return root
}
