package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grindlemire/centerstack"
	"github.com/grindlemire/centerstack/pkg/debug"
)

// Area used when neither flags nor the terminal give a size.
const (
	fallbackWidth  = 80
	fallbackHeight = 12
)

// Colour modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type renderOptions struct {
	width  int
	height int
	color  string
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:       "render [scene]",
		Short:     "Render a built-in scene",
		Long:      "Render a built-in scene. Without a scene name, renders hstack.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sceneNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultScene
			if len(args) > 0 {
				name = args[0]
			}
			return runRender(cmd.OutOrStdout(), name, opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 0, "area width in cells (default: terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "area height in cells (default: terminal height)")
	cmd.Flags().StringVar(&opts.color, "color", colorAuto, "colour output: auto, always or never")
	return cmd
}

// runRender lays out the named scene and writes it to out.
func runRender(out io.Writer, name string, opts renderOptions) error {
	s, ok := lookupScene(name)
	if !ok {
		return fmt.Errorf("unknown scene %q (run 'centerstack scenes' to list them)", name)
	}
	if opts.width < 0 || opts.height < 0 {
		return fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}

	colour, err := useColour(opts.color, out)
	if err != nil {
		return err
	}

	width, height := areaSize(out, opts)
	debug.Log("render: start", "scene", s.name, "width", width, "height", height, "color", colour)

	buf := centerstack.NewBuffer(width, height)
	root := centerstack.Layout(s.build(), width, height)
	centerstack.Render(buf, root)

	root.Walk(func(n *centerstack.Node) bool {
		if n.Name != "" {
			debug.Log("render: placed", "name", n.Name, "kind", n.Kind, "rect", n.Rect)
		}
		return true
	})

	text := buf.String()
	if colour {
		text = buf.Styled()
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// areaSize picks the render area: flags first, then the terminal behind out,
// then a fixed fallback.
func areaSize(out io.Writer, opts renderOptions) (int, int) {
	width, height := opts.width, opts.height
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th := fallbackWidth, fallbackHeight
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			// Leave the last row for the prompt
			tw, th = w, max(1, h-1)
		}
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}

// useColour resolves the --color mode and sets the lipgloss colour profile
// to match.
func useColour(mode string, out io.Writer) (bool, error) {
	switch mode {
	case colorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true, nil
	case colorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
		return false, nil
	case colorAuto, "":
		if isTerminal(out) {
			return true, nil
		}
		lipgloss.SetColorProfile(termenv.Ascii)
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color %q: want %s, %s or %s", mode, colorAuto, colorAlways, colorNever)
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
