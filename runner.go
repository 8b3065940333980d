package ageis

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shlokkku/Ageis-AI/internal/presentation"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Runner handles an interactive question loop over provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Identity string
	Headless bool
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner for the given identity.
// Input and Output must be set by the caller (use os.Stdin/os.Stdout).
func NewRunner(identity string) *Runner {
	return &Runner{Identity: identity}
}

// Run reads questions line by line until EOF or "exit", answering each
// through the pipeline.
func (r *Runner) Run(ctx context.Context, pipeline *Pipeline) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)

	if !r.Headless {
		fmt.Fprintln(r.Output, "Ask about your pension (exit to quit):")
	}

	for {
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		line, err := lineReader.ReadString('\n')
		question := strings.TrimSpace(line)
		if question == "exit" || question == "quit" {
			return nil
		}

		if question != "" {
			ans, askErr := pipeline.Ask(ctx, domain.Query{Text: question, Identity: r.Identity})
			if askErr != nil {
				fmt.Fprintf(r.Output, "error: %v\n", askErr)
			} else {
				r.print(presentation.FormatAnswer(ans))
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func (r *Runner) print(markdown string) {
	out := markdown
	if r.Renderer != nil {
		if rendered, err := r.Renderer(markdown); err == nil {
			out = rendered
		}
	}
	fmt.Fprintln(r.Output, out)
}
