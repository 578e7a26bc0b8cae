package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "fundq> "

// Run starts an interactive question loop on the assistant. Prompts given as
// arguments are consumed before reading from r; "bye" or EOF exits cleanly.
// Each question is answered end-to-end before the next is read. The render
// callback formats the answer for display (it may be nil for raw text).
func (a *Assistant) Run(ctx context.Context, w io.Writer, r io.Reader, render func(string) string, prompts ...string) error {
	if render == nil {
		render = func(s string) string { return s }
	}
	reader := bufio.NewReader(r)

	fmt.Fprintln(w, "Ask about fund holdings and trades. Type 'bye' to exit.")
	for {
		fmt.Fprint(w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
		}

		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Answer(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, render(answer))
	}
}
