package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
)

// terminalPrompter asks for exclusions on stdin. Numbers pick candidates;
// "c" or end of input cancels.
type terminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalPrompter(in io.Reader, out io.Writer) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) PromptExclusions(ctx context.Context, req *metamagic.ExclusionRequest) ([]string, bool, error) {
	fmt.Fprintln(p.out, req.Prompt)
	for i, c := range req.Candidates {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c.Label)
	}
	fmt.Fprintf(p.out, "  c) %s\n> ", req.CancelLabel)

	if err := ctx.Err(); err != nil {
		return nil, true, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return nil, true, nil
	}
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "c") {
		return nil, true, nil
	}

	var excluded []string
	for _, field := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(req.Candidates) {
			fmt.Fprintf(p.out, "ignoring %q\n", field)
			continue
		}
		excluded = append(excluded, req.Candidates[n-1].ID)
	}
	return excluded, false, nil
}
