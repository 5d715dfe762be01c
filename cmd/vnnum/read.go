package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/FuandB/vn-numtext/internal/reading"
)

const prompt = "Số cần đọc: "

func newReadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read [number...]",
		Short: "Read integers as Vietnamese cardinal text",
		Long: `Reads each argument as an integer and prints its Vietnamese reading.

Signs, spaces, dots and commas are accepted: "-1 234", "1.000.000".
Without arguments, numbers are read from stdin: interactively when stdin
is a terminal, otherwise one reading per input line in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.readArgs(cmd, args)
			}
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				return a.readInteractive(in, cmd.OutOrStdout())
			}
			return a.readBatch(in, cmd.OutOrStdout())
		},
	}
}

// readArgs reads each argument in order. Any invalid argument makes the
// command fail after all arguments are printed.
func (a *app) readArgs(cmd *cobra.Command, args []string) error {
	p := newPrinter(a.output, cmd.OutOrStdout(), cmd.ErrOrStderr(), resultText)
	failed := 0
	for _, arg := range args {
		res, err := a.svc.Cardinal(arg)
		if err != nil {
			if !reading.IsUserError(err) {
				return err
			}
			a.log.Debug("invalid input", zap.String("input", arg), zap.Error(err))
			failed++
		}
		if perr := p.print(res, err); perr != nil {
			return perr
		}
	}
	if err := p.close(); err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

// readBatch reads every line of in with a bounded worker pool and prints
// one result per line in input order. Invalid lines do not fail the batch.
func (a *app) readBatch(in io.Reader, out io.Writer) error {
	lines, err := readLines(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	start := time.Now()
	type outcome struct {
		res reading.Result
		err error
	}
	results := make([]outcome, len(lines))

	var g errgroup.Group
	g.SetLimit(a.cfg.CLI.Workers)
	for i, line := range lines {
		g.Go(func() error {
			res, err := a.svc.Cardinal(line)
			if err != nil && !reading.IsUserError(err) {
				return err
			}
			results[i] = outcome{res: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Errors go to out as well so output lines stay aligned with input lines.
	p := newPrinter(a.output, out, out, resultText)
	failed := 0
	for _, o := range results {
		if o.err != nil {
			failed++
		}
		if err := p.print(o.res, o.err); err != nil {
			return err
		}
	}
	if err := p.close(); err != nil {
		return err
	}

	a.log.Debug("batch done",
		zap.Int("lines", len(lines)),
		zap.Int("invalid", failed),
		zap.Int("workers", a.cfg.CLI.Workers),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// readInteractive prompts for numbers until EOF. Blank lines are skipped.
func (a *app) readInteractive(in io.Reader, out io.Writer) error {
	r := lipgloss.NewRenderer(out)
	promptStyle := r.NewStyle().Bold(true)
	labelStyle := r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle := r.NewStyle().Foreground(lipgloss.Color("1"))

	p := newPrinter(a.output, out, out, resultText)
	br := bufio.NewReader(in)
	for {
		fmt.Fprint(out, promptStyle.Render(prompt))

		line, rerr := br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(line) != "" {
			res, err := a.svc.Cardinal(line)
			switch {
			case err != nil && !reading.IsUserError(err):
				return err
			case a.output != formatText:
				if perr := p.print(res, err); perr != nil {
					return perr
				}
			case err != nil:
				fmt.Fprintln(out, errStyle.Render(reading.Message(err)))
			default:
				fmt.Fprintln(out, labelStyle.Render("Kết quả:")+" "+res.Text)
			}
		}

		if errors.Is(rerr, io.EOF) {
			fmt.Fprintln(out)
			return p.close()
		}
		if rerr != nil {
			return fmt.Errorf("read stdin: %w", rerr)
		}
	}
}

// readLines splits in into lines without a line length limit.
func readLines(in io.Reader) ([]string, error) {
	br := bufio.NewReader(in)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
