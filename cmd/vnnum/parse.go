package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FuandB/vn-numtext/internal/reading"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <words...>",
		Short: "Convert Vietnamese number text back to an integer",
		Long: `Joins the arguments and parses them as a Vietnamese cardinal number.
Diacritics are optional: "hai mươi mốt" and "hai muoi mot" both give 21.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			res, err := a.svc.Parse(text)
			if err != nil && !reading.IsUserError(err) {
				return err
			}

			p := newPrinter(a.output, cmd.OutOrStdout(), cmd.ErrOrStderr(), resultValue)
			if perr := p.print(res, err); perr != nil {
				return perr
			}
			if cerr := p.close(); cerr != nil {
				return cerr
			}
			if err != nil {
				a.log.Debug("parse failed", zap.String("text", text), zap.Error(err))
				return errReported
			}
			return nil
		},
	}
}
