package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FuandB/vn-numtext/internal/reading"
)

func newOrdinalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <number>",
		Short: "Read a positive integer as a Vietnamese ordinal",
		Long: `Prints the ordinal form: 1 is "thứ nhất", 4 is "thứ tư",
any other positive n is "thứ" followed by its cardinal reading.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.svc.Ordinal(args[0])
			if err != nil && !reading.IsUserError(err) {
				return err
			}

			p := newPrinter(a.output, cmd.OutOrStdout(), cmd.ErrOrStderr(), resultText)
			if perr := p.print(res, err); perr != nil {
				return perr
			}
			if cerr := p.close(); cerr != nil {
				return cerr
			}
			if err != nil {
				a.log.Debug("ordinal failed", zap.String("input", args[0]), zap.Error(err))
				return errReported
			}
			return nil
		},
	}
}
