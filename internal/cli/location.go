package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"botfileid/internal/mtproto"
)

func (a *app) locationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "location <file_id>",
		Short: "Print the MTProto input file location of a file id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.decoder.Decode(args[0])
			if err != nil {
				return fmt.Errorf("decoding %q: %w", args[0], err)
			}
			loc, err := mtproto.Location(f)
			if err != nil {
				return err
			}

			if a.cfg.Output.Format == "json" {
				return a.writeJSON(cmd.OutOrStdout(), map[string]any{
					"type":     loc.TypeName(),
					"location": loc,
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%+v\n", loc.TypeName(), loc)
			return err
		},
	}
}
