package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"botfileid/pkg/fileid"
)

func (a *app) encodeCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a JSON file id record read from --file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			var r record
			if err := json.Unmarshal(data, &r); err != nil {
				return fmt.Errorf("parsing record: %w", err)
			}
			f, err := r.fileID()
			if err != nil {
				return err
			}
			s, err := fileid.Encode(f)
			if err != nil {
				return fmt.Errorf("encoding: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "read the record from this file instead of stdin")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
