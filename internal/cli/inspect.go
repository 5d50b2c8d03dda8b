package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"botfileid/internal/media"
	"botfileid/pkg/fileid"
)

type inspected struct {
	Kind         string  `json:"kind"`
	Name         string  `json:"name"`
	Size         uint64  `json:"size,omitempty"`
	FileID       string  `json:"file_id"`
	FileUniqueID string  `json:"file_unique_id,omitempty"`
	Decoded      *record `json:"decoded,omitempty"`
	Error        string  `json:"error,omitempty"`

	file *fileid.FileID
}

func (a *app) inspectCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode every file id on a Bot API update or message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			messages, err := media.ParseMessages(data)
			if err != nil {
				return err
			}

			var out []inspected
			for _, m := range messages {
				for _, res := range media.Inspect(a.decoder, m) {
					item := inspected{
						Kind:         res.File.Kind,
						Name:         res.File.Name,
						Size:         res.File.Size,
						FileID:       res.File.FileID,
						FileUniqueID: res.File.FileUniqueID,
					}
					if res.Err != nil {
						a.log.Warn("skipping file", "name", res.File.Name, "error", res.Err)
						item.Error = res.Err.Error()
					} else {
						r := toRecord(*res.Decoded)
						item.Decoded = &r
						item.file = res.Decoded
					}
					out = append(out, item)
				}
			}

			if a.cfg.Output.Format == "json" {
				return a.writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			for _, item := range out {
				fmt.Fprintf(w, "%s %s (%s)\n", item.Kind, item.Name, item.FileID)
				if item.Error != "" {
					fmt.Fprintf(w, "  error: %s\n\n", item.Error)
					continue
				}
				if err := writeText(w, *item.file); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "read the update from this file instead of stdin")
	return cmd
}
