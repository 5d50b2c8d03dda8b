// Package cli implements the botfileid command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"botfileid/internal/pkg/config"
	"botfileid/internal/pkg/logger"
	"botfileid/pkg/fileid"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	cfg     *config.Config
	log     *slog.Logger
	decoder *fileid.Decoder
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "botfileid",
		Short:         "Decode and encode Bot API file ids",
		Long:          `botfileid decodes Bot API file ids into their fields, encodes them back and maps them to MTProto download locations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", config.DefaultPath, "path to the yaml config")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.StringP("format", "f", "", "output format (json, text)")

	root.AddCommand(
		a.decodeCommand(),
		a.encodeCommand(),
		a.inspectCommand(),
		a.locationCommand(),
		versionCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.decoder = fileid.NewDecoder(log)
	return nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if a.cfg.Output.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "botfileid", Version)
		},
	}
}
