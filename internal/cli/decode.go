package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"botfileid/pkg/fileid"
)

func (a *app) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file_id>...",
		Short: "Decode file ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				f, err := a.decoder.Decode(s)
				if err != nil {
					return fmt.Errorf("decoding %q: %w", s, err)
				}
				a.log.Debug("decoded file id", "type", f.Type, "dc_id", f.DCID)
				if err := a.printFileID(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) printFileID(w io.Writer, f fileid.FileID) error {
	if a.cfg.Output.Format == "json" {
		return a.writeJSON(w, toRecord(f))
	}
	return writeText(w, f)
}

func writeText(w io.Writer, f fileid.FileID) error {
	p := &textPrinter{w: w}
	p.line("type", f.Type)
	p.line("dc_id", f.DCID)
	if f.ID != nil {
		p.line("id", *f.ID)
	}
	p.line("access_hash", f.AccessHash)
	if f.URL != nil {
		p.line("url", *f.URL)
	}
	if f.FileReference != nil {
		p.line("file_reference", fmt.Sprintf("%x", f.FileReference))
	}
	if f.PhotoSizeSource != nil {
		kind, _ := f.PhotoSizeSource.SourceType(f.VolumeID != nil && f.SubVersion >= 32)
		p.line("photo_size_source", kind)
		p.line("source", fmt.Sprintf("%+v", f.PhotoSizeSource))
	}
	if f.VolumeID != nil {
		p.line("volume_id", *f.VolumeID)
	}
	if f.LocalID != nil {
		p.line("local_id", *f.LocalID)
	}
	p.line("version", fmt.Sprintf("%d.%d", f.Version, f.SubVersion))
	_, err := fmt.Fprintln(w)
	if p.err != nil {
		return p.err
	}
	return err
}

type textPrinter struct {
	w   io.Writer
	err error
}

func (p *textPrinter) line(key string, value any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%-18s %v\n", key+":", value)
}
