package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metastates/labelio"
	"github.com/katalvlaran/metastates/rle"
)

var errNegativeOffset = errors.New("offset must be >= 0")

func newEncodeCmd(a *app) *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the run-length intervals of the input label file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("offset") {
				a.cfg.Offset = offset
			}
			return a.encode()
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "added to every interval boundary")
	return cmd
}

func (a *app) encode() error {
	labels, err := a.loadLabels()
	if err != nil {
		return err
	}
	if a.cfg.Offset < 0 {
		return errNegativeOffset
	}

	ivs, err := rle.Encode(labels, rle.WithOffset(a.cfg.Offset))
	if err != nil {
		return err
	}
	segs, err := rle.Annotate(ivs, a.cfg.SampleRate)
	if err != nil {
		return err
	}
	a.logger.Info("encoded", slog.Int("samples", len(labels)), slog.Int("intervals", len(ivs)))

	return labelio.WriteSegments(a.out, segs, -a.cfg.Shift)
}
