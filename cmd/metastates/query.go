package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metastates/intv"
)

var errQueryMode = errors.New("query needs either --bounds or --starts with --stops")

type queryFlags struct {
	bounds []int
	starts []int
	stops  []int
	events []int
}

func newQueryCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Locate event timestamps in covering or explicit intervals",
		Long: "With --bounds, print the covering interval index of each event " +
			"(0 before the first bound, len(bounds) after the last). With " +
			"--starts and --stops, print the index of the interval holding " +
			"each event, or -1.",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.query(q)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&q.bounds, "bounds", nil, "sorted boundary timestamps")
	f.IntSliceVar(&q.starts, "starts", nil, "sorted interval starts")
	f.IntSliceVar(&q.stops, "stops", nil, "sorted interval stops")
	f.IntSliceVar(&q.events, "events", nil, "event timestamps")
	cmd.MarkFlagsMutuallyExclusive("bounds", "starts")
	cmd.MarkFlagsRequiredTogether("starts", "stops")
	return cmd
}

func (a *app) query(q queryFlags) error {
	var (
		idx []int
		err error
	)
	switch {
	case len(q.bounds) > 0:
		idx, err = intv.QueryCovering(q.bounds, q.events)
	case len(q.starts) > 0:
		idx, err = intv.QueryExplicit(q.starts, q.stops, q.events)
	default:
		return errQueryMode
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "event\tinterval")
	for i, e := range q.events {
		fmt.Fprintf(a.out, "%d\t%d\n", e, idx[i])
	}
	return nil
}
