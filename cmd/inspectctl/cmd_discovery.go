package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type healthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Components struct {
		Discovery types.DiscoveryStats `json:"discovery"`
		Targets   types.TargetStats    `json:"targets"`
		Journal   *types.JournalStats  `json:"journal"`
	} `json:"components"`
}

type streamsResponse struct {
	Streams []types.Stream `json:"streams"`
	Count   int            `json:"count"`
}

type processesResponse struct {
	Inspectable []types.ProcessDescriptor `json:"inspectable"`
	Live        []types.ProcessDescriptor `json:"live"`
	Count       int                       `json:"count"`
}

func runStatus(cmd *cobra.Command, args []string) {
	var resp healthResponse
	get("/health", nil, &resp)
	if jsonOutput {
		return
	}

	fmt.Printf("%s: %s\n", resp.Service, resp.Status)
	d := resp.Components.Discovery
	fmt.Printf("  streams=%d live=%d launched=%d inspectable=%d\n",
		d.Streams, d.Live, d.Launched, d.Inspectable)
	t := resp.Components.Targets
	fmt.Printf("  targets: pending=%d attached=%d failed=%d\n",
		t.Pending, t.Attached, t.Failed)
	if j := resp.Components.Journal; j != nil {
		fmt.Printf("  journal: entries=%d\n", j.Entries)
	}
}

func runStreams(cmd *cobra.Command, args []string) {
	var resp streamsResponse
	get("/streams", nil, &resp)
	if jsonOutput {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMANUFACTURER\tMODEL\tSERIAL\tCONNECTED")
	for _, s := range resp.Streams {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			s.ID, s.Manufacturer, s.Model, s.Serial,
			s.ConnectedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
}

func runProcesses(cmd *cobra.Command, args []string) {
	query := map[string]string{}
	if all, _ := cmd.Flags().GetBool("all"); all {
		query["all"] = "true"
	}

	var resp processesResponse
	get("/processes", query, &resp)
	if jsonOutput {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROCESS\tMANUFACTURER\tMODEL\tPID\tSTREAM\tINSPECTABLE")
	for _, p := range resp.Inspectable {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\tyes\n",
			p.Process, p.Manufacturer, p.Model, p.PID, p.StreamID)
	}
	inspectable := make(map[types.ProcessDescriptor]struct{}, len(resp.Inspectable))
	for _, p := range resp.Inspectable {
		inspectable[p] = struct{}{}
	}
	for _, p := range resp.Live {
		if _, ok := inspectable[p]; ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\tno\n",
			p.Process, p.Manufacturer, p.Model, p.PID, p.StreamID)
	}
	w.Flush()
}
