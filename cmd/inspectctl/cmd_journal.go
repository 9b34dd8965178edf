package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type journalResponse struct {
	Entries []types.JournalEntry `json:"entries"`
	Count   int                  `json:"count"`
}

func runJournal(cmd *cobra.Command, args []string) {
	query := map[string]string{
		"limit": strconv.Itoa(journalLimit),
	}
	if journalProcess != "" {
		query["process"] = journalProcess
	}

	var resp journalResponse
	get("/journal", query, &resp)
	if jsonOutput {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tPROCESS\tDETAIL")
	for _, e := range resp.Entries {
		proc := ""
		if e.Descriptor != nil {
			proc = e.Descriptor.Process
		} else if e.Target != nil {
			proc = e.Target.Descriptor.Process
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Type, proc, e.Detail)
	}
	w.Flush()
}
