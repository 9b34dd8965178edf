package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type launchesResponse struct {
	Launches []types.LaunchInfo `json:"launches"`
	Count    int                `json:"count"`
}

type launchCreateResponse struct {
	Success bool             `json:"success"`
	Launch  types.LaunchInfo `json:"launch"`
}

func runLaunchesList(cmd *cobra.Command, args []string) {
	var resp launchesResponse
	get("/launches", nil, &resp)
	if jsonOutput {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROCESS\tMANUFACTURER\tMODEL\tPAYLOAD\tSOURCE\tREGISTERED")
	for _, l := range resp.Launches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Process, l.Manufacturer, l.Model, l.Payload, l.Source,
			l.RegisteredAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()
}

func runLaunchesAdd(cmd *cobra.Command, args []string) {
	body := types.LaunchRequest{
		Manufacturer: manufacturer,
		Model:        model,
		Process:      process,
		Payload:      payloadRef,
	}

	httpResp, err := newClient().R().SetBody(body).Post("/launches")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	var resp launchCreateResponse
	handleResponse(httpResp, &resp)
	if jsonOutput {
		return
	}

	fmt.Printf("Registered launch %s for %s/%s/%s\n",
		resp.Launch.ID, manufacturer, model, process)
}

func runLaunchesRemove(cmd *cobra.Command, args []string) {
	httpResp, err := newClient().R().
		SetQueryParams(map[string]string{
			"manufacturer": manufacturer,
			"model":        model,
			"process":      process,
		}).
		Delete("/launches")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	handleResponse(httpResp, nil)
	if jsonOutput {
		return
	}

	fmt.Printf("Removed launch for %s/%s/%s\n", manufacturer, model, process)
}
