package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type targetsResponse struct {
	Targets []types.TargetInfo `json:"targets"`
	Count   int                `json:"count"`
}

type attachResponse struct {
	Success bool             `json:"success"`
	Target  types.TargetInfo `json:"target"`
	Error   string           `json:"error"`
}

func runTargetsList(cmd *cobra.Command, args []string) {
	var resp targetsResponse
	get("/targets", nil, &resp)
	if jsonOutput {
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROCESS\tSTATE\tSESSION\tERROR")
	for _, t := range resp.Targets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Descriptor.Process, t.State, t.SessionID, t.Error)
	}
	w.Flush()
}

func runTargetsAttach(cmd *cobra.Command, args []string) {
	body := types.AttachRequest{
		Manufacturer: manufacturer,
		Model:        model,
		Process:      process,
		PID:          pid,
		StreamID:     streamID,
	}

	httpResp, err := newClient().R().SetBody(body).Post("/targets/attach")
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	if jsonOutput {
		fmt.Println(string(httpResp.Body()))
		return
	}

	var resp attachResponse
	if err := sonic.Unmarshal(httpResp.Body(), &resp); err != nil {
		log.Fatalf("Failed to decode response: %v", err)
	}

	switch httpResp.StatusCode() {
	case http.StatusOK:
		fmt.Printf("Attached: target=%s session=%s\n", resp.Target.ID, resp.Target.SessionID)
	case http.StatusAccepted:
		// Flow outlived the request; the handle stays retrievable
		fmt.Printf("Attach in progress: target=%s\n", resp.Target.ID)
		fmt.Printf("Check later with: inspectctl targets list\n")
	default:
		log.Fatalf("Attach failed (%s): %s", httpResp.Status(), resp.Error)
	}
}

func runTargetsDispose(cmd *cobra.Command, args []string) {
	httpResp, err := newClient().R().Delete("/targets/" + args[0])
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	handleResponse(httpResp, nil)
	if jsonOutput {
		return
	}

	fmt.Printf("Disposed target %s\n", args[0])
}
