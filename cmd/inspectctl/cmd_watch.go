package main

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

func runWatch(cmd *cobra.Command, args []string) {
	wsURL, err := streamURL(serverAddr)
	if err != nil {
		log.Fatalf("Invalid address %q: %v", serverAddr, err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", wsURL, err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(types.WSMessage{Type: "subscribe"}); err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
	}()

	fmt.Fprintln(os.Stderr, "Watching lifecycle events (Ctrl-C to stop)...")
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			log.Fatalf("Stream closed: %v", err)
		}
		if jsonOutput {
			fmt.Println(string(raw))
			continue
		}

		var event types.TransitionEvent
		if err := sonic.Unmarshal(raw, &event); err != nil {
			continue
		}
		printEvent(event)
	}
}

func printEvent(event types.TransitionEvent) {
	ts := time.Unix(event.Timestamp, 0).Format("15:04:05")
	switch {
	case event.Descriptor != nil:
		fmt.Printf("%s %-22s %s\n", ts, event.Type, event.Descriptor.String())
	case event.Target != nil:
		detail := event.Target.Descriptor.String()
		if event.Target.Error != "" {
			detail += " (" + event.Target.Error + ")"
		}
		fmt.Printf("%s %-22s target=%s %s\n", ts, event.Type, event.Target.ID, detail)
	default:
		fmt.Printf("%s %s\n", ts, event.Type)
	}
}

// streamURL converts the HTTP base URL into the WebSocket stream endpoint
func streamURL(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/stream"
	return u.String(), nil
}
