// Command dullahan-client is a thin debug CLI that dials a Dullahan
// server, renders one pane's delta-synced viewport to the terminal as
// plain text, and exits — a manual-inspection tool for the core
// library, not the browser client itself.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raymond-w-ko/dullahan-sub003/internal/render"
	"github.com/raymond-w-ko/dullahan-sub003/internal/session"
	"github.com/raymond-w-ko/dullahan-sub003/pkg/dullahan"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		serverURL string
		paneID    string
		once      bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "dullahan-client",
		Short: "Dial a Dullahan server and dump a pane's rendered viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, serverURL, paneID, once, debug)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&serverURL, "server", "ws://127.0.0.1:4000/ws", "server WebSocket URL")
	flags.StringVar(&paneID, "pane", "", "pane ID to dump (defaults to the first snapshot received)")
	flags.BoolVar(&once, "once", true, "exit after the first rendered frame")
	flags.BoolVar(&debug, "debug", false, "enable verbose logging")

	return cmd
}

// runDump dials the server, waits for the first render frame (or the
// requested pane's first frame, if --pane was given), dumps it to
// stdout, and exits unless --once=false was passed.
func runDump(cmd *cobra.Command, serverURL, paneID string, once, debug bool) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	storage := session.NewMemorySessionStorage()
	clientID := session.LoadOrCreateClientID(storage)

	cfg := session.DefaultConfig(serverURL)
	cfg.Debug = debug
	core := dullahan.New(cfg, clientID)

	frames := make(chan dullahan.RenderEvent, 8)
	unsubSnap := core.Subscribe(dullahan.EventSnapshot, func(payload any) {
		ev := payload.(dullahan.RenderEvent)
		if paneID == "" || ev.PaneID == paneID {
			select {
			case frames <- ev:
			default:
			}
		}
	})
	defer unsubSnap()

	if err := core.Connect(ctx); err != nil {
		return fmt.Errorf("dullahan-client: %w", err)
	}
	defer core.Disconnect()

	select {
	case ev := <-frames:
		dumpLines(os.Stdout, ev.Lines)
	case <-time.After(10 * time.Second):
		return fmt.Errorf("dullahan-client: timed out waiting for a snapshot")
	case <-ctx.Done():
		return ctx.Err()
	}

	if once {
		return nil
	}
	<-ctx.Done()
	return nil
}

// dumpLines writes one rendered frame as plain text, one terminal row
// per line, discarding style information (a debug aid, not a terminal
// emulator).
func dumpLines(w *os.File, lines []render.Line) {
	for _, line := range lines {
		var row []rune
		for _, seg := range line.Segments {
			row = append(row, []rune(seg.Text)...)
		}
		fmt.Fprintln(w, string(row))
	}
}
