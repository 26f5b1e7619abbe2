// Command platon serves the editor engine's procedural surface (spec
// §6) over a JSON-RPC WebSocket endpoint, grounded on the teacher's
// main.go: flag-based configuration and a signal.NotifyContext
// shutdown, trimmed of the TUI/MCP/custom-web-UI flags this repository
// has no counterpart for.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/eyelash/platon-core/api"
	"github.com/eyelash/platon-core/theme"
)

func themeByName(name string) (*theme.Theme, error) {
	switch name {
	case "default":
		return theme.Default(), nil
	case "monokai":
		return theme.Monokai(), nil
	case "one_dark", "onedark":
		return theme.OneDark(), nil
	default:
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
}

func main() {
	addr := flag.String("addr", ":8787", "address to serve the JSON-RPC WebSocket endpoint on")
	themeName := flag.String("theme", "one_dark", "theme name (default, monokai, one_dark)")
	flag.Parse()

	t, err := themeByName(*themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "platon: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	handles := api.NewHandles()
	srv := api.NewServer(handles, t)
	server := &http.Server{Addr: *addr, Handler: srv}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Printf("platon: serving JSON-RPC over WebSocket on %s\n", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "platon: %v\n", err)
		os.Exit(1)
	}
}
