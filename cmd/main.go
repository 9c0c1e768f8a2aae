package main

import (
	"fmt"
	"os"

	"github.com/kestrelpoint/funddesk-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.Log.Info("Starting HTTP server", "addr", application.Cfg.HTTPAddr)
	if err := application.Run(application.Cfg.HTTPAddr); err != nil {
		application.Log.Fatal("HTTP server exited", "error", err)
	}
}
