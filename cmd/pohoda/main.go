package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/valpere/pohoda/internal/app"
	"github.com/valpere/pohoda/internal/config"
	"github.com/valpere/pohoda/internal/version"
)

func main() {
	// Command-line flags
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	city := flag.String("city", "", "Look up one city, print the result and exit")
	once := flag.Bool("once", false, "Repeat the last search (or list quick picks) and exit")
	flag.Parse()

	// Handle version flag
	if *versionFlag {
		info := version.GetInfo()
		fmt.Println(info.String())
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create application context
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *city != "" || *once {
		if err := app.Lookup(ctx, cfg, *city, os.Stdout, os.Stderr); err != nil {
			stop()
			os.Exit(1)
		}
		return
	}

	log.Printf("Starting Pohoda v%s", version.Version)

	pohoda, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if err := pohoda.Start(ctx); err != nil {
		log.Printf("Pohoda failed: %v", err)
	}

	log.Println("Shutting down Pohoda...")
	if err := pohoda.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Pohoda stopped gracefully")
}
