package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"TradingHours/internal/di"
	"TradingHours/internal/usecase"
	"TradingHours/pkg/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		missingKey()
		os.Exit(1)
	}

	log, err := di.ProvideLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ logger: %v\n", err)
		os.Exit(1)
	}

	delivery, err := di.InitializeDelivery(cfg, log)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			missingKey()
		} else {
			fmt.Fprintf(os.Stderr, "❌ init: %v\n", err)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rule := strings.Repeat("=", 55)
	fmt.Println(rule)
	fmt.Println("📧 Sending Market Hours Emails")
	fmt.Println(rule)
	fmt.Println()

	sum, err := delivery.WithObserver(printOutcome).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Could not read %s: %v\n", cfg.Delivery.RosterPath, err)
		os.Exit(1)
	}
	if sum.Total == 0 {
		fmt.Printf("No users configured in %s\n", cfg.Delivery.RosterPath)
		return
	}

	fmt.Println(rule)
	fmt.Printf("Done! sent=%d skipped=%d failed=%d\n", sum.Sent, sum.Skipped, sum.Failed)
}

func printOutcome(o usecase.Outcome) {
	fmt.Printf("📤 %s (%s)...\n", o.Subscriber.Name, o.Subscriber.Email)
	switch o.Status {
	case usecase.StatusSent:
		fmt.Printf("   ✅ Sent! (ID: %s)\n", o.ID)
	case usecase.StatusSkipped:
		fmt.Printf("   ⏭️  Skipped (not send hour in %s)\n", o.Subscriber.Timezone)
	default:
		fmt.Printf("   ❌ Failed: %v\n", o.Err)
	}
	fmt.Println()
}

func missingKey() {
	fmt.Fprintln(os.Stderr, "❌ RESEND_API_KEY environment variable is required")
	fmt.Fprintln(os.Stderr, "\nTo get an API key:")
	fmt.Fprintln(os.Stderr, "1. Go to https://resend.com")
	fmt.Fprintln(os.Stderr, "2. Sign up for free")
	fmt.Fprintln(os.Stderr, "3. Create an API key")
	fmt.Fprintln(os.Stderr, "4. Export it as RESEND_API_KEY or put it in .env")
}
