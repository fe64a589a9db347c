package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"TradingHours/internal/di"
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

	builder, err := di.InitializeReportBuilder(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ init: %v\n", err)
		os.Exit(1)
	}

	rep, err := builder.Build(cfg.Report.Exchanges, cfg.Report.Timezone, time.Now(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ TIMEZONE %q: %v\n", cfg.Report.Timezone, err)
		os.Exit(1)
	}

	rule := strings.Repeat("=", 55)
	fmt.Println(rule)
	fmt.Print(rep.Text)
	fmt.Println(rule)
	fmt.Println("Supported: " + strings.Join(builder.Codes(), ", "))
}
