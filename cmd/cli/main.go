// Command cli drives a send session from the terminal: an in-process
// stand-in for the mobile UI, useful for poking at the state engine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/robj/ethsend/infra/initializer"
	"github.com/robj/ethsend/pkg/config"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/send"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize:", err)
		os.Exit(1)
	}
	session := deps.Session

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session.Initialize(ctx)
	session.StartGasFeePolling(ctx)
	defer session.StopGasFeePolling()

	printSnapshot(session.Current())
	fmt.Println("Commands: value <amount> <fiat|eth>, flip <fiat|eth>, currency <code> <price>, gas, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "value":
			if len(fields) < 3 {
				fmt.Println("Usage: value <amount> <fiat|eth>")
				continue
			}
			amount, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				fmt.Println("Invalid amount:", err)
				continue
			}
			session.OnValueChange(amount, fields[2] == "fiat")
		case "flip":
			if len(fields) < 2 {
				fmt.Println("Usage: flip <fiat|eth>")
				continue
			}
			prev, ok := session.Current().(send.Ready)
			if !ok {
				color.Red("Session is not ready yet")
				continue
			}
			session.Flip(prev, fields[1] == "fiat")
		case "currency":
			if len(fields) < 3 {
				fmt.Println("Usage: currency <code> <price>")
				continue
			}
			cur, ok := currency.FromCode(fields[1])
			if !ok {
				color.Red("Unsupported currency: %s", fields[1])
				continue
			}
			price, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Println("Invalid price:", err)
				continue
			}
			prev, _ := session.Current().(send.Ready)
			session.ChangeCurrency(cur, price, prev.FiatValue, true)
		case "gas":
			if fee, ok := session.FeeEstimate(); ok {
				fmt.Printf("Network fee estimate: %f ETH\n", fee)
			} else {
				fmt.Println("No gas fee received yet")
			}
			continue
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command:", fields[0])
			continue
		}
		printSnapshot(session.Current())
	}
}

func printSnapshot(snap send.Snapshot) {
	switch s := snap.(type) {
	case send.Loading:
		fmt.Println("Loading...")
	case send.Failed:
		color.Red(s.Message)
	case send.Ready:
		fmt.Printf("%s %s  ->  %s\n", s.InputSymbol, s.InputText, s.ConversionText)
		if s.ExceededBalance {
			color.Red("Exceeds available balance")
		}
		if s.ReadyToSend {
			color.Green("Ready to send")
		}
	}
}
