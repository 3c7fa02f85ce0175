package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegok/pypong/internal/app"
	"github.com/diegok/pypong/internal/config"
	"github.com/diegok/pypong/internal/game"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stderr)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := app.NewApp(cfg, log).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("1P- %d  2P- %d\n", result.LeftScore, result.RightScore)
	if result.GameOver {
		if result.Winner == game.SideLeft {
			fmt.Println("PLAYER 1 WINS.")
		} else {
			fmt.Println("PLAYER 2 WINS.")
		}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pypong [options]                 Run a headless match between two AI paddles")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --difficulty <easy|hard>  Right paddle (default: easy)")
	fmt.Fprintln(w, "  --left <easy|hard>        Left paddle (default: easy)")
	fmt.Fprintln(w, "  --points <n>              Points to win (default: 3)")
	fmt.Fprintln(w, "  --width <n>               Playfield width (default: 1280)")
	fmt.Fprintln(w, "  --height <n>              Playfield height (default: 720)")
	fmt.Fprintln(w, "  --step <seconds>          Simulation step (default: 1/60)")
	fmt.Fprintln(w, "  --max-ticks <n>           Tick limit, 0 for none (default: 36000)")
	fmt.Fprintln(w, "  --seed <n>                Serve seed, 0 for random")
	fmt.Fprintln(w, "  --speed-scaling=<bool>    Speed up on paddle hits (default: true)")
	fmt.Fprintln(w, "  --log-level <level>       debug, info, warn or error (default: info)")
	fmt.Fprintln(w, "  --config <file>           TOML file with any of the above")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pypong --difficulty hard")
	fmt.Fprintln(w, "  pypong --left hard --difficulty hard --points 5 --log-level debug")
}
