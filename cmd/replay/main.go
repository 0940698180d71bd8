package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"pong/internal/match"
	"pong/internal/replay"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: replay <replay_file>")
		os.Exit(1)
	}
	path := os.Args[1]

	rec, err := replay.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replaying %s...\n", path)
	start := time.Now()
	sum := replay.Run(rec)
	report(os.Stdout, rec, sum, time.Since(start))
}

// report prints the outcome of a re-simulated recording.
func report(w io.Writer, rec *replay.Recording, sum replay.Summary, elapsed time.Duration) {
	fmt.Fprintf(w, "Session: %s\n", rec.SessionID)
	fmt.Fprintf(w, "Recorded: %s\n", time.UnixMilli(rec.Created).UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Seed: %d\n", rec.Seed)
	fmt.Fprintf(w, "Frames: %d of %d (%.1f s of play)\n", sum.Frames, len(rec.Frames), sum.Played/1000)
	fmt.Fprintf(w, "Bounces: %d\n", sum.Bounces)
	fmt.Fprintf(w, "Points: %d - %d\n", sum.Points[0], sum.Points[1])
	fmt.Fprintf(w, "Matches won: P1 %d, P2 %d\n", sum.Wins[0], sum.Wins[1])
	fmt.Fprintf(w, "Final: %s, score %d - %d", sum.Final.Phase, sum.Final.Score[0], sum.Final.Score[1])
	if sum.Final.Phase == match.GameOver {
		fmt.Fprintf(w, ", Player %d wins", sum.Final.Winner)
	}
	fmt.Fprintln(w)
	if sum.Quit {
		fmt.Fprintln(w, "Session ended by quit")
	}
	fmt.Fprintf(w, "Re-simulated in %v\n", elapsed)
}
