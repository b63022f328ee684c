// Command play runs one or more complete games and prints the driver's
// one-line-per-move log to stdout, grounded on cmd/train/main.go's
// flag-based CLI idiom.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/haziq21/monopoly-ai/monopoly"
)

var (
	players     = flag.Int("players", 2, "number of players")
	timeBudget  = flag.Duration("time-budget", 200*time.Millisecond, "per-move MCTS search budget for AI seats")
	temperature = flag.Float64("temperature", 0, "reserved: child-selection temperature for AI seats")
	games       = flag.Int("games", 1, "number of independent games to run concurrently")
	humanSeat   = flag.Int("human-seat", -1, "seat played by HumanAgent's stub, or -1 for none")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	if *players < 2 {
		log.Fatalf("play: -players must be at least 2, got %d", *players)
	}

	var wg sync.WaitGroup
	for g := 0; g < *games; g++ {
		wg.Add(1)
		go func(gameNum int) {
			defer wg.Done()
			if err := playOne(gameNum); err != nil {
				log.Printf("game %d: %v", gameNum, err)
			}
		}(g)
	}
	wg.Wait()
}

func playOne(gameNum int) error {
	engine, err := monopoly.New(*players)
	if err != nil {
		return err
	}

	agents := make([]monopoly.Agent, *players)
	for seat := range agents {
		switch seat {
		case *humanSeat:
			agents[seat] = monopoly.HumanAgent{}
		default:
			agents[seat] = &monopoly.AIAgent{Seat: seat, TimeBudget: *timeBudget, Temperature: *temperature}
		}
	}
	loser, err := engine.Play(agents)
	if err != nil {
		return err
	}

	fmt.Printf("=== game %d ===\n", gameNum)
	engine.Log(os.Stdout)
	fmt.Printf("game %d: seat %d lost\n", gameNum, loser)
	return nil
}
