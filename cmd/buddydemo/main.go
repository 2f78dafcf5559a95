// Command buddydemo drives a buddy allocator from the command line: it
// allocates and frees a stream of pseudo-random sizes and prints a dump
// of the free lists before and after, the way the reference driver
// exercised the allocator with -iterations and -size flags.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/telvart/Buddy-Memory-Allocator/buddy"
)

func main() {
	minOrder := flag.Int("min-order", buddy.DefaultMinOrder, "log2 of the minimum block size")
	maxOrder := flag.Int("max-order", buddy.DefaultMaxOrder, "log2 of the arena size")
	iterations := flag.Int("iterations", 1000, "number of allocate/free cycles to run")
	maxSize := flag.Uint64("max-size", 0, "largest request size in bytes (0 = arena size)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *verbose {
		buddy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	a, err := buddy.New(*minOrder, *maxOrder)
	if err != nil {
		fmt.Fprintln(os.Stderr, "buddydemo:", err)
		os.Exit(1)
	}

	limit := *maxSize
	if limit == 0 || limit > a.ArenaSize() {
		limit = a.ArenaSize()
	}

	rng := rand.New(rand.NewSource(*seed))
	var live []uint64
	var allocs, frees, failures int

	fmt.Println("initial:", a.DumpString())

	for i := 0; i < *iterations; i++ {
		if len(live) > 0 && rng.Intn(2) == 0 {
			idx := rng.Intn(len(live))
			addr := live[idx]
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			if err := a.Free(addr); err != nil {
				fmt.Fprintln(os.Stderr, "buddydemo: free:", err)
				continue
			}
			frees++
			continue
		}

		size := uint64(rng.Int63n(int64(limit))) + 1
		addr, err := a.Allocate(size)
		if err != nil {
			failures++
			continue
		}
		allocs++
		live = append(live, addr)
	}

	for _, addr := range live {
		if err := a.Free(addr); err != nil {
			fmt.Fprintln(os.Stderr, "buddydemo: cleanup free:", err)
		}
	}

	fmt.Printf("allocs=%d frees=%d failures=%d\n", allocs, frees, failures)
	fmt.Println("final:  ", a.DumpString())
}
