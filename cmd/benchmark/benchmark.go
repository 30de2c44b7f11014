package main

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	cache "github.com/elias19r/thread-cache"
	"github.com/elias19r/thread-cache/engine"
	"github.com/elias19r/thread-cache/expiration"
)

// ================= BENCHMARK =================

func main() {
	fmt.Println("\n================ SCOPED CACHE LOAD BENCHMARK =================")

	// ---------------- Config ----------------
	const (
		goroutines  = 200
		preloadKeys = 10000
		opsPerG     = 50000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	fmt.Println("Running isolated-scope benchmark...")

	start := time.Now()

	// Every goroutine owns its own cache, so this measures raw
	// single-owner throughput multiplied by parallelism. There is no
	// contention to find here.
	g := new(errgroup.Group)
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			eng := engine.New(
				&expiration.ExpireAfterWrite{DefaultTTL: 60 * time.Second},
				nil,
			)
			c := cache.New(eng, nil)

			for j := 0; j < preloadKeys; j++ {
				c.Write(fmt.Sprintf("key-%d", j), j, nil)
			}
			for j := 0; j < opsPerG; j++ {
				c.Read(fmt.Sprintf("key-%d", j%preloadKeys), nil)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("benchmark failed:", err)
		return
	}

	duration := time.Since(start)
	totalOps := goroutines * (preloadKeys + opsPerG)

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Println("=========================================")
}
