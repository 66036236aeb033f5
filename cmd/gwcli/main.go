package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"gridwarden.com/gwd"
	patrol "gridwarden.com/gwd/patrol/engine"
	"gridwarden.com/gwd/pkg/primitives"
)

func main() {

	inputPath := flag.String("input", "", "Path to a patrol map file")
	loadMapFromCloud := flag.Bool("cloud", false, "Load the patrol map from cloud")
	scope := flag.String("scope", "regular", "The name of the cloud map to load")
	workers := flag.Int("workers", runtime.NumCPU(), "The number of search workers")
	sweep := flag.Bool("sweep", false, "Run the search once per worker count from 1 to -workers")
	trace := flag.Bool("trace", false, "Print the visited route over the map")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the search")

	flag.Parse()

	if *inputPath != "" && *loadMapFromCloud {
		fmt.Println("Cannot use both -input and -cloud")
		os.Exit(1)
	}
	if *inputPath == "" && !*loadMapFromCloud {
		fmt.Println("One of -input or -cloud is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var grid *primitives.Grid
	var err error
	if *loadMapFromCloud {
		fmt.Println("Loading map from cloud...")
		grid, err = gwd.LoadGridFromCloud(ctx, *scope)
	} else {
		grid, err = gwd.ReadGridFile(*inputPath)
	}
	if err != nil {
		fmt.Println("Error loading map:", err)
		os.Exit(1)
	}
	fmt.Printf("Map: %dx%d, start %s\n", grid.Rows(), grid.Cols(), grid.Start())

	visited := patrol.VisitedCells(grid)
	fmt.Println("part1", visited.Count())

	if *trace {
		route := &primitives.Route{Grid: grid, Cells: visited}
		fmt.Println("--------------------------------")
		fmt.Println(route)
		fmt.Println("--------------------------------")
	}

	candidates := patrol.Candidates(grid, visited)

	counts := []int{*workers}
	if *sweep {
		counts = counts[:0]
		for n := 1; n <= *workers; n++ {
			counts = append(counts, n)
		}
	}

	for _, n := range counts {
		begin := time.Now()
		loops, err := patrol.RunSearch(ctx, grid, candidates, n)
		if err != nil {
			fmt.Println("Error running search:", err)
			os.Exit(1)
		}
		fmt.Printf("part2 %d (workers=%d, %s)\n", loops, n, time.Since(begin).Round(time.Millisecond))
	}

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}
