package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
)

func main() {
	size := flag.Int("size", 144, "side length of the live grid")
	steps := flag.Int("steps", 200, "generations per run")
	seeds := flag.Int("seeds", 3, "random populations to compare")
	maxWorkers := flag.Int("max-workers", 144, "largest worker count to try")
	parallel := flag.Int("parallel", runtime.NumCPU(), "runs evaluated at the same time")
	flag.Parse()

	plan := Plan{Size: *size, Steps: *steps, Seeds: *seeds, MaxWorkers: *maxWorkers, Parallel: *parallel}
	fmt.Printf("Sweeping %d worker counts x %d seeds (%dx%d grid, %d steps)\n",
		len(plan.WorkerCounts()), plan.Seeds, plan.Size, plan.Size, plan.Steps)

	results, err := Sweep(context.Background(), plan)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "seed\tworkers\tchunk\telapsed\tpopulation\tfingerprint")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%d\t%016x\n", r.Seed, r.Workers, r.ChunkSize, r.Elapsed, r.Population, r.Fingerprint)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("All worker counts produced identical grids.")
}
