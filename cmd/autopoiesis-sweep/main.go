package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"autopoiesis/internal/logx"
	"autopoiesis/internal/sims/autopoiesis"
)

type paramSet struct {
	decayRate float64
	catalysts int
	seed      int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("decay=%.4f catalysts=%d seed=%d", p.decayRate, p.catalysts, p.seed)
}

type scenarioResult struct {
	params paramSet
	err    error

	final           autopoiesis.Census
	peakLinks       int
	peakMembranes   int
	largestMembrane int
	longestChain    int
	firstMembraneAt uint64
}

func main() {
	steps := flag.Int("steps", 200000, "updates to simulate per scenario")
	sample := flag.Int("sample", 5000, "updates between census samples")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 60, "seed region width")
	height := flag.Int("h", 60, "seed region height")
	decays := flag.String("decay", "0.001,0.005,0.01,0.02", "comma-separated decay rates")
	catalysts := flag.String("catalysts", "1,2,4", "comma-separated catalyst counts")
	seeds := flag.Int("seeds", 3, "seeds per parameter pair")
	top := flag.Int("top", 10, "results to print")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger := logx.New(*logLevel)

	decayOptions, err := parseFloats(*decays)
	if err != nil {
		logger.Fatalf("decay: %v", err)
	}
	catalystOptions, err := parseInts(*catalysts)
	if err != nil {
		logger.Fatalf("catalysts: %v", err)
	}

	baseCfg := autopoiesis.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height

	sets := buildSets(decayOptions, catalystOptions, *seeds)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n", len(sets), *workers, *steps, *width, *height)

	start := time.Now()
	all := sweep(baseCfg, sets, *steps, *sample, *workers, logger)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range all {
		if res.err != nil {
			failed++
			logger.Errorf("%s: %v", res.params, res.err)
		}
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		if res.err != nil {
			continue
		}
		fmt.Printf("%2d) membranes=%d/%d peak largest=%d longestChain=%d firstMembrane=%d links=%d/%d peak bonds=%d %s\n",
			i+1, res.final.Membranes, res.peakMembranes, res.largestMembrane, res.longestChain, res.firstMembraneAt,
			res.final.Links, res.peakLinks, res.final.Bonds, res.params)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func buildSets(decays []float64, catalysts []int, seeds int) []paramSet {
	var sets []paramSet
	for _, d := range decays {
		for _, c := range catalysts {
			for s := 1; s <= seeds; s++ {
				sets = append(sets, paramSet{decayRate: d, catalysts: c, seed: int64(s)})
			}
		}
	}
	return sets
}

// sweep runs every scenario on a pool of workers and returns the results
// ranked by membrane formation.
func sweep(base autopoiesis.Config, sets []paramSet, steps, sample, workers int, log logx.Logger) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, steps, sample)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	all := make([]scenarioResult, 0, len(sets))
	for res := range results {
		if res.err == nil && res.firstMembraneAt > 0 {
			log.Infof("first membrane at update %d with %s", res.firstMembraneAt, res.params)
		}
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return ranksBefore(all[i], all[j]) })
	return all
}

func ranksBefore(a, b scenarioResult) bool {
	if (a.err == nil) != (b.err == nil) {
		return a.err == nil
	}
	if a.peakMembranes != b.peakMembranes {
		return a.peakMembranes > b.peakMembranes
	}
	if a.largestMembrane != b.largestMembrane {
		return a.largestMembrane > b.largestMembrane
	}
	if a.longestChain != b.longestChain {
		return a.longestChain > b.longestChain
	}
	return a.params.String() < b.params.String()
}

func runScenario(base autopoiesis.Config, params paramSet, steps, sample int) scenarioResult {
	res := scenarioResult{params: params}
	cfg := base
	cfg.Seed = params.seed
	cfg.Params.DecayRate = params.decayRate
	cfg.Params.Catalysts = params.catalysts

	u, err := autopoiesis.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	if sample <= 0 || sample > steps {
		sample = steps
	}
	for done := 0; done < steps; {
		n := min(sample, steps-done)
		u.Step(n)
		done += n

		c := u.Census()
		res.peakLinks = max(res.peakLinks, c.Links)
		res.peakMembranes = max(res.peakMembranes, c.Membranes)
		res.largestMembrane = max(res.largestMembrane, c.LargestMembrane)
		res.longestChain = max(res.longestChain, c.LongestChain)
		if c.Membranes > 0 && res.firstMembraneAt == 0 {
			res.firstMembraneAt = c.Tick
		}
	}
	res.final = u.Census()
	return res
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
