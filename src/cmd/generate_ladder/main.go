package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/options-trainer/src/ladder"
	"github.com/jiaming2012/options-trainer/src/models"
)

type RunArgs struct {
	NumStrikes int
	Count      int
	Seed       int64
	CsvPath    string
	Benchmark  bool
	Iterations int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/generate_ladder/main.go --num-strikes 5 --count 2",
	Short: "Generate no-arbitrage options ladders, print them, and optionally export csv or benchmark generation",
	Run: func(cmd *cobra.Command, args []string) {
		numStrikes, err := cmd.Flags().GetInt("num-strikes")
		if err != nil {
			log.Fatalf("error getting num-strikes: %v", err)
		}

		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			log.Fatalf("error getting count: %v", err)
		}

		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			log.Fatalf("error getting seed: %v", err)
		}

		csvPath, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		benchmark, err := cmd.Flags().GetBool("benchmark")
		if err != nil {
			log.Fatalf("error getting benchmark: %v", err)
		}

		iterations, err := cmd.Flags().GetInt("iterations")
		if err != nil {
			log.Fatalf("error getting iterations: %v", err)
		}

		if err := Run(RunArgs{
			NumStrikes: numStrikes,
			Count:      count,
			Seed:       seed,
			CsvPath:    csvPath,
			Benchmark:  benchmark,
			Iterations: iterations,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	generator := ladder.NewGenerator(rng)

	if args.Benchmark {
		return runBenchmark(generator, args.NumStrikes, args.Iterations)
	}

	var records []*models.LadderRecordDTO

	for i := 0; i < args.Count; i++ {
		params, l, err := generator.Generate(args.NumStrikes)
		if err != nil {
			return fmt.Errorf("Run: generate: %w", err)
		}

		fmt.Println(l.Render(params))

		if args.CsvPath != "" {
			records = append(records, models.NewLadderRecordDTOs(uuid.NewString(), params, l)...)
		}
	}

	if args.CsvPath != "" {
		outFile, err := os.Create(args.CsvPath)
		if err != nil {
			return fmt.Errorf("Run: create %s: %v", args.CsvPath, err)
		}
		defer outFile.Close()

		if err := gocsv.MarshalFile(&records, outFile); err != nil {
			return fmt.Errorf("Run: marshal csv: %v", err)
		}

		log.Infof("Wrote %d rows to %s", len(records), args.CsvPath)
	}

	return nil
}

// runBenchmark times repeated generation and summarizes latency and parity
// error across iterations.
func runBenchmark(generator *ladder.Generator, numStrikes, iterations int) error {
	durations := make([]float64, 0, iterations)
	parityErrors := make([]float64, 0, iterations)

	for i := 0; i < iterations; i++ {
		start := time.Now()

		params, l, err := generator.Generate(numStrikes)
		if err != nil {
			return fmt.Errorf("runBenchmark: iteration %d: %w", i, err)
		}

		durations = append(durations, float64(time.Since(start).Microseconds()))

		meanParityErr, _, err := ladder.ParityErrorStats(l, params.StockPrice, params.InterestComponent)
		if err != nil {
			return fmt.Errorf("runBenchmark: iteration %d: %v", i, err)
		}
		parityErrors = append(parityErrors, meanParityErr)
	}

	meanDuration, err := stats.Mean(durations)
	if err != nil {
		return fmt.Errorf("runBenchmark: mean duration: %v", err)
	}

	maxDuration, err := stats.Max(durations)
	if err != nil {
		return fmt.Errorf("runBenchmark: max duration: %v", err)
	}

	meanParity, err := stats.Mean(parityErrors)
	if err != nil {
		return fmt.Errorf("runBenchmark: mean parity error: %v", err)
	}

	fmt.Printf("Benchmarked %d iterations with %d strikes each\n", iterations, numStrikes)
	fmt.Printf("Mean generation time: %.0fus\n", meanDuration)
	fmt.Printf("Max generation time:  %.0fus\n", maxDuration)
	fmt.Printf("Mean parity error:    %.6f\n", meanParity)

	return nil
}

func main() {
	runCmd.PersistentFlags().Int("num-strikes", 5, "Number of strikes per ladder")
	runCmd.PersistentFlags().Int("count", 1, "Number of ladders to generate")
	runCmd.PersistentFlags().Int64("seed", 0, "Random seed. Defaults to the current time")
	runCmd.PersistentFlags().String("csv", "", "Optional path to export generated ladders as csv")
	runCmd.PersistentFlags().Bool("benchmark", false, "Benchmark ladder generation instead of printing ladders")
	runCmd.PersistentFlags().Int("iterations", 1000, "Benchmark iterations")

	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error executing command: %v", err)
	}
}
