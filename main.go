package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mahmoudKheyrati/cpu-scheduler/api"
	"github.com/mahmoudKheyrati/cpu-scheduler/config"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/generator"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/logging"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/render"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/sharing"
)

var (
	flagConfig    string
	flagFile      string
	flagAlgorithm string
	flagQuantum   int
	flagJSON      bool
	flagWidth     int
	flagSeed      int64
	flagCount     int
	flagPriority  bool
	flagFormat    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Red("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scheduler",
		Short:         "Simulate classical CPU scheduling policies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(randomCmd())
	rootCmd.AddCommand(shareCmd())
	return rootCmd
}

func loadConfig() (*config.SchedulerConfig, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.BuildLogger(cfg.LogLevel), nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling HTTP api",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, log))
			log.Info("listening", slog.Int("port", cfg.Port))
			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

// loadRequest reads --file and applies --algorithm / --quantum overrides.
func loadRequest(cfg *config.SchedulerConfig) (requests.ScheduleRequest, schedulers.Params, error) {
	if flagFile == "" {
		return requests.ScheduleRequest{}, schedulers.Params{}, errors.New("--file is required")
	}
	request, err := requests.LoadFile(flagFile)
	if err != nil {
		return request, schedulers.Params{}, err
	}
	limits := requests.Limits{MaxProcesses: cfg.MaxProcesses, MaxTotalBurst: cfg.MaxTotalBurst}
	if err := request.CheckLimits(limits); err != nil {
		return request, schedulers.Params{}, err
	}

	if flagAlgorithm != "" {
		request.Algorithm = flagAlgorithm
	}
	if flagQuantum != 0 {
		request.Quantum = &flagQuantum
	}
	params := schedulers.Params{Quantum: cfg.RoundRobinTimeQuantum}
	if request.Quantum != nil {
		params.Quantum = *request.Quantum
	}
	return request, params, nil
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling policy over a process file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			request, params, err := loadRequest(cfg)
			if err != nil {
				return err
			}
			if request.Algorithm == "" {
				request.Algorithm = schedulers.FirstComeFirstServe.String()
			}
			algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
			if err != nil {
				return err
			}

			runId := uuid.NewString()
			processes := request.CoreProcesses()
			result, err := schedulers.NewSimulator(log.With(slog.String("run_id", runId))).Simulate(algorithm, processes, params)
			if err != nil {
				return err
			}
			response := schedulers.GenerateResponse(runId, algorithm, params, result)
			if flagJSON {
				return outputJSON(cmd.OutOrStdout(), response)
			}

			w := cmd.OutOrStdout()
			title := algorithm.Title()
			if algorithm == schedulers.RoundRobin {
				title = fmt.Sprintf("%s (quantum %d)", title, params.Quantum)
			}
			fmt.Fprintln(w, render.BoldCyan(title))
			fmt.Fprintln(w)
			render.WriteGantt(w, result.Timeline, render.NewPalette(processes, requestedColors(request)), flagWidth)
			fmt.Fprintln(w)
			render.WriteMetrics(w, processes, response)
			render.WriteSummary(w, response)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Process file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "", "fcfs, sjf, rr, priority or srtf (overrides the file)")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 0, "Round robin time quantum (overrides the file and config)")
	cmd.Flags().IntVar(&flagWidth, "width", 2, "Columns per time unit in the gantt chart")
	return cmd
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every policy over a process file and compare averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			request, params, err := loadRequest(cfg)
			if err != nil {
				return err
			}

			runId := uuid.NewString()
			simulator := schedulers.NewSimulator(log.With(slog.String("run_id", runId)))
			compare := simulator.Compare(runId, request.CoreProcesses(), params)
			order := make([]string, 0, len(schedulers.Algorithms))
			for _, algorithm := range schedulers.Algorithms {
				order = append(order, algorithm.String())
			}

			if flagJSON {
				return outputJSON(cmd.OutOrStdout(), compare)
			}
			render.WriteComparison(cmd.OutOrStdout(), order, compare)
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Process file (.yaml, .yml or .json)")
	cmd.Flags().IntVarP(&flagQuantum, "quantum", "q", 0, "Round robin time quantum")
	return cmd
}

func randomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random process file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generator.DefaultOptions()
			if flagCount > 0 {
				opts.MinProcesses, opts.MaxProcesses = flagCount, flagCount
			}
			opts.WithPriority = flagPriority
			request := requests.ScheduleRequest{Processes: generator.Generate(flagSeed, opts)}

			ext := "." + flagFormat
			if flagJSON {
				ext = ".json"
			}
			data, err := requests.Marshal(request, ext)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
	cmd.Flags().Int64Var(&flagSeed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&flagCount, "count", 0, "Number of processes (default 3-5)")
	cmd.Flags().BoolVar(&flagPriority, "priority", false, "Also generate priorities")
	cmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or json")
	return cmd
}

func shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or decode a shareable query string",
	}

	encode := &cobra.Command{
		Use:   "encode",
		Short: "Encode a process file as a query string",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagFile == "" {
				return errors.New("--file is required")
			}
			request, err := requests.LoadFile(flagFile)
			if err != nil {
				return err
			}
			if flagAlgorithm != "" {
				request.Algorithm = flagAlgorithm
			}
			if flagQuantum != 0 {
				request.Quantum = &flagQuantum
			}
			query, err := sharing.Encode(request)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), query)
			return nil
		},
	}
	encode.Flags().StringVarP(&flagFile, "file", "f", "", "Process file (.yaml, .yml or .json)")
	encode.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "", "Algorithm to record")
	encode.Flags().IntVarP(&flagQuantum, "quantum", "q", 0, "Quantum to record (round robin only)")

	decode := &cobra.Command{
		Use:   "decode <query>",
		Short: "Decode a query string into a process file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := sharing.Decode(args[0])
			if err != nil {
				return err
			}
			ext := "." + flagFormat
			if flagJSON {
				ext = ".json"
			}
			data, err := requests.Marshal(request, ext)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
	decode.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or json")

	cmd.AddCommand(encode, decode)
	return cmd
}

func requestedColors(request requests.ScheduleRequest) map[string]string {
	colors := make(map[string]string, len(request.Processes))
	for _, p := range request.Processes {
		if p.Color != "" {
			colors[p.ID] = p.Color
		}
	}
	return colors
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
