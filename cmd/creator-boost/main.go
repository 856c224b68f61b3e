package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"creator-boost/analyzer"
	"creator-boost/consultant"
	"creator-boost/server"
	"creator-boost/shared/ai"
	"creator-boost/shared/config"
	"creator-boost/shared/storage"
	"creator-boost/shared/youtube"

	"github.com/spf13/cobra"
)

var (
	benchmarkInput string
	userInput      string
	comparative    bool
)

var rootCmd = &cobra.Command{
	Use:   "creator-boost",
	Short: "AI-assisted YouTube content consultant",
	Long:  `Creator Boost wraps the YouTube Data API and the Gemini API behind growth-consulting workflows: keyword brainstorming, channel analysis, benchmark consulting, and a chat consultant.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv, err := server.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}
		return srv.Start(ctx)
	},
}

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Run one benchmark consulting analysis and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		orch, _, lang, err := buildWorkflows(ctx, cfg)
		if err != nil {
			return err
		}

		result, err := orch.Run(ctx, consultant.RunRequest{
			BenchmarkInput: benchmarkInput,
			UserInput:      userInput,
			Comparative:    comparative,
			Language:       lang,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var ideasCmd = &cobra.Command{
	Use:   "ideas <keyword>",
	Short: "Brainstorm video ideas for a keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		_, ideaGen, lang, err := buildWorkflows(ctx, cfg)
		if err != nil {
			return err
		}

		ideas, err := ideaGen.KeywordIdeas(ctx, args[0], lang)
		if err != nil {
			return err
		}
		return printJSON(ideas)
	},
}

// buildWorkflows wires the one-shot CLI commands the same way the server
// does, minus the HTTP surface.
func buildWorkflows(ctx context.Context, cfg *config.Config) (*consultant.Orchestrator, *analyzer.Analyzer, string, error) {
	settings, err := storage.NewSettingsStore(cfg.Storage.DataDir, storage.Settings{
		YouTubeAPIKey: cfg.YouTube.APIKey,
		Language:      cfg.Language,
	})
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to create settings store: %w", err)
	}

	quota, err := storage.NewQuotaTracker(cfg.Storage.DataDir, cfg.Quota.DailyBudget)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to create quota tracker: %w", err)
	}

	aiClient, err := ai.NewClient(&cfg.AI)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to create AI client: %w", err)
	}

	var fetcher *youtube.Client
	if key := settings.Get().YouTubeAPIKey; key != "" {
		fetcher, err = youtube.NewClient(ctx, key)
		if err != nil {
			return nil, nil, "", fmt.Errorf("failed to create YouTube client: %w", err)
		}
	}

	var videoFetcher consultant.VideoFetcher
	var channelFetcher analyzer.ChannelFetcher
	if fetcher != nil {
		videoFetcher = fetcher
		channelFetcher = fetcher
	}

	orch := consultant.New(videoFetcher, aiClient, quota, func(p consultant.Phase) {
		log.Printf("Phase: %s", p)
	})
	an := analyzer.New(channelFetcher, aiClient, quota)
	return orch, an, settings.Get().Language, nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	consultCmd.Flags().StringVar(&benchmarkInput, "benchmark", "", "Benchmark video URL, ID, or search keyword")
	consultCmd.Flags().StringVar(&userInput, "user", "", "Your own video URL or ID (comparative mode)")
	consultCmd.Flags().BoolVar(&comparative, "comparative", false, "Compare your video against the benchmark")

	rootCmd.AddCommand(serveCmd, consultCmd, ideasCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
