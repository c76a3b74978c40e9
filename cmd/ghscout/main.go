// ghscout answers a batch of prompts with an LLM that can call read-only
// GitHub lookup tools. Prompts come from the command line (one per argument)
// or stdin (one per line; blank lines are skipped). The result is printed to
// stdout as JSON. An empty prompt must be passed as an explicit "" argument.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghscout/ghscout/internal/config"
	"github.com/ghscout/ghscout/internal/github"
	"github.com/ghscout/ghscout/internal/provider"
	"github.com/ghscout/ghscout/internal/runner"
	"github.com/ghscout/ghscout/pkg/log"
	"github.com/ghscout/ghscout/tools"
)

// errorResult mirrors the catastrophic-failure shape of the run contract.
type errorResult struct {
	Error     string `json:"error"`
	ModelType string `json:"model_type"`
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	modelFlag := flag.String("model", "", "model name (overrides config)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghscout: %v\n", err)
		os.Exit(1)
	}
	logger := log.New(log.Config{Level: settings.Log.Level, Format: settings.Log.Format})

	model := settings.Model
	if *modelFlag != "" {
		model = *modelFlag
	}

	if settings.OpenAIAPIKey == "" {
		fmt.Fprintln(os.Stderr, "ghscout: missing GHS_OPENAI_API_KEY; export it before running.")
		os.Exit(1)
	}
	if settings.GitHubToken == "" {
		fmt.Fprintln(os.Stderr, "ghscout: missing GHS_GITHUB_TOKEN; export it before running.")
		os.Exit(1)
	}

	prompts := flag.Args()
	if len(prompts) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				prompts = append(prompts, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "ghscout: read stdin: %v\n", err)
			os.Exit(1)
		}
	}

	// Cancel in-flight work on Ctrl-C (SIGINT) / SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		logger.Info("interrupted, cancelling")
		cancel()
	}()

	client, err := provider.NewClientWithBaseURL(settings.OpenAIAPIKey, settings.OpenAIBaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghscout: %v\n", err)
		os.Exit(1)
	}
	if settings.HTTPTimeout > 0 {
		client.SetTimeout(settings.HTTPTimeout)
	}
	gh := github.NewClient(settings.GitHubBaseURL)

	r := runner.New(client, tools.Registry(gh), runner.Options{
		GitHubToken:           settings.GitHubToken,
		SystemPrompt:          settings.SystemPrompt,
		FreshContextPerPrompt: settings.FreshContextPerPrompt,
		TranscriptPath:        settings.TranscriptPath,
		Logger:                logger,
	})

	result, err := r.Run(ctx, runner.Request{Model: model, Prompts: prompts})
	if err != nil {
		emit(errorResult{Error: err.Error(), ModelType: model})
		os.Exit(1)
	}
	emit(result)
}

func emit(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghscout: encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
