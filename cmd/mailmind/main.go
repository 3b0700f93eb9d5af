// Copyright 2025 Brightbeam Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/brightbeam/mailmind"
	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/ingestion"
)

func main() {
	// Optional .env for endpoint settings; absence is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "mailmind",
		Usage: "Email intelligence agent: categorize, extract tasks, draft and answer questions over your inbox",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "data/mailmind",
				EnvVars: []string{"MAILMIND_DB"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible endpoint URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"MAILMIND_HOST"},
			},
			&cli.StringFlag{
				Name:    "model",
				Usage:   "Generation model name",
				Value:   "qwen2.5:3b",
				EnvVars: []string{"MAILMIND_MODEL"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "embeddinggemma",
				EnvVars: []string{"MAILMIND_EMBEDDING_MODEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Load a JSON mailbox file and run every email through the processing pipeline",
				ArgsUsage: "<mailbox.json>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for batch processing",
						Value: 4,
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Ask a question about the inbox",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of retrieved snippets to answer with",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "stream",
						Usage: "Print the answer incrementally as it is generated (omits sources)",
					},
				},
			},
			{
				Name:   "summarize",
				Usage:  "Summarize the inbox",
				Action: summarizeCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "max-emails",
						Usage: "How many recent emails to summarize over",
						Value: 20,
					},
				},
			},
			{
				Name:   "actions",
				Usage:  "List pending action items across the inbox, highest priority first",
				Action: actionsCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Include completed items",
					},
				},
			},
			{
				Name:      "reply",
				Usage:     "Generate a reply draft for a stored email",
				ArgsUsage: "<email-id>",
				Action:    replyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "context",
						Usage: "Additional context for the reply",
					},
				},
			},
			{
				Name:   "drafts",
				Usage:  "List stored drafts, most recently updated first",
				Action: draftsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of drafts to show (0 for all)",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "delete",
						Usage: "Delete the draft with the given id instead of listing",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show email counts per category",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openApp(c *cli.Context) (*mailmind.App, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithGeneratorModel(c.String("model")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	app, err := mailmind.Open(c.String("db"), mailmind.WithAIConfig(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return app, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one mailbox file argument")
	}

	emails, err := ingestion.LoadEmails(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to load mailbox: %w", err)
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.SeedDefaultPrompts(c.Context); err != nil {
		return fmt.Errorf("failed to seed prompts: %w", err)
	}

	pipeline, err := app.NewPipeline(ingestion.WithPoolSize(c.Int("workers")))
	if err != nil {
		return err
	}
	defer pipeline.Release()

	result, err := pipeline.ProcessBatch(c.Context, emails)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d of %d emails\n", result.Processed, len(emails))
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.EmailID, failure.Err)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a question")
	}
	question := strings.Join(c.Args().Slice(), " ")

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	if c.Bool("stream") {
		for chunk := range app.Assistant().AnswerStream(c.Context, question, c.Int("top-k")) {
			fmt.Print(chunk)
		}
		fmt.Println()
		return nil
	}

	answer := app.Assistant().Answer(c.Context, question, c.Int("top-k"))
	fmt.Println(answer.Answer)
	if len(answer.Sources) > 0 {
		fmt.Printf("\nSources (%s confidence):\n", answer.Confidence)
		for _, source := range answer.Sources {
			fmt.Printf("  - %s from %s\n", source.Metadata["subject"], source.Metadata["sender"])
		}
	}
	return nil
}

func summarizeCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Println(app.Assistant().SummarizeInbox(c.Context, c.Int("max-emails")))
	return nil
}

func actionsCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.Extractor().Aggregate(c.Context, c.Bool("all"))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No action items.")
		return nil
	}

	for _, item := range items {
		status := " "
		if item.Item.Completed {
			status = "x"
		}
		deadline := ""
		if item.Item.Deadline != "" {
			deadline = fmt.Sprintf(" (due %s)", item.Item.Deadline)
		}
		fmt.Printf("[%s] %-6s %s%s  — %s\n", status, item.Item.Priority, item.Item.Description, deadline, item.EmailSubject)
	}
	return nil
}

func replyCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one email id argument")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	email, err := app.Emails().GetEmail(c.Context, c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to load email: %w", err)
	}

	draft, err := app.Drafter().Reply(c.Context, email, c.String("context"), "")
	if err != nil {
		return err
	}

	fmt.Printf("Draft %s\n", draft.ID)
	fmt.Printf("To: %s\nSubject: %s\n\n%s\n", draft.Recipient, draft.Subject, draft.Body)
	if len(draft.SuggestedFollowups) > 0 {
		fmt.Println("\nSuggested follow-ups:")
		for _, followup := range draft.SuggestedFollowups {
			fmt.Printf("  - %s\n", followup)
		}
	}
	return nil
}

func draftsCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	if id := c.String("delete"); id != "" {
		if err := app.Drafter().DeleteDraft(c.Context, id); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}
		fmt.Printf("Deleted draft %s\n", id)
		return nil
	}

	drafts, err := app.Drafter().ListDrafts(c.Context, 0, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		fmt.Println("No drafts.")
		return nil
	}

	for _, draft := range drafts {
		fmt.Printf("%s  %s  To: %s  Subject: %s\n",
			draft.ID, draft.UpdatedAt.Format("2006-01-02 15:04"), draft.Recipient, draft.Subject)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	stats, err := app.Categorizer().CategoryStatistics(c.Context)
	if err != nil {
		return err
	}

	for _, category := range core.Categories() {
		fmt.Printf("%-16s %d\n", category, stats[category])
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
