package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/brightbeam/mailmind"
	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/ingestion"
)

type sampleEmail struct {
	sender  string
	subject string
	body    string
	age     time.Duration
}

var samples = []sampleEmail{
	{
		sender:  "sarah.chen@acmecorp.com",
		subject: "Q3 budget review - need your sign-off by Friday",
		body:    "Hi,\n\nThe Q3 budget review is complete and I need your sign-off by end of day Friday. The marketing spend is up 12% but we're still under the annual cap.\n\nPlease review the attached spreadsheet and flag any concerns.\n\nThanks,\nSarah",
		age:     2 * time.Hour,
	},
	{
		sender:  "alerts@statuspage.io",
		subject: "URGENT: production API error rate above threshold",
		body:    "The production API error rate has exceeded 5% for the last 15 minutes. On-call engineers have been paged. Incident channel: #inc-4412.",
		age:     30 * time.Minute,
	},
	{
		sender:  "marcus.webb@acmecorp.com",
		subject: "Re: onboarding plan for the new hires",
		body:    "Sounds good. Can you book a room for the orientation session next Tuesday and send the calendar invite to the whole team? Also we still need someone to prepare the laptop setup guide.\n\nMarcus",
		age:     5 * time.Hour,
	},
	{
		sender:  "newsletter@devweekly.com",
		subject: "Dev Weekly #412: the state of build systems",
		body:    "This week: a deep dive into incremental build systems, three new database releases, and why your CI is slow.",
		age:     26 * time.Hour,
	},
	{
		sender:  "no-reply@luckywinner.example",
		subject: "You have won a free cruise!!!",
		body:    "Congratulations! You have been selected for a FREE luxury cruise. Click here to claim your prize now. Offer expires in 24 hours!",
		age:     20 * time.Hour,
	},
	{
		sender:  "elena.vasquez@partnerfirm.com",
		subject: "Contract renewal - proposed terms attached",
		body:    "Hello,\n\nAttached are the proposed terms for the contract renewal. The main change is the support SLA moving from 48h to 24h response. We'd like to close this by the 15th.\n\nCould you review and send back redlines by Wednesday?\n\nBest,\nElena",
		age:     8 * time.Hour,
	},
	{
		sender:  "it-support@acmecorp.com",
		subject: "Scheduled maintenance this weekend",
		body:    "The VPN and internal wiki will be unavailable Saturday 02:00-06:00 UTC for scheduled maintenance. No action is required.",
		age:     48 * time.Hour,
	},
	{
		sender:  "james.park@acmecorp.com",
		subject: "Lunch on Thursday?",
		body:    "Hey, want to grab lunch Thursday? The new ramen place near the office finally opened.",
		age:     3 * time.Hour,
	},
}

var (
	dbPath  = flag.String("db", "data/mailmind", "path to BadgerDB database directory")
	srcFile = flag.String("src", "", "optional JSON mailbox file to seed from instead of the built-in samples")
	workers = flag.Int("workers", 2, "worker pool size")
	host    = flag.String("host", "http://localhost:11434/v1", "OpenAI-compatible endpoint URL")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func seedAIConfig() *ai.Config {
	return ai.NewConfig(ai.WithHost(*host))
}

func builtinEmails() []*core.Email {
	now := time.Now().UTC()
	emails := make([]*core.Email, 0, len(samples))
	for _, sample := range samples {
		email := core.NewEmail(sample.sender, "user@company.com", sample.subject, sample.body)
		email.Timestamp = now.Add(-sample.age)
		emails = append(emails, email)
	}
	return emails
}

func main() {
	app, err := mailmind.Open(*dbPath, mailmind.WithAIConfig(seedAIConfig()))
	if err != nil {
		panic(err)
	}
	defer app.Close()

	ctx := context.Background()

	if err := app.SeedDefaultPrompts(ctx); err != nil {
		panic(err)
	}

	var emails []*core.Email
	if *srcFile != "" {
		emails, err = ingestion.LoadEmails(*srcFile)
		if err != nil {
			panic(err)
		}
	} else {
		emails = builtinEmails()
	}

	pipeline, err := app.NewPipeline(ingestion.WithPoolSize(*workers))
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	result, err := pipeline.ProcessBatch(ctx, emails)
	if err != nil {
		panic(err)
	}

	slog.Info("seeding complete", "processed", result.Processed, "failed", len(result.Failures))
	for _, failure := range result.Failures {
		slog.Error("seed failure", "email_id", failure.EmailID, "err", failure.Err)
	}
}
