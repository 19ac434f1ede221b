package main

import (
	"context"
	"io"

	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/discover"
	"github.com/warmlinehq/warmline/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	People   warmline.PeopleService
	Sources  warmline.SourceService
	Pipeline *discover.Pipeline
	Matcher  warmline.Matcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source   SourceCmd   `cmd:"" help:"Manage discovery sources"`
	Discover DiscoverCmd `cmd:"" help:"Discover people from sources or a one-off URL"`
	People   PeopleCmd   `cmd:"" help:"List discovered people"`
	Enrich   EnrichCmd   `cmd:"" help:"Fill in missing contact details from the enrichment service"`
}

// SourceCmd groups the source management subcommands.
type SourceCmd struct {
	Add    SourceAddCmd    `cmd:"" help:"Register a page to check for people"`
	List   SourceListCmd   `cmd:"" help:"List registered sources"`
	Remove SourceRemoveCmd `cmd:"" help:"Remove a source"`
}

// SourceAddCmd is the "source add" subcommand.
type SourceAddCmd struct {
	URL   string `arg:"" help:"Page URL to check for people"`
	Name  string `help:"Human-readable source name"`
	Tag   string `help:"Tag applied to people discovered from this source"`
	Every int    `default:"24" help:"Check frequency in hours"`
}

// SourceListCmd is the "source list" subcommand.
type SourceListCmd struct{}

// SourceRemoveCmd is the "source remove" subcommand.
type SourceRemoveCmd struct {
	ID    string `arg:"" help:"Source ID"`
	Force bool   `help:"Confirm removal"`
}

// DiscoverCmd is the "discover" subcommand. With no flags it walks all
// sources due for a check; --source processes one source, --url processes a
// one-off page without registering it.
type DiscoverCmd struct {
	Source  string `help:"Process a single registered source by ID"`
	URL     string `help:"Process a one-off URL without registering it"`
	Tag     string `help:"Tag for people discovered from a one-off URL"`
	DryRun  bool   `help:"Extract people but do not write to the store"`
	Browser bool   `help:"Refetch thin pages with a headless browser"`
	Remote  bool   `help:"Write to the shared remote store instead of the local database"`
}

// PeopleCmd is the "people" subcommand.
type PeopleCmd struct {
	Status string `help:"Filter by status (discovered, enriched)"`
	Tag    string `help:"Filter by tag"`
	Full   bool   `help:"Show contact details and context"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Limit int `default:"25" help:"Maximum number of people to enrich"`
}
