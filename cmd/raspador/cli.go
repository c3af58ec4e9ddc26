package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/raspador"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Records raspador.RecordService
	Schemas raspador.SchemaLoader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `name:"db" help:"Database path (default: $RASPADOR_DB or ~/.raspador/raspador.db)"`

	Parse   ParseCmd   `cmd:"" help:"Extract records from text files using a YAML schema"`
	Records RecordsCmd `cmd:"" help:"List stored records"`
	Show    ShowCmd    `cmd:"" help:"Show a stored record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored record"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Schema         string   `short:"s" required:"" type:"existingfile" help:"YAML schema file"`
	Files          []string `arg:"" type:"path" help:"Files or directories to parse"`
	Format         string   `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
	Store          bool     `help:"Store records in the database"`
	KeepDuplicates bool     `help:"Parse documents with identical content more than once"`
	Concurrency    int      `short:"c" default:"4" help:"Concurrent parse limit"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Source string `help:"Only records from this source"`
	Parser string `help:"Only records produced by this parser"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of records"`
	Offset int    `help:"Number of records to skip"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `short:"f" enum:"text,json,xml" default:"text" help:"Output format (text, json, xml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
