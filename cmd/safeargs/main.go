package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/navgen/safeargs"
	"github.com/navgen/safeargs/loader"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Directions classes from a navigation graph."`
	Check   CheckCmd   `cmd:"" help:"Validate a navigation graph without generating files."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Graph   string `arg:"" help:"Navigation graph YAML file."`
	Out     string `arg:"" help:"Output directory for generated files."`
	Package string `help:"Default application package for package-relative destination names." short:"p"`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	graph, err := loader.LoadFile(c.Graph)
	if err != nil {
		return err
	}

	result, err := safeargs.Generate(context.Background(), graph, &safeargs.Config{
		DefaultPackage: c.Package,
		OutDir:         c.Out,
	})
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		logger.Debug("generated", slog.String("path", f.Path), slog.Int("bytes", len(f.Content)))
	}
	logger.Info("generation complete",
		slog.Int("files", len(result.Files)),
		slog.String("out", c.Out),
	)
	return nil
}

type CheckCmd struct {
	Graph   string `arg:"" help:"Navigation graph YAML file."`
	Package string `help:"Default application package for package-relative destination names." short:"p"`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	graph, err := loader.LoadFile(c.Graph)
	if err != nil {
		return err
	}

	// Dry-run generate: exercises naming, default rendering, and the
	// collision check without touching the filesystem.
	result, err := safeargs.Generate(context.Background(), graph, &safeargs.Config{
		DefaultPackage: c.Package,
	})
	if err != nil {
		return err
	}

	logger.Info("graph is valid",
		slog.Int("destinations", len(graph.Destinations)),
		slog.Int("files", len(result.Files)),
	)
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("safeargs"),
		kong.Description("Generate strongly-typed navigation Directions classes."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}
