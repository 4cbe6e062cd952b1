// Command solwatch is a thin example driver: it locates a Solidity
// project, assembles a compiler.CompilationGroup from already-compiled
// AST artifacts on disk, and prints the resulting findings. Compiling
// Solidity itself is out of scope for this module; solwatch expects each
// source file to have a sibling "<name>.ast.json" artifact, the shape a
// `solc --combined-json ast` or Foundry/Hardhat build step would leave
// behind.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/solwatch/solwatch/compiler"
	"github.com/solwatch/solwatch/config"
	"github.com/solwatch/solwatch/detector"
	"github.com/solwatch/solwatch/ignore"
	"github.com/solwatch/solwatch/internal/logx"
	"github.com/solwatch/solwatch/internal/projectroot"
	"github.com/solwatch/solwatch/report"
	"github.com/solwatch/solwatch/workspace"

	"go.uber.org/zap"
)

func main() {
	path := flag.String("path", ".", "project root or file to analyze")
	configPath := flag.String("config", "", "path to an EngineConfig YAML file")
	verbose := flag.Bool("v", false, "enable development logging")
	flag.Parse()

	var logOpts []logx.Option
	if *verbose {
		logOpts = append(logOpts, logx.WithDevelopment())
	}
	log := logx.New(append(logOpts, logx.WithName("solwatch"))...)
	defer log.Sync()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", zap.String("path", *configPath), zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(*path, cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(path string, cfg *config.EngineConfig, log *logx.Logger) error {
	ctx := context.Background()
	proot := projectroot.New()

	proj, err := proot.Detect(path)
	if err != nil {
		return err
	}
	log.Info("detected project", zap.String("root", proj.RootPath), zap.String("kind", string(proj.Kind)))

	sources, err := proot.SourceFiles(proj)
	if err != nil {
		return err
	}

	group := compiler.CompilationGroup{
		Sources:    make(map[string]string, len(sources)),
		ASTFiles:   make(map[string]compiler.AstSourceFile, len(sources)),
		EvmVersion: cfg.EvmVersion,
	}

	for _, src := range sources {
		text, err := proot.ReadFile(ctx, src)
		if err != nil {
			log.Warn("failed to read source", zap.String("path", src), zap.Error(err))
			continue
		}
		group.Sources[src] = string(text)

		astPath := strings.TrimSuffix(src, filepath.Ext(src)) + ".ast.json"
		astBytes, err := proot.ReadFile(ctx, astPath)
		if err != nil {
			log.Warn("no ast artifact for source, skipping", zap.String("path", src))
			continue
		}
		group.ASTFiles[src] = compiler.AstSourceFile{AstJSON: json.RawMessage(astBytes)}
	}

	w, err := workspace.Ingest(group, log)
	if err != nil {
		return err
	}

	registry := detector.NewRegistry()
	var detectors []report.Detector
	for _, d := range registry.Build() {
		if cfg.Enabled(d.Name()) {
			detectors = append(detectors, d)
		}
	}

	ignoreSources := group.Sources
	if !cfg.IgnoreDirectives {
		ignoreSources = map[string]string{}
	}
	ignoreEngine := ignore.NewEngine(ignoreSources)

	rpt, err := report.Build(w, detectors, ignoreEngine)
	if err != nil {
		return err
	}

	for _, f := range rpt.Findings {
		fmt.Printf("[%s] %s:%d %s — %s\n", f.Severity, f.AbsolutePath, f.Line, f.Detector, f.Title)
	}
	log.Info("run complete", zap.Int("findings", len(rpt.Findings)))
	return nil
}
