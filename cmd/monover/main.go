package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/monover-labs/monover/core/cli"
	"github.com/monover-labs/monover/core/config"
	"github.com/monover-labs/monover/core/resolve"
	"github.com/monover-labs/monover/pkg/gitrepo"
	"github.com/monover-labs/monover/pkg/projects"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var global cli.GlobalOptions

	setup := func() (*config.Config, *log.Logger, error) {
		cfg, err := config.Load(global.Config)
		if err != nil {
			return nil, nil, err
		}
		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		if global.Verbose {
			logger.SetLevel(log.DebugLevel)
		}
		return cfg, logger, nil
	}

	// engineFor opens the repository containing dir and builds an
	// engine plus the project value for that directory. The project's
	// relative path is computed against the repository root, which is
	// what commit counting filters on.
	engineFor := func(dir string, cfg *config.Config, logger *log.Logger) (*resolve.Engine, projects.Project, error) {
		repo, err := gitrepo.Open(dir)
		if err != nil {
			return nil, projects.Project{}, err
		}
		proj, err := projects.FromDir(repo.Root(), dir)
		if err != nil {
			return nil, projects.Project{}, err
		}
		eng := resolve.NewEngine(repo, logger, resolve.Options{
			ChangelogName:   cfg.Changelog,
			PrereleaseLabel: cfg.Prerelease.Label,
			PrereleaseWidth: cfg.Prerelease.Width,
		})
		return eng, proj, nil
	}

	runNext := func(ctx context.Context, opts cli.VersionOptions) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		eng, proj, err := engineFor(opts.Dir, cfg, logger)
		if err != nil {
			return err
		}
		next, err := eng.NextReleaseVersion(proj)
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil
	}

	runPrerelease := func(ctx context.Context, opts cli.VersionOptions) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		eng, proj, err := engineFor(opts.Dir, cfg, logger)
		if err != nil {
			return err
		}
		next, err := eng.NextPrereleaseVersion(proj)
		if err != nil {
			return err
		}
		fmt.Println(next)
		return nil
	}

	runList := func(ctx context.Context) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		found, err := projects.Discover(global.Root, cfg.ManifestGlob)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			logger.Warn("no project manifests found", "root", global.Root, "glob", cfg.ManifestGlob)
			return nil
		}

		// One resolution per project, sequential, fail-fast: a
		// misnumbered package is worse than a stopped build.
		for _, p := range found {
			eng, proj, err := engineFor(p.Dir, cfg, logger)
			if err != nil {
				return err
			}
			release, err := eng.NextReleaseVersion(proj)
			if err != nil {
				return fmt.Errorf("project %s: %w", proj.Name, err)
			}
			prerelease, err := eng.NextPrereleaseVersion(proj)
			if err != nil {
				return fmt.Errorf("project %s: %w", proj.Name, err)
			}
			fmt.Printf("%s\t%s\t%s\n", proj.Name, release, prerelease)
		}
		return nil
	}

	runPromote := func(ctx context.Context, opts cli.PromoteOptions) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		eng, proj, err := engineFor(opts.Dir, cfg, logger)
		if err != nil {
			return err
		}

		src := filepath.Join(proj.Dir, cfg.Changelog)
		dst := opts.Out
		if dst == "" {
			dst = src
		}
		if err := eng.PromoteChangelog(src, dst, opts.Version); err != nil {
			return err
		}
		logger.Info("changelog promoted", "project", proj.Name, "out", dst)
		return nil
	}

	root := cli.NewRootCmd(version, &global)
	root.AddCommand(
		cli.NewNextCmd(runNext),
		cli.NewPrereleaseCmd(runPrerelease),
		cli.NewListCmd(runList),
		cli.NewPromoteCmd(runPromote),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
