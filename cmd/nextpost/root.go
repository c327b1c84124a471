package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/DavidRaab/website-sub000/config"
	"github.com/DavidRaab/website-sub000/errors"
	"github.com/DavidRaab/website-sub000/internal/posts"
	"github.com/DavidRaab/website-sub000/logger"
	"github.com/DavidRaab/website-sub000/observability"
	"github.com/DavidRaab/website-sub000/validation"
	"github.com/DavidRaab/website-sub000/version"
)

const entriesSeqName = "posts.entries"

type rootOpts struct {
	cfgFile string
	dir     string
	ext     string
	width   int
	slug    string
	title   string
	metrics bool
	debug   bool
}

var longRootCmdDescription = `nextpost scans a posts directory for files named "<number>-<slug><ext>"
and prints the file name the next post should use.`

func newRootCmd() *cobra.Command {
	var opts rootOpts

	cmd := &cobra.Command{
		Use:           "nextpost",
		Short:         "Print the next free post file name",
		Long:          longRootCmdDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Validation(err.Error())
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./nextpost.yml or ./config/nextpost.yml)")
	flags.StringVar(&opts.dir, "dir", "", "posts directory (overrides posts.dir)")
	flags.StringVar(&opts.ext, "ext", "", "post file extension including the dot (overrides posts.extension)")
	flags.IntVar(&opts.width, "width", 0, "zero-padded width of the post number (overrides posts.width)")
	flags.StringVar(&opts.slug, "slug", "", "slug appended to the post number")
	flags.StringVar(&opts.title, "title", "", "title to derive the slug from when --slug is not set")
	flags.BoolVar(&opts.metrics, "metrics", false, "print sequence metrics to stderr after the scan")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "log every scanned directory entry")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, opts *rootOpts) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(&cfg.Logging, config.ServiceName, cmd.ErrOrStderr())
	logger.SetGlobalLogger(log)
	postsLog := log.WithComponent("posts").WithFields(logger.Fields(logger.FieldDir, cfg.Posts.Dir))

	slug := opts.slug
	if slug == "" && opts.title != "" {
		slug = posts.Slug(opts.title)
	}
	if err := validation.New().Pattern("slug", slug, posts.SlugPattern).Err(); err != nil {
		return err
	}

	names, err := posts.Entries(os.DirFS(cfg.Posts.Dir), ".")
	if err != nil {
		return err
	}

	var summary func(context.Context) error
	if cfg.Posts.Metrics {
		provider, reader := observability.NewManualProvider(config.ServiceName, version.Get().Short())
		defer provider.Shutdown(cmd.Context())
		m, err := observability.NewSeqMetrics(provider.Meter(config.ServiceName))
		if err != nil {
			return errors.Internal(err)
		}
		names = observability.Instrument(names, m, entriesSeqName)
		summary = func(ctx context.Context) error {
			return observability.WriteSummary(ctx, cmd.ErrOrStderr(), reader)
		}
	}
	names = observability.Trace(names, postsLog, entriesSeqName)

	start := time.Now()
	next := posts.Highest(posts.Numbers(names, cfg.Posts.Extension)).GetOrElse(0) + 1
	path := filepath.Join(cfg.Posts.Dir, posts.FileName(next, cfg.Posts.Width, slug, cfg.Posts.Extension))

	postsLog.Info("next post", logger.DurationFields("scan", time.Since(start)), logger.Fields(
		logger.FieldPath, path,
		logger.FieldValue, next,
	))
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
		return errors.IO("write", "stdout", err)
	}

	if summary != nil {
		if err := summary(cmd.Context()); err != nil {
			return errors.Internal(err)
		}
	}
	return nil
}

// loadConfig loads the configuration and applies flags set on the command
// line on top of it.
func loadConfig(cmd *cobra.Command, opts *rootOpts) (*config.Config, error) {
	var loadOpts []config.LoaderOption
	if opts.cfgFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.cfgFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Posts.Dir = opts.dir
	}
	if flags.Changed("ext") {
		cfg.Posts.Extension = opts.ext
	}
	if flags.Changed("width") {
		cfg.Posts.Width = opts.width
	}
	if flags.Changed("metrics") {
		cfg.Posts.Metrics = opts.metrics
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
