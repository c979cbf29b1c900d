package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/triad/internal/colour"
	"github.com/jmylchreest/triad/internal/image"
	"github.com/jmylchreest/triad/internal/security"
)

const (
	envFormat = "TRIAD_FORMAT"

	formatText = "text"
	formatJSON = "json"
)

// ErrRuleNotFollowed is returned with --fail-on-mismatch when an image does
// not follow the 60/30/10 rule.
var ErrRuleNotFollowed = errors.New("palette does not follow the 60/30/10 rule")

// analyseOptions holds the analyse command's flags.
type analyseOptions struct {
	Format         string
	Output         string
	Preview        bool
	MaxSize        int64
	FailOnMismatch bool
	Timeout        time.Duration
	AllowInsecure  bool
}

// Validate validates the analyse options.
func (o analyseOptions) Validate() error {
	if !slices.Contains([]string{formatText, formatJSON}, o.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %s, %s)", o.Format, formatText, formatJSON)
	}
	if o.MaxSize <= 0 {
		return fmt.Errorf("max size must be positive, got %d", o.MaxSize)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", o.Timeout)
	}
	return nil
}

func registerAnalyseFlags(fs *pflag.FlagSet, opts *analyseOptions) {
	defaultFormat := formatText
	if env := os.Getenv(envFormat); env != "" {
		defaultFormat = env
	}

	fs.StringVarP(&opts.Format, "format", "f", defaultFormat, "output format (text, json) [$"+envFormat+"]")
	fs.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&opts.Preview, "preview", false, "show colour swatches (default: on when writing to a terminal)")
	fs.Int64Var(&opts.MaxSize, "max-size", image.DefaultMaxSize, "largest accepted image, in bytes")
	fs.BoolVar(&opts.FailOnMismatch, "fail-on-mismatch", false, "exit with an error listing every image that does not follow the rule")
	fs.DurationVar(&opts.Timeout, "timeout", 10*time.Second, "timeout for fetching images from URLs")
	fs.BoolVar(&opts.AllowInsecure, "allow-insecure-urls", false, "allow plain HTTP and private-network image URLs")
}

func newAnalyseCmd() *cobra.Command {
	opts := &analyseOptions{}

	cmd := &cobra.Command{
		Use:     "analyse <image|directory|url>...",
		Aliases: []string{"analyze"},
		Short:   "Extract the dominant colours of images and check the 60/30/10 rule",
		Long: `Extract the three dominant colours of one or more images and check whether
they follow the 60/30/10 rule within a margin of five percentage points.

Supported image formats: JPEG, PNG (up to 5 MiB by default).
Directories are expanded to the images they contain, sorted by name.

Examples:
  # Analyse a single image
  triad analyse poster.png

  # Analyse every image in a directory as JSON
  triad analyse --format json ./designs

  # Fail a CI step when a mock-up breaks the rule
  triad analyse --fail-on-mismatch mockup.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyse(cmd, args, opts)
		},
	}

	registerAnalyseFlags(cmd.Flags(), opts)
	return cmd
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string, opts *analyseOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd)

	paths, err := image.ResolveImagePaths(args)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	var loaderOpts []image.LoaderOption
	if !opts.AllowInsecure {
		loaderOpts = append(loaderOpts, image.WithURLValidator(security.ValidateImageURL))
	}
	loader := image.NewSmartLoader(opts.MaxSize, loaderOpts...)
	analyser := colour.NewAnalyser(colour.WithLogger(logger.Named("analyser")))

	results := make([]*colour.AnalysisResult, 0, len(paths))
	for _, path := range paths {
		result, err := analysePath(cmd.Context(), loader, analyser, logger, path, opts.Timeout)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	preview := opts.Preview
	if !cmd.Flags().Changed("preview") {
		preview = opts.Output == "" && isTerminal(cmd.OutOrStdout())
	}

	output, err := formatResults(results, opts.Format, preview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if opts.Output != "" {
		logger.Debug("writing output", "path", opts.Output)
		if err := os.WriteFile(opts.Output, []byte(output), 0o644); err != nil { // #nosec G306 - Report is meant to be readable
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	if opts.FailOnMismatch {
		var failing []string
		for _, r := range results {
			if !r.FollowsRule() {
				failing = append(failing, r.Source)
			}
		}
		if len(failing) > 0 {
			return fmt.Errorf("%w: %s", ErrRuleNotFollowed, strings.Join(failing, ", "))
		}
	}

	return nil
}

// analysePath loads one image and runs the pipeline over it.
func analysePath(ctx context.Context, loader image.Loader, analyser *colour.Analyser, logger hclog.Logger, path string, timeout time.Duration) (*colour.AnalysisResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Info("loading image", "path", path)
	img, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	buf := image.ToPixelBuffer(img)
	logger.Debug("image decoded", "path", path, "width", buf.Width, "height", buf.Height)

	result, err := analyser.Analyse(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to analyse %s: %w", path, err)
	}
	result.Source = path

	logger.Info("analysis complete", "path", path,
		"distinct", result.TotalDistinctColours, "clusters", result.Clusters,
		"follows_rule", result.FollowsRule())

	return result, nil
}
