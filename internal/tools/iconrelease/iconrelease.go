// Package iconrelease records icon table releases and guards published pairs.
package iconrelease

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	entrypoint "github.com/louisbranch/apollo/internal/platform/cmd"
	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/compat"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
	"github.com/louisbranch/apollo/internal/services/icons/storage/sqlite"
)

// Commands understood by Run.
const (
	CommandPublish = "publish"
	CommandCheck   = "check"
	CommandList    = "list"
)

// Config holds release command configuration.
type Config struct {
	Command string
	DBPath  string        `env:"APOLLO_ICONS_DB_PATH" envDefault:"data/icons.db"`
	Timeout time.Duration `env:"APOLLO_ICONS_RELEASE_TIMEOUT" envDefault:"1m"`
	Version string
	Force   bool
	JSON    bool
}

// ParseConfig reads the command name from args[0] and its flags from the rest.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return Config{}, fmt.Errorf("command is required: %s, %s or %s", CommandPublish, CommandCheck, CommandList)
	}
	cfg.Command = args[0]
	switch cfg.Command {
	case CommandPublish, CommandCheck, CommandList:
	default:
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "release ledger path (default: APOLLO_ICONS_DB_PATH or data/icons.db)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.JSON, "json", false, "output JSON reports")
	if cfg.Command == CommandPublish {
		fs.StringVar(&cfg.Version, "version", "", "release version to publish")
		fs.BoolVar(&cfg.Force, "force", false, "publish even when published pairs are broken")
	}
	if err := entrypoint.ParseArgs(fs, args[1:]); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the configured command against the release ledger.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("-db is required")
	}
	if cfg.Command == CommandPublish && strings.TrimSpace(cfg.Version) == "" {
		return apperrors.New(apperrors.CodeReleaseVersionEmpty, "release version is required")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open release ledger: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(errOut, "close release ledger: %v\n", err)
		}
	}()

	switch cfg.Command {
	case CommandPublish:
		return publish(ctx, store, cfg, out, errOut)
	case CommandCheck:
		return check(ctx, store, cfg, out)
	case CommandList:
		return list(ctx, store, cfg, out)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

func publish(ctx context.Context, store storage.ReleaseStore, cfg Config, out, errOut io.Writer) error {
	version := strings.TrimSpace(cfg.Version)
	current := icons.Catalog()

	report, found, err := latestReport(ctx, store, current)
	if err != nil {
		return err
	}
	if found {
		fmt.Fprintln(errOut, report.Summary())
		if report.Breaking() {
			if !cfg.Force {
				return brokenError(report)
			}
			fmt.Fprintf(errOut, "publishing %s despite breaking changes (-force)\n", version)
		}
	}

	release := compat.Snapshot(version, current, time.Now().UTC())
	if err := store.PublishRelease(ctx, release); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return apperrors.WrapWithMetadata(apperrors.CodeReleaseAlreadyExists, "release already published",
				map[string]string{"Version": version}, err)
		}
		return fmt.Errorf("publish release: %w", err)
	}

	if cfg.JSON {
		return writeJSON(out, releaseSummary{Version: version, PublishedAt: release.PublishedAt, IconCount: len(release.Entries)})
	}
	fmt.Fprintf(out, "published %s with %d icons\n", version, len(release.Entries))
	return nil
}

func check(ctx context.Context, store storage.ReleaseStore, cfg Config, out io.Writer) error {
	report, found, err := latestReport(ctx, store, icons.Catalog())
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(out, "no published release")
		return nil
	}
	if cfg.JSON {
		if err := writeJSON(out, reportOutput(report)); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, report.Summary())
	}
	if report.Breaking() {
		return brokenError(report)
	}
	return nil
}

func list(ctx context.Context, store storage.ReleaseStore, cfg Config, out io.Writer) error {
	summaries, err := store.ListReleases(ctx)
	if err != nil {
		return fmt.Errorf("list releases: %w", err)
	}
	if cfg.JSON {
		rows := make([]releaseSummary, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, releaseSummary{Version: s.Version, PublishedAt: s.PublishedAt, IconCount: s.IconCount})
		}
		return writeJSON(out, rows)
	}
	if len(summaries) == 0 {
		fmt.Fprintln(out, "no published release")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tPUBLISHED\tICONS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Version, s.PublishedAt.UTC().Format(time.RFC3339), s.IconCount)
	}
	return tw.Flush()
}

// latestReport checks current against the newest release and the pairs of
// every older one. found is false when nothing was published yet.
func latestReport(ctx context.Context, store storage.ReleaseStore, current []icons.Definition) (compat.Report, bool, error) {
	history, err := compat.History(ctx, store)
	if errors.Is(err, storage.ErrNotFound) {
		return compat.Report{}, false, nil
	}
	if err != nil {
		return compat.Report{}, false, fmt.Errorf("load release history: %w", err)
	}
	return compat.CheckHistory(history, current), true, nil
}

func brokenError(report compat.Report) error {
	count := 0
	for _, v := range report.Violations {
		if v.Kind.Breaking() {
			count++
		}
	}
	return apperrors.WithMetadata(apperrors.CodeCompatBroken, "published icon pairs changed", map[string]string{
		"Count":   strconv.Itoa(count),
		"Version": report.Against,
	})
}

// Describe renders err for the terminal. Domain errors use their catalog message.
func Describe(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Localize("en-US")
	}
	return err.Error()
}

type releaseSummary struct {
	Version     string    `json:"version"`
	PublishedAt time.Time `json:"published_at"`
	IconCount   int       `json:"icon_count"`
}

type violationOutput struct {
	Kind     string `json:"kind"`
	Key      string `json:"key"`
	Previous string `json:"previous,omitempty"`
	Current  string `json:"current,omitempty"`
	Breaking bool   `json:"breaking"`
}

type reportJSON struct {
	Against    string            `json:"against"`
	Breaking   bool              `json:"breaking"`
	Violations []violationOutput `json:"violations"`
	Added      []string          `json:"added"`
}

func reportOutput(report compat.Report) reportJSON {
	result := reportJSON{
		Against:    report.Against,
		Breaking:   report.Breaking(),
		Violations: make([]violationOutput, 0, len(report.Violations)),
		Added:      append([]string{}, report.Added...),
	}
	for _, v := range report.Violations {
		result.Violations = append(result.Violations, violationOutput{
			Kind:     string(v.Kind),
			Key:      v.Key,
			Previous: v.Previous,
			Current:  v.Current,
			Breaking: v.Kind.Breaking(),
		})
	}
	return result
}

func writeJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
