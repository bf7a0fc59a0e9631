package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/oriolmontal/lingodrill/internal/app"
	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/completion"
	"github.com/oriolmontal/lingodrill/internal/content"
	"github.com/oriolmontal/lingodrill/internal/hearts"
	"github.com/oriolmontal/lingodrill/internal/llm"
	"github.com/oriolmontal/lingodrill/internal/report"
	"github.com/oriolmontal/lingodrill/internal/scoring"
	"github.com/oriolmontal/lingodrill/internal/session"
	"github.com/oriolmontal/lingodrill/internal/stats"
	"github.com/oriolmontal/lingodrill/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a challenge session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	def := app.DefaultFetchParams()
	playCmd.Flags().StringP("language", "l", def.Language, "Target language code (e.g. es, fr, de)")
	playCmd.Flags().String("level", def.Level, "CEFR level (A1-C2)")
	playCmd.Flags().StringP("type", "t", string(def.Type), "Challenge type")
	playCmd.Flags().IntP("count", "n", def.Count, "Number of challenges in the session")
	playCmd.Flags().Bool("study", false, "Study mode: no hearts, XP, or statistics")
}

func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	params := app.DefaultFetchParams()
	params.Language = flagString(cmd, "language", params.Language)
	params.Level = flagString(cmd, "level", params.Level)
	params.Type = challenge.Type(flagString(cmd, "type", string(params.Type)))
	params.Count = flagInt(cmd, "count", params.Count)
	if !params.Type.Valid() {
		return fmt.Errorf("unknown challenge type %q (one of: %s)", params.Type, typeList())
	}
	if !challenge.ValidLevel(params.Level) {
		return fmt.Errorf("unknown CEFR level %q", params.Level)
	}
	studyMode, _ := cmd.Flags().GetBool("study")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repository: %w", err)
	}
	kv := st.KV()

	// Content comes from the LLM when configured, the built-in bank
	// otherwise. The session plays the same either way.
	var provider content.Provider = content.NewStatic()
	if llmProvider, err := llm.NewProviderFromEnv(ctx, eventRepo); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in challenge bank.")
	} else {
		provider = content.NewGenerator(llmProvider, content.DefaultConfig())
	}

	var authority hearts.Authority
	if url := os.Getenv("LINGODRILL_HEARTS_URL"); url != "" {
		authority = hearts.NewHTTPAuthority(url)
	}
	accountant := hearts.NewAccountant(hearts.DefaultConfig(), authority, kv, eventRepo)

	tracker := completion.NewTracker(kv)
	if err := tracker.CleanupOldRecords(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: completion cleanup failed:", err)
	}

	var reporter report.Reporter = report.NopReporter{}
	if url := os.Getenv("LINGODRILL_REPORT_URL"); url != "" {
		reporter = report.NewHTTPReporter(url)
	}
	defer reporter.Close()

	engine := session.NewEngine(scoring.DefaultConfig(), userID(), session.Deps{
		Hearts:     accountant,
		Stats:      stats.NewAggregator(stats.DefaultConfig(), kv),
		Completion: tracker,
		Reporter:   reporter,
		Events:     eventRepo,
	})

	err = app.Run(ctx, app.Options{
		Engine:    engine,
		Content:   provider,
		Params:    params,
		StudyMode: studyMode,
		In:        os.Stdin,
		Out:       os.Stdout,
	})
	if unavailable, ok := app.UnwrapContentError(err); ok {
		// Content failures are a user-facing condition, not a crash.
		return fmt.Errorf("no challenges available for %s %s %s: %w",
			params.Language, params.Level, params.Type, unavailable.Unwrap())
	}
	return err
}

func userID() string {
	if u := os.Getenv("LINGODRILL_USER"); u != "" {
		return u
	}
	return "local"
}

// flagString reads a string flag, falling back to def when the flag is
// not registered on the invoking command (the root command shares RunE
// with play but not its flag set).
func flagString(cmd *cobra.Command, name, def string) string {
	if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
		return v
	}
	return def
}

func flagInt(cmd *cobra.Command, name string, def int) int {
	if v, err := cmd.Flags().GetInt(name); err == nil && v > 0 {
		return v
	}
	return def
}

func typeList() string {
	out := ""
	for i, t := range challenge.AllTypes() {
		if i > 0 {
			out += ", "
		}
		out += string(t)
	}
	return out
}
