package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/oriolmontal/lingodrill/internal/stats"
	"github.com/oriolmontal/lingodrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		language, _ := cmd.Flags().GetString("language")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		agg := stats.NewAggregator(stats.DefaultConfig(), st.KV())

		today, err := agg.Today(ctx)
		if err != nil {
			return fmt.Errorf("read today's stats: %w", err)
		}
		streak, err := agg.CurrentStreak(ctx)
		if err != nil {
			return fmt.Errorf("read streak: %w", err)
		}

		fmt.Printf("Today (%s)\n", today.Day)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Challenges  %d\n", today.TotalChallenges)
		fmt.Printf("Correct     %d (%.0f%%)\n", today.CorrectAnswers, today.Accuracy()*100)
		fmt.Printf("XP earned   %d\n", today.TotalXP)
		fmt.Printf("Streak      %d day(s), longest %d\n", streak.Current, streak.Longest)

		history, err := agg.History(ctx, days)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		if len(history) > 0 {
			fmt.Println()
			fmt.Printf("Last %d days\n", days)
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("%-12s  %10s  %8s  %8s\n", "Day", "Challenges", "Correct", "XP")
			for _, d := range history {
				fmt.Printf("%-12s  %10d  %8d  %8d\n", d.Day, d.TotalChallenges, d.CorrectAnswers, d.TotalXP)
			}
		}

		if language != "" {
			cats, err := agg.Categories(ctx, language)
			if err != nil {
				return fmt.Errorf("read categories: %w", err)
			}
			if len(cats) > 0 {
				fmt.Println()
				fmt.Printf("Categories (%s)\n", language)
				fmt.Println(strings.Repeat("─", 48))
				for _, c := range cats {
					fmt.Printf("%-6s %-20s  %d/%d (%.0f%%)\n",
						c.Level, c.Category, c.Correct, c.Attempts, c.Accuracy()*100)
				}
			}
		}

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repository: %w", err)
		}
		sessions, err := eventRepo.RecentSessions(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("read recent sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent sessions")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-16s  %-16s  %-6s  %8s  %6s  %s\n",
				"When", "Type", "Lang", "Score", "XP", "End")
			for _, s := range sessions {
				fmt.Printf("%-16s  %-16s  %-6s  %5d/%-2d  %6d  %s\n",
					s.Timestamp.Local().Format("2006-01-02 15:04"),
					s.ChallengeType, s.Language,
					s.CorrectAnswers, s.ChallengesTotal,
					s.XPTotal, s.EndReason)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("days", "d", 7, "Days of history to show")
	statsCmd.Flags().StringP("language", "l", "", "Show category breakdown for a language")
}
