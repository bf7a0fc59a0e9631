package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oriolmontal/lingodrill/internal/challenge"
	"github.com/oriolmontal/lingodrill/internal/hearts"
	"github.com/oriolmontal/lingodrill/internal/store"
	"github.com/spf13/cobra"
)

var heartsCmd = &cobra.Command{
	Use:   "hearts",
	Short: "Show heart pools per challenge type",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		accountant := hearts.NewAccountant(hearts.DefaultConfig(), nil, st.KV(), eventRepo)

		ctx := context.Background()
		now := time.Now()

		fmt.Printf("%-20s  %-8s  %s\n", "Challenge type", "Hearts", "Next refill")
		fmt.Println(strings.Repeat("─", 56))
		for _, t := range challenge.AllTypes() {
			pool, err := accountant.Peek(ctx, t)
			if err != nil {
				return fmt.Errorf("read pool for %s: %w", t, err)
			}
			refill := "-"
			if pool.NextRefillAt != nil && !pool.Full() {
				refill = "in " + pool.NextRefillAt.Sub(now).Round(time.Second).String()
			}
			fmt.Printf("%-20s  %d/%-6d  %s\n", t, pool.Remaining, pool.Capacity, refill)
		}
		return nil
	},
}
