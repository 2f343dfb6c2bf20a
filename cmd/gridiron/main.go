// Command gridiron is the scoreboard data CLI.
//
// Usage:
//
//	gridiron scores --league nfl --week 3
//	gridiron season --league nfl
//	gridiron team "Detroit Lions" --league nfl --synthetic-fallback
//	gridiron stats "Detroit Lions" --league nfl
//	gridiron boxscore 401547999 --league nfl
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gridironhq/gridiron-data/internal/cache"
	"github.com/gridironhq/gridiron-data/internal/config"
	"github.com/gridironhq/gridiron-data/internal/espn"
	"github.com/gridironhq/gridiron-data/internal/model"
	"github.com/gridironhq/gridiron-data/internal/normalize"
	"github.com/gridironhq/gridiron-data/internal/season"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var (
	leagueFlag string
	jsonFlag   bool
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "gridiron",
		Short: "Football scoreboard data CLI",
	}
	root.PersistentFlags().StringVar(&leagueFlag, "league", "nfl", "League (nfl or ncaa)")
	root.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of text")

	root.AddCommand(scoresCmd())
	root.AddCommand(seasonCmd())
	root.AddCommand(teamCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(boxscoreCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// scores command
// --------------------------------------------------------------------------

func scoresCmd() *cobra.Command {
	var week int
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show one week's scoreboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, deps deps) error {
				sb, err := deps.client.Scoreboard(ctx, deps.league, week)
				if err != nil {
					return err
				}
				games := normalize.Games(sb.EventList(), deps.league, logger)
				if jsonFlag {
					return printJSON(games)
				}
				if len(games) == 0 {
					fmt.Println("No games found.")
					return nil
				}
				for _, g := range games {
					printGame(g)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&week, "week", 0, "Week number (0 = current)")
	return cmd
}

// --------------------------------------------------------------------------
// season command
// --------------------------------------------------------------------------

func seasonCmd() *cobra.Command {
	var currentWeek int
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Walk the season's weeks and list every game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, deps deps) error {
				games, err := deps.fetcher.SeasonGames(ctx, deps.league, currentWeek)
				if err != nil {
					if errors.Is(err, season.ErrNoData) {
						fmt.Println("No games found.")
						return nil
					}
					return err
				}
				if jsonFlag {
					return printJSON(games)
				}
				week := -1
				for _, g := range games {
					if g.Week != week {
						week = g.Week
						fmt.Printf("\n%s\n", g.WeekName)
					}
					printGame(g)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&currentWeek, "current-week", 0, "Override the current week")
	return cmd
}

// --------------------------------------------------------------------------
// team command
// --------------------------------------------------------------------------

func teamCmd() *cobra.Command {
	var syntheticFallback bool
	cmd := &cobra.Command{
		Use:   "team <name>",
		Short: "Show a team's schedule (past and upcoming games)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, deps deps) error {
				deps.fetcher.FallbackSynthetic = syntheticFallback
				schedule, err := deps.fetcher.TeamGames(ctx, deps.league, args[0], 0)
				if err != nil {
					if errors.Is(err, season.ErrNoData) {
						fmt.Println("No games found for team.")
						return nil
					}
					return err
				}
				if jsonFlag {
					return printJSON(schedule)
				}
				if schedule.Synthetic {
					fmt.Println("(placeholder data — no real games found)")
				}
				fmt.Printf("Past games (%d):\n", len(schedule.Past))
				for _, g := range schedule.Past {
					printGame(g)
				}
				fmt.Printf("\nUpcoming games (%d):\n", len(schedule.Future))
				for _, g := range schedule.Future {
					printGame(g)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&syntheticFallback, "synthetic-fallback", false, "Generate placeholder data when no games are found")
	return cmd
}

// --------------------------------------------------------------------------
// stats command
// --------------------------------------------------------------------------

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <team>",
		Short: "Show a team's season statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, deps deps) error {
				schedule, err := deps.fetcher.TeamGames(ctx, deps.league, args[0], 0)
				if err != nil {
					return err
				}
				// Resolve the exact name the games carry before attributing
				// wins and losses.
				name := args[0]
				for _, g := range schedule.All() {
					if season.MatchesTeam(g.HomeTeam, name) {
						name = g.HomeTeam
						break
					}
					if season.MatchesTeam(g.AwayTeam, name) {
						name = g.AwayTeam
						break
					}
				}
				computed := normalize.ComputeTeamStats(schedule.All(), name)

				var direct *model.TeamStats
				if teamID, err := deps.client.FindTeamID(ctx, deps.league, name); err == nil && teamID != "" {
					if resp, err := deps.client.TeamStats(ctx, deps.league, teamID); err == nil {
						direct = normalize.TeamStats(resp, name)
					}
				}
				stats := normalize.MergeTeamStats(direct, computed)

				if jsonFlag {
					return printJSON(stats)
				}
				fmt.Printf("%s — %d-%d-%d (%.1f%%)\n",
					stats.TeamName, stats.Wins, stats.Losses, stats.Ties, stats.WinPercentage)
				fmt.Printf("Points: %d for, %d against (%+d)\n",
					stats.PointsFor, stats.PointsAgainst, stats.PointDifferential)
				if stats.CurrentStreakCount > 0 {
					fmt.Printf("Streak: %s%d\n", stats.CurrentStreakType, stats.CurrentStreakCount)
				}
				if stats.RecentForm.Form != "" {
					fmt.Printf("Recent form: %s\n", stats.RecentForm.Form)
				}
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// boxscore command
// --------------------------------------------------------------------------

func boxscoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxscore <eventID>",
		Short: "Show per-player stats for one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, deps deps) error {
				doc, err := deps.client.Boxscore(ctx, deps.league, args[0])
				if err != nil {
					return err
				}
				players := normalize.BoxscorePlayers(doc)
				if jsonFlag {
					return printJSON(players)
				}
				if len(players) == 0 {
					fmt.Println("No player stats available.")
					return nil
				}
				for _, p := range players {
					fmt.Printf("%s (#%s, %s) — %s\n", p.Name, p.Jersey, p.Position, p.Team)
					for k, v := range p.GameStats {
						fmt.Printf("  %s: %g\n", k, v)
					}
				}
				return nil
			})
		},
	}
	return cmd
}

// --------------------------------------------------------------------------
// shared plumbing
// --------------------------------------------------------------------------

type deps struct {
	cfg     *config.Config
	client  *espn.Client
	fetcher *season.Fetcher
	league  model.League
}

// run loads config, wires the client stack, and executes fn with a
// signal-aware context.
func run(fn func(ctx context.Context, deps deps) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	league := model.League(leagueFlag)
	if !league.Valid() {
		return fmt.Errorf("unknown league %q (supported: nfl, ncaa)", leagueFlag)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	appCache := cache.New(cfg.CacheEnabled, cfg.CacheTTL)
	client := espn.NewClient(cfg, appCache, logger)
	fetcher := season.NewFetcher(client, cfg, logger)

	start := time.Now()
	err = fn(ctx, deps{cfg: cfg, client: client, fetcher: fetcher, league: league})
	logger.Debug("command finished", "duration", time.Since(start).Round(time.Millisecond))
	return err
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printGame(g model.Game) {
	switch g.Status {
	case model.StatusFinal, model.StatusLive:
		fmt.Printf("  %-25s %3d  @  %-25s %3d  [%s]\n",
			g.AwayTeam, g.AwayScore, g.HomeTeam, g.HomeScore, g.Status)
	default:
		fmt.Printf("  %-25s      @  %-25s      %s %s\n",
			g.AwayTeam, g.HomeTeam, g.DisplayDate, g.DisplayTime)
	}
}
