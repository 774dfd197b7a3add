package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/game"
	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/grid"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome        game.Outcome
	endTick        int
	coinsCollected int
	coinsTotal     int

	firstCoinTick int
	caughtTick    int
	caughtBy      string
	winTick       int

	safePassages int
	matches      int
	misses       int
}

type scenario struct {
	disguise     string // faction drawn before the first tick, or ""
	onlyGhosts   []ghost.Faction
	filterGhosts bool
	cfg          config.Config
	level        *grid.Level
	ticks        int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var disguise string
	var ghosts string
	var cfgPath string
	var levelPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 6000, "max ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&disguise, "disguise", "", "faction glyph drawn at the start (infinity, knot, bee, pentagram)")
	flag.StringVar(&ghosts, "ghosts", "", "comma-separated factions to keep (all when empty)")
	flag.StringVar(&cfgPath, "config", "", "JSON config file")
	flag.StringVar(&levelPath, "level", "", "ASCII level file (built-in maze when empty)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	sc := scenario{cfg: config.Default(), ticks: ticks}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		sc.cfg = cfg
	}
	if disguise != "" {
		if _, err := ghost.ParseFaction(disguise); err != nil {
			fmt.Printf("error: -disguise: %v\n", err)
			return
		}
		sc.disguise = disguise
	}
	if ghosts != "" {
		fs, err := parseFactions(ghosts)
		if err != nil {
			fmt.Printf("error: -ghosts: %v\n", err)
			return
		}
		sc.onlyGhosts = fs
		sc.filterGhosts = true
	}
	if levelPath != "" {
		f, err := os.Open(levelPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		lvl, err := grid.ParseLevel(f)
		_ = f.Close()
		if err != nil {
			fmt.Printf("error: level %s: %v\n", levelPath, err)
			return
		}
		sc.level = lvl
	}

	fmt.Printf("=== Headless Maze Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d disguise=%q ghosts=%q\n\n",
		runs, ticks, seedBase, seedStep, disguise, ghosts)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runScenario(i+1, seed, sc)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func parseFactions(list string) ([]ghost.Faction, error) {
	var out []ghost.Faction
	for _, name := range strings.Split(list, ",") {
		f, err := ghost.ParseFaction(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func runScenario(runIndex int, seed int64, sc scenario) (runStats, error) {
	opts := []game.TestOption{
		game.WithBaseConfig(sc.cfg),
		game.WithSeed(seed),
	}
	if sc.level != nil {
		opts = append(opts, game.WithLevel(sc.level))
	}
	if sc.filterGhosts {
		opts = append(opts, game.WithOnlyGhosts(sc.onlyGhosts...))
	}
	ts, err := game.NewTestSession(opts...)
	if err != nil {
		return runStats{}, err
	}
	if sc.disguise != "" {
		f, _ := ghost.ParseFaction(sc.disguise)
		ts.DrawBuiltin(f)
	}

	var seeker game.CoinSeeker
	ts.RunUntil(func(ts *game.TestSession) bool {
		seeker.Drive(ts.Session)
		return ts.Outcome() != game.Playing
	}, sc.ticks)

	j := ts.Journal()
	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		outcome:        ts.Outcome(),
		endTick:        ts.Tick(),
		coinsCollected: ts.Coins().Collected(),
		coinsTotal:     ts.Coins().Total(),
		firstCoinTick:  j.FirstTick("coin", "collected", ""),
		caughtTick:     j.FirstTick("ghost", "caught", ""),
		winTick:        j.FirstTick("round", "win", ""),
		safePassages:   ts.Count(game.EventSafePassage),
		matches:        ts.Count(game.EventDisguised),
		misses:         ts.Count(game.EventNoMatch),
	}
	for _, e := range ts.Seen {
		if e.Kind == game.EventCaught {
			rs.caughtBy = e.Faction.String()
			break
		}
	}
	return rs, nil
}

// verdict summarizes a run in one word.
func verdict(rs runStats) string {
	switch rs.outcome {
	case game.Won:
		return "win"
	case game.Caught:
		return "caught:" + rs.caughtBy
	default:
		return "timeout"
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("verdict=%s end_tick=%d coins=%d/%d\n", verdict(rs), rs.endTick, rs.coinsCollected, rs.coinsTotal)
	fmt.Printf("phase_markers: first_coin=%d caught=%d win=%d\n", rs.firstCoinTick, rs.caughtTick, rs.winTick)
	fmt.Printf("disguise_events: matched=%d missed=%d safe_passages=%d\n", rs.matches, rs.misses, rs.safePassages)
	fmt.Println()
}

type aggregate struct {
	runs      int
	wins      int
	caught    int
	timeouts  int
	coinSum   int
	safeSum   int
	byFaction map[string]int
	winTicks  []int
	caughtAt  []int
}

func aggregateRuns(all []runStats) aggregate {
	ag := aggregate{runs: len(all), byFaction: map[string]int{}}
	for _, rs := range all {
		ag.coinSum += rs.coinsCollected
		ag.safeSum += rs.safePassages
		switch rs.outcome {
		case game.Won:
			ag.wins++
			ag.winTicks = append(ag.winTicks, rs.winTick)
		case game.Caught:
			ag.caught++
			ag.byFaction[rs.caughtBy]++
			ag.caughtAt = append(ag.caughtAt, rs.caughtTick)
		default:
			ag.timeouts++
		}
	}
	return ag
}

func printAggregate(all []runStats) {
	ag := aggregateRuns(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d caught=%d timeouts=%d\n", ag.runs, ag.wins, ag.caught, ag.timeouts)
	fmt.Printf("avg_per_run: coins=%.1f safe_passages=%.1f\n", avg(ag.coinSum, ag.runs), avg(ag.safeSum, ag.runs))
	fmt.Printf("phase_marker_avg_ticks: win=%s caught=%s\n", avgTickString(ag.winTicks), avgTickString(ag.caughtAt))
	fmt.Printf("caught_by: %s\n", joinCounts(ag.byFaction))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(counts))
	for k := range counts {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s(%d)", l, counts[l])
	}
	return strings.Join(parts, ",")
}
