package game

import (
	"fmt"
	"strings"
)

// JournalEntry is one recorded session event.
type JournalEntry struct {
	Tick     int
	Actor    string  // "P", "G0".."Gn", or "--" for round-level events
	Category string  // coin, round, ghost, glyph, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] G1   ghost     caught           knot at (4,7)
func (e JournalEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// Journal collects structured events of a session. Unlike the HUD ring
// buffer it is unbounded and machine-readable.
type Journal struct {
	entries []JournalEntry
	verbose bool
}

// NewJournal creates a Journal. If verbose is true, per-tick movement and
// decision entries are also recorded.
func NewJournal(verbose bool) *Journal {
	return &Journal{verbose: verbose}
}

// Add records a new entry.
func (j *Journal) Add(tick int, actor, category, key, value string, numVal float64) {
	j.entries = append(j.entries, JournalEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (j *Journal) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !j.verbose {
		return
	}
	j.Add(tick, actor, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (j *Journal) Verbose() bool { return j.verbose }

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (j *Journal) Filter(category, key string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for a specific actor label.
func (j *Journal) FilterActor(label string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (j *Journal) CountCategory(category, key string) int {
	return len(j.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (j *Journal) LastOf(category, key string) (JournalEntry, bool) {
	entries := j.Filter(category, key)
	if len(entries) == 0 {
		return JournalEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FirstTick returns the tick of the first entry matching category, key and
// value substring, or -1.
func (j *Journal) FirstTick(category, key, valueSubstr string) int {
	for _, e := range j.entries {
		if matches(e, category, key, valueSubstr) {
			return e.Tick
		}
	}
	return -1
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (j *Journal) HasEntry(category, key, valueSubstr string) bool {
	return j.FirstTick(category, key, valueSubstr) >= 0
}

func matches(e JournalEntry, category, key, valueSubstr string) bool {
	if category != "" && e.Category != category {
		return false
	}
	if key != "" && e.Key != key {
		return false
	}
	return valueSubstr == "" || strings.Contains(e.Value, valueSubstr)
}

// Format returns the full log as a single string for t.Log output.
func (j *Journal) Format() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of a session snapshot.
func (j *Journal) Summary(snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", snap.Tick)
	fmt.Fprintf(&sb, "Outcome: %s  coins: %d/%d\n", snap.Outcome, snap.CoinsTotal-snap.CoinsRemaining, snap.CoinsTotal)
	if snap.Disguised {
		fmt.Fprintf(&sb, "Disguise: %s\n", snap.Disguise)
	} else {
		sb.WriteString("Disguise: none\n")
	}
	for _, g := range snap.Ghosts {
		fmt.Fprintf(&sb, "G%d %-9s at %s heading %s\n", g.Index, g.Faction, g.Pos, g.Dir)
	}
	fmt.Fprintf(&sb, "Contacts: caught=%d safe=%d  drawings: matched=%d missed=%d\n",
		j.CountCategory("ghost", "caught"), j.CountCategory("ghost", "safe_passage"),
		j.CountCategory("glyph", "match"), j.CountCategory("glyph", "no_match"))
	return sb.String()
}
