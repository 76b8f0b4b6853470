// Package leaderboard holds the normalized record shape every scraped
// source is reduced to, plus the merge rules applied before rendering.
package leaderboard

import (
	"log/slog"
	"slices"
	"strings"
	"time"
)

type Entry struct {
	Source      string    `json:"source"`
	ModelName   string    `json:"model_name"`
	Rank        int       `json:"rank"`
	Score       *float64  `json:"score,omitempty"`
	ScoreText   string    `json:"score_text,omitempty"`
	RetrievedAt time.Time `json:"retrieved_at"`
}

// one source's fetch or parse failure for a run. recorded in the
// snapshot so a missing column is explainable after the fact.
type Failure struct {
	Source string `json:"source"`
	Stage  string `json:"stage"`
	Reason string `json:"reason"`
}

const (
	StageFetch   = "fetch"
	StageExtract = "extract"
)

type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Entries     []Entry   `json:"entries"`
	Failures    []Failure `json:"failures,omitempty"`
}

func Sort(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return a.Rank - b.Rank
	})
}

// drops entries violating the rank invariant: ranks must be positive
// and unique within one source's result set. the first entry seen for
// a rank wins, later duplicates are logged and discarded.
func Validate(entries []Entry) []Entry {
	type sourceRank struct {
		source string
		rank   int
	}
	seen := map[sourceRank]struct{}{}

	valid := entries[:0]
	for _, e := range entries {
		if e.Rank <= 0 {
			slog.Warn("dropping entry with non-positive rank",
				"source", e.Source, "model", e.ModelName, "rank", e.Rank)
			continue
		}
		key := sourceRank{source: e.Source, rank: e.Rank}
		if _, dup := seen[key]; dup {
			slog.Warn("dropping entry with duplicate rank",
				"source", e.Source, "model", e.ModelName, "rank", e.Rank)
			continue
		}
		seen[key] = struct{}{}
		valid = append(valid, e)
	}
	return valid
}

// the distinct source ids present in the entry set, in sorted order
func Sources(entries []Entry) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, e := range entries {
		if _, ok := seen[e.Source]; ok {
			continue
		}
		seen[e.Source] = struct{}{}
		out = append(out, e.Source)
	}
	slices.Sort(out)
	return out
}

// the entries belonging to one source, sorted by rank ascending
func BySource(entries []Entry, source string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Source == source {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return a.Rank - b.Rank
	})
	return out
}
