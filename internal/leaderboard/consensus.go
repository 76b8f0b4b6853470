package leaderboard

import (
	"slices"
	"strings"

	"github.com/Kusta1889/ai-leaderboard-auto/lib/textutil"

	"github.com/antzucaro/matchr"
)

// similarity threshold below which two model labels are treated as
// different models. labels vary per site ("Gemini 3 Pro" vs
// "gemini-3-pro") so exact matching would miss most overlap.
const consensusSimilarity = 0.92

type ConsensusRow struct {
	ModelName string   `json:"model_name"`
	Sources   []string `json:"sources"`
	BestRank  int      `json:"best_rank"`
}

// groups entries naming the same model across sources using
// JaroWinkler similarity on normalized labels, and reports every
// model that at least two platforms agree on. the display name is
// taken from the entry with the best rank.
func Consensus(entries []Entry) []ConsensusRow {
	type group struct {
		normalized string
		row        ConsensusRow
	}
	var groups []*group

	for _, e := range entries {
		normalized := textutil.NormalizeName(e.ModelName)
		if normalized == "" {
			continue
		}

		var target *group
		for _, g := range groups {
			if matchr.JaroWinkler(normalized, g.normalized, false) >= consensusSimilarity {
				target = g
				break
			}
		}
		if target == nil {
			groups = append(groups, &group{
				normalized: normalized,
				row: ConsensusRow{
					ModelName: e.ModelName,
					Sources:   []string{e.Source},
					BestRank:  e.Rank,
				},
			})
			continue
		}

		if !slices.Contains(target.row.Sources, e.Source) {
			target.row.Sources = append(target.row.Sources, e.Source)
		}
		if e.Rank < target.row.BestRank {
			target.row.BestRank = e.Rank
			target.row.ModelName = e.ModelName
		}
	}

	var rows []ConsensusRow
	for _, g := range groups {
		if len(g.row.Sources) < 2 {
			continue
		}
		slices.Sort(g.row.Sources)
		rows = append(rows, g.row)
	}
	slices.SortFunc(rows, func(a, b ConsensusRow) int {
		if c := len(b.Sources) - len(a.Sources); c != 0 {
			return c
		}
		if c := a.BestRank - b.BestRank; c != 0 {
			return c
		}
		return strings.Compare(a.ModelName, b.ModelName)
	})
	return rows
}
