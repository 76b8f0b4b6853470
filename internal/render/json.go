package render

import (
	"encoding/json"
	"os"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"
)

func WriteSnapshot(snap leaderboard.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(path, append(data, '\n'))
}

func ReadSnapshot(path string) (leaderboard.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return leaderboard.Snapshot{}, err
	}
	var snap leaderboard.Snapshot
	err = json.Unmarshal(data, &snap)
	if err != nil {
		return leaderboard.Snapshot{}, err
	}
	return snap, nil
}
