package main

import (
	"github.com/Kusta1889/ai-leaderboard-auto/cmd/leaderboard/cmd"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/serviceutil"
)

func main() {
	cmd.Execute(serviceutil.SignalContext())
}
