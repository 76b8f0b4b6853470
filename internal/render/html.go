package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"

	"github.com/jedib0t/go-pretty/v6/table"
)

var sourceTitles = map[string]string{
	"lmarena":            "LMArena",
	"seal":               "SEAL (Scale AI)",
	"vellum":             "Vellum",
	"artificialanalysis": "Artificial Analysis",
	"llmstats":           "LLM-Stats",
}

func SourceTitle(id string) string {
	if title, ok := sourceTitles[id]; ok {
		return title
	}
	return id
}

func scoreLabel(e leaderboard.Entry) string {
	if e.ScoreText != "" {
		return e.ScoreText
	}
	if e.Score != nil {
		return fmt.Sprintf("%g", *e.Score)
	}
	return "—"
}

func sourceTable(entries []leaderboard.Entry) template.HTML {
	t := table.NewWriter()
	t.Style().HTML.CSSClass = "leaderboard"
	t.AppendHeader(table.Row{"Rank", "Model", "Score"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Rank, e.ModelName, scoreLabel(e)})
	}
	return template.HTML(t.RenderHTML())
}

func consensusTable(rows []leaderboard.ConsensusRow) template.HTML {
	t := table.NewWriter()
	t.Style().HTML.CSSClass = "leaderboard"
	t.AppendHeader(table.Row{"Model", "Platforms", "Best Rank"})
	for _, row := range rows {
		titles := make([]string, len(row.Sources))
		for i, s := range row.Sources {
			titles[i] = SourceTitle(s)
		}
		t.AppendRow(table.Row{row.ModelName, strings.Join(titles, ", "), row.BestRank})
	}
	return template.HTML(t.RenderHTML())
}

type section struct {
	Title string
	Table template.HTML
}

type pageData struct {
	GeneratedAt string
	Sections    []section
	Consensus   template.HTML
	Failures    []leaderboard.Failure
}

func WritePage(snap leaderboard.Snapshot, path string) error {
	data := pageData{
		GeneratedAt: snap.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
		Failures:    snap.Failures,
	}

	for _, source := range leaderboard.Sources(snap.Entries) {
		data.Sections = append(data.Sections, section{
			Title: SourceTitle(source),
			Table: sourceTable(leaderboard.BySource(snap.Entries, source)),
		})
	}
	if consensus := leaderboard.Consensus(snap.Entries); len(consensus) > 0 {
		data.Consensus = consensusTable(consensus)
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, data)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>AI Leaderboard Comparison</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
	font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
	background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
	min-height: 100vh;
	padding: 20px;
	color: #fff;
}
.container { max-width: 1200px; margin: 0 auto; }
h1 { text-align: center; margin-bottom: 10px; font-size: 2rem; color: #00d4ff; }
h2 { margin: 30px 0 10px; font-size: 1.2rem; color: #b8b8d1; }
.subtitle { text-align: center; color: #888; margin-bottom: 30px; font-size: 0.9rem; }
table.leaderboard {
	width: 100%;
	border-collapse: collapse;
	background: #1e1e2f;
	border-radius: 12px;
}
table.leaderboard th, table.leaderboard td {
	padding: 12px;
	text-align: left;
	border: 1px solid #2d2d44;
	font-size: 0.85rem;
}
table.leaderboard th { background: #2d2d44; color: #00d4ff; text-transform: uppercase; }
table.leaderboard tr:hover td { background: #2a2a40; }
.nodata { text-align: center; color: #888; padding: 60px 0; font-style: italic; }
.failures { margin-top: 30px; color: #555; font-size: 0.8rem; }
</style>
</head>
<body>
<div class="container">
<h1>🏆 AI Leaderboard Comparison</h1>
<p class="subtitle">Last updated: {{.GeneratedAt}}</p>
{{if .Sections}}
{{range .Sections}}
<h2>{{.Title}}</h2>
{{.Table}}
{{end}}
{{if .Consensus}}
<h2>Cross-Platform Consensus</h2>
{{.Consensus}}
{{end}}
{{else}}
<p class="nodata">No data — every source failed or none are configured.</p>
{{end}}
{{if .Failures}}
<p class="failures">
{{range .Failures}}{{.Source}} ({{.Stage}}): {{.Reason}}<br>{{end}}
</p>
{{end}}
</div>
</body>
</html>
`))
