package pipeline

import (
	"time"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/notify"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/fetch"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/scrapers/artificialanalysis"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/scrapers/llmstats"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/scrapers/lmarena"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/scrapers/seal"
	"github.com/Kusta1889/ai-leaderboard-auto/lib/scrapers/vellum"
)

type SourceConfig struct {
	Url      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

type OutputConfig struct {
	Json string `json:"json"`
	Html string `json:"html"`
}

type Config struct {
	TimeoutSeconds int                     `json:"timeout_seconds"`
	UserAgent      string                  `json:"user_agent"`
	Output         OutputConfig            `json:"output"`
	Sources        map[string]SourceConfig `json:"sources"`
	Smtp           notify.SmtpConfig       `json:"smtp"`
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Second * 30
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) ApplyDefaults() {
	if c.Output.Json == "" {
		c.Output.Json = "output/latest_data.json"
	}
	if c.Output.Html == "" {
		c.Output.Html = "output/index.html"
	}
}

// the fixed set of scraped platforms. config may override a source's
// url or disable it, it cannot add new ones: adding a platform means
// writing an extractor for it.
func Registry(config Config) []Registration {
	builtin := []Registration{
		{
			Source:  fetch.Source{Name: lmarena.Name, Url: lmarena.DefaultUrl, Format: fetch.FormatHtml},
			Extract: lmarena.Extract,
		},
		{
			Source:  fetch.Source{Name: seal.Name, Url: seal.DefaultUrl, Format: fetch.FormatHtml},
			Extract: seal.Extract,
		},
		{
			Source:  fetch.Source{Name: vellum.Name, Url: vellum.DefaultUrl, Format: fetch.FormatJson},
			Extract: vellum.Extract,
		},
		{
			Source:  fetch.Source{Name: artificialanalysis.Name, Url: artificialanalysis.DefaultUrl, Format: fetch.FormatJson},
			Extract: artificialanalysis.Extract,
		},
		{
			Source:  fetch.Source{Name: llmstats.Name, Url: llmstats.DefaultUrl, Format: fetch.FormatHtml},
			Extract: llmstats.Extract,
		},
	}

	var out []Registration
	for _, reg := range builtin {
		override, ok := config.Sources[reg.Source.Name]
		if ok && override.Disabled {
			continue
		}
		if ok && override.Url != "" {
			reg.Source.Url = override.Url
		}
		out = append(out, reg)
	}
	return out
}
