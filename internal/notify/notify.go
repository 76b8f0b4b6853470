// Package notify alerts an operator over SMTP when a run gathered
// nothing at all. A silent all-source failure would otherwise only
// surface as a quietly empty page.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Kusta1889/ai-leaderboard-auto/internal/leaderboard"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("internal/notify")

type SmtpConfig struct {
	Server       string   `json:"server"`
	Port         int      `json:"port"`
	EmailAddress string   `json:"email_address"`
	Password     string   `json:"password"`
	To           []string `json:"to"`
}

func (c SmtpConfig) Enabled() bool {
	return c.Server != "" && len(c.To) > 0
}

func Message(failures []leaderboard.Failure) (subject, body string) {
	subject = "AI leaderboard scrape: every source failed"

	var b strings.Builder
	b.WriteString("Today's leaderboard run produced zero entries.\n\n")
	for _, f := range failures {
		fmt.Fprintf(&b, "- %s (%s): %s\n", f.Source, f.Stage, f.Reason)
	}
	b.WriteString("\nThe published page falls back to showing no data until the next run.")
	return subject, b.String()
}

func SendTotalFailure(ctx context.Context, config SmtpConfig, failures []leaderboard.Failure) error {
	ctx, span := tracer.Start(ctx, "SendTotalFailure")
	defer span.End()

	subject, body := Message(failures)

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Leaderboard Scraper <%s>", config.EmailAddress)
	mail.To = config.To
	mail.Subject = subject
	mail.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", config.Server, config.Port)
	err := mail.Send(addr, smtp.PlainAuth("", config.EmailAddress, config.Password, config.Server))
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send alert email")
		return err
	}
	return nil
}
