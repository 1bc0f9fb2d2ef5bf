package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"review-cycle-backend/internal/database/models"
	"review-cycle-backend/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var peerEvaluationTemplate = template.Must(template.ParseFS(templateFS, "templates/peer_evaluation.html"))

const dateLayout = "2006-01-02"

// Result counts the outcome of one notification fan-out
type Result struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// PeerEvaluationNotifier tells employees that peer evaluation has opened
type PeerEvaluationNotifier struct {
	sender Sender
	link   string
}

// NewPeerEvaluationNotifier creates a new notifier
func NewPeerEvaluationNotifier(sender Sender, link string) *PeerEvaluationNotifier {
	return &PeerEvaluationNotifier{sender: sender, link: link}
}

type peerEvaluationMail struct {
	Name        string
	PeriodName  string
	WindowStart string
	WindowEnd   string
	Link        string
}

// Window returns the peer evaluation window announced for a period: seven to three days before its end
func Window(period *models.Period) (time.Time, time.Time) {
	return period.EndDate.AddDate(0, 0, -7), period.EndDate.AddDate(0, 0, -3)
}

// Subject returns the mail subject for a period
func Subject(period *models.Period) string {
	return fmt.Sprintf("[Request] %s peer review has arrived", period.Name)
}

// Notify sends one mail per employee with an address. A failed recipient is
// logged and counted; it never stops the remaining sends.
func (n *PeerEvaluationNotifier) Notify(ctx context.Context, period *models.Period, employees []models.Employee) Result {
	log := logger.WithContext(ctx).WithField("period_id", period.ID)
	start, end := Window(period)
	subject := Subject(period)

	var result Result
	for i := range employees {
		employee := &employees[i]
		if !employee.HasEmail() {
			result.Skipped++
			continue
		}

		body, err := render(peerEvaluationMail{
			Name:        employee.Name,
			PeriodName:  period.Name,
			WindowStart: start.Format(dateLayout),
			WindowEnd:   end.Format(dateLayout),
			Link:        n.link,
		})
		if err == nil {
			err = n.sender.Send(ctx, employee.Email, subject, body)
		}
		if err != nil {
			result.Failed++
			log.WithField("emp_no", employee.EmpNo).WithError(err).Warn("failed to send peer evaluation notification")
			continue
		}
		result.Sent++
	}

	log.WithFields(map[string]interface{}{
		"sent":    result.Sent,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("peer evaluation notifications dispatched")
	return result
}

func render(data peerEvaluationMail) (string, error) {
	var buf bytes.Buffer
	if err := peerEvaluationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render peer evaluation mail: %w", err)
	}
	return buf.String(), nil
}
