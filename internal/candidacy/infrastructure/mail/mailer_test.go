package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/config"
)

func TestRejectionReasonText(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"known code", "insufficient_qualifications", "Your qualifications and experience do not meet the requirements for this position."},
		{"position filled", "position_filled", "This position has already been filled by other qualified candidates."},
		{"other falls back to generic", "other", "The election committee was unable to approve your application at this time."},
		{"empty falls back to generic", "", "The election committee was unable to approve your application at this time."},
		{"unknown passes through verbatim", "custom free-form reason", "custom free-form reason"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RejectionReasonText(tt.code))
		})
	}
}

func sampleApplication() *domain.Application {
	return &domain.Application{
		ApplicationID: "app-1",
		StudentID:     "2021-001",
		StudentName:   "Jane Tan",
		Email:         "jane@ub.edu",
		Position:      "President",
		PartyName:     "Unity Party",
	}
}

func TestMailerSubjects(t *testing.T) {
	sender := NewMockSender()
	m := NewMailer(sender)
	app := sampleApplication()

	require.NoError(t, m.SendSubmissionConfirmation(context.Background(), app))
	require.NoError(t, m.SendApprovalEmail(context.Background(), app))
	require.NoError(t, m.SendRejectionEmail(context.Background(), app, "academic_standing"))

	require.Len(t, sender.Sent, 3)
	assert.Equal(t, "Candidate Application Received - UB Voting System", sender.Sent[0].Subject)
	assert.Equal(t, "Candidate Application Approved - UB Voting System", sender.Sent[1].Subject)
	assert.Equal(t, "Candidate Application Update - UB Voting System", sender.Sent[2].Subject)

	for _, mail := range sender.Sent {
		assert.Equal(t, "jane@ub.edu", mail.To)
	}

	assert.Contains(t, sender.Sent[0].Body, "Unity Party")
	assert.Contains(t, sender.Sent[1].Body, "APPROVED")
	assert.Contains(t, sender.Sent[2].Body, "Your current academic standing does not meet the eligibility criteria.")
}

func TestSMTPSenderSkipsWithoutCredentials(t *testing.T) {
	sender := NewSMTPSender(config.SMTPConfig{Server: "smtp.example.com", Port: 587}, nil)

	// 凭证缺失时发送被跳过且不报错
	err := sender.Send(context.Background(), "jane@ub.edu", "subject", "<p>body</p>")
	require.NoError(t, err)
}
