package domain

import (
	"context"
	"time"
)

// 集成事件主题
const (
	TopicApplicationSubmitted = "election.application.submitted"
	TopicApplicationReviewed  = "election.application.reviewed"
)

// ApplicationSubmittedEvent 申请提交事件
type ApplicationSubmittedEvent struct {
	ApplicationID string    `json:"application_id"`
	StudentID     string    `json:"student_id"`
	Position      string    `json:"position"`
	Timestamp     time.Time `json:"timestamp"`
}

// ApplicationReviewedEvent 申请审核事件
type ApplicationReviewedEvent struct {
	ApplicationID string    `json:"application_id"`
	StudentID     string    `json:"student_id"`
	Status        string    `json:"status"`
	ReviewedBy    string    `json:"reviewed_by"`
	Timestamp     time.Time `json:"timestamp"`
}

// EventPublisher 集成事件发布端口，发布为尽力而为
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
