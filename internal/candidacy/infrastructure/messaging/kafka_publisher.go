// Package messaging 候选上下文集成事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/mq"
)

// KafkaPublisher 通过共享的 Kafka producer 发布申请生命周期事件
type KafkaPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaPublisher 创建 KafkaPublisher 实例
func NewKafkaPublisher(producer *mq.KafkaProducer) *KafkaPublisher {
	return &KafkaPublisher{producer: producer}
}

// Publish 实现 domain.EventPublisher
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}

var _ domain.EventPublisher = (*KafkaPublisher)(nil)
