package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/pkg/logger"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService indexes solutions for retrieval: it listens for embed
// events and rebuilds the solution's embedding row.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedSolutionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("indexer", "failed to unmarshal embed event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite retry.
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	solution, err := uow.SolutionRepository().FindById(ctx, payload.SolutionId)
	if err != nil {
		cs.log.Error("indexer", "failed to load solution", map[string]interface{}{
			"solution_id": payload.SolutionId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}
	if solution == nil {
		// Solution deleted between publish and consume. Nothing to index.
		msg.Ack()
		return
	}

	document := fmt.Sprintf("Explanation:\n%s\n\nCode:\n%s", solution.Explanation, solution.Code)

	res, err := cs.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		cs.log.Error("indexer", "failed to generate embedding", map[string]interface{}{
			"solution_id": payload.SolutionId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	if err := uow.Begin(ctx); err != nil {
		cs.log.Error("indexer", "failed to begin transaction", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	// Re-indexing replaces the previous row so each solution has at most one
	// embedding.
	if err := uow.SolutionEmbeddingRepository().DeleteBySolutionId(ctx, solution.Id); err != nil {
		_ = uow.Rollback()
		cs.log.Error("indexer", "failed to delete old embedding", map[string]interface{}{
			"solution_id": solution.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	embeddingRow := entity.SolutionEmbedding{
		Id:             uuid.New(),
		SolutionId:     solution.Id,
		Document:       document,
		EmbeddingValue: res.Embedding.Values,
		CreatedAt:      time.Now(),
	}
	if err := uow.SolutionEmbeddingRepository().Create(ctx, &embeddingRow); err != nil {
		_ = uow.Rollback()
		cs.log.Error("indexer", "failed to save embedding", map[string]interface{}{
			"solution_id": solution.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		cs.log.Error("indexer", "failed to commit embedding", map[string]interface{}{
			"solution_id": solution.Id.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("indexer", "solution indexed", map[string]interface{}{
		"solution_id": solution.Id.String(),
	})
	msg.Ack()
}
