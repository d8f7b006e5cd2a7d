package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutor-be/internal/dto"
	"ai-tutor-be/internal/entity"
)

const testEmbedTopic = "EMBED_SOLUTION_TEST"

func newIndexerFixture(t *testing.T, uow *fakeUow) (IConsumerService, IPublisherService) {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	embedder := &stubEmbedder{}
	consumer := NewConsumerService(pubSub, testEmbedTopic, &fakeUowFactory{uow: uow}, embedder, nopLogger{})
	publisher := NewPublisherService(testEmbedTopic, pubSub)
	return consumer, publisher
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestConsumer_IndexesPublishedSolution(t *testing.T) {
	uow := &fakeUow{}
	sol := &entity.Solution{
		Id:          uuid.New(),
		ProblemId:   uuid.New(),
		Code:        "git push",
		Explanation: "publishes commits",
		CreatedAt:   time.Now(),
	}
	uow.solutions = append(uow.solutions, sol)

	consumer, publisher := newIndexerFixture(t, uow)
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishEmbedSolutionMessage{SolutionId: sol.Id})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	waitFor(t, func() bool { return len(uow.embeddings) == 1 })
	assert.Equal(t, sol.Id, uow.embeddings[0].SolutionId)
	assert.Contains(t, uow.embeddings[0].Document, "publishes commits")
	assert.Contains(t, uow.embeddings[0].Document, "git push")
	assert.NotEmpty(t, uow.embeddings[0].EmbeddingValue)
}

func TestConsumer_ReindexReplacesEmbedding(t *testing.T) {
	uow := &fakeUow{}
	sol := &entity.Solution{
		Id:          uuid.New(),
		ProblemId:   uuid.New(),
		Code:        "ls",
		Explanation: "lists files",
		CreatedAt:   time.Now(),
	}
	uow.solutions = append(uow.solutions, sol)
	uow.embeddings = append(uow.embeddings, &entity.SolutionEmbedding{
		Id:             uuid.New(),
		SolutionId:     sol.Id,
		Document:       "stale",
		EmbeddingValue: []float32{0},
		CreatedAt:      time.Now(),
	})

	consumer, publisher := newIndexerFixture(t, uow)
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishEmbedSolutionMessage{SolutionId: sol.Id})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	waitFor(t, func() bool {
		return len(uow.embeddings) == 1 && uow.embeddings[0].Document != "stale"
	})
	assert.Contains(t, uow.embeddings[0].Document, "lists files")
}

func TestConsumer_UnknownSolutionIsAcked(t *testing.T) {
	uow := &fakeUow{}
	consumer, publisher := newIndexerFixture(t, uow)
	ctx := context.Background()
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishEmbedSolutionMessage{SolutionId: uuid.New()})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	// Give the consumer a moment; nothing should be written and the loop
	// keeps running for later messages.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, uow.embeddings)
}
