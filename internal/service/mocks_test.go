package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"ai-tutor-be/internal/entity"
	"ai-tutor-be/internal/repository/contract"
	"ai-tutor-be/internal/repository/specification"
	"ai-tutor-be/internal/repository/unitofwork"
	"ai-tutor-be/pkg/embedding"
	"ai-tutor-be/pkg/llm"
)

// stubLLM replays a scripted queue of completions and records every prompt
// it was asked.
type stubLLM struct {
	responses []string
	errs      []error
	calls     []string
}

func (s *stubLLM) next() (string, error) {
	i := len(s.calls) - 1
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", fmt.Errorf("stub exhausted after %d calls", i)
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	last := ""
	if len(history) > 0 {
		last = history[len(history)-1].Content
	}
	s.calls = append(s.calls, last)
	return s.next()
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.calls = append(s.calls, prompt)
	return s.next()
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error {
	return nil
}

// fakeUow is an in-memory unit of work shared across the factory's handouts
// so tests can inspect what was written. Rollback discards writes made since
// Begin.
type fakeUow struct {
	problems   []*entity.Problem
	solutions  []*entity.Solution
	refs       []*entity.Reflection
	histories  []*entity.LearningHistory
	embeddings []*entity.SolutionEmbedding

	inTx             bool
	txMark           [5]int
	beginErr         error
	writeErr         error
	solutionWriteErr error
	commits          int
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.inTx = true
	u.txMark = [5]int{len(u.problems), len(u.solutions), len(u.refs), len(u.histories), len(u.embeddings)}
	return nil
}

func (u *fakeUow) Commit() error {
	u.inTx = false
	u.commits++
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.inTx {
		u.problems = u.problems[:u.txMark[0]]
		u.solutions = u.solutions[:u.txMark[1]]
		u.refs = u.refs[:u.txMark[2]]
		u.histories = u.histories[:u.txMark[3]]
		u.embeddings = u.embeddings[:u.txMark[4]]
	}
	u.inTx = false
	return nil
}

func (u *fakeUow) ProblemRepository() contract.ProblemRepository   { return &fakeProblemRepo{u} }
func (u *fakeUow) SolutionRepository() contract.SolutionRepository { return &fakeSolutionRepo{u} }
func (u *fakeUow) ReflectionRepository() contract.ReflectionRepository {
	return &fakeReflectionRepo{u}
}
func (u *fakeUow) LearningHistoryRepository() contract.LearningHistoryRepository {
	return &fakeHistoryRepo{u}
}
func (u *fakeUow) SolutionEmbeddingRepository() contract.SolutionEmbeddingRepository {
	return &fakeEmbeddingRepo{u}
}

type fakeProblemRepo struct{ u *fakeUow }

func (r *fakeProblemRepo) Create(ctx context.Context, problem *entity.Problem) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	cp := *problem
	r.u.problems = append(r.u.problems, &cp)
	return nil
}

func (r *fakeProblemRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Problem, error) {
	for _, p := range r.u.problems {
		if p.Id == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProblemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Problem, error) {
	domain := ""
	limit := 0
	desc := false
	for _, sp := range specs {
		switch s := sp.(type) {
		case specification.ByDomain:
			domain = s.Domain
		case specification.Limit:
			limit = s.Count
		case specification.OrderBy:
			desc = s.Desc
		}
	}

	var out []*entity.Problem
	for _, p := range r.u.problems {
		if domain == "" || p.Domain == domain {
			out = append(out, p)
		}
	}
	if desc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSolutionRepo struct{ u *fakeUow }

func (r *fakeSolutionRepo) Create(ctx context.Context, solution *entity.Solution) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	if r.u.solutionWriteErr != nil {
		return r.u.solutionWriteErr
	}
	cp := *solution
	r.u.solutions = append(r.u.solutions, &cp)
	return nil
}

func (r *fakeSolutionRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Solution, error) {
	for _, s := range r.u.solutions {
		if s.Id == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSolutionRepo) Update(ctx context.Context, solution *entity.Solution) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	for i, s := range r.u.solutions {
		if s.Id == solution.Id {
			cp := *solution
			r.u.solutions[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("solution %s not found", solution.Id)
}

type fakeReflectionRepo struct{ u *fakeUow }

func (r *fakeReflectionRepo) Create(ctx context.Context, reflection *entity.Reflection) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	cp := *reflection
	r.u.refs = append(r.u.refs, &cp)
	return nil
}

func (r *fakeReflectionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reflection, error) {
	var out []*entity.Reflection
	for _, ref := range r.u.refs {
		keep := true
		for _, sp := range specs {
			if s, ok := sp.(specification.BySolutionID); ok && ref.SolutionId != s.SolutionID {
				keep = false
			}
		}
		if keep {
			out = append(out, ref)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct{ u *fakeUow }

func (r *fakeHistoryRepo) Create(ctx context.Context, history *entity.LearningHistory) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	cp := *history
	r.u.histories = append(r.u.histories, &cp)
	return nil
}

func (r *fakeHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningHistory, error) {
	var out []*entity.LearningHistory
	for _, h := range r.u.histories {
		keep := true
		for _, sp := range specs {
			if s, ok := sp.(specification.ByProblemID); ok && h.ProblemId != s.ProblemID {
				keep = false
			}
		}
		if keep {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeEmbeddingRepo struct{ u *fakeUow }

func (r *fakeEmbeddingRepo) Create(ctx context.Context, emb *entity.SolutionEmbedding) error {
	if r.u.writeErr != nil {
		return r.u.writeErr
	}
	cp := *emb
	r.u.embeddings = append(r.u.embeddings, &cp)
	return nil
}

func (r *fakeEmbeddingRepo) DeleteBySolutionId(ctx context.Context, solutionId uuid.UUID) error {
	kept := r.u.embeddings[:0]
	for _, e := range r.u.embeddings {
		if e.SolutionId != solutionId {
			kept = append(kept, e)
		}
	}
	r.u.embeddings = kept
	return nil
}

func (r *fakeEmbeddingRepo) FindSimilar(ctx context.Context, queryEmbedding []float32, threshold float64, limit int) ([]*entity.SimilarSolution, error) {
	var hits []*entity.SimilarSolution
	for _, e := range r.u.embeddings {
		for _, s := range r.u.solutions {
			if s.Id == e.SolutionId {
				hits = append(hits, &entity.SimilarSolution{Solution: *s, Similarity: 0.9})
			}
		}
		if len(hits) == limit {
			break
		}
	}
	return hits, nil
}

type stubEmbedder struct {
	err   error
	calls int
}

func (s *stubEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type stubPublisher struct {
	payloads [][]byte
	err      error
}

func (s *stubPublisher) Publish(ctx context.Context, payload []byte) error {
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, payload)
	return nil
}
