package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studentmatch/backend/internal/model"
	"go.uber.org/zap"
)

func testProjects() []model.Project {
	return []model.Project{
		{ID: 1, Name: "AI Image Recognition Project", Field: "Healthcare"},
		{ID: 2, Name: "Blockchain Application Development", Field: "Blockchain"},
		{ID: 3, Name: "Smart Medical Diagnosis Assistant", Field: "Healthcare"},
	}
}

func healthcareRequirement() *model.Requirement {
	return &model.Requirement{
		Fields:   []string{"Healthcare"},
		Keywords: []string{"AI"},
		Skills:   []string{"Python"},
	}
}

func projectIDs(projects []model.Project) []uint {
	ids := make([]uint, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRankShortCircuitsWithoutRequirement(t *testing.T) {
	stub := &stubLLM{}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())
	projects := testProjects()

	result := ranker.Rank(context.Background(), nil, projects)

	assert.Equal(t, projectIDs(projects), projectIDs(result))
	assert.Zero(t, stub.calls, "short-circuit must not call the model")
}

func TestRankShortCircuitsWhenOnlyFeaturesPresent(t *testing.T) {
	stub := &stubLLM{}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())
	req := &model.Requirement{Features: []string{"interactive dashboard"}}

	result := ranker.Rank(context.Background(), req, testProjects())

	assert.Equal(t, []uint{1, 2, 3}, projectIDs(result))
	assert.Zero(t, stub.calls)
}

func TestRankFeaturesTriggerConfigEnablesScoring(t *testing.T) {
	stub := &stubLLM{responses: []string{`{"ranked_projects":[{"id":1,"score":7,"reasoning":"ok"}]}`}}
	cfg := testMatchingConfig()
	cfg.FeaturesTrigger = true
	ranker := NewRankerService(stub, cfg, zap.NewNop())
	req := &model.Requirement{Features: []string{"interactive dashboard"}}

	result := ranker.Rank(context.Background(), req, testProjects())

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, []uint{1}, projectIDs(result))
}

func TestRankThresholdAndOrdering(t *testing.T) {
	// Scores 8 / 2 / 5: project 2 falls below the threshold, the rest come
	// back in score order.
	stub := &stubLLM{responses: []string{
		`{"ranked_projects":[{"id":1,"score":8,"reasoning":"strong"},{"id":2,"score":2,"reasoning":"weak"},{"id":3,"score":5,"reasoning":"ok"}]}`,
	}}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())

	result := ranker.Rank(context.Background(), healthcareRequirement(), testProjects())

	assert.Equal(t, []uint{1, 3}, projectIDs(result))
}

func TestRankSortsByScoreWhenModelOrderDiffers(t *testing.T) {
	stub := &stubLLM{responses: []string{
		`{"ranked_projects":[{"id":3,"score":5,"reasoning":"ok"},{"id":1,"score":8,"reasoning":"strong"}]}`,
	}}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())

	result := ranker.Rank(context.Background(), healthcareRequirement(), testProjects())

	assert.Equal(t, []uint{1, 3}, projectIDs(result))
}

func TestRankTiesKeepModelOrder(t *testing.T) {
	stub := &stubLLM{responses: []string{
		`{"ranked_projects":[{"id":3,"score":6,"reasoning":"a"},{"id":1,"score":6,"reasoning":"b"}]}`,
	}}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())

	result := ranker.Rank(context.Background(), healthcareRequirement(), testProjects())

	assert.Equal(t, []uint{3, 1}, projectIDs(result))
}

func TestRankIgnoresUnknownAndDuplicateIDs(t *testing.T) {
	stub := &stubLLM{responses: []string{
		`{"ranked_projects":[{"id":99,"score":9,"reasoning":"invented"},{"id":1,"score":8,"reasoning":"ok"},{"id":1,"score":7,"reasoning":"dup"}]}`,
	}}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())
	projects := testProjects()

	result := ranker.Rank(context.Background(), healthcareRequirement(), projects)

	require.Equal(t, []uint{1}, projectIDs(result))
	// Output is always a subset of the input candidates.
	for _, p := range result {
		assert.Contains(t, projectIDs(projects), p.ID)
	}
}

func TestRankFallsBackToFullListOnFailures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubLLM
	}{
		{"transport error", &stubLLM{err: errors.New("timeout")}},
		{"malformed JSON", &stubLLM{responses: []string{"oops"}}},
		{"missing key", &stubLLM{responses: []string{`{"something_else":[]}`}}},
		{"all below threshold", &stubLLM{responses: []string{`{"ranked_projects":[{"id":1,"score":1,"reasoning":"no"},{"id":2,"score":2,"reasoning":"no"}]}`}}},
		{"only invented ids", &stubLLM{responses: []string{`{"ranked_projects":[{"id":42,"score":9,"reasoning":"?"}]}`}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranker := NewRankerService(tt.stub, testMatchingConfig(), zap.NewNop())
			projects := testProjects()

			result := ranker.Rank(context.Background(), healthcareRequirement(), projects)

			assert.Equal(t, projectIDs(projects), projectIDs(result),
				"fallback must return the original list in original order")
		})
	}
}

func TestRankEmptyCandidateListStaysEmpty(t *testing.T) {
	stub := &stubLLM{}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())

	result := ranker.Rank(context.Background(), healthcareRequirement(), nil)

	assert.Empty(t, result)
	assert.Zero(t, stub.calls)
}

func TestRankUserTurnCarriesRequirementAndCandidates(t *testing.T) {
	stub := &stubLLM{responses: []string{`{"ranked_projects":[{"id":1,"score":8,"reasoning":"ok"}]}`}}
	ranker := NewRankerService(stub, testMatchingConfig(), zap.NewNop())

	ranker.Rank(context.Background(), healthcareRequirement(), testProjects())

	assert.Contains(t, stub.lastUser, "Student Requirements:")
	assert.Contains(t, stub.lastUser, "Project List:")
	assert.Contains(t, stub.lastUser, `"Healthcare"`)
	assert.Contains(t, stub.lastUser, "AI Image Recognition Project")
	assert.Contains(t, stub.lastSystem, "Scoring Rules")
}
