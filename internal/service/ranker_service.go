package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/model"
	"go.uber.org/zap"
)

type RankerInterface interface {
	Rank(ctx context.Context, req *model.Requirement, projects []model.Project) []model.Project
}

// RankerService scores candidate projects against an extracted requirement
// and returns the thresholded, score-ordered subset. Whatever goes wrong, it
// returns the original candidate list unchanged: a matching failure must
// never surface as zero results.
type RankerService struct {
	llm    LLMClient
	cfg    *config.MatchingConfig
	logger *zap.Logger
}

func NewRankerService(llm LLMClient, cfg *config.MatchingConfig, logger *zap.Logger) *RankerService {
	return &RankerService{llm: llm, cfg: cfg, logger: logger}
}

type rankedResponse struct {
	RankedProjects []model.ScoredProject `json:"ranked_projects"`
}

// candidateEntry is the shape each project takes inside the ranker's user
// turn. Kept separate from model.Project so the prompt payload stays stable.
type candidateEntry struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Field             string `json:"field"`
	SkillRequirements string `json:"skill_requirements"`
}

func (s *RankerService) Rank(ctx context.Context, req *model.Requirement, projects []model.Project) []model.Project {
	if len(projects) == 0 {
		return projects
	}
	if !req.HasRankingSignal(s.cfg.FeaturesTrigger) {
		s.logger.Info("no ranking signal in requirement, returning all projects")
		return projects
	}

	userTurn, err := s.buildUserTurn(req, projects)
	if err != nil {
		s.logger.Warn("failed to serialize ranking payload", zap.Error(err))
		return projects
	}

	response, err := s.llm.Complete(ctx, rankerSystemPrompt, userTurn)
	if err != nil {
		s.logger.Warn("ranking call failed, returning all projects", zap.Error(err))
		return projects
	}

	var parsed rankedResponse
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &parsed); err != nil {
		s.logger.Warn("ranking response malformed, returning all projects", zap.Error(err))
		return projects
	}

	ranked := s.selectRanked(parsed.RankedProjects, projects)
	if len(ranked) == 0 {
		s.logger.Info("no project reached the score threshold, returning all projects",
			zap.Float64("threshold", s.cfg.ScoreThreshold))
		return projects
	}
	return ranked
}

// selectRanked applies the threshold and maps surviving ids back to Projects
// in score order. Ids the model invented are protocol violations and are
// dropped; ties keep the order the model returned them in.
func (s *RankerService) selectRanked(scored []model.ScoredProject, projects []model.Project) []model.Project {
	byID := make(map[uint]model.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	kept := make([]model.ScoredProject, 0, len(scored))
	for _, sp := range scored {
		if _, ok := byID[sp.ID]; !ok {
			s.logger.Warn("ranker returned unknown project id, ignoring", zap.Uint("id", sp.ID))
			continue
		}
		if sp.Score < s.cfg.ScoreThreshold {
			continue
		}
		kept = append(kept, sp)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	result := make([]model.Project, 0, len(kept))
	seen := make(map[uint]bool, len(kept))
	for _, sp := range kept {
		if seen[sp.ID] {
			continue
		}
		seen[sp.ID] = true
		result = append(result, byID[sp.ID])
	}
	return result
}

func (s *RankerService) buildUserTurn(req *model.Requirement, projects []model.Project) (string, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	candidates := make([]candidateEntry, 0, len(projects))
	for _, p := range projects {
		candidates = append(candidates, candidateEntry{
			ID:                p.ID,
			Name:              p.Name,
			Description:       p.Description,
			Field:             p.Field,
			SkillRequirements: p.SkillRequirements,
		})
	}
	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Student Requirements: %s\n", reqJSON)
	fmt.Fprintf(&b, "Project List: %s", candidatesJSON)
	return b.String(), nil
}

const rankerSystemPrompt = `#### Role
- AI Assistant Name: Project Matching Expert
- Main Task: Score and rank projects based on student requirements (including fields, keywords, features, and skills)

#### Capabilities
- Requirement Understanding: Understand student field interests, technical keywords, project features, and skill preferences
- Project Analysis: Analyze project descriptions, features, and skill requirements
- Relevance Scoring: Calculate matching degree between projects and requirements

#### Scoring Rules
Total 10 points, composed of four parts:
1. Field Matching (0-4 points):
   - Perfect match: 4 points
   - Related field: 2 points
   - Unrelated: 0 points

2. Keyword Matching (0-2 points):
   - Each keyword perfect match: 1 point
   - Each keyword related match: 0.5 points

3. Feature Matching (0-2 points):
   - Fully satisfies features: 2 points
   - Partially satisfies: 1 point
   - Does not satisfy: 0 points

4. Skill Matching (0-2 points):
   - Project required skills highly overlap with student skills: 2 points
   - Partial overlap or related: 1 point
   - Completely unmatched or student has no relevant skills: 0 points

#### Output Format
Must output valid JSON format:
{
    "ranked_projects": [
        {
            "id": ProjectID,
            "score": Score,
            "reasoning": "Scoring rationale, brief explanation of each part's score"
        }
    ]
}
score is a number between 0 and 10.

#### Notes
- If student provides no skills, skill matching part gets 0 points.
- If project lists no skill requirements, skill matching part is also considered 0 points, unless student skills highly relate to technologies in project description.`
