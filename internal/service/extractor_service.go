package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/model"
	"go.uber.org/zap"
)

type ExtractorInterface interface {
	Extract(ctx context.Context, utterance string) *model.Requirement
}

// ExtractorService turns one free-text student utterance into a structured
// Requirement, or nil when no requirement can be extracted. Every failure
// mode maps to nil; callers treat nil as "show everything".
type ExtractorService struct {
	llm    LLMClient
	cfg    *config.MatchingConfig
	logger *zap.Logger
}

func NewExtractorService(llm LLMClient, cfg *config.MatchingConfig, logger *zap.Logger) *ExtractorService {
	return &ExtractorService{llm: llm, cfg: cfg, logger: logger}
}

// genericQueries are listing-style phrasings. When extraction yields nothing
// actionable AND the utterance matches one of these, the empty result is a
// genuine "show me projects" rather than a failed extraction.
var genericQueries = []string{
	"what projects",
	"show projects",
	"all projects",
	"view projects",
	"project recommendations",
}

func (s *ExtractorService) Extract(ctx context.Context, utterance string) *model.Requirement {
	response, err := s.llm.Complete(ctx, s.systemPrompt(), utterance)
	if err != nil {
		s.logger.Warn("requirement extraction call failed", zap.Error(err))
		return nil
	}

	var req model.Requirement
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &req); err != nil {
		s.logger.Warn("requirement extraction returned malformed JSON", zap.Error(err))
		return nil
	}

	if req.IsEmpty() && isGenericQuery(utterance) {
		s.logger.Info("generic listing query, no requirement extracted",
			zap.String("utterance", utterance))
		return nil
	}

	s.logger.Info("requirement extracted",
		zap.Strings("fields", req.Fields),
		zap.Strings("keywords", req.Keywords),
		zap.Strings("features", req.Features),
		zap.Strings("skills", req.Skills),
	)
	return &req
}

func isGenericQuery(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, phrase := range genericQueries {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func (s *ExtractorService) systemPrompt() string {
	fieldList := "  - " + strings.Join(s.cfg.Fields, "\n  - ")

	return fmt.Sprintf(`#### Role
- AI Assistant Name: Project Requirements Analysis Expert
- Main Task: Analyze student project requirements, extract key information (including fields, technical keywords, project features, and required skills) and match to predefined project domains

#### Capabilities
- Requirement Analysis: Accurately understand student project interests and requirements
- Domain Matching: Precisely match requirements to predefined project domains
- Keyword Extraction: Identify technical keywords from requirements
- Feature Summarization: Extract specific project feature requirements mentioned by users
- Skill Identification: Identify programming languages, frameworks, tools mentioned or implied by users

#### Knowledge Base
- Project Domains:
%s
- Common Skills Examples (not limited to): Python, JavaScript, Java, C++, SQL, React, Angular, Vue, Node.js, Django, Flask, Spring, Machine Learning, Deep Learning, Data Analysis, AWS, Azure, Docker, Kubernetes, Git

#### Output Format
Must output valid JSON format:
{
    "fields": ["Field1"],
    "keywords": ["Keyword1", "Keyword2"],
    "features": ["Feature1"],
    "skills": ["Skill1", "Skill2"]
}
fields: array, 1-2 most relevant domains. keywords: array, max 3 keywords. features: array, specific feature requirements mentioned by the user. skills: array, skills mentioned or implied by the user, empty array [] if none.

#### Matching Rules
1. Fields: Must select from predefined domains
2. Keywords: Prioritize technology-related terms
3. Features: Only extract explicitly stated requirements
4. Skills: Identify directly mentioned programming languages, software, tools, or reasonably inferred skills from project descriptions.`, fieldList)
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models add even in forced-JSON mode.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
