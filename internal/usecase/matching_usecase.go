package usecase

import (
	"context"

	"github.com/studentmatch/backend/internal/dto"
	"github.com/studentmatch/backend/internal/model"
	"github.com/studentmatch/backend/internal/service"
	"go.uber.org/zap"
)

type projectLister interface {
	FindAll() ([]model.Project, error)
}

// MatchingUsecase sequences the two-stage pipeline for one chat request:
// extract requirements, fetch all candidate projects, rank, respond. Each
// request is fully independent; nothing is persisted in between. Extraction
// and ranking both degrade to "show everything" on failure, so the only
// error this usecase can return is a persistence one.
type MatchingUsecase struct {
	extractor service.ExtractorInterface
	ranker    service.RankerInterface
	projects  projectLister
	logger    *zap.Logger
}

func NewMatchingUsecase(extractor service.ExtractorInterface, ranker service.RankerInterface, projects projectLister, logger *zap.Logger) *MatchingUsecase {
	return &MatchingUsecase{
		extractor: extractor,
		ranker:    ranker,
		projects:  projects,
		logger:    logger,
	}
}

func (uc *MatchingUsecase) Match(ctx context.Context, message string) (*dto.ChatResponse, error) {
	requirement := uc.extractor.Extract(ctx, message)

	candidates, err := uc.projects.FindAll()
	if err != nil {
		return nil, err
	}

	ranked := uc.ranker.Rank(ctx, requirement, candidates)

	uc.logger.Info("matching request completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(ranked)),
		zap.Bool("requirement_extracted", requirement != nil),
	)

	return &dto.ChatResponse{Projects: dto.NewProjectResponses(ranked)}, nil
}
