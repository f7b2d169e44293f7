package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/fadilmartias/portfolio-gen/internal/parser"
	"github.com/fadilmartias/portfolio-gen/internal/repository"
	"github.com/fadilmartias/portfolio-gen/internal/service"
	"github.com/pgvector/pgvector-go"
)

// Embedder is the optional embedding capability used for similar-portfolio
// search. GeminiService satisfies it.
type Embedder interface {
	Enabled() bool
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type PortfolioUsecase struct {
	portfolioRepo *repository.PortfolioRepository
	projectRepo   *repository.ProjectRepository
	github        service.GitHubServiceInterface
	assembler     *Assembler
	embedder      Embedder
}

func NewPortfolioUsecase(
	portfolioRepo *repository.PortfolioRepository,
	projectRepo *repository.ProjectRepository,
	github service.GitHubServiceInterface,
	assembler *Assembler,
	embedder Embedder,
) *PortfolioUsecase {
	return &PortfolioUsecase{
		portfolioRepo: portfolioRepo,
		projectRepo:   projectRepo,
		github:        github,
		assembler:     assembler,
		embedder:      embedder,
	}
}

// GenerateRequest carries the already-parsed inputs for one generation run.
type GenerateRequest struct {
	Username    string         // portfolio key, also the GitHub login when GitHub is connected
	GitHubToken string         // optional, raises the upstream rate limit
	SkipGitHub  bool           // resume-only generation
	ResumeText  string         // raw resume text, "" when no resume was provided
	Fallback    model.Identity // lowest-priority identity source
}

type GenerateResult struct {
	Portfolio *model.Portfolio
	Projects  []model.Project
}

// Generate runs the full pipeline: GitHub fetch and resume parse in
// parallel, join, merge, assemble, persist. Only the top-level GitHub calls
// and storage failures are fatal; everything else degrades to partial data.
func (uc *PortfolioUsecase) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.Username == "" {
		return nil, fmt.Errorf("username is required")
	}

	type githubResult struct {
		data *model.GitHubData
		err  error
	}
	githubCh := make(chan githubResult, 1)
	resumeCh := make(chan *parser.ResumeData, 1)

	go func() {
		if req.SkipGitHub {
			githubCh <- githubResult{}
			return
		}
		data, err := uc.github.FetchUserData(ctx, req.Username, req.GitHubToken)
		githubCh <- githubResult{data: data, err: err}
	}()

	go func() {
		if strings.TrimSpace(req.ResumeText) == "" {
			resumeCh <- nil
			return
		}
		data := parser.Parse(req.ResumeText)
		resumeCh <- &data
	}()

	gh := <-githubCh
	resume := <-resumeCh

	if gh.err != nil {
		return nil, fmt.Errorf("could not fetch GitHub data for %s: %w", req.Username, gh.err)
	}

	profile := MergeProfile(gh.data, resume, req.Fallback)
	assembled := uc.assembler.Assemble(ctx, profile, gh.data, resume)

	contentJSON, err := json.Marshal(assembled.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal content document: %w", err)
	}

	portfolio := &model.Portfolio{
		Username:  req.Username,
		Content:   string(contentJSON),
		Embedding: uc.embedContent(ctx, assembled.Content),
	}
	if err := uc.portfolioRepo.Upsert(portfolio); err != nil {
		return nil, fmt.Errorf("persist portfolio: %w", err)
	}

	stored, err := uc.portfolioRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("reload portfolio: %w", err)
	}

	if err := uc.projectRepo.ReplaceForPortfolio(stored.ID, assembled.Projects); err != nil {
		return nil, fmt.Errorf("persist projects: %w", err)
	}

	return &GenerateResult{Portfolio: stored, Projects: assembled.Projects}, nil
}

// embedContent is best-effort: a missing embedder or a failed call leaves
// the portfolio without an embedding and out of similarity results.
func (uc *PortfolioUsecase) embedContent(ctx context.Context, content model.ContentDocument) *pgvector.Vector {
	if uc.embedder == nil || !uc.embedder.Enabled() {
		return nil
	}

	text := content.Bio + "\n" + content.Summary + "\n" + strings.Join(content.Skills, ", ")
	values, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Printf("content embedding skipped: %v", err)
		return nil
	}

	v := pgvector.NewVector(values)
	return &v
}

// Get returns the stored portfolio and one page of its projects.
func (uc *PortfolioUsecase) Get(username string, page, pageSize int) (*model.Portfolio, []model.Project, int64, error) {
	portfolio, err := uc.portfolioRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, 0, err
	}
	projects, total, err := uc.projectRepo.FindByPortfolio(portfolio.ID, page, pageSize)
	if err != nil {
		return nil, nil, 0, err
	}
	return portfolio, projects, total, nil
}

// Similar lists portfolios closest to the user's by content embedding.
func (uc *PortfolioUsecase) Similar(username string, topK int) ([]model.Portfolio, error) {
	portfolio, err := uc.portfolioRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if portfolio.Embedding == nil {
		return []model.Portfolio{}, nil
	}
	if topK < 1 || topK > 20 {
		topK = 5
	}
	return uc.portfolioRepo.SearchSimilar(*portfolio.Embedding, username, topK)
}
