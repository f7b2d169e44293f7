package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/cache"
	"github.com/fadilmartias/portfolio-gen/internal/dto"
	"github.com/fadilmartias/portfolio-gen/internal/middleware"
	"github.com/fadilmartias/portfolio-gen/internal/model"
	"github.com/fadilmartias/portfolio-gen/internal/response"
	"github.com/fadilmartias/portfolio-gen/internal/service"
	"github.com/fadilmartias/portfolio-gen/internal/usecase"
	"github.com/fadilmartias/portfolio-gen/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PortfolioHandler struct {
	uc *usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc *usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/portfolios/generate", middleware.RateLimiter(5, 1*time.Minute), h.Generate)
	app.Post("/portfolios/generate-file", middleware.RateLimiter(5, 1*time.Minute), h.GenerateFromFile)
	app.Get("/portfolios/:username", h.Get)
	app.Get("/portfolios/:username/similar", h.Similar)
}

func (h *PortfolioHandler) Generate(c *fiber.Ctx) error {
	var req dto.GeneratePortfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Username == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "username is required",
		})
	}

	return h.generate(c, usecase.GenerateRequest{
		Username:    req.Username,
		GitHubToken: req.GitHubToken,
		SkipGitHub:  req.SkipGitHub,
		ResumeText:  req.ResumeText,
		Fallback: model.Identity{
			Name:  req.FallbackName,
			Email: req.FallbackEmail,
		},
	})
}

// GenerateFromFile is the multipart variant: the resume arrives as a PDF and
// is extracted server side before running the same pipeline.
func (h *PortfolioHandler) GenerateFromFile(c *fiber.Ctx) error {
	username := c.FormValue("username")
	if username == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "username is required",
		})
	}

	resumeText, err := h.processFile(c, "resume", "./uploads/resume/")
	if err != nil {
		return err
	}

	return h.generate(c, usecase.GenerateRequest{
		Username:    username,
		GitHubToken: c.FormValue("github_token"),
		SkipGitHub:  c.FormValue("skip_github") == "true",
		ResumeText:  resumeText,
		Fallback: model.Identity{
			Name:  c.FormValue("fallback_name"),
			Email: c.FormValue("fallback_email"),
		},
	})
}

func (h *PortfolioHandler) generate(c *fiber.Ctx, req usecase.GenerateRequest) error {
	result, err := h.uc.Generate(c.Context(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    upstreamStatus(err),
			Message: "failed to generate portfolio",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success generate portfolio",
		Data: fiber.Map{
			"portfolio": dto.NewPortfolioDTO(result.Portfolio),
			"projects":  dto.NewProjectDTOs(result.Projects),
		},
	})
}

func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	username := c.Params("username")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	portfolio, projects, total, err := h.uc.Get(username, page, pageSize)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "portfolio not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to get portfolio",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get portfolio",
		Pagination: response.NewPagination(page, pageSize, total),
		Data: fiber.Map{
			"portfolio": dto.NewPortfolioDTO(portfolio),
			"projects":  dto.NewProjectDTOs(projects),
		},
	})
}

func (h *PortfolioHandler) Similar(c *fiber.Ctx) error {
	username := c.Params("username")
	topK := c.QueryInt("top_k", 5)

	portfolios, err := h.uc.Similar(username, topK)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "portfolio not found",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to search similar portfolios",
		}, err)
	}

	data := make([]dto.PortfolioDTO, 0, len(portfolios))
	for i := range portfolios {
		data = append(data, dto.NewPortfolioDTO(&portfolios[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search similar portfolios",
		Data:    data,
	})
}

func (h *PortfolioHandler) processFile(c *fiber.Ctx, fieldName, uploadDir string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		})
	}

	savePath := filepath.Join(uploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported %s file type", fieldName),
		})
	}

	content, err := util.ExtractResumeText(savePath)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: fmt.Sprintf("failed to extract %s text", fieldName),
		}, err)
	}

	return content, nil
}

// upstreamStatus maps pipeline failures to edge statuses: GitHub 404s and
// our own rate limiter pass through, anything else is a 502 or 500.
func upstreamStatus(err error) int {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		if upstream.Status == fiber.StatusNotFound {
			return fiber.StatusNotFound
		}
		return fiber.StatusBadGateway
	}
	if errors.Is(err, cache.ErrRateLimitExceeded) {
		return fiber.StatusTooManyRequests
	}
	return fiber.StatusInternalServerError
}
