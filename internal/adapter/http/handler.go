package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-composer/internal/adapter/repository"
	"resume-composer/internal/domain"
	"resume-composer/internal/model"
	"resume-composer/internal/render"
)

type Generator interface {
	Generate(ctx context.Context, owner uuid.UUID, prompt string, tpl domain.Template) (*domain.Resume, error)
}

type Builder interface {
	Build(candidate map[string]interface{}, owner uuid.UUID, tpl domain.Template, prov model.Provenance) (*domain.Resume, error)
}

type Repo interface {
	Save(ctx context.Context, resume *domain.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// PreviewRenderer is the optional Chrome-backed backend selected with
// ?engine=chrome on the download route.
type PreviewRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	gen     Generator
	builder Builder
	repo    Repo
	preview PreviewRenderer
}

func NewHandler(gen Generator, builder Builder, repo Repo, preview PreviewRenderer) *Handler {
	return &Handler{gen: gen, builder: builder, repo: repo, preview: preview}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/metrics", metricsHandler())
	app.Post("/resumes/generate", h.GenerateResume)
	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes/:id/pdf", h.DownloadPDF)
	app.Delete("/resumes/:id", h.DeleteResume)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type generateReq struct {
	UserID   string `json:"userId"`
	Prompt   string `json:"prompt"`
	Template string `json:"template,omitempty"`
}

func (h *Handler) GenerateResume(c *fiber.Ctx) error {
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	tpl, ok := domain.ParseTemplate(req.Template)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "invalid input",
			"fields": []domain.FieldError{{Field: "template", Message: "must be one of modern, classic, creative, minimal"}},
		})
	}

	resume, err := h.gen.Generate(c.UserContext(), uid, req.Prompt, tpl)
	if err != nil {
		generateTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return respondError(c, err)
	}
	generateTotal.WithLabelValues("ok").Inc()

	// persist best-effort; generation output is still returned when the
	// persistence collaborator is down
	if err := h.repo.Save(c.UserContext(), resume); err != nil {
		slog.Warn("failed to save resume", "id", resume.ID, "error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

type createReq struct {
	UserID   string                 `json:"userId"`
	Template string                 `json:"template,omitempty"`
	Document map[string]interface{} `json:"document"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	tpl, ok := domain.ParseTemplate(req.Template)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "invalid input",
			"fields": []domain.FieldError{{Field: "template", Message: "must be one of modern, classic, creative, minimal"}},
		})
	}

	resume, err := h.builder.Build(req.Document, uid, tpl, model.Provenance{})
	if err != nil {
		// violations in directly supplied data are the caller's to fix
		if domain.KindOf(err) == domain.KindSchemaViolation {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "invalid input",
				"fields": domain.FieldsOf(err),
			})
		}
		return respondError(c, err)
	}

	if err := h.repo.Save(c.UserContext(), resume); err != nil {
		slog.Warn("failed to save resume", "id", resume.ID, "error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *Handler) DownloadPDF(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}

	resume, err := h.repo.GetByID(c.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}

	blocks := render.Render(resume)

	var pdf []byte
	start := time.Now()
	if c.Query("engine") == "chrome" && h.preview != nil {
		html, err := render.RenderHTML(blocks, resume.Template)
		if err != nil {
			return respondError(c, err)
		}
		pdf, err = h.preview.RenderHTMLToPDF(c.UserContext(), html)
		if err != nil {
			return respondError(c, domain.NewRenderFailure(err))
		}
	} else {
		var buf bytes.Buffer
		if err := render.Emit(blocks, resume.Template, &buf); err != nil {
			return respondError(c, err)
		}
		pdf = buf.Bytes()
	}
	emitSeconds.Observe(time.Since(start).Seconds())

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_Resume.pdf"`, resume.PersonalInfo.FullName))
	return c.Send(pdf)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}

	if err := h.repo.Deactivate(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps the pipeline error taxonomy to HTTP responses. Field
// lists are only exposed for the two actionable kinds; provider glitches and
// render bugs stay generic.
func respondError(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "invalid input",
			"fields": domain.FieldsOf(err),
		})
	case domain.KindSchemaViolation:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "generated document failed validation",
			"fields": domain.FieldsOf(err),
		})
	case domain.KindMalformedResponse:
		slog.Error("provider returned malformed content", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "generation failed"})
	case domain.KindRenderFailure:
		slog.Error("render failure", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "rendering failed"})
	default:
		slog.Error("generation failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "generation failed"})
	}
}

func outcomeLabel(err error) string {
	if kind := domain.KindOf(err); kind != "" {
		return string(kind)
	}
	return "provider_error"
}
