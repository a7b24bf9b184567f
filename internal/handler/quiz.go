package handler

import (
	"learnhub/internal/dto"
	"learnhub/internal/logger"
	"learnhub/internal/middleware"
	"learnhub/internal/service"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Failed to parse request body",
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.Error(err),
		)
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// GetQuiz godoc
// @Summary Get the quiz of a module
// @Description Returns the quiz attached to a module without the answer key
// @Tags quiz
// @Produce json
// @Param moduleId path int true "Module ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz [get]
// @Security ApiKeyAuth
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	quiz, err := h.service.GetQuiz(c.Context(), moduleID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// GetAnswerKey godoc
// @Summary Get the answer key of a quiz
// @Description Returns every question with is_correct on its choices. Instructors and admins only.
// @Tags quiz
// @Produce json
// @Param moduleId path int true "Module ID"
// @Success 200 {array} dto.QuestionWithAnswersResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz/answers [get]
// @Security ApiKeyAuth
func (h *QuizHandler) GetAnswerKey(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return err
	}
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	quiz, err := h.service.GetAnswerKey(c.Context(), caller, moduleID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnswerKeyResponse(quiz))
}

// CreateQuiz godoc
// @Summary Create the quiz of a module
// @Description Creates a quiz with its questions and choices in one transaction. Instructors and admins only.
// @Tags quiz
// @Accept json
// @Produce json
// @Param moduleId path int true "Module ID"
// @Param quiz body dto.CreateQuizRequest true "Quiz"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz [post]
// @Security ApiKeyAuth
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return err
	}
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.CreateQuiz(c.Context(), caller, moduleID, req.ToDraft())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuizResponse(quiz))
}

// UpdateQuiz godoc
// @Summary Update the quiz of a module
// @Description Updates the title and, when questions are given, replaces every question. Instructors and admins only.
// @Tags quiz
// @Accept json
// @Produce json
// @Param moduleId path int true "Module ID"
// @Param quiz body dto.UpdateQuizRequest true "Partial quiz"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz [put]
// @Security ApiKeyAuth
func (h *QuizHandler) UpdateQuiz(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return err
	}
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateUpdateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.UpdateQuiz(c.Context(), caller, moduleID, req.ToUpdate())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResponse(quiz))
}

// DeleteQuiz godoc
// @Summary Delete the quiz of a module
// @Description Deletes the quiz with all its questions and choices. Instructors and admins only.
// @Tags quiz
// @Produce json
// @Param moduleId path int true "Module ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz [delete]
// @Security ApiKeyAuth
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return err
	}
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteQuiz(c.Context(), caller, moduleID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted successfully"})
}

// SubmitQuiz godoc
// @Summary Submit answers for grading
// @Description Grades the answers against the quiz. Nothing is stored.
// @Tags quiz
// @Accept json
// @Produce json
// @Param moduleId path int true "Module ID"
// @Param submission body dto.QuizSubmissionRequest true "Answers"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /modules/{moduleId}/quiz/submit [post]
// @Security ApiKeyAuth
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	caller, err := middleware.CallerFromCtx(c)
	if err != nil {
		return err
	}
	moduleID, err := middleware.ModuleIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.QuizSubmissionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSubmissionRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.SubmitQuiz(c.Context(), caller, moduleID, req.ToSubmission())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizResultResponse(result))
}

// RegisterQuizRoutes mounts the quiz routes on router. Authentication is
// expected to be applied by the caller.
func RegisterQuizRoutes(router fiber.Router, h *QuizHandler, vm *middleware.ValidationMiddleware) {
	moduleID := vm.ValidateModuleID()
	router.Get("/modules/:moduleId/quiz", moduleID, h.GetQuiz)
	router.Post("/modules/:moduleId/quiz", moduleID, h.CreateQuiz)
	router.Put("/modules/:moduleId/quiz", moduleID, h.UpdateQuiz)
	router.Delete("/modules/:moduleId/quiz", moduleID, h.DeleteQuiz)
	router.Post("/modules/:moduleId/quiz/submit", moduleID, h.SubmitQuiz)
	router.Get("/modules/:moduleId/quiz/answers", moduleID, h.GetAnswerKey)
}
