package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/cache"
	"FASHIONREC_BACK-END/internal/dto"
	"FASHIONREC_BACK-END/internal/models"
	"FASHIONREC_BACK-END/internal/repository"
	"FASHIONREC_BACK-END/internal/utils"
)

// QuizAnalyzer turns answers into a stored style profile
type QuizAnalyzer interface {
	Analyze(ctx context.Context, userID uuid.UUID, gender string, answers aesthetic.Answers) aesthetic.Result
}

// QuizHandler serves the style quiz
type QuizHandler struct {
	quizzes  repository.QuizRepository
	analyzer QuizAnalyzer
	cache    cache.Cache
	log      *logrus.Logger
}

// NewQuizHandler creates a QuizHandler
func NewQuizHandler(quizzes repository.QuizRepository, analyzer QuizAnalyzer, c cache.Cache, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{quizzes: quizzes, analyzer: analyzer, cache: c, log: logger}
}

// GetQuestions returns the question track for a gender
// @Summary Quiz questions
// @Tags quiz
// @Security BearerAuth
// @Produce json
// @Param gender query string true "male or female"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Unsupported gender"
// @Router /api/quiz/questions [get]
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	track, ok := aesthetic.TrackFor(r.URL.Query().Get("gender"))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "gender must be one of: male, female")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.QuestionsResponse{
		Questions:      track.Questions,
		TotalQuestions: len(track.Questions),
		Aesthetics:     track.Aesthetics,
	})
}

// Submit stores the answers for the caller's gender track and analyzes them
// @Summary Submit quiz
// @Description Creates or replaces the caller's quiz for the gender and computes the aesthetic profile
// @Tags quiz
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Quiz answers"
// @Success 201 {object} dto.SubmitQuizResponse "Quiz created"
// @Success 200 {object} dto.SubmitQuizResponse "Quiz updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/quiz/submit [post]
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.SubmitQuizRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}
	answers, err := aesthetic.ParseAnswers(req.Answers)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid answers format", "answers must be an object keyed by question id")
		return
	}

	ctx := r.Context()
	now := time.Now()
	quiz := &models.Quiz{
		UserID:      userID,
		Gender:      req.Gender,
		Answers:     req.Answers,
		IsCompleted: true,
		CompletedAt: &now,
	}
	created, err := h.quizzes.Upsert(ctx, quiz)
	if err != nil {
		h.log.Errorf("Submit: failed to store quiz for user %s: %v", userID, err)
		writeInternalError(w)
		return
	}

	result := h.analyzer.Analyze(ctx, userID, req.Gender, answers)
	if err := h.quizzes.SaveAnalysis(ctx, quiz.ID, result.Profile, result.Score); err != nil {
		h.log.Errorf("Submit: failed to store analysis for quiz %s: %v", quiz.ID, err)
		writeInternalError(w)
		return
	}
	quiz.AestheticProfile = result.Profile
	quiz.Score = result.Score

	if err := h.cache.DeletePrefix(ctx, cache.RecommendationsPrefix(userID)); err != nil {
		h.log.Warnf("Submit: failed to invalidate recommendations for user %s: %v", userID, err)
	}

	status, message := http.StatusOK, "Quiz updated successfully"
	if created {
		status, message = http.StatusCreated, "Quiz submitted successfully"
	}
	utils.WriteJSONResponse(w, status, dto.SubmitQuizResponse{
		Message:        message,
		Quiz:           dto.NewQuizResponse(quiz),
		CanRecommend:   true,
		AnalysisMethod: result.Method,
	})
}

// History lists the caller's quizzes
// @Summary Quiz history
// @Tags quiz
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.QuizHistoryResponse
// @Router /api/quiz/history [get]
func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	quizzes, err := h.quizzes.ListByUser(r.Context(), userID)
	if err != nil {
		h.log.Errorf("History: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.QuizHistoryResponse{
		Quizzes:      dto.NewQuizResponses(quizzes),
		TotalQuizzes: len(quizzes),
	})
}

// Latest returns the most recently completed quiz
// @Summary Latest quiz
// @Tags quiz
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LatestQuizResponse
// @Failure 404 {object} dto.ErrorResponse "No completed quiz found"
// @Router /api/quiz/latest [get]
func (h *QuizHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	quiz, err := h.quizzes.LatestCompleted(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "No completed quiz found", "")
			return
		}
		h.log.Errorf("Latest: %v", err)
		writeInternalError(w)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.LatestQuizResponse{Quiz: dto.NewQuizResponse(quiz)})
}

// Delete removes one of the caller's quizzes
// @Summary Delete quiz
// @Tags quiz
// @Security BearerAuth
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /api/quiz/{quizId} [delete]
func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	quizID, ok := pathUUID(w, r, "quizId", "Quiz not found")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.quizzes.Delete(ctx, userID, quizID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Quiz not found", "")
			return
		}
		h.log.Errorf("Delete quiz %s: %v", quizID, err)
		writeInternalError(w)
		return
	}
	if err := h.cache.DeletePrefix(ctx, cache.RecommendationsPrefix(userID)); err != nil {
		h.log.Warnf("Delete quiz: failed to invalidate recommendations for user %s: %v", userID, err)
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Quiz deleted successfully"})
}

// parseStoredAnswers reads answers persisted on a quiz; unreadable rows yield none
func parseStoredAnswers(raw json.RawMessage) aesthetic.Answers {
	answers, err := aesthetic.ParseAnswers(raw)
	if err != nil {
		return nil
	}
	return answers
}
