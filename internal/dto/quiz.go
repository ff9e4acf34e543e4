package dto

import (
	"encoding/json"
	"time"

	"FASHIONREC_BACK-END/internal/aesthetic"
	"FASHIONREC_BACK-END/internal/models"
)

// QuestionsResponse lists one gender track's questions
type QuestionsResponse struct {
	Questions      []aesthetic.Question `json:"questions"`
	TotalQuestions int                  `json:"totalQuestions"`
	Aesthetics     []string             `json:"aesthetics"`
}

// SubmitQuizRequest is the quiz submission body. Answers must be a JSON object.
type SubmitQuizRequest struct {
	Gender  string          `json:"gender" validate:"required,oneof=male female"`
	Answers json.RawMessage `json:"answers" swaggertype:"object"`
}

// QuizResponse represents a stored quiz
type QuizResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	Gender           string          `json:"gender"`
	Answers          json.RawMessage `json:"answers" swaggertype:"object"`
	AestheticProfile json.RawMessage `json:"aestheticProfile" swaggertype:"object"`
	CompletedAt      *string         `json:"completedAt"`
	IsCompleted      bool            `json:"isCompleted"`
	Score            *int            `json:"score"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// SubmitQuizResponse is returned after a quiz is stored and analyzed
type SubmitQuizResponse struct {
	Message        string       `json:"message"`
	Quiz           QuizResponse `json:"quiz"`
	CanRecommend   bool         `json:"canRecommend"`
	AnalysisMethod string       `json:"analysisMethod"`
}

// QuizHistoryResponse lists a user's quizzes
type QuizHistoryResponse struct {
	Quizzes      []QuizResponse `json:"quizzes"`
	TotalQuizzes int            `json:"totalQuizzes"`
}

// LatestQuizResponse wraps the latest completed quiz
type LatestQuizResponse struct {
	Quiz QuizResponse `json:"quiz"`
}

// NewQuizResponse converts a quiz model
func NewQuizResponse(q *models.Quiz) QuizResponse {
	resp := QuizResponse{
		ID:               q.ID.String(),
		UserID:           q.UserID.String(),
		Gender:           q.Gender,
		Answers:          q.Answers,
		AestheticProfile: q.AestheticProfile,
		IsCompleted:      q.IsCompleted,
		Score:            q.Score,
		CreatedAt:        q.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        q.UpdatedAt.Format(time.RFC3339),
	}
	if q.CompletedAt != nil {
		s := q.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	if len(resp.AestheticProfile) == 0 {
		resp.AestheticProfile = json.RawMessage(`{}`)
	}
	return resp
}

// NewQuizResponses converts a list of quizzes
func NewQuizResponses(quizzes []models.Quiz) []QuizResponse {
	out := make([]QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		out = append(out, NewQuizResponse(&quizzes[i]))
	}
	return out
}
