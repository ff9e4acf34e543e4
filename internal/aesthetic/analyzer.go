package aesthetic

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/aiclient"
)

// MethodAI marks profiles produced by the external service.
const MethodAI = "ai"

// RemoteAnalyzer is the external analysis call the Analyzer tries first.
type RemoteAnalyzer interface {
	AnalyzeQuiz(ctx context.Context, req aiclient.AnalyzeRequest) (*aiclient.AnalyzeResponse, error)
}

// Recorder counts analyses by method.
type Recorder interface {
	QuizAnalyzed(method string)
}

// Result is what gets stored on the quiz after analysis.
type Result struct {
	Profile json.RawMessage
	Score   *int
	Method  string
}

// Analyzer produces a style profile, falling back to the local heuristic
// when the remote service errors or takes longer than the timeout.
type Analyzer struct {
	remote   RemoteAnalyzer
	timeout  time.Duration
	log      *logrus.Logger
	recorder Recorder
}

// NewAnalyzer creates an Analyzer. recorder may be nil.
func NewAnalyzer(remote RemoteAnalyzer, timeout time.Duration, logger *logrus.Logger, recorder Recorder) *Analyzer {
	return &Analyzer{remote: remote, timeout: timeout, log: logger, recorder: recorder}
}

// Analyze never fails: any remote error degrades to Fallback.
func (a *Analyzer) Analyze(ctx context.Context, userID uuid.UUID, gender string, answers Answers) Result {
	if a.remote != nil {
		result, err := a.analyzeRemote(ctx, userID, gender, answers)
		if err == nil {
			a.record(MethodAI)
			a.log.Infof("Quiz analysis for user %s completed by AI service", userID)
			return result
		}
		a.log.Warnf("AI service analysis failed for user %s, using fallback: %v", userID, err)
	}

	profile := Fallback(gender, answers)
	raw, _ := json.Marshal(profile)
	score := profile.Score()
	a.record(MethodFallback)
	return Result{Profile: raw, Score: &score, Method: MethodFallback}
}

func (a *Analyzer) analyzeRemote(ctx context.Context, userID uuid.UUID, gender string, answers Answers) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := answers.MarshalJSON()
	if err != nil {
		return Result{}, err
	}

	resp, err := a.remote.AnalyzeQuiz(ctx, aiclient.AnalyzeRequest{
		Gender:  gender,
		Answers: body,
		UserID:  userID.String(),
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{Profile: resp.AestheticProfile, Method: MethodAI}
	if resp.Score != nil {
		score := int(math.Floor(*resp.Score))
		result.Score = &score
	}
	return result, nil
}

func (a *Analyzer) record(method string) {
	if a.recorder != nil {
		a.recorder.QuizAnalyzed(method)
	}
}
