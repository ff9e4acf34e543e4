package aesthetic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"FASHIONREC_BACK-END/internal/aiclient"
)

type stubRemote struct {
	resp  *aiclient.AnalyzeResponse
	err   error
	delay time.Duration
	got   aiclient.AnalyzeRequest
}

func (s *stubRemote) AnalyzeQuiz(ctx context.Context, req aiclient.AnalyzeRequest) (*aiclient.AnalyzeResponse, error) {
	s.got = req
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.resp, s.err
}

type countingRecorder map[string]int

func (c countingRecorder) QuizAnalyzed(method string) { c[method]++ }

func TestAnalyzer(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	userID := uuid.New()

	Convey("Given quiz answers", t, func() {
		answers := mustParse(t, `{"1":{"text":"Linen","aesthetic":"Coastal Grandma"},"2":{"text":"Paris","aesthetic":"Parisian Chic"},"3":{"aesthetic":"Coastal Grandma"}}`)
		recorder := countingRecorder{}

		Convey("When the AI service answers", func() {
			score := 91.7
			remote := &stubRemote{resp: &aiclient.AnalyzeResponse{
				AestheticProfile: json.RawMessage(`{"primary_style":"Coastal Grandma","analysis_method":"ai"}`),
				Score:            &score,
			}}
			result := NewAnalyzer(remote, time.Second, log, recorder).Analyze(context.Background(), userID, "female", answers)

			Convey("Then its profile is kept verbatim", func() {
				So(result.Method, ShouldEqual, MethodAI)
				So(string(result.Profile), ShouldEqual, `{"primary_style":"Coastal Grandma","analysis_method":"ai"}`)
				So(*result.Score, ShouldEqual, 91)
				So(recorder[MethodAI], ShouldEqual, 1)
			})

			Convey("And the request carries the ordered answers", func() {
				So(remote.got.Gender, ShouldEqual, "female")
				So(remote.got.UserID, ShouldEqual, userID.String())
				So(string(remote.got.Answers), ShouldStartWith, `{"1":`)
			})
		})

		Convey("When the AI service fails", func() {
			remote := &stubRemote{err: errors.New("connection refused")}
			result := NewAnalyzer(remote, time.Second, log, recorder).Analyze(context.Background(), userID, "female", answers)

			Convey("Then the fallback profile is used", func() {
				var profile Profile
				So(json.Unmarshal(result.Profile, &profile), ShouldBeNil)
				So(result.Method, ShouldEqual, MethodFallback)
				So(profile.PrimaryStyle, ShouldEqual, "Coastal Grandma")
				So(*result.Score, ShouldEqual, 66)
				So(recorder[MethodFallback], ShouldEqual, 1)
			})
		})

		Convey("When the AI service is slower than the timeout", func() {
			remote := &stubRemote{delay: time.Second, resp: &aiclient.AnalyzeResponse{AestheticProfile: json.RawMessage(`{}`)}}
			result := NewAnalyzer(remote, 20*time.Millisecond, log, nil).Analyze(context.Background(), userID, "female", answers)

			So(result.Method, ShouldEqual, MethodFallback)
		})

		Convey("When no remote is configured", func() {
			result := NewAnalyzer(nil, time.Second, log, recorder).Analyze(context.Background(), userID, "male", answers)

			So(result.Method, ShouldEqual, MethodFallback)
			So(recorder[MethodFallback], ShouldEqual, 1)
		})
	})
}
