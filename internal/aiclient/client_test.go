package aiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

type recordingObserver struct {
	calls []string
}

func (o *recordingObserver) ObserveAI(operation, outcome string, _ time.Duration) {
	o.calls = append(o.calls, operation+":"+outcome)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestAnalyzeQuiz(t *testing.T) {
	Convey("Given an AI service that analyzes quizzes", t, func() {
		var got AnalyzeRequest
		var method, path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"aestheticProfile":{"primary_style":"Y2K"},"score":87}`))
		}))
		defer srv.Close()

		obs := &recordingObserver{}
		client := New(srv.URL, time.Second, quietLogger(), obs)

		Convey("When a quiz is analyzed", func() {
			resp, err := client.AnalyzeQuiz(context.Background(), AnalyzeRequest{
				Gender:  "female",
				Answers: json.RawMessage(`{"1":{"aesthetic":"Y2K"}}`),
				UserID:  "u-1",
			})

			Convey("Then the profile and score are returned", func() {
				So(err, ShouldBeNil)
				So(string(resp.AestheticProfile), ShouldEqual, `{"primary_style":"Y2K"}`)
				So(*resp.Score, ShouldEqual, 87.0)
			})

			Convey("And the request carries gender, answers and user id", func() {
				So(method, ShouldEqual, http.MethodPost)
				So(path, ShouldEqual, "/analyze-quiz")
				So(got.Gender, ShouldEqual, "female")
				So(got.UserID, ShouldEqual, "u-1")
				So(string(got.Answers), ShouldEqual, `{"1":{"aesthetic":"Y2K"}}`)
			})

			Convey("And the call is observed", func() {
				So(obs.calls, ShouldResemble, []string{"analyze:ok"})
			})
		})
	})

	Convey("Given an AI service that fails", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		obs := &recordingObserver{}
		client := New(srv.URL, time.Second, quietLogger(), obs)
		_, err := client.AnalyzeQuiz(context.Background(), AnalyzeRequest{Gender: "male"})

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "status 500")
		So(obs.calls, ShouldResemble, []string{"analyze:error"})
	})

	Convey("Given an AI service that returns no profile", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"score":10}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, time.Second, quietLogger(), nil).AnalyzeQuiz(context.Background(), AnalyzeRequest{})
		So(err, ShouldNotBeNil)
	})

	Convey("Given an AI service slower than the timeout", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"aestheticProfile":{}}`))
		}))
		defer srv.Close()

		_, err := New(srv.URL, 50*time.Millisecond, quietLogger(), nil).AnalyzeQuiz(context.Background(), AnalyzeRequest{})
		So(err, ShouldNotBeNil)
	})

	Convey("Given no service URL", t, func() {
		_, err := New("", time.Second, quietLogger(), nil).AnalyzeQuiz(context.Background(), AnalyzeRequest{})
		So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
	})
}

func TestRecommendations(t *testing.T) {
	Convey("Given a recommender service", t, func() {
		var got RecommendRequest
		var topK string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/recommend/by-quiz":
				_ = json.NewDecoder(r.Body).Decode(&got)
				_, _ = w.Write([]byte(`{"results":[{"id":"a","image_path":"/img/a.jpg","score":0.9},{"id":"b","image_path":"/img/b.jpg","score":0.5}],"used_text_candidates":40,"used_visual_candidates":0}`))
			case "/api/recommend/similar/a":
				topK = r.URL.Query().Get("top_k")
				_, _ = w.Write([]byte(`{"query_id":"a","results":[{"id":"c","image_path":"/img/c.jpg","score":0.7}]}`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		client := New(srv.URL, time.Second, quietLogger(), nil)

		Convey("RecommendByQuiz returns ranked items", func() {
			resp, err := client.RecommendByQuiz(context.Background(), RecommendRequest{Answers: []string{"Linen", "Paris"}, TopK: 2})
			So(err, ShouldBeNil)
			So(len(resp.Results), ShouldEqual, 2)
			So(resp.Results[0].ID, ShouldEqual, "a")
			So(resp.UsedTextCandidates, ShouldEqual, 40)
			So(got.Answers, ShouldResemble, []string{"Linen", "Paris"})
			So(got.TopK, ShouldEqual, 2)
		})

		Convey("Similar returns neighbours of an item", func() {
			resp, err := client.Similar(context.Background(), "a", 3)
			So(err, ShouldBeNil)
			So(resp.QueryID, ShouldEqual, "a")
			So(resp.Results[0].ID, ShouldEqual, "c")
			So(topK, ShouldEqual, "3")
		})

		Convey("Similar reports unknown items as errors", func() {
			_, err := client.Similar(context.Background(), "zzz", 3)
			So(err, ShouldNotBeNil)
		})
	})
}
