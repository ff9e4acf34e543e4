package aesthetic

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustParse(t *testing.T, body string) Answers {
	t.Helper()
	answers, err := ParseAnswers([]byte(body))
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}
	return answers
}

func TestFallback(t *testing.T) {
	Convey("Given two Old Money answers and one Streetwear answer", t, func() {
		answers := mustParse(t, `{
			"q1": {"aesthetic": "Old Money"},
			"q2": {"aesthetic": "Old Money"},
			"q3": {"aesthetic": "Streetwear"}
		}`)

		profile := Fallback("female", answers)

		Convey("Then Old Money is primary and Streetwear secondary", func() {
			So(profile.PrimaryStyle, ShouldEqual, "Old Money")
			So(profile.SecondaryStyle, ShouldNotBeNil)
			So(*profile.SecondaryStyle, ShouldEqual, "Streetwear")
		})

		Convey("And confidence is two thirds", func() {
			So(profile.ConfidenceScore, ShouldAlmostEqual, 2.0/3.0, 1e-9)
			So(profile.Score(), ShouldEqual, 66)
		})

		Convey("And the method marks a fallback", func() {
			So(profile.AnalysisMethod, ShouldEqual, MethodFallback)
		})
	})

	Convey("Given answers that all share one label", t, func() {
		answers := mustParse(t, `{"1":{"aesthetic":"Y2K"},"2":{"aesthetic":"Y2K"},"3":{"aesthetic":"Y2K"}}`)
		profile := Fallback("male", answers)

		So(profile.PrimaryStyle, ShouldEqual, "Y2K")
		So(profile.SecondaryStyle, ShouldBeNil)
		So(profile.ConfidenceScore, ShouldEqual, 1.0)
		So(profile.Score(), ShouldEqual, 100)
	})

	Convey("Given no answers", t, func() {
		Convey("Then the female default applies", func() {
			profile := Fallback("female", Answers{})
			So(profile.PrimaryStyle, ShouldEqual, DefaultFemaleStyle)
			So(profile.ConfidenceScore, ShouldEqual, 0.5)
			So(profile.Score(), ShouldEqual, 50)
		})

		Convey("Then any other gender gets the general default", func() {
			profile := Fallback("male", nil)
			So(profile.PrimaryStyle, ShouldEqual, DefaultStyle)
			So(profile.SecondaryStyle, ShouldBeNil)
			So(profile.ColorPreferences, ShouldBeEmpty)
			So(profile.OccasionPreferences, ShouldBeEmpty)
		})
	})

	Convey("Given answers without labels", t, func() {
		answers := mustParse(t, `{"1":"A","2":{"text":"Black boots"},"3":null,"4":[1,2]}`)
		profile := Fallback("female", answers)

		So(profile.PrimaryStyle, ShouldEqual, DefaultFemaleStyle)
		So(profile.ConfidenceScore, ShouldEqual, 0.5)
		So(profile.ColorPreferences, ShouldResemble, []string{"black"})
	})

	Convey("Given tied labels", t, func() {
		answers := mustParse(t, `{"1":{"aesthetic":"Cottagecore"},"2":{"aesthetic":"Y2K"},"3":{"aesthetic":"Y2K"},"4":{"aesthetic":"Cottagecore"},"5":{"aesthetic":"Streetwear"}}`)
		profile := Fallback("female", answers)

		Convey("Then the first seen label wins", func() {
			So(profile.PrimaryStyle, ShouldEqual, "Cottagecore")
			So(*profile.SecondaryStyle, ShouldEqual, "Y2K")
			So(profile.ConfidenceScore, ShouldAlmostEqual, 0.4, 1e-9)
		})
	})

	Convey("Given answer texts mentioning many colors and occasions", t, func() {
		answers := mustParse(t, `{
			"1": {"text": "Navy, beige, and cream for WORK", "aesthetic": "Minimalist Neutral Luxe"},
			"2": {"text": "Burgundy, camel, and forest green", "aesthetic": "Dark Academia"},
			"3": {"text": "Black and white party or formal evening", "aesthetic": "Business Formal Power"},
			"4": {"text": "Casual weekend navy", "aesthetic": "Coastal Casual"}
		}`)
		profile := Fallback("male", answers)

		Convey("Then keywords are kept first seen and capped", func() {
			So(profile.ColorPreferences, ShouldResemble, []string{"navy", "beige", "cream", "burgundy", "camel"})
			So(profile.OccasionPreferences, ShouldResemble, []string{"work", "formal", "party"})
		})
	})

	Convey("Given the same answers twice", t, func() {
		body := `{"a":{"text":"Bold brights","aesthetic":"Y2K"},"b":{"text":"Pastel","aesthetic":"Soft Feminine"}}`
		first := Fallback("female", mustParse(t, body))
		second := Fallback("female", mustParse(t, body))

		So(second, ShouldResemble, first)
	})
}

func TestParseAnswers(t *testing.T) {
	Convey("Given an answers object", t, func() {
		answers, err := ParseAnswers([]byte(`{"2":{"text":"Plaid","aesthetic":"Light Academia"},"1":"B","2b":{"Text":"x","aesthetic":7}}`))

		Convey("Then the document order is kept", func() {
			So(err, ShouldBeNil)
			So(len(answers), ShouldEqual, 3)
			So(answers[0].QuestionID, ShouldEqual, "2")
			So(answers[1].QuestionID, ShouldEqual, "1")
			So(answers[2].QuestionID, ShouldEqual, "2b")
		})

		Convey("And only exact string fields are read", func() {
			So(answers[0].Text, ShouldEqual, "Plaid")
			So(answers[0].Aesthetic, ShouldEqual, "Light Academia")
			So(answers[2].Text, ShouldEqual, "")
			So(answers[2].Aesthetic, ShouldEqual, "")
		})

		Convey("And the texts can be listed", func() {
			So(answers.Texts(), ShouldResemble, []string{"Plaid"})
		})

		Convey("And it marshals back in the same order", func() {
			out, err := answers.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"2":{"text":"Plaid","aesthetic":"Light Academia"},"1":"B","2b":{"Text":"x","aesthetic":7}}`)
		})
	})

	Convey("Given a repeated key", t, func() {
		answers, err := ParseAnswers([]byte(`{"a":{"aesthetic":"X"},"b":{"aesthetic":"Y"},"a":{"aesthetic":"Z"}}`))
		So(err, ShouldBeNil)
		So(len(answers), ShouldEqual, 2)
		So(answers[0].Aesthetic, ShouldEqual, "Z")
	})

	Convey("Given something other than an object", t, func() {
		for _, body := range []string{`[]`, `"text"`, `null`, `42`} {
			_, err := ParseAnswers([]byte(body))
			So(err, ShouldEqual, ErrAnswersNotObject)
		}
	})

	Convey("Given malformed JSON", t, func() {
		_, err := ParseAnswers([]byte(`{"a":`))
		So(err, ShouldNotBeNil)
	})
}

func TestTrackFor(t *testing.T) {
	Convey("Both gender tracks have twelve four-option questions", t, func() {
		for _, gender := range []string{"female", "male"} {
			track, ok := TrackFor(gender)
			So(ok, ShouldBeTrue)
			So(len(track.Questions), ShouldEqual, 12)
			for _, q := range track.Questions {
				So(len(q.Options), ShouldEqual, 4)
				for _, o := range q.Options {
					So(track.Aesthetics, ShouldContain, o.Aesthetic)
				}
			}
		}
	})

	Convey("Other genders have no track", t, func() {
		_, ok := TrackFor("other")
		So(ok, ShouldBeFalse)
	})
}
