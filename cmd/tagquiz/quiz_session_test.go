package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"tagquiz/cmd/tagquiz/ui"
	"tagquiz/internal/quiz"
	"tagquiz/internal/treebank"
)

func testSample() quiz.Sample {
	return quiz.Sample{
		Start: 2,
		Sentences: []treebank.Sentence{
			{
				{Token: "The", Tag: "DT"},
				{Token: "duck", Tag: "NN"},
				{Token: "saw", Tag: "VBD"},
				{Token: "me", Tag: "PRP"},
				{Token: ".", Tag: "."},
			},
			{
				{Token: "It", Tag: "PRP"},
				{Token: "flew", Tag: "VBD"},
				{Token: ".", Tag: "."},
			},
		},
	}
}

func playRound(t *testing.T, input string) (*quiz.Session, string) {
	t.Helper()

	session := quiz.NewSession(testSample())
	var out bytes.Buffer
	if err := playQuiz(session, strings.NewReader(input), &out, ui.PlainStyles(), 80); err != nil {
		t.Fatalf("playQuiz returned error: %v", err)
	}
	return session, out.String()
}

func TestPlayQuiz_PerfectRound(t *testing.T) {
	session, output := playRound(t, "dt nn vbd prp .\nPRP VBD .\n")

	if !session.Done() {
		t.Fatal("expected every sentence graded")
	}
	correct, total := session.Score()
	if correct != 8 || total != 8 {
		t.Fatalf("expected 8/8, got %d/%d", correct, total)
	}

	for _, want := range []string{
		"Penn Treebank tag quiz",
		"Sentence 1 of 2",
		"Total tokens: 5",
		"Sentence 2 of 2",
		"All 5 correct.",
		"All 3 correct.",
		"Final score: 8/8 (100.0%)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n---\n%s", want, output)
		}
	}
	if strings.Contains(output, "Most missed tags") {
		t.Error("a perfect round must not rank missed tags")
	}
}

func TestPlayQuiz_MissesAndTable(t *testing.T) {
	_, output := playRound(t, "DT NN VBZ PRP .\nPRP VBD .\n")

	for _, want := range []string{
		"TOKEN",
		"EXPECTED",
		"YOUR ANSWER",
		"saw",
		"VBD",
		"VBZ",
		"Score: 4/5 (80.0%)",
		"Final score: 7/8 (87.5%)",
		"Most missed tags",
		"Most overused tags",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n---\n%s", want, output)
		}
	}
}

func TestPlayQuiz_ShortSubmissionShowsDash(t *testing.T) {
	session, output := playRound(t, "DT NN\nPRP VBD .\n")

	correct, total := session.Score()
	if correct != 5 || total != 8 {
		t.Fatalf("expected 5/8, got %d/%d", correct, total)
	}
	if !strings.Contains(output, "-") {
		t.Error("uncovered positions should render a dash placeholder")
	}
	if !strings.Contains(output, "Score: 2/5 (40.0%)") {
		t.Errorf("missing short-submission score\n---\n%s", output)
	}
}

func TestPlayQuiz_SurplusNoted(t *testing.T) {
	_, output := playRound(t, "DT NN VBD PRP . NN NN\nPRP VBD .\n")

	if !strings.Contains(output, "Ignored 2 extra tag(s)") {
		t.Errorf("surplus tags should be reported\n---\n%s", output)
	}
	if !strings.Contains(output, "Final score: 8/8 (100.0%)") {
		t.Errorf("surplus tags must not hurt the score\n---\n%s", output)
	}
}

func TestPlayQuiz_EmptyLineGradesAllWrong(t *testing.T) {
	session, output := playRound(t, "\nPRP VBD .\n")

	correct, total := session.Score()
	if correct != 3 || total != 8 {
		t.Fatalf("expected 3/8, got %d/%d", correct, total)
	}
	if !strings.Contains(output, "Score: 0/5 (0.0%)") {
		t.Errorf("empty submission should score zero\n---\n%s", output)
	}
}

func TestPlayQuiz_EOFEndsRoundGracefully(t *testing.T) {
	session, output := playRound(t, "DT NN VBD PRP .\n")

	if session.Done() {
		t.Fatal("second sentence should remain ungraded after EOF")
	}
	correct, total := session.Score()
	if correct != 5 || total != 5 {
		t.Fatalf("expected 5/5 over the graded part, got %d/%d", correct, total)
	}
	if !strings.Contains(output, "Final score: 5/5 (100.0%)") {
		t.Errorf("summary should cover the graded part\n---\n%s", output)
	}
}

func TestPlayQuiz_ImmediateEOF(t *testing.T) {
	session, output := playRound(t, "")

	if len(session.Results) != 0 {
		t.Fatal("nothing should be graded on immediate EOF")
	}
	if !strings.Contains(output, "Nothing graded.") {
		t.Errorf("expected the empty-round notice\n---\n%s", output)
	}
}

func TestPlayQuiz_LastLineWithoutNewline(t *testing.T) {
	session, _ := playRound(t, "DT NN VBD PRP .\nPRP VBD .")

	if !session.Done() {
		t.Fatal("a final line without a newline still counts as an answer")
	}
	correct, total := session.Score()
	if correct != 8 || total != 8 {
		t.Fatalf("expected 8/8, got %d/%d", correct, total)
	}
}

func TestRenderFeedback_TokenColumnFitsLongTokens(t *testing.T) {
	sent := treebank.Sentence{
		{Token: "telecommunications-equipment", Tag: "NN"},
		{Token: "maker", Tag: "NN"},
	}
	res := quiz.Score(sent, []string{"JJ", "VB"})

	out := renderFeedback(ui.PlainStyles(), res)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a header and two miss rows, got:\n%s", out)
	}

	col := strings.Index(lines[0], "EXPECTED")
	if col <= len("telecommunications-equipment") {
		t.Fatalf("header column must clear the longest token, got %d:\n%s", col, out)
	}
	for _, line := range lines[1:3] {
		if len(line) < col || !strings.HasPrefix(line[col:], "NN") {
			t.Errorf("reference tag should start at column %d: %q", col, line)
		}
	}
}

func TestRenderSentence_WrapsLongSentences(t *testing.T) {
	var sent treebank.Sentence
	for i := 0; i < 40; i++ {
		sent = append(sent, treebank.TaggedWord{Token: "plentiful", Tag: "JJ"})
	}

	out := renderSentence(ui.PlainStyles(), 1, 1, sent, 40)
	for _, line := range strings.Split(out, "\n") {
		if utf8.RuneCountInString(line) > 40 {
			t.Fatalf("line wider than 40 columns: %q", line)
		}
	}
}
