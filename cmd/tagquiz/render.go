package main

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tagquiz/cmd/tagquiz/ui"
	"tagquiz/internal/quiz"
	"tagquiz/internal/treebank"
)

// renderIntro announces the drawn sample.
func renderIntro(styles ui.Styles, sample quiz.Sample) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Penn Treebank tag quiz"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf(
		"%d sentences, %d tokens, starting at corpus sentence %d.",
		len(sample.Sentences), sample.TokenCount(), sample.Start+1)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(
		"Enter one tag per token, separated by spaces. 'tagquiz tags' lists the tagset."))
	return b.String()
}

// renderSentence shows one numbered sentence with its tags hidden,
// wrapped to the configured width.
func renderSentence(styles ui.Styles, num, total int, sent treebank.Sentence, width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.RenderDivider(width))
	b.WriteString("\n")
	b.WriteString(styles.Bold.Render(fmt.Sprintf("Sentence %d of %d", num, total)))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(strings.Join(sent.Tokens(), " "), width))
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render(fmt.Sprintf("Total tokens: %d", len(sent))))
	return b.String()
}

// renderFeedback reports one graded submission: a miss table when
// anything went wrong, then the sentence score.
func renderFeedback(styles ui.Styles, res quiz.Result) string {
	var b strings.Builder

	if len(res.Misses) == 0 {
		b.WriteString(styles.Correct.Render(fmt.Sprintf("All %d correct.", res.Total)))
	} else {
		// The token column widens to the longest missed token; WSJ text
		// is full of hyphenated compounds past any fixed width.
		tokenWidth := 18
		for _, m := range res.Misses {
			if len(m.Token) > tokenWidth {
				tokenWidth = len(m.Token)
			}
		}
		b.WriteString(styles.TableHeader.Render(
			fmt.Sprintf("%-*s %-10s %s", tokenWidth, "TOKEN", "EXPECTED", "YOUR ANSWER")))
		for _, m := range res.Misses {
			got, style := m.Got, styles.Wrong
			if got == "" {
				got, style = "-", styles.Missing
			}
			b.WriteString("\n")
			// Pad before styling so ANSI escapes do not skew columns.
			b.WriteString(fmt.Sprintf("%-*s %s %s",
				tokenWidth, m.Token,
				styles.Correct.Render(fmt.Sprintf("%-10s", m.Want)),
				style.Render(got)))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Score.Render(
		fmt.Sprintf("Score: %d/%d (%.1f%%)", res.Correct, res.Total, res.Percent())))
	if res.Surplus > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Missing.Render(
			fmt.Sprintf("Ignored %d extra tag(s) past the end of the sentence.", res.Surplus)))
	}
	return b.String()
}

// renderSummary closes a round with the aggregate score and the tag
// rankings.
func renderSummary(styles ui.Styles, s *quiz.Session, width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.RenderDivider(width))
	b.WriteString("\n")

	if len(s.Results) == 0 {
		b.WriteString(styles.Muted.Render("Nothing graded."))
		b.WriteString("\n")
		return b.String()
	}

	correct, total := s.Score()
	b.WriteString(styles.Title.Render(
		fmt.Sprintf("Final score: %d/%d (%.1f%%)", correct, total, s.Percent())))
	b.WriteString("\n")

	b.WriteString(renderRanking(styles, "Most missed tags", s.Missed))
	b.WriteString(renderRanking(styles, "Most overused tags", s.Overused))
	return b.String()
}

func renderRanking(styles ui.Styles, title string, tally *quiz.Tally) string {
	ranked := tally.Ranked()
	if len(ranked) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.Bold.Render(title))
	b.WriteString("\n")
	for _, tc := range ranked {
		b.WriteString(fmt.Sprintf("  %-8s %d\n", tc.Tag, tc.Count))
	}
	return b.String()
}
