//go:build ignore

// Standalone performance verification for the corpus parser and grader.
// Run with: go run test_performance.go
package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"tagquiz/internal/quiz"
	"tagquiz/internal/treebank"
)

// buildCorpus writes count bracketed sentences of the given length.
func buildCorpus(count, length int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString("( (S ")
		for j := 0; j < length; j++ {
			fmt.Fprintf(&b, "(NN w%d) ", j)
		}
		b.WriteString("(. .)) )\n")
	}
	return b.String()
}

func main() {
	fmt.Printf("🧪 Testing tagquiz parse and grading throughput\n\n")

	// Test 1: Parser throughput
	fmt.Println("Test 1: Parser throughput (2000 sentences, 25 tokens each)")
	raw := buildCorpus(2000, 25)

	start := time.Now()
	trees, err := treebank.ParseTrees(strings.NewReader(raw))
	if err != nil {
		fmt.Printf("  ⚠️  Parse failed: %v\n", err)
		return
	}
	parseTime := time.Since(start)

	sentences := make([]treebank.Sentence, 0, len(trees))
	for _, tree := range trees {
		sentences = append(sentences, tree.TaggedWords())
	}
	fmt.Printf("  ✅ Parsed %d trees in %v\n", len(trees), parseTime)
	fmt.Printf("  🚀 %.0f sentences/sec\n\n", float64(len(trees))/parseTime.Seconds())

	// Test 2: Grading throughput
	fmt.Println("Test 2: Grading throughput (100000 submissions)")
	submission := make([]string, len(sentences[0]))
	for i := range submission {
		submission[i] = "NN"
	}

	start = time.Now()
	for i := 0; i < 100000; i++ {
		_ = quiz.Score(sentences[i%len(sentences)], submission)
	}
	gradeTime := time.Since(start)
	fmt.Printf("  ✅ Graded 100000 submissions in %v\n", gradeTime)
	fmt.Printf("  🚀 %.0f submissions/sec\n\n", 100000/gradeTime.Seconds())

	// Test 3: Sampling cost
	fmt.Println("Test 3: Sampling cost (10000 draws)")
	corpus := &treebank.Corpus{Sentences: sentences}
	rng := rand.New(rand.NewSource(1))

	start = time.Now()
	for i := 0; i < 10000; i++ {
		if _, err := quiz.Draw(rng, corpus, 5); err != nil {
			fmt.Printf("  ⚠️  Draw failed: %v\n", err)
			return
		}
	}
	drawTime := time.Since(start)
	fmt.Printf("  ✅ 10000 draws in %v\n", drawTime)

	fmt.Printf("\n🎉 Throughput check complete\n")
}
