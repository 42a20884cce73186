// Package main quiz loop. This file drives one round: resolve the
// corpus, draw a sample, then prompt, grade, and report sentence by
// sentence until the sample is exhausted or stdin closes.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tagquiz/cmd/tagquiz/ui"
	"tagquiz/internal/quiz"
	"tagquiz/internal/treebank"
)

// newFetcher builds the corpus fetcher from the active configuration.
func newFetcher() *treebank.Fetcher {
	return &treebank.Fetcher{
		DataDir:    cfg.Corpus.DataDir,
		CacheDir:   cfg.Corpus.CacheDir,
		ArchiveURL: cfg.Corpus.ArchiveURL,
		Offline:    cfg.Corpus.Offline,
		Client:     nil,
		Log:        logger,
	}
}

// loadCorpus resolves the corpus location, downloading the archive on
// first run, and parses every file. Ctrl+C during the download aborts
// cleanly; afterwards the default signal behavior is restored.
func loadCorpus() (*treebank.Corpus, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	dir, err := newFetcher().Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus unavailable: %w", err)
	}

	corpus, err := treebank.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("corpus loaded",
		zap.String("dir", dir),
		zap.Int("files", corpus.Files),
		zap.Int("sentences", corpus.Len()))
	return corpus, nil
}

// activeStyles honors the color configuration.
func activeStyles() ui.Styles {
	if !cfg.UI.Color {
		return ui.PlainStyles()
	}
	return ui.DefaultStyles()
}

// runQuiz plays one round on stdin/stdout.
func runQuiz(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sample, err := quiz.Draw(rng, corpus, cfg.Quiz.Sentences)
	if err != nil {
		return err
	}

	session := quiz.NewSession(sample)
	logger.Info("session started",
		zap.String("id", session.ID),
		zap.Int("start", sample.Start),
		zap.Int("sentences", len(sample.Sentences)))

	err = playQuiz(session, os.Stdin, os.Stdout, activeStyles(), cfg.Quiz.Width)

	correct, total := session.Score()
	logger.Info("session finished",
		zap.String("id", session.ID),
		zap.Int("correct", correct),
		zap.Int("total", total))
	return err
}

// playQuiz runs the prompt/grade loop over the sampled sentences. A
// closed input ends the round early; whatever was graded still gets a
// summary.
func playQuiz(s *quiz.Session, in io.Reader, out io.Writer, styles ui.Styles, width int) error {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, renderIntro(styles, s.Sample))

	for !s.Done() {
		i, sent := s.Current()
		fmt.Fprintln(out, renderSentence(styles, i+1, len(s.Sample.Sentences), sent, width))
		fmt.Fprint(out, styles.Prompt.Render(">"), " ")

		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if err != nil && line == "" {
			fmt.Fprintln(out)
			break
		}

		res := s.Grade(strings.Fields(line))
		fmt.Fprintln(out, renderFeedback(styles, res))

		if err != nil {
			break
		}
	}

	fmt.Fprint(out, renderSummary(styles, s, width))
	return nil
}
