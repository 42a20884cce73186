package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tagquiz/internal/treebank"
)

// corpusCmd inspects the corpus without starting a round.
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Show where the corpus lives and what it holds",
	RunE:  showCorpus,
}

var corpusFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and cache the corpus archive",
	Long: `Downloads the treebank sample and extracts it into the cache
directory, so the first round does not have to wait on the network.
Does nothing if the corpus is already present.`,
	RunE: fetchCorpus,
}

func init() {
	corpusCmd.AddCommand(corpusFetchCmd)
}

// showCorpus reports the corpus location and its dimensions. It never
// downloads; a cold cache is reported as such.
func showCorpus(cmd *cobra.Command, args []string) error {
	dir, ok := newFetcher().Cached()
	if !ok {
		fmt.Printf("Corpus not present at %s\n", dir)
		fmt.Println("Run 'tagquiz corpus fetch' to download it.")
		return nil
	}

	corpus, err := treebank.LoadDir(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Location:  %s\n", dir)
	fmt.Printf("Files:     %d\n", corpus.Files)
	fmt.Printf("Sentences: %d\n", corpus.Len())
	fmt.Printf("Tokens:    %d\n", corpus.TokenCount())
	return nil
}

// fetchCorpus resolves the corpus, downloading if needed.
func fetchCorpus(cmd *cobra.Command, args []string) error {
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
		return err
	}
	fmt.Printf("Corpus ready at %s\n", dir)
	return nil
}
