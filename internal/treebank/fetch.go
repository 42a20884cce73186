package treebank

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultArchiveURL is the treebank sample distributed with NLTK's data
// packages: bracketed .mrg parses of a slice of the Wall Street Journal
// section of the Penn Treebank.
const DefaultArchiveURL = "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora/treebank.zip"

// Fetcher locates the corpus on disk, downloading and extracting the
// archive into the cache directory when it is not already present.
// Resolution order: explicit data directory, then cache, then network.
// The corpus is read-only; nothing is ever written back to the source.
type Fetcher struct {
	// DataDir, when set, must already contain the .mrg files; no
	// download is attempted for an explicit directory.
	DataDir string

	// CacheDir receives the extracted archive under a "treebank"
	// subdirectory.
	CacheDir string

	// ArchiveURL overrides DefaultArchiveURL (mirrors only; the corpus
	// itself is fixed).
	ArchiveURL string

	// Offline disables the network step: a cache miss becomes an error.
	Offline bool

	Client *http.Client
	Log    *zap.Logger
}

// Resolve returns a directory containing the corpus .mrg files,
// downloading the archive first if nothing is cached. Any failure here
// is fatal to the caller: there is no corpus to quiz against.
func (f *Fetcher) Resolve(ctx context.Context) (string, error) {
	if f.DataDir != "" {
		if hasMRGFiles(f.DataDir) {
			return f.DataDir, nil
		}
		return "", fmt.Errorf("no .mrg files under configured data dir %s", f.DataDir)
	}

	if f.CacheDir == "" {
		return "", fmt.Errorf("no corpus data dir and no cache dir configured")
	}
	target := filepath.Join(f.CacheDir, "treebank")
	if hasMRGFiles(target) {
		f.logger().Debug("using cached corpus", zap.String("dir", target))
		return target, nil
	}

	if f.Offline {
		return "", fmt.Errorf("corpus not cached at %s and offline mode is on", target)
	}
	if err := f.download(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}

// Cached reports whether Resolve would succeed without touching the
// network.
func (f *Fetcher) Cached() (string, bool) {
	if f.DataDir != "" {
		return f.DataDir, hasMRGFiles(f.DataDir)
	}
	target := filepath.Join(f.CacheDir, "treebank")
	return target, f.CacheDir != "" && hasMRGFiles(target)
}

// download fetches the archive and extracts its .mrg entries under
// target, preserving the archive's relative layout. Extraction runs in
// a scratch directory that is renamed into place once complete, so
// target either holds the whole corpus or does not exist.
func (f *Fetcher) download(ctx context.Context, target string) error {
	url := f.ArchiveURL
	if url == "" {
		url = DefaultArchiveURL
	}
	log := f.logger()
	log.Info("downloading corpus archive", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build corpus request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch corpus archive: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch corpus archive: HTTP %d from %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.CacheDir, "treebank-*.zip")
	if err != nil {
		return fmt.Errorf("create archive temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	size, err := io.Copy(tmp, resp.Body)
	if err != nil {
		return fmt.Errorf("save corpus archive: %w", err)
	}
	log.Debug("archive downloaded", zap.Int64("bytes", size))

	scratch, err := os.MkdirTemp(f.CacheDir, "treebank-extract-*")
	if err != nil {
		return fmt.Errorf("create extraction dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	n, err := extractMRG(tmp.Name(), scratch)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("archive at %s contains no .mrg files", url)
	}

	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("clear stale cache dir: %w", err)
	}
	if err := os.Rename(scratch, target); err != nil {
		return fmt.Errorf("move corpus into cache: %w", err)
	}
	log.Info("corpus extracted", zap.String("dir", target), zap.Int("files", n))
	return nil
}

// extractMRG unpacks the .mrg entries of the zip at path into target and
// returns how many were written. Entries that would escape target are
// rejected.
func extractMRG(path, target string) (int, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("open corpus archive: %w", err)
	}
	defer zr.Close()

	count := 0
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || !strings.EqualFold(filepath.Ext(entry.Name), ".mrg") {
			continue
		}
		dest := filepath.Join(target, filepath.FromSlash(entry.Name))
		if !strings.HasPrefix(dest, filepath.Clean(target)+string(os.PathSeparator)) {
			return count, fmt.Errorf("archive entry %q escapes extraction dir", entry.Name)
		}
		if err := writeEntry(entry, dest); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func writeEntry(entry *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", entry.Name, err)
	}
	return out.Close()
}

func (f *Fetcher) logger() *zap.Logger {
	if f.Log != nil {
		return f.Log
	}
	return zap.NewNop()
}

func hasMRGFiles(dir string) bool {
	found := false
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mrg") {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}
