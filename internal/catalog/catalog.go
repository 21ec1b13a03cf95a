// Package catalog loads the static word list. Sources are tried in order —
// http(s) URLs or local files — and the first one that parses wins. When
// every source fails the app runs with an empty catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"go.uber.org/zap"
)

type Loader struct {
	sources []string
	client  *http.Client
	log     *zap.Logger
}

func NewLoader(sources []string, log *zap.Logger) *Loader {
	return &Loader{
		sources: sources,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Load fetches the catalog from the first working source. All sources
// failing is not an error: the result is an empty catalog.
func (l *Loader) Load(ctx context.Context) []models.WordEntry {
	for _, src := range l.sources {
		words, err := l.loadOne(ctx, src)
		if err != nil {
			l.log.Warn("failed to load word list", zap.String("source", src), zap.Error(err))
			continue
		}
		l.log.Info("word list loaded", zap.String("source", src), zap.Int("words", len(words)))
		return words
	}

	l.log.Error("all word list sources failed", zap.Strings("sources", l.sources))
	return []models.WordEntry{}
}

func (l *Loader) loadOne(ctx context.Context, src string) ([]models.WordEntry, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return l.fetch(ctx, src)
	}
	return readFile(src)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]models.WordEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var words []models.WordEntry
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}
	return words, nil
}

func readFile(path string) ([]models.WordEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var words []models.WordEntry
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("failed to decode word list: %w", err)
	}
	return words, nil
}
