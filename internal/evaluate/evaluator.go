package evaluate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/kmateva/hieroconv/internal/cache"
	"codeberg.org/kmateva/hieroconv/internal/corpus"
	"codeberg.org/kmateva/hieroconv/internal/translate"
)

// Options configures an evaluation run.
type Options struct {
	SourceCode corpus.Code
	TargetCode corpus.Code

	// Provider generates predictions; Model names the underlying model
	// for cache keying.
	Provider translate.Provider
	Model    string

	// Cache is optional; when nil every pair hits the provider.
	Cache *cache.Cache

	// PredictionsPath receives one prediction per line.
	PredictionsPath string
}

// Result holds evaluation metrics for one language pair.
type Result struct {
	Pairs      int
	CacheHits  int
	ExactMatch float64
	BLEU       float64
	ROUGEL     float64
}

// Evaluator runs a pretrained model over held-out pairs and scores the
// predictions.
type Evaluator struct {
	opts Options
}

// New creates a new evaluator.
func New(opts Options) *Evaluator {
	return &Evaluator{opts: opts}
}

// Run predicts every pair in order, writes the predictions file and
// returns the computed metrics. The pairs slice is updated in place
// with the generated predictions.
func (e *Evaluator) Run(ctx context.Context, pairs []Pair) (Result, error) {
	result := Result{Pairs: len(pairs)}

	for i := range pairs {
		fmt.Printf("Predicting %d/%d\r", i+1, len(pairs))

		prediction, hit, err := e.predict(ctx, pairs[i].Source)
		if err != nil {
			return Result{}, fmt.Errorf("prediction %d/%d failed: %w", i+1, len(pairs), err)
		}
		if hit {
			result.CacheHits++
		}
		pairs[i].Prediction = prediction
	}
	fmt.Println()

	if e.opts.PredictionsPath != "" {
		if err := writePredictions(e.opts.PredictionsPath, pairs); err != nil {
			return Result{}, err
		}
	}

	predictions := make([][]string, len(pairs))
	references := make([][]string, len(pairs))
	for i := range pairs {
		predictions[i] = Tokenize(pairs[i].Prediction)
		references[i] = Tokenize(pairs[i].Reference)
	}

	result.ExactMatch = ExactMatch(predictions, references)
	result.BLEU = BLEU(predictions, references)
	result.ROUGEL = ROUGEL(predictions, references)
	return result, nil
}

// predict returns the prediction for source, consulting the cache
// first. Cache failures degrade to direct provider calls with a
// warning; they never abort the run.
func (e *Evaluator) predict(ctx context.Context, source string) (string, bool, error) {
	key := cache.Key{
		Provider:   e.opts.Provider.Name(),
		Model:      e.opts.Model,
		SourceCode: string(e.opts.SourceCode),
		TargetCode: string(e.opts.TargetCode),
		SourceText: source,
	}

	if e.opts.Cache != nil {
		prediction, ok, err := e.opts.Cache.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache lookup failed: %v\n", err)
		} else if ok {
			return prediction, true, nil
		}
	}

	prediction, err := e.opts.Provider.Translate(ctx, translate.Request{
		Text:       source,
		SourceCode: e.opts.SourceCode,
		TargetCode: e.opts.TargetCode,
	})
	if err != nil {
		return "", false, err
	}

	if e.opts.Cache != nil {
		if err := e.opts.Cache.Put(key, prediction); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache store failed: %v\n", err)
		}
	}
	return prediction, false, nil
}

func writePredictions(path string, pairs []Pair) error {
	var b strings.Builder
	for i := range pairs {
		b.WriteString(pairs[i].Prediction)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write predictions file: %w", err)
	}
	return nil
}
