// Package ingest reads fetcher output files into normalized signals.
// Upstream fetchers disagree on field shapes: a title may be a plain
// string or an {en, zh} pair, body text hides under several names,
// and IDs are often missing. Everything is resolved here once so the
// scoring core sees one consistent shape.
package ingest

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/abelbrown/tensionwatch/internal/logging"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/text"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flexText accepts either a bare JSON string or an {en, zh} object.
// A bare string lands on the side its script suggests.
type flexText struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

func (f *flexText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		if text.ContainsCJK(plain) {
			f.ZH = plain
		} else {
			f.EN = plain
		}
		return nil
	}

	var pair struct {
		EN string `json:"en"`
		ZH string `json:"zh"`
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	f.EN, f.ZH = pair.EN, pair.ZH
	return nil
}

func (f flexText) bilingual() signal.BilingualText {
	return signal.BilingualText{EN: f.EN, ZH: f.ZH}
}

// envelope is one raw record as fetchers emit it.
type envelope struct {
	ID           string   `json:"id"`
	Title        flexText `json:"title"`
	Headline     flexText `json:"headline"`
	Body         flexText `json:"body"`
	BodyText     flexText `json:"body_text"`
	BodySnippet  flexText `json:"body_snippet"`
	Summary      flexText `json:"summary"`
	Source       flexText `json:"source"`
	URL          string   `json:"url"`
	SourceURL    string   `json:"source_url"`
	Date         string   `json:"date"`
	Published    string   `json:"published"`
	Implications flexText `json:"implications"`
}

// batch is the two top-level shapes fetcher files come in: a bare
// array, or an object wrapping one under "signals".
type batch struct {
	Signals []envelope `json:"signals"`
}

func (e *envelope) toSignal() *signal.Signal {
	body := e.Body
	if body.EN == "" && body.ZH == "" {
		body = e.BodyText
	}
	if body.EN == "" && body.ZH == "" {
		body = e.BodySnippet
	}

	url := e.URL
	if url == "" {
		url = e.SourceURL
	}

	date := e.Date
	if date == "" {
		date = e.Published
	}

	sig := &signal.Signal{
		ID:           e.ID,
		Title:        e.Title.bilingual(),
		Headline:     e.Headline.bilingual(),
		Body:         body.bilingual(),
		Summary:      e.Summary.bilingual(),
		Source:       e.Source.bilingual(),
		URL:          url,
		Date:         date,
		Implications: e.Implications.bilingual(),
	}
	if sig.ID == "" {
		sig.ID = deriveID(sig)
	}
	return sig
}

// deriveID hashes URL plus title so the same article gets the same
// ID across runs. Records with neither get a random one.
func deriveID(sig *signal.Signal) string {
	seed := sig.URL + sig.Title.Join()
	if seed == "" {
		return uuid.NewString()
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return fmt.Sprintf("sig-%016x", h.Sum64())
}

// LoadFile parses one fetcher output file.
func LoadFile(path string) ([]*signal.Signal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}

	var envelopes []envelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		var wrapped batch
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("ingest: parse %s: %w", path, err)
		}
		envelopes = wrapped.Signals
	}

	signals := make([]*signal.Signal, 0, len(envelopes))
	for i := range envelopes {
		signals = append(signals, envelopes[i].toSignal())
	}
	logging.Debug("loaded fetcher file", "path", path, "signals", len(signals))
	return signals, nil
}

// LoadFiles parses many fetcher files with at most workers files in
// flight. All loading finishes before anything is returned; results
// follow the sorted file order regardless of completion order.
func LoadFiles(paths []string, workers int) ([]*signal.Signal, error) {
	if workers < 1 {
		workers = 1
	}
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	results := make([][]*signal.Signal, len(sorted))
	errs := make([]error, len(sorted))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, path := range sorted {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = LoadFile(path)
		}(i, path)
	}
	wg.Wait()

	var signals []*signal.Signal
	for i := range sorted {
		if errs[i] != nil {
			return nil, errs[i]
		}
		signals = append(signals, results[i]...)
	}
	logging.Info("ingest complete", "files", len(sorted), "signals", len(signals))
	return signals, nil
}

// LoadDir loads every .json file directly under dir.
func LoadDir(dir string, workers int) ([]*signal.Signal, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("ingest: scan %s: %w", dir, err)
	}
	return LoadFiles(paths, workers)
}
