// convert parses ITX corpus files, re-encodes their verses to accented
// Devanagari and IAST, writes one JSON document per text, and optionally
// loads the results into a store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/veda-tools/vedadiff/internal/corpus"
	"github.com/veda-tools/vedadiff/internal/logger"
	"github.com/veda-tools/vedadiff/internal/metrics"
	"github.com/veda-tools/vedadiff/internal/store"
	"github.com/veda-tools/vedadiff/internal/store/postgres"
	"github.com/veda-tools/vedadiff/internal/store/sqlite"
	"github.com/veda-tools/vedadiff/internal/translit"
	"github.com/veda-tools/vedadiff/internal/verse"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("vedadiff-convert")
	var (
		rvFile      = fs.StringLong("rv-file", "r10.itx", "Rigveda mandala 10 ITX file")
		taFile      = fs.StringLong("ta-file", "taittirIyaAraNyaka.itx", "Taittiriya Aranyaka ITX file")
		outDir      = fs.StringLong("out-dir", "data/processed", "Output directory for JSON documents")
		databaseURL = fs.StringLong("database-url", "", "Optional store URL (sqlite:// or postgres://)")
		parallelism = fs.IntLong("parallelism", 4, "Concurrent verse conversions per document")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx := context.Background()

	builder := verse.NewBuilder(translit.Sanskrit{})
	converter := corpus.NewConverter(builder, *parallelism)

	var st store.Store
	if *databaseURL != "" {
		var err error
		st, err = openStore(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()
		log.InfoContext(ctx, "store opened", "url", *databaseURL)
	}

	jobs := []struct {
		id, title, source, path string
		parse                   func(io.Reader) ([]corpus.RawVerse, error)
	}{
		{
			id:     "rv10-090",
			title:  "Purusha Sūktam (Ṛg Veda 10.90)",
			source: "SanskritDocuments.org",
			path:   *rvFile,
			parse: func(r io.Reader) ([]corpus.RawVerse, error) {
				return corpus.ParseRigveda(r, 10, 90)
			},
		},
		{
			id:     "ta3-012",
			title:  "Puruṣa Sūktam (Taittirīya Āraṇyaka 3.12–13)",
			source: "SanskritDocuments.org",
			path:   *taFile,
			parse:  corpus.ParseTaittiriya,
		},
	}

	for _, job := range jobs {
		f, err := os.Open(job.path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", job.path, err)
		}
		raws, err := job.parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", job.path, err)
		}
		log.InfoContext(ctx, "parsed corpus", "id", job.id, "verses", len(raws))

		start := time.Now()
		doc, diags, err := converter.Convert(ctx, job.id, job.title, job.source, raws)
		if err != nil {
			return fmt.Errorf("converting %s: %w", job.id, err)
		}
		metrics.ConvertDuration.Observe(time.Since(start).Seconds())
		metrics.VersesConverted.WithLabelValues(job.id).Add(float64(len(doc.Verses)))

		reportDiagnostics(ctx, log, job.id, doc, diags)

		if err := writeDocument(*outDir, doc); err != nil {
			return err
		}
		log.InfoContext(ctx, "wrote document", "id", job.id, "path", filepath.Join(*outDir, job.id+".json"))

		if st != nil {
			if err := loadStore(ctx, st, doc); err != nil {
				return fmt.Errorf("loading store for %s: %w", job.id, err)
			}
			log.InfoContext(ctx, "loaded store", "id", job.id, "verses", len(doc.Verses))
		}
	}
	return nil
}

// reportDiagnostics logs per-document data-quality anomalies and feeds the
// conversion counters. Anomalies never abort a batch.
func reportDiagnostics(ctx context.Context, log *slog.Logger, id string, doc corpus.Document, diags []verse.Diagnostics) {
	var unanchored, droppedDeva, droppedIAST int
	for i, d := range diags {
		for typ, n := range d.MarkersByType {
			metrics.MarkersResolved.WithLabelValues(string(typ)).Add(float64(n))
		}
		unanchored += d.UnanchoredMarkers
		droppedDeva += d.DroppedDevanagari
		droppedIAST += d.DroppedIAST
		if d.UnanchoredMarkers > 0 || d.DroppedDevanagari > 0 || d.DroppedIAST > 0 {
			log.WarnContext(ctx, "verse anomalies",
				"id", id,
				"verse", doc.Verses[i].Label,
				"unanchored", d.UnanchoredMarkers,
				"dropped_devanagari", d.DroppedDevanagari,
				"dropped_iast", d.DroppedIAST,
			)
		}
	}
	metrics.UnanchoredMarkers.Add(float64(unanchored))
	metrics.InjectionDrops.WithLabelValues("devanagari").Add(float64(droppedDeva))
	metrics.InjectionDrops.WithLabelValues("iast").Add(float64(droppedIAST))
}

func writeDocument(dir string, doc corpus.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", doc.ID, err)
	}
	path := filepath.Join(dir, doc.ID+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func loadStore(ctx context.Context, st store.Store, doc corpus.Document) error {
	if _, err := st.UpsertText(ctx, store.UpsertTextParams{
		ID:     doc.ID,
		Title:  doc.Title,
		Source: doc.Source,
	}); err != nil {
		return err
	}
	for i, v := range doc.Verses {
		tokens, err := json.Marshal(v.Tokens)
		if err != nil {
			return err
		}
		if _, err := st.UpsertVerse(ctx, store.UpsertVerseParams{
			TextID:     doc.ID,
			Position:   i,
			Label:      v.Label,
			Devanagari: v.Devanagari,
			IAST:       v.IAST,
			Tokens:     tokens,
		}); err != nil {
			return err
		}
	}
	return nil
}

func openStore(ctx context.Context, url string) (store.Store, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.New(ctx, url)
	}
	return sqlite.New(ctx, url)
}
