package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	gerrors "github.com/matzehuels/gedtree/pkg/errors"
	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/gedcom"
	"github.com/matzehuels/gedtree/pkg/pipeline"
	"github.com/matzehuels/gedtree/pkg/store"
)

// handleUpload parses the request body as GEDCOM and stores it.
// Query parameters: strict=true, name=<filename>.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "upload.ged"
	}
	if err := gerrors.ValidateFilename(name); err != nil {
		s.writeError(w, r, err)
		return
	}
	strict, _ := strconv.ParseBool(r.URL.Query().Get("strict"))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxUpload))
	if err != nil {
		s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	if len(body) == 0 {
		s.writeError(w, r, gerrors.New(gerrors.ErrCodeInvalidInput, "empty body"))
		return
	}

	res, err := s.runner.Load(r.Context(), pipeline.Options{Source: body, Name: name, Strict: strict})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := &store.Record{
		Meta: store.Meta{
			Name:        name,
			Strict:      strict,
			Individuals: res.Stats.Individuals,
			Families:    res.Stats.Families,
		},
		Source: body,
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeStorage, err, "store %s", name))
		return
	}
	s.log.Info("stored document", "id", rec.ID, "name", name, "individuals", rec.Individuals)
	writeJSON(w, http.StatusCreated, rec.Meta)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeStorage, err, "list documents"))
		return
	}
	if metas == nil {
		metas = []store.Meta{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": metas})
}

// handleGet returns the stored GEDCOM source unchanged.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.record(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Name+`"`)
	_, _ = w.Write(rec.Source)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := gerrors.ValidateDocumentID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	doc, rec, err := s.document(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.ID+`.csv"`)
	if err := export.WriteCSV(w, doc, s.cfg.Export); err != nil {
		s.log.Error("csv export failed", "id", rec.ID, "err", err)
	}
}

func (s *Server) record(r *http.Request) (*store.Record, error) {
	id := chi.URLParam(r, "id")
	if err := gerrors.ValidateDocumentID(id); err != nil {
		return nil, err
	}
	return s.store.Get(r.Context(), id)
}

// document loads and parses a stored document. Parses go through the
// runner's cache, so repeated requests reuse the tree.
func (s *Server) document(r *http.Request) (*gedcom.Document, *store.Record, error) {
	rec, err := s.record(r)
	if err != nil {
		return nil, nil, err
	}
	res, err := s.load(r.Context(), rec)
	if err != nil {
		return nil, nil, err
	}
	return res.Document, rec, nil
}

func (s *Server) load(ctx context.Context, rec *store.Record) (*pipeline.Result, error) {
	return s.runner.Load(ctx, pipeline.Options{Source: rec.Source, Name: rec.Name, Strict: rec.Strict})
}
