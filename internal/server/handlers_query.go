package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	gerrors "github.com/matzehuels/gedtree/pkg/errors"
	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/pipeline"
	"github.com/matzehuels/gedtree/pkg/render"
	"github.com/matzehuels/gedtree/pkg/render/nodelink"
	"github.com/matzehuels/gedtree/pkg/search"
)

type searchHit struct {
	export.Person
	Distance int `json:"distance"`
}

// handleIndividuals lists all individuals, or fuzzy-matches them by name
// when q is given.
func (s *Server) handleIndividuals(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.document(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, map[string]any{"individuals": export.Brief(doc.Individuals())})
		return
	}
	if err := gerrors.ValidateSearchQuery(q); err != nil {
		s.writeError(w, r, err)
		return
	}
	matches := search.Individuals(doc, q, s.cfg.SearchLimit)
	hits := make([]searchHit, len(matches))
	for i, m := range matches {
		hits[i] = searchHit{
			Person:   export.Person{Pointer: m.Individual.Pointer(), Name: m.Name},
			Distance: m.Distance,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "matches": hits})
}

func (s *Server) handleIndividual(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.document(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	ind, err := pipeline.Lookup(doc, chi.URLParam(r, "pointer"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := export.Summarize(doc, ind, s.cfg.Export)
	if err != nil {
		s.writeError(w, r, gerrors.Wrap(gerrors.Classify(err), err, "summarize %s", ind.Pointer()))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRelation(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.document(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q, err := pipeline.Query(r.Context(), doc, chi.URLParam(r, "pointer"), chi.URLParam(r, "relation"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body := map[string]any{
		"individual": q.Individual.Pointer(),
		"relation":   q.Relation,
	}
	switch q.Relation {
	case pipeline.RelParents:
		body["parents"] = export.BriefParents(q.Parents)
	case pipeline.RelMarriages:
		body["marriages"] = q.Marriages
	case pipeline.RelFamilies:
		body["families"] = export.Families(q.People, s.cfg.Export)
	default:
		body["individuals"] = export.Brief(q.People)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.document(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	path, err := pipeline.Path(r.Context(), doc, chi.URLParam(r, "from"), chi.URLParam(r, "to"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": export.Brief(path)})
}

var contentTypes = map[string]string{
	nodelink.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	nodelink.FormatSVG: "image/svg+xml",
	nodelink.FormatPNG: "image/png",
}

// handleChart renders a family chart.
// Query parameters: mode, depth, format, detailed.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.record(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	opts := pipeline.ChartOptions{
		Root:   chi.URLParam(r, "pointer"),
		Mode:   render.Mode(query.Get("mode")),
		Format: query.Get("format"),
	}
	if d := query.Get("depth"); d != "" {
		if opts.Depth, err = strconv.Atoi(d); err != nil {
			s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid depth %q", d))
			return
		}
	}
	opts.Detailed, _ = strconv.ParseBool(query.Get("detailed"))
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, gerrors.Wrap(gerrors.ErrCodeInvalidInput, err, "invalid chart options"))
		return
	}

	res, err := s.load(r.Context(), rec)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out, hit, err := s.runner.Render(r.Context(), res, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[opts.Format])
	w.Header().Set("X-Cache", cacheStatus(hit))
	_, _ = w.Write(out)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
