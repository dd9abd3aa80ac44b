/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: handlers.go
Description: HTTP handlers for organisms, evaluation and report rendering.
*/

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/kleascm/mechid/pkg/interfaces"
	"github.com/kleascm/mechid/pkg/knowledge"
	"github.com/kleascm/mechid/pkg/reporting"
)

// OrganismSummary is one row of the organism listing
type OrganismSummary struct {
	Name     string `json:"name"`
	Group    string `json:"group,omitempty"`
	Template string `json:"template,omitempty"`
	Known    bool   `json:"known"`
}

// OrganismDetail is the knowledge held for one organism
type OrganismDetail struct {
	Name      string                  `json:"name"`
	Group     string                  `json:"group"`
	Template  string                  `json:"template"`
	Panel     []string                `json:"panel"`
	Intrinsic []string                `json:"intrinsic"`
	Cascade   []knowledge.CascadeRule `json:"cascade"`
}

// BatchItem is one entry of a batch response
type BatchItem struct {
	Evaluation *interfaces.Evaluation `json:"evaluation,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"organisms": s.engine.Base().Len(),
		"mode":      s.engine.Mode(),
	})
}

// handleListOrganisms lists knowledge base organisms plus any catalog-only names
func (s *Server) handleListOrganisms(w http.ResponseWriter, r *http.Request) {
	base := s.engine.Base()
	group := r.URL.Query().Get("group")

	var out []OrganismSummary
	seen := make(map[string]bool)
	for _, o := range base.Organisms() {
		if group != "" && string(o.Group) != group {
			continue
		}
		seen[o.Name] = true
		out = append(out, OrganismSummary{Name: o.Name, Group: string(o.Group), Template: o.TemplateName(), Known: true})
	}
	if group == "" {
		for _, name := range s.catalog.Organisms(base) {
			if !seen[name] {
				out = append(out, OrganismSummary{Name: name})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if out == nil {
		out = []OrganismSummary{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetOrganism(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid organism name: %w", err))
		return
	}

	org, ok := s.engine.Base().Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown organism: %s", name))
		return
	}

	writeJSON(w, http.StatusOK, OrganismDetail{
		Name:      org.Name,
		Group:     string(org.Group),
		Template:  org.TemplateName(),
		Panel:     org.Panel,
		Intrinsic: org.Intrinsic,
		Cascade:   org.Cascade,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req interfaces.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	eval, err := s.engine.Evaluate(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs []interfaces.Request
	if err := decodeJSON(w, r, &reqs); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := s.engine.EvaluateBatch(r.Context(), reqs, 0)
	items := make([]BatchItem, len(results))
	for i, res := range results {
		items[i].Evaluation = res.Evaluation
		if res.Err != nil {
			items[i].Error = res.Err.Error()
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleReport renders a report; ?format=html|markdown|json, default html
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req interfaces.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	format := reporting.FormatHTML
	if f := r.URL.Query().Get("format"); f != "" {
		formats, err := reporting.ParseFormats(f)
		if err != nil || len(formats) != 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("format must be one of html, markdown or json"))
			return
		}
		format = formats[0]
	}

	eval, err := s.engine.Evaluate(req)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	report := reporting.NewReport(req, eval)

	switch format {
	case reporting.FormatMarkdown:
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		err = reporting.WriteMarkdown(w, report)
	case reporting.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
		err = reporting.WriteJSON(w, report)
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = reporting.WriteHTML(w, report)
	}
	if err != nil {
		s.logger.WithError(err).Error("Report request failed")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func statusFor(err error) int {
	if errors.Is(err, interfaces.ErrInvalidCall) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
