package preview

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/render"
	"github.com/vango-dev/styled/pkg/showcase"
	"github.com/vango-dev/styled/pkg/styled"
	"github.com/vango-dev/styled/pkg/vdom"
)

// styleResponse is the body of POST /style/{name}.
type styleResponse struct {
	Component string        `json:"component"`
	Style     styled.Style  `json:"style"`
	CSS       string        `json:"css"`
	Report    styled.Report `json:"report"`
}

// errorResponse is the body of every failed JSON request.
type errorResponse struct {
	Code       string `json:"code,omitempty"`
	Error      string `json:"error"`
	Detail     string `json:"detail,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	page := showcase.Page(s.Registry(), showcase.PageOptions{Title: s.config.Title, Live: true})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page); err != nil {
		s.logger.Error("gallery render failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"components": len(s.Registry().Names()),
	})
}

// handleComponent renders one component as a standalone page. Query
// parameters become props; values are decoded as YAML scalars so that
// ?fontSize=12&bold=true yield a number and a boolean.
func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	props := vdom.Props{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		props[key] = queryValue(values[len(values)-1])
	}

	out, err := s.render(r.Context(), name, props)
	if err != nil {
		s.writeError(w, err)
		return
	}

	page := render.PageData{
		Title:  name,
		Styles: []string{showcase.Stylesheet()},
		Body:   vdom.Main(vdom.Class("gallery"), out.Node),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPage(w, page); err != nil {
		s.logger.Error("component page render failed", "component", name, "error", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	props, err := showcase.ReadProps(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.render(r.Context(), name, props)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out.HTML))
}

func (s *Server) handleStyle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	props, err := showcase.ReadProps(r.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.render(r.Context(), name, props)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, styleResponse{
		Component: name,
		Style:     out.Style,
		CSS:       out.Style.CSS(),
		Report:    out.Report,
	})
}

// writeError maps err to a status code and a JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var se *errors.StyledError
	if !stderrors.As(err, &se) {
		se = errors.FromError(err, "E140")
	}

	status := http.StatusInternalServerError
	switch se.Code {
	case "E120", "E141":
		status = http.StatusBadRequest
	case "E121":
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{
		Code:       se.Code,
		Error:      se.Error(),
		Detail:     se.Detail,
		Suggestion: se.Suggestion,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func queryValue(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	switch v.(type) {
	case map[string]any, []any:
		// Only scalars are decoded; structured values stay strings unless
		// written as JSON.
		if raw[0] != '{' && raw[0] != '[' {
			return raw
		}
	}
	return v
}
