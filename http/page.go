package http

import (
	"bytes"
	"net/http"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/form"
)

// pageData is the view model for templates/index.html.
type pageData struct {
	Inputs          smartscrape.Inputs
	Models          []smartscrape.Model
	DefaultModel    smartscrape.Model
	Outcome         *form.Outcome
	ResultJSON      string
	Busy            bool
	ProgressMessage string
}

func (d pageData) Succeeded() bool { return d.Outcome != nil && d.Outcome.State == form.StateSucceeded }
func (d pageData) Failed() bool    { return d.Outcome != nil && d.Outcome.State == form.StateFailed }
func (d pageData) Rejected() bool  { return d.Outcome != nil && d.Outcome.State == form.StateRejected }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.render(w, sess.Inputs(), sess.Outcome(), sess.Busy())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	if err := r.ParseForm(); err != nil {
		Error(w, r, smartscrape.Errorf(smartscrape.EINVALID, "invalid form: %v", err))
		return
	}
	in := inputsFromForm(r)

	out := sess.Submit(r.Context(), in)
	s.metrics.Observe(out)

	s.render(w, in.Redacted(), out, false)
}

// inputsFromForm reads the form fields. Unchecked checkboxes are absent
// from the form and read as false.
func inputsFromForm(r *http.Request) smartscrape.Inputs {
	model := smartscrape.Model(r.PostFormValue("model"))
	if model == "" {
		model = smartscrape.DefaultModel
	}
	return smartscrape.Inputs{
		APIKey:    r.PostFormValue("api_key"),
		Model:     model,
		Verbose:   r.PostFormValue("verbose") != "",
		Headless:  r.PostFormValue("headless") != "",
		Prompt:    r.PostFormValue("prompt"),
		SourceURL: r.PostFormValue("source_url"),
	}
}

func (s *Server) render(w http.ResponseWriter, in smartscrape.Inputs, out *form.Outcome, busy bool) {
	data := pageData{
		Inputs:          in.Redacted(),
		Models:          smartscrape.Models(),
		DefaultModel:    smartscrape.DefaultModel,
		Outcome:         out,
		Busy:            busy,
		ProgressMessage: form.ProgressMessage,
	}
	if out != nil && out.State == form.StateSucceeded {
		formatted, err := smartscrape.FormatResult(out.Result)
		if err != nil {
			s.logger.Error("format result", "err", err)
		}
		data.ResultJSON = formatted
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
