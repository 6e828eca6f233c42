package smartscrape

import "log/slog"

// Field names a user-supplied form input.
type Field string

// Form fields.
const (
	FieldNone       Field = ""
	FieldCredential Field = "api_key"
	FieldModel      Field = "model"
	FieldPrompt     Field = "prompt"
	FieldSourceURL  Field = "source_url"
)

// Inputs holds one session's form values at the moment of a submission.
// It is passed by value; nothing in it is persisted.
type Inputs struct {
	APIKey    string `json:"apiKey"`
	Model     Model  `json:"model"`
	Verbose   bool   `json:"verbose"`
	Headless  bool   `json:"headless"`
	Prompt    string `json:"prompt"`
	SourceURL string `json:"sourceUrl"`
}

// DefaultInputs returns the values a fresh form starts with.
func DefaultInputs() Inputs {
	return Inputs{
		Model:   DefaultModel,
		Verbose: true,
	}
}

// MissingField returns the first required field that is empty, checked in
// the order credential, prompt, source URL. Returns FieldNone if all are set.
func (in Inputs) MissingField() Field {
	switch {
	case in.APIKey == "":
		return FieldCredential
	case in.Prompt == "":
		return FieldPrompt
	case in.SourceURL == "":
		return FieldSourceURL
	}
	return FieldNone
}

// Validate returns an error if the inputs cannot be submitted.
// Required fields are checked before the model.
func (in Inputs) Validate() error {
	switch in.MissingField() {
	case FieldCredential:
		return Errorf(EINVALID, "Please enter your API key.")
	case FieldPrompt:
		return Errorf(EINVALID, "Please provide the information you want to extract.")
	case FieldSourceURL:
		return Errorf(EINVALID, "Please provide the source URL.")
	}
	if !in.Model.Valid() {
		return Errorf(EINVALID, "Please select a supported model (got %q).", in.Model)
	}
	return nil
}

// Config assembles the extraction configuration from the inputs.
func (in Inputs) Config() Config {
	return Config{
		APIKey:   in.APIKey,
		Model:    in.Model,
		Verbose:  in.Verbose,
		Headless: in.Headless,
	}
}

// Redacted returns a copy of the inputs with the credential cleared.
func (in Inputs) Redacted() Inputs {
	in.APIKey = ""
	return in
}

// Config is the configuration record handed to an ExtractionService.
type Config struct {
	APIKey   string
	Model    Model
	Verbose  bool
	Headless bool
}

// LogValue implements slog.LogValuer so the credential never reaches a log.
func (c Config) LogValue() slog.Value {
	key := ""
	if c.APIKey != "" {
		key = "[redacted]"
	}
	return slog.GroupValue(
		slog.String("api_key", key),
		slog.String("model", string(c.Model)),
		slog.Bool("verbose", c.Verbose),
		slog.Bool("headless", c.Headless),
	)
}
