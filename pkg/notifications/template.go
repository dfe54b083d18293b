package notifications

import (
	"bytes"
	"embed"
	"encoding/json"
	"io/fs"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const templateName = "message-template.json"
const colorGood = "good"

//go:embed message-template.json
var templates embed.FS

var defaultRenderer = NewRenderer(templates, templateName)

// MessageTemplate holds the fields of a Slack attachment message.
// Free-text fields are sanitized at render time.
type MessageTemplate struct {
	Channel string
	Name    string
	Action  string
	Project string
	Branch  string
	URL     string
	Number  int
	Title   string
	Message string
}

// Render renders the message with the embedded template
func (t *MessageTemplate) Render() (string, error) {
	return defaultRenderer.Render(t)
}

// Renderer renders message templates from a template file.
// The template is loaded once, a Renderer is safe for concurrent use.
type Renderer struct {
	fs   fs.FS
	name string

	once sync.Once
	tpl  *template.Template
	err  error
}

func NewRenderer(fsys fs.FS, name string) *Renderer {
	return &Renderer{
		fs:   fsys,
		name: name,
	}
}

func (r *Renderer) load() (*template.Template, error) {
	r.once.Do(func() {
		raw, err := fs.ReadFile(r.fs, r.name)
		if err != nil {
			r.err = &RenderError{Template: r.name, Err: err}
			return
		}

		funcMap := sprig.TxtFuncMap()
		funcMap["clean"] = clean
		r.tpl, err = template.New(r.name).Funcs(funcMap).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			r.err = &RenderError{Template: r.name, Err: err}
		}
	})

	return r.tpl, r.err
}

func (r *Renderer) Render(t *MessageTemplate) (string, error) {
	tpl, err := r.load()
	if err != nil {
		return "", err
	}

	data := struct {
		MessageTemplate
		Color string
	}{
		MessageTemplate: *t,
		Color:           colorGood,
	}

	var b bytes.Buffer
	err = tpl.Execute(&b, data)
	if err != nil {
		return "", &RenderError{Template: r.name, Err: err}
	}

	err = validateMessage(b.String())
	if err != nil {
		return "", &RenderError{Template: r.name, Err: err}
	}

	return b.String(), nil
}

// clean makes a string safe to embed in a JSON string literal of the template.
// It trims leading and trailing whitespace, then escapes quotes, backslashes and control characters.
func clean(str string) string {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = encoder.Encode(strings.TrimSpace(str))

	quoted := strings.TrimSuffix(b.String(), "\n")
	return quoted[1 : len(quoted)-1]
}
