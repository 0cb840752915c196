package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

// Kind selects a report template.
type Kind string

// Report kinds
const (
	KindProfile   Kind = "profile"
	KindTraining  Kind = "training"
	KindScreening Kind = "screening"
)

// Kinds lists the supported report kinds.
var Kinds = []Kind{KindProfile, KindTraining, KindScreening}

// ParseKind validates a report kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == strings.ToLower(s) {
			return k, nil
		}
	}
	return "", &RenderError{Message: fmt.Sprintf("unknown report kind %q", s)}
}

// Schema names the schema a result document of this kind must match, or "" when none applies.
func (k Kind) Schema() string {
	switch k {
	case KindProfile:
		return schemadocs.DatingResult
	case KindTraining:
		return schemadocs.TrainingPlan
	}
	return ""
}

// TrainingReport is a running plan with an optional nutrition plan.
type TrainingReport struct {
	types.TrainingResult
	Nutrition *types.NutritionPlan `json:"nutrition,omitempty"`
}

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("report").Funcs(funcs).ParseFS(templateFS, "templates/*.html.tmpl"))

var funcs = template.FuncMap{
	"label": label,
	"km":    func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"deref": func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	},
	"dict": func(kv ...any) (map[string]any, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict needs key/value pairs")
		}
		m := make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", kv[i])
			}
			m[key] = kv[i+1]
		}
		return m, nil
	},
}

// label turns snake_case identifiers into title case words.
func label(v any) string {
	words := strings.Fields(strings.ReplaceAll(fmt.Sprint(v), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// RenderProfile renders a dating self-insight result.
func RenderProfile(result types.DatingResult) (string, error) {
	return execute("profile", result)
}

// RenderTraining renders a running plan and, when present, its nutrition plan.
func RenderTraining(r TrainingReport) (string, error) {
	if len(r.Plan.Weeks) == 0 {
		return "", &RenderError{Message: "training plan has no weeks"}
	}
	return execute("training", r)
}

// RenderScreening renders a movement screening result.
func RenderScreening(result types.MovementScreeningResult) (string, error) {
	return execute("screening", result)
}

// RenderHTML decodes a JSON result document of the given kind and renders it.
func RenderHTML(kind Kind, doc []byte) (string, error) {
	switch kind {
	case KindProfile:
		var r types.DatingResult
		if err := json.Unmarshal(doc, &r); err != nil {
			return "", &RenderError{Message: "failed to decode profile result", Cause: err}
		}
		return RenderProfile(r)
	case KindTraining:
		var r TrainingReport
		if err := json.Unmarshal(doc, &r); err != nil {
			return "", &RenderError{Message: "failed to decode training result", Cause: err}
		}
		return RenderTraining(r)
	case KindScreening:
		var r types.MovementScreeningResult
		if err := json.Unmarshal(doc, &r); err != nil {
			return "", &RenderError{Message: "failed to decode screening result", Cause: err}
		}
		return RenderScreening(r)
	default:
		return "", &RenderError{Message: fmt.Sprintf("unknown report kind %q", kind)}
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute %s template", name),
			Cause:   err,
		}
	}
	return buf.String(), nil
}
