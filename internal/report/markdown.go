package report

import (
	"fmt"
	"strings"

	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

// Footer renders the request/model footer. Missing audit fields are shown as
// N/A and 1.0.
func Footer(lang i18n.Language, audit *model.Audit) string {
	requestID, version := "N/A", "1.0"
	if audit != nil {
		if audit.RequestID != "" {
			requestID = audit.RequestID
		}
		if audit.ModelVersion != "" {
			version = audit.ModelVersion
		}
	}
	return i18n.Messages.Format(lang, "report_footer", map[string]string{
		"request_id":    requestID,
		"model_version": version,
	})
}

// Markdown renders a view.
func (v View) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	for _, s := range v.Sections {
		if s.Title != v.Title {
			fmt.Fprintf(&b, "## %s\n\n", s.Title)
		}
		for _, l := range s.Lines {
			b.WriteString("- ")
			b.WriteString(markdownLine(l))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func markdownLine(l Line) string {
	var b strings.Builder
	switch l.Tone {
	case ToneDanger, ToneCaution:
		b.WriteString("⚠️ ")
	case ToneInfo:
		b.WriteString("ℹ️ ")
	}
	if l.Label != "" {
		fmt.Fprintf(&b, "**%s**", l.Label)
		if l.Detail != "" {
			fmt.Fprintf(&b, " (%s)", l.Detail)
		}
		if l.Text != "" {
			b.WriteString(": ")
		}
	}
	b.WriteString(l.Text)
	if l.Label == "" && l.Detail != "" {
		fmt.Fprintf(&b, " (%s)", l.Detail)
	}
	return b.String()
}

// Markdown renders the patient and doctor views of an assessment as one
// document. The footer is appended when footer is true.
func Markdown(a *model.Assessment, lang i18n.Language, footer bool) string {
	in := FromAssessment(a, lang)

	var b strings.Builder
	b.WriteString(Patient(in).Markdown())
	b.WriteString(Doctor(in).Markdown())
	if footer {
		var audit *model.Audit
		if a != nil {
			audit = a.Prediction.Audit
		}
		fmt.Fprintf(&b, "---\n\n%s\n\n_%s_\n", Footer(lang, audit), i18n.T(lang, "clinical_disclaimer_detailed"))
	}
	return b.String()
}
