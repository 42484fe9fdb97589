package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ppiankov/cardiorisk/internal/charts"
	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/normalize"
	"github.com/ppiankov/cardiorisk/internal/report"
)

// Result is the rendered assessment returned to the dashboard.
type Result struct {
	SessionID  string            `json:"session_id"`
	Sequence   uint64            `json:"sequence"`
	Language   i18n.Language     `json:"language"`
	Assessment *model.Assessment `json:"assessment"`
	Patient    report.View       `json:"patient_view"`
	Doctor     report.View       `json:"doctor_view"`
	Charts     charts.Set        `json:"charts"`
}

func render(sessionID string, a *model.Assessment, lang i18n.Language) Result {
	in := report.FromAssessment(a, lang)
	return Result{
		SessionID:  sessionID,
		Sequence:   a.Sequence,
		Language:   lang,
		Assessment: a,
		Patient:    report.Patient(in),
		Doctor:     report.Doctor(in),
		Charts:     charts.Build(a, lang),
	}
}

// language resolves the request language from explicit codes, then ?lang,
// then Accept-Language.
func language(c echo.Context, explicit ...string) i18n.Language {
	candidates := append(append([]string{}, explicit...), c.QueryParam("lang"))
	return i18n.Pick(c.Request().Header.Get("Accept-Language"), candidates...)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.deps.Sessions.Len(),
	})
}

func (s *Server) translations(c echo.Context) error {
	lang := i18n.Parse(c.Param("lang"))
	return c.JSON(http.StatusOK, map[string]any{
		"language": lang,
		"messages": i18n.Messages.Keys(lang),
	})
}

func (s *Server) hint(c echo.Context) error {
	lang := language(c)
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		return badRequest(lang, err)
	}
	h, err := i18n.ClinicalHint(lang, c.Param("type"), level)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, h)
}

func (s *Server) upstreamHealth(c echo.Context) error {
	if s.deps.Upstream == nil {
		return echo.NewHTTPError(http.StatusNotFound, "upstream not configured")
	}
	body, err := s.deps.Upstream.Health(c.Request().Context())
	if err != nil {
		return httpError(err, language(c))
	}
	return c.JSON(http.StatusOK, body)
}

func (s *Server) upstreamMetrics(c echo.Context) error {
	if s.deps.Upstream == nil {
		return echo.NewHTTPError(http.StatusNotFound, "upstream not configured")
	}
	body, err := s.deps.Upstream.Metrics(c.Request().Context())
	if err != nil {
		return httpError(err, language(c))
	}
	return c.JSON(http.StatusOK, body)
}

func (s *Server) createSession(c echo.Context) error {
	sess := s.deps.Sessions.Create()
	return c.JSON(http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"created_at": sess.CreatedAt,
	})
}

func (s *Server) assess(c echo.Context) error {
	sess, err := s.deps.Sessions.Get(c.Param("id"))
	if err != nil {
		return httpError(err, language(c))
	}

	var form map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&form); err != nil {
		return badRequest(language(c), err)
	}
	code, _ := form["ui_language"].(string)
	lang := language(c, code)

	patient := normalize.Patient(form, s.now())
	patient.Language = string(lang)

	seq := sess.Begin()
	a, err := s.deps.Assessor.Assess(c.Request().Context(), patient, lang)
	if err != nil {
		return httpError(err, lang)
	}
	if err := sess.Commit(seq, a); err != nil {
		return httpError(err, lang)
	}

	return c.JSON(http.StatusOK, render(sess.ID, a, lang))
}

func (s *Server) result(c echo.Context) error {
	lang := language(c)
	sess, err := s.deps.Sessions.Get(c.Param("id"))
	if err != nil {
		return httpError(err, lang)
	}
	a, err := sess.Last()
	if err != nil {
		return httpError(err, lang)
	}
	return c.JSON(http.StatusOK, render(sess.ID, a, lang))
}

func (s *Server) export(c echo.Context) error {
	lang := language(c)
	f, err := export.ParseFormat(c.Param("format"))
	if err != nil {
		return httpError(err, lang)
	}
	sess, err := s.deps.Sessions.Get(c.Param("id"))
	if err != nil {
		return httpError(err, lang)
	}
	a, err := sess.Last()
	if err != nil {
		return httpError(err, lang)
	}

	opts := s.exportOptions(lang)
	body, err := export.Render(c.Request().Context(), f, a, opts)
	if err != nil {
		return httpError(err, lang)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.FileName(f, opts.Now)+`"`)
	return c.Blob(http.StatusOK, f.ContentType(), body)
}

type consentRequest struct {
	Agreed bool `json:"agreed"`
}

func (s *Server) consent(c echo.Context) error {
	lang := language(c)
	sess, err := s.deps.Sessions.Get(c.Param("id"))
	if err != nil {
		return httpError(err, lang)
	}

	var req consentRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return badRequest(lang, err)
	}
	if !req.Agreed {
		return c.JSON(http.StatusOK, map[string]any{
			"saved":   false,
			"message": i18n.T(lang, "consent_declined"),
		})
	}

	if s.deps.Consent == nil {
		return httpError(errConsentDisabled, lang)
	}
	a, err := sess.Last()
	if err != nil {
		return httpError(err, lang)
	}

	rec := model.NewConsentRecord(a)
	if err := s.deps.Consent.Save(c.Request().Context(), &rec); err != nil {
		return httpError(err, lang)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"saved":   true,
		"id":      rec.ID,
		"message": i18n.T(lang, "consent_saved"),
	})
}
