// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pdiddy/calckit/internal/calc"
	"github.com/pdiddy/calckit/internal/qr"
	"github.com/pdiddy/calckit/internal/subnet"
	"github.com/pdiddy/calckit/internal/textutil"
	"github.com/pdiddy/calckit/internal/units"
	"github.com/pdiddy/calckit/pkg/types"
)

const maxBodyBytes = 1 << 20

// writeJSON encodes v before writing any header, so an unencodable value
// becomes a logged 500 instead of a truncated body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encoding response", zap.Error(err))
		status, body = http.StatusInternalServerError, []byte(`{"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Debug("writing response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return false
	}
	return true
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD: %w", field, err)
	}
	return t, nil
}

// --- units ---

type unitSummary struct {
	Category units.Category `json:"category"`
	Base     string         `json:"base"`
	Units    []string       `json:"units"`
}

func (s *Server) handleListUnits(w http.ResponseWriter, r *http.Request) {
	tables := units.Tables()
	out := make([]unitSummary, len(tables))
	for i, t := range tables {
		out[i] = unitSummary{Category: t.Category, Base: t.Base, Units: t.Keys()}
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUnitTable(w http.ResponseWriter, r *http.Request) {
	t, err := units.Lookup(units.Category(chi.URLParam(r, "category")))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	s.writeJSON(w, http.StatusOK, t)
}

type convertResponse struct {
	Category  units.Category `json:"category"`
	Value     float64        `json:"value"`
	From      string         `json:"from"`
	To        string         `json:"to"`
	Result    float64        `json:"result"`
	Formatted string         `json:"formatted"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := units.Parse(q.Get("value"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	c := units.Category(q.Get("category"))
	from, to := q.Get("from"), q.Get("to")

	out, err := units.Convert(c, v, from, to)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, convertResponse{
		Category:  c,
		Value:     v,
		From:      from,
		To:        to,
		Result:    out,
		Formatted: units.Format(out, s.cfg.Format.Precision),
	})
}

type pairRequest struct {
	Category  units.Category `json:"category"`
	LeftUnit  string         `json:"left_unit"`
	RightUnit string         `json:"right_unit"`
	Side      string         `json:"side"`
	Input     string         `json:"input"`
}

func (s *Server) handlePair(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := units.NewPair(req.Category, req.LeftUnit, req.RightUnit, s.cfg.Format.Precision)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	switch req.Side {
	case "left", "":
		p.SetLeft(req.Input)
	case "right":
		p.SetRight(req.Input)
	default:
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("side must be left or right, got %q", req.Side))
		return
	}
	s.writeJSON(w, http.StatusOK, p.View())
}

// --- calculators ---

type ageRequest struct {
	Birth string `json:"birth"`
	On    string `json:"on,omitempty"`
}

func (s *Server) handleAge(w http.ResponseWriter, r *http.Request) {
	var req ageRequest
	if !s.decode(w, r, &req) {
		return
	}
	birth, err := parseDate("birth", req.Birth)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	on := s.now()
	if req.On != "" {
		if on, err = parseDate("on", req.On); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	res, err := calc.Age(birth, on)
	s.respond(w, res, err)
}

type dateDiffRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handleDateDiff(w http.ResponseWriter, r *http.Request) {
	var req dateDiffRequest
	if !s.decode(w, r, &req) {
		return
	}
	from, err := parseDate("from", req.From)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := parseDate("to", req.To)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, calc.DateDiff(from, to))
}

type dateAddRequest struct {
	Start    string `json:"start"`
	Years    int    `json:"years"`
	Months   int    `json:"months"`
	Days     int    `json:"days"`
	Subtract bool   `json:"subtract"`
}

func (s *Server) handleDateAdd(w http.ResponseWriter, r *http.Request) {
	var req dateAddRequest
	if !s.decode(w, r, &req) {
		return
	}
	start, err := parseDate("start", req.Start)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	d := calc.AddToDate(start, req.Years, req.Months, req.Days, req.Subtract)
	s.writeJSON(w, http.StatusOK, map[string]string{
		"date":    d.Format(time.DateOnly),
		"weekday": d.Weekday().String(),
	})
}

type bmiRequest struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Feet     float64 `json:"feet"`
	Inches   float64 `json:"inches"`
	Pounds   float64 `json:"pounds"`
	Imperial bool    `json:"imperial"`
}

func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	var req bmiRequest
	if !s.decode(w, r, &req) {
		return
	}
	var (
		res calc.BMIResult
		err error
	)
	if req.Imperial {
		res, err = calc.BMIImperial(req.Feet, req.Inches, req.Pounds)
	} else {
		res, err = calc.BMI(req.HeightCm, req.WeightKg)
	}
	s.respond(w, res, err)
}

func (s *Server) handleBMR(w http.ResponseWriter, r *http.Request) {
	var req calc.BMRInput
	if !s.decode(w, r, &req) {
		return
	}
	bmr, err := calc.BMR(req)
	s.respond(w, map[string]float64{"bmr": bmr}, err)
}

type caloriesRequest struct {
	calc.BMRInput
	Activity calc.Activity `json:"activity"`
}

func (s *Server) handleCalories(w http.ResponseWriter, r *http.Request) {
	var req caloriesRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := calc.Calories(req.BMRInput, req.Activity)
	s.respond(w, res, err)
}

type loanRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Months    int     `json:"months"`
}

func (s *Server) handleLoan(w http.ResponseWriter, r *http.Request) {
	var req loanRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := calc.Loan(req.Principal, req.Rate, req.Months)
	s.respond(w, res, err)
}

type percentageRequest struct {
	Op calc.PercentOp `json:"op"`
	A  float64        `json:"a"`
	B  float64        `json:"b"`
}

func (s *Server) handlePercentage(w http.ResponseWriter, r *http.Request) {
	var req percentageRequest
	if !s.decode(w, r, &req) {
		return
	}
	v, err := calc.Percentage(req.Op, req.A, req.B)
	s.respond(w, map[string]float64{"result": v}, err)
}

type trigRequest struct {
	Func  calc.TrigFunc  `json:"func"`
	Value float64        `json:"value"`
	Unit  calc.AngleUnit `json:"unit"`
}

func (s *Server) handleTrig(w http.ResponseWriter, r *http.Request) {
	var req trigRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Unit == "" {
		req.Unit = calc.Degrees
	}
	v, err := calc.Evaluate(req.Func, req.Value, req.Unit)
	s.respond(w, map[string]float64{"result": v}, err)
}

type subnetRequest struct {
	Address string `json:"address"`
	Mask    string `json:"mask"`
}

func (s *Server) handleSubnet(w http.ResponseWriter, r *http.Request) {
	var req subnetRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := subnet.Calculate(req.Address, req.Mask)
	s.respond(w, res, err)
}

type textRequest struct {
	Text    string        `json:"text"`
	Mode    textutil.Mode `json:"mode,omitempty"`
	Reverse bool          `json:"reverse,omitempty"`
}

type textResponse struct {
	Stats  textutil.Stats `json:"stats"`
	Result string         `json:"result,omitempty"`
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}
	out := req.Text
	if req.Mode != "" {
		var err error
		if out, err = textutil.Transform(out, req.Mode); err != nil {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.Reverse {
		out = textutil.Reverse(out)
	}
	resp := textResponse{Stats: textutil.Analyze(req.Text)}
	if req.Mode != "" || req.Reverse {
		resp.Result = out
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type qrRequest struct {
	Text  string   `json:"text"`
	Level qr.Level `json:"level,omitempty"`
	Size  int      `json:"size,omitempty"`
}

func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	var req qrRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Size == 0 {
		req.Size = qr.DefaultSize
	}
	data, err := qr.PNG(req.Text, req.Level, req.Size)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("writing response", zap.Error(err))
	}
}

// respond writes v, or a 400 carrying err.
func (s *Server) respond(w http.ResponseWriter, v any, err error) {
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, v)
}

// --- theme ---

type themeBody struct {
	Theme types.Theme `json:"theme"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.themes.Theme(r.Context(), s.cfg.Theme.Default)
	if err != nil {
		s.internalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, themeBody{Theme: t})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeBody
	if !s.decode(w, r, &req) {
		return
	}
	if !req.Theme.Valid() {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("theme %q must be light or dark", req.Theme))
		return
	}
	if err := s.themes.SetTheme(r.Context(), req.Theme); err != nil {
		s.internalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, req)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.themes.Toggle(r.Context(), s.cfg.Theme.Default)
	if err != nil {
		s.internalError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, themeBody{Theme: t})
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("theme store", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, errors.New("internal error"))
}
