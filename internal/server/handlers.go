package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jaesu26/pairrot-solver/internal/hangul"
	"github.com/Jaesu26/pairrot-solver/internal/hint"
	"github.com/Jaesu26/pairrot-solver/internal/solver"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, hangul.ErrInvalidWord), errors.Is(err, hangul.ErrInvalidInput),
		errors.Is(err, hint.ErrUnknownKind):
		status, code = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, ErrSessionNotFound):
		status, code = http.StatusNotFound, "session_not_found"
	case errors.Is(err, solver.ErrEmptyCandidates):
		status, code = http.StatusConflict, "no_candidates"
	case errors.Is(err, solver.ErrUnknownAnswer):
		status, code = http.StatusUnprocessableEntity, "unknown_answer"
	case errors.Is(err, ErrTooManySessions):
		status, code = http.StatusServiceUnavailable, "too_many_sessions"
	case errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusGatewayTimeout, "timeout"
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	writeJSON(w, status, errorBody{Error: code, Message: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_json", Message: err.Error()})
		return false
	}
	return true
}

// ------------------------------ stateless ----------------------------------

type decomposeRes struct {
	Syllable string   `json:"syllable"`
	Jamo     []string `json:"jamo"`
	Initial  string   `json:"initial"`
	Medial   string   `json:"medial"`
	Final    string   `json:"final,omitempty"`
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "syllable")
	if u, err := url.PathUnescape(raw); err == nil {
		raw = u
	}
	jamo, err := hangul.Decompose(raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	syl := []rune(raw)[0]
	res := decomposeRes{
		Syllable: raw,
		Jamo:     make([]string, len(jamo)),
		Initial:  hangul.InitialOf(syl).String(),
		Medial:   hangul.MedialOf(syl).String(),
	}
	if f := hangul.FinalOf(syl); f != 0 {
		res.Final = f.String()
	}
	for i, j := range jamo {
		res.Jamo[i] = j.String()
	}
	writeJSON(w, http.StatusOK, res)
}

type deriveReq struct {
	Truth string `json:"truth"`
	Guess string `json:"guess"`
}

type deriveRes struct {
	First  hint.Kind `json:"first"`
	Second hint.Kind `json:"second"`
}

func (s *Server) handleDerive(w http.ResponseWriter, r *http.Request) {
	var req deriveReq
	if !decode(w, r, &req) {
		return
	}
	truth, err := hangul.ParseWord(req.Truth)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	guess, err := hangul.ParseWord(req.Guess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := hint.Derive(truth, guess)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	k1, k2 := p.Kinds()
	writeJSON(w, http.StatusOK, deriveRes{First: k1, Second: k2})
}

type solveReq struct {
	Answer string `json:"answer"`
}

type solveRes struct {
	Answer  string        `json:"answer"`
	Guesses []hangul.Word `json:"guesses"`
	Turns   int           `json:"turns"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decode(w, r, &req) {
		return
	}
	sv, err := s.newSolver()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	history, err := sv.SolveContext(r.Context(), req.Answer)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, solveRes{Answer: history[len(history)-1].String(), Guesses: history, Turns: len(history)})
}

func (s *Server) newSolver() (*solver.Solver, error) {
	return solver.New(s.vocab, s.cfg, solver.WithLogger(s.log))
}

// ------------------------------ sessions -----------------------------------

type sessionRes struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Candidates int       `json:"candidates"`
	Turns      int       `json:"turns"`
}

// view snapshots the session. The caller must hold sess.mu.
func (sess *Session) view() sessionRes {
	return sessionRes{ID: sess.ID, CreatedAt: sess.CreatedAt, Candidates: sess.solver.Len(), Turns: sess.turns}
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sv, err := s.newSolver()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.sessions.Create(r.Context(), sv)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var res sessionRes
	_ = sess.with(func(*solver.Solver) error {
		res = sess.view()
		return nil
	})
	s.log.Debug().Str("session", sess.ID).Int("candidates", res.Candidates).Msg("session created")
	writeJSON(w, http.StatusCreated, res)
}

// session resolves {id} or writes a 404.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var res sessionRes
	_ = sess.with(func(*solver.Solver) error {
		res = sess.view()
		return nil
	})
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type suggestRes struct {
	solver.Suggestion
	Ranked []solver.Scored `json:"ranked,omitempty"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	top := 0
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_input", Message: "top must be a non-negative integer"})
			return
		}
		top = n
	}

	var res suggestRes
	err := sess.with(func(sv *solver.Solver) error {
		sug, err := sv.SuggestContext(r.Context())
		if err != nil {
			return err
		}
		res.Suggestion = sug
		if top > 0 {
			res.Ranked, _, err = sv.Rank(r.Context(), top)
		}
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type candidatesRes struct {
	Count int           `json:"count"`
	Words []hangul.Word `json:"words"`
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var res candidatesRes
	_ = sess.with(func(sv *solver.Solver) error {
		res.Words = sv.Candidates()
		res.Count = len(res.Words)
		return nil
	})
	if res.Words == nil {
		res.Words = []hangul.Word{}
	}
	writeJSON(w, http.StatusOK, res)
}

type feedbackReq struct {
	Guess  string `json:"guess"`
	First  string `json:"first"`
	Second string `json:"second"`
	// Jamo, when set, keeps only candidates containing it; the other fields are ignored.
	Jamo string `json:"jamo,omitempty"`
}

type feedbackRes struct {
	Remaining int  `json:"remaining"`
	Solved    bool `json:"solved"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req feedbackReq
	if !decode(w, r, &req) {
		return
	}

	var res feedbackRes
	err := sess.with(func(sv *solver.Solver) error {
		var err error
		if req.Jamo != "" {
			res.Remaining, err = sv.FeedbackJamo(req.Jamo)
		} else {
			res.Remaining, err = sv.Feedback(req.Guess, req.First, req.Second)
			res.Solved = err == nil && req.First == hint.ExactMatch.String() && req.Second == hint.ExactMatch.String()
		}
		if err == nil {
			sess.turns++
		}
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type banReq struct {
	Word string `json:"word"`
}

func (s *Server) handleBan(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req banReq
	if !decode(w, r, &req) {
		return
	}
	var res feedbackRes
	err := sess.with(func(sv *solver.Solver) error {
		var err error
		res.Remaining, err = sv.Ban(req.Word)
		if err == nil {
			sess.turns++
		}
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var res sessionRes
	_ = sess.with(func(sv *solver.Solver) error {
		sv.Reset()
		sess.turns = 0
		res = sess.view()
		return nil
	})
	writeJSON(w, http.StatusOK, res)
}
