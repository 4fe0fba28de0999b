package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursehub/internal/domain"
	"coursehub/internal/logging"
	"coursehub/internal/store"
)

const apiPrefix = "/api/"

// CoursesCollection is the only collection the handler serves.
const CoursesCollection = "courses"

// Handler serves the courses collection out of a domain.CourseStore.
type Handler struct {
	Store  domain.CourseStore
	Logger logging.Logger
	// Delay is applied before every request is handled.
	Delay time.Duration
}

// NewHandler returns a Handler over s with a no-op logger.
func NewHandler(s domain.CourseStore) *Handler {
	return &Handler{Store: s, Logger: logging.Nop()}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rid := r.Header.Get("X-Request-ID")
	if rid == "" {
		rid = uuid.NewString()
	}
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	rec.Header().Set("X-Request-ID", rid)

	if !h.wait(r) {
		// Client went away; nobody reads this.
		rec.WriteHeader(http.StatusServiceUnavailable)
	} else {
		h.route(rec, r)
	}

	h.logger().Info("request",
		"id", rid,
		"method", r.Method,
		"path", r.URL.RequestURI(),
		"remote", r.RemoteAddr,
		"status", rec.status,
		"bytes", rec.bytes,
		"duration", time.Since(start),
	)
}

func (h *Handler) route(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, apiPrefix) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	collection, rawID, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, apiPrefix), "/")
	if collection != CoursesCollection {
		writeError(w, http.StatusNotFound, "collection '"+collection+"' not found")
		return
	}
	rawID = strings.Trim(rawID, "/")

	var id domain.CourseID
	if rawID != "" {
		n, err := strconv.Atoi(rawID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id "+strconv.Quote(rawID))
			return
		}
		id = domain.CourseID(n)
	}

	switch {
	case r.Method == http.MethodGet && rawID == "":
		h.list(w, r)
	case r.Method == http.MethodGet:
		h.get(w, r, id)
	case r.Method == http.MethodPost && rawID == "":
		h.create(w, r)
	case r.Method == http.MethodPut:
		h.update(w, r, rawID != "", id)
	case r.Method == http.MethodDelete && rawID != "":
		h.delete(w, id)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, DELETE")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courses := h.Store.All()

	if raw := q.Get("id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id filter "+strconv.Quote(raw))
			return
		}
		courses = filter(courses, func(c domain.Course) bool { return c.ID == domain.CourseID(n) })
	}
	if term := q.Get("name"); term != "" {
		term = strings.ToLower(term)
		courses = filter(courses, func(c domain.Course) bool {
			return strings.Contains(strings.ToLower(c.Name), term)
		})
	}
	writeCached(w, r, courses)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id domain.CourseID) {
	c, ok := h.Store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "course with id='"+id.String()+"' not found")
		return
	}
	writeCached(w, r, c)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var c domain.Course
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stored, err := h.Store.Insert(c)
	if errors.Is(err, store.ErrDuplicateID) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Location", apiPrefix+CoursesCollection+"/"+stored.ID.String())
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, hasPathID bool, pathID domain.CourseID) {
	var c domain.Course
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if hasPathID && c.ID != 0 && c.ID != pathID {
		writeError(w, http.StatusBadRequest, "request id does not match item id")
		return
	}
	if c.ID == 0 {
		c.ID = pathID
	}
	if c.ID == 0 {
		writeError(w, http.StatusBadRequest, "missing id")
		return
	}
	h.Store.Put(c)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, id domain.CourseID) {
	h.Store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// wait applies Delay and reports false if the request was cancelled meanwhile.
func (h *Handler) wait(r *http.Request) bool {
	if h.Delay <= 0 {
		return true
	}
	t := time.NewTimer(h.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.Context().Done():
		return false
	}
}

func (h *Handler) logger() logging.Logger {
	if h.Logger == nil {
		return logging.Nop()
	}
	return h.Logger
}

func decodeBody(r *http.Request, out *domain.Course) error {
	if r.Body == nil {
		return errors.New("missing request body")
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errors.New("invalid JSON body: " + err.Error())
	}
	return nil
}

func filter(in []domain.Course, keep func(domain.Course) bool) []domain.Course {
	out := make([]domain.Course, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}
