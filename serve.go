package main

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"net/http"
	"strconv"

	strip "github.com/Jon-Bright/neoctl/strip"
)

//go:embed web
var webFS embed.FS

type Server struct {
	strip   *strip.Strip
	localIP func() string
	mux     *http.ServeMux
}

// stateReply is the control contract's state document: the strip settings
// plus the address the daemon is reachable on.
type stateReply struct {
	strip.State
	IP string `json:"ip"`
}

func NewServer(st *strip.Strip, localIP func() string) *Server {
	s := &Server{strip: st, localIP: localIP, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/state", s.handleState)
	s.mux.HandleFunc("/api/control", s.handleControl)
	web, err := fs.Sub(webFS, "web")
	if err != nil {
		// Can't happen: the web directory is compiled in
		log.Fatalf("couldn't open embedded UI: %v", err)
	}
	s.mux.Handle("/", http.FileServer(http.FS(web)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w)
}

// handleControl applies each provided parameter through the corresponding
// Strip setter and answers with the resulting state, 200 regardless of
// whether anything changed. Color channels only apply when all three are
// present. A color change never switches the mode.
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	changed := false

	if v := q.Get("mode"); v != "" {
		changed = s.strip.SetMode(v) || changed
	}
	if n, ok := atoi(q.Get("brightness")); ok {
		changed = s.strip.SetBrightness(n) || changed
	}
	if n, ok := atoi(q.Get("count")); ok {
		changed = s.strip.SetPixelCount(n) || changed
	}
	cr, okR := atoi(q.Get("r"))
	cg, okG := atoi(q.Get("g"))
	cb, okB := atoi(q.Get("b"))
	if okR && okG && okB {
		changed = s.strip.SetColor(cr, cg, cb) || changed
	}

	if changed {
		log.Printf("state updated via control: %+v", s.strip.Snapshot())
	}
	s.writeState(w)
}

func (s *Server) writeState(w http.ResponseWriter) {
	reply := stateReply{State: s.strip.Snapshot(), IP: s.localIP()}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&reply); err != nil {
		log.Printf("couldn't write state reply: %v", err)
	}
}

// atoi reports ok only for a well-formed integer; malformed control
// parameters are ignored rather than treated as zero.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
