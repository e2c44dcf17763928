package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"

	"github.com/retrofab/emupages/internal/config"
	"github.com/retrofab/emupages/internal/input"
)

// Server exposes the session over HTTP. Frame and QR images live at the
// top level; the JSON API sits under /api/v1/.
type Server struct {
	cfg     config.SimulatorConfig
	session *Session
	logger  *log.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewServer(cfg config.SimulatorConfig, session *Session, logger *log.Logger) *Server {
	return &Server{cfg: cfg, session: session, logger: logger}
}

func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.cfg.Listen
}

func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/frame.png", s.handleFrame)
	mux.HandleFunc("/qr.png", s.handleQR)
	mux.HandleFunc("/api/v1/state", s.handleState)
	mux.HandleFunc("/api/v1/input", s.handleInput)
	mux.HandleFunc("/api/v1/reset", s.handleReset)

	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
	}
	s.ln = ln

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	go func() {
		err := s.srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve", "err", err)
		}
	}()

	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

const indexPage = `<!doctype html>
<html>
<head><title>emupages simulator</title></head>
<body style="background:#222;color:#ddd;font-family:monospace">
<p>the emu pages &mdash; keys: arrows, enter=A, backspace=B, pgup/pgdn=R/L, space=Start</p>
<img id="frame" src="/frame.png" alt="frame">
<script>
const keys = {ArrowUp:"Up", ArrowDown:"Down", ArrowLeft:"Left", ArrowRight:"Right",
  Enter:"A", Backspace:"B", PageDown:"L", PageUp:"R", " ":"Start", Tab:"Select"};
document.addEventListener("keydown", e => {
  const b = keys[e.key];
  if (!b) return;
  e.preventDefault();
  fetch("/api/v1/input", {method:"POST", body: JSON.stringify({button:b, frames:1})});
});
setInterval(() => {
  document.getElementById("frame").src = "/frame.png?t=" + Date.now();
}, 100);
</script>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame := s.session.Frame()
	if s.cfg.Scale > 1 {
		b := frame.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.cfg.Scale, b.Dy()*s.cfg.Scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), frame, b, xdraw.Src, nil)
		frame = scaled
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, frame); err != nil {
		s.logger.Error("frame encode", "err", err)
	}
}

// handleQR serves a QR code of the simulator's public URL so a phone can
// reach the running instance.
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	url := s.cfg.PublicURL
	if url == "" {
		url = "http://" + displayAddr(s.Addr())
	}
	data, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "qr encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	st := s.session.State()
	resp := struct {
		Mode        string `json:"mode"`
		BootTimer   int    `json:"boot_timer"`
		TOCCursor   int    `json:"toc_cursor"`
		TOCScroll   int    `json:"toc_scroll"`
		CurrentPage int    `json:"current_page"`
		PageScroll  int    `json:"page_scroll"`
	}{
		Mode:        st.Mode.String(),
		BootTimer:   st.BootTimer,
		TOCCursor:   st.TOCCursor,
		TOCScroll:   st.TOCScroll,
		CurrentPage: st.CurrentPage,
		PageScroll:  st.PageScroll,
	}
	writeJSON(w, resp)
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Button string `json:"button"`
		Frames int    `json:"frames"`
		Held   *bool  `json:"held"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}
	btn, ok := parseButton(req.Button)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown button %q", req.Button), http.StatusBadRequest)
		return
	}
	if req.Held != nil {
		s.session.Hold(btn, *req.Held)
	} else {
		s.session.Press(btn, req.Frames)
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	s.session.Reset()
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func parseButton(name string) (input.Button, bool) {
	for b := input.Button(0); b < input.ButtonCount; b++ {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "127.0.0.1" + addr
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		return "127.0.0.1:" + port
	}
	return addr
}
