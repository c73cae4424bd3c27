package main

import (
	_ "embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/jimkro/TYPE-100/internal/config"
	"github.com/jimkro/TYPE-100/internal/words"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

// pageData fills index.html.
type pageData struct {
	SSHHost string
	SSHPort string
	Stages  []stageRow
}

// stageRow is one line of the stage table, labelled with its menu key.
type stageRow struct {
	Key   string
	Name  string
	Words string
}

func stageRows(t *words.Table) []stageRow {
	rows := make([]stageRow, len(t.Stages))
	for i, s := range t.Stages {
		row := stageRow{Key: strconv.Itoa(i + 1), Name: s.Name}
		if s.Endless {
			row.Key += " / E"
			row.Words = "real words, no end"
		} else {
			row.Words = fmt.Sprintf("%d-%d letters of %s", s.MinLen, s.MaxLen, s.Chars)
		}
		rows[i] = row
	}
	return rows
}

func main() {
	logger := config.NewLogger(os.Stderr, config.GetEnv(config.EnvLogLevel, "info"), "web")

	settings, err := config.LoadGame()
	if err != nil {
		logger.Fatal("config error", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := pageData{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_DISPLAY_PORT", "2222"),
		Stages:  stageRows(settings.Stages),
	}

	http.Handle("/", indexHandler(data, logger))

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func indexHandler(data pageData, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("render index", "err", err)
		}
	})
}
