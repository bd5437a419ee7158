package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/jaywantadh/DeckSweep/internal/cleaner"
	"github.com/jaywantadh/DeckSweep/pkg/logging"
)

var defaultThreshold float64

// analysisResponse is the JSON body returned by /analyze.
type analysisResponse struct {
	TotalPages   int   `json:"total_pages"`
	Kept         int   `json:"kept"`
	DroppedPages []int `json:"dropped_pages"` // 1-based
}

// Serve registers the analysis endpoint and blocks serving HTTP on the given
// port. Uploaded decks are analyzed in dry-run mode only; the server never
// writes a cleaned PDF.
func Serve(port int, threshold float64) error {
	defaultThreshold = threshold
	http.HandleFunc("/analyze", handleAnalyze)
	logging.Log.Infof("Analysis server listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}

func handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed!", http.StatusMethodNotAllowed)
		return
	}

	upload, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing 'file' upload!", http.StatusBadRequest)
		return
	}
	defer upload.Close()

	threshold := defaultThreshold
	if raw := r.FormValue("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid threshold!", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	spoolPath, err := spoolUpload(upload)
	if err != nil {
		logging.Log.Errorf("Failed to spool upload: %v", err)
		http.Error(w, "Upload failed", http.StatusInternalServerError)
		return
	}
	defer os.Remove(spoolPath)

	report, err := cleaner.Clean(cleaner.Options{
		InputPath: spoolPath,
		Threshold: threshold,
		DryRun:    true,
	})
	if err != nil {
		logging.Log.Errorf("Failed to analyze upload: %v", err)
		http.Error(w, "Could not analyze document", http.StatusUnprocessableEntity)
		return
	}

	resp := analysisResponse{
		TotalPages:   report.TotalPages,
		Kept:         len(report.Kept),
		DroppedPages: report.DroppedPages(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Log.Errorf("Failed to write response: %v", err)
	}
}

// spoolUpload writes the uploaded deck to a uniquely named temp file and
// returns its path. The caller removes it when the request is done.
func spoolUpload(upload io.Reader) (string, error) {
	path := filepath.Join(os.TempDir(), "decksweep-"+uuid.NewString()+".pdf")

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create spool file: %v", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, upload); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write spool file: %v", err)
	}
	return path, nil
}
