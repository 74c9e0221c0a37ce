package scan

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"checkmaster/internal/service/recognize"
)

const maxImageBytes = 10 << 20

type VehicleRecognizer interface {
	Recognize(ctx context.Context, image []byte) (*recognize.Result, error)
}

type Response struct {
	Result *recognize.Result `json:"result,omitempty"`
	Error  string            `json:"error"`
}

// ScanImage forwards an uploaded image to the recognition service. A
// collaborator failure is not fatal to the run: the caller gets a
// transient "analysis failed" signal and the targeted field stays unset.
func ScanImage(log *slog.Logger, recognizer VehicleRecognizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.recognize.ScanImage"

		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "Missing 'image' file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			http.Error(w, "Failed to read image", http.StatusBadRequest)
			return
		}

		result, err := recognizer.Recognize(r.Context(), image)
		if err != nil {
			log.Warn("analysis failed", slog.String("op", op), slog.String("error", err.Error()))
			render.JSON(w, r, Response{Error: "analysis failed"})
			return
		}

		render.JSON(w, r, Response{
			Result: result,
			Error:  "",
		})
	}
}
