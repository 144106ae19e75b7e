package export

import (
	"context"
	"errors"
	"log/slog"

	"github.com/MrJamesThe3rd/pocketbook/internal/report"
)

// ErrNotImplemented is returned for every export until a file format is chosen.
var ErrNotImplemented = errors.New("export is coming soon")

// Format names an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Export would write the report selected by req in the given format.
// TODO: pick a PDF library and render report.Report tables into it.
func (s *Service) Export(ctx context.Context, req report.Request, format Format) ([]byte, error) {
	slog.InfoContext(ctx, "export requested", "kind", req.Kind, "format", format)

	return nil, ErrNotImplemented
}
