package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/company"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	MimeCSV  = "text/csv; charset=utf-8"
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Options bounds a single export run.
type Options struct {
	Format    string
	SortBy    string
	BatchSize int
	// MaxRows truncates the result set; the run ends cleanly at the cap.
	MaxRows int
}

// InlinePayload is the GraphQL delivery shape: csv as text, xlsx as base64.
type InlinePayload struct {
	FileName string `json:"fileName"`
	Content  string `json:"content"`
	MimeType string `json:"mimeType"`
}

type exporter interface {
	Row(v *company.CompanyView) error
	Flush() error
	Close() error
}

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	Export(ctx context.Context, f company.Filter, opts Options, w io.Writer, flush func()) error
	ExportInline(ctx context.Context, f company.Filter, opts Options) (*InlinePayload, error)
}

type service struct {
	companies company.Service
	log       *zap.Logger
}

func NewService(companies company.Service) Service {
	return &service{
		companies: companies,
		log:       zap.L().Named("export.service"),
	}
}

// Export streams matching companies into w in the requested format,
// flushing every batch so large exports never accumulate in memory.
func (s *service) Export(ctx context.Context, f company.Filter, opts Options, w io.Writer, flush func()) error {
	// Reject bad filters before the exporter writes its preamble, so the
	// caller can still send a clean error response.
	if err := f.Validate(); err != nil {
		return err
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1000
	}

	var (
		exp exporter
		err error
	)
	switch opts.Format {
	case FormatCSV:
		exp, err = newCSVExporter(w, flush)
	case FormatXLSX:
		exp, err = newXLSXExporter(w)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return err
	}

	start := time.Now()
	rows := 0
	err = s.companies.StreamViews(ctx, f, opts.SortBy, opts.MaxRows, func(v *company.CompanyView) error {
		if err := exp.Row(v); err != nil {
			return err
		}
		rows++
		if rows%opts.BatchSize == 0 {
			return exp.Flush()
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := exp.Close(); err != nil {
		return err
	}
	s.log.Info("export finished",
		zap.String("format", opts.Format),
		zap.Int("rows", rows),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

// ExportInline runs the same pipeline into a buffer for the GraphQL
// surface. Callers cap MaxRows well below the streaming limit.
func (s *service) ExportInline(ctx context.Context, f company.Filter, opts Options) (*InlinePayload, error) {
	var buf bytes.Buffer
	if err := s.Export(ctx, f, opts, &buf, nil); err != nil {
		return nil, err
	}

	payload := &InlinePayload{FileName: FileName(opts.Format)}
	switch opts.Format {
	case FormatXLSX:
		payload.MimeType = MimeXLSX
		payload.Content = base64.StdEncoding.EncodeToString(buf.Bytes())
	default:
		payload.MimeType = MimeCSV
		payload.Content = buf.String()
	}
	return payload, nil
}

// FileName builds the dated attachment name for a format.
func FileName(format string) string {
	return fmt.Sprintf("firme-%s.%s", time.Now().Format("2006-01-02"), format)
}
