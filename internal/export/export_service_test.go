package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/TirlaP/lista-firme-backend/internal/company"
	companyerrors "github.com/TirlaP/lista-firme-backend/internal/company/errors"
	companyMock "github.com/TirlaP/lista-firme-backend/internal/company/mock"
	"github.com/TirlaP/lista-firme-backend/internal/export"
)

// feedRows makes the mocked stream deliver n views, honoring the maxRows
// cap the same way the repository layer does.
func feedRows(n int) func(ctx context.Context, f company.Filter, sortBy string, maxRows int, fn func(*company.CompanyView) error) error {
	return func(_ context.Context, _ company.Filter, _ string, maxRows int, fn func(*company.CompanyView) error) error {
		if maxRows > 0 && n > maxRows {
			n = maxRows
		}
		for i := 0; i < n; i++ {
			v := &company.CompanyView{CUI: int64(i + 1), Denumire: "FIRMA"}
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

func setupExportTest(t *testing.T) (export.Service, *companyMock.MockService) {
	ctrl := gomock.NewController(t)
	companies := companyMock.NewMockService(ctrl)
	return export.NewService(companies), companies
}

func TestExport_CSV(t *testing.T) {
	t.Run("starts with BOM and the header row", func(t *testing.T) {
		svc, companies := setupExportTest(t)
		companies.EXPECT().
			StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(feedRows(2))

		var buf bytes.Buffer
		err := svc.Export(context.Background(), company.Filter{}, export.Options{Format: export.FormatCSV}, &buf, nil)
		require.NoError(t, err)

		out := buf.Bytes()
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, out[:3])

		lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "CUI,Denumire"))
		assert.True(t, strings.HasPrefix(lines[1], "1,FIRMA"))
	})

	t.Run("flushes once per batch", func(t *testing.T) {
		svc, companies := setupExportTest(t)
		companies.EXPECT().
			StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(feedRows(25))

		flushes := 0
		var buf bytes.Buffer
		err := svc.Export(context.Background(), company.Filter{}, export.Options{
			Format:    export.FormatCSV,
			BatchSize: 10,
		}, &buf, func() { flushes++ })
		require.NoError(t, err)

		// Two full batches plus the final flush on Close.
		assert.Equal(t, 3, flushes)
	})

	t.Run("row cap truncates cleanly", func(t *testing.T) {
		svc, companies := setupExportTest(t)
		companies.EXPECT().
			StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), 5, gomock.Any()).
			DoAndReturn(feedRows(100))

		var buf bytes.Buffer
		err := svc.Export(context.Background(), company.Filter{}, export.Options{
			Format:  export.FormatCSV,
			MaxRows: 5,
		}, &buf, nil)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Len(t, lines, 6) // header + 5 rows
	})
}

func TestExport_XLSX(t *testing.T) {
	svc, companies := setupExportTest(t)
	companies.EXPECT().
		StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(feedRows(3))

	var buf bytes.Buffer
	err := svc.Export(context.Background(), company.Filter{}, export.Options{Format: export.FormatXLSX}, &buf, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Firme")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "CUI", rows[0][0])
	assert.Equal(t, "3", rows[3][0])
}

func TestExport_UnsupportedFormat(t *testing.T) {
	svc, _ := setupExportTest(t)
	var buf bytes.Buffer
	err := svc.Export(context.Background(), company.Filter{}, export.Options{Format: "pdf"}, &buf, nil)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestExport_InvalidFilter(t *testing.T) {
	t.Run("unknown status fails before any bytes are written", func(t *testing.T) {
		svc, _ := setupExportTest(t)
		var buf bytes.Buffer
		err := svc.Export(context.Background(), company.Filter{Status: "activ"},
			export.Options{Format: export.FormatCSV}, &buf, nil)
		assert.ErrorIs(t, err, companyerrors.ErrInvalidStatus)
		assert.Zero(t, buf.Len())
	})

	t.Run("malformed date window fails the same way for xlsx", func(t *testing.T) {
		svc, _ := setupExportTest(t)
		var buf bytes.Buffer
		err := svc.Export(context.Background(), company.Filter{DateFrom: "01.02.2024", DateTo: "2024-03-01"},
			export.Options{Format: export.FormatXLSX}, &buf, nil)
		assert.ErrorIs(t, err, companyerrors.ErrInvalidDateWindow)
		assert.Zero(t, buf.Len())
	})
}

func TestExportInline(t *testing.T) {
	t.Run("csv stays textual", func(t *testing.T) {
		svc, companies := setupExportTest(t)
		companies.EXPECT().
			StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(feedRows(1))

		payload, err := svc.ExportInline(context.Background(), company.Filter{}, export.Options{Format: export.FormatCSV})
		require.NoError(t, err)
		assert.Contains(t, payload.Content, "FIRMA")
		assert.Equal(t, export.MimeCSV, payload.MimeType)
		assert.Contains(t, payload.FileName, ".csv")
	})

	t.Run("xlsx is base64", func(t *testing.T) {
		svc, companies := setupExportTest(t)
		companies.EXPECT().
			StreamViews(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(feedRows(1))

		payload, err := svc.ExportInline(context.Background(), company.Filter{}, export.Options{Format: export.FormatXLSX})
		require.NoError(t, err)
		assert.Equal(t, export.MimeXLSX, payload.MimeType)
		assert.NotContains(t, payload.Content, "FIRMA")
	})
}
