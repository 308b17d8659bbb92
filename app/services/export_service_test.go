package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSubscriptions() []models.EmailSubscription {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []models.EmailSubscription{
		{ID: "1", Email: "alice@example.com", IsActive: true, CreatedAt: created},
		{ID: "2", Email: "bob@example.com", IsActive: false, CreatedAt: created.Add(time.Hour)},
	}
}

func TestContentTypePerFormat(t *testing.T) {
	s := NewExportService()

	contentType, ext, err := s.ContentType(FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "csv", ext)

	_, ext, err = s.ContentType(FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", ext)

	_, ext, err = s.ContentType(FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "pdf", ext)

	_, _, err = s.ContentType(ExportFormat("docx"))
	assert.Error(t, err)
}

func TestWriteSubscriptionsCSV(t *testing.T) {
	s := NewExportService()
	var buf bytes.Buffer

	require.NoError(t, s.WriteSubscriptions(&buf, FormatCSV, sampleSubscriptions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#,Email,Status,Subscribed At", lines[0])
	assert.Contains(t, lines[1], "alice@example.com")
	assert.Contains(t, lines[1], "active")
	assert.Contains(t, lines[2], "bob@example.com")
	assert.Contains(t, lines[2], "inactive")
}

func TestWriteSubscriptionsXLSX(t *testing.T) {
	s := NewExportService()
	var buf bytes.Buffer

	require.NoError(t, s.WriteSubscriptions(&buf, FormatXLSX, sampleSubscriptions()))

	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

func TestWriteSubscriptionsPDF(t *testing.T) {
	s := NewExportService()
	var buf bytes.Buffer

	require.NoError(t, s.WriteSubscriptions(&buf, FormatPDF, sampleSubscriptions()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteSubscriptionsUnknownFormat(t *testing.T) {
	s := NewExportService()
	var buf bytes.Buffer

	err := s.WriteSubscriptions(&buf, ExportFormat("docx"), nil)
	assert.Error(t, err)
}
