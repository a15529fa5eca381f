package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupported is returned for payloads that are not PDF.
var ErrUnsupported = errors.New("unsupported file type")

const mimePDF = "application/pdf"

// JobPostingText extracts plain text from an uploaded job posting so it can
// feed the ATS scorer. PDF is the only supported upload format; plain text
// postings go through the JSON body instead.
func JobPostingText(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !isPDF(mimeType, fileName, data) {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
	return extractPDF(data)
}

func isPDF(mimeType, fileName string, data []byte) bool {
	if strings.Contains(strings.ToLower(mimeType), mimePDF) {
		return true
	}
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plain text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
