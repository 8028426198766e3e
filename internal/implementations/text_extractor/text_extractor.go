package textextractor

import (
	"archive/zip"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const docxBodyPath = "word/document.xml"

type PDFTextExtractor interface {
	ExtractPDFText(ctx context.Context, pdf []byte) (string, error)
}

// Extractor turns uploaded documents into plain text. Text files are read as
// UTF-8 with invalid bytes dropped, docx bodies are read from their
// WordprocessingML part and PDFs are handed to a PDFTextExtractor.
type Extractor struct {
	pdf PDFTextExtractor
}

func New(pdf PDFTextExtractor) *Extractor {
	if pdf == nil {
		panic(e.NewNilArgumentError("pdf"))
	}
	return &Extractor{pdf: pdf}
}

func (x *Extractor) ExtractText(ctx context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "txt":
		data, err := io.ReadAll(content)
		if err != nil {
			return "", err
		}
		return strings.ToValidUTF8(string(data), ""), nil
	case "pdf":
		data, err := io.ReadAll(content)
		if err != nil {
			return "", err
		}
		return x.pdf.ExtractPDFText(ctx, data)
	case "doc", "docx":
		data, err := io.ReadAll(content)
		if err != nil {
			return "", err
		}
		return docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", knowledge.ErrUnsupportedDocumentType, filename)
	}
}

// docxText collects the text runs of a docx body. Paragraphs and explicit
// breaks become newlines, tabs stay tabs. Legacy binary .doc files are not
// zip archives and are reported as unsupported.
func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: not a docx archive", knowledge.ErrUnsupportedDocumentType)
	}

	var body *zip.File
	for _, f := range archive.File {
		if f.Name == docxBodyPath {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("%w: docx without %s", knowledge.ErrUnsupportedDocumentType, docxBodyPath)
	}

	r, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("open docx body: %w", err)
	}
	defer r.Close()

	var sb strings.Builder
	inText := false
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx body: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
