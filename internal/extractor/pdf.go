package extractor

import (
	"errors"
	"fmt"
	"math"
	"os/exec"
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// ErrNoText is returned when no method produced a single readable line.
var ErrNoText = errors.New("no text could be extracted from the PDF")

// ExtractLines reads a PDF file and returns its text as an ordered list of
// lines, pages in document order. Every line is trimmed, runs of blanks
// are collapsed to a single space and empty lines are dropped.
//
// The structured PDF library is tried first; if it fails or yields
// unreadable text, the external pdftotext command (poppler-utils) is used.
func ExtractLines(filePath string, log zerolog.Logger) ([]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		log.Debug().Int("pages", len(pages)).Str("method", "library").Msg("extracted text")
		return flatten(pages), nil
	}
	if libErr != nil {
		log.Debug().Err(libErr).Msg("PDF library extraction failed")
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerPages) {
		log.Debug().Int("pages", len(popplerPages)).Str("method", "pdftotext").Msg("extracted text")
		return flatten(popplerPages), nil
	}
	if popplerErr != nil {
		log.Debug().Err(popplerErr).Msg("pdftotext extraction failed")
	}

	if libErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoText, libErr)
	}
	return nil, ErrNoText
}

// LinesFromText splits already extracted text into normalized lines.
func LinesFromText(text string) []string {
	return normalizePage(strings.Split(text, "\n"))
}

func flatten(pages [][]string) []string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, page...)
	}
	return lines
}

// normalizeLine trims a line and collapses inner whitespace (including
// non-breaking spaces) to single spaces.
func normalizeLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

func normalizePage(raw []string) []string {
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = normalizeLine(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// textQuality returns the ratio of readable characters (letters including
// German umlauts, digits, common punctuation, whitespace) to all characters.
func textQuality(pages [][]string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, line := range page {
			for _, r := range line {
				total++
				if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
					(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
					strings.ContainsRune("äöüÄÖÜß€.,-/:;()'\"%&+*", r) {
					readable++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// isReadableText requires at least one line and more than 60% readable
// characters, which rules out glyph garbage from custom font encodings.
func isReadableText(pages [][]string) bool {
	if len(flatten(pages)) == 0 {
		return false
	}
	return textQuality(pages) > 0.6
}

// extractWithPdftotext uses the external pdftotext command from
// poppler-utils. Pages are separated by form feeds in its output.
func extractWithPdftotext(filePath string) ([][]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	out, err := exec.Command("pdftotext", "-layout", "-enc", "UTF-8", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	var pages [][]string
	for _, page := range strings.Split(string(out), "\f") {
		if lines := normalizePage(strings.Split(page, "\n")); len(lines) > 0 {
			pages = append(pages, lines)
		}
	}
	return pages, nil
}

// extractWithLibrary uses the ledongthuc/pdf library. Row-based extraction
// is tried first, then coordinate-based row reconstruction.
func extractWithLibrary(filePath string) (pages [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	return extractByContent(r, numPages), nil
}

// extractByRow uses GetTextByRow, best for well-structured PDFs.
func extractByRow(r *pdf.Reader, numPages int) [][]string {
	var pages [][]string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		raw := make([]string, 0, len(rows))
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			raw = append(raw, strings.Join(parts, " "))
		}
		pages = append(pages, normalizePage(raw))
	}
	return pages
}

// extractByContent groups text pieces by Y coordinate to rebuild rows,
// then orders each row by X.
func extractByContent(r *pdf.Reader, numPages int) [][]string {
	type textItem struct {
		x float64
		s string
	}

	var pages [][]string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		if len(content.Text) == 0 {
			continue
		}

		rowMap := make(map[int][]textItem)
		for _, t := range content.Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			yKey := int(math.Round(t.Y))
			rowMap[yKey] = append(rowMap[yKey], textItem{x: t.X, s: t.S})
		}

		// PDF Y grows bottom-to-top.
		yKeys := make([]int, 0, len(rowMap))
		for y := range rowMap {
			yKeys = append(yKeys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

		raw := make([]string, 0, len(yKeys))
		for _, y := range yKeys {
			items := rowMap[y]
			sort.SliceStable(items, func(a, b int) bool {
				return items[a].x < items[b].x
			})

			var sb strings.Builder
			var prevX float64
			for j, item := range items {
				if j > 0 && item.x-prevX > 15 {
					sb.WriteString(" ")
				}
				sb.WriteString(item.s)
				prevX = item.x
			}
			raw = append(raw, sb.String())
		}
		pages = append(pages, normalizePage(raw))
	}
	return pages
}
