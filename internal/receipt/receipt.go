// Package receipt renders a donation into a single-page PDF receipt with a
// fixed layout: a bold title, seven label-value rows, and a thank-you line
// pinned near the bottom of the page.
package receipt

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"hoperaise/internal/domain"
)

// The body rows carry the rupee sign, which the core PDF fonts (cp1252)
// cannot encode, so they are set in an embedded UTF-8 font. Title and footer
// are plain ASCII and stay on core Helvetica like the rest of the layout.
//
//go:embed fonts/DejaVuSans.ttf
var bodyFontData []byte

const bodyFontFamily = "DejaVuSans"

const (
	currencySymbol = "₹"
	dateLayout     = "02 Jan 2006 15:04"

	pageMargin = 60.0
	titleY     = 42.0
	bodyTop    = 82.0
	lineStep   = 18.0
	// Footer position is fixed regardless of content height. A very long
	// message can run into it; receipts only ever carry a handful of lines.
	footerFromBottom = 120.0
)

// ErrIncomplete is returned when the donation's donor or campaign
// association has not been resolved.
var ErrIncomplete = errors.New("receipt: donation is missing donor or campaign")

// FormatAmount renders a donation amount the way receipts display it:
// shortest decimal form, always with at least one fractional digit
// (500 -> "500.0", 250.5 -> "250.5").
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Lines returns the label-value rows of the receipt body in render order.
func Lines(donation *domain.Donation) ([]string, error) {
	if donation == nil || donation.Donor == nil || donation.Campaign == nil {
		return nil, ErrIncomplete
	}
	message := strings.TrimSpace(donation.Message)
	if message == "" {
		message = "-"
	}
	return []string{
		fmt.Sprintf("Receipt ID   : %d", donation.ID),
		"Donor Name   : " + donation.Donor.Name,
		"Donor Email  : " + donation.Donor.Email,
		"Campaign     : " + donation.Campaign.Title,
		"Amount       : " + currencySymbol + FormatAmount(donation.Amount),
		"Date & Time  : " + donation.CreatedAt.Format(dateLayout),
		"Message      : " + message,
	}, nil
}

// Render produces the PDF bytes for one donation. Output is deterministic
// for a given donation value: the document's creation date is pinned to the
// donation's own timestamp.
func Render(donation *domain.Donation) ([]byte, error) {
	lines, err := Lines(donation)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(donation.CreatedAt)
	pdf.SetModificationDate(donation.CreatedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(bodyFontFamily, "", bodyFontData)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(pageMargin, titleY, "Donation Receipt")

	pdf.SetFont(bodyFontFamily, "", 12)
	y := bodyTop
	for _, line := range lines {
		pdf.Text(pageMargin, y, line)
		y += lineStep
	}

	_, pageHeight := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "I", 11)
	pdf.Text(pageMargin, pageHeight-footerFromBottom, "Thank you for your generous contribution to HopeRaise.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
