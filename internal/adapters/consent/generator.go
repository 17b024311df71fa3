// Package consent renders the consent document for a mutually accepted match
// as a PDF stored in a directory, and serves it back by match id.
package consent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"organease/internal/domain"
	"organease/internal/ports"
)

var (
	_ ports.ConsentGenerator = (*FileGenerator)(nil)
	_ ports.ConsentDocuments = (*FileGenerator)(nil)
)

const statement = "Both parties have accepted this match. The approving hospital confirms that " +
	"the donor and recipient were informed of the procedure, its risks and their " +
	"right to withdraw before the procedure takes place."

// FileGenerator writes <dir>/<matchID>.pdf. The returned artifact URL is the
// API route that serves it, prefixed with BaseURL.
type FileGenerator struct {
	Dir     string
	BaseURL string
}

func NewFileGenerator(dir, baseURL string) (*FileGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create consent dir: %w", err)
	}
	return &FileGenerator{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// URL is where the document for matchID is served.
func (g *FileGenerator) URL(matchID string) string {
	return g.BaseURL + "/matches/" + matchID + "/consent"
}

func checkID(matchID string) error {
	if matchID == "" || strings.ContainsAny(matchID, `/\.`) {
		return fmt.Errorf("%w: bad match id %q", domain.ErrInvalidInput, matchID)
	}
	return nil
}

func (g *FileGenerator) path(matchID string) string {
	return filepath.Join(g.Dir, matchID+".pdf")
}

func (g *FileGenerator) Generate(ctx context.Context, in ports.ConsentInput) (string, error) {
	if err := checkID(in.Match.ID); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := render(&buf, in); err != nil {
		return "", fmt.Errorf("render consent %s: %w", in.Match.ID, err)
	}

	name := in.Match.ID + ".pdf"
	// write then rename so a regenerated document replaces the old one whole
	tmp, err := os.CreateTemp(g.Dir, name+".*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), g.path(in.Match.ID)); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return g.URL(in.Match.ID), nil
}

// Open returns the stored document and its size.
func (g *FileGenerator) Open(ctx context.Context, matchID string) (io.ReadCloser, int64, error) {
	if err := checkID(matchID); err != nil {
		return nil, 0, err
	}
	f, err := os.Open(g.path(matchID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: consent document for match %s", domain.ErrNotFound, matchID)
	}
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func date(t *time.Time) string {
	if t == nil {
		return "not scheduled"
	}
	return t.UTC().Format(time.RFC3339)
}

func render(w io.Writer, in ports.ConsentInput) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle("Organ donation consent", true)
	pdf.SetCreator("organease", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Organ donation consent", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(value), "", 1, "L", false, 0, "")
	}
	hospital := "unassigned"
	if h := in.Hospital; h != nil {
		hospital = fmt.Sprintf("%s (%s, %s)", h.Name, h.Location.City, h.Location.State)
	}
	m := in.Match
	row("Match", m.ID)
	row("Organ", string(m.Organ))
	row("Score", fmt.Sprintf("%d/100", m.Score))
	row("Hospital", hospital)
	pdf.Ln(3)
	row("Donor", in.Donor.ID)
	row("", fmt.Sprintf("Blood group %s, age %d, %s", in.Donor.BloodGroup, in.Donor.Age, in.Donor.Location.State))
	row("Donor accepted", date(m.DonorAcceptedAt))
	pdf.Ln(3)
	row("Recipient", in.Recipient.ID)
	row("", fmt.Sprintf("Blood group %s, age %d, %s", in.Recipient.BloodGroup, in.Recipient.Age, in.Recipient.Location.State))
	row("Recipient accepted", date(m.RecipientAcceptedAt))
	pdf.Ln(3)
	row("Approved", date(m.ApprovedAt))
	row("Test", date(m.TestScheduledAt))
	row("Procedure", date(m.ProcedureScheduledAt))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, statement, "", "L", false)
	return pdf.Output(w)
}
