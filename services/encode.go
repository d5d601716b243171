package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

// EncodeDraft serializes a finalized draft into a multipart body the
// collaborator backend can reconstruct:
//
//   - scalar fields become name→value parts, always present even when empty;
//   - binary fields become file parts only when staged, never as empty
//     placeholders;
//   - array fields are flattened to `name[i]` parts in insertion order;
//   - team members become `teamMembers[i][name]` / `teamMembers[i][photo]`
//     parts so the receiver can rebuild the sequence positionally.
//
// Part ordering is fixed, so encoding the same draft twice produces
// identical part sets up to the boundary token.
func EncodeDraft(d *models.ProjectDraft) (*bytes.Buffer, string, error) {
	// The validators guarantee these before submit; re-checking here keeps a
	// half-filled draft from ever reaching the wire.
	if d.Image == nil {
		return nil, "", errs.NewEncodingError("image")
	}
	if d.PPT == nil {
		return nil, "", errs.NewEncodingError("ppt")
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	scalars := []struct {
		name  string
		value string
	}{
		{"title", d.Title},
		{"description", d.Description},
		{"college", d.College},
		{"problemStatement", d.ProblemStatement},
		{"keyFeatures", d.KeyFeatures},
		{"scope", d.Scope},
		{"presentationLayer", d.PresentationLayer},
		{"applicationLayer", d.ApplicationLayer},
		{"dataLayer", d.DataLayer},
		{"methodology", d.Methodology},
		{"tools", d.Tools},
		{"api", d.API},
		{"teamCount", strconv.Itoa(d.TeamCount)},
		{"youtubeUrl", d.YoutubeURL},
		{"githubUrl", d.GithubURL},
		{"demoUrl", d.DemoURL},
	}
	for _, f := range scalars {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
		}
	}

	for i, tag := range d.Tags {
		if err := w.WriteField(fmt.Sprintf("tags[%d]", i), tag); err != nil {
			return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
		}
	}
	for i, domain := range d.Domains {
		if err := w.WriteField(fmt.Sprintf("domains[%d]", i), domain); err != nil {
			return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
		}
	}

	for i, m := range d.TeamMembers {
		if err := w.WriteField(fmt.Sprintf("teamMembers[%d][name]", i), m.Name); err != nil {
			return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
		}
		if m.Photo != nil {
			if err := writeFilePart(w, fmt.Sprintf("teamMembers[%d][photo]", i), m.Photo); err != nil {
				return nil, "", err
			}
		}
	}

	mentors := []struct {
		name   string
		mentor models.Mentor
	}{
		{"associateProjectMentor", d.AssociateProjectMentor},
		{"associateTechMentor", d.AssociateTechMentor},
		{"dtMentor", d.DTMentor},
	}
	for _, m := range mentors {
		if err := w.WriteField(m.name+"[name]", m.mentor.Name); err != nil {
			return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
		}
		if m.mentor.Photo != nil {
			if err := writeFilePart(w, m.name+"[photo]", m.mentor.Photo); err != nil {
				return nil, "", err
			}
		}
	}

	if err := writeFilePart(w, "image", d.Image); err != nil {
		return nil, "", err
	}
	if err := writeFilePart(w, "ppt", d.PPT); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeFilePart writes a binary part carrying the upload's original filename
// and content type. multipart.Writer's CreateFormFile would pin the content
// type to application/octet-stream, so build the header by hand.
func writeFilePart(w *multipart.Writer, field string, f *models.FileUpload) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(f.Filename)))
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	if _, err := part.Write(f.Data); err != nil {
		return errs.NewTransportError(errs.GenericTransportMessage, err)
	}
	return nil
}
