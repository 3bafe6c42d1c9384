package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

// fileHeader builds a multipart.FileHeader carrying the given content
// by writing and re-reading a real multipart body.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	reader := multipart.NewReader(&body, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("reading form: %v", err)
	}
	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	return form.File["file"][0]
}

func TestSaveAcceptsImage(t *testing.T) {
	g := NewGateway(t.TempDir())

	fh := fileHeader(t, "house front.jpg", "image/jpeg", []byte("jpegdata"))
	name, err := g.Save(fh, Images)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasSuffix(name, "-house-front.jpg") {
		t.Errorf("filename = %q, want whitespace collapsed to hyphens", name)
	}

	data, err := os.ReadFile(filepath.Join(g.Dir(), name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("stored content = %q, want %q", data, "jpegdata")
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	g := NewGateway(t.TempDir())

	fh := fileHeader(t, "notes.txt", "image/jpeg", []byte("x"))
	if _, err := g.Save(fh, Images); !errors.Is(err, ErrInvalidType) {
		t.Errorf("err = %v, want ErrInvalidType", err)
	}
}

func TestSaveRejectsBadMIME(t *testing.T) {
	g := NewGateway(t.TempDir())

	fh := fileHeader(t, "photo.jpg", "application/octet-stream", []byte("x"))
	if _, err := g.Save(fh, Images); !errors.Is(err, ErrInvalidType) {
		t.Errorf("err = %v, want ErrInvalidType", err)
	}
}

func TestSaveRejectsOversize(t *testing.T) {
	g := NewGateway(t.TempDir())

	small := Profile{Types: []string{"jpg", "jpeg"}, MaxSize: 4}
	fh := fileHeader(t, "photo.jpg", "image/jpeg", []byte("12345"))
	if _, err := g.Save(fh, small); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestMediaProfileAcceptsVideo(t *testing.T) {
	g := NewGateway(t.TempDir())

	fh := fileHeader(t, "tour.mp4", "video/mp4", []byte("vid"))
	if _, err := g.Save(fh, Media); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestImagesProfileRejectsVideo(t *testing.T) {
	g := NewGateway(t.TempDir())

	fh := fileHeader(t, "tour.mp4", "video/mp4", []byte("vid"))
	if _, err := g.Save(fh, Images); !errors.Is(err, ErrInvalidType) {
		t.Errorf("err = %v, want ErrInvalidType", err)
	}
}

func TestSaveAllEnforcesCount(t *testing.T) {
	g := NewGateway(t.TempDir())

	limited := Profile{Types: []string{"jpg", "jpeg"}, MaxSize: 1024, MaxFiles: 2}
	fhs := []*multipart.FileHeader{
		fileHeader(t, "a.jpg", "image/jpeg", []byte("a")),
		fileHeader(t, "b.jpg", "image/jpeg", []byte("b")),
		fileHeader(t, "c.jpg", "image/jpeg", []byte("c")),
	}
	if _, err := g.SaveAll(fhs, limited); !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("err = %v, want ErrTooManyFiles", err)
	}
}

func TestSaveAllKeepsOrder(t *testing.T) {
	g := NewGateway(t.TempDir())

	fhs := []*multipart.FileHeader{
		fileHeader(t, "first.jpg", "image/jpeg", []byte("1")),
		fileHeader(t, "second.png", "image/png", []byte("2")),
	}
	names, err := g.SaveAll(fhs, Images)
	if err != nil {
		t.Fatalf("save all: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("len = %d, want 2", len(names))
	}
	if !strings.HasSuffix(names[0], "first.jpg") || !strings.HasSuffix(names[1], "second.png") {
		t.Errorf("names = %v, want input order preserved", names)
	}
}

func TestFilenameShape(t *testing.T) {
	name := Filename("my  summer house.png")

	if matched, _ := regexp.MatchString(`^\d+-my-summer-house\.png$`, name); !matched {
		t.Errorf("filename = %q, want <millis>-my-summer-house.png", name)
	}
}
