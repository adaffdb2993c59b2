package ingestion

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"crlf and trailing spaces",
			"line one  \r\nline two\t\r\n",
			"line one\nline two",
		},
		{
			"collapses inline whitespace",
			"Senior    Data   Engineer",
			"Senior Data Engineer",
		},
		{
			"keeps bullet indentation",
			"EXPERIENCE\n  • Built   pipelines\n",
			"EXPERIENCE\n  • Built pipelines",
		},
		{
			"squeezes blank runs",
			"a\n\n\n\n\nb",
			"a\n\nb",
		},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestLoadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\r\nSKILLS\r\nPython,  SQL\r\n"), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nSKILLS\nPython, SQL", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))

	var serr *SourceError
	require.ErrorAs(t, err, &serr)
	assert.True(t, serr.NotFound)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	_, err := Load(path)

	var uerr *UnsupportedFormatError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ".odt", uerr.Extension)
}

func TestLoadEmptyExtraction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n  "), 0o644))

	_, err := Load(path)

	var eerr *EmptyExtractionError
	require.ErrorAs(t, err, &eerr)
}

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <w:body>
    <w:p><w:r><w:t>Jane Smith</w:t></w:r></w:p>
    <w:p>
      <w:hyperlink r:id="rId1"><w:r><w:t>LinkedIn</w:t></w:r></w:hyperlink>
    </w:p>
    <w:p><w:r><w:t>SKILLS</w:t></w:r></w:p>
    <w:p><w:r><w:t>Python, </w:t></w:r><w:r><w:t>SQL</w:t></w:r></w:p>
  </w:body>
</w:document>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://linkedin.com/in/janesmith" TargetMode="External"/>
</Relationships>`

func writeDOCX(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            docxBody,
		"word/_rels/document.xml.rels": docxRels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadDOCX(t *testing.T) {
	text, err := Load(writeDOCX(t))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Smith")
	assert.Contains(t, text, "SKILLS")
	assert.Contains(t, text, "Python, SQL")
	// Hyperlink target surfaces alongside its anchor text.
	assert.Contains(t, text, "https://linkedin.com/in/janesmith")
}

func TestLoadDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	_, err = Load(path)
	var serr *SourceError
	require.ErrorAs(t, err, &serr)
}
