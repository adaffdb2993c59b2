package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX walks word/document.xml inside the archive and rebuilds plain
// text: runs concatenate, paragraphs become lines, tabs and breaks survive.
// Hyperlink targets from the relationships part are appended after their
// anchor text, so profile URLs stay visible to the contact extractor.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	document, err := readArchiveFile(archive, "word/document.xml")
	if err != nil {
		return "", err
	}

	rels := map[string]string{}
	if relsXML, err := readArchiveFile(archive, "word/_rels/document.xml.rels"); err == nil {
		rels = parseRelationships(relsXML)
	}

	return parseDocumentXML(document, rels)
}

func readArchiveFile(archive *zip.Reader, name string) ([]byte, error) {
	for _, f := range archive.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s missing from archive", name)
}

// parseRelationships maps relationship ids to their external targets.
func parseRelationships(data []byte) map[string]string {
	var doc struct {
		Relationships []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
			Mode   string `xml:"TargetMode,attr"`
		} `xml:"Relationship"`
	}
	targets := make(map[string]string)
	if err := xml.Unmarshal(data, &doc); err != nil {
		return targets
	}
	for _, rel := range doc.Relationships {
		if rel.Mode == "External" {
			targets[rel.ID] = rel.Target
		}
	}
	return targets
}

func parseDocumentXML(data []byte, rels map[string]string) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var out strings.Builder
	var inText bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				out.WriteByte('\t')
			case "br":
				out.WriteByte('\n')
			case "hyperlink":
				if target := linkTarget(t, rels); target != "" {
					out.WriteString(target + " ")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}
	return out.String(), nil
}

func linkTarget(el xml.StartElement, rels map[string]string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == "id" {
			return rels[attr.Value]
		}
	}
	return ""
}
