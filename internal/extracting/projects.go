package extracting

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

const projectAnchor = "PROJECT HIGHLIGHTS"

// ExtractProjects parses the projects section. A project opens with a title
// line, recognized either by an en dash separating name from description or
// by a bullet list immediately below it; following bullets become the
// project's bullets. Projects that never collect a bullet are discarded as
// stray text.
func ExtractProjects(sectionText string) []types.Project {
	lines := strings.Split(sectionText, "\n")
	lines = skipToProjectContent(lines)

	var projects []types.Project
	var current *types.Project

	flush := func() {
		if current != nil && len(current.Bullets) > 0 {
			projects = append(projects, *current)
		}
		current = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || pageFooter.MatchString(line) {
			continue
		}

		if segmenting.IsBulletLine(line) {
			if current == nil {
				continue
			}
			if text := segmenting.StripBullet(line); len(text) > 5 {
				current.Bullets = append(current.Bullets, text)
			}
			continue
		}

		if isProjectTitle(line, lines, i) {
			flush()
			current = newProject(line)
		}
	}
	flush()

	return projects
}

// skipToProjectContent drops leading noise. When a "PROJECT HIGHLIGHTS"
// anchor exists, only text after it is project content; when the section
// opens with carried-over bullets from the previous section, scanning starts
// at the first plausible title line.
func skipToProjectContent(lines []string) []string {
	for i, raw := range lines {
		if strings.Contains(strings.ToUpper(raw), projectAnchor) {
			return lines[i+1:]
		}
	}

	if len(lines) == 0 || !segmenting.IsBulletLine(lines[0]) {
		return lines
	}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if !segmenting.IsBulletLine(line) && len(line) > 10 && containsDash(line) {
			return lines[i:]
		}
	}
	return nil
}

// isProjectTitle accepts a substantial dashed line, or any unbulleted line
// that a bullet list follows.
func isProjectTitle(line string, lines []string, i int) bool {
	if len(line) > 15 && containsDash(line) {
		return true
	}
	for j := i + 1; j < len(lines); j++ {
		next := strings.TrimSpace(lines[j])
		if next == "" {
			continue
		}
		return segmenting.IsBulletLine(next)
	}
	return false
}

// newProject splits "Name – short description" into the project fields.
func newProject(line string) *types.Project {
	for _, dash := range []string{"–", "—"} {
		if idx := strings.Index(line, dash); idx > 0 {
			return &types.Project{
				Name:        strings.TrimSpace(line[:idx]),
				Description: strings.TrimSpace(line[idx+len(dash):]),
			}
		}
	}
	return &types.Project{Name: line}
}

func containsDash(line string) bool {
	return strings.Contains(line, "–") || strings.Contains(line, "—")
}
