// Package parse maps plain resume text into a ParsedResume using
// line-oriented heuristics. It performs no I/O and keeps no package state.
package parse

import "strings"

const (
	unknownPosition    = "Unknown Position"
	unknownCompany     = "Unknown Company"
	unknownDuration    = "Unknown Duration"
	unknownInstitution = "Unknown Institution"
)

type section int

const (
	sectionNone section = iota
	sectionSkills
	sectionExperience
	sectionEducation
	sectionCertifications
)

// headers are checked in order against the uppercased line.
var headers = []struct {
	keyword string
	section section
}{
	{"SKILLS", sectionSkills},
	{"EXPERIENCE", sectionExperience},
	{"EDUCATION", sectionEducation},
	{"CERTIFICATIONS", sectionCertifications},
}

// Extract builds a ParsedResume from text. It never fails: when nothing
// matches, the scalars stay nil and the sequences stay empty.
func Extract(text string) ParsedResume {
	out := NewParsedResume()
	current := sectionNone

	for i, line := range Lines(text) {
		if i == 0 && out.FirstName == nil {
			if tokens := strings.Fields(line); len(tokens) >= 2 {
				out.FirstName = ptr(tokens[0])
				out.LastName = ptr(strings.Join(tokens[1:], " "))
			}
		}
		if out.Email == nil && strings.Contains(line, "@") {
			out.Email = ptr(line)
		}
		if out.Phone == nil && strings.Contains(line, "(") && strings.Contains(line, ")") {
			out.Phone = ptr(line)
		}
		if out.Address == nil && strings.Contains(line, ",") && strings.Contains(line, "Street") {
			out.Address = ptr(line)
		}

		if next, ok := headerSection(line); ok {
			current = next
			continue
		}

		switch current {
		case sectionSkills:
			out.Skills = append(out.Skills, splitSkills(line)...)
		case sectionExperience:
			if entry, ok := parseExperience(line); ok {
				out.Experience = append(out.Experience, entry)
			}
		case sectionEducation:
			if entry, ok := parseEducation(line); ok {
				out.Education = append(out.Education, entry)
			}
		case sectionCertifications:
			if name, _, ok := strings.Cut(line, "-"); ok {
				out.Certifications = append(out.Certifications, strings.TrimSpace(name))
			}
		}
	}

	return out
}

// Lines splits text on newlines, trims each line and drops the empty ones.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func headerSection(line string) (section, bool) {
	upper := strings.ToUpper(line)
	for _, h := range headers {
		if strings.Contains(upper, h.keyword) {
			return h.section, true
		}
	}
	return sectionNone, false
}

func splitSkills(line string) []string {
	var skills []string
	for _, token := range strings.Split(line, ",") {
		if skill := strings.TrimSpace(token); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}

// parseExperience reads "<title> <company> - <duration>". The first two
// words of the left side are the title, the rest the company.
func parseExperience(line string) (ExperienceEntry, bool) {
	left, right, ok := strings.Cut(line, "-")
	if !ok {
		return ExperienceEntry{}, false
	}

	words := strings.Fields(left)
	titleWords := words
	var companyWords []string
	if len(words) > 2 {
		titleWords = words[:2]
		companyWords = words[2:]
	}

	return ExperienceEntry{
		Title:       orDefault(strings.Join(titleWords, " "), unknownPosition),
		Company:     orDefault(strings.Join(companyWords, " "), unknownCompany),
		Duration:    orDefault(strings.TrimSpace(right), unknownDuration),
		Description: "",
	}, true
}

func parseEducation(line string) (EducationEntry, bool) {
	left, right, ok := strings.Cut(line, "-")
	if !ok {
		return EducationEntry{}, false
	}
	return EducationEntry{
		Degree:      strings.TrimSpace(left),
		Institution: unknownInstitution,
		Year:        strings.TrimSpace(right),
	}, true
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func ptr(s string) *string {
	return &s
}
