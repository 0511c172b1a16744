package parse

// ParsedResume is the structured candidate profile extracted from resume text.
// Optional scalars are nil when no line matched; sequences are never nil.
type ParsedResume struct {
	FirstName      *string           `json:"firstName,omitempty"`
	LastName       *string           `json:"lastName,omitempty"`
	Email          *string           `json:"email,omitempty"`
	Phone          *string           `json:"phone,omitempty"`
	Address        *string           `json:"address,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
}

// ExperienceEntry is one work history line.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one education line.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// NewParsedResume returns a record with every sequence initialized.
func NewParsedResume() ParsedResume {
	return ParsedResume{
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Certifications: []string{},
	}
}

// IsEmpty reports whether no field was populated.
func (p ParsedResume) IsEmpty() bool {
	return p.FirstName == nil &&
		p.LastName == nil &&
		p.Email == nil &&
		p.Phone == nil &&
		p.Address == nil &&
		len(p.Skills) == 0 &&
		len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Certifications) == 0
}

// Normalize replaces nil sequences with empty ones. Records decoded from
// storage go through it so they serialize with [] rather than null.
func (p ParsedResume) Normalize() ParsedResume {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	return p
}
