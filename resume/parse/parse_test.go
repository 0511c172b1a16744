package parse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const janeDoe = `Jane Doe
jane.doe@email.com
(555) 111-2222
12 Oak Street, Springfield, ST 00000

SKILLS
Nursing, Patient Care, ICU

EXPERIENCE
Staff Nurse General Hospital - 2019-2022

EDUCATION
BSc Nursing - 2018

CERTIFICATIONS
BLS Certification - American Heart Association
`

func TestExtractEndToEnd(t *testing.T) {
	got := Extract(janeDoe)

	require.NotNil(t, got.FirstName)
	require.NotNil(t, got.LastName)
	require.NotNil(t, got.Email)
	require.NotNil(t, got.Phone)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Jane", *got.FirstName)
	assert.Equal(t, "Doe", *got.LastName)
	assert.Equal(t, "jane.doe@email.com", *got.Email)
	assert.Equal(t, "(555) 111-2222", *got.Phone)
	assert.Equal(t, "12 Oak Street, Springfield, ST 00000", *got.Address)
	assert.Equal(t, []string{"Nursing", "Patient Care", "ICU"}, got.Skills)
	assert.Equal(t, []ExperienceEntry{{
		Title:       "Staff Nurse",
		Company:     "General Hospital",
		Duration:    "2019-2022",
		Description: "",
	}}, got.Experience)
	assert.Equal(t, []EducationEntry{{
		Degree:      "BSc Nursing",
		Institution: "Unknown Institution",
		Year:        "2018",
	}}, got.Education)
	assert.Equal(t, []string{"BLS Certification"}, got.Certifications)
}

func TestExtractTotality(t *testing.T) {
	inputs := []string{
		"",
		"\n\n   \n\t",
		"just some words without structure",
		"\x00\xff\xfe binary-ish",
		"-\n-\n,,,",
		"SKILLS",
	}
	for _, in := range inputs {
		got := Extract(in)
		assert.NotNil(t, got.Skills, "input %q", in)
		assert.NotNil(t, got.Experience, "input %q", in)
		assert.NotNil(t, got.Education, "input %q", in)
		assert.NotNil(t, got.Certifications, "input %q", in)
	}

	empty := Extract("")
	assert.True(t, empty.IsEmpty())

	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[],"experience":[],"education":[],"certifications":[]}`, string(data))
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFirst *string
		wantLast  *string
	}{
		{name: "two tokens", text: "John Smith\nother", wantFirst: ptr("John"), wantLast: ptr("Smith")},
		{name: "single token", text: "John\nSmith Jones"},
		{name: "multi word last name", text: "Mary Ann  van Buren", wantFirst: ptr("Mary"), wantLast: ptr("Ann van Buren")},
		{name: "leading blank lines skipped", text: "\n\n  John Smith  \n", wantFirst: ptr("John"), wantLast: ptr("Smith")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.wantFirst, got.FirstName)
			assert.Equal(t, tt.wantLast, got.LastName)
		})
	}
}

func TestExtractScalarsFirstMatchWins(t *testing.T) {
	text := "Ann Lee\nfirst@example.com\n(111) 000-0000\n1 Elm Street, Town\nsecond@example.com\n(222) 000-0000\n2 Oak Street, City"
	got := Extract(text)

	require.NotNil(t, got.Email)
	require.NotNil(t, got.Phone)
	require.NotNil(t, got.Address)
	assert.Equal(t, "first@example.com", *got.Email)
	assert.Equal(t, "(111) 000-0000", *got.Phone)
	assert.Equal(t, "1 Elm Street, Town", *got.Address)
}

func TestExtractScalarsTakeWholeLine(t *testing.T) {
	got := Extract("Ann Lee\nEmail: ann@example.com | Tel (07) 1234")

	require.NotNil(t, got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "Email: ann@example.com | Tel (07) 1234", *got.Email)
	assert.Equal(t, *got.Email, *got.Phone)
}

func TestExtractAddressRequiresStreet(t *testing.T) {
	got := Extract("Ann Lee\n4 Mill Road, Leeds\n9 High Street Leeds")
	assert.Nil(t, got.Address)
}

func TestExtractSectionScoping(t *testing.T) {
	text := "Ann Lee\nNursing, Patient Care\nSKILLS\n Nursing ,  Patient Care ,, \nEXPERIENCE\nNursing, Patient Care"
	got := Extract(text)

	assert.Equal(t, []string{"Nursing", "Patient Care"}, got.Skills)
	assert.Empty(t, got.Experience)
}

func TestExtractSkillsKeepDuplicates(t *testing.T) {
	got := Extract("Ann Lee\nKey Skills\nICU, ICU\nTriage")
	assert.Equal(t, []string{"ICU", "ICU", "Triage"}, got.Skills)
}

func TestExtractHeaderMatchesSubstringCaseInsensitive(t *testing.T) {
	got := Extract("Ann Lee\nwork experience:\nCare Assistant Sunrise Homes - 2020\nProfessional certifications\nNMC PIN - 2021")

	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Care Assistant", got.Experience[0].Title)
	assert.Equal(t, "Sunrise Homes", got.Experience[0].Company)
	assert.Equal(t, []string{"NMC PIN"}, got.Certifications)
}

func TestExtractExperienceFallbacks(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ExperienceEntry
	}{
		{
			name: "empty left side",
			line: "- 2019-2022",
			want: ExperienceEntry{Title: "Unknown Position", Company: "Unknown Company", Duration: "2019-2022"},
		},
		{
			name: "single word",
			line: "Nurse - 2020",
			want: ExperienceEntry{Title: "Nurse", Company: "Unknown Company", Duration: "2020"},
		},
		{
			name: "two words",
			line: "Staff Nurse - 2020",
			want: ExperienceEntry{Title: "Staff Nurse", Company: "Unknown Company", Duration: "2020"},
		},
		{
			name: "empty duration",
			line: "Staff Nurse St Marys -",
			want: ExperienceEntry{Title: "Staff Nurse", Company: "St Marys", Duration: "Unknown Duration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract("Ann Lee\nEXPERIENCE\n" + tt.line)
			require.Len(t, got.Experience, 1)
			assert.Equal(t, tt.want, got.Experience[0])
		})
	}
}

func TestExtractSectionsIgnoreLinesWithoutDash(t *testing.T) {
	got := Extract("Ann Lee\nEXPERIENCE\nLed a ward team\nEDUCATION\nUniversity of Leeds\nCERTIFICATIONS\nBLS")

	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Education)
	assert.Empty(t, got.Certifications)
}

func TestExtractEducationSplitsOnFirstDash(t *testing.T) {
	got := Extract("Ann Lee\nEDUCATION\nMSc Adult Nursing - 2014-2016")

	require.Len(t, got.Education, 1)
	assert.Equal(t, EducationEntry{Degree: "MSc Adult Nursing", Institution: "Unknown Institution", Year: "2014-2016"}, got.Education[0])
}

func TestExtractIsIdempotent(t *testing.T) {
	first := Extract(janeDoe)
	second := Extract(janeDoe)
	assert.Equal(t, first, second)

	*first.FirstName = "changed"
	first.Skills[0] = "changed"
	third := Extract(janeDoe)
	assert.Equal(t, second, third)
}

func TestLines(t *testing.T) {
	got := Lines("  a \r\n\n\tb\n   \nc")
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, Lines(""))
}

func TestNormalize(t *testing.T) {
	got := ParsedResume{}.Normalize()
	assert.NotNil(t, got.Skills)
	assert.NotNil(t, got.Experience)
	assert.NotNil(t, got.Education)
	assert.NotNil(t, got.Certifications)
}
