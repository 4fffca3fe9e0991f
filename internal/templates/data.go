package templates

// Field is one "label: value" line.
type Field struct {
	Label string
	Value string
}

// List is a titled bullet list inside a section.
type List struct {
	Heading string
	Items   []string
}

// SectionData is the body of one profile section: fields first, then
// paragraphs, then titled lists. Empty parts are omitted.
type SectionData struct {
	Fields     []Field
	Paragraphs []string
	Lists      []List
}

// ProfileData fills profile.md.tmpl. Section headings are fixed by the
// template.
type ProfileData struct {
	Title             string
	Meta              []Field
	CoreType          SectionData
	Subtype           SectionData
	Mirror            SectionData
	Learning          SectionData
	Screening         SectionData
	Personality       SectionData
	Beliefs           SectionData
	AssessmentVersion string
}

// PlaybookSection is one heading of the playbook.
type PlaybookSection struct {
	Heading string
	Intro   string
	Items   []string
}

// PlaybookData fills playbook.md.tmpl.
type PlaybookData struct {
	Title      string
	Subtitle   string
	Sections   []PlaybookSection
	Disclaimer string
}
