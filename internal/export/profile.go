// Package export serialises scored profiles for sharing and archival:
// a Markdown document with fixed section headings, a JSON document with
// stable field names, and a styled terminal rendering of the Markdown.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/report"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
)

// Profile is the exported JSON document. Layer fields keep the names
// and nesting of scoring.Composite so previously exported files stay
// parseable.
type Profile struct {
	AssessmentVersion string                 `json:"assessment_version"`
	CompletedAt       time.Time              `json:"completed_at"`
	TotalQuestions    int                    `json:"total_questions"`
	Layer1            scoring.Layer1Result   `json:"layer1"`
	Layer2            scoring.Layer2Result   `json:"layer2"`
	Layer3            scoring.Layer3Result   `json:"layer3"`
	Layer4            scoring.Layer4Result   `json:"layer4"`
	Layer5            scoring.Layer5Result   `json:"layer5"`
	Layer6            scoring.Layer6Result   `json:"layer6"`
	Layer7            scoring.Layer7Result   `json:"layer7"`
	Summary           report.Summary         `json:"summary"`
	Recommendations   report.Recommendations `json:"recommendations"`
}

// NewProfile builds the export document for c.
func NewProfile(c *scoring.Composite) *Profile {
	return &Profile{
		AssessmentVersion: c.AssessmentVersion,
		CompletedAt:       c.CompletedAt,
		TotalQuestions:    c.TotalQuestions,
		Layer1:            c.Layer1,
		Layer2:            c.Layer2,
		Layer3:            c.Layer3,
		Layer4:            c.Layer4,
		Layer5:            c.Layer5,
		Layer6:            c.Layer6,
		Layer7:            c.Layer7,
		Summary:           report.Summarize(c),
		Recommendations:   report.Recommend(c),
	}
}

// Composite returns the scoring result carried by p. Summary and
// recommendations are dropped; they are derived from the layers again
// on every render.
func (p *Profile) Composite() *scoring.Composite {
	return &scoring.Composite{
		Layer1:            p.Layer1,
		Layer2:            p.Layer2,
		Layer3:            p.Layer3,
		Layer4:            p.Layer4,
		Layer5:            p.Layer5,
		Layer6:            p.Layer6,
		Layer7:            p.Layer7,
		AssessmentVersion: p.AssessmentVersion,
		CompletedAt:       p.CompletedAt,
		TotalQuestions:    p.TotalQuestions,
	}
}

// JSON encodes the export document for c, indented for humans.
func JSON(c *scoring.Composite) ([]byte, error) {
	data, err := json.MarshalIndent(NewProfile(c), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}

// ParseProfile decodes a document produced by JSON.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if p.AssessmentVersion == "" {
		return nil, fmt.Errorf("decoding profile: missing assessment_version")
	}
	return &p, nil
}
