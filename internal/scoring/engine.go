package scoring

import (
	"time"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
)

// AssessmentVersion is stamped on every composite result.
const AssessmentVersion = "1.0.0"

// Composite is the full multi-layer profile. It is the single input of
// every derived generator and is never mutated after Score returns.
type Composite struct {
	Layer1            Layer1Result `json:"layer1"`
	Layer2            Layer2Result `json:"layer2"`
	Layer3            Layer3Result `json:"layer3"`
	Layer4            Layer4Result `json:"layer4"`
	Layer5            Layer5Result `json:"layer5"`
	Layer6            Layer6Result `json:"layer6"`
	Layer7            Layer7Result `json:"layer7"`
	AssessmentVersion string       `json:"assessment_version"`
	CompletedAt       time.Time    `json:"completed_at"`
	TotalQuestions    int          `json:"total_questions"`
}

// Score runs every layer calculator over all and assembles the composite.
// Layer 3 runs after Layer 1 because it needs the core type. The first
// layer error aborts the run and is returned as is, so callers can match
// it with errors.As against *EmptyLayerError.
func Score(all []answers.Answer) (*Composite, error) {
	l1, err := CalculateLayer1(all)
	if err != nil {
		return nil, err
	}
	l2, err := CalculateLayer2(all)
	if err != nil {
		return nil, err
	}
	l3 := CalculateLayer3(all, l1.CoreType)
	l4 := CalculateLayer4(all)
	l5 := CalculateLayer5(all)
	l6, err := CalculateLayer6(all)
	if err != nil {
		return nil, err
	}
	l7, err := CalculateLayer7(all)
	if err != nil {
		return nil, err
	}

	return &Composite{
		Layer1:            l1,
		Layer2:            l2,
		Layer3:            l3,
		Layer4:            l4,
		Layer5:            l5,
		Layer6:            l6,
		Layer7:            l7,
		AssessmentVersion: AssessmentVersion,
		CompletedAt:       timeNow().UTC(),
		TotalQuestions:    len(all),
	}, nil
}
