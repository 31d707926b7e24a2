package assessment

import (
	"errors"
	"fmt"
)

// ErrUnknownAssessment is returned when a catalog lookup misses.
var ErrUnknownAssessment = errors.New("unknown assessment")

// Catalog is the immutable set of assessments served by the API.
type Catalog struct {
	assessments []*Assessment
	byID        map[string]*Assessment
}

// NewCatalog validates every assessment and builds the lookup index. A
// malformed catalog is rejected here, never discovered at scoring time.
func NewCatalog(assessments ...*Assessment) (*Catalog, error) {
	c := &Catalog{
		assessments: make([]*Assessment, 0, len(assessments)),
		byID:        make(map[string]*Assessment, len(assessments)),
	}

	for _, a := range assessments {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("invalid assessment: %w", err)
		}
		if _, exists := c.byID[a.ID]; exists {
			return nil, fmt.Errorf("duplicate assessment id: %s", a.ID)
		}
		c.assessments = append(c.assessments, a)
		c.byID[a.ID] = a
	}

	return c, nil
}

// All returns the assessments in declaration order.
func (c *Catalog) All() []*Assessment {
	return c.assessments
}

// Get returns the assessment with the given id.
func (c *Catalog) Get(id string) (*Assessment, error) {
	a, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAssessment, id)
	}
	return a, nil
}

// Len returns the number of assessments in the catalog.
func (c *Catalog) Len() int {
	return len(c.assessments)
}

// Default builds the built-in catalog with the diabetes risk questionnaire.
func Default() (*Catalog, error) {
	return NewCatalog(diabetesRisk())
}
