package types

import (
	"fmt"
	"strings"
)

// Move classifications with special handling. Any other classification
// string (Physical, Status, ...) is accepted as-is.
const (
	ClassificationTM = "TM"
	ClassificationHM = "HM"
)

// Move represents a learnable ability with its battle properties.
type Move struct {
	MoveID         string `json:"move_id"`
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	Classification string `json:"classification" validate:"required"`
	Type1          string `json:"type1" validate:"required"`
	Type2          string `json:"type2,omitempty"`
}

// IsHM reports whether the move is an HM. HM moves bypass the move-set
// cap and cannot be forgotten.
func (m Move) IsHM() bool {
	return strings.EqualFold(m.Classification, ClassificationHM)
}

// HasType reports whether either type slot equals t (case-insensitive).
func (m Move) HasType(t string) bool {
	return strings.EqualFold(m.Type1, t) ||
		(m.Type2 != "" && strings.EqualFold(m.Type2, t))
}

// Validate checks the move's field constraints.
func (m Move) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidData, err)
	}
	return nil
}

// String renders the move in the catalog listing format.
func (m Move) String() string {
	typ := m.Type1
	if m.Type2 != "" {
		typ += "/" + m.Type2
	}
	return fmt.Sprintf("%s [%s] (%s) - %s", m.Name, typ, m.Classification, m.Description)
}
