package domain

// Button defaults shared by every preview button.
const (
	PreviewButtonLabel     = "Preview as customer"
	PreviewButtonClass     = "action-secondary"
	PreviewButtonSortOrder = 10
)

// ButtonDescriptor is the toolbar button description consumed by the admin UI.
// The zero value means "render nothing".
type ButtonDescriptor struct {
	Label     string `json:"label"`
	OnClick   string `json:"on_click"`
	Class     string `json:"class"`
	SortOrder int    `json:"sort_order"`
}

// IsEmpty reports whether the descriptor carries no button.
func (b ButtonDescriptor) IsEmpty() bool {
	return b == ButtonDescriptor{}
}
