package domain

// ChecklistItem represents one material or tool the user needs for their project.
// Items are produced by the checklist generator and used as search keys downstream.
type ChecklistItem struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority,omitempty"` // "essential" or "optional"
	Quantity string `json:"quantity,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ChecklistRequest represents a checklist generation request
type ChecklistRequest struct {
	ProjectQuery string `json:"projectQuery" binding:"required"`
}

// ChecklistResponse is the response for a checklist generation request
type ChecklistResponse struct {
	Success      bool            `json:"success"`
	Checklist    []ChecklistItem `json:"checklist"`
	ProjectQuery string          `json:"projectQuery"`
}
