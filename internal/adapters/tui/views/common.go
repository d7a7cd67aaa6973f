package views

// View switching messages, handled by the app model.

// SwitchToNotesMsg returns to the notes view
type SwitchToNotesMsg struct{}

// SwitchToEntitiesMsg opens the entity browser
type SwitchToEntitiesMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}
