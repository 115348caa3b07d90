package manage

// Package manage implements the form actions on top of the PAN-OS client:
// validate the form input, open a fresh session, issue one call and hand the
// result (or a classified error) back to the UI. Nothing is cached between
// actions.
