package model

// Package model defines domain data structures used across the app: device
// credentials, device types, device groups and security rules. Values are
// transient and live only as long as a single form action.
