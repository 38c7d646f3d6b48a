// Package agility holds build metadata for the agility module.
package agility

// Version is the agility release version.
const Version = "0.1.0"
