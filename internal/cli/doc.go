// Package cli implements the interactive ResearchHub shell: session
// commands, repository browsing and the paper upload/version/preview flows.
// All rendering goes through seam variables so tests can run the command
// surface without a terminal.
package cli
