// Package cli provides the interactive Fynd command-line client.
//
// It wires configuration, the local session store, the REST API services and
// an interactive REPL that walks the student-onboarding pipeline. Typical
// flow: log in (or register), complete the onboarding screens in order, then
// browse the directory from Home.
//
// Key features:
//   - Login / Register / Logout with a locally persisted session
//   - Onboarding screens: additional info, skills, career pathways,
//     highlight video, profile image
//   - Home directory listing and profile view
//   - Account settings: email and password updates
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
