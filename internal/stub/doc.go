// Package stub is an in-memory Fynd backend used for local development and
// integration tests. It implements the REST surface the client consumes:
// login, registration, the student directory, fragment merges and the two
// media upload endpoints. State lives in memory; uploaded files are written
// under a configurable directory and served back at /uploads/.
package stub
