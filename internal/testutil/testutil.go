// Package testutil provides test helpers for mailsift tests.
//
// The package is organized into focused files:
//   - assert.go: assertion helpers (MustNoErr, AssertStrings, etc.)
//   - fs.go: filesystem operations (WriteFile, ReadFile, MustExist)
//   - archive.go: backup archive creation (CreateBackup, CreateRecordBackup)
//   - record.go: message record builder (BuildRecord)
//   - encoding.go: UTF-16 record encoders for decode tests
package testutil
