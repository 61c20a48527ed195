package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// BackupEntry describes a single member of a backup archive built for a
// test. Data is raw bytes so members can carry UTF-16 or deliberately
// malformed payloads.
type BackupEntry struct {
	Name string
	Data []byte
}

// CreateBackup writes a backup archive into a temporary directory with
// the given members, in order, and returns its path.
func CreateBackup(t *testing.T, entries []BackupEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "backup.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e.Name)
		if err != nil {
			t.Fatalf("create member %s: %v", e.Name, err)
		}
		if _, err := fw.Write(e.Data); err != nil {
			t.Fatalf("write member %s: %v", e.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}

	return path
}

// CreateRecordBackup builds an archive whose members are the given
// record texts, named msg-0001.xml, msg-0002.xml, and so on.
func CreateRecordBackup(t *testing.T, records ...string) string {
	t.Helper()

	entries := make([]BackupEntry, len(records))
	for i, rec := range records {
		entries[i] = BackupEntry{
			Name: fmt.Sprintf("messages/msg-%04d.xml", i+1),
			Data: []byte(rec),
		}
	}
	return CreateBackup(t, entries)
}
