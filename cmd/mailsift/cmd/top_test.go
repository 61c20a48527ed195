package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/mailsift/mailsift/internal/backup"
	"github.com/mailsift/mailsift/internal/export"
	"github.com/mailsift/mailsift/internal/testutil"
)

func TestTopCmd_JSON(t *testing.T) {
	resetCommandState(t)
	tmp := t.TempDir()
	t.Setenv("MAILSIFT_HOME", tmp)

	rec1 := testutil.BuildRecord(testutil.Record{
		From: []testutil.Addr{{Email: "alice@example.com", Name: "Alice Adams"}},
		To:   []testutil.Addr{{Email: "bob@example.com"}},
	})
	rec2 := testutil.BuildRecord(testutil.Record{
		From: []testutil.Addr{{Email: "alice@example.com"}},
	})
	archive := testutil.CreateRecordBackup(t, rec1, rec2, rec2)

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	rootCmd.SetArgs([]string{"top", archive, "--json", "--limit", "1"})
	execErr := rootCmd.ExecuteContext(context.Background())
	w.Close()
	os.Stdout = oldStdout

	if execErr != nil {
		t.Fatalf("top: %v", execErr)
	}

	var report export.Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		t.Fatalf("decode JSON: %v", err)
	}

	if report.TotalContacts != 2 {
		t.Errorf("total_contacts = %d, want 2", report.TotalContacts)
	}
	if report.FrequentContacts != 1 {
		t.Errorf("frequent_contacts = %d, want 1", report.FrequentContacts)
	}
	if len(report.Top) != 1 {
		t.Fatalf("len(top) = %d, want 1", len(report.Top))
	}
	if report.Top[0].Email != "alice@example.com" || report.Top[0].Count != 3 {
		t.Errorf("top[0] = %+v, want alice@example.com with count 3", report.Top[0])
	}
	if report.Top[0].Name != "Alice Adams" {
		t.Errorf("top[0].Name = %q, want Alice Adams", report.Top[0].Name)
	}
}

func TestTopCmd_Table(t *testing.T) {
	resetCommandState(t)
	tmp := t.TempDir()
	t.Setenv("MAILSIFT_HOME", tmp)

	rec := testutil.BuildRecord(testutil.Record{
		From: []testutil.Addr{{Email: "alice@example.com", Name: "Alice Adams"}},
	})
	archive := testutil.CreateRecordBackup(t, rec)

	rootCmd.SetArgs([]string{"top", archive})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("top: %v", err)
	}
}

func TestTopCmd_EmptyArchive(t *testing.T) {
	resetCommandState(t)
	tmp := t.TempDir()
	t.Setenv("MAILSIFT_HOME", tmp)

	archive := testutil.CreateBackup(t, []testutil.BackupEntry{
		{Name: "notes.txt", Data: []byte("nothing")},
	})

	rootCmd.SetArgs([]string{"top", archive})
	err := rootCmd.ExecuteContext(context.Background())
	if !errors.Is(err, backup.ErrEmptyArchive) {
		t.Fatalf("err = %v, want ErrEmptyArchive", err)
	}
}
