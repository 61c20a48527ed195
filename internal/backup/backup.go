// Package backup reads the proprietary mailbox backup archives this
// tool converts. An archive is a ZIP container; members whose names end
// in ".xml" are per-message records, everything else is device noise.
package backup

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

var (
	// ErrEmptyArchive means the archive holds no message records at all.
	ErrEmptyArchive = errors.New("backup archive contains no message records")

	// ErrLimitExceeded means a size limit stopped the read.
	ErrLimitExceeded = errors.New("backup read limit exceeded")
)

// Default limits bound zip-bomb style expansion. Real records are small
// XML documents, so a member anywhere near the cap is garbage, not mail.
const (
	DefaultMaxMemberBytes int64 = 64 << 20 // 64 MiB per record
	DefaultMaxTotalBytes  int64 = 4 << 30  // 4 GiB decompressed total
)

// Limits bound how much decompressed data ReadMembers will load.
// A zero value disables the corresponding limit.
type Limits struct {
	MaxMemberBytes int64
	MaxTotalBytes  int64
}

// DefaultLimits returns the standard read limits.
func DefaultLimits() Limits {
	return Limits{
		MaxMemberBytes: DefaultMaxMemberBytes,
		MaxTotalBytes:  DefaultMaxTotalBytes,
	}
}

// Member is one message record of a backup archive. Data holds the raw
// member bytes. Err records a member that could not be read; the
// extraction engine skips such members and counts them as failures
// instead of aborting the run.
type Member struct {
	Name string
	Data []byte
	Err  error
}

// ReadMembers opens a backup archive and loads every message record in
// archive order. Returns ErrEmptyArchive when the archive holds no
// record member, which is terminal for a conversion run.
func ReadMembers(archivePath string) ([]Member, error) {
	return ReadMembersWithLimits(archivePath, DefaultLimits())
}

// ReadMembersWithLimits is ReadMembers with caller-controlled limits.
func ReadMembersWithLimits(archivePath string, limits Limits) ([]Member, error) {
	st, err := os.Stat(archivePath)
	if err != nil {
		return nil, fmt.Errorf("backup archive: %w", err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("backup archive %q is not a regular file", archivePath)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open backup archive: %w", err)
	}
	defer zr.Close()

	var members []Member
	var total int64
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		if !isRecordName(zf.Name) {
			continue
		}

		if limits.MaxMemberBytes > 0 && zf.UncompressedSize64 > uint64(limits.MaxMemberBytes) {
			members = append(members, Member{
				Name: zf.Name,
				Err: fmt.Errorf("%w: member %q too large (%d bytes > %d bytes)",
					ErrLimitExceeded, zf.Name, zf.UncompressedSize64, limits.MaxMemberBytes),
			})
			continue
		}

		data, err := readMember(zf, limits.MaxMemberBytes)
		if err != nil {
			members = append(members, Member{
				Name: zf.Name,
				Err:  fmt.Errorf("member %q: %w", zf.Name, err),
			})
			continue
		}

		total += int64(len(data))
		if limits.MaxTotalBytes > 0 && total > limits.MaxTotalBytes {
			return nil, fmt.Errorf("%w: total decompressed bytes exceed limit (%d bytes)",
				ErrLimitExceeded, limits.MaxTotalBytes)
		}
		members = append(members, Member{Name: zf.Name, Data: data})
	}

	if len(members) == 0 {
		return nil, ErrEmptyArchive
	}
	return members, nil
}

func readMember(zf *zip.File, maxBytes int64) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("open member: %w", err)
	}
	defer rc.Close()

	if maxBytes <= 0 {
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read member: %w", err)
		}
		return data, nil
	}

	// Read one byte past the cap so a lying size header is still caught.
	data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read member: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: member larger than %d bytes", ErrLimitExceeded, maxBytes)
	}
	return data, nil
}

// isRecordName reports whether a member name identifies a message
// record. ZIP uses forward slashes, but some producers include
// backslashes, so both are handled.
func isRecordName(name string) bool {
	cleaned := strings.ReplaceAll(name, "\\", "/")
	return strings.EqualFold(path.Ext(cleaned), ".xml")
}
