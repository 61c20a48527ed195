// Package gen builds synthetic mailbox backup archives for development
// and load testing. Archives are deterministic for a given seed, so
// benchmarks and bug reports can name a seed instead of attaching data.
package gen

import (
	"archive/zip"
	"fmt"
	"math/rand"
	"os"

	"github.com/mailsift/mailsift/internal/testutil"
)

// Options controls archive generation.
type Options struct {
	Records int     // number of message records
	UTF16   float64 // fraction of records encoded as UTF-16 (alternating LE/BE)
	Preview bool    // give records preview text with embedded addresses
	Noise   int     // extra non-record members extraction must skip
	Seed    int64   // PRNG seed; the same seed yields the same archive
}

// DefaultOptions returns generation defaults sized so progress
// reporting and the frequent-contact threshold both come into play.
func DefaultOptions() Options {
	return Options{
		Records: 250,
		UTF16:   0.2,
		Seed:    1,
	}
}

var (
	givenNames  = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi", "Ivan", "Judy", "Mallory", "Niaj", "Olivia", "Peggy", "Rupert", "Sybil", "Trent", "Wendy", "Zoë", "André"}
	familyNames = []string{"Adams", "Brown", "Chen", "Diaz", "Eads", "Fischer", "García", "Hansen", "Ito", "Jones", "Kim", "López", "Müller", "Nguyen", "O'Brien", "Park", "Quinn", "Rossi", "Sato", "Weber"}
	domains     = []string{"example.com", "example.org", "mail.example.net", "corp.example.co.uk"}
)

type person struct {
	name  string
	email string
}

// BuildArchive writes a synthetic backup archive to path and reports
// how many message records it contains.
func BuildArchive(path string, opts Options) (int, error) {
	if opts.Records <= 0 {
		return 0, fmt.Errorf("records must be positive, got %d", opts.Records)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	people := makePeople(rng)

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create archive: %w", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	utf16LE := true
	for i := 0; i < opts.Records; i++ {
		rec := makeRecord(rng, people, opts.Preview)

		data := []byte(rec)
		if rng.Float64() < opts.UTF16 {
			// Alternate byte orders so both decode paths get coverage.
			if utf16LE {
				data = testutil.EncodeUTF16LE(rec)
			} else {
				data = testutil.EncodeUTF16BE(rec)
			}
			utf16LE = !utf16LE
		}

		name := fmt.Sprintf("messages/msg-%05d.xml", i+1)
		mw, err := w.Create(name)
		if err != nil {
			return 0, fmt.Errorf("create member %s: %w", name, err)
		}
		if _, err := mw.Write(data); err != nil {
			return 0, fmt.Errorf("write member %s: %w", name, err)
		}
	}

	for i := 0; i < opts.Noise; i++ {
		name := fmt.Sprintf("meta/manifest-%02d.txt", i+1)
		mw, err := w.Create(name)
		if err != nil {
			return 0, fmt.Errorf("create member %s: %w", name, err)
		}
		if _, err := fmt.Fprintf(mw, "manifest %d: not a message record\n", i+1); err != nil {
			return 0, fmt.Errorf("write member %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("close archive: %w", err)
	}
	return opts.Records, nil
}

// makePeople draws a pool sized so that a fraction of addresses recur
// often enough to cross the frequent-contact threshold.
func makePeople(rng *rand.Rand) []person {
	people := make([]person, 0, 60)
	seen := make(map[string]bool)
	for len(people) < 60 {
		given := givenNames[rng.Intn(len(givenNames))]
		family := familyNames[rng.Intn(len(familyNames))]
		email := fmt.Sprintf("%s.%s@%s", asciiLower(given), asciiLower(family), domains[rng.Intn(len(domains))])
		if seen[email] {
			continue
		}
		seen[email] = true
		people = append(people, person{name: given + " " + family, email: email})
	}
	return people
}

func makeRecord(rng *rand.Rand, people []person, preview bool) string {
	pick := func() person { return people[rng.Intn(len(people))] }

	rec := testutil.Record{
		From: []testutil.Addr{addr(pick())},
		To:   []testutil.Addr{addr(pick())},
	}
	if rng.Intn(3) == 0 {
		rec.To = append(rec.To, addr(pick()))
	}
	if rng.Intn(4) == 0 {
		rec.Cc = []testutil.Addr{addr(pick())}
	}
	if rng.Intn(10) == 0 {
		rec.Bcc = []testutil.Addr{addr(pick())}
	}
	if rng.Intn(8) == 0 {
		rec.ReplyTo = []testutil.Addr{addr(pick())}
	}
	if preview {
		quoted := pick()
		rec.Preview = fmt.Sprintf("On Monday, From: %s&lt;%s&gt; wrote: see you then", quoted.name, quoted.email)
	}
	return testutil.BuildRecord(rec)
}

func addr(p person) testutil.Addr {
	return testutil.Addr{Email: p.email, Name: p.name}
}

// asciiLower lowercases ASCII letters only, leaving accented letters
// alone so addresses stay plausible for the non-ASCII name pool.
func asciiLower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
