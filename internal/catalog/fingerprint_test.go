package catalog

import "testing"

func TestFingerprint(t *testing.T) {
	books := []Book{
		{Title: "A", Description: "first description"},
		{Title: "B", Description: "second description"},
	}

	first := New(books).Fingerprint()
	same := New(books).Fingerprint()
	if first != same {
		t.Error("identical corpora produced different fingerprints")
	}

	changed := New([]Book{books[0], {Title: "B", Description: "edited description"}}).Fingerprint()
	if changed == first {
		t.Error("edited description did not change the fingerprint")
	}

	reordered := New([]Book{books[1], books[0]}).Fingerprint()
	if reordered == first {
		t.Error("row order must affect the fingerprint")
	}

	// Field boundaries matter: title "AB"+"" differs from "A"+"B".
	merged := New([]Book{{Title: "AB", Description: ""}}).Fingerprint()
	split := New([]Book{{Title: "A", Description: "B"}}).Fingerprint()
	if merged == split {
		t.Error("field boundary collision in fingerprint")
	}
}
