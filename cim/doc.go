// Package cim recovers CCM_RecentlyUsedApps instances from raw captures of a
// WMI repository backing store (OBJECTS.DATA, INDEX.BTR) without touching the
// repository's own indices.
//
// Instances are located by scanning the capture for the UTF-16LE class hash
// embedded in every instance, then decoded from the fixed header, offset
// table, and Encoded-String blob that follow the hash. A signature hit is not
// validated beyond that: decoding is deliberately best-effort, and anything
// malformed degrades to null fields or a skipped record plus a Diagnostic,
// never a failed scan. Downstream review is assumed to be a human analyst.
//
// Typical use:
//
//	store, err := cim.Open("OBJECTS.DATA")
//	if err != nil { ... }
//	defer store.Close()
//	it := store.Records()
//	for {
//		rec, err := it.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		// rec is a fully decoded Record
//	}
package cim
