// Package collection exposes a directory tree as a read-only, lazily built
// set of entry metadata.
//
// A DirectoryCollection is cheap to create: NewDirectory only records the
// root and checks that it is a directory. The tree is scanned the first time
// a query needs it (Entries, GetEntry, Size, Open or an explicit Load) and
// the result is cached for the lifetime of the collection. Later changes to
// the filesystem are not observed.
//
// # Lifecycle
//
// A collection is valid when it was created over an existing directory and
// has not been closed. Every query on an invalid collection fails with an
// error matching ErrInvalidState. Close is final; create a new collection to
// scan again. The zero DirectoryCollection is an invalid placeholder.
//
// # Lookups
//
// GetEntry and Open take a MatchPath. Match compares the full name relative
// to the root ("sub/file.txt"); Ignore compares only the final component
// ("file.txt"). The first entry in scan order wins, so with Ignore two files
// sharing a basename resolve to whichever was listed first. A lookup that
// finds nothing, or an Open that finds a directory, is not an error: the
// boolean result is false.
//
// # Scan failures
//
// If listing any directory fails during the scan, the scan is abandoned, the
// partial result is discarded and the collection becomes invalid. The
// returned error wraps the filesystem error.
//
// # Example
//
//	c := collection.NewDirectory("/srv/data", collection.WithRecursive(true))
//	n, err := c.Size()
//	if err != nil {
//	    return err
//	}
//
//	f, ok, err := c.Open("docs/readme.txt", collection.Match)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    defer f.Close()
//	    _, _ = io.Copy(os.Stdout, f)
//	}
//
// # Thread Safety
//
// Collections guard their cache with a mutex, so the first query may come
// from any goroutine. Streams returned by Open are independent of the
// collection and owned by the caller.
package collection
