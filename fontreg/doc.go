// Package fontreg is a catalog of outline fonts keyed by family, weight
// and style.
//
// Fonts come from three places:
//
//   - LoadLocalFonts: a directory scanned and parsed eagerly
//   - LoadSystemFonts: installed fonts found by github.com/flopp/go-findfont
//   - LoadRemoteFonts: the Google Fonts developer API, fetched lazily
//
// GetFont resolves a request to the closest catalogued font and loads it
// on demand. Loaded data is dropped after an idle TTL and fetched again on
// the next request.
//
//	reg := fontreg.New(fontreg.WithTTL(time.Hour))
//	if _, err := reg.LoadLocalFonts("fonts"); err != nil {
//	    log.Fatal(err)
//	}
//	src, err := reg.GetFont(ctx, "Open Sans", 700, fontreg.Regular)
package fontreg
