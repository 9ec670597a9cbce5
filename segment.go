package csv2pdf

import "strings"

// Segmenter partitions decoded rows into per-account credential bundles.
type Segmenter struct {
	Layout Layout
}

// Segment walks the table and returns the account bundles in row order,
// plus the number of skipped data rows.
//
// Row 0 is the header and is never processed. A data row is skipped (and
// counted) when its account key is blank or when no window yields a
// record. Individual windows missing a name or id are dropped silently;
// a short trailing window is discarded.
func (s Segmenter) Segment(table RawTable) ([]AccountBundle, int) {
	var bundles []AccountBundle
	skipped := 0

	for i := 1; i < len(table); i++ {
		row := table[i]

		key := strings.TrimSpace(row.Field(0))
		if key == "" {
			skipped++
			continue
		}

		records := s.segmentRow(row)
		if len(records) == 0 {
			skipped++
			continue
		}

		bundles = append(bundles, AccountBundle{
			Account: localPart(key),
			Records: records,
		})
	}

	return bundles, skipped
}

// segmentRow reads fixed-width windows starting at column 1. A window is
// evaluated only when all of its cells exist; the mandatory name and id
// slots must be non-empty after trimming.
func (s Segmenter) segmentRow(row Row) []CredentialRecord {
	var records []CredentialRecord

	w := s.Layout.Width
	if w < 1 {
		return nil
	}
	for col := 1; col+w-1 < len(row); col += w {
		name := strings.TrimSpace(row.Field(col))
		id := strings.TrimSpace(row.Field(col + 1))
		if name == "" || id == "" {
			continue
		}

		rec := CredentialRecord{
			Name:     name,
			ID:       id,
			Password: strings.TrimSpace(row.Field(col + 2)),
		}
		if s.Layout.HasSerial {
			rec.Serial = strings.TrimSpace(row.Field(col + 3))
		}
		records = append(records, rec)
	}

	return records
}

// localPart returns the substring before the first '@', or the whole key
// when there is none.
func localPart(key string) string {
	if at := strings.IndexByte(key, '@'); at >= 0 {
		return key[:at]
	}
	return key
}
